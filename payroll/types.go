/*
Package payroll provides the core payroll computation engine.

PURPOSE:
  This package contains the variant-agnostic types and algorithms for
  computing pay: money amounts, tax strategies, allowance normalization,
  the processing pipeline, and the append-only record store. Concrete
  employee variants (salaried, hourly) live in the employee package and
  plug into this engine.

KEY CONCEPTS IN THIS FILE (types.go):
  - Amount: A monetary quantity with a unit (e.g., Rp 8,000,000)
  - PayrollRecord: An immutable snapshot of one processed pay calculation
  - Employee/Record/Run IDs: Type-safe identifiers

DESIGN PRINCIPLES:
  1. Immutability: Records are computed once and never recomputed
  2. Precision: Uses decimal.Decimal to avoid floating-point errors
  3. Type Safety: Strong typing for IDs prevents mixing employee/record IDs
  4. Explicitness: Deductions derive from an explicitly passed gross value

USAGE:
  gross := payroll.IDR(8_000_000)
  tax := payroll.DefaultProgressiveTax().CalculateTax(gross)
  net := gross.Sub(tax)

SEE ALSO:
  - tax.go: Tax strategy variants
  - allowance.go: Allowance period normalization
  - employee.go: Employee capability contract and kind registry
  - ledger.go: Record persistence interface
*/
package payroll

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// AMOUNT - Monetary quantity with unit (always currency for this system)
// =============================================================================

type Amount struct {
	Value decimal.Decimal
	Unit  Unit
}

type Unit string

const (
	UnitIDR Unit = "idr"
)

func NewAmount(value float64, unit Unit) Amount {
	return Amount{Value: decimal.NewFromFloat(value), Unit: unit}
}

func NewAmountFromInt(value int64, unit Unit) Amount {
	return Amount{Value: decimal.NewFromInt(value), Unit: unit}
}

// IDR builds a rupiah amount. Shorthand for the only unit this system pays in.
func IDR(value float64) Amount            { return NewAmount(value, UnitIDR) }
func IDRFromInt(value int64) Amount       { return NewAmountFromInt(value, UnitIDR) }
func IDRFromDecimal(d decimal.Decimal) Amount { return Amount{Value: d, Unit: UnitIDR} }
func ZeroIDR() Amount                     { return Amount{Value: decimal.Zero, Unit: UnitIDR} }

func MustParseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func (a Amount) Zero() Amount                 { return Amount{Value: decimal.Zero, Unit: a.Unit} }
func (a Amount) Add(b Amount) Amount          { a.mustMatch(b); return Amount{Value: a.Value.Add(b.Value), Unit: a.Unit} }
func (a Amount) Sub(b Amount) Amount          { a.mustMatch(b); return Amount{Value: a.Value.Sub(b.Value), Unit: a.Unit} }
func (a Amount) Mul(s decimal.Decimal) Amount { return Amount{Value: a.Value.Mul(s), Unit: a.Unit} }
func (a Amount) Div(s decimal.Decimal) Amount { return Amount{Value: a.Value.Div(s), Unit: a.Unit} }
func (a Amount) Neg() Amount                  { return Amount{Value: a.Value.Neg(), Unit: a.Unit} }
func (a Amount) IsNegative() bool             { return a.Value.IsNegative() }
func (a Amount) IsZero() bool                 { return a.Value.IsZero() }
func (a Amount) IsPositive() bool             { return a.Value.IsPositive() }
func (a Amount) GreaterThan(b Amount) bool    { return a.Value.GreaterThan(b.Value) }
func (a Amount) LessThan(b Amount) bool       { return a.Value.LessThan(b.Value) }
func (a Amount) Equal(b Amount) bool          { return a.Unit == b.Unit && a.Value.Equal(b.Value) }

// mustMatch guards cross-unit arithmetic. Mixing units is a programming
// error, never a runtime condition, so it panics rather than returning.
func (a Amount) mustMatch(b Amount) {
	if a.Unit != b.Unit {
		panic(fmt.Errorf("%w: %s vs %s", ErrUnitMismatch, a.Unit, b.Unit))
	}
}

// Round2 rounds to two decimal places. Only presentation and DTO edges
// round; engine arithmetic keeps full precision.
func (a Amount) Round2() Amount       { return Amount{Value: a.Value.Round(2), Unit: a.Unit} }
func (a Amount) StringFixed2() string { return a.Value.StringFixed(2) }

// Display renders the amount for human-facing output, e.g. "Rp 10485549.13".
func (a Amount) Display() string {
	if a.Unit == UnitIDR {
		return "Rp " + a.Value.StringFixed(2)
	}
	return a.Value.StringFixed(2) + " " + string(a.Unit)
}

// =============================================================================
// IDENTIFIERS
// =============================================================================

type EmployeeID string
type RecordID string
type RunID string

// Kind identifies which employee variant a value belongs to.
// The set of kinds is closed: the employee package registers exactly the
// variants that exist, and adding one is a code change, not a plugin.
type Kind string

// =============================================================================
// PAYROLL RECORD - Immutable snapshot of one processed calculation
// =============================================================================

// PayrollRecord is created exactly once per processing call and never
// mutated. It references the employee by ID and kind rather than holding
// the live value, so the record outlives the employee it was computed for.
type PayrollRecord struct {
	ID          RecordID
	EmployeeID  EmployeeID
	Kind        Kind
	PayPeriod   PayPeriod
	ProcessedAt time.Time

	// Derived at processing time, never recomputed later.
	Gross      Amount
	Deductions Amount
	Net        Amount
}
