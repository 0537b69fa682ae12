/*
tax.go - Tax strategy variants

PURPOSE:
  Defines how tax is computed from a gross salary. A TaxStrategy is a
  pure function from gross to tax: deterministic, no side effects, total
  on non-negative input. Two variants exist, one per employee category.

KEY CONCEPTS:
  - ProgressiveBracketTax: bracket table for salaried employees
  - FlatRateTax: single rate for hourly employees
  - Strategy injection: the employee carries its strategy from
    construction; nothing selects or swaps strategies at runtime

BRACKET SEMANTICS:
  The matched bracket's single flat rate applies to the ENTIRE gross
  amount, not marginally per slice. A gross of 54,000,001 is taxed 15%
  on all of it, not 5% on the first 54,000,000. This is a deliberate
  simplification of true progressive taxation; keep it as-is.

EXAMPLE:
  tax := payroll.DefaultProgressiveTax()
  due := tax.CalculateTax(payroll.IDR(54_000_000))  // Rp 2,700,000

SEE ALSO:
  - employee.go: Where strategies are injected
  - contribution package: The non-tax half of salaried deductions
*/
package payroll

import "github.com/shopspring/decimal"

// =============================================================================
// TAX STRATEGY - Pure gross -> tax function
// =============================================================================

// TaxStrategy computes the tax due on a gross salary.
// Implementations must be deterministic and side-effect free.
type TaxStrategy interface {
	CalculateTax(gross Amount) Amount
}

// =============================================================================
// PROGRESSIVE BRACKET TAX - Salaried variant default
// =============================================================================

// TaxBracket pairs an inclusive gross ceiling with the rate applied to
// the whole amount when the gross falls at or under that ceiling.
type TaxBracket struct {
	UpTo decimal.Decimal
	Rate decimal.Decimal
}

// ProgressiveBracketTax walks an ordered bracket table and applies the
// first matching bracket's rate to the entire gross. Amounts above every
// ceiling pay TopRate.
type ProgressiveBracketTax struct {
	Brackets []TaxBracket
	TopRate  decimal.Decimal
}

func (t ProgressiveBracketTax) CalculateTax(gross Amount) Amount {
	for _, b := range t.Brackets {
		if gross.Value.LessThanOrEqual(b.UpTo) {
			return gross.Mul(b.Rate)
		}
	}
	return gross.Mul(t.TopRate)
}

// DefaultProgressiveTax returns the standard salaried bracket table.
func DefaultProgressiveTax() ProgressiveBracketTax {
	return ProgressiveBracketTax{
		Brackets: []TaxBracket{
			{UpTo: decimal.NewFromInt(54_000_000), Rate: MustParseDecimal("0.05")},
			{UpTo: decimal.NewFromInt(250_000_000), Rate: MustParseDecimal("0.15")},
			{UpTo: decimal.NewFromInt(500_000_000), Rate: MustParseDecimal("0.25")},
		},
		TopRate: MustParseDecimal("0.30"),
	}
}

// =============================================================================
// FLAT RATE TAX - Hourly variant default
// =============================================================================

// FlatRateTax applies a single rate to any gross.
type FlatRateTax struct {
	Rate decimal.Decimal
}

func (t FlatRateTax) CalculateTax(gross Amount) Amount {
	return gross.Mul(t.Rate)
}

// DefaultFlatTax returns the standard hourly rate of 2.5%.
func DefaultFlatTax() FlatRateTax {
	return FlatRateTax{Rate: MustParseDecimal("0.025")}
}

// Compile-time checks that both variants implement TaxStrategy.
var (
	_ TaxStrategy = ProgressiveBracketTax{}
	_ TaxStrategy = FlatRateTax{}
)
