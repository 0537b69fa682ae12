/*
salaried.go - The salaried ("fulltime") employee variant

PURPOSE:
  Implements pay computation for employees on a fixed base salary.
  Salaried pay has three components on the gross side (base, overtime,
  normalized allowance) and two on the deduction side (progressive
  bracket tax, statutory contribution schemes).

OVERTIME:
  173 is the fixed standard monthly work-hour baseline. Hours past it
  pay 1.5x the derived hourly equivalent (baseSalary / 173); the hourly
  equivalent is never stored separately. Neither constant is
  configurable.

SEE ALSO:
  - hourly.go: The other variant
  - payroll/tax.go: ProgressiveBracketTax, the default strategy here
  - contribution package: The BPJS scheme set joined into deductions
*/
package employee

import (
	"github.com/shopspring/decimal"

	"github.com/warp/payroll-engine/contribution"
	"github.com/warp/payroll-engine/payroll"
)

// The fixed salaried constants. The overtime hourly equivalent is
// derived as baseSalary / standardMonthlyHours at computation time.
var (
	standardMonthlyHours = decimal.NewFromInt(173)
	overtimeMultiplier   = payroll.MustParseDecimal("1.5")
)

// =============================================================================
// SALARIED EMPLOYEE
// =============================================================================

// Salaried is a fulltime employee on a fixed base salary with overtime,
// progressive bracket tax, and statutory contributions. Immutable after
// construction.
type Salaried struct {
	id              payroll.EmployeeID
	workHours       decimal.Decimal
	allowanceAmount payroll.Amount
	allowancePeriod payroll.AllowancePeriod
	baseSalary      payroll.Amount
	tax             payroll.TaxStrategy
	schemes         []contribution.Scheme
}

// SalariedOption adjusts optional construction parameters.
type SalariedOption func(*Salaried)

// WithSchemes replaces the statutory contribution set. The default is
// contribution.StandardSchemes().
func WithSchemes(schemes []contribution.Scheme) SalariedOption {
	return func(s *Salaried) { s.schemes = schemes }
}

// NewSalaried validates the inputs and builds a salaried employee.
// A nil tax selects the progressive bracket default.
func NewSalaried(id payroll.EmployeeID, workHours decimal.Decimal, allowanceAmount payroll.Amount, allowancePeriod payroll.AllowancePeriod, baseSalary payroll.Amount, tax payroll.TaxStrategy, opts ...SalariedOption) (*Salaried, error) {
	if id == "" {
		return nil, payroll.ErrEmptyEmployeeID
	}
	if workHours.IsNegative() {
		return nil, &payroll.NegativeInputError{Field: "workHours", Value: workHours}
	}
	if allowanceAmount.IsNegative() {
		return nil, &payroll.NegativeInputError{Field: "allowanceAmount", Value: allowanceAmount.Value}
	}
	if baseSalary.IsNegative() {
		return nil, &payroll.NegativeInputError{Field: "baseSalary", Value: baseSalary.Value}
	}
	if tax == nil {
		tax = DefaultSalariedTax()
	}

	s := &Salaried{
		id:              id,
		workHours:       workHours,
		allowanceAmount: allowanceAmount,
		allowancePeriod: allowancePeriod,
		baseSalary:      baseSalary,
		tax:             tax,
		schemes:         contribution.StandardSchemes(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *Salaried) EmployeeID() payroll.EmployeeID { return s.id }
func (s *Salaried) Kind() payroll.Kind             { return KindSalaried }
func (s *Salaried) WorkHours() decimal.Decimal     { return s.workHours }

func (s *Salaried) Allowance() (payroll.Amount, payroll.AllowancePeriod) {
	return s.allowanceAmount, s.allowancePeriod
}

// BaseSalary returns the fixed monthly base this variant was built with.
func (s *Salaried) BaseSalary() payroll.Amount { return s.baseSalary }

// WithWorkHours returns a copy computing with different hours.
func (s *Salaried) WithWorkHours(hours decimal.Decimal) (payroll.Employee, error) {
	if hours.IsNegative() {
		return nil, &payroll.NegativeInputError{Field: "workHours", Value: hours}
	}
	adjusted := *s
	adjusted.workHours = hours
	return &adjusted, nil
}

// Gross computes base + overtime + normalized allowance.
func (s *Salaried) Gross() (payroll.Amount, error) {
	regular := s.baseSalary

	overtime := s.baseSalary.Zero()
	if s.workHours.GreaterThan(standardMonthlyHours) {
		hourlyEquivalent := s.baseSalary.Div(standardMonthlyHours)
		overtimeHours := s.workHours.Sub(standardMonthlyHours)
		overtime = hourlyEquivalent.Mul(overtimeHours).Mul(overtimeMultiplier)
	}

	allowance, err := payroll.NormalizeAllowance(s.allowanceAmount, s.allowancePeriod)
	if err != nil {
		return payroll.Amount{}, err
	}

	return regular.Add(overtime).Add(allowance), nil
}

// Deduction computes tax plus every contribution scheme, all from the
// explicitly passed gross. Gross is never recomputed here.
func (s *Salaried) Deduction(gross payroll.Amount) payroll.Amount {
	tax := s.tax.CalculateTax(gross)
	return tax.Add(contribution.Total(gross, s.schemes))
}

// Net is gross minus the deduction derived from that same gross.
func (s *Salaried) Net() (payroll.Amount, error) {
	gross, err := s.Gross()
	if err != nil {
		return payroll.Amount{}, err
	}
	return gross.Sub(s.Deduction(gross)), nil
}
