/*
hourly.go - The hourly ("contract") employee variant

PURPOSE:
  Implements pay computation for employees paid by the hour. Gross is
  rate times hours plus the normalized allowance; the only deduction is
  the flat-rate tax. There is no overtime concept and no statutory
  contribution for this variant.

SEE ALSO:
  - salaried.go: The other variant
  - payroll/tax.go: FlatRateTax, the default strategy here
*/
package employee

import (
	"github.com/shopspring/decimal"

	"github.com/warp/payroll-engine/payroll"
)

// =============================================================================
// HOURLY EMPLOYEE
// =============================================================================

// Hourly is a contract employee paid rate times hours with flat tax.
// Immutable after construction.
type Hourly struct {
	id              payroll.EmployeeID
	workHours       decimal.Decimal
	allowanceAmount payroll.Amount
	allowancePeriod payroll.AllowancePeriod
	hourlyRate      payroll.Amount
	tax             payroll.TaxStrategy
}

// NewHourly validates the inputs and builds an hourly employee.
// A nil tax selects the flat-rate default.
func NewHourly(id payroll.EmployeeID, workHours decimal.Decimal, allowanceAmount payroll.Amount, allowancePeriod payroll.AllowancePeriod, hourlyRate payroll.Amount, tax payroll.TaxStrategy) (*Hourly, error) {
	if id == "" {
		return nil, payroll.ErrEmptyEmployeeID
	}
	if workHours.IsNegative() {
		return nil, &payroll.NegativeInputError{Field: "workHours", Value: workHours}
	}
	if allowanceAmount.IsNegative() {
		return nil, &payroll.NegativeInputError{Field: "allowanceAmount", Value: allowanceAmount.Value}
	}
	if hourlyRate.IsNegative() {
		return nil, &payroll.NegativeInputError{Field: "hourlyRate", Value: hourlyRate.Value}
	}
	if tax == nil {
		tax = DefaultHourlyTax()
	}

	return &Hourly{
		id:              id,
		workHours:       workHours,
		allowanceAmount: allowanceAmount,
		allowancePeriod: allowancePeriod,
		hourlyRate:      hourlyRate,
		tax:             tax,
	}, nil
}

func (h *Hourly) EmployeeID() payroll.EmployeeID { return h.id }
func (h *Hourly) Kind() payroll.Kind             { return KindHourly }
func (h *Hourly) WorkHours() decimal.Decimal     { return h.workHours }

func (h *Hourly) Allowance() (payroll.Amount, payroll.AllowancePeriod) {
	return h.allowanceAmount, h.allowancePeriod
}

// HourlyRate returns the per-hour rate this variant was built with.
func (h *Hourly) HourlyRate() payroll.Amount { return h.hourlyRate }

// WithWorkHours returns a copy computing with different hours.
func (h *Hourly) WithWorkHours(hours decimal.Decimal) (payroll.Employee, error) {
	if hours.IsNegative() {
		return nil, &payroll.NegativeInputError{Field: "workHours", Value: hours}
	}
	adjusted := *h
	adjusted.workHours = hours
	return &adjusted, nil
}

// Gross computes rate times hours plus normalized allowance.
func (h *Hourly) Gross() (payroll.Amount, error) {
	base := h.hourlyRate.Mul(h.workHours)

	allowance, err := payroll.NormalizeAllowance(h.allowanceAmount, h.allowancePeriod)
	if err != nil {
		return payroll.Amount{}, err
	}

	return base.Add(allowance), nil
}

// Deduction is flat tax on the explicitly passed gross, nothing else.
func (h *Hourly) Deduction(gross payroll.Amount) payroll.Amount {
	return h.tax.CalculateTax(gross)
}

// Net is gross minus the deduction derived from that same gross.
func (h *Hourly) Net() (payroll.Amount, error) {
	gross, err := h.Gross()
	if err != nil {
		return payroll.Amount{}, err
	}
	return gross.Sub(h.Deduction(gross)), nil
}
