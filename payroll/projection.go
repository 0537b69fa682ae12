/*
projection.go - What-if pay calculation

PURPOSE:
  Answers "what would this employee take home?" for hypothetical future
  periods without recording anything. Useful for planning around variable
  hours: project a quarter at 160h, 173h, and 200h and compare nets.

PROJECTION vs PROCESSING:
  A projection computes the same gross/deduction/net pipeline as the
  processor but mints no record id, stamps no time, and never touches
  the ledger. The source employee is never mutated; adjusted-hours
  copies are made through WithWorkHours.

EXAMPLE:
  plans := []payroll.PlannedPeriod{
      {Period: "October 2024", WorkHours: decimal.NewFromInt(160)},
      {Period: "November 2024", WorkHours: decimal.NewFromInt(200)},
  }
  projections, err := payroll.Project(emp, plans)

SEE ALSO:
  - processor.go: The recording counterpart
  - employee.go: WithWorkHours on the capability contract
*/
package payroll

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// =============================================================================
// PROJECTION - One hypothetical period
// =============================================================================

// PlannedPeriod pairs a period label with the hours planned for it.
// Zero (or unset) hours means "keep the employee's current hours".
type PlannedPeriod struct {
	Period    PayPeriod
	WorkHours decimal.Decimal
}

// Projection is the computed outcome for one planned period.
type Projection struct {
	Period     PayPeriod
	WorkHours  decimal.Decimal
	Gross      Amount
	Deductions Amount
	Net        Amount
}

// Project computes the pay outcome for each planned period. Nothing is
// stored and the source employee is unchanged.
func Project(e Employee, plans []PlannedPeriod) ([]Projection, error) {
	projections := make([]Projection, 0, len(plans))
	for _, plan := range plans {
		subject := e
		hours := plan.WorkHours
		if hours.IsZero() {
			hours = e.WorkHours()
		} else {
			adjusted, err := e.WithWorkHours(hours)
			if err != nil {
				return nil, fmt.Errorf("project %s for %s: %w", plan.Period, e.EmployeeID(), err)
			}
			subject = adjusted
		}

		gross, err := subject.Gross()
		if err != nil {
			return nil, fmt.Errorf("project %s for %s: %w", plan.Period, e.EmployeeID(), err)
		}
		deduction := subject.Deduction(gross)

		projections = append(projections, Projection{
			Period:     plan.Period,
			WorkHours:  hours,
			Gross:      gross,
			Deductions: deduction,
			Net:        gross.Sub(deduction),
		})
	}
	return projections, nil
}
