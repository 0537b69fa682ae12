/*
fixtures.go - Sample roster for demos and development

PURPOSE:
  Provides the small demo data set used by the server and console seed
  flags: one salaried employee with overtime hours and two hourly
  contractors with different allowance periods. Handy for exercising
  every code path without typing employees in by hand.

SEE ALSO:
  - cmd/server, cmd/console: The -seed flag
*/
package employee

import (
	"github.com/shopspring/decimal"

	"github.com/warp/payroll-engine/payroll"
)

// SampleRoster builds a roster with the standard demo employees:
//
//	FT001  salaried  180h  base 8,000,000   allowance 2,000,000 monthly
//	CT001  hourly    120h  rate 75,000/h    allowance 1,000,000 per_project
//	CT002  hourly    160h  rate 50,000/h    allowance 500,000 monthly
func SampleRoster() (*payroll.Roster, error) {
	roster := payroll.NewRoster()

	ft, err := NewSalaried(
		"FT001",
		decimal.NewFromInt(180),
		payroll.IDRFromInt(2_000_000),
		payroll.AllowanceMonthly,
		payroll.IDRFromInt(8_000_000),
		nil,
	)
	if err != nil {
		return nil, err
	}

	ct1, err := NewHourly(
		"CT001",
		decimal.NewFromInt(120),
		payroll.IDRFromInt(1_000_000),
		payroll.AllowancePerProject,
		payroll.IDRFromInt(75_000),
		nil,
	)
	if err != nil {
		return nil, err
	}

	ct2, err := NewHourly(
		"CT002",
		decimal.NewFromInt(160),
		payroll.IDRFromInt(500_000),
		payroll.AllowanceMonthly,
		payroll.IDRFromInt(50_000),
		nil,
	)
	if err != nil {
		return nil, err
	}

	for _, e := range []payroll.Employee{ft, ct1, ct2} {
		if err := roster.Add(e); err != nil {
			return nil, err
		}
	}
	return roster, nil
}
