package payroll

import (
	"strings"

	"github.com/shopspring/decimal"
)

// =============================================================================
// ALLOWANCE PERIOD - How a raw allowance amount maps onto one pay period
// =============================================================================

// AllowancePeriod tags how an allowance amount is granted. The set is
// closed; any other tag is a configuration error, not a new variant.
type AllowancePeriod string

const (
	AllowanceMonthly    AllowancePeriod = "monthly"
	AllowanceYearly     AllowancePeriod = "yearly"
	AllowancePerProject AllowancePeriod = "per_project"
)

var twelve = decimal.NewFromInt(12)

// ParseAllowancePeriod maps a raw tag onto the closed period set.
// Matching is case-insensitive; "per-project" is accepted as an alias.
func ParseAllowancePeriod(s string) (AllowancePeriod, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "monthly":
		return AllowanceMonthly, nil
	case "yearly":
		return AllowanceYearly, nil
	case "per_project", "per-project":
		return AllowancePerProject, nil
	default:
		return "", &InvalidPeriodError{Period: s}
	}
}

// NormalizeAllowance converts a raw allowance amount plus period tag into
// its contribution to one pay period's gross:
//   - monthly: the amount as-is
//   - yearly: one twelfth of the amount
//   - per_project: the amount as-is, a one-time full addition for the
//     period being processed (no proration)
//
// An unrecognized period is fatal to this call and surfaces to the caller.
func NormalizeAllowance(amount Amount, period AllowancePeriod) (Amount, error) {
	switch period {
	case AllowanceMonthly:
		return amount, nil
	case AllowanceYearly:
		return amount.Div(twelve), nil
	case AllowancePerProject:
		return amount, nil
	default:
		return Amount{}, &InvalidPeriodError{Period: string(period)}
	}
}
