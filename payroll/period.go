package payroll

import (
	"fmt"
	"strings"
	"time"
)

// =============================================================================
// PAY PERIOD - The label a record is processed under
// =============================================================================

// PayPeriod is a free-text label for the period a payroll record covers,
// e.g. "September 2024". The engine treats it as opaque; surfaces decide
// how strict to be about its shape.
type PayPeriod string

func (p PayPeriod) String() string { return string(p) }
func (p PayPeriod) IsZero() bool   { return strings.TrimSpace(string(p)) == "" }

// MonthlyPeriod renders the conventional "Month Year" label for a
// calendar month.
func MonthlyPeriod(year int, month time.Month) PayPeriod {
	return PayPeriod(fmt.Sprintf("%s %d", month.String(), year))
}

// CurrentMonthlyPeriod returns the label for the month containing now.
func CurrentMonthlyPeriod(now time.Time) PayPeriod {
	return MonthlyPeriod(now.Year(), now.Month())
}
