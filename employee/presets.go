package employee

import "github.com/warp/payroll-engine/payroll"

// =============================================================================
// DEFAULT TAX STRATEGIES
// =============================================================================

// DefaultSalariedTax returns the strategy a salaried employee gets when
// none is injected: the standard progressive bracket table.
func DefaultSalariedTax() payroll.TaxStrategy {
	return payroll.DefaultProgressiveTax()
}

// DefaultHourlyTax returns the strategy an hourly employee gets when
// none is injected: the standard 2.5% flat rate.
func DefaultHourlyTax() payroll.TaxStrategy {
	return payroll.DefaultFlatTax()
}
