// Package employee implements the concrete employee variants.
// It plugs the salaried and hourly categories into the payroll engine.
package employee

import "github.com/warp/payroll-engine/payroll"

// =============================================================================
// EMPLOYEE KINDS
// =============================================================================

// The closed set of employee variants. Salaried ("fulltime") employees
// earn a base salary with overtime and statutory contributions; hourly
// ("contract") employees earn rate times hours with flat tax only.
const (
	KindSalaried payroll.Kind = "salaried"
	KindHourly   payroll.Kind = "hourly"
)

// Compile-time checks that both variants implement payroll.Employee.
var (
	_ payroll.Employee = (*Salaried)(nil)
	_ payroll.Employee = (*Hourly)(nil)
)

// Register both variants with the engine's kind registry. The registry
// drives factory and API construction from kind tags; this package is
// the only registrar, keeping the variant set closed.
func init() {
	payroll.RegisterKind(KindSalaried, func(cfg payroll.EmployeeConfig) (payroll.Employee, error) {
		return NewSalaried(cfg.ID, cfg.WorkHours, cfg.AllowanceAmount, cfg.AllowancePeriod, cfg.BaseSalary, cfg.Tax)
	})
	payroll.RegisterKind(KindHourly, func(cfg payroll.EmployeeConfig) (payroll.Employee, error) {
		return NewHourly(cfg.ID, cfg.WorkHours, cfg.AllowanceAmount, cfg.AllowancePeriod, cfg.HourlyRate, cfg.Tax)
	})
}
