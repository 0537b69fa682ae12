/*
Package factory provides JSON to Go employee conversion.

PURPOSE:
  Converts JSON employee definitions into constructed payroll.Employee
  values via the engine's kind registry. This is what lets the API
  accept employees as plain JSON documents without the api package
  knowing any concrete variant type.

JSON SCHEMA:
  {
    "kind": "salaried",
    "id": "FT001",
    "work_hours": 180,
    "base_salary": 8000000,
    "allowance": {"amount": 2000000, "period": "monthly"},
    "tax": {"type": "flat_rate", "rate": 0.025}
  }

KEY FEATURES:
  - Resolves the kind through the payroll registry (closed variant set)
  - Accepts "fulltime"/"contract" as kind aliases
  - Optional tax override: progressive (with optional custom brackets)
    or flat_rate (with optional custom rate); absent means the
    variant's default
  - Constructor validation errors (negative input, empty id, bad
    period) pass through unwrapped so callers classify with errors.Is

USAGE:
  factory := NewEmployeeFactory()
  emp, err := factory.ParseEmployee(jsonBytes)

SEE ALSO:
  - payroll/employee.go: The kind registry this dispatches through
  - employee/types.go: Where the variants register themselves
  - api/handlers.go: The main consumer
*/
package factory

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/warp/payroll-engine/payroll"
)

// =============================================================================
// JSON SCHEMA TYPES
// =============================================================================

// EmployeeJSON is the JSON representation of one employee definition.
type EmployeeJSON struct {
	Kind      string  `json:"kind"`
	ID        string  `json:"id"`
	WorkHours float64 `json:"work_hours"`

	// Salaried only.
	BaseSalary float64 `json:"base_salary,omitempty"`

	// Hourly only.
	HourlyRate float64 `json:"hourly_rate,omitempty"`

	Allowance AllowanceJSON `json:"allowance"`

	// Optional strategy override; absent means the variant's default.
	Tax *TaxJSON `json:"tax,omitempty"`
}

// AllowanceJSON carries the raw allowance amount and its period tag.
type AllowanceJSON struct {
	Amount float64 `json:"amount"`
	Period string  `json:"period"`
}

// TaxJSON selects and parameterizes a tax strategy.
type TaxJSON struct {
	Type     string        `json:"type"` // progressive, flat_rate
	Rate     *float64      `json:"rate,omitempty"`
	Brackets []BracketJSON `json:"brackets,omitempty"`
	TopRate  *float64      `json:"top_rate,omitempty"`
}

// BracketJSON is one progressive bracket line.
type BracketJSON struct {
	UpTo float64 `json:"up_to"`
	Rate float64 `json:"rate"`
}

// =============================================================================
// EMPLOYEE FACTORY
// =============================================================================

// EmployeeFactory converts JSON employee definitions to Go values.
type EmployeeFactory struct{}

// NewEmployeeFactory creates a new employee factory.
func NewEmployeeFactory() *EmployeeFactory {
	return &EmployeeFactory{}
}

// ParseEmployee parses one JSON employee definition and constructs it.
func (f *EmployeeFactory) ParseEmployee(data []byte) (payroll.Employee, error) {
	var def EmployeeJSON
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("invalid employee JSON: %w", err)
	}
	return f.BuildEmployee(def)
}

// ParseEmployees parses a JSON array of employee definitions.
func (f *EmployeeFactory) ParseEmployees(data []byte) ([]payroll.Employee, error) {
	var defs []EmployeeJSON
	if err := json.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("invalid employee JSON array: %w", err)
	}

	employees := make([]payroll.Employee, 0, len(defs))
	for i, def := range defs {
		emp, err := f.BuildEmployee(def)
		if err != nil {
			return nil, fmt.Errorf("employee %d: %w", i, err)
		}
		employees = append(employees, emp)
	}
	return employees, nil
}

// BuildEmployee constructs an employee from an already-decoded definition.
func (f *EmployeeFactory) BuildEmployee(def EmployeeJSON) (payroll.Employee, error) {
	kind, err := parseKind(def.Kind)
	if err != nil {
		return nil, err
	}

	period, err := payroll.ParseAllowancePeriod(def.Allowance.Period)
	if err != nil {
		return nil, err
	}

	tax, err := buildTax(def.Tax)
	if err != nil {
		return nil, err
	}

	cfg := payroll.EmployeeConfig{
		ID:              payroll.EmployeeID(strings.TrimSpace(def.ID)),
		WorkHours:       decimal.NewFromFloat(def.WorkHours),
		AllowanceAmount: payroll.IDR(def.Allowance.Amount),
		AllowancePeriod: period,
		BaseSalary:      payroll.IDR(def.BaseSalary),
		HourlyRate:      payroll.IDR(def.HourlyRate),
		Tax:             tax,
	}
	return payroll.BuildEmployee(kind, cfg)
}

// parseKind maps a kind tag onto the registry vocabulary. The HR-side
// names "fulltime" and "contract" are accepted as aliases.
func parseKind(s string) (payroll.Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "salaried", "fulltime", "ft":
		return payroll.Kind("salaried"), nil
	case "hourly", "contract", "ct":
		return payroll.Kind("hourly"), nil
	default:
		return "", fmt.Errorf("%w: %q", payroll.ErrUnknownKind, s)
	}
}

// buildTax resolves an optional tax override. A nil definition selects
// the variant default at construction time.
func buildTax(def *TaxJSON) (payroll.TaxStrategy, error) {
	if def == nil {
		return nil, nil
	}

	switch strings.ToLower(strings.TrimSpace(def.Type)) {
	case "progressive":
		if len(def.Brackets) == 0 {
			return payroll.DefaultProgressiveTax(), nil
		}
		tax := payroll.ProgressiveBracketTax{
			Brackets: make([]payroll.TaxBracket, 0, len(def.Brackets)),
			TopRate:  payroll.DefaultProgressiveTax().TopRate,
		}
		for _, b := range def.Brackets {
			tax.Brackets = append(tax.Brackets, payroll.TaxBracket{
				UpTo: decimal.NewFromFloat(b.UpTo),
				Rate: decimal.NewFromFloat(b.Rate),
			})
		}
		if def.TopRate != nil {
			tax.TopRate = decimal.NewFromFloat(*def.TopRate)
		}
		return tax, nil

	case "flat_rate":
		if def.Rate == nil {
			return payroll.DefaultFlatTax(), nil
		}
		return payroll.FlatRateTax{Rate: decimal.NewFromFloat(*def.Rate)}, nil

	default:
		return nil, fmt.Errorf("unknown tax strategy type: %q", def.Type)
	}
}
