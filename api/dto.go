/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the internal domain model from the external API contract.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

AMOUNTS:
  Money fields travel as strings with exactly two decimal places. The
  two-decimal boundary lives here and in presentation only; the engine
  keeps full decimal precision.

VALIDATION:
  Validation is done in handlers, not in DTOs. DTOs are pure data
  carriers. Employee creation reuses factory.EmployeeJSON directly as
  its request body.

SEE ALSO:
  - handlers.go: Uses these types
  - factory/employee.go: EmployeeJSON, the create-employee body
*/
package api

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/warp/payroll-engine/payroll"
)

// =============================================================================
// REQUEST/RESPONSE TYPES
// =============================================================================

// EmployeeDTO represents a rostered employee in API responses.
type EmployeeDTO struct {
	ID              string  `json:"id"`
	Kind            string  `json:"kind"`
	WorkHours       float64 `json:"work_hours"`
	AllowanceAmount string  `json:"allowance_amount"`
	AllowancePeriod string  `json:"allowance_period"`
}

// RecordDTO represents one payroll record in API responses.
type RecordDTO struct {
	ID          string `json:"id"`
	EmployeeID  string `json:"employee_id"`
	Kind        string `json:"kind"`
	PayPeriod   string `json:"pay_period"`
	ProcessedAt string `json:"processed_at"`
	Gross       string `json:"gross"`
	Deductions  string `json:"deductions"`
	Net         string `json:"net"`
}

// SummaryDTO represents the aggregate totals over the record log.
type SummaryDTO struct {
	Count           int    `json:"count"`
	TotalGross      string `json:"total_gross"`
	TotalNet        string `json:"total_net"`
	TotalDeductions string `json:"total_deductions"`
}

// ProcessRequest asks for one employee to be processed for one period.
type ProcessRequest struct {
	EmployeeID string `json:"employee_id"`
	PayPeriod  string `json:"pay_period"`
}

// RunRequest asks for a batch pay run over the whole roster.
type RunRequest struct {
	PayPeriod string `json:"pay_period"`
}

// RunDTO represents the result of a batch pay run.
type RunDTO struct {
	ID        string      `json:"id"`
	PayPeriod string      `json:"pay_period"`
	StartedAt string      `json:"started_at"`
	Records   []RecordDTO `json:"records"`
	Summary   SummaryDTO  `json:"summary"`
}

// ProjectionRequest asks for what-if calculations over planned periods.
type ProjectionRequest struct {
	Periods []PlannedPeriodDTO `json:"periods"`
}

// PlannedPeriodDTO is one hypothetical period. Zero work hours means
// "keep the employee's current hours".
type PlannedPeriodDTO struct {
	Period    string  `json:"period"`
	WorkHours float64 `json:"work_hours,omitempty"`
}

// ProjectionDTO is the computed outcome for one planned period.
type ProjectionDTO struct {
	Period     string  `json:"period"`
	WorkHours  float64 `json:"work_hours"`
	Gross      string  `json:"gross"`
	Deductions string  `json:"deductions"`
	Net        string  `json:"net"`
}

// =============================================================================
// CONVERSIONS
// =============================================================================

func toEmployeeDTO(e payroll.Employee) EmployeeDTO {
	amount, period := e.Allowance()
	hours, _ := e.WorkHours().Float64()
	return EmployeeDTO{
		ID:              string(e.EmployeeID()),
		Kind:            string(e.Kind()),
		WorkHours:       hours,
		AllowanceAmount: amount.StringFixed2(),
		AllowancePeriod: string(period),
	}
}

func toRecordDTO(rec payroll.PayrollRecord) RecordDTO {
	return RecordDTO{
		ID:          string(rec.ID),
		EmployeeID:  string(rec.EmployeeID),
		Kind:        string(rec.Kind),
		PayPeriod:   string(rec.PayPeriod),
		ProcessedAt: rec.ProcessedAt.Format(time.RFC3339),
		Gross:       rec.Gross.StringFixed2(),
		Deductions:  rec.Deductions.StringFixed2(),
		Net:         rec.Net.StringFixed2(),
	}
}

func toRecordDTOs(recs []payroll.PayrollRecord) []RecordDTO {
	dtos := make([]RecordDTO, len(recs))
	for i, rec := range recs {
		dtos[i] = toRecordDTO(rec)
	}
	return dtos
}

func toSummaryDTO(s payroll.Summary) SummaryDTO {
	return SummaryDTO{
		Count:           s.Count,
		TotalGross:      s.TotalGross.StringFixed2(),
		TotalNet:        s.TotalNet.StringFixed2(),
		TotalDeductions: s.TotalDeductions.StringFixed2(),
	}
}

func toRunDTO(run payroll.PayRun) RunDTO {
	return RunDTO{
		ID:        string(run.ID),
		PayPeriod: string(run.PayPeriod),
		StartedAt: run.StartedAt.Format(time.RFC3339),
		Records:   toRecordDTOs(run.Records),
		Summary:   toSummaryDTO(run.Summary),
	}
}

func decimalFromFloat(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

func toProjectionDTOs(projections []payroll.Projection) []ProjectionDTO {
	dtos := make([]ProjectionDTO, len(projections))
	for i, p := range projections {
		hours, _ := p.WorkHours.Float64()
		dtos[i] = ProjectionDTO{
			Period:     string(p.Period),
			WorkHours:  hours,
			Gross:      p.Gross.StringFixed2(),
			Deductions: p.Deductions.StringFixed2(),
			Net:        p.Net.StringFixed2(),
		}
	}
	return dtos
}
