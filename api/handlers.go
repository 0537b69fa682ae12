/*
handlers.go - HTTP API handlers for the payroll engine

PURPOSE:
  Exposes the payroll engine via REST API. Handles HTTP
  request/response, JSON serialization, and delegates to domain logic.

ENDPOINTS:
  Employees:
    GET    /api/employees                    List the roster
    POST   /api/employees                    Create employee from JSON
    GET    /api/employees/{id}               Get one employee
    GET    /api/employees/{id}/records       The employee's payroll history
    POST   /api/employees/{id}/projection    What-if pay calculations

  Payroll:
    POST   /api/payroll/process              Process one employee
    POST   /api/payroll/run                  Batch run over the roster
    GET    /api/payroll/records              All records
    GET    /api/payroll/records/{id}/payslip PDF payslip
    GET    /api/payroll/summary              Aggregate totals

REQUEST FLOW:
  1. Parse HTTP request
  2. Validate input
  3. Call domain logic (roster, processor, runner, ledger)
  4. Serialize response
  5. Handle errors

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, invalid input, duplicate employee
  - 404: Employee or record not found
  - 500: Internal errors
  A records filter with no matches is 200 + [], never 404: an employee
  with no history is a normal outcome.

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
  - scheduler.go: Automated pay runs
*/
package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/warp/payroll-engine/factory"
	"github.com/warp/payroll-engine/metrics"
	"github.com/warp/payroll-engine/payroll"
	"github.com/warp/payroll-engine/payslip"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// PayslipRenderer turns one payroll record into a PDF document.
type PayslipRenderer interface {
	Render(w io.Writer, rec payroll.PayrollRecord) error
}

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Roster    *payroll.Roster
	Ledger    payroll.Ledger
	Processor *payroll.Processor
	Runner    *payroll.Runner
	Factory   *factory.EmployeeFactory
	Payslips  PayslipRenderer
}

// NewHandler creates a handler over the given roster and ledger.
func NewHandler(roster *payroll.Roster, ledger payroll.Ledger) *Handler {
	runner := payroll.NewRunner(roster, ledger)
	return &Handler{
		Roster:    roster,
		Ledger:    ledger,
		Processor: runner.Processor,
		Runner:    runner,
		Factory:   factory.NewEmployeeFactory(),
		Payslips:  payslip.NewRenderer(),
	}
}

// =============================================================================
// EMPLOYEE HANDLERS
// =============================================================================

// ListEmployees returns the roster in registration order.
func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees := h.Roster.All()

	dtos := make([]EmployeeDTO, len(employees))
	for i, e := range employees {
		dtos[i] = toEmployeeDTO(e)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetEmployee returns a single rostered employee.
func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id := payroll.EmployeeID(chi.URLParam(r, "id"))

	emp, err := h.Roster.Find(id)
	if err != nil {
		writeDomainError(w, "Failed to get employee", err)
		return
	}
	writeJSON(w, http.StatusOK, toEmployeeDTO(emp))
}

// CreateEmployee builds an employee from its JSON definition and adds
// it to the roster.
func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	emp, err := h.Factory.ParseEmployee(body)
	if err != nil {
		writeDomainError(w, "Failed to create employee", err)
		return
	}

	if err := h.Roster.Add(emp); err != nil {
		writeDomainError(w, "Failed to register employee", err)
		return
	}
	metrics.SetRosterSize(h.Roster.Size())

	writeJSON(w, http.StatusCreated, toEmployeeDTO(emp))
}

// GetEmployeeRecords returns the employee's payroll history. An unknown
// or never-processed id yields 200 with an empty array.
func (h *Handler) GetEmployeeRecords(w http.ResponseWriter, r *http.Request) {
	id := payroll.EmployeeID(chi.URLParam(r, "id"))

	recs, err := h.Ledger.RecordsForEmployee(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get records", err)
		return
	}
	writeJSON(w, http.StatusOK, toRecordDTOs(recs))
}

// ProjectEmployee computes what-if pay outcomes for planned periods.
// Nothing is stored.
func (h *Handler) ProjectEmployee(w http.ResponseWriter, r *http.Request) {
	id := payroll.EmployeeID(chi.URLParam(r, "id"))

	emp, err := h.Roster.Find(id)
	if err != nil {
		writeDomainError(w, "Failed to get employee", err)
		return
	}

	var req ProjectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if len(req.Periods) == 0 {
		writeError(w, http.StatusBadRequest, "At least one planned period is required", nil)
		return
	}

	plans := make([]payroll.PlannedPeriod, len(req.Periods))
	for i, p := range req.Periods {
		plans[i] = payroll.PlannedPeriod{
			Period:    payroll.PayPeriod(p.Period),
			WorkHours: decimalFromFloat(p.WorkHours),
		}
	}

	projections, err := payroll.Project(emp, plans)
	if err != nil {
		writeDomainError(w, "Failed to project pay", err)
		return
	}
	writeJSON(w, http.StatusOK, toProjectionDTOs(projections))
}

// =============================================================================
// PAYROLL HANDLERS
// =============================================================================

// ProcessPayroll processes one rostered employee for one period.
func (h *Handler) ProcessPayroll(w http.ResponseWriter, r *http.Request) {
	var req ProcessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if strings.TrimSpace(req.PayPeriod) == "" {
		writeError(w, http.StatusBadRequest, "pay_period is required", nil)
		return
	}

	emp, err := h.Roster.Find(payroll.EmployeeID(req.EmployeeID))
	if err != nil {
		writeDomainError(w, "Failed to find employee", err)
		return
	}

	start := time.Now()
	rec, err := h.Processor.Process(r.Context(), emp, payroll.PayPeriod(req.PayPeriod))
	if err != nil {
		writeDomainError(w, "Failed to process payroll", err)
		return
	}
	metrics.ObserveProcessed(string(rec.Kind), time.Since(start))

	writeJSON(w, http.StatusCreated, toRecordDTO(rec))
}

// RunPayroll processes the whole roster for one period as an atomic
// batch.
func (h *Handler) RunPayroll(w http.ResponseWriter, r *http.Request) {
	var req RunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if strings.TrimSpace(req.PayPeriod) == "" {
		writeError(w, http.StatusBadRequest, "pay_period is required", nil)
		return
	}

	run, err := h.Runner.RunAll(r.Context(), payroll.PayPeriod(req.PayPeriod))
	if err != nil {
		metrics.ObserveRun("error")
		writeDomainError(w, "Failed to run payroll", err)
		return
	}
	metrics.ObserveRun("success")

	writeJSON(w, http.StatusCreated, toRunDTO(run))
}

// ListRecords returns every payroll record in insertion order.
func (h *Handler) ListRecords(w http.ResponseWriter, r *http.Request) {
	recs, err := h.Ledger.Records(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list records", err)
		return
	}
	writeJSON(w, http.StatusOK, toRecordDTOs(recs))
}

// GetPayslip streams one record's payslip as a PDF.
func (h *Handler) GetPayslip(w http.ResponseWriter, r *http.Request) {
	id := payroll.RecordID(chi.URLParam(r, "id"))

	rec, err := h.Ledger.Record(r.Context(), id)
	if err != nil {
		writeDomainError(w, "Failed to get record", err)
		return
	}

	// Render into a buffer first so a failure can still become a 500
	// instead of a truncated 200.
	var buf bytes.Buffer
	if err := h.Payslips.Render(&buf, rec); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to render payslip", err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `inline; filename="payslip-`+string(rec.ID)+`.pdf"`)
	w.Write(buf.Bytes())
}

// GetSummary returns the aggregate totals over the whole record log.
func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Ledger.Summary(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get summary", err)
		return
	}
	writeJSON(w, http.StatusOK, toSummaryDTO(summary))
}

// Health is the liveness probe.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// =============================================================================
// HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	body := map[string]string{"error": message}
	if err != nil {
		body["detail"] = err.Error()
	}
	writeJSON(w, status, body)
}

// writeDomainError maps engine errors onto HTTP statuses: client input
// errors are 400, missing employees/records are 404, the rest are 500.
func writeDomainError(w http.ResponseWriter, message string, err error) {
	switch {
	case payroll.IsClientError(err):
		writeError(w, http.StatusBadRequest, message, err)
	case payroll.IsNotFound(err):
		writeError(w, http.StatusNotFound, message, err)
	default:
		writeError(w, http.StatusInternalServerError, message, err)
	}
}
