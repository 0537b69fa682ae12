/*
processor.go - The compute-once payroll pipeline

PURPOSE:
  Orchestrates one payroll calculation: compute gross, derive the
  deduction from that gross, subtract, stamp the time, append the record.

COMPUTE-ONCE DISCIPLINE:
  Each field is computed exactly once per call. Gross is computed first;
  the deduction is derived from that explicit gross value; net is the
  subtraction of the two. Nothing is recomputed independently, so the
  record always satisfies Net == Gross - Deductions exactly.

CONSTRUCT-THEN-APPEND:
  The record is fully built before the ledger sees it. Any failure
  during computation leaves the store untouched; there is no
  half-written record state.

SEE ALSO:
  - employee.go: The capability contract this pipeline drives
  - run.go: Batch processing over a roster
*/
package payroll

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// =============================================================================
// PROCESSOR - One employee, one period, one record
// =============================================================================

type Processor struct {
	Ledger Ledger
	Clock  Clock
}

func NewProcessor(ledger Ledger) *Processor {
	return &Processor{Ledger: ledger, Clock: SystemClock{}}
}

// Compute builds the full payroll record for one employee and period
// without touching the store. Pure except for the clock read and id mint.
func (p *Processor) Compute(e Employee, period PayPeriod) (PayrollRecord, error) {
	gross, err := e.Gross()
	if err != nil {
		return PayrollRecord{}, fmt.Errorf("compute gross for %s: %w", e.EmployeeID(), err)
	}
	deduction := e.Deduction(gross)
	net := gross.Sub(deduction)

	return PayrollRecord{
		ID:          RecordID(uuid.NewString()),
		EmployeeID:  e.EmployeeID(),
		Kind:        e.Kind(),
		PayPeriod:   period,
		ProcessedAt: p.Clock.Now().UTC(),
		Gross:       gross,
		Deductions:  deduction,
		Net:         net,
	}, nil
}

// Process computes the record and appends it. Returns the stored record.
func (p *Processor) Process(ctx context.Context, e Employee, period PayPeriod) (PayrollRecord, error) {
	rec, err := p.Compute(e, period)
	if err != nil {
		return PayrollRecord{}, err
	}
	if err := p.Ledger.Append(ctx, rec); err != nil {
		return PayrollRecord{}, err
	}
	return rec, nil
}
