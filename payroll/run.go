/*
run.go - Batch payroll runs over the roster

PURPOSE:
  A pay run processes every rostered employee for one period as a single
  atomic batch. The run computes all records first (construct phase, no
  mutation), then appends the whole batch. A failure while computing any
  employee's pay aborts the run before the store sees anything.

ATOMICITY:
  Construct-then-append at batch scale: AppendBatch is all-or-nothing,
  so a run can never leave a partially paid roster behind.

SEE ALSO:
  - processor.go: Single-employee processing the run is built from
  - roster.go: The employee set being walked
  - api/scheduler.go: Periodic automated runs
*/
package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// PAY RUN - One period across the whole roster
// =============================================================================

// PayRun is the result of processing the full roster for one period.
type PayRun struct {
	ID        RunID
	PayPeriod PayPeriod
	StartedAt time.Time

	// Records in roster registration order.
	Records []PayrollRecord

	// Aggregate over just this run's records.
	Summary Summary
}

// =============================================================================
// RUNNER - Orchestrates batch runs
// =============================================================================

type Runner struct {
	Roster    *Roster
	Ledger    Ledger
	Processor *Processor
}

func NewRunner(roster *Roster, ledger Ledger) *Runner {
	return &Runner{
		Roster:    roster,
		Ledger:    ledger,
		Processor: NewProcessor(ledger),
	}
}

// RunAll processes every rostered employee for the period.
// An empty roster yields a valid empty run.
func (r *Runner) RunAll(ctx context.Context, period PayPeriod) (PayRun, error) {
	run := PayRun{
		ID:        RunID(uuid.NewString()),
		PayPeriod: period,
		StartedAt: r.Processor.Clock.Now().UTC(),
	}

	// 1. Construct phase: compute every record, touch nothing.
	employees := r.Roster.All()
	records := make([]PayrollRecord, 0, len(employees))
	for _, e := range employees {
		rec, err := r.Processor.Compute(e, period)
		if err != nil {
			return PayRun{}, fmt.Errorf("pay run %s: %w", run.ID, err)
		}
		records = append(records, rec)
	}

	// 2. Append phase: the whole batch or nothing.
	if err := r.Ledger.AppendBatch(ctx, records); err != nil {
		return PayRun{}, fmt.Errorf("pay run %s: %w", run.ID, err)
	}

	run.Records = records
	run.Summary = Summarize(records)
	return run, nil
}
