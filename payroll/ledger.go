/*
ledger.go - Append-only record log

PURPOSE:
  The Ledger is the surface processors and handlers talk to. It mirrors
  the Store interface and adds a summary snapshot cache, so repeated
  aggregate reads between appends don't re-walk the full record log.

CRITICAL INVARIANTS:
  1. APPEND-ONLY: No Update, No Delete. EVER.
  2. IMMUTABLE: Once written, records are never modified
  3. ORDERED: Reads preserve insertion order
  4. CONSISTENT: Summary always equals Summarize(Records)

SEE ALSO:
  - store.go: Low-level persistence interface
  - snapshot.go: The summary cache
  - processor.go: The main writer
*/
package payroll

import "context"

// =============================================================================
// LEDGER - Append-only record log
// =============================================================================

// Ledger is the record log the rest of the system consumes.
//
// INVARIANTS:
//   - Append-only: No Update, No Delete. EVER.
//   - Immutable: Once written, records cannot be modified.
//   - Ordered: Reads return insertion order.
type Ledger interface {
	// Append adds one record. This and AppendBatch are the ONLY write
	// operations.
	Append(ctx context.Context, rec PayrollRecord) error

	// AppendBatch adds multiple records atomically.
	// Used by pay runs (whole roster = one batch).
	AppendBatch(ctx context.Context, recs []PayrollRecord) error

	// Records returns all records in insertion order. Read-only.
	Records(ctx context.Context) ([]PayrollRecord, error)

	// RecordsForEmployee filters by employee, insertion order preserved.
	// An unmatched id yields an empty slice, not an error.
	RecordsForEmployee(ctx context.Context, id EmployeeID) ([]PayrollRecord, error)

	// Record returns one record by id, or ErrRecordNotFound.
	Record(ctx context.Context, id RecordID) (PayrollRecord, error)

	// Summary returns aggregate totals over all records.
	// This is a derived value, computed from records.
	Summary(ctx context.Context) (Summary, error)
}

// =============================================================================
// DEFAULT LEDGER - Implementation using Store
// =============================================================================

type DefaultLedger struct {
	Store Store

	cache summaryCache
}

func NewLedger(store Store) *DefaultLedger {
	return &DefaultLedger{Store: store}
}

func (l *DefaultLedger) Append(ctx context.Context, rec PayrollRecord) error {
	if err := l.Store.Append(ctx, rec); err != nil {
		return err
	}
	l.cache.Invalidate()
	return nil
}

func (l *DefaultLedger) AppendBatch(ctx context.Context, recs []PayrollRecord) error {
	if err := l.Store.AppendBatch(ctx, recs); err != nil {
		return err
	}
	if len(recs) > 0 {
		l.cache.Invalidate()
	}
	return nil
}

func (l *DefaultLedger) Records(ctx context.Context) ([]PayrollRecord, error) {
	return l.Store.Records(ctx)
}

func (l *DefaultLedger) RecordsForEmployee(ctx context.Context, id EmployeeID) ([]PayrollRecord, error) {
	return l.Store.RecordsForEmployee(ctx, id)
}

func (l *DefaultLedger) Record(ctx context.Context, id RecordID) (PayrollRecord, error) {
	return l.Store.Record(ctx, id)
}

func (l *DefaultLedger) Summary(ctx context.Context) (Summary, error) {
	return l.cache.Get(func() (Summary, error) {
		return l.Store.Summary(ctx)
	})
}

// Compile-time check that DefaultLedger implements Ledger.
var _ Ledger = (*DefaultLedger)(nil)
