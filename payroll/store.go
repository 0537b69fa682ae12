/*
store.go - Persistence interface for payroll records

PURPOSE:
  Defines the interface between the engine and record storage. The Store
  handles persistence while maintaining append-only semantics. Different
  implementations can use in-memory slices or SQLite; nothing above this
  interface knows which.

APPEND-ONLY CONTRACT:
  - Append(): single record write
  - AppendBatch(): atomic multi-record write (pay runs)
  - NO Update() or Delete() methods exist

ORDERING:
  Reads return records in insertion order, always. A record appended
  first is read first; per-employee filters preserve the same order.

NOT-FOUND SEMANTICS:
  RecordsForEmployee with no matches returns an EMPTY SLICE and nil
  error. An employee with no history is a normal outcome, not a failure.
  Record (point lookup by id) is the exception: a missing id there is
  ErrRecordNotFound.

IMPLEMENTATIONS:
  - payroll/store/memory.go: RWMutex in-memory store (default)
  - store/sqlite/sqlite.go: SQLite, ephemeral :memory: by default

SEE ALSO:
  - ledger.go: Higher-level interface using Store
  - summary.go: Aggregate totals computed over full reads
*/
package payroll

import "context"

// =============================================================================
// STORE - Interface for record persistence (append-only)
// =============================================================================

// Store handles persistence of payroll records.
// IMPORTANT: Store is APPEND-ONLY. No Update, No Delete. Ever.
type Store interface {
	// Append persists one record. This and AppendBatch are the ONLY
	// write operations.
	Append(ctx context.Context, rec PayrollRecord) error

	// AppendBatch persists multiple records atomically.
	// Either all succeed or none do.
	AppendBatch(ctx context.Context, recs []PayrollRecord) error

	// Records returns all records in insertion order.
	Records(ctx context.Context) ([]PayrollRecord, error)

	// RecordsForEmployee returns the employee's records in insertion
	// order. No matches means an empty slice, never an error.
	RecordsForEmployee(ctx context.Context, id EmployeeID) ([]PayrollRecord, error)

	// Record returns one record by id, or ErrRecordNotFound.
	Record(ctx context.Context, id RecordID) (PayrollRecord, error)

	// Summary returns aggregate totals over all records.
	Summary(ctx context.Context) (Summary, error)
}
