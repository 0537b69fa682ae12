/*
Package sqlite provides a SQLite-backed implementation of payroll.Store.

PURPOSE:
  Implements the record store over database/sql + mattn/go-sqlite3. The
  default DSN is ":memory:", so records still live only for the process
  lifetime; a file DSN exists for local experimentation only.

APPEND-ONLY ENFORCEMENT:
  - No UPDATE statements on payroll_records
  - No DELETE statements on payroll_records

ORDERING:
  Insertion order is the AUTOINCREMENT seq column; every read orders by
  it, so reads replay the exact append order.

AMOUNT PRECISION:
  Amounts are stored as TEXT and parsed back through decimal, never
  through floating point. The summary is computed by loading and
  summing in Go rather than SQL aggregation, so SQLite's float
  arithmetic never touches money.

CONCURRENCY:
  Uses sync.RWMutex for thread-safety, matching the in-memory store's
  lock discipline: write lock around appends, read lock around each
  full read.

USAGE:
  store, err := sqlite.New(":memory:")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

  ledger := payroll.NewLedger(store)

SEE ALSO:
  - payroll/store.go: Interface definition
  - payroll/store/memory.go: In-memory implementation (the default)
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/warp/payroll-engine/payroll"
)

// DefaultDSN keeps the store ephemeral: records die with the process.
const DefaultDSN = ":memory:"

// Store implements payroll.Store using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a SQLite store for the given DSN. An empty DSN selects
// DefaultDSN (in-memory). Driver pragmas are appended to whatever
// parameters the DSN already carries.
func New(dsn string) (*Store, error) {
	if dsn == "" {
		dsn = DefaultDSN
	}
	db, err := sql.Open("sqlite3", withPragmas(dsn))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// The in-memory DSN gives every connection its own database; keep a
	// single connection so all callers see the same one.
	db.SetMaxOpenConns(1)

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return store, nil
}

// withPragmas appends the store's pragmas to the DSN, joining with "&"
// when the caller's DSN already carries query parameters.
func withPragmas(dsn string) string {
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_foreign_keys=on&_journal_mode=WAL"
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	-- Payroll records (append-only log; seq is the insertion order)
	CREATE TABLE IF NOT EXISTS payroll_records (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT NOT NULL UNIQUE,
		employee_id TEXT NOT NULL,
		kind TEXT NOT NULL,
		pay_period TEXT NOT NULL,
		processed_at TEXT NOT NULL,
		gross TEXT NOT NULL,
		deductions TEXT NOT NULL,
		net TEXT NOT NULL,
		unit TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_records_employee
		ON payroll_records(employee_id, seq);
	`

	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// STORE INTERFACE (payroll.Store)
// =============================================================================

// Append persists one record. Append-only.
func (s *Store) Append(ctx context.Context, rec payroll.PayrollRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.insertRecord(ctx, s.db, rec)
}

// AppendBatch persists multiple records atomically: one SQL transaction
// for the whole batch, rolled back on the first failure.
func (s *Store) AppendBatch(ctx context.Context, recs []payroll.PayrollRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sqlTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer sqlTx.Rollback()

	for _, rec := range recs {
		if err := s.insertRecord(ctx, sqlTx, rec); err != nil {
			return err
		}
	}
	return sqlTx.Commit()
}

func (s *Store) insertRecord(ctx context.Context, db interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}, rec payroll.PayrollRecord) error {
	query := `
		INSERT INTO payroll_records
		(id, employee_id, kind, pay_period, processed_at, gross, deductions, net, unit)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.ExecContext(ctx, query,
		string(rec.ID),
		string(rec.EmployeeID),
		string(rec.Kind),
		string(rec.PayPeriod),
		rec.ProcessedAt.Format(time.RFC3339Nano),
		rec.Gross.Value.String(),
		rec.Deductions.Value.String(),
		rec.Net.Value.String(),
		string(rec.Gross.Unit),
	)
	if err != nil {
		return fmt.Errorf("failed to append payroll record: %w", err)
	}
	return nil
}

// Records returns all records in insertion order.
func (s *Store) Records(ctx context.Context) ([]payroll.PayrollRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := selectRecords + " ORDER BY seq ASC"
	return s.queryRecords(ctx, query)
}

// RecordsForEmployee filters by employee id, insertion order preserved.
// An unmatched id yields an empty slice, never an error.
func (s *Store) RecordsForEmployee(ctx context.Context, id payroll.EmployeeID) ([]payroll.PayrollRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := selectRecords + " WHERE employee_id = ? ORDER BY seq ASC"
	return s.queryRecords(ctx, query, string(id))
}

// Record returns one record by id, or payroll.ErrRecordNotFound.
func (s *Store) Record(ctx context.Context, id payroll.RecordID) (payroll.PayrollRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := selectRecords + " WHERE id = ?"
	recs, err := s.queryRecords(ctx, query, string(id))
	if err != nil {
		return payroll.PayrollRecord{}, err
	}
	if len(recs) == 0 {
		return payroll.PayrollRecord{}, payroll.ErrRecordNotFound
	}
	return recs[0], nil
}

// Summary loads the full log under one read lock and sums in Go, so the
// totals stay in decimal arithmetic end to end.
func (s *Store) Summary(ctx context.Context) (payroll.Summary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	recs, err := s.queryRecords(ctx, selectRecords+" ORDER BY seq ASC")
	if err != nil {
		return payroll.Summary{}, err
	}
	return payroll.Summarize(recs), nil
}

// =============================================================================
// ROW SCANNING
// =============================================================================

const selectRecords = `
	SELECT id, employee_id, kind, pay_period, processed_at, gross, deductions, net, unit
	FROM payroll_records
`

func (s *Store) queryRecords(ctx context.Context, query string, args ...any) ([]payroll.PayrollRecord, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query payroll records: %w", err)
	}
	defer rows.Close()

	records := make([]payroll.PayrollRecord, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func scanRecord(rows *sql.Rows) (payroll.PayrollRecord, error) {
	var (
		rec         payroll.PayrollRecord
		processedAt string
		gross       string
		deductions  string
		net         string
		unit        string
	)

	err := rows.Scan(
		&rec.ID, &rec.EmployeeID, &rec.Kind, &rec.PayPeriod,
		&processedAt, &gross, &deductions, &net, &unit,
	)
	if err != nil {
		return rec, fmt.Errorf("failed to scan payroll record: %w", err)
	}

	rec.ProcessedAt, err = time.Parse(time.RFC3339Nano, processedAt)
	if err != nil {
		return rec, fmt.Errorf("failed to parse processed_at: %w", err)
	}

	u := payroll.Unit(unit)
	if rec.Gross, err = parseAmount(gross, u); err != nil {
		return rec, err
	}
	if rec.Deductions, err = parseAmount(deductions, u); err != nil {
		return rec, err
	}
	if rec.Net, err = parseAmount(net, u); err != nil {
		return rec, err
	}
	return rec, nil
}

func parseAmount(value string, unit payroll.Unit) (payroll.Amount, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return payroll.Amount{}, fmt.Errorf("failed to parse stored amount %q: %w", value, err)
	}
	return payroll.Amount{Value: d, Unit: unit}, nil
}

// Compile-time check that Store implements payroll.Store.
var _ payroll.Store = (*Store)(nil)
