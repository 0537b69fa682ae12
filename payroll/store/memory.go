// Package store provides Store implementations.
package store

import (
	"context"
	"sync"

	"github.com/warp/payroll-engine/payroll"
)

// =============================================================================
// MEMORY STORE - In-memory implementation (the default)
// =============================================================================

// Memory keeps the record log in process memory. A single RWMutex guards
// the log: write lock around each append, read lock around each full
// read. Reads hand out copies so callers can't reach the log itself.
type Memory struct {
	mu         sync.RWMutex
	records    []payroll.PayrollRecord
	byEmployee map[payroll.EmployeeID][]int
	byID       map[payroll.RecordID]int
}

func NewMemory() *Memory {
	return &Memory{
		byEmployee: make(map[payroll.EmployeeID][]int),
		byID:       make(map[payroll.RecordID]int),
	}
}

// Append adds a single record. Append-only.
func (m *Memory) Append(_ context.Context, rec payroll.PayrollRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.appendLocked(rec)
	return nil
}

// AppendBatch adds multiple records atomically: the lock is held across
// the whole batch, so readers see all of it or none of it.
func (m *Memory) AppendBatch(_ context.Context, recs []payroll.PayrollRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, rec := range recs {
		m.appendLocked(rec)
	}
	return nil
}

func (m *Memory) appendLocked(rec payroll.PayrollRecord) {
	i := len(m.records)
	m.records = append(m.records, rec)
	m.byEmployee[rec.EmployeeID] = append(m.byEmployee[rec.EmployeeID], i)
	if rec.ID != "" {
		m.byID[rec.ID] = i
	}
}

// Records returns all records in insertion order.
func (m *Memory) Records(_ context.Context) ([]payroll.PayrollRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]payroll.PayrollRecord, len(m.records))
	copy(result, m.records)
	return result, nil
}

// RecordsForEmployee filters by employee id, insertion order preserved.
// An unmatched id yields an empty slice, never an error.
func (m *Memory) RecordsForEmployee(_ context.Context, id payroll.EmployeeID) ([]payroll.PayrollRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	idxs := m.byEmployee[id]
	result := make([]payroll.PayrollRecord, 0, len(idxs))
	for _, i := range idxs {
		result = append(result, m.records[i])
	}
	return result, nil
}

// Record returns one record by id.
func (m *Memory) Record(_ context.Context, id payroll.RecordID) (payroll.PayrollRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i, ok := m.byID[id]
	if !ok {
		return payroll.PayrollRecord{}, payroll.ErrRecordNotFound
	}
	return m.records[i], nil
}

// Summary folds the whole log under one read lock so totals never mix
// state from two different append points.
func (m *Memory) Summary(_ context.Context) (payroll.Summary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return payroll.Summarize(m.records), nil
}

// Compile-time check that Memory implements payroll.Store.
var _ payroll.Store = (*Memory)(nil)
