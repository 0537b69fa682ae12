package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/payroll-engine/payroll"
	"github.com/warp/payroll-engine/payroll/store"
)

// =============================================================================
// TEST SETUP
// =============================================================================

func record(id, employeeID string, gross int64) payroll.PayrollRecord {
	g := payroll.IDRFromInt(gross)
	d := g.Mul(payroll.MustParseDecimal("0.08"))
	return payroll.PayrollRecord{
		ID:          payroll.RecordID(id),
		EmployeeID:  payroll.EmployeeID(employeeID),
		Kind:        "salaried",
		PayPeriod:   "September 2024",
		ProcessedAt: time.Date(2024, time.September, 30, 12, 0, 0, 0, time.UTC),
		Gross:       g,
		Deductions:  d,
		Net:         g.Sub(d),
	}
}

// =============================================================================
// MEMORY STORE TESTS
// =============================================================================

func TestMemory_AppendAndReadInsertionOrder(t *testing.T) {
	m := store.NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Append(ctx, record("r1", "FT001", 10_000_000)))
	require.NoError(t, m.Append(ctx, record("r2", "CT001", 9_000_000)))
	require.NoError(t, m.Append(ctx, record("r3", "FT001", 11_000_000)))

	recs, err := m.Records(ctx)
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Equal(t, payroll.RecordID("r1"), recs[0].ID)
	assert.Equal(t, payroll.RecordID("r2"), recs[1].ID)
	assert.Equal(t, payroll.RecordID("r3"), recs[2].ID)
}

func TestMemory_RecordsForEmployee_FilterPreservesOrder(t *testing.T) {
	m := store.NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Append(ctx, record("r1", "FT001", 10_000_000)))
	require.NoError(t, m.Append(ctx, record("r2", "CT001", 9_000_000)))
	require.NoError(t, m.Append(ctx, record("r3", "FT001", 11_000_000)))

	recs, err := m.RecordsForEmployee(ctx, "FT001")
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, payroll.RecordID("r1"), recs[0].ID)
	assert.Equal(t, payroll.RecordID("r3"), recs[1].ID)
}

func TestMemory_RecordsForEmployee_NoMatchesIsEmptyNotError(t *testing.T) {
	m := store.NewMemory()

	recs, err := m.RecordsForEmployee(context.Background(), "ghost")
	require.NoError(t, err, "no matches is a normal outcome")
	assert.Empty(t, recs)
	assert.NotNil(t, recs)
}

func TestMemory_RecordPointLookup(t *testing.T) {
	m := store.NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Append(ctx, record("r1", "FT001", 10_000_000)))

	got, err := m.Record(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, payroll.EmployeeID("FT001"), got.EmployeeID)

	_, err = m.Record(ctx, "missing")
	assert.ErrorIs(t, err, payroll.ErrRecordNotFound)
}

func TestMemory_AppendBatch(t *testing.T) {
	m := store.NewMemory()
	ctx := context.Background()

	batch := []payroll.PayrollRecord{
		record("r1", "FT001", 10_000_000),
		record("r2", "CT001", 9_000_000),
	}
	require.NoError(t, m.AppendBatch(ctx, batch))

	recs, err := m.Records(ctx)
	require.NoError(t, err)
	assert.Len(t, recs, 2)
}

func TestMemory_SummaryInvariant(t *testing.T) {
	m := store.NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Append(ctx, record("r1", "FT001", 10_000_000)))
	require.NoError(t, m.Append(ctx, record("r2", "CT001", 9_000_000)))

	summary, err := m.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Count)
	assert.True(t, summary.TotalGross.Sub(summary.TotalDeductions).Equal(summary.TotalNet),
		"TotalGross - TotalDeductions must equal TotalNet")
}

func TestMemory_ReadsReturnCopies(t *testing.T) {
	m := store.NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Append(ctx, record("r1", "FT001", 10_000_000)))

	recs, err := m.Records(ctx)
	require.NoError(t, err)
	recs[0].EmployeeID = "tampered"

	again, err := m.Records(ctx)
	require.NoError(t, err)
	assert.Equal(t, payroll.EmployeeID("FT001"), again[0].EmployeeID,
		"mutating a read slice must not reach the log")
}
