package api_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/payroll-engine/api"
	"github.com/warp/payroll-engine/payroll"
	"github.com/warp/payroll-engine/payroll/store"
)

// =============================================================================
// TEST SETUP
// =============================================================================

// slowEmployee is a minimal roster entry whose gross computation can be
// made to take a while, to hold a pay run in flight.
type slowEmployee struct {
	id    payroll.EmployeeID
	delay time.Duration
}

func (e *slowEmployee) EmployeeID() payroll.EmployeeID { return e.id }
func (e *slowEmployee) Kind() payroll.Kind             { return payroll.Kind("hourly") }
func (e *slowEmployee) WorkHours() decimal.Decimal     { return decimal.NewFromInt(160) }

func (e *slowEmployee) Allowance() (payroll.Amount, payroll.AllowancePeriod) {
	return payroll.ZeroIDR(), payroll.AllowanceMonthly
}

func (e *slowEmployee) WithWorkHours(hours decimal.Decimal) (payroll.Employee, error) {
	cp := *e
	return &cp, nil
}

func (e *slowEmployee) Gross() (payroll.Amount, error) {
	if e.delay > 0 {
		time.Sleep(e.delay)
	}
	return payroll.IDRFromInt(1_000_000), nil
}

func (e *slowEmployee) Deduction(gross payroll.Amount) payroll.Amount {
	return gross.Mul(decimal.NewFromFloat(0.1))
}

func (e *slowEmployee) Net() (payroll.Amount, error) {
	gross, err := e.Gross()
	if err != nil {
		return payroll.Amount{}, err
	}
	return gross.Sub(e.Deduction(gross)), nil
}

func newTestScheduler(t *testing.T, emp payroll.Employee) (*api.PayRunScheduler, payroll.Ledger) {
	t.Helper()
	roster := payroll.NewRoster()
	require.NoError(t, roster.Add(emp))
	ledger := payroll.NewLedger(store.NewMemory())

	s := api.NewPayRunScheduler(payroll.NewRunner(roster, ledger))
	s.Enabled = true
	s.CheckInterval = 5 * time.Millisecond
	s.Clock = payroll.FixedClock{At: time.Date(2024, time.September, 15, 9, 0, 0, 0, time.UTC)}
	return s, ledger
}

// =============================================================================
// SCHEDULER BEHAVIOR
// =============================================================================

func TestScheduler_RunsEachPeriodAtMostOnce(t *testing.T) {
	// GIVEN a scheduler whose clock is pinned inside one month
	s, ledger := newTestScheduler(t, &slowEmployee{id: "E1"})

	// WHEN it starts and many check intervals elapse
	s.Start()
	time.Sleep(80 * time.Millisecond)
	s.Stop()

	// THEN exactly one batch landed: later ticks saw the period done
	recs, err := ledger.Records(context.Background())
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, payroll.EmployeeID("E1"), recs[0].EmployeeID)
	assert.Equal(t, payroll.PayPeriod("September 2024"), recs[0].PayPeriod)
}

func TestScheduler_StopDuringRunReturnsPromptly(t *testing.T) {
	// GIVEN a pay run held in flight by a slow gross computation
	s, ledger := newTestScheduler(t, &slowEmployee{id: "E1", delay: 300 * time.Millisecond})
	s.Start()
	time.Sleep(50 * time.Millisecond)

	// WHEN Stop is called mid-run
	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()

	// THEN it returns once the run completes, not never
	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("Stop did not return while a pay run was in flight")
	}

	recs, err := ledger.Records(context.Background())
	require.NoError(t, err)
	assert.Len(t, recs, 1, "the in-flight run completes before shutdown")
}

func TestScheduler_DisabledDoesNotRun(t *testing.T) {
	s, ledger := newTestScheduler(t, &slowEmployee{id: "E1"})
	s.Enabled = false

	s.Start()
	time.Sleep(30 * time.Millisecond)
	s.Stop()

	recs, err := ledger.Records(context.Background())
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestScheduler_StopWithoutStartIsSafe(t *testing.T) {
	s, _ := newTestScheduler(t, &slowEmployee{id: "E1"})
	s.Stop() // never started; must not block or panic
}
