/*
engine_test.go - Processing pipeline, roster, runs, and projections

PURPOSE:
  Validates the engine's orchestration guarantees with a stub employee:
  compute-once record construction, construct-then-append on failure,
  batch atomicity, roster uniqueness, and side-effect-free projections.

READING THESE TESTS:
  Each test has GIVEN/WHEN/THEN comments explaining the scenario.
*/
package payroll_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/warp/payroll-engine/payroll"
	"github.com/warp/payroll-engine/payroll/store"
)

// =============================================================================
// TEST INFRASTRUCTURE
// =============================================================================

// stubEmployee computes gross as hours * 100,000 and deducts a flat 10%.
// Proportional gross makes projection effects observable.
type stubEmployee struct {
	id        payroll.EmployeeID
	hours     decimal.Decimal
	failGross error
}

func stub(id string, hours int64) stubEmployee {
	return stubEmployee{id: payroll.EmployeeID(id), hours: decimal.NewFromInt(hours)}
}

func (e stubEmployee) EmployeeID() payroll.EmployeeID { return e.id }
func (e stubEmployee) Kind() payroll.Kind             { return "stub" }
func (e stubEmployee) WorkHours() decimal.Decimal     { return e.hours }

func (e stubEmployee) Allowance() (payroll.Amount, payroll.AllowancePeriod) {
	return payroll.ZeroIDR(), payroll.AllowanceMonthly
}

func (e stubEmployee) WithWorkHours(hours decimal.Decimal) (payroll.Employee, error) {
	if hours.IsNegative() {
		return nil, &payroll.NegativeInputError{Field: "workHours", Value: hours}
	}
	adjusted := e
	adjusted.hours = hours
	return adjusted, nil
}

func (e stubEmployee) Gross() (payroll.Amount, error) {
	if e.failGross != nil {
		return payroll.Amount{}, e.failGross
	}
	return payroll.IDRFromDecimal(e.hours.Mul(decimal.NewFromInt(100_000))), nil
}

func (e stubEmployee) Deduction(gross payroll.Amount) payroll.Amount {
	return gross.Mul(payroll.MustParseDecimal("0.1"))
}

func (e stubEmployee) Net() (payroll.Amount, error) {
	gross, err := e.Gross()
	if err != nil {
		return payroll.Amount{}, err
	}
	return gross.Sub(e.Deduction(gross)), nil
}

func newTestLedger() payroll.Ledger {
	return payroll.NewLedger(store.NewMemory())
}

var testInstant = time.Date(2024, time.September, 30, 12, 0, 0, 0, time.UTC)

// =============================================================================
// PROCESSOR
// =============================================================================

func TestProcessor_RecordFieldsAndNetInvariant(t *testing.T) {
	// GIVEN: A processor with a pinned clock
	// WHEN: One employee is processed for one period
	// THEN: The record carries identity, period, the pinned timestamp,
	//       and satisfies Net == Gross - Deductions exactly

	ledger := newTestLedger()
	p := payroll.NewProcessor(ledger)
	p.Clock = payroll.FixedClock{At: testInstant}

	rec, err := p.Process(context.Background(), stub("emp-1", 160), "September 2024")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rec.ID == "" {
		t.Error("record should get a minted id")
	}
	if rec.EmployeeID != "emp-1" || rec.Kind != "stub" || rec.PayPeriod != "September 2024" {
		t.Errorf("record identity fields wrong: %+v", rec)
	}
	if !rec.ProcessedAt.Equal(testInstant) {
		t.Errorf("ProcessedAt = %v, want pinned %v", rec.ProcessedAt, testInstant)
	}
	assertAmount(t, rec.Gross, payroll.IDRFromInt(16_000_000), "gross")
	assertAmount(t, rec.Net, rec.Gross.Sub(rec.Deductions), "net invariant")
}

func TestProcessor_AppendsExactlyOneRecord(t *testing.T) {
	// GIVEN: An empty ledger
	// WHEN: Processing succeeds
	// THEN: Exactly the returned record is in the log

	ledger := newTestLedger()
	p := payroll.NewProcessor(ledger)

	rec, err := p.Process(context.Background(), stub("emp-1", 10), "October 2024")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	recs, err := ledger.Records(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 1 || recs[0].ID != rec.ID {
		t.Fatalf("ledger should hold exactly the processed record, got %d", len(recs))
	}
}

func TestProcessor_FailedComputeLeavesStoreUntouched(t *testing.T) {
	// GIVEN: An employee whose gross computation fails
	// WHEN: Processing is attempted
	// THEN: The error surfaces and no record reaches the store
	//       (construct-then-append ordering)

	ledger := newTestLedger()
	p := payroll.NewProcessor(ledger)

	broken := stub("emp-1", 10)
	broken.failGross = &payroll.InvalidPeriodError{Period: "weekly"}

	_, err := p.Process(context.Background(), broken, "October 2024")
	if !errors.Is(err, payroll.ErrInvalidAllowancePeriod) {
		t.Fatalf("want wrapped period error, got %v", err)
	}

	recs, _ := ledger.Records(context.Background())
	if len(recs) != 0 {
		t.Fatalf("store must stay untouched on failure, found %d records", len(recs))
	}
}

// =============================================================================
// ROSTER
// =============================================================================

func TestRoster_UniqueIDs(t *testing.T) {
	// GIVEN: A roster holding emp-1
	// WHEN: Registering another employee with the same id
	// THEN: The add is rejected with ErrDuplicateEmployee

	r := payroll.NewRoster()
	if err := r.Add(stub("emp-1", 10)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := r.Add(stub("emp-1", 20))
	if !errors.Is(err, payroll.ErrDuplicateEmployee) {
		t.Fatalf("want ErrDuplicateEmployee, got %v", err)
	}
	if r.Size() != 1 {
		t.Errorf("rejected add must not grow the roster, size %d", r.Size())
	}
}

func TestRoster_FindUnknown(t *testing.T) {
	r := payroll.NewRoster()
	_, err := r.Find("ghost")
	if !errors.Is(err, payroll.ErrEmployeeNotFound) {
		t.Fatalf("want ErrEmployeeNotFound, got %v", err)
	}
}

func TestRoster_AllPreservesRegistrationOrder(t *testing.T) {
	// GIVEN: Three employees registered in order
	// WHEN: Reading the roster
	// THEN: Registration order is preserved

	r := payroll.NewRoster()
	for _, id := range []string{"c", "a", "b"} {
		if err := r.Add(stub(id, 1)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	all := r.All()
	want := []payroll.EmployeeID{"c", "a", "b"}
	for i, e := range all {
		if e.EmployeeID() != want[i] {
			t.Errorf("position %d: got %s, want %s", i, e.EmployeeID(), want[i])
		}
	}
}

// =============================================================================
// PAY RUNS
// =============================================================================

func TestRunner_RunAll(t *testing.T) {
	// GIVEN: A roster of two employees
	// WHEN: Running payroll for one period
	// THEN: One record per employee lands in the ledger in roster order,
	//       and the run summary covers exactly this batch

	r := payroll.NewRoster()
	r.Add(stub("emp-1", 100)) // gross 10,000,000
	r.Add(stub("emp-2", 50))  // gross 5,000,000

	ledger := newTestLedger()
	runner := payroll.NewRunner(r, ledger)

	run, err := runner.RunAll(context.Background(), "September 2024")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if run.ID == "" {
		t.Error("run should get a minted id")
	}
	if len(run.Records) != 2 || run.Records[0].EmployeeID != "emp-1" || run.Records[1].EmployeeID != "emp-2" {
		t.Fatalf("run records should follow roster order, got %+v", run.Records)
	}
	if run.Summary.Count != 2 {
		t.Errorf("run summary count = %d, want 2", run.Summary.Count)
	}
	assertAmount(t, run.Summary.TotalGross, payroll.IDRFromInt(15_000_000), "run total gross")

	recs, _ := ledger.Records(context.Background())
	if len(recs) != 2 {
		t.Fatalf("ledger should hold the whole batch, got %d", len(recs))
	}
}

func TestRunner_FailureAbortsBeforeAnyMutation(t *testing.T) {
	// GIVEN: A roster where the second employee's computation fails
	// WHEN: Running payroll
	// THEN: The run errors and NOTHING is appended, not even the first
	//       employee's already-computed record

	r := payroll.NewRoster()
	r.Add(stub("emp-1", 100))
	broken := stub("emp-2", 50)
	broken.failGross = &payroll.InvalidPeriodError{Period: "weekly"}
	r.Add(broken)

	ledger := newTestLedger()
	runner := payroll.NewRunner(r, ledger)

	_, err := runner.RunAll(context.Background(), "September 2024")
	if err == nil {
		t.Fatal("run should fail when any employee fails")
	}

	recs, _ := ledger.Records(context.Background())
	if len(recs) != 0 {
		t.Fatalf("failed run must leave the store untouched, found %d records", len(recs))
	}
}

func TestRunner_EmptyRosterIsValidEmptyRun(t *testing.T) {
	runner := payroll.NewRunner(payroll.NewRoster(), newTestLedger())

	run, err := runner.RunAll(context.Background(), "September 2024")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(run.Records) != 0 || run.Summary.Count != 0 {
		t.Errorf("empty roster should yield an empty run, got %+v", run)
	}
}

// =============================================================================
// PROJECTIONS
// =============================================================================

func TestProject_ComputesWithoutStoring(t *testing.T) {
	// GIVEN: An employee at 100 hours
	// WHEN: Projecting one period at current hours and one at 200
	// THEN: Outcomes reflect the planned hours; the source employee and
	//       the ledger are untouched

	emp := stub("emp-1", 100)

	plans := []payroll.PlannedPeriod{
		{Period: "October 2024"}, // zero hours: keep current
		{Period: "November 2024", WorkHours: decimal.NewFromInt(200)},
	}

	projections, err := payroll.Project(emp, plans)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(projections) != 2 {
		t.Fatalf("want 2 projections, got %d", len(projections))
	}

	assertAmount(t, projections[0].Gross, payroll.IDRFromInt(10_000_000), "current-hours projection")
	assertAmount(t, projections[1].Gross, payroll.IDRFromInt(20_000_000), "adjusted-hours projection")
	assertAmount(t, projections[1].Net, projections[1].Gross.Sub(projections[1].Deductions), "projection net invariant")

	if !emp.WorkHours().Equal(decimal.NewFromInt(100)) {
		t.Error("projection must not mutate the source employee")
	}
}

func TestProject_RejectsNegativeHours(t *testing.T) {
	_, err := payroll.Project(stub("emp-1", 100), []payroll.PlannedPeriod{
		{Period: "October 2024", WorkHours: decimal.NewFromInt(-1)},
	})
	if !errors.Is(err, payroll.ErrNegativeInput) {
		t.Fatalf("want ErrNegativeInput, got %v", err)
	}
}

// =============================================================================
// SUMMARY
// =============================================================================

func TestSummarize_DifferenceOfSumsEqualsSumOfDifferences(t *testing.T) {
	// GIVEN: A sequence of processed records
	// WHEN: Folding them into the aggregate summary
	// THEN: TotalGross - TotalDeductions equals TotalNet exactly

	ledger := newTestLedger()
	p := payroll.NewProcessor(ledger)
	for i, hours := range []int64{173, 207, 91} {
		emp := stub("emp", hours)
		emp.id = payroll.EmployeeID([]string{"a", "b", "c"}[i])
		if _, err := p.Process(context.Background(), emp, "September 2024"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	summary, err := ledger.Summary(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.Count != 3 {
		t.Errorf("count = %d, want 3", summary.Count)
	}
	assertAmount(t, summary.TotalGross.Sub(summary.TotalDeductions), summary.TotalNet, "summary invariant")
}

func TestLedger_SummaryReflectsEveryAppend(t *testing.T) {
	// GIVEN: A ledger whose summary has been read (and cached)
	// WHEN: Another record is appended
	// THEN: The next summary includes it (append invalidates the cache)

	ledger := newTestLedger()
	p := payroll.NewProcessor(ledger)
	ctx := context.Background()

	p.Process(ctx, stub("emp-1", 10), "September 2024")
	first, _ := ledger.Summary(ctx)
	if first.Count != 1 {
		t.Fatalf("count = %d, want 1", first.Count)
	}

	p.Process(ctx, stub("emp-2", 20), "September 2024")
	second, _ := ledger.Summary(ctx)
	if second.Count != 2 {
		t.Fatalf("summary must reflect the new append, count = %d", second.Count)
	}
	assertAmount(t, second.TotalGross, payroll.IDRFromInt(3_000_000), "total gross after second append")
}

func TestLedger_RecordsForEmployee_EmptyIsNormal(t *testing.T) {
	// GIVEN: An empty ledger
	// WHEN: Filtering records for any employee id
	// THEN: An empty slice comes back with a nil error

	ledger := newTestLedger()

	recs, err := ledger.RecordsForEmployee(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("no-match filter must not error, got %v", err)
	}
	if recs == nil || len(recs) != 0 {
		t.Fatalf("want empty slice, got %v", recs)
	}
}
