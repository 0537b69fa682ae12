package payroll_test

import (
	"errors"
	"testing"

	"github.com/warp/payroll-engine/payroll"
)

// =============================================================================
// ALLOWANCE NORMALIZATION
// =============================================================================

func TestNormalizeAllowance_Monthly_Unchanged(t *testing.T) {
	// GIVEN: A 2,000,000 monthly allowance
	// WHEN: Normalized
	// THEN: The amount passes through unchanged

	got, err := payroll.NormalizeAllowance(payroll.IDRFromInt(2_000_000), payroll.AllowanceMonthly)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertAmount(t, got, payroll.IDRFromInt(2_000_000), "monthly allowance")
}

func TestNormalizeAllowance_Yearly_DividedByTwelve(t *testing.T) {
	// GIVEN: A 1,200,000 yearly allowance
	// WHEN: Normalized
	// THEN: One twelfth (100,000) contributes to the period

	got, err := payroll.NormalizeAllowance(payroll.IDRFromInt(1_200_000), payroll.AllowanceYearly)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertAmount(t, got, payroll.IDRFromInt(100_000), "yearly allowance")
}

func TestNormalizeAllowance_PerProject_FullAmountOnce(t *testing.T) {
	// GIVEN: A 1,000,000 per-project allowance
	// WHEN: Normalized
	// THEN: The full amount applies to the processed period, no proration

	got, err := payroll.NormalizeAllowance(payroll.IDRFromInt(1_000_000), payroll.AllowancePerProject)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertAmount(t, got, payroll.IDRFromInt(1_000_000), "per-project allowance")
}

func TestNormalizeAllowance_UnknownPeriod_Fatal(t *testing.T) {
	// GIVEN: A period tag outside the closed set
	// WHEN: Normalized
	// THEN: InvalidPeriodError surfaces, classifiable via the sentinel

	_, err := payroll.NormalizeAllowance(payroll.IDRFromInt(1), payroll.AllowancePeriod("weekly"))

	if !errors.Is(err, payroll.ErrInvalidAllowancePeriod) {
		t.Fatalf("want ErrInvalidAllowancePeriod, got %v", err)
	}
	var periodErr *payroll.InvalidPeriodError
	if !errors.As(err, &periodErr) {
		t.Fatalf("want *InvalidPeriodError, got %T", err)
	}
	if periodErr.Period != "weekly" {
		t.Errorf("error should carry the offending tag, got %q", periodErr.Period)
	}
}

// =============================================================================
// PERIOD PARSING
// =============================================================================

func TestParseAllowancePeriod(t *testing.T) {
	cases := []struct {
		in   string
		want payroll.AllowancePeriod
	}{
		{"monthly", payroll.AllowanceMonthly},
		{"Monthly", payroll.AllowanceMonthly},
		{" YEARLY ", payroll.AllowanceYearly},
		{"per_project", payroll.AllowancePerProject},
		{"per-project", payroll.AllowancePerProject},
	}
	for _, tc := range cases {
		got, err := payroll.ParseAllowancePeriod(tc.in)
		if err != nil {
			t.Errorf("ParseAllowancePeriod(%q): unexpected error %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseAllowancePeriod(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseAllowancePeriod_Unknown(t *testing.T) {
	_, err := payroll.ParseAllowancePeriod("quarterly")
	if !errors.Is(err, payroll.ErrInvalidAllowancePeriod) {
		t.Fatalf("want ErrInvalidAllowancePeriod, got %v", err)
	}
}
