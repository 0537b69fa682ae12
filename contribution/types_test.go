package contribution_test

import (
	"testing"

	"github.com/warp/payroll-engine/contribution"
	"github.com/warp/payroll-engine/payroll"
)

func TestStandardSchemes_TotalIsThreePercent(t *testing.T) {
	// GIVEN: The standard BPJS set (1% kesehatan + 2% ketenagakerjaan)
	// WHEN: Totaled over a 10,000,000 gross
	// THEN: 300,000 exactly

	gross := payroll.IDRFromInt(10_000_000)
	total := contribution.Total(gross, contribution.StandardSchemes())

	if !total.Equal(payroll.IDRFromInt(300_000)) {
		t.Errorf("total = %s, want 300000", total.Value.String())
	}
}

func TestScheme_AmountOnZeroGross(t *testing.T) {
	if !contribution.Kesehatan.Amount(payroll.ZeroIDR()).IsZero() {
		t.Error("scheme amount on zero gross must be zero")
	}
}

func TestTotal_EmptySchemeSet(t *testing.T) {
	total := contribution.Total(payroll.IDRFromInt(10_000_000), nil)
	if !total.IsZero() {
		t.Errorf("empty scheme set must deduct nothing, got %s", total.Value.String())
	}
}
