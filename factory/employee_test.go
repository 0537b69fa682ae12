package factory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/warp/payroll-engine/employee" // registers the kinds
	"github.com/warp/payroll-engine/factory"
	"github.com/warp/payroll-engine/payroll"
)

func TestParseEmployee_Salaried(t *testing.T) {
	f := factory.NewEmployeeFactory()

	emp, err := f.ParseEmployee([]byte(`{
		"kind": "salaried",
		"id": "FT001",
		"work_hours": 180,
		"base_salary": 8000000,
		"allowance": {"amount": 2000000, "period": "monthly"}
	}`))
	require.NoError(t, err)

	assert.Equal(t, payroll.EmployeeID("FT001"), emp.EmployeeID())
	assert.Equal(t, payroll.Kind("salaried"), emp.Kind())

	gross, err := emp.Gross()
	require.NoError(t, err)
	assert.Equal(t, "10485549.13", gross.StringFixed2())
}

func TestParseEmployee_HourlyWithFlatTaxOverride(t *testing.T) {
	f := factory.NewEmployeeFactory()

	emp, err := f.ParseEmployee([]byte(`{
		"kind": "hourly",
		"id": "CT001",
		"work_hours": 100,
		"hourly_rate": 50000,
		"allowance": {"amount": 0, "period": "monthly"},
		"tax": {"type": "flat_rate", "rate": 0.05}
	}`))
	require.NoError(t, err)

	gross, err := emp.Gross()
	require.NoError(t, err)
	assert.True(t, gross.Equal(payroll.IDRFromInt(5_000_000)))
	assert.True(t, emp.Deduction(gross).Equal(payroll.IDRFromInt(250_000)),
		"overridden 5%% rate should apply instead of the 2.5%% default")
}

func TestParseEmployee_ReferenceKindAliases(t *testing.T) {
	f := factory.NewEmployeeFactory()

	ft, err := f.ParseEmployee([]byte(`{
		"kind": "fulltime", "id": "FT002", "work_hours": 160,
		"base_salary": 8000000,
		"allowance": {"amount": 0, "period": "monthly"}
	}`))
	require.NoError(t, err)
	assert.Equal(t, payroll.Kind("salaried"), ft.Kind())

	ct, err := f.ParseEmployee([]byte(`{
		"kind": "contract", "id": "CT002", "work_hours": 160,
		"hourly_rate": 50000,
		"allowance": {"amount": 0, "period": "monthly"}
	}`))
	require.NoError(t, err)
	assert.Equal(t, payroll.Kind("hourly"), ct.Kind())
}

func TestParseEmployee_Errors(t *testing.T) {
	f := factory.NewEmployeeFactory()

	t.Run("unknown kind", func(t *testing.T) {
		_, err := f.ParseEmployee([]byte(`{
			"kind": "freelancer", "id": "X", "work_hours": 10,
			"allowance": {"amount": 0, "period": "monthly"}
		}`))
		assert.ErrorIs(t, err, payroll.ErrUnknownKind)
	})

	t.Run("invalid allowance period", func(t *testing.T) {
		_, err := f.ParseEmployee([]byte(`{
			"kind": "hourly", "id": "X", "work_hours": 10, "hourly_rate": 1,
			"allowance": {"amount": 0, "period": "weekly"}
		}`))
		assert.ErrorIs(t, err, payroll.ErrInvalidAllowancePeriod)
	})

	t.Run("negative input passes through unwrapped", func(t *testing.T) {
		_, err := f.ParseEmployee([]byte(`{
			"kind": "hourly", "id": "X", "work_hours": -5, "hourly_rate": 1,
			"allowance": {"amount": 0, "period": "monthly"}
		}`))
		assert.ErrorIs(t, err, payroll.ErrNegativeInput)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		_, err := f.ParseEmployee([]byte(`{not json`))
		assert.Error(t, err)
	})

	t.Run("unknown tax type", func(t *testing.T) {
		_, err := f.ParseEmployee([]byte(`{
			"kind": "hourly", "id": "X", "work_hours": 10, "hourly_rate": 1,
			"allowance": {"amount": 0, "period": "monthly"},
			"tax": {"type": "poll"}
		}`))
		assert.Error(t, err)
	})
}

func TestParseEmployees_Array(t *testing.T) {
	f := factory.NewEmployeeFactory()

	employees, err := f.ParseEmployees([]byte(`[
		{"kind": "salaried", "id": "FT001", "work_hours": 160,
		 "base_salary": 8000000,
		 "allowance": {"amount": 0, "period": "monthly"}},
		{"kind": "hourly", "id": "CT001", "work_hours": 120,
		 "hourly_rate": 75000,
		 "allowance": {"amount": 1000000, "period": "per_project"}}
	]`))
	require.NoError(t, err)
	require.Len(t, employees, 2)
	assert.Equal(t, payroll.EmployeeID("FT001"), employees[0].EmployeeID())
	assert.Equal(t, payroll.EmployeeID("CT001"), employees[1].EmployeeID())
}

func TestParseEmployee_CustomProgressiveBrackets(t *testing.T) {
	f := factory.NewEmployeeFactory()

	emp, err := f.ParseEmployee([]byte(`{
		"kind": "salaried", "id": "FT003", "work_hours": 160,
		"base_salary": 1000000,
		"allowance": {"amount": 0, "period": "monthly"},
		"tax": {"type": "progressive",
			"brackets": [{"up_to": 500000, "rate": 0.1}],
			"top_rate": 0.2}
	}`))
	require.NoError(t, err)

	gross, err := emp.Gross()
	require.NoError(t, err)
	// 1,000,000 is above the single 500,000 ceiling: top rate 20%
	// applies to the whole gross, plus the 3% contributions.
	deduction := emp.Deduction(gross)
	want := gross.Mul(payroll.MustParseDecimal("0.23"))
	assert.True(t, deduction.Equal(want), "got %s, want %s", deduction.Value, want.Value)
}
