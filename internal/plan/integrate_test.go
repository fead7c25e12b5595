package plan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPlan(t *testing.T) Integrated {
	t.Helper()

	labor := BuildLaborPlan(2026, 10, []LaborAssumption{
		{PlannedEmployeeCount: 10, AverageSalary: 300_000},
		{PlannedEmployeeCount: 11, AverageSalary: 300_000},
		{PlannedEmployeeCount: 12, AverageSalary: 300_000},
	})
	capex := BuildCapexPlan(2026, [][]Investment{
		{{Name: "machine", Amount: 9_000_000, UsefulLife: 3}},
		nil,
		nil,
	})
	wc := BuildWorkingCapitalPlan(2026, []WorkingCapitalAssumption{
		{Sales: 365_000_000, ReceivableDays: 60, InventoryDays: 45, PayableDays: 30},
		{Sales: 365_000_000, ReceivableDays: 60, InventoryDays: 45, PayableDays: 30},
		{Sales: 365_000_000, ReceivableDays: 60, InventoryDays: 45, PayableDays: 30},
	})
	fin := BuildFinancingPlan(2026, 0, []FinancingAssumption{
		{RequiredFunds: 9_000_000, EquityRatio: 30, LoanRate: 2.0, LoanTermYears: 5},
		{},
		{},
	})
	return Integrate(uuid.New(), 2026, labor, capex, wc, fin)
}

func TestIntegrateProducesThreeYears(t *testing.T) {
	t.Parallel()

	p := testPlan(t)

	require.Len(t, p.Years, PlanningYears)
	assert.Equal(t, 2026, p.Years[0].Year)
	assert.Equal(t, 2028, p.Years[2].Year)
	assert.Equal(t, 2, p.Years[2].YearOffset)
	assert.Positive(t, p.Years[0].Labor.TotalLaborCost)
	assert.Positive(t, p.Years[1].Financing.PrincipalRepayment)
}

func TestIntegratePadsShortSubPlans(t *testing.T) {
	t.Parallel()

	p := Integrate(uuid.New(), 2026, nil, nil, nil, nil)

	require.Len(t, p.Years, PlanningYears)
	assert.Zero(t, p.Years[2].Labor.TotalLaborCost)
}

func TestValidateCleanPlan(t *testing.T) {
	t.Parallel()

	v := testPlan(t).Validate()

	assert.True(t, v.Valid)
	assert.Empty(t, v.Errors)
}

func TestValidateWarningsAndErrors(t *testing.T) {
	t.Parallel()

	p := testPlan(t)
	p.Years[0].Labor.TotalLaborCost = 0
	p.Years[1].Capex.TotalNewInvestment = -1
	p.Years[1].WorkingCapital.NetWorkingCapital = -500
	p.Years[2].Financing.DSCR = 0.8
	p.Years[2].Financing.TotalDebtBalance = -100

	v := p.Validate()

	assert.False(t, v.Valid)
	assert.Len(t, v.Errors, 2)
	assert.Len(t, v.Warnings, 3)
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	p := testPlan(t)
	s := p.Summarize()

	var wantLabor, wantCapex, wantDep float64
	for _, y := range p.Years {
		wantLabor += y.Labor.TotalLaborCost
		wantCapex += y.Capex.TotalNewInvestment
		wantDep += y.Capex.TotalDepreciation
	}
	assert.InDelta(t, wantLabor, s.TotalLaborCost, 1e-6)
	assert.InDelta(t, wantCapex, s.TotalCapitalInvestment, 1e-6)
	assert.InDelta(t, wantDep, s.TotalDepreciation, 1e-6)
	assert.InDelta(t, p.Years[2].Financing.TotalDebtBalance, s.FinalDebtBalance, 1e-6)
}

func TestLoadFileAndBuild(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
base_year: 2026
current_employee_count: 10
existing_debt: 5000000
labor:
  - planned_employee_count: 11
    average_salary: 300000
  - planned_employee_count: 12
    average_salary: 300000
  - planned_employee_count: 12
    average_salary: 310000
investments:
  - - name: machine
      amount: 9000000
      useful_life: 3
  - []
  - []
working_capital:
  - sales: 365000000
  - sales: 380000000
  - sales: 400000000
financing:
  - required_funds: 9000000
    equity_ratio: 30
    loan_interest_rate: 2.0
    loan_term_years: 5
  - {}
  - {}
`), 0o644))

	f, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2026, f.BaseYear)

	p, err := f.Build()
	require.NoError(t, err)
	require.Len(t, p.Years, 3)
	assert.Equal(t, 11, p.Years[0].Labor.PlannedEmployees)
	assert.InDelta(t, 9_000_000, p.Years[0].Capex.TotalNewInvestment, 1e-6)
	assert.Positive(t, p.Years[0].WorkingCapital.NetWorkingCapital)
	assert.InDelta(t, 5_000_000+6_300_000, p.Years[0].Financing.TotalDebtBalance, 1e-6)
}

func TestLoadFileMissingBaseYear(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte("labor: []\n"), 0o644))

	_, err := LoadFile(path)
	assert.Error(t, err)
}
