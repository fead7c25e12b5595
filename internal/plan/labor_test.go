package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildLaborPlanChainsHeadcount(t *testing.T) {
	t.Parallel()

	years := BuildLaborPlan(2026, 10, []LaborAssumption{
		{PlannedEmployeeCount: 12, AverageSalary: 300_000},
		{PlannedEmployeeCount: 15, AverageSalary: 310_000},
		{AverageSalary: 320_000}, // headcount carries over
	})

	require.Len(t, years, 3)

	y0 := years[0]
	assert.Equal(t, 2026, y0.Year)
	assert.Equal(t, 10, y0.CurrentEmployees)
	assert.Equal(t, 12, y0.PlannedEmployees)
	assert.Equal(t, 2, y0.EmployeeChange)
	assert.InDelta(t, 20.0, y0.EmployeeChangeRate, 1e-9)

	// base 300k*12*12, bonus 300k*2*12, loadings 22% of pay
	assert.InDelta(t, 43_200_000, y0.AnnualBaseSalary, 1e-6)
	assert.InDelta(t, 7_200_000, y0.AnnualBonus, 1e-6)
	assert.InDelta(t, 7_560_000, y0.SocialInsurance, 1e-6)
	assert.InDelta(t, 2_520_000, y0.WelfareExpense, 1e-6)
	assert.InDelta(t, 1_008_000, y0.OtherExpense, 1e-6)
	assert.InDelta(t, 61_488_000, y0.TotalLaborCost, 1e-6)
	assert.InDelta(t, 5_124_000, y0.LaborCostPerEmployee, 1e-6)

	// chaining
	assert.Equal(t, 12, years[1].CurrentEmployees)
	assert.Equal(t, 15, years[2].CurrentEmployees)
	assert.Equal(t, 15, years[2].PlannedEmployees)
}

func TestBuildLaborPlanCustomRates(t *testing.T) {
	t.Parallel()

	years := BuildLaborPlan(2026, 5, []LaborAssumption{{
		PlannedEmployeeCount: 5,
		AverageSalary:        200_000,
		BonusMonths:          1.0,
		Rates:                LaborRates{SocialInsurance: 0.10, Welfare: 0.03, Other: 0.01},
	}})

	require.Len(t, years, 1)
	pay := years[0].AnnualBaseSalary + years[0].AnnualBonus
	assert.InDelta(t, pay*0.10, years[0].SocialInsurance, 1e-6)
	assert.InDelta(t, pay*0.03, years[0].WelfareExpense, 1e-6)
	assert.InDelta(t, pay*0.01, years[0].OtherExpense, 1e-6)
}

func TestSummarizeLaborPlan(t *testing.T) {
	t.Parallel()

	years := BuildLaborPlan(2026, 10, []LaborAssumption{
		{PlannedEmployeeCount: 10, AverageSalary: 300_000},
		{PlannedEmployeeCount: 11, AverageSalary: 300_000},
		{PlannedEmployeeCount: 12, AverageSalary: 300_000},
	})

	s := SummarizeLaborPlan(years)

	assert.InDelta(t, years[0].TotalLaborCost+years[1].TotalLaborCost+years[2].TotalLaborCost, s.TotalLaborCost, 1e-6)
	assert.InDelta(t, 11.0, s.AverageEmployeeCount, 1e-9)
	assert.InDelta(t, 20.0, s.EmployeeGrowthRate, 1e-9)
	assert.InDelta(t, 20.0, s.LaborCostGrowthRate, 1e-9)
}

func TestSummarizeLaborPlanEmpty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, LaborSummary{}, SummarizeLaborPlan(nil))
}
