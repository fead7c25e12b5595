package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildWorkingCapitalPlan(t *testing.T) {
	t.Parallel()

	years := BuildWorkingCapitalPlan(2026, []WorkingCapitalAssumption{
		{Sales: 365_000_000, CostOfSales: 219_000_000, ReceivableDays: 60, InventoryDays: 45, PayableDays: 30},
		{Sales: 401_500_000, CostOfSales: 240_900_000, ReceivableDays: 60, InventoryDays: 45, PayableDays: 30},
	})

	require.Len(t, years, 2)

	y0 := years[0]
	assert.InDelta(t, 60_000_000, y0.AccountsReceivable, 1e-6)
	assert.InDelta(t, 27_000_000, y0.Inventory, 1e-6)
	assert.InDelta(t, 18_000_000, y0.AccountsPayable, 1e-6)
	assert.InDelta(t, 69_000_000, y0.NetWorkingCapital, 1e-6)
	// first year changes from a zero base
	assert.InDelta(t, 69_000_000, y0.Change, 1e-6)
	assert.InDelta(t, 75.0, y0.CashConversionCycle, 1e-9)

	// year 1 change is against year 0's net working capital
	assert.InDelta(t, years[1].NetWorkingCapital-y0.NetWorkingCapital, years[1].Change, 1e-6)
}

func TestBuildWorkingCapitalPlanDefaults(t *testing.T) {
	t.Parallel()

	years := BuildWorkingCapitalPlan(2026, []WorkingCapitalAssumption{{Sales: 100_000_000}})

	require.Len(t, years, 1)
	y := years[0]
	assert.InDelta(t, 70_000_000, y.CostOfSales, 1e-6)
	assert.InDelta(t, 30.0, y.ReceivableDays, 1e-9)
	assert.InDelta(t, 30.0, y.CashConversionCycle, 1e-9)
}

func TestSummarizeWorkingCapitalPlanTrend(t *testing.T) {
	t.Parallel()

	improving := SummarizeWorkingCapitalPlan(BuildWorkingCapitalPlan(2026, []WorkingCapitalAssumption{
		{Sales: 100_000_000, ReceivableDays: 60, InventoryDays: 45, PayableDays: 30},
		{Sales: 100_000_000, ReceivableDays: 50, InventoryDays: 40, PayableDays: 30},
	}))
	assert.Equal(t, TrendImproving, improving.EfficiencyTrend)

	worsening := SummarizeWorkingCapitalPlan(BuildWorkingCapitalPlan(2026, []WorkingCapitalAssumption{
		{Sales: 100_000_000, ReceivableDays: 50, InventoryDays: 40, PayableDays: 30},
		{Sales: 100_000_000, ReceivableDays: 60, InventoryDays: 45, PayableDays: 30},
	}))
	assert.Equal(t, TrendWorsening, worsening.EfficiencyTrend)
}
