package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/midori-advisory/finplan-cli/internal/schedule"
)

func TestBuildCapexPlanTracksActiveInvestments(t *testing.T) {
	t.Parallel()

	years := BuildCapexPlan(2026, [][]Investment{
		{{Name: "machine", Amount: 10_000_000, UsefulLife: 2}},
		{{Name: "truck", Amount: 3_000_000, UsefulLife: 3}},
		nil,
	})

	require.Len(t, years, 3)

	// year 0: machine only, (10M-0)/2
	assert.InDelta(t, 10_000_000, years[0].TotalNewInvestment, 1e-6)
	assert.InDelta(t, 5_000_000, years[0].TotalDepreciation, 1e-6)
	assert.Equal(t, 1, years[0].ActiveInvestments)

	// year 1: machine's last year plus the truck's first
	assert.InDelta(t, 3_000_000, years[1].TotalNewInvestment, 1e-6)
	assert.InDelta(t, 6_000_000, years[1].TotalDepreciation, 1e-6)
	assert.Equal(t, 2, years[1].ActiveInvestments)

	// year 2: machine exhausted, truck continues
	assert.Zero(t, years[2].TotalNewInvestment)
	assert.InDelta(t, 1_000_000, years[2].TotalDepreciation, 1e-6)
	assert.Equal(t, 1, years[2].ActiveInvestments)
}

func TestBuildCapexPlanDecliningBalance(t *testing.T) {
	t.Parallel()

	years := BuildCapexPlan(2026, [][]Investment{
		{{Name: "server", Amount: 5_000_000, UsefulLife: 5, Method: schedule.DecliningBalance}},
	})

	require.Len(t, years, 1)
	// flat 2/5 on cost
	assert.InDelta(t, 2_000_000, years[0].TotalDepreciation, 1e-6)
}

func TestBuildCapexPlanResidualValue(t *testing.T) {
	t.Parallel()

	years := BuildCapexPlan(2026, [][]Investment{
		{{Name: "press", Amount: 10_000_000, UsefulLife: 5, ResidualValue: 1_000_000}},
	})

	require.Len(t, years, 1)
	assert.InDelta(t, 1_800_000, years[0].TotalDepreciation, 1e-6)
}

func TestBuildCapexPlanDefaultLife(t *testing.T) {
	t.Parallel()

	years := BuildCapexPlan(2026, [][]Investment{
		{{Name: "tooling", Amount: 5_000_000}},
	})

	require.Len(t, years, 1)
	assert.InDelta(t, 1_000_000, years[0].TotalDepreciation, 1e-6)
}

func TestSummarizeCapexPlan(t *testing.T) {
	t.Parallel()

	years := BuildCapexPlan(2026, [][]Investment{
		{{Amount: 9_000_000, UsefulLife: 3}},
		nil,
		nil,
	})

	s := SummarizeCapexPlan(years)

	assert.InDelta(t, 9_000_000, s.TotalInvestment, 1e-6)
	assert.InDelta(t, 9_000_000, s.TotalDepreciation, 1e-6)
	assert.InDelta(t, 3_000_000, s.AverageInvestment, 1e-6)
	assert.InDelta(t, 3_000_000, s.AverageDepreciation, 1e-6)
}
