package simulate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/midori-advisory/finplan-cli/internal/plan"
	"github.com/midori-advisory/finplan-cli/internal/statement"
)

func samplePlan() plan.Integrated {
	return plan.Integrated{
		BaseYear: 2024,
		Years: []plan.YearPlan{
			{
				Year:           2025,
				YearOffset:     0,
				Labor:          plan.LaborYear{TotalLaborCost: 20_000_000},
				Capex:          plan.CapexYear{TotalNewInvestment: 10_000_000, TotalDepreciation: 2_000_000},
				WorkingCapital: plan.WorkingCapitalYear{NetWorkingCapital: 15_000_000},
				Financing:      plan.FinancingYear{NewBorrowing: 7_000_000, TotalDebtBalance: 7_000_000},
			},
			{
				Year:           2026,
				YearOffset:     1,
				Labor:          plan.LaborYear{TotalLaborCost: 21_000_000},
				Capex:          plan.CapexYear{TotalDepreciation: 2_000_000},
				WorkingCapital: plan.WorkingCapitalYear{NetWorkingCapital: 16_000_000},
				Financing: plan.FinancingYear{
					PrincipalRepayment: 1_200_000,
					InterestPayment:    140_000,
					TotalDebtBalance:   5_800_000,
				},
			},
			{
				Year:           2027,
				YearOffset:     2,
				Labor:          plan.LaborYear{TotalLaborCost: 22_000_000},
				Capex:          plan.CapexYear{TotalDepreciation: 2_000_000},
				WorkingCapital: plan.WorkingCapitalYear{NetWorkingCapital: 17_000_000},
				Financing: plan.FinancingYear{
					PrincipalRepayment: 1_224_000,
					InterestPayment:    116_000,
					TotalDebtBalance:   4_576_000,
				},
			},
		},
	}
}

func sampleBase() BaseState {
	return BaseState{
		Sales:            100_000_000,
		Cash:             20_000_000,
		FixedAssets:      50_000_000,
		TotalEquity:      40_000_000,
		OtherLiabilities: 30_000_000,
	}
}

func TestRunFirstYearFigures(t *testing.T) {
	t.Parallel()

	a := Assumptions{
		SalesGrowthRates:  []float64{10, 5, 5},
		CostOfSalesRatios: []float64{60, 60, 60},
		SGARatios:         []float64{25, 25, 25},
		TaxRate:           0.30,
	}
	r := Run(sampleBase(), samplePlan(), a)
	require.Len(t, r.Years, 3)

	y := r.Years[0]
	assert.Equal(t, 2025, y.Year)
	assert.InDelta(t, 110_000_000, y.PL.Sales, 1e-6)
	assert.InDelta(t, 66_000_000, y.PL.CostOfSales, 1e-6)
	assert.InDelta(t, 44_000_000, y.PL.GrossProfit, 1e-6)
	assert.InDelta(t, 40.0, y.PL.GrossProfitMargin, 1e-9)
	assert.InDelta(t, 20_000_000, y.PL.LaborCost, 1e-6)
	assert.InDelta(t, 7_500_000, y.PL.OtherSGA, 1e-6)
	assert.InDelta(t, 16_500_000, y.PL.OperatingIncome, 1e-6)
	assert.InDelta(t, 16_500_000, y.PL.OrdinaryIncome, 1e-6)
	assert.InDelta(t, 4_950_000, y.PL.TaxExpense, 1e-6)
	assert.InDelta(t, 11_550_000, y.PL.NetIncome, 1e-6)

	assert.InDelta(t, 13_550_000, y.CF.OperatingCashFlow, 1e-6)
	assert.InDelta(t, -10_000_000, y.CF.InvestingCashFlow, 1e-6)
	assert.InDelta(t, 7_000_000, y.CF.FinancingCashFlow, 1e-6)
	assert.InDelta(t, 30_550_000, y.CF.EndingCashBalance, 1e-6)

	assert.InDelta(t, 58_000_000, y.BS.FixedAssets, 1e-6)
	assert.InDelta(t, 30_550_000, y.BS.Cash, 1e-6)
	assert.InDelta(t, 45_550_000, y.BS.CurrentAssets, 1e-6)
	assert.InDelta(t, 103_550_000, y.BS.TotalAssets, 1e-6)
	assert.InDelta(t, 37_000_000, y.BS.TotalLiabilities, 1e-6)

	// working capital was funded by nothing on the liability side, so the
	// residual lands in equity and is reported
	assert.InDelta(t, 15_000_000, y.Reconciliation, 1e-6)
	assert.InDelta(t, 66_550_000, y.BS.TotalEquity, 1e-6)
	assert.NotEmpty(t, r.Warnings)
}

func TestRunBalanceIdentityEveryYear(t *testing.T) {
	t.Parallel()

	a := Assumptions{SalesGrowthRates: []float64{10, 5, 5}}
	r := Run(sampleBase(), samplePlan(), a)
	require.Len(t, r.Years, 3)

	prevCash := sampleBase().Cash
	for _, y := range r.Years {
		assert.InDelta(t, y.BS.TotalAssets, y.BS.TotalLiabilities+y.BS.TotalEquity, 1e-6)
		assert.InDelta(t, prevCash+y.CF.NetCashFlow, y.CF.EndingCashBalance, 1e-6)
		assert.InDelta(t, y.CF.EndingCashBalance, y.BS.Cash, 1e-6)
		prevCash = y.CF.EndingCashBalance
	}
}

func TestRunSalesCompoundAcrossYears(t *testing.T) {
	t.Parallel()

	base := sampleBase()
	base.Sales = 1_000_000_000
	a := Assumptions{SalesGrowthRates: []float64{5, 7, 10}}
	r := Run(base, samplePlan(), a)
	require.Len(t, r.Years, 3)

	assert.InDelta(t, 1_050_000_000, r.Years[0].PL.Sales, 1e-3)
	assert.InDelta(t, 1_123_500_000, r.Years[1].PL.Sales, 1e-3)
	assert.InDelta(t, 1_235_850_000, r.Years[2].PL.Sales, 1e-3)

	for _, y := range r.Years {
		assert.InDelta(t, y.BS.TotalAssets, y.BS.TotalLiabilities+y.BS.TotalEquity, 1e-6)
	}
}

func TestRunDefaultRatios(t *testing.T) {
	t.Parallel()

	r := Run(sampleBase(), samplePlan(), Assumptions{})
	y := r.Years[0]

	// no growth provided, ratio defaults 70% cost and 20% SG&A
	assert.InDelta(t, 100_000_000, y.PL.Sales, 1e-6)
	assert.InDelta(t, 70_000_000, y.PL.CostOfSales, 1e-6)
	assert.InDelta(t, 20_000_000, y.PL.SGAExpenses, 1e-6)
	if y.PL.IncomeBeforeTax > 0 {
		assert.InDelta(t, y.PL.IncomeBeforeTax*0.30, y.PL.TaxExpense, 1e-6)
	}
}

func TestRunLossYearPaysNoTax(t *testing.T) {
	t.Parallel()

	a := Assumptions{CostOfSalesRatios: []float64{95, 95, 95}}
	r := Run(sampleBase(), samplePlan(), a)

	for _, y := range r.Years {
		assert.Negative(t, y.PL.IncomeBeforeTax)
		assert.Zero(t, y.PL.TaxExpense)
		assert.InDelta(t, y.PL.IncomeBeforeTax, y.PL.NetIncome, 1e-6)
	}
}

func TestRunOtherSGAFlooredAtZero(t *testing.T) {
	t.Parallel()

	p := samplePlan()
	for i := range p.Years {
		p.Years[i].Labor.TotalLaborCost = 90_000_000
	}
	a := Assumptions{SGARatios: []float64{20, 20, 20}}
	r := Run(sampleBase(), p, a)

	for _, y := range r.Years {
		assert.Zero(t, y.PL.OtherSGA)
		assert.InDelta(t, 90_000_000, y.PL.SGAExpenses, 1e-6)
	}
}

func TestRunFixedAssetsChain(t *testing.T) {
	t.Parallel()

	r := Run(sampleBase(), samplePlan(), Assumptions{})
	require.Len(t, r.Years, 3)

	assert.InDelta(t, 58_000_000, r.Years[0].BS.FixedAssets, 1e-6)
	assert.InDelta(t, 56_000_000, r.Years[1].BS.FixedAssets, 1e-6)
	assert.InDelta(t, 54_000_000, r.Years[2].BS.FixedAssets, 1e-6)
}

func TestRunRatiosGuarded(t *testing.T) {
	t.Parallel()

	base := sampleBase()
	base.TotalEquity = -200_000_000
	r := Run(base, samplePlan(), Assumptions{})
	for _, y := range r.Years {
		if y.BS.TotalEquity <= 0 {
			assert.Zero(t, y.Ratios.ROE)
		}
		assert.False(t, math.IsNaN(y.Ratios.ROA))
		assert.False(t, math.IsInf(y.Ratios.CurrentRatio, 0))
	}
}

func TestBaseFromSnapshot(t *testing.T) {
	t.Parallel()

	s := statement.Snapshot{
		Sales:            250_000_000,
		Cash:             30_000_000,
		FixedAssets:      80_000_000,
		NetAssets:        60_000_000,
		TotalLiabilities: 90_000_000,
	}
	b := BaseFromSnapshot(s, 25_000_000)
	assert.InDelta(t, 250_000_000, b.Sales, 1e-6)
	assert.InDelta(t, 30_000_000, b.Cash, 1e-6)
	assert.InDelta(t, 80_000_000, b.FixedAssets, 1e-6)
	assert.InDelta(t, 60_000_000, b.TotalEquity, 1e-6)
	assert.InDelta(t, 65_000_000, b.OtherLiabilities, 1e-6)
}
