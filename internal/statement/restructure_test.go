package statement

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRestructurePL(t *testing.T) {
	t.Parallel()

	snap := Snapshot{
		Sales:             100_000_000,
		CostOfSales:       60_000_000,
		OperatingExpenses: 25_000_000,
		PersonnelExpenses: 8_000_000,
		Depreciation:      2_000_000,
		OperatingIncome:   15_000_000,
		InterestIncome:    100_000,
		InterestExpense:   600_000,
	}
	detail := Detail{
		LaborCostManufacturing:    3_000_000,
		DepreciationManufacturing: 1_000_000,
		RepairCostManufacturing:   500_000,
		LaborCostPL:               1_000_000,
		RepairCostPL:              200_000,
		VariableExpenses:          5_000_000,
	}

	pl := RestructurePL(snap, detail)

	// gross profit is recomputed from sales - cost of sales
	assert.InDelta(t, 40_000_000, pl.GrossProfit, 0.01)
	assert.InDelta(t, 4_500_000, pl.ExternalExpenseAdjustment, 0.01)
	assert.InDelta(t, 44_500_000, pl.GrossAddedValue, 0.01)
	assert.InDelta(t, 12_000_000, pl.TotalLaborCost, 0.01)
	assert.InDelta(t, 3_700_000, pl.CapitalRegenerationCost, 0.01)
	assert.InDelta(t, 5_000_000, pl.VariableExpenses, 0.01)
	assert.InDelta(t, 20_000_000, pl.FixedExpenses, 0.01)
	assert.InDelta(t, -500_000, pl.FinancialProfitLoss, 0.01)
}

func TestRestructurePLMissingInputsAreZero(t *testing.T) {
	t.Parallel()

	pl := RestructurePL(Snapshot{}, Detail{})

	assert.Zero(t, pl.GrossAddedValue)
	assert.Zero(t, pl.TotalLaborCost)
	assert.Zero(t, pl.CapitalRegenerationCost)
	assert.Zero(t, pl.FixedExpenses)
}

func TestRestructureBS(t *testing.T) {
	t.Parallel()

	snap := Snapshot{
		CurrentAssets:      50_000_000,
		FixedAssets:        30_000_000,
		CurrentLiabilities: 25_000_000,
		FixedLiabilities:   20_000_000,
		Capital:            10_000_000,
		RetainedEarnings:   25_000_000,
	}
	detail := Detail{
		CashAndDeposits:     12_000_000,
		TimeDeposits:        4_000_000,
		AccountsReceivable:  15_000_000,
		NotesReceivable:     2_000_000,
		MerchandiseInventory: 6_000_000,
		RawMaterials:        1_000_000,
		AccountsPayable:     9_000_000,
		NotesPayable:        1_000_000,
		ShortTermBorrowings: 5_000_000,
		LongTermBorrowings:  18_000_000,
		ExecutiveBorrowings: 3_000_000,
	}

	bs := RestructureBS(snap, detail)

	assert.InDelta(t, 8_000_000, bs.CashOnHand, 0.01)
	assert.InDelta(t, 4_000_000, bs.InvestmentDeposits, 0.01)
	assert.InDelta(t, 17_000_000, bs.TradeReceivables, 0.01)
	assert.InDelta(t, 7_000_000, bs.InventoryAssets, 0.01)
	assert.InDelta(t, 10_000_000, bs.TradePayables, 0.01)
	assert.InDelta(t, 15_000_000, bs.LongTermDebtExclExecutive, 0.01)
	// tangible detail absent, falls back to raw fixed assets
	assert.InDelta(t, 30_000_000, bs.TangibleFixedAssets, 0.01)
	assert.InDelta(t, 80_000_000, bs.TotalAssets, 0.01)
	assert.InDelta(t, 35_000_000, bs.NetAssets, 0.01)
	assert.InDelta(t, 80_000_000, bs.TotalLiabilitiesAndNetAssets, 0.01)
}

func TestAddedValueDistribution(t *testing.T) {
	t.Parallel()

	pl := RestructuredPL{
		GrossAddedValue:         50_000_000,
		TotalLaborCost:          25_000_000,
		ExecutiveCompensation:   5_000_000,
		CapitalRegenerationCost: 10_000_000,
	}

	c := AddedValue(pl)

	assert.InDelta(t, 40_000_000, c.NetAddedValue, 0.01)
	assert.InDelta(t, 50.0, c.LaborDistributionRatio, 0.001)
	assert.InDelta(t, 10.0, c.ExecutiveDistributionRatio, 0.001)
	assert.InDelta(t, 20.0, c.CapitalDistributionRatio, 0.001)
}

func TestAddedValueZeroPool(t *testing.T) {
	t.Parallel()

	c := AddedValue(RestructuredPL{TotalLaborCost: 1_000_000})

	assert.Zero(t, c.LaborDistributionRatio)
	assert.Zero(t, c.ExecutiveDistributionRatio)
	assert.Zero(t, c.CapitalDistributionRatio)
}

func TestNormalizedDerivedTotals(t *testing.T) {
	t.Parallel()

	s := Snapshot{
		Sales:                100,
		CostOfSales:          60,
		OperatingIncome:      20,
		NonOperatingIncome:   2,
		NonOperatingExpenses: 5,
		IncomeTax:            5,
		Capital:              30,
		RetainedEarnings:     12,
		CurrentAssets:        70,
		FixedAssets:          50,
	}.Normalized()

	assert.InDelta(t, 40, s.GrossProfit, 0.001)
	assert.InDelta(t, 17, s.OrdinaryIncome, 0.001)
	assert.InDelta(t, 17, s.IncomeBeforeTax, 0.001)
	assert.InDelta(t, 12, s.NetIncome, 0.001)
	assert.InDelta(t, 42, s.NetAssets, 0.001)
	assert.InDelta(t, 120, s.TotalAssets, 0.001)
}
