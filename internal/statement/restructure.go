package statement

// RestructuredPL is the analyst-oriented regrouping of a profit & loss
// statement: added value, labor, and capital-regeneration categories, with
// operating expenses split into a variable and a fixed portion.
type RestructuredPL struct {
	Sales                     float64 `json:"sales"`
	CostOfSales               float64 `json:"cost_of_sales"`
	GrossProfit               float64 `json:"gross_profit"`
	ExternalExpenseAdjustment float64 `json:"external_expense_adjustment"`
	GrossAddedValue           float64 `json:"gross_added_value"`
	TotalLaborCost            float64 `json:"total_labor_cost"`
	ExecutiveCompensation     float64 `json:"executive_compensation"`
	CapitalRegenerationCost   float64 `json:"capital_regeneration_cost"`
	ResearchDevelopment       float64 `json:"research_development_expenses"`
	VariableExpenses          float64 `json:"variable_expenses"`
	FixedExpenses             float64 `json:"fixed_expenses"`
	SellingGeneralAdmin       float64 `json:"selling_general_admin_expenses"`
	OperatingIncome           float64 `json:"operating_income"`
	FinancialProfitLoss       float64 `json:"financial_profit_loss"`
	NonOperatingIncome        float64 `json:"non_operating_income"`
	NonOperatingExpenses      float64 `json:"non_operating_expenses"`
	OrdinaryIncome            float64 `json:"ordinary_income"`
	ExtraordinaryIncome       float64 `json:"extraordinary_income"`
	ExtraordinaryLoss         float64 `json:"extraordinary_loss"`
	IncomeBeforeTax           float64 `json:"income_before_tax"`
	IncomeTaxes               float64 `json:"income_taxes"`
	NetIncome                 float64 `json:"net_income"`
}

// RestructurePL converts a raw PL into its restructured form. All inputs are
// pure data; missing detail lines contribute zero.
func RestructurePL(s Snapshot, d Detail) RestructuredPL {
	s = s.Normalized()

	adjustment := d.LaborCostManufacturing + d.DepreciationManufacturing + d.RepairCostManufacturing

	return RestructuredPL{
		Sales:                     s.Sales,
		CostOfSales:               s.CostOfSales,
		GrossProfit:               s.GrossProfit,
		ExternalExpenseAdjustment: adjustment,
		GrossAddedValue:           s.GrossProfit + adjustment,
		TotalLaborCost:            d.LaborCostManufacturing + d.LaborCostPL + s.PersonnelExpenses,
		ExecutiveCompensation:     s.ExecutiveCompensation + d.ExecutiveWelfare,
		CapitalRegenerationCost:   d.DepreciationManufacturing + d.RepairCostManufacturing + s.Depreciation + d.RepairCostPL,
		ResearchDevelopment:       s.ResearchDevelopment,
		VariableExpenses:          d.VariableExpenses,
		FixedExpenses:             s.OperatingExpenses - d.VariableExpenses,
		SellingGeneralAdmin:       s.OperatingExpenses,
		OperatingIncome:           s.OperatingIncome,
		FinancialProfitLoss:       s.InterestIncome - s.InterestExpense,
		NonOperatingIncome:        s.NonOperatingIncome,
		NonOperatingExpenses:      s.NonOperatingExpenses,
		OrdinaryIncome:            s.OrdinaryIncome,
		ExtraordinaryIncome:       s.ExtraordinaryIncome,
		ExtraordinaryLoss:         s.ExtraordinaryLoss,
		IncomeBeforeTax:           s.IncomeBeforeTax,
		IncomeTaxes:               s.IncomeTax,
		NetIncome:                 s.NetIncome,
	}
}

// RestructuredBS regroups a balance sheet into working-capital and funding
// categories: on-hand vs. invested cash, trade receivables/payables,
// inventory, and the short/long-term debt split.
type RestructuredBS struct {
	CashOnHand                   float64 `json:"cash_on_hand"`
	InvestmentDeposits           float64 `json:"investment_deposits"`
	TradeReceivables             float64 `json:"trade_receivables"`
	InventoryAssets              float64 `json:"inventory_assets"`
	AllowanceForDoubtfulAccounts float64 `json:"allowance_for_doubtful_accounts"`
	CurrentAssets                float64 `json:"current_assets"`
	TangibleFixedAssets          float64 `json:"tangible_fixed_assets"`
	IntangibleFixedAssets        float64 `json:"intangible_fixed_assets"`
	InvestmentsAndOtherAssets    float64 `json:"investments_and_other_assets"`
	FixedAssets                  float64 `json:"fixed_assets"`
	TotalAssets                  float64 `json:"total_assets"`
	TradePayables                float64 `json:"trade_payables"`
	TotalShortTermDebt           float64 `json:"total_short_term_debt"`
	OtherCurrentLiabilities      float64 `json:"other_current_liabilities"`
	CurrentLiabilities           float64 `json:"current_liabilities"`
	LongTermDebtExclExecutive    float64 `json:"long_term_debt_excluding_executive"`
	ExecutiveBorrowings          float64 `json:"executive_borrowings"`
	OtherFixedLiabilities        float64 `json:"other_fixed_liabilities"`
	FixedLiabilities             float64 `json:"fixed_liabilities"`
	TotalLiabilities             float64 `json:"total_liabilities"`
	Capital                      float64 `json:"capital"`
	RetainedEarnings             float64 `json:"retained_earnings"`
	NetAssets                    float64 `json:"net_assets"`
	TotalLiabilitiesAndNetAssets float64 `json:"total_liabilities_and_net_assets"`
}

// RestructureBS converts a raw BS plus breakdown detail into its
// restructured form.
func RestructureBS(s Snapshot, d Detail) RestructuredBS {
	tangible := d.TangibleFixedAssets
	if tangible == 0 {
		tangible = s.FixedAssets
	}
	fixedAssets := tangible + d.IntangibleFixedAssets + d.InvestmentsAndOtherAssets

	totalLiabilities := s.CurrentLiabilities + s.FixedLiabilities
	netAssets := s.Capital + s.RetainedEarnings

	return RestructuredBS{
		CashOnHand:                   d.CashAndDeposits - d.TimeDeposits,
		InvestmentDeposits:           d.TimeDeposits,
		TradeReceivables:             d.AccountsReceivable + d.NotesReceivable + d.OtherReceivables,
		InventoryAssets:              d.MerchandiseInventory + d.WorkInProcess + d.RawMaterials + d.Supplies,
		AllowanceForDoubtfulAccounts: d.AllowanceForDoubtfulAccounts,
		CurrentAssets:                s.CurrentAssets,
		TangibleFixedAssets:          tangible,
		IntangibleFixedAssets:        d.IntangibleFixedAssets,
		InvestmentsAndOtherAssets:    d.InvestmentsAndOtherAssets,
		FixedAssets:                  fixedAssets,
		TotalAssets:                  s.CurrentAssets + fixedAssets,
		TradePayables:                d.AccountsPayable + d.NotesPayable + d.OtherPayables,
		TotalShortTermDebt:           d.ShortTermBorrowings + d.CurrentPortionOfLongTermDebt,
		OtherCurrentLiabilities:      d.OtherCurrentLiabilities,
		CurrentLiabilities:           s.CurrentLiabilities,
		LongTermDebtExclExecutive:    d.LongTermBorrowings - d.ExecutiveBorrowings,
		ExecutiveBorrowings:          d.ExecutiveBorrowings,
		OtherFixedLiabilities:        d.OtherFixedLiabilities,
		FixedLiabilities:             s.FixedLiabilities,
		TotalLiabilities:             totalLiabilities,
		Capital:                      s.Capital,
		RetainedEarnings:             s.RetainedEarnings,
		NetAssets:                    netAssets,
		TotalLiabilitiesAndNetAssets: totalLiabilities + netAssets,
	}
}

// AddedValueComponents breaks gross added value down into its distribution
// shares: labor, executive compensation and capital regeneration, each as a
// percentage of the added-value pool.
type AddedValueComponents struct {
	GrossAddedValue             float64 `json:"gross_added_value"`
	NetAddedValue               float64 `json:"net_added_value"`
	TotalLaborCost              float64 `json:"total_labor_cost"`
	ExecutiveCompensation       float64 `json:"executive_compensation"`
	CapitalRegenerationCost     float64 `json:"capital_regeneration_cost"`
	ResearchDevelopment         float64 `json:"research_development_expenses"`
	FinancialProfitLoss         float64 `json:"financial_profit_loss"`
	LaborDistributionRatio      float64 `json:"labor_distribution_ratio"`
	ExecutiveDistributionRatio  float64 `json:"executive_distribution_ratio"`
	CapitalDistributionRatio    float64 `json:"capital_distribution_ratio"`
}

// AddedValue computes the distribution breakdown from a restructured PL.
// Ratios are zero when the added-value pool is not positive.
func AddedValue(pl RestructuredPL) AddedValueComponents {
	c := AddedValueComponents{
		GrossAddedValue:         pl.GrossAddedValue,
		NetAddedValue:           pl.GrossAddedValue - pl.CapitalRegenerationCost,
		TotalLaborCost:          pl.TotalLaborCost,
		ExecutiveCompensation:   pl.ExecutiveCompensation,
		CapitalRegenerationCost: pl.CapitalRegenerationCost,
		ResearchDevelopment:     pl.ResearchDevelopment,
		FinancialProfitLoss:     pl.FinancialProfitLoss,
	}
	if pl.GrossAddedValue > 0 {
		c.LaborDistributionRatio = pl.TotalLaborCost / pl.GrossAddedValue * 100
		c.ExecutiveDistributionRatio = pl.ExecutiveCompensation / pl.GrossAddedValue * 100
		c.CapitalDistributionRatio = pl.CapitalRegenerationCost / pl.GrossAddedValue * 100
	}
	return c
}
