package indicator

import "github.com/midori-advisory/finplan-cli/internal/statement"

// Figures is the flattened input for the family calculators. It combines a
// statement snapshot with the reclassified PL/BS values so each family can
// be computed without re-deriving them.
type Figures struct {
	Sales                   float64
	CostOfSales             float64
	GrossProfit             float64
	OperatingIncome         float64
	OrdinaryIncome          float64
	IncomeBeforeTax         float64
	ExecutiveCompensation   float64
	ResearchDevelopment     float64
	VariableExpenses        float64
	GeneralExpenses         float64
	GrossAddedValue         float64
	TotalLaborCost          float64
	CapitalRegenerationCost float64

	CurrentAssets             float64
	FixedAssets               float64
	TotalAssets               float64
	CashOnHand                float64
	TradeReceivables          float64
	InventoryAssets           float64
	TangibleFixedAssets       float64
	CurrentLiabilities        float64
	FixedLiabilities          float64
	TotalLiabilities          float64
	TradePayables             float64
	TotalShortTermDebt        float64
	LongTermDebtExclExecutive float64
	NetAssets                 float64

	EmployeeCount float64
}

// FiguresFrom assembles Figures from a snapshot and its reclassified views.
func FiguresFrom(s statement.Snapshot, pl statement.RestructuredPL, bs statement.RestructuredBS) Figures {
	return Figures{
		Sales:                   s.Sales,
		CostOfSales:             s.CostOfSales,
		GrossProfit:             s.GrossProfit,
		OperatingIncome:         s.OperatingIncome,
		OrdinaryIncome:          s.OrdinaryIncome,
		IncomeBeforeTax:         s.IncomeBeforeTax,
		ExecutiveCompensation:   s.ExecutiveCompensation,
		ResearchDevelopment:     s.ResearchDevelopment,
		VariableExpenses:        pl.VariableExpenses,
		GeneralExpenses:         pl.FixedExpenses,
		GrossAddedValue:         pl.GrossAddedValue,
		TotalLaborCost:          pl.TotalLaborCost,
		CapitalRegenerationCost: pl.CapitalRegenerationCost,

		CurrentAssets:             s.CurrentAssets,
		FixedAssets:               s.FixedAssets,
		TotalAssets:               s.TotalAssets,
		CashOnHand:                bs.CashOnHand,
		TradeReceivables:          bs.TradeReceivables,
		InventoryAssets:           bs.InventoryAssets,
		TangibleFixedAssets:       bs.TangibleFixedAssets,
		CurrentLiabilities:        s.CurrentLiabilities,
		FixedLiabilities:          s.FixedLiabilities,
		TotalLiabilities:          s.TotalLiabilities,
		TradePayables:             bs.TradePayables,
		TotalShortTermDebt:        bs.TotalShortTermDebt,
		LongTermDebtExclExecutive: bs.LongTermDebtExclExecutive,
		NetAssets:                 s.NetAssets,

		EmployeeCount: float64(s.EmployeeCount),
	}
}

// nonDepreciableShare of tangible fixed assets (land and similar) assumed
// when no breakdown is available.
const nonDepreciableShare = 0.3

func ratio(num, den float64) float64 {
	if den <= 0 {
		return 0
	}
	return num / den
}

func pct(num, den float64) float64 {
	return ratio(num, den) * 100
}

// Growth computes the year-over-year growth-rate family. Each entry is a
// percentage change; a zero prior year pins the rate per the grading law.
func Growth(cur, prev Figures) map[string]float64 {
	rate := func(this, last float64) float64 {
		return EvaluateYoY(this, last).Ratio
	}
	return map[string]float64{
		"sales_growth_rate":                  rate(cur.Sales, prev.Sales),
		"cost_of_sales_growth_rate":          rate(cur.CostOfSales, prev.CostOfSales),
		"added_value_growth_rate":            rate(cur.GrossAddedValue, prev.GrossAddedValue),
		"labor_cost_growth_rate":             rate(cur.TotalLaborCost, prev.TotalLaborCost),
		"executive_compensation_growth_rate": rate(cur.ExecutiveCompensation, prev.ExecutiveCompensation),
		"capital_regeneration_growth_rate":   rate(cur.CapitalRegenerationCost, prev.CapitalRegenerationCost),
		"research_development_growth_rate":   rate(cur.ResearchDevelopment, prev.ResearchDevelopment),
		"general_expenses_growth_rate":       rate(cur.GeneralExpenses, prev.GeneralExpenses),
		"fixed_assets_growth_rate":           rate(cur.FixedAssets, prev.FixedAssets),
		"liabilities_growth_rate":            rate(cur.TotalLiabilities, prev.TotalLiabilities),
		"income_before_tax_growth_rate":      rate(cur.IncomeBeforeTax, prev.IncomeBeforeTax),
		"equity_growth_rate":                 rate(cur.NetAssets, prev.NetAssets),
	}
}

// Profitability computes the earning-power family. Operating capital is
// approximated by total assets.
func Profitability(f Figures) map[string]float64 {
	operatingCapital := f.TotalAssets
	marginalProfit := f.Sales - f.VariableExpenses

	return map[string]float64{
		"return_on_assets":                pct(f.OrdinaryIncome, f.TotalAssets),
		"ordinary_income_to_sales_ratio":  pct(f.OrdinaryIncome, f.Sales),
		"total_assets_turnover":           ratio(f.Sales, f.TotalAssets),
		"return_on_equity":                pct(f.OrdinaryIncome, f.NetAssets),
		"equity_turnover":                 ratio(f.Sales, f.NetAssets),
		"return_on_operating_capital":     pct(f.OperatingIncome, operatingCapital),
		"operating_income_to_sales_ratio": pct(f.OperatingIncome, f.Sales),
		"operating_capital_turnover":      ratio(f.Sales, operatingCapital),
		"gross_profit_margin":             pct(f.GrossProfit, f.Sales),
		"added_value_to_sales_ratio":      pct(f.GrossAddedValue, f.Sales),
		"marginal_profit_ratio":           pct(marginalProfit, f.Sales),
		"cost_of_sales_ratio":             pct(f.CostOfSales, f.Sales),
	}
}

// FinancialStrength computes the funding-power family: funding-source
// soundness, borrowing headroom, asset turnover and repayment capacity.
func FinancialStrength(f Figures) map[string]float64 {
	quickAssets := f.CashOnHand + f.TradeReceivables
	totalDebt := f.TotalShortTermDebt + f.LongTermDebtExclExecutive
	nonDepreciable := f.TangibleFixedAssets * nonDepreciableShare
	depreciable := f.TangibleFixedAssets - nonDepreciable

	return map[string]float64{
		"equity_ratio":               pct(f.NetAssets, f.TotalAssets),
		"debt_ratio":                 pct(totalDebt, f.TotalAssets),
		"trade_payables_ratio":       pct(f.TradePayables, f.TotalAssets),
		"borrowing_dependency_ratio": pct(totalDebt, f.TotalAssets),
		"collateral_margin":          pct(f.TangibleFixedAssets-totalDebt, f.TangibleFixedAssets),

		"cash_turnover_days":        ratio(f.CashOnHand, f.Sales/365),
		"receivables_turnover":      ratio(f.Sales, f.TradeReceivables),
		"receivables_turnover_days": ratio(f.TradeReceivables, f.Sales/365),
		"payables_turnover":         ratio(f.CostOfSales, f.TradePayables),
		"payables_turnover_days":    ratio(f.TradePayables, f.CostOfSales/365),
		"inventory_turnover":        ratio(f.CostOfSales, f.InventoryAssets),
		"inventory_turnover_days":   ratio(f.InventoryAssets, f.CostOfSales/365),

		"current_ratio": pct(f.CurrentAssets, f.CurrentLiabilities),
		"quick_ratio":   pct(quickAssets, f.CurrentLiabilities),
		"cash_ratio":    pct(f.CashOnHand, f.CurrentLiabilities),

		"fixed_assets_ratio":                         pct(f.FixedAssets, f.NetAssets+f.FixedLiabilities),
		"non_depreciable_assets_to_equity_ratio":     pct(nonDepreciable, f.NetAssets),
		"depreciable_assets_to_long_term_debt_ratio": pct(depreciable, f.FixedLiabilities),
	}
}

// Productivity computes the per-employee and added-value family. A zero
// employee count falls back to 1 so per-head figures stay defined.
func Productivity(f Figures) map[string]float64 {
	employees := f.EmployeeCount
	if employees <= 0 {
		employees = 1
	}
	equipmentBalance := f.TangibleFixedAssets

	return map[string]float64{
		"added_value_to_total_assets_ratio": pct(f.GrossAddedValue, f.TotalAssets),
		"added_value_to_sales_ratio":        pct(f.GrossAddedValue, f.Sales),
		"total_assets_turnover":             ratio(f.Sales, f.TotalAssets),
		"labor_productivity":                f.GrossAddedValue / employees,
		"sales_per_employee":                f.Sales / employees,
		"profit_per_employee":               f.IncomeBeforeTax / employees,
		"labor_distribution_ratio":          pct(f.TotalLaborCost, f.GrossAddedValue),
		"equipment_investment_efficiency":   pct(f.GrossAddedValue, equipmentBalance),
		"equipment_per_employee":            equipmentBalance / employees,
	}
}

// Families is the full four-family report for one year, with optional
// comparisons against the prior year.
type Families struct {
	Growth            map[string]float64 `json:"growth,omitempty"`
	Profitability     map[string]float64 `json:"profitability"`
	FinancialStrength map[string]float64 `json:"financial_strength"`
	Productivity      map[string]float64 `json:"productivity"`

	Comparisons map[string]map[string]Comparison `json:"comparisons,omitempty"`
}

// Calculate runs every family for the current year. When prev is non-nil it
// also produces the growth family and per-family YoY comparisons.
func Calculate(cur Figures, prev *Figures) Families {
	out := Families{
		Profitability:     Profitability(cur),
		FinancialStrength: FinancialStrength(cur),
		Productivity:      Productivity(cur),
	}
	if prev == nil {
		return out
	}
	out.Growth = Growth(cur, *prev)
	out.Comparisons = map[string]map[string]Comparison{
		"profitability":      CompareSets(out.Profitability, Profitability(*prev)),
		"financial_strength": CompareSets(out.FinancialStrength, FinancialStrength(*prev)),
		"productivity":       CompareSets(out.Productivity, Productivity(*prev)),
	}
	return out
}
