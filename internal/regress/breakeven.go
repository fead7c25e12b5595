package regress

// BreakEven is the cost-volume-profit view of a single year.
type BreakEven struct {
	Sales                   float64 `json:"sales"`
	VariableCosts           float64 `json:"variable_costs"`
	FixedCosts              float64 `json:"fixed_costs"`
	ContributionMargin      float64 `json:"contribution_margin"`
	ContributionMarginRatio float64 `json:"contribution_margin_ratio"`
	VariableCostRatio       float64 `json:"variable_cost_ratio"`
	BreakEvenSales          float64 `json:"breakeven_sales"`
	BreakEvenRatio          float64 `json:"breakeven_ratio"`
	SafetyMarginRatio       float64 `json:"safety_margin_ratio"`
	OperatingIncome         float64 `json:"operating_income"`
	TargetProfit            float64 `json:"target_profit,omitempty"`
	TargetSales             float64 `json:"target_sales,omitempty"`
}

// AnalyzeBreakEven computes the break-even figures for one year. A zero
// sales level yields the zero value.
func AnalyzeBreakEven(sales, variableCosts, fixedCosts float64) BreakEven {
	if sales == 0 {
		return BreakEven{}
	}

	b := BreakEven{
		Sales:         sales,
		VariableCosts: variableCosts,
		FixedCosts:    fixedCosts,
	}
	b.ContributionMargin = sales - variableCosts
	b.ContributionMarginRatio = b.ContributionMargin / sales * 100
	b.VariableCostRatio = variableCosts / sales * 100
	if b.ContributionMarginRatio > 0 {
		b.BreakEvenSales = fixedCosts / b.ContributionMarginRatio * 100
	}
	b.BreakEvenRatio = b.BreakEvenSales / sales * 100
	b.SafetyMarginRatio = (sales - b.BreakEvenSales) / sales * 100
	b.OperatingIncome = b.ContributionMargin - fixedCosts
	return b
}

// AnalyzeCVP is AnalyzeBreakEven plus the sales level needed to reach
// targetProfit.
func AnalyzeCVP(sales, variableCosts, fixedCosts, targetProfit float64) BreakEven {
	b := AnalyzeBreakEven(sales, variableCosts, fixedCosts)
	if targetProfit > 0 {
		b.TargetProfit = targetProfit
		b.TargetSales = TargetSales(fixedCosts, targetProfit, b.ContributionMarginRatio)
	}
	return b
}

// TargetSales is the sales level that produces targetProfit given the fixed
// costs and contribution margin ratio (in percent).
func TargetSales(fixedCosts, targetProfit, contributionMarginRatio float64) float64 {
	if contributionMarginRatio == 0 {
		return 0
	}
	return (fixedCosts + targetProfit) / contributionMarginRatio * 100
}

// CostStructure is the variable/fixed split estimated from a statement when
// no fitted model is available. Cost of sales is treated as fully variable
// and operating expenses split 30/70 between variable and fixed.
type CostStructure struct {
	VariableCosts float64 `json:"variable_costs"`
	FixedCosts    float64 `json:"fixed_costs"`
	TotalCosts    float64 `json:"total_costs"`
}

// EstimateCostStructure applies the 30/70 operating-expense split.
func EstimateCostStructure(costOfSales, operatingExpenses float64) CostStructure {
	c := CostStructure{
		VariableCosts: costOfSales + operatingExpenses*0.3,
		FixedCosts:    operatingExpenses * 0.7,
	}
	c.TotalCosts = c.VariableCosts + c.FixedCosts
	return c
}
