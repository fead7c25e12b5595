package plan

// WorkingCapitalAssumption is one planning year's turnover inputs. Zero
// turnover days take the 30-day default; zero cost of sales is assumed at
// 70% of sales.
type WorkingCapitalAssumption struct {
	Sales          float64 `yaml:"sales"`
	CostOfSales    float64 `yaml:"cost_of_sales"`
	ReceivableDays float64 `yaml:"accounts_receivable_days"`
	InventoryDays  float64 `yaml:"inventory_days"`
	PayableDays    float64 `yaml:"accounts_payable_days"`
}

const (
	defaultTurnoverDays     = 30.0
	defaultCostOfSalesRatio = 0.7
)

// WorkingCapitalYear is one planned year of working capital.
type WorkingCapitalYear struct {
	Year                int     `json:"year"`
	YearOffset          int     `json:"year_offset"`
	Sales               float64 `json:"sales"`
	CostOfSales         float64 `json:"cost_of_sales"`
	ReceivableDays      float64 `json:"accounts_receivable_days"`
	InventoryDays       float64 `json:"inventory_days"`
	PayableDays         float64 `json:"accounts_payable_days"`
	AccountsReceivable  float64 `json:"accounts_receivable"`
	Inventory           float64 `json:"inventory"`
	AccountsPayable     float64 `json:"accounts_payable"`
	NetWorkingCapital   float64 `json:"net_working_capital"`
	Change              float64 `json:"working_capital_change"`
	CashConversionCycle float64 `json:"cash_conversion_cycle"`
}

// BuildWorkingCapitalPlan computes each year's balances from the turnover
// days and chains the change against the prior year's net working capital
// (the first year changes from zero).
func BuildWorkingCapitalPlan(baseYear int, years []WorkingCapitalAssumption) []WorkingCapitalYear {
	out := make([]WorkingCapitalYear, 0, len(years))
	var prevNWC float64

	for offset, a := range years {
		if a.ReceivableDays == 0 {
			a.ReceivableDays = defaultTurnoverDays
		}
		if a.InventoryDays == 0 {
			a.InventoryDays = defaultTurnoverDays
		}
		if a.PayableDays == 0 {
			a.PayableDays = defaultTurnoverDays
		}
		if a.CostOfSales == 0 {
			a.CostOfSales = a.Sales * defaultCostOfSalesRatio
		}

		dailySales := a.Sales / 365
		dailyCost := a.CostOfSales / 365

		y := WorkingCapitalYear{
			Year:               baseYear + offset,
			YearOffset:         offset,
			Sales:              a.Sales,
			CostOfSales:        a.CostOfSales,
			ReceivableDays:     a.ReceivableDays,
			InventoryDays:      a.InventoryDays,
			PayableDays:        a.PayableDays,
			AccountsReceivable: dailySales * a.ReceivableDays,
			Inventory:          dailyCost * a.InventoryDays,
			AccountsPayable:    dailyCost * a.PayableDays,
		}
		y.NetWorkingCapital = y.AccountsReceivable + y.Inventory - y.AccountsPayable
		y.Change = y.NetWorkingCapital - prevNWC
		y.CashConversionCycle = a.ReceivableDays + a.InventoryDays - a.PayableDays

		out = append(out, y)
		prevNWC = y.NetWorkingCapital
	}
	return out
}

// WorkingCapitalSummary aggregates a multi-year working capital plan.
type WorkingCapitalSummary struct {
	TotalChange     float64 `json:"total_working_capital_change_3years"`
	AverageNWC      float64 `json:"average_net_working_capital"`
	AverageCCC      float64 `json:"average_cash_conversion_cycle"`
	EfficiencyTrend string  `json:"working_capital_efficiency_trend"`
}

// Efficiency trend labels, by first-to-last cash conversion cycle.
const (
	TrendImproving = "improving"
	TrendStable    = "stable"
	TrendWorsening = "worsening"
)

// SummarizeWorkingCapitalPlan computes totals, averages and whether the
// cash conversion cycle improves over the horizon.
func SummarizeWorkingCapitalPlan(years []WorkingCapitalYear) WorkingCapitalSummary {
	var s WorkingCapitalSummary
	if len(years) == 0 {
		return s
	}

	var nwc, ccc float64
	for _, y := range years {
		s.TotalChange += y.Change
		nwc += y.NetWorkingCapital
		ccc += y.CashConversionCycle
	}
	n := float64(len(years))
	s.AverageNWC = nwc / n
	s.AverageCCC = ccc / n

	first, last := years[0], years[len(years)-1]
	switch {
	case first.CashConversionCycle > last.CashConversionCycle:
		s.EfficiencyTrend = TrendImproving
	case first.CashConversionCycle < last.CashConversionCycle:
		s.EfficiencyTrend = TrendWorsening
	default:
		s.EfficiencyTrend = TrendStable
	}
	return s
}
