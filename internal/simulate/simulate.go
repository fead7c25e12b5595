// Package simulate projects a company's statements across the three
// planning years by threading each year's ending balances into the next
// year's transition, keeping Assets = Liabilities + Equity exact.
package simulate

import (
	"fmt"
	"math"

	"github.com/midori-advisory/finplan-cli/internal/plan"
	"github.com/midori-advisory/finplan-cli/internal/statement"
)

// Assumptions drive the per-year transitions. Rates are percentages except
// TaxRate, which is a decimal. Years beyond a slice's length take the
// defaults.
type Assumptions struct {
	SalesGrowthRates  []float64 `yaml:"sales_growth_rates" json:"sales_growth_rates,omitempty"`
	CostOfSalesRatios []float64 `yaml:"cost_of_sales_ratios" json:"cost_of_sales_ratios,omitempty"`
	SGARatios         []float64 `yaml:"sga_ratios" json:"sga_ratios,omitempty"`
	TaxRate           float64   `yaml:"tax_rate" json:"tax_rate,omitempty"`
}

const (
	defaultCostOfSalesRatio = 70.0
	defaultSGARatio         = 20.0
	defaultTaxRate          = 0.30
)

// BaseState is the year-0 position the simulation starts from.
type BaseState struct {
	Sales            float64 `yaml:"sales"`
	Cash             float64 `yaml:"cash"`
	FixedAssets      float64 `yaml:"fixed_assets"`
	TotalEquity      float64 `yaml:"total_equity"`
	OtherLiabilities float64 `yaml:"other_liabilities"`
}

// BaseFromSnapshot derives the starting state from a statement snapshot.
// Liabilities other than the planned debt stay constant across the horizon,
// so the existing debt that the financing plan tracks is split out here.
func BaseFromSnapshot(s statement.Snapshot, existingDebt float64) BaseState {
	return BaseState{
		Sales:            s.Sales,
		Cash:             s.Cash,
		FixedAssets:      s.FixedAssets,
		TotalEquity:      s.NetAssets,
		OtherLiabilities: s.TotalLiabilities - existingDebt,
	}
}

// PL is one simulated year's income statement.
type PL struct {
	Sales               float64 `json:"sales"`
	CostOfSales         float64 `json:"cost_of_sales"`
	GrossProfit         float64 `json:"gross_profit"`
	GrossProfitMargin   float64 `json:"gross_profit_margin"`
	SGAExpenses         float64 `json:"sg_a_expenses"`
	LaborCost           float64 `json:"labor_cost"`
	OtherSGA            float64 `json:"other_sg_a"`
	OperatingIncome     float64 `json:"operating_income"`
	OperatingMargin     float64 `json:"operating_margin"`
	NonOperatingExpense float64 `json:"non_operating_expense"`
	OrdinaryIncome      float64 `json:"ordinary_income"`
	OrdinaryMargin      float64 `json:"ordinary_margin"`
	IncomeBeforeTax     float64 `json:"income_before_tax"`
	TaxExpense          float64 `json:"tax_expense"`
	NetIncome           float64 `json:"net_income"`
	NetMargin           float64 `json:"net_margin"`
}

// BS is one simulated year's ending balance sheet.
type BS struct {
	TotalAssets       float64 `json:"total_assets"`
	CurrentAssets     float64 `json:"current_assets"`
	FixedAssets       float64 `json:"fixed_assets"`
	Cash              float64 `json:"cash"`
	NetWorkingCapital float64 `json:"net_working_capital"`
	TotalLiabilities  float64 `json:"total_liabilities"`
	TotalDebt         float64 `json:"total_debt"`
	TotalEquity       float64 `json:"total_equity"`
}

// CF is one simulated year's cash flow.
type CF struct {
	OperatingCashFlow float64 `json:"operating_cash_flow"`
	InvestingCashFlow float64 `json:"investing_cash_flow"`
	FinancingCashFlow float64 `json:"financing_cash_flow"`
	NetCashFlow       float64 `json:"net_cash_flow"`
	EndingCashBalance float64 `json:"ending_cash_balance"`
}

// Ratios are the headline ratios of a simulated year.
type Ratios struct {
	ROE             float64 `json:"roe"`
	ROA             float64 `json:"roa"`
	DebtEquityRatio float64 `json:"debt_equity_ratio"`
	CurrentRatio    float64 `json:"current_ratio"`
}

// Year is one simulated year.
type Year struct {
	Year       int    `json:"year"`
	YearOffset int    `json:"year_offset"`
	PL         PL     `json:"pl"`
	BS         BS     `json:"bs"`
	CF         CF     `json:"cf"`
	Ratios     Ratios `json:"ratios"`
	// Reconciliation is the residual absorbed into equity to keep the
	// balance identity exact.
	Reconciliation float64 `json:"reconciliation_adjustment"`
}

// Result is the full simulation output.
type Result struct {
	BaseYear int      `json:"base_year"`
	Years    []Year   `json:"years"`
	Warnings []string `json:"warnings,omitempty"`
}

func pct(num, den float64) float64 {
	if den <= 0 {
		return 0
	}
	return num / den * 100
}

func rateAt(rates []float64, offset int, fallback float64) float64 {
	if offset < len(rates) {
		return rates[offset]
	}
	return fallback
}

// reconciliationEpsilon below which a residual is treated as rounding noise
// and not surfaced as a warning.
const reconciliationEpsilon = 1.0

// Run simulates the planning years in order. Each transition is a pure
// function of the previous year's ending state, the assumptions and that
// year's plan entry; no year can be computed before its predecessor.
func Run(base BaseState, p plan.Integrated, a Assumptions) Result {
	result := Result{BaseYear: p.BaseYear}

	taxRate := a.TaxRate
	if taxRate == 0 {
		taxRate = defaultTaxRate
	}

	sales := base.Sales
	cash := base.Cash
	fixedAssets := base.FixedAssets
	equity := base.TotalEquity

	for offset, yp := range p.Years {
		sales *= 1 + rateAt(a.SalesGrowthRates, offset, 0)/100

		pl := PL{Sales: sales}
		pl.CostOfSales = sales * rateAt(a.CostOfSalesRatios, offset, defaultCostOfSalesRatio) / 100
		pl.GrossProfit = sales - pl.CostOfSales
		pl.GrossProfitMargin = pct(pl.GrossProfit, sales)

		// labor cost from the plan takes priority; the SG&A ratio only
		// fills the remainder
		pl.LaborCost = yp.Labor.TotalLaborCost
		pl.OtherSGA = math.Max(0, sales*rateAt(a.SGARatios, offset, defaultSGARatio)/100-pl.LaborCost)
		pl.SGAExpenses = pl.LaborCost + pl.OtherSGA

		pl.OperatingIncome = pl.GrossProfit - pl.SGAExpenses
		pl.OperatingMargin = pct(pl.OperatingIncome, sales)
		pl.NonOperatingExpense = yp.Financing.InterestPayment
		pl.OrdinaryIncome = pl.OperatingIncome - pl.NonOperatingExpense
		pl.OrdinaryMargin = pct(pl.OrdinaryIncome, sales)
		pl.IncomeBeforeTax = pl.OrdinaryIncome
		if pl.IncomeBeforeTax > 0 {
			// no tax benefit is modeled on losses
			pl.TaxExpense = pl.IncomeBeforeTax * taxRate
		}
		pl.NetIncome = pl.IncomeBeforeTax - pl.TaxExpense
		pl.NetMargin = pct(pl.NetIncome, sales)

		depreciation := yp.Capex.TotalDepreciation
		capex := yp.Capex.TotalNewInvestment

		cf := CF{
			OperatingCashFlow: pl.NetIncome + depreciation,
			InvestingCashFlow: -capex,
			FinancingCashFlow: yp.Financing.NewBorrowing - yp.Financing.PrincipalRepayment,
		}
		cf.NetCashFlow = cf.OperatingCashFlow + cf.InvestingCashFlow + cf.FinancingCashFlow
		cash += cf.NetCashFlow
		cf.EndingCashBalance = cash

		fixedAssets += capex - depreciation
		equity += pl.NetIncome

		bs := BS{
			FixedAssets:       fixedAssets,
			Cash:              cash,
			NetWorkingCapital: yp.WorkingCapital.NetWorkingCapital,
			TotalDebt:         yp.Financing.TotalDebtBalance,
		}
		bs.CurrentAssets = cash + bs.NetWorkingCapital
		bs.TotalAssets = fixedAssets + bs.CurrentAssets
		bs.TotalLiabilities = bs.TotalDebt + base.OtherLiabilities

		// the identity must hold exactly: the residual is absorbed into
		// equity and surfaced so the caller can judge the approximation
		adjustment := bs.TotalAssets - (bs.TotalLiabilities + equity)
		equity += adjustment
		bs.TotalEquity = equity

		y := Year{
			Year:           yp.Year,
			YearOffset:     offset,
			PL:             pl,
			BS:             bs,
			CF:             cf,
			Reconciliation: adjustment,
			Ratios: Ratios{
				ROE:             pct(pl.NetIncome, bs.TotalEquity),
				ROA:             pct(pl.NetIncome, bs.TotalAssets),
				DebtEquityRatio: pct(bs.TotalLiabilities, bs.TotalEquity),
				CurrentRatio:    pct(bs.CurrentAssets, bs.TotalLiabilities),
			},
		}
		result.Years = append(result.Years, y)

		if math.Abs(adjustment) > reconciliationEpsilon {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("year %d: absorbed %.0f into equity to reconcile the balance sheet", yp.Year, adjustment))
		}
	}
	return result
}
