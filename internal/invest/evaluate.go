package invest

import "sort"

// Project is one candidate investment.
type Project struct {
	Name              string    `json:"name" yaml:"name"`
	InitialInvestment float64   `json:"initial_investment" yaml:"initial_investment"`
	CashFlows         []float64 `json:"annual_cash_flows" yaml:"annual_cash_flows"`
}

// Verdict summarizes whether each appraisal signal favors the investment.
type Verdict struct {
	NPVPositive    bool `json:"npv_positive"`
	IRRBeatsHurdle bool `json:"irr_beats_hurdle"`
	IRRDefined     bool `json:"irr_defined"`
	Recovered      bool `json:"recovered"`
}

// Appraisal is the full evaluation of one project.
type Appraisal struct {
	Project            Project `json:"project"`
	DiscountRate       float64 `json:"discount_rate"`
	NPV                float64 `json:"npv"`
	IRR                float64 `json:"irr"`
	PaybackYears       float64 `json:"payback_period"`
	ProfitabilityIndex float64 `json:"profitability_index"`
	TotalCashFlow      float64 `json:"total_cash_flow"`
	NetProfit          float64 `json:"net_profit"`
	Verdict            Verdict `json:"verdict"`
}

// Evaluate appraises one project at discountRate (percent).
func Evaluate(p Project, discountRate float64) Appraisal {
	a := Appraisal{
		Project:            p,
		DiscountRate:       discountRate,
		NPV:                NPV(p.InitialInvestment, p.CashFlows, discountRate),
		ProfitabilityIndex: ProfitabilityIndex(p.InitialInvestment, p.CashFlows, discountRate),
	}
	a.IRR, a.Verdict.IRRDefined = IRR(p.InitialInvestment, p.CashFlows)
	a.PaybackYears, a.Verdict.Recovered = PaybackPeriod(p.InitialInvestment, p.CashFlows)

	for _, cf := range p.CashFlows {
		a.TotalCashFlow += cf
	}
	a.NetProfit = a.TotalCashFlow - p.InitialInvestment
	a.Verdict.NPVPositive = a.NPV > 0
	a.Verdict.IRRBeatsHurdle = a.Verdict.IRRDefined && a.IRR > discountRate
	return a
}

// Compare appraises every project and returns them ranked by NPV, best
// first.
func Compare(projects []Project, discountRate float64) []Appraisal {
	out := make([]Appraisal, 0, len(projects))
	for _, p := range projects {
		out = append(out, Evaluate(p, discountRate))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].NPV > out[j].NPV })
	return out
}
