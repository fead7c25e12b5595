package plan

import (
	"fmt"

	"github.com/google/uuid"
)

// PlanningYears is the fixed planning horizon.
const PlanningYears = 3

// YearPlan merges one year from each of the four sub-plans.
type YearPlan struct {
	Year           int                `json:"year"`
	YearOffset     int                `json:"year_offset"`
	Labor          LaborYear          `json:"labor_cost"`
	Capex          CapexYear          `json:"capital_investment"`
	WorkingCapital WorkingCapitalYear `json:"working_capital"`
	Financing      FinancingYear      `json:"financing"`
}

// Integrated is the full three-year plan for one company.
type Integrated struct {
	CompanyID uuid.UUID  `json:"company_id"`
	BaseYear  int        `json:"base_year"`
	Years     []YearPlan `json:"years"`
}

// Integrate merges the four sub-plans into exactly three year plans.
// Sub-plans shorter than the horizon contribute zero entries for the
// missing years.
func Integrate(companyID uuid.UUID, baseYear int, labor []LaborYear, capex []CapexYear, wc []WorkingCapitalYear, fin []FinancingYear) Integrated {
	p := Integrated{
		CompanyID: companyID,
		BaseYear:  baseYear,
		Years:     make([]YearPlan, 0, PlanningYears),
	}
	for offset := 0; offset < PlanningYears; offset++ {
		y := YearPlan{Year: baseYear + offset, YearOffset: offset}
		if offset < len(labor) {
			y.Labor = labor[offset]
		}
		if offset < len(capex) {
			y.Capex = capex[offset]
		}
		if offset < len(wc) {
			y.WorkingCapital = wc[offset]
		}
		if offset < len(fin) {
			y.Financing = fin[offset]
		}
		p.Years = append(p.Years, y)
	}
	return p
}

// Validation is the outcome of checking an integrated plan. Errors reject
// the plan; warnings flag concerns but allow it through.
type Validation struct {
	Valid    bool     `json:"is_valid"`
	Warnings []string `json:"warnings"`
	Errors   []string `json:"errors"`
}

// Validate checks every planning year. Non-positive labor cost, negative
// net working capital and a computable DSCR below 1.0 are warnings;
// negative investment and negative debt balance are errors.
func (p Integrated) Validate() Validation {
	var v Validation
	for _, y := range p.Years {
		if y.Labor.TotalLaborCost <= 0 {
			v.Warnings = append(v.Warnings, fmt.Sprintf("year %d: labor cost is zero or negative", y.Year))
		}
		if y.Capex.TotalNewInvestment < 0 {
			v.Errors = append(v.Errors, fmt.Sprintf("year %d: capital investment is negative", y.Year))
		}
		if y.WorkingCapital.NetWorkingCapital < 0 {
			v.Warnings = append(v.Warnings, fmt.Sprintf("year %d: net working capital is negative, liquidity is tight", y.Year))
		}
		if y.Financing.DSCR > 0 && y.Financing.DSCR < 1.0 {
			v.Warnings = append(v.Warnings, fmt.Sprintf("year %d: debt service coverage ratio is below 1.0", y.Year))
		}
		if y.Financing.TotalDebtBalance < 0 {
			v.Errors = append(v.Errors, fmt.Sprintf("year %d: debt balance is negative", y.Year))
		}
	}
	v.Valid = len(v.Errors) == 0
	return v
}

// Summary aggregates the integrated plan's three years.
type Summary struct {
	TotalLaborCost          float64 `json:"total_labor_cost_3years"`
	TotalCapitalInvestment  float64 `json:"total_capital_investment_3years"`
	TotalDepreciation       float64 `json:"total_depreciation_3years"`
	TotalInterestPayment    float64 `json:"total_interest_payment_3years"`
	TotalPrincipalRepayment float64 `json:"total_principal_repayment_3years"`
	AverageWorkingCapital   float64 `json:"average_working_capital"`
	FinalDebtBalance        float64 `json:"final_debt_balance"`
}

// Summarize totals the plan and reports the final year's debt balance.
func (p Integrated) Summarize() Summary {
	var s Summary
	for _, y := range p.Years {
		s.TotalLaborCost += y.Labor.TotalLaborCost
		s.TotalCapitalInvestment += y.Capex.TotalNewInvestment
		s.TotalDepreciation += y.Capex.TotalDepreciation
		s.TotalInterestPayment += y.Financing.InterestPayment
		s.TotalPrincipalRepayment += y.Financing.PrincipalRepayment
		s.AverageWorkingCapital += y.WorkingCapital.NetWorkingCapital
	}
	if len(p.Years) > 0 {
		s.AverageWorkingCapital /= float64(len(p.Years))
		s.FinalDebtBalance = p.Years[len(p.Years)-1].Financing.TotalDebtBalance
	}
	return s
}
