package plan

import "github.com/midori-advisory/finplan-cli/internal/schedule"

// Investment is one capital investment item.
type Investment struct {
	Name          string                      `json:"name" yaml:"name"`
	Amount        float64                     `json:"amount" yaml:"amount"`
	UsefulLife    int                         `json:"useful_life" yaml:"useful_life"`
	ResidualValue float64                     `json:"residual_value" yaml:"residual_value"`
	Method        schedule.DepreciationMethod `json:"method" yaml:"method"`
}

// defaultUsefulLife when an investment omits its life.
const defaultUsefulLife = 5

// annualDepreciation is the flat yearly charge used inside the plan:
// straight-line over the full life, or the first-year declining-balance
// charge applied flat.
func (inv Investment) annualDepreciation() float64 {
	life := inv.UsefulLife
	if life <= 0 {
		return 0
	}
	if inv.Method == schedule.DecliningBalance {
		return inv.Amount * 2.0 / float64(life)
	}
	return (inv.Amount - inv.ResidualValue) / float64(life)
}

// CapexYear is one planned year of capital investment.
type CapexYear struct {
	Year               int          `json:"year"`
	YearOffset         int          `json:"year_offset"`
	NewInvestments     []Investment `json:"new_investments"`
	TotalNewInvestment float64      `json:"total_new_investment"`
	TotalDepreciation  float64      `json:"total_depreciation"`
	ActiveInvestments  int          `json:"active_investments_count"`
}

type activeInvestment struct {
	Investment
	remainingLife int
}

// BuildCapexPlan tracks the set of active investments across years: each
// year appends that year's new investments, charges one year of
// depreciation for every investment with remaining life, and drops
// investments whose life is exhausted.
func BuildCapexPlan(baseYear int, yearlyInvestments [][]Investment) []CapexYear {
	out := make([]CapexYear, 0, len(yearlyInvestments))
	var ongoing []activeInvestment

	for offset, newInvestments := range yearlyInvestments {
		y := CapexYear{
			Year:           baseYear + offset,
			YearOffset:     offset,
			NewInvestments: newInvestments,
		}

		for _, inv := range newInvestments {
			y.TotalNewInvestment += inv.Amount
			if inv.UsefulLife == 0 {
				inv.UsefulLife = defaultUsefulLife
			}
			ongoing = append(ongoing, activeInvestment{Investment: inv, remainingLife: inv.UsefulLife})
		}

		still := ongoing[:0]
		for _, inv := range ongoing {
			if inv.remainingLife <= 0 {
				continue
			}
			y.TotalDepreciation += inv.annualDepreciation()
			inv.remainingLife--
			y.ActiveInvestments++
			if inv.remainingLife > 0 {
				still = append(still, inv)
			}
		}
		ongoing = still
		out = append(out, y)
	}
	return out
}

// CapexSummary aggregates a multi-year investment plan.
type CapexSummary struct {
	TotalInvestment     float64 `json:"total_investment_3years"`
	TotalDepreciation   float64 `json:"total_depreciation_3years"`
	AverageInvestment   float64 `json:"average_annual_investment"`
	AverageDepreciation float64 `json:"average_annual_depreciation"`
}

// SummarizeCapexPlan computes totals and annual averages.
func SummarizeCapexPlan(years []CapexYear) CapexSummary {
	var s CapexSummary
	if len(years) == 0 {
		return s
	}
	for _, y := range years {
		s.TotalInvestment += y.TotalNewInvestment
		s.TotalDepreciation += y.TotalDepreciation
	}
	n := float64(len(years))
	s.AverageInvestment = s.TotalInvestment / n
	s.AverageDepreciation = s.TotalDepreciation / n
	return s
}
