// Package plan builds the four annual sub-plans (labor cost, capital
// investment, working capital, financing/repayment), chains them across the
// three planning years, and integrates them into a validated plan.
package plan

// LaborRates are the statutory/benefit loadings applied to base pay plus
// bonus.
type LaborRates struct {
	SocialInsurance float64 `yaml:"social_insurance_rate"`
	Welfare         float64 `yaml:"welfare_rate"`
	Other           float64 `yaml:"other_rate"`
}

// DefaultLaborRates returns the standard loadings.
func DefaultLaborRates() LaborRates {
	return LaborRates{
		SocialInsurance: 0.15,
		Welfare:         0.05,
		Other:           0.02,
	}
}

// LaborAssumption is one planning year's labor inputs. A zero
// PlannedEmployeeCount keeps the prior year's headcount; zero rates take
// the defaults.
type LaborAssumption struct {
	PlannedEmployeeCount int        `yaml:"planned_employee_count"`
	AverageSalary        float64    `yaml:"average_salary"`
	BonusMonths          float64    `yaml:"bonus_months"`
	Rates                LaborRates `yaml:",inline"`
}

// LaborYear is one planned year of labor cost.
type LaborYear struct {
	Year                 int     `json:"year"`
	YearOffset           int     `json:"year_offset"`
	CurrentEmployees     int     `json:"current_employee_count"`
	PlannedEmployees     int     `json:"planned_employee_count"`
	EmployeeChange       int     `json:"employee_change"`
	EmployeeChangeRate   float64 `json:"employee_change_rate"`
	AverageSalary        float64 `json:"average_salary"`
	AnnualBaseSalary     float64 `json:"annual_base_salary"`
	AnnualBonus          float64 `json:"annual_bonus"`
	SocialInsurance      float64 `json:"social_insurance"`
	WelfareExpense       float64 `json:"welfare_expense"`
	OtherExpense         float64 `json:"other_expense"`
	TotalLaborCost       float64 `json:"total_labor_cost"`
	LaborCostPerEmployee float64 `json:"labor_cost_per_employee"`
}

// defaultBonusMonths when an assumption leaves the bonus unset.
const defaultBonusMonths = 2.0

// BuildLaborPlan chains the yearly labor plans: each year's planned
// headcount becomes the next year's starting headcount.
func BuildLaborPlan(baseYear, currentEmployees int, years []LaborAssumption) []LaborYear {
	out := make([]LaborYear, 0, len(years))
	prev := currentEmployees

	for offset, a := range years {
		planned := a.PlannedEmployeeCount
		if planned == 0 {
			planned = prev
		}
		bonusMonths := a.BonusMonths
		if bonusMonths == 0 {
			bonusMonths = defaultBonusMonths
		}
		rates := a.Rates
		if rates == (LaborRates{}) {
			rates = DefaultLaborRates()
		}

		base := a.AverageSalary * 12 * float64(planned)
		bonus := a.AverageSalary * bonusMonths * float64(planned)
		pay := base + bonus

		y := LaborYear{
			Year:             baseYear + offset,
			YearOffset:       offset,
			CurrentEmployees: prev,
			PlannedEmployees: planned,
			EmployeeChange:   planned - prev,
			AverageSalary:    a.AverageSalary,
			AnnualBaseSalary: base,
			AnnualBonus:      bonus,
			SocialInsurance:  pay * rates.SocialInsurance,
			WelfareExpense:   pay * rates.Welfare,
			OtherExpense:     pay * rates.Other,
		}
		if prev > 0 {
			y.EmployeeChangeRate = float64(y.EmployeeChange) / float64(prev) * 100
		}
		y.TotalLaborCost = base + bonus + y.SocialInsurance + y.WelfareExpense + y.OtherExpense
		if planned > 0 {
			y.LaborCostPerEmployee = y.TotalLaborCost / float64(planned)
		}

		out = append(out, y)
		prev = planned
	}
	return out
}

// LaborSummary aggregates a multi-year labor plan.
type LaborSummary struct {
	TotalLaborCost         float64 `json:"total_labor_cost_3years"`
	AverageEmployeeCount   float64 `json:"average_employee_count"`
	AverageCostPerEmployee float64 `json:"average_labor_cost_per_employee"`
	EmployeeGrowthRate     float64 `json:"employee_growth_rate"`
	LaborCostGrowthRate    float64 `json:"labor_cost_growth_rate"`
}

// SummarizeLaborPlan computes totals, averages and first-to-last growth.
func SummarizeLaborPlan(years []LaborYear) LaborSummary {
	var s LaborSummary
	if len(years) == 0 {
		return s
	}

	var employees, perEmployee float64
	for _, y := range years {
		s.TotalLaborCost += y.TotalLaborCost
		employees += float64(y.PlannedEmployees)
		perEmployee += y.LaborCostPerEmployee
	}
	n := float64(len(years))
	s.AverageEmployeeCount = employees / n
	s.AverageCostPerEmployee = perEmployee / n

	first, last := years[0], years[len(years)-1]
	if first.PlannedEmployees > 0 {
		s.EmployeeGrowthRate = float64(last.PlannedEmployees-first.PlannedEmployees) / float64(first.PlannedEmployees) * 100
	}
	if first.TotalLaborCost > 0 {
		s.LaborCostGrowthRate = (last.TotalLaborCost - first.TotalLaborCost) / first.TotalLaborCost * 100
	}
	return s
}
