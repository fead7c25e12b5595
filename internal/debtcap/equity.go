package debtcap

import "github.com/midori-advisory/finplan-cli/internal/statement"

// safeCashFlowMultiple caps the headline capacity at this many years of
// operating cash flow.
const safeCashFlowMultiple = 5.0

// EquityRatioAnalysis sizes additional debt so that the equity ratio does
// not fall below the target.
type EquityRatioAnalysis struct {
	CurrentEquityRatio float64 `json:"current_equity_ratio"`
	CurrentDebtRatio   float64 `json:"current_debt_ratio"`
	TargetEquityRatio  float64 `json:"target_equity_ratio"`

	AllowableTotalAssets      float64 `json:"allowable_total_assets"`
	AllowableTotalLiabilities float64 `json:"allowable_total_liabilities"`
	AdditionalDebtCapacity    float64 `json:"additional_debt_capacity"`

	// DebtServiceYears is undefined when annual cash flow is not positive.
	DebtServiceYears        float64 `json:"debt_service_years"`
	DebtServiceDefined      bool    `json:"debt_service_defined"`
	InterestCoverage        float64 `json:"interest_coverage_ratio"`
	InterestCoverageDefined bool    `json:"interest_coverage_defined"`

	SafeDebtLimit     float64 `json:"safe_debt_limit"`
	FinalDebtCapacity float64 `json:"final_debt_capacity"`

	Health HealthEvaluation `json:"health"`
}

// AnalyzeByEquityRatio works backwards from the target equity ratio: the
// equity on hand supports a ceiling of total assets, the gap to current
// liabilities is the incremental room, and the result is capped at five
// years of cash flow.
func AnalyzeByEquityRatio(s statement.Snapshot, annualCashFlow, targetEquityRatio float64) EquityRatioAnalysis {
	a := EquityRatioAnalysis{TargetEquityRatio: targetEquityRatio}

	if s.TotalAssets > 0 {
		a.CurrentEquityRatio = s.NetAssets / s.TotalAssets * 100
	}
	if s.NetAssets > 0 {
		a.CurrentDebtRatio = s.TotalLiabilities / s.NetAssets * 100
	}

	if targetEquityRatio > 0 {
		a.AllowableTotalAssets = s.NetAssets / targetEquityRatio * 100
	}
	a.AllowableTotalLiabilities = a.AllowableTotalAssets - s.NetAssets
	a.AdditionalDebtCapacity = a.AllowableTotalLiabilities - s.TotalLiabilities

	if annualCashFlow > 0 {
		a.DebtServiceYears = s.TotalLiabilities / annualCashFlow
		a.DebtServiceDefined = true
	}
	if s.InterestExpense > 0 {
		a.InterestCoverage = s.OperatingIncome / s.InterestExpense
		a.InterestCoverageDefined = true
	}

	a.SafeDebtLimit = annualCashFlow * safeCashFlowMultiple
	if a.AdditionalDebtCapacity > 0 {
		a.FinalDebtCapacity = a.AdditionalDebtCapacity
		if a.SafeDebtLimit < a.FinalDebtCapacity {
			a.FinalDebtCapacity = a.SafeDebtLimit
		}
	}

	a.Health = EvaluateHealth(a)
	return a
}
