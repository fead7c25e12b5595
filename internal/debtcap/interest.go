package debtcap

import "github.com/midori-advisory/finplan-cli/internal/indicator"

// SafeInterestAnalysis keeps annual interest within a fixed share of gross
// profit and converts that interest budget into a debt ceiling at the
// average borrowing rate.
type SafeInterestAnalysis struct {
	GrossProfit            float64 `json:"gross_profit"`
	TargetBurdenRatio      float64 `json:"target_interest_burden_ratio"`
	CurrentBurdenRatio     float64 `json:"current_interest_burden_ratio"`
	SafeInterestPayment    float64 `json:"safe_interest_payment"`
	AverageInterestRatePct float64 `json:"average_interest_rate_pct"`

	AllowableDebt        float64 `json:"allowable_debt"`
	CurrentEstimatedDebt float64 `json:"current_estimated_debt"`
	AdditionalCapacity   float64 `json:"additional_borrowing_capacity"`

	InterestCoverage        float64 `json:"interest_coverage_ratio"`
	InterestCoverageDefined bool    `json:"interest_coverage_defined"`

	Evaluation indicator.Status `json:"evaluation"`
}

// AnalyzeBySafeInterest computes the safe-interest-rate method. Rates come
// in as percentages; burden ratios as decimals.
func AnalyzeBySafeInterest(grossProfit, operatingIncome, interestExpense, averageRatePct, targetBurdenRatio float64) SafeInterestAnalysis {
	a := SafeInterestAnalysis{
		GrossProfit:            grossProfit,
		TargetBurdenRatio:      targetBurdenRatio,
		AverageInterestRatePct: averageRatePct,
	}

	if grossProfit > 0 {
		a.CurrentBurdenRatio = interestExpense / grossProfit
	}
	a.SafeInterestPayment = grossProfit * targetBurdenRatio

	rate := averageRatePct / 100
	if rate > 0 {
		a.AllowableDebt = a.SafeInterestPayment / rate
		a.CurrentEstimatedDebt = interestExpense / rate
	}
	a.AdditionalCapacity = a.AllowableDebt - a.CurrentEstimatedDebt

	if interestExpense > 0 {
		a.InterestCoverage = operatingIncome / interestExpense
		a.InterestCoverageDefined = true
	}

	switch {
	case a.CurrentBurdenRatio <= targetBurdenRatio:
		a.Evaluation = indicator.StatusSuccess
	case a.CurrentBurdenRatio <= targetBurdenRatio*1.5:
		a.Evaluation = indicator.StatusWarning
	default:
		a.Evaluation = indicator.StatusDanger
	}
	return a
}

// Sensitivity ladder bounds, in percent.
const (
	ladderStartPct = 0.5
	ladderEndPct   = 8.0
	ladderStepPct  = 0.5
)

// SensitivityRow is one rung of the interest-rate ladder.
type SensitivityRow struct {
	RatePct        float64 `json:"rate_pct"`
	AllowableDebt  float64 `json:"allowable_debt"`
	AnnualInterest float64 `json:"annual_interest"`
}

// SensitivityLadder re-prices the safe-interest ceiling at every rate from
// 0.5% to 8.0% in 0.5% steps. The interest budget itself does not depend on
// the rate, so AnnualInterest is flat across rungs while AllowableDebt
// shrinks as rates rise.
func SensitivityLadder(grossProfit, targetBurdenRatio float64) []SensitivityRow {
	budget := grossProfit * targetBurdenRatio
	steps := int((ladderEndPct-ladderStartPct)/ladderStepPct) + 1

	rows := make([]SensitivityRow, 0, steps)
	for i := 0; i < steps; i++ {
		pct := ladderStartPct + float64(i)*ladderStepPct
		rate := pct / 100
		rows = append(rows, SensitivityRow{
			RatePct:        pct,
			AllowableDebt:  budget / rate,
			AnnualInterest: budget,
		})
	}
	return rows
}
