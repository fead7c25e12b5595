package debtcap

import "github.com/midori-advisory/finplan-cli/internal/indicator"

// Rating is a four-level soundness grade.
type Rating string

const (
	RatingExcellent Rating = "excellent"
	RatingGood      Rating = "good"
	RatingFair      Rating = "fair"
	RatingWatch     Rating = "watch"
)

func (r Rating) score() float64 {
	switch r {
	case RatingExcellent:
		return 4
	case RatingGood:
		return 3
	case RatingFair:
		return 2
	default:
		return 1
	}
}

// Status maps a rating onto the shared traffic-light scale.
func (r Rating) Status() indicator.Status {
	switch r {
	case RatingExcellent, RatingGood:
		return indicator.StatusSuccess
	case RatingFair:
		return indicator.StatusWarning
	default:
		return indicator.StatusDanger
	}
}

// HealthEvaluation grades the three balance-soundness indicators and their
// average.
type HealthEvaluation struct {
	EquityRatio      Rating `json:"equity_ratio"`
	DebtServiceYears Rating `json:"debt_service_years"`
	InterestCoverage Rating `json:"interest_coverage"`
	Overall          Rating `json:"overall"`
}

func rateEquityRatio(pct float64) Rating {
	switch {
	case pct >= 50:
		return RatingExcellent
	case pct >= 30:
		return RatingGood
	case pct >= 20:
		return RatingFair
	default:
		return RatingWatch
	}
}

func rateDebtServiceYears(years float64, defined bool) Rating {
	if !defined {
		// cash flow cannot repay anything
		return RatingWatch
	}
	switch {
	case years <= 3:
		return RatingExcellent
	case years <= 5:
		return RatingGood
	case years <= 10:
		return RatingFair
	default:
		return RatingWatch
	}
}

func rateInterestCoverage(icr float64, defined bool) Rating {
	if !defined {
		// no interest burden at all
		return RatingExcellent
	}
	switch {
	case icr >= 10:
		return RatingExcellent
	case icr >= 5:
		return RatingGood
	case icr >= 2:
		return RatingFair
	default:
		return RatingWatch
	}
}

func overallRating(score float64) Rating {
	switch {
	case score >= 3.5:
		return RatingExcellent
	case score >= 2.5:
		return RatingGood
	case score >= 1.5:
		return RatingFair
	default:
		return RatingWatch
	}
}

// EvaluateHealth grades an equity-ratio analysis.
func EvaluateHealth(a EquityRatioAnalysis) HealthEvaluation {
	h := HealthEvaluation{
		EquityRatio:      rateEquityRatio(a.CurrentEquityRatio),
		DebtServiceYears: rateDebtServiceYears(a.DebtServiceYears, a.DebtServiceDefined),
		InterestCoverage: rateInterestCoverage(a.InterestCoverage, a.InterestCoverageDefined),
	}
	avg := (h.EquityRatio.score() + h.DebtServiceYears.score() + h.InterestCoverage.score()) / 3
	h.Overall = overallRating(avg)
	return h
}
