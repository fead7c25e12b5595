// Package debtcap estimates how much a company can still borrow. Four
// independent methods read the same statement snapshot; none is
// authoritative, and the conservative bound is the smallest positive
// estimate among them.
package debtcap

import (
	"math"

	"github.com/midori-advisory/finplan-cli/internal/statement"
)

// Tunable defaults shared by the analyzers.
const (
	DefaultTargetEquityRatio         = 30.0
	DefaultCollateralRatio           = 0.70
	DefaultInterestBurdenRatio       = 0.10
	DefaultAverageInterestRatePct    = 1.72
	defaultInterestBearingDebtFactor = 0.5
)

// Inputs parameterizes a full analysis. Zero-valued rates fall back to the
// package defaults; a zero AnnualCashFlow leaves the debt-service years
// undefined rather than zero.
type Inputs struct {
	Snapshot            statement.Snapshot
	AnnualCashFlow      float64
	TargetEquityRatio   float64
	CollateralRatio     float64
	InterestBurdenRatio float64
	// AverageInterestRatePct overrides the rate estimated from the
	// snapshot's interest expense.
	AverageInterestRatePct float64
}

// Report bundles the four method results.
type Report struct {
	EquityRatio  EquityRatioAnalysis  `json:"equity_ratio_method"`
	Collateral   CollateralAnalysis   `json:"collateral_method"`
	SafeInterest SafeInterestAnalysis `json:"safe_interest_method"`
	Sensitivity  []SensitivityRow     `json:"sensitivity_table"`

	// ConservativeBound is the smallest positive allowable-debt figure
	// across the comparable methods, 0 when every method says none.
	ConservativeBound float64 `json:"conservative_bound"`
}

// estimatedInterestBearingDebt approximates borrowings when the snapshot
// carries no loan breakdown: half of fixed liabilities.
func estimatedInterestBearingDebt(s statement.Snapshot) float64 {
	return s.FixedLiabilities * defaultInterestBearingDebtFactor
}

// estimatedAverageRatePct derives the average borrowing rate from interest
// expense over estimated debt, falling back to the package default.
func estimatedAverageRatePct(s statement.Snapshot) float64 {
	debt := estimatedInterestBearingDebt(s)
	if debt > 0 && s.InterestExpense > 0 {
		return s.InterestExpense / debt * 100
	}
	return DefaultAverageInterestRatePct
}

// Analyze runs all four methods over one snapshot.
func Analyze(in Inputs) Report {
	target := in.TargetEquityRatio
	if target == 0 {
		target = DefaultTargetEquityRatio
	}
	collateralRatio := in.CollateralRatio
	if collateralRatio == 0 {
		collateralRatio = DefaultCollateralRatio
	}
	burden := in.InterestBurdenRatio
	if burden == 0 {
		burden = DefaultInterestBurdenRatio
	}
	avgRate := in.AverageInterestRatePct
	if avgRate == 0 {
		avgRate = estimatedAverageRatePct(in.Snapshot)
	}

	s := in.Snapshot
	existingDebt := estimatedInterestBearingDebt(s)

	r := Report{
		EquityRatio:  AnalyzeByEquityRatio(s, in.AnnualCashFlow, target),
		Collateral:   AnalyzeByCollateral(s.LandMarketValue, s.SecuritiesMarketValue, collateralRatio, existingDebt),
		SafeInterest: AnalyzeBySafeInterest(s.GrossProfit, s.OperatingIncome, s.InterestExpense, avgRate, burden),
		Sensitivity:  SensitivityLadder(s.GrossProfit, burden),
	}
	r.ConservativeBound = conservativeBound(
		r.EquityRatio.FinalDebtCapacity,
		r.Collateral.AllowableDebt,
		r.SafeInterest.AdditionalCapacity,
	)
	return r
}

func conservativeBound(estimates ...float64) float64 {
	bound := math.Inf(1)
	for _, e := range estimates {
		if e > 0 && e < bound {
			bound = e
		}
	}
	if math.IsInf(bound, 1) {
		return 0
	}
	return bound
}
