// Package invest appraises capital investments: net present value, internal
// rate of return, payback period and profitability index over projected
// annual cash flows.
package invest

import "math"

// NPV discounts the annual cash flows at rate (percent) and subtracts the
// initial investment. Cash flows are end-of-year, starting one year out.
func NPV(initialInvestment float64, cashFlows []float64, discountRate float64) float64 {
	r := discountRate / 100
	var pv float64
	for i, cf := range cashFlows {
		pv += cf / math.Pow(1+r, float64(i+1))
	}
	return pv - initialInvestment
}

const (
	irrMaxIterations = 1000
	irrTolerance     = 1e-4

	// bisection search bounds, as decimal rates
	irrBracketLow  = -0.99
	irrBracketHigh = 10.0
)

// IRR solves for the discount rate (percent) at which NPV is zero. Newton's
// method from 10% is the fast path; when it fails to converge a bisection
// search over a bounded rate range is tried. ok is false when neither
// converges, and callers must treat the IRR as undefined.
func IRR(initialInvestment float64, cashFlows []float64) (irr float64, ok bool) {
	npvAt := func(rate float64) float64 {
		npv := -initialInvestment
		for i, cf := range cashFlows {
			npv += cf / math.Pow(1+rate, float64(i+1))
		}
		return npv
	}

	rate := 0.1
	for i := 0; i < irrMaxIterations; i++ {
		npv := -initialInvestment
		derivative := 0.0
		for j, cf := range cashFlows {
			period := float64(j + 1)
			npv += cf / math.Pow(1+rate, period)
			derivative -= period * cf / math.Pow(1+rate, period+1)
		}

		if math.Abs(npv) < irrTolerance {
			return rate * 100, true
		}
		if derivative == 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
			break
		}
		rate -= npv / derivative
	}

	// bracketing fallback
	lo, hi := irrBracketLow, irrBracketHigh
	fLo, fHi := npvAt(lo), npvAt(hi)
	if fLo*fHi > 0 {
		return math.NaN(), false
	}
	for i := 0; i < irrMaxIterations; i++ {
		mid := (lo + hi) / 2
		fMid := npvAt(mid)
		if math.Abs(fMid) < irrTolerance {
			return mid * 100, true
		}
		if fLo*fMid < 0 {
			hi = mid
		} else {
			lo, fLo = mid, fMid
		}
	}
	return math.NaN(), false
}

// PaybackPeriod is the time until cumulative cash flows recover the initial
// investment, interpolated within the recovery year. recovered is false when
// the flows never reach the investment.
func PaybackPeriod(initialInvestment float64, cashFlows []float64) (years float64, recovered bool) {
	var cumulative float64
	for i, cf := range cashFlows {
		cumulative += cf
		if cumulative >= initialInvestment {
			remaining := initialInvestment - (cumulative - cf)
			fraction := 0.0
			if cf > 0 {
				fraction = remaining / cf
			}
			return float64(i) + fraction, true
		}
	}
	return math.Inf(1), false
}

// ProfitabilityIndex is the present value of the cash flows over the initial
// investment, or 0 for a zero investment.
func ProfitabilityIndex(initialInvestment float64, cashFlows []float64, discountRate float64) float64 {
	if initialInvestment == 0 {
		return 0
	}
	return (NPV(initialInvestment, cashFlows, discountRate) + initialInvestment) / initialInvestment
}
