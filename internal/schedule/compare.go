package schedule

// Recommendation values for the loan comparisons.
const (
	RecommendRefinance = "refinance"
	RecommendRepay     = "repay"
	RecommendKeep      = "keep"
)

// RefinancingBenefit compares staying on the current rate against
// refinancing the remaining balance at a new rate.
type RefinancingBenefit struct {
	CurrentTotalInterest  float64 `json:"current_total_interest"`
	NewTotalInterest      float64 `json:"new_total_interest"`
	InterestSavings       float64 `json:"interest_savings"`
	RefinancingCost       float64 `json:"refinancing_cost"`
	NetSavings            float64 `json:"net_savings"`
	CurrentPaymentPerPeriod float64 `json:"current_monthly_payment"`
	NewPaymentPerPeriod   float64 `json:"new_monthly_payment"`
	PaymentSavings        float64 `json:"monthly_payment_savings"`
	Recommendation        string  `json:"recommendation"`
}

// CompareRefinancing evaluates refinancing balance at newRate for the
// remaining term, net of the refinancing cost. Monthly payments throughout.
func CompareRefinancing(balance, currentRate float64, remainingYears int, newRate, cost float64) RefinancingBenefit {
	current := Loan{Principal: balance, AnnualRate: currentRate, TermYears: remainingYears, Frequency: Monthly}.Payment()
	next := Loan{Principal: balance, AnnualRate: newRate, TermYears: remainingYears, Frequency: Monthly}.Payment()

	b := RefinancingBenefit{
		CurrentTotalInterest:  current.TotalInterest,
		NewTotalInterest:      next.TotalInterest,
		InterestSavings:       current.TotalInterest - next.TotalInterest,
		RefinancingCost:       cost,
		CurrentPaymentPerPeriod: current.PaymentPerPeriod,
		NewPaymentPerPeriod:   next.PaymentPerPeriod,
		PaymentSavings:        current.PaymentPerPeriod - next.PaymentPerPeriod,
	}
	b.NetSavings = b.InterestSavings - cost
	if b.NetSavings > 0 {
		b.Recommendation = RecommendRefinance
	} else {
		b.Recommendation = RecommendKeep
	}
	return b
}

// EarlyRepaymentBenefit compares keeping the current balance against paying
// part of it down now.
type EarlyRepaymentBenefit struct {
	CurrentBalance        float64 `json:"current_balance"`
	RepaymentAmount       float64 `json:"early_repayment_amount"`
	NewBalance            float64 `json:"new_balance"`
	CurrentTotalInterest  float64 `json:"current_total_interest"`
	NewTotalInterest      float64 `json:"new_total_interest"`
	InterestSavings       float64 `json:"interest_savings"`
	Penalty               float64 `json:"early_repayment_penalty"`
	NetSavings            float64 `json:"net_savings"`
	CurrentPaymentPerPeriod float64 `json:"current_monthly_payment"`
	NewPaymentPerPeriod   float64 `json:"new_monthly_payment"`
	Recommendation        string  `json:"recommendation"`
}

// CompareEarlyRepayment evaluates paying amount off the balance now, net of
// the penalty. Paying the balance off entirely saves all remaining interest.
func CompareEarlyRepayment(balance, rate float64, remainingYears int, amount, penalty float64) EarlyRepaymentBenefit {
	current := Loan{Principal: balance, AnnualRate: rate, TermYears: remainingYears, Frequency: Monthly}.Payment()

	b := EarlyRepaymentBenefit{
		CurrentBalance:        balance,
		RepaymentAmount:       amount,
		CurrentTotalInterest:  current.TotalInterest,
		Penalty:               penalty,
		CurrentPaymentPerPeriod: current.PaymentPerPeriod,
	}

	newBalance := balance - amount
	if newBalance <= 0 {
		b.InterestSavings = current.TotalInterest
	} else {
		b.NewBalance = newBalance
		next := Loan{Principal: newBalance, AnnualRate: rate, TermYears: remainingYears, Frequency: Monthly}.Payment()
		b.NewTotalInterest = next.TotalInterest
		b.NewPaymentPerPeriod = next.PaymentPerPeriod
		b.InterestSavings = current.TotalInterest - next.TotalInterest
	}

	b.NetSavings = b.InterestSavings - penalty
	if b.NetSavings > 0 {
		b.Recommendation = RecommendRepay
	} else {
		b.Recommendation = RecommendKeep
	}
	return b
}
