// Package schedule produces loan amortization and asset depreciation
// schedules, plus refinancing and early-repayment comparisons built on them.
package schedule

import "math"

// Frequency is how often a loan payment falls due.
type Frequency string

const (
	Monthly   Frequency = "monthly"
	Quarterly Frequency = "quarterly"
	Annually  Frequency = "annually"
)

// PeriodsPerYear returns the payment count for one year. Unknown values
// fall back to annual.
func (f Frequency) PeriodsPerYear() int {
	switch f {
	case Monthly:
		return 12
	case Quarterly:
		return 4
	default:
		return 1
	}
}

// Loan describes a single equal-payment borrowing.
type Loan struct {
	Name      string  `json:"name,omitempty" yaml:"name"`
	Principal float64 `json:"principal" yaml:"principal"`
	// AnnualRate is the interest rate in percent.
	AnnualRate float64   `json:"annual_interest_rate" yaml:"annual_interest_rate"`
	TermYears  int       `json:"term_years" yaml:"term_years"`
	Frequency  Frequency `json:"payment_frequency,omitempty" yaml:"payment_frequency"`
}

// LoanSummary is the headline payment figures for a loan.
type LoanSummary struct {
	Name             string  `json:"name,omitempty"`
	Principal        float64 `json:"principal"`
	Periods          int     `json:"periods"`
	PaymentPerPeriod float64 `json:"payment_per_period"`
	TotalPayment     float64 `json:"total_payment"`
	TotalInterest    float64 `json:"total_interest"`
}

func (l Loan) periods() int {
	return l.TermYears * l.Frequency.PeriodsPerYear()
}

func (l Loan) ratePerPeriod() float64 {
	return l.AnnualRate / 100 / float64(l.Frequency.PeriodsPerYear())
}

// Payment computes the equal payment per period and the loan totals.
// A zero term yields the zero summary.
func (l Loan) Payment() LoanSummary {
	n := l.periods()
	if n <= 0 {
		return LoanSummary{Name: l.Name, Principal: l.Principal}
	}

	r := l.ratePerPeriod()
	var payment float64
	if r == 0 {
		payment = l.Principal / float64(n)
	} else {
		pow := math.Pow(1+r, float64(n))
		payment = l.Principal * r * pow / (pow - 1)
	}

	total := payment * float64(n)
	return LoanSummary{
		Name:             l.Name,
		Principal:        l.Principal,
		Periods:          n,
		PaymentPerPeriod: payment,
		TotalPayment:     total,
		TotalInterest:    total - l.Principal,
	}
}

// Entry is one row of an amortization schedule.
type Entry struct {
	Period           int     `json:"period"`
	Payment          float64 `json:"payment"`
	Principal        float64 `json:"principal_payment"`
	Interest         float64 `json:"interest_payment"`
	RemainingBalance float64 `json:"remaining_balance"`
}

// Amortize generates the full payment schedule. The final period absorbs
// any rounding remainder so the terminal balance is exactly zero.
func (l Loan) Amortize() []Entry {
	summary := l.Payment()
	n := summary.Periods
	if n == 0 {
		return nil
	}

	r := l.ratePerPeriod()
	schedule := make([]Entry, 0, n)
	balance := l.Principal

	for period := 1; period <= n; period++ {
		interest := balance * r
		principal := summary.PaymentPerPeriod - interest
		balance -= principal

		if period == n {
			principal += balance
			balance = 0
		}

		schedule = append(schedule, Entry{
			Period:           period,
			Payment:          summary.PaymentPerPeriod,
			Principal:        principal,
			Interest:         interest,
			RemainingBalance: math.Max(0, balance),
		})
	}
	return schedule
}

// LoanAggregate combines the totals of several loans.
type LoanAggregate struct {
	TotalPrincipal float64       `json:"total_principal"`
	TotalPayment   float64       `json:"total_payment"`
	TotalInterest  float64       `json:"total_interest"`
	Loans          []LoanSummary `json:"loan_details"`
}

// AggregateLoans sums the payment figures of every loan.
func AggregateLoans(loans []Loan) LoanAggregate {
	var agg LoanAggregate
	for _, l := range loans {
		s := l.Payment()
		agg.TotalPrincipal += s.Principal
		agg.TotalPayment += s.TotalPayment
		agg.TotalInterest += s.TotalInterest
		agg.Loans = append(agg.Loans, s)
	}
	return agg
}

// DSCR is (operating income + depreciation) over the annual debt payment,
// or 0 when there is no debt service.
func DSCR(operatingIncome, annualDebtPayment, depreciation float64) float64 {
	if annualDebtPayment == 0 {
		return 0
	}
	return (operatingIncome + depreciation) / annualDebtPayment
}
