package plan

import "github.com/midori-advisory/finplan-cli/internal/schedule"

// FinancingAssumption is one planning year's funding need. The need is
// split into equity and loan by the equity ratio; the loan part is
// amortized annually over the term, first payment due the following year.
type FinancingAssumption struct {
	RequiredFunds float64 `yaml:"required_funds"`
	EquityRatio   float64 `yaml:"equity_ratio"`
	LoanRate      float64 `yaml:"loan_interest_rate"`
	LoanTermYears int     `yaml:"loan_term_years"`
}

// FinancingYear is one planned year of funding and debt service.
type FinancingYear struct {
	Year               int     `json:"year"`
	YearOffset         int     `json:"year_offset"`
	RequiredFunds      float64 `json:"required_funds"`
	Equity             float64 `json:"equity"`
	NewBorrowing       float64 `json:"new_borrowing"`
	PrincipalRepayment float64 `json:"principal_repayment"`
	InterestPayment    float64 `json:"interest_payment"`
	TotalDebtBalance   float64 `json:"total_debt_balance"`
	DSCR               float64 `json:"debt_service_coverage_ratio"`
}

type originatedLoan struct {
	startOffset int
	entries     []schedule.Entry
}

// BuildFinancingPlan chains the yearly financing plans. Debt balance rolls
// forward from existingDebt: each year adds that year's new loan and
// subtracts principal due on every loan originated in earlier years.
// Existing debt carries no modeled repayment.
func BuildFinancingPlan(baseYear int, existingDebt float64, years []FinancingAssumption) []FinancingYear {
	out := make([]FinancingYear, 0, len(years))
	var loans []originatedLoan
	balance := existingDebt

	for offset, a := range years {
		y := FinancingYear{
			Year:          baseYear + offset,
			YearOffset:    offset,
			RequiredFunds: a.RequiredFunds,
			Equity:        a.RequiredFunds * a.EquityRatio / 100,
		}
		y.NewBorrowing = a.RequiredFunds - y.Equity

		if y.NewBorrowing > 0 && a.LoanTermYears > 0 {
			loans = append(loans, originatedLoan{
				startOffset: offset,
				entries: schedule.Loan{
					Principal:  y.NewBorrowing,
					AnnualRate: a.LoanRate,
					TermYears:  a.LoanTermYears,
					Frequency:  schedule.Annually,
				}.Amortize(),
			})
		}

		for _, l := range loans {
			due := offset - l.startOffset // payment 1 falls one year after drawdown
			if due >= 1 && due <= len(l.entries) {
				e := l.entries[due-1]
				y.PrincipalRepayment += e.Principal
				y.InterestPayment += e.Interest
			}
		}

		balance += y.NewBorrowing - y.PrincipalRepayment
		y.TotalDebtBalance = balance
		out = append(out, y)
	}
	return out
}

// ApplyDebtService fills each year's DSCR from the matching operating cash
// flow figures. Years beyond the provided figures keep a zero DSCR, which
// validation treats as not computable.
func ApplyDebtService(years []FinancingYear, operatingIncome, depreciation []float64) {
	for i := range years {
		if i >= len(operatingIncome) {
			return
		}
		var dep float64
		if i < len(depreciation) {
			dep = depreciation[i]
		}
		years[i].DSCR = schedule.DSCR(operatingIncome[i], years[i].PrincipalRepayment+years[i].InterestPayment, dep)
	}
}
