// Package statement holds the raw fiscal-year statement model and the
// reclassification into the analyst-oriented restructured form.
package statement

// Snapshot is one fiscal year's profit & loss and balance sheet as a flat
// set of numeric fields. A missing field is simply the zero value; no field
// is ever null. The raw snapshot is authoritative; restructured views are
// computed on demand and never stored.
type Snapshot struct {
	CompanyID  string `json:"company_id,omitempty" yaml:"company_id"`
	FiscalYear int    `json:"fiscal_year" yaml:"fiscal_year"`

	// Profit & loss
	Sales                  float64 `json:"sales" yaml:"sales"`
	CostOfSales            float64 `json:"cost_of_sales" yaml:"cost_of_sales"`
	GrossProfit            float64 `json:"gross_profit" yaml:"gross_profit"`
	OperatingExpenses      float64 `json:"operating_expenses" yaml:"operating_expenses"`
	PersonnelExpenses      float64 `json:"personnel_expenses" yaml:"personnel_expenses"`
	ExecutiveCompensation  float64 `json:"executive_compensation" yaml:"executive_compensation"`
	Depreciation           float64 `json:"depreciation" yaml:"depreciation"`
	ResearchDevelopment    float64 `json:"research_development_expenses" yaml:"research_development_expenses"`
	OperatingIncome        float64 `json:"operating_income" yaml:"operating_income"`
	InterestIncome         float64 `json:"interest_income" yaml:"interest_income"`
	InterestExpense        float64 `json:"interest_expense" yaml:"interest_expense"`
	NonOperatingIncome     float64 `json:"non_operating_income" yaml:"non_operating_income"`
	NonOperatingExpenses   float64 `json:"non_operating_expenses" yaml:"non_operating_expenses"`
	OrdinaryIncome         float64 `json:"ordinary_income" yaml:"ordinary_income"`
	ExtraordinaryIncome    float64 `json:"extraordinary_income" yaml:"extraordinary_income"`
	ExtraordinaryLoss      float64 `json:"extraordinary_loss" yaml:"extraordinary_loss"`
	IncomeBeforeTax        float64 `json:"income_before_tax" yaml:"income_before_tax"`
	IncomeTax              float64 `json:"income_tax" yaml:"income_tax"`
	NetIncome              float64 `json:"net_income" yaml:"net_income"`

	// Balance sheet
	Cash                 float64 `json:"cash" yaml:"cash"`
	CurrentAssets        float64 `json:"current_assets" yaml:"current_assets"`
	FixedAssets          float64 `json:"fixed_assets" yaml:"fixed_assets"`
	TotalAssets          float64 `json:"total_assets" yaml:"total_assets"`
	CurrentLiabilities   float64 `json:"current_liabilities" yaml:"current_liabilities"`
	FixedLiabilities     float64 `json:"fixed_liabilities" yaml:"fixed_liabilities"`
	TotalLiabilities     float64 `json:"total_liabilities" yaml:"total_liabilities"`
	Capital              float64 `json:"capital" yaml:"capital"`
	RetainedEarnings     float64 `json:"retained_earnings" yaml:"retained_earnings"`
	NetAssets            float64 `json:"net_assets" yaml:"net_assets"`
	LandMarketValue      float64 `json:"land_market_value" yaml:"land_market_value"`
	SecuritiesMarketValue float64 `json:"securities_market_value" yaml:"securities_market_value"`

	EmployeeCount float64 `json:"employee_count" yaml:"employee_count"`
}

// Normalized returns a copy with derived PL totals recomputed where the
// source left them at zero. Raw statutory data frequently carries only the
// primitive lines; the derived lines are reproducible.
func (s Snapshot) Normalized() Snapshot {
	if s.GrossProfit == 0 {
		s.GrossProfit = s.Sales - s.CostOfSales
	}
	if s.OrdinaryIncome == 0 {
		s.OrdinaryIncome = s.OperatingIncome + s.NonOperatingIncome - s.NonOperatingExpenses
	}
	if s.IncomeBeforeTax == 0 {
		s.IncomeBeforeTax = s.OrdinaryIncome + s.ExtraordinaryIncome - s.ExtraordinaryLoss
	}
	if s.NetIncome == 0 {
		s.NetIncome = s.IncomeBeforeTax - s.IncomeTax
	}
	if s.NetAssets == 0 {
		s.NetAssets = s.Capital + s.RetainedEarnings
	}
	if s.TotalAssets == 0 {
		s.TotalAssets = s.CurrentAssets + s.FixedAssets
	}
	if s.TotalLiabilities == 0 {
		s.TotalLiabilities = s.CurrentLiabilities + s.FixedLiabilities
	}
	return s
}

// Detail is the optional side table of manufacturing overhead and
// balance-sheet breakdown lines. Every field defaults to zero when the
// caller has no detail available.
type Detail struct {
	// Manufacturing cost report
	LaborCostManufacturing    float64 `json:"labor_cost_manufacturing" yaml:"labor_cost_manufacturing"`
	DepreciationManufacturing float64 `json:"depreciation_manufacturing" yaml:"depreciation_manufacturing"`
	RepairCostManufacturing   float64 `json:"repair_cost_manufacturing" yaml:"repair_cost_manufacturing"`

	// PL-side detail
	LaborCostPL      float64 `json:"labor_cost_pl" yaml:"labor_cost_pl"`
	RepairCostPL     float64 `json:"repair_cost_pl" yaml:"repair_cost_pl"`
	ExecutiveWelfare float64 `json:"executive_welfare" yaml:"executive_welfare"`

	// Caller-supplied variable-expense estimate. True variable-cost
	// identification requires judgment; it is never derived here.
	VariableExpenses float64 `json:"variable_expenses" yaml:"variable_expenses"`

	// BS breakdown
	CashAndDeposits              float64 `json:"cash_and_deposits" yaml:"cash_and_deposits"`
	TimeDeposits                 float64 `json:"time_deposits" yaml:"time_deposits"`
	AccountsReceivable           float64 `json:"accounts_receivable" yaml:"accounts_receivable"`
	NotesReceivable              float64 `json:"notes_receivable" yaml:"notes_receivable"`
	OtherReceivables             float64 `json:"other_receivables" yaml:"other_receivables"`
	MerchandiseInventory         float64 `json:"merchandise_inventory" yaml:"merchandise_inventory"`
	WorkInProcess                float64 `json:"work_in_process" yaml:"work_in_process"`
	RawMaterials                 float64 `json:"raw_materials" yaml:"raw_materials"`
	Supplies                     float64 `json:"supplies" yaml:"supplies"`
	AllowanceForDoubtfulAccounts float64 `json:"allowance_for_doubtful_accounts" yaml:"allowance_for_doubtful_accounts"`
	TangibleFixedAssets          float64 `json:"tangible_fixed_assets" yaml:"tangible_fixed_assets"`
	IntangibleFixedAssets        float64 `json:"intangible_fixed_assets" yaml:"intangible_fixed_assets"`
	InvestmentsAndOtherAssets    float64 `json:"investments_and_other_assets" yaml:"investments_and_other_assets"`
	AccountsPayable              float64 `json:"accounts_payable" yaml:"accounts_payable"`
	NotesPayable                 float64 `json:"notes_payable" yaml:"notes_payable"`
	OtherPayables                float64 `json:"other_payables" yaml:"other_payables"`
	ShortTermBorrowings          float64 `json:"short_term_borrowings" yaml:"short_term_borrowings"`
	CurrentPortionOfLongTermDebt float64 `json:"current_portion_of_long_term_debt" yaml:"current_portion_of_long_term_debt"`
	OtherCurrentLiabilities      float64 `json:"other_current_liabilities" yaml:"other_current_liabilities"`
	LongTermBorrowings           float64 `json:"long_term_borrowings" yaml:"long_term_borrowings"`
	ExecutiveBorrowings          float64 `json:"executive_borrowings" yaml:"executive_borrowings"`
	OtherFixedLiabilities        float64 `json:"other_fixed_liabilities" yaml:"other_fixed_liabilities"`
}
