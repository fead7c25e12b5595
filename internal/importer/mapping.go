package importer

import (
	"strconv"
	"strings"

	"github.com/midori-advisory/finplan-cli/internal/statement"
)

type setter func(*statement.Snapshot, float64)

// fieldSetters maps a normalized row label to the snapshot field it fills.
// Japanese statutory line names and their snake_case English identifiers are
// both accepted, so files exported from accounting packages and hand-built
// templates import the same way.
var fieldSetters = map[string]setter{}

func register(s setter, labels ...string) {
	for _, l := range labels {
		fieldSetters[normalizeLabel(l)] = s
	}
}

func init() {
	register(func(s *statement.Snapshot, v float64) { s.Sales = v }, "売上高", "sales")
	register(func(s *statement.Snapshot, v float64) { s.CostOfSales = v }, "売上原価", "cost_of_sales")
	register(func(s *statement.Snapshot, v float64) { s.GrossProfit = v }, "売上総利益", "gross_profit")
	register(func(s *statement.Snapshot, v float64) { s.OperatingExpenses = v }, "販売費及び一般管理費", "販管費", "operating_expenses")
	register(func(s *statement.Snapshot, v float64) { s.PersonnelExpenses = v }, "人件費", "personnel_expenses")
	register(func(s *statement.Snapshot, v float64) { s.ExecutiveCompensation = v }, "役員報酬", "executive_compensation")
	register(func(s *statement.Snapshot, v float64) { s.Depreciation = v }, "減価償却費", "depreciation")
	register(func(s *statement.Snapshot, v float64) { s.ResearchDevelopment = v }, "研究開発費", "research_development_expenses")
	register(func(s *statement.Snapshot, v float64) { s.OperatingIncome = v }, "営業利益", "operating_income")
	register(func(s *statement.Snapshot, v float64) { s.InterestIncome = v }, "受取利息", "interest_income")
	register(func(s *statement.Snapshot, v float64) { s.InterestExpense = v }, "支払利息", "interest_expense")
	register(func(s *statement.Snapshot, v float64) { s.NonOperatingIncome = v }, "営業外収益", "non_operating_income")
	register(func(s *statement.Snapshot, v float64) { s.NonOperatingExpenses = v }, "営業外費用", "non_operating_expenses")
	register(func(s *statement.Snapshot, v float64) { s.OrdinaryIncome = v }, "経常利益", "ordinary_income")
	register(func(s *statement.Snapshot, v float64) { s.ExtraordinaryIncome = v }, "特別利益", "extraordinary_income")
	register(func(s *statement.Snapshot, v float64) { s.ExtraordinaryLoss = v }, "特別損失", "extraordinary_loss")
	register(func(s *statement.Snapshot, v float64) { s.IncomeBeforeTax = v }, "税引前当期純利益", "income_before_tax")
	register(func(s *statement.Snapshot, v float64) { s.IncomeTax = v }, "法人税等", "income_tax")
	register(func(s *statement.Snapshot, v float64) { s.NetIncome = v }, "当期純利益", "net_income")

	register(func(s *statement.Snapshot, v float64) { s.Cash = v }, "現金預金", "cash")
	register(func(s *statement.Snapshot, v float64) { s.CurrentAssets = v }, "流動資産", "current_assets")
	register(func(s *statement.Snapshot, v float64) { s.FixedAssets = v }, "固定資産", "fixed_assets")
	register(func(s *statement.Snapshot, v float64) { s.TotalAssets = v }, "総資産", "資産合計", "total_assets")
	register(func(s *statement.Snapshot, v float64) { s.CurrentLiabilities = v }, "流動負債", "current_liabilities")
	register(func(s *statement.Snapshot, v float64) { s.FixedLiabilities = v }, "固定負債", "fixed_liabilities")
	register(func(s *statement.Snapshot, v float64) { s.TotalLiabilities = v }, "負債合計", "total_liabilities")
	register(func(s *statement.Snapshot, v float64) { s.Capital = v }, "資本金", "capital")
	register(func(s *statement.Snapshot, v float64) { s.RetainedEarnings = v }, "利益剰余金", "retained_earnings")
	register(func(s *statement.Snapshot, v float64) { s.NetAssets = v }, "純資産", "純資産合計", "net_assets")
	register(func(s *statement.Snapshot, v float64) { s.LandMarketValue = v }, "土地時価", "land_market_value")
	register(func(s *statement.Snapshot, v float64) { s.SecuritiesMarketValue = v }, "有価証券時価", "securities_market_value")

	register(func(s *statement.Snapshot, v float64) { s.EmployeeCount = v }, "従業員数", "employee_count")
}

// normalizeLabel folds the cosmetic variation seen in exported statements:
// surrounding whitespace, full-width spaces and parentheses, and ASCII case.
func normalizeLabel(label string) string {
	r := strings.NewReplacer(
		" ", "", "　", "",
		"（", "", "）", "",
		"(", "", ")", "",
	)
	return strings.ToLower(r.Replace(strings.TrimSpace(label)))
}

// parseAmount reads a numeric cell, tolerating thousands separators and
// currency marks. A blank or unparseable cell reports ok=false.
func parseAmount(cell string) (float64, bool) {
	c := strings.NewReplacer(
		",", "", "，", "",
		" ", "", "　", "",
		"¥", "", "￥", "", "円", "",
	).Replace(strings.TrimSpace(cell))
	if c == "" {
		return 0, false
	}
	// Accounting exports mark negatives with parentheses or a triangle.
	neg := false
	if strings.HasPrefix(c, "(") && strings.HasSuffix(c, ")") {
		neg = true
		c = c[1 : len(c)-1]
	} else if strings.HasPrefix(c, "△") || strings.HasPrefix(c, "▲") {
		neg = true
		c = strings.TrimPrefix(strings.TrimPrefix(c, "△"), "▲")
	}
	v, err := strconv.ParseFloat(c, 64)
	if err != nil {
		return 0, false
	}
	if neg {
		v = -v
	}
	return v, true
}
