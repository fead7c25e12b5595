package debtcap

import "github.com/midori-advisory/finplan-cli/internal/statement"

// CollateralAnalysis sizes debt against the market value of pledgeable
// assets.
type CollateralAnalysis struct {
	LandMarketValue       float64 `json:"land_market_value"`
	SecuritiesMarketValue float64 `json:"securities_market_value"`
	CollateralRatio       float64 `json:"collateral_ratio"`
	CollateralValue       float64 `json:"collateral_value"`
	ExistingDebt          float64 `json:"existing_debt"`
	// AllowableDebt may be negative when existing debt already exceeds the
	// collateral value.
	AllowableDebt float64 `json:"allowable_debt"`
}

// AnalyzeByCollateral applies the haircut ratio to land and securities and
// nets off the debt already drawn.
func AnalyzeByCollateral(land, securities, ratio, existingDebt float64) CollateralAnalysis {
	a := CollateralAnalysis{
		LandMarketValue:       land,
		SecuritiesMarketValue: securities,
		CollateralRatio:       ratio,
		ExistingDebt:          existingDebt,
	}
	a.CollateralValue = (land + securities) * ratio
	a.AllowableDebt = a.CollateralValue - existingDebt
	return a
}

// QuickReferenceCaps are the back-of-envelope ceilings bankers quote
// alongside the detailed methods.
type QuickReferenceCaps struct {
	// 30% of total assets
	FinancialProcurementCap float64 `json:"financial_procurement_cap"`
	// 20% of annual sales
	DebtDependenceCap float64 `json:"debt_dependence_cap"`
	// 50% of pledgeable market value
	CollateralCap float64 `json:"collateral_cap"`
}

// QuickCaps computes the reference ceilings from one snapshot.
func QuickCaps(s statement.Snapshot) QuickReferenceCaps {
	return QuickReferenceCaps{
		FinancialProcurementCap: s.TotalAssets * 0.30,
		DebtDependenceCap:       s.Sales * 0.20,
		CollateralCap:           (s.LandMarketValue + s.SecuritiesMarketValue) * 0.50,
	}
}
