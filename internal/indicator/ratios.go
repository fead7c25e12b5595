package indicator

import "github.com/midori-advisory/finplan-cli/internal/statement"

// Status is the traffic-light band assigned to a single statement ratio.
type Status string

const (
	StatusSuccess Status = "success"
	StatusWarning Status = "warning"
	StatusDanger  Status = "danger"
)

// Ratio is one simple statement ratio with its band.
type Ratio struct {
	Value  float64 `json:"value"`
	Status Status  `json:"status"`
}

// band grades v against lower bounds: at or above good is success, at or
// above ok is warning, below is danger.
func band(v, good, ok float64) Status {
	switch {
	case v >= good:
		return StatusSuccess
	case v >= ok:
		return StatusWarning
	default:
		return StatusDanger
	}
}

// bandInverted grades v where lower is better.
func bandInverted(v, good, ok float64) Status {
	switch {
	case v <= good:
		return StatusSuccess
	case v <= ok:
		return StatusWarning
	default:
		return StatusDanger
	}
}

// RatioSet is the quick statement health check shown at the top of the
// indicators report: margins, safety ratios, turnovers and ROA/ROE.
type RatioSet struct {
	OperatingProfitMargin Ratio `json:"operating_profit_margin"`
	OrdinaryProfitMargin  Ratio `json:"ordinary_profit_margin"`
	NetProfitMargin       Ratio `json:"net_profit_margin"`

	CurrentRatio Ratio `json:"current_ratio"`
	FixedRatio   Ratio `json:"fixed_ratio"`
	EquityRatio  Ratio `json:"equity_ratio"`
	DebtRatio    Ratio `json:"debt_ratio"`

	TotalAssetTurnover   Ratio `json:"total_asset_turnover"`
	FixedAssetTurnover   Ratio `json:"fixed_asset_turnover"`
	CurrentAssetTurnover Ratio `json:"current_asset_turnover"`

	ROA Ratio `json:"roa"`
	ROE Ratio `json:"roe"`
}

// SimpleRatios computes the quick ratio set from a snapshot. Every divisor
// is guarded; an undefined ratio reports zero with a danger band only where
// zero genuinely is below the warning bound.
func SimpleRatios(s statement.Snapshot) RatioSet {
	equity := s.NetAssets

	opMargin := pct(s.OperatingIncome, s.Sales)
	ordMargin := pct(s.OrdinaryIncome, s.Sales)
	netMargin := pct(s.NetIncome, s.Sales)

	currentRatio := pct(s.CurrentAssets, s.CurrentLiabilities)
	fixedRatio := pct(s.FixedAssets, equity)
	equityRatio := pct(equity, s.TotalAssets)
	debtRatio := pct(s.TotalLiabilities, equity)

	return RatioSet{
		OperatingProfitMargin: Ratio{opMargin, band(opMargin, 5, 0)},
		OrdinaryProfitMargin:  Ratio{ordMargin, band(ordMargin, 5, 0)},
		NetProfitMargin:       Ratio{netMargin, band(netMargin, 3, 0)},

		CurrentRatio: Ratio{currentRatio, band(currentRatio, 200, 100)},
		FixedRatio:   Ratio{fixedRatio, bandInverted(fixedRatio, 100, 150)},
		EquityRatio:  Ratio{equityRatio, band(equityRatio, 40, 20)},
		DebtRatio:    Ratio{debtRatio, bandInverted(debtRatio, 100, 200)},

		TotalAssetTurnover:   Ratio{ratio(s.Sales, s.TotalAssets), band(ratio(s.Sales, s.TotalAssets), 1.0, 0.5)},
		FixedAssetTurnover:   Ratio{ratio(s.Sales, s.FixedAssets), band(ratio(s.Sales, s.FixedAssets), 2.0, 1.0)},
		CurrentAssetTurnover: Ratio{ratio(s.Sales, s.CurrentAssets), band(ratio(s.Sales, s.CurrentAssets), 2.0, 1.0)},

		ROA: Ratio{pct(s.NetIncome, s.TotalAssets), band(pct(s.NetIncome, s.TotalAssets), 5, 2)},
		ROE: Ratio{pct(s.NetIncome, equity), band(pct(s.NetIncome, equity), 10, 5)},
	}
}
