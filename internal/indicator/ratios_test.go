package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/midori-advisory/finplan-cli/internal/statement"
)

func TestSimpleRatios(t *testing.T) {
	t.Parallel()

	s := statement.Snapshot{
		Sales:              100_000_000,
		OperatingIncome:    8_000_000,
		OrdinaryIncome:     7_500_000,
		NetIncome:          5_000_000,
		CurrentAssets:      45_000_000,
		FixedAssets:        35_000_000,
		TotalAssets:        80_000_000,
		CurrentLiabilities: 25_000_000,
		TotalLiabilities:   55_000_000,
		NetAssets:          25_000_000,
	}

	got := SimpleRatios(s)

	assert.InDelta(t, 8.0, got.OperatingProfitMargin.Value, 1e-9)
	assert.Equal(t, StatusSuccess, got.OperatingProfitMargin.Status)

	assert.InDelta(t, 180.0, got.CurrentRatio.Value, 1e-9)
	assert.Equal(t, StatusWarning, got.CurrentRatio.Status)

	assert.InDelta(t, 140.0, got.FixedRatio.Value, 1e-9)
	assert.Equal(t, StatusWarning, got.FixedRatio.Status)

	assert.InDelta(t, 31.25, got.EquityRatio.Value, 1e-9)
	assert.Equal(t, StatusWarning, got.EquityRatio.Status)

	assert.InDelta(t, 220.0, got.DebtRatio.Value, 1e-9)
	assert.Equal(t, StatusDanger, got.DebtRatio.Status)

	assert.InDelta(t, 1.25, got.TotalAssetTurnover.Value, 1e-9)
	assert.Equal(t, StatusSuccess, got.TotalAssetTurnover.Status)

	assert.InDelta(t, 6.25, got.ROA.Value, 1e-9)
	assert.Equal(t, StatusSuccess, got.ROA.Status)
	assert.InDelta(t, 20.0, got.ROE.Value, 1e-9)
	assert.Equal(t, StatusSuccess, got.ROE.Status)
}

func TestSimpleRatiosZeroStatement(t *testing.T) {
	t.Parallel()

	got := SimpleRatios(statement.Snapshot{})

	assert.Zero(t, got.OperatingProfitMargin.Value)
	assert.Zero(t, got.CurrentRatio.Value)
	assert.Zero(t, got.ROE.Value)
}
