package regress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitPerfectLine(t *testing.T) {
	t.Parallel()

	xs := []float64{0, 1, 2, 3, 4}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = 0.6*x + 1000
	}

	m, err := Fit(xs, ys)
	require.NoError(t, err)

	assert.InDelta(t, 0.6, m.Slope, 1e-9)
	assert.InDelta(t, 1000, m.Intercept, 1e-9)
	assert.InDelta(t, 1.0, m.R2, 1e-9)
	assert.Equal(t, 5, m.N)
}

func TestFitErrors(t *testing.T) {
	t.Parallel()

	_, err := Fit([]float64{1, 2}, []float64{1})
	assert.Error(t, err)

	_, err = Fit([]float64{1}, []float64{1})
	assert.Error(t, err)
}

func TestFitConstantXHasZeroSlope(t *testing.T) {
	t.Parallel()

	m, err := Fit([]float64{2, 2, 2}, []float64{10, 20, 30})
	require.NoError(t, err)

	assert.Zero(t, m.Slope)
	assert.InDelta(t, 20, m.Intercept, 1e-9)
}

func TestFitConstantYIsPerfect(t *testing.T) {
	t.Parallel()

	m, err := Fit([]float64{0, 1, 2}, []float64{50, 50, 50})
	require.NoError(t, err)

	assert.Zero(t, m.Slope)
	assert.InDelta(t, 50, m.Intercept, 1e-9)
	assert.InDelta(t, 1.0, m.R2, 1e-9)
}

func TestForecastFloorsAtZero(t *testing.T) {
	t.Parallel()

	m := Model{Slope: -100, Intercept: 150}

	got := m.Forecast(1, 3)

	require.Len(t, got, 3)
	assert.Equal(t, 2, got[0].Index)
	assert.Zero(t, got[0].Predicted)
	assert.Zero(t, got[2].Predicted)
}

func TestBreakEvenSales(t *testing.T) {
	t.Parallel()

	m := Model{Slope: 0.6, Intercept: 1000}
	bes, ok := m.BreakEvenSales()
	require.True(t, ok)
	assert.InDelta(t, 2500, bes, 1e-9)

	_, ok = Model{Slope: 1.0, Intercept: 1000}.BreakEvenSales()
	assert.False(t, ok)
}

func TestStrengthLabels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		r2   float64
		want TrendStrength
	}{
		{0.95, TrendVeryStrong},
		{0.9, TrendVeryStrong},
		{0.75, TrendStrong},
		{0.5, TrendModerate},
		{0.3, TrendWeak},
		{0.1, TrendVeryWeak},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Strength(tt.r2))
	}
}

func TestAverageGrowthRate(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 10.0, AverageGrowthRate([]float64{100, 110, 121}), 1e-9)
	// non-positive base years are skipped
	assert.InDelta(t, 10.0, AverageGrowthRate([]float64{0, 100, 110}), 1e-9)
	assert.Zero(t, AverageGrowthRate([]float64{100}))
	assert.Zero(t, AverageGrowthRate([]float64{0, 0, 0}))
}

func TestAnalyzeBreakEven(t *testing.T) {
	t.Parallel()

	b := AnalyzeBreakEven(100_000_000, 60_000_000, 30_000_000)

	assert.InDelta(t, 40_000_000, b.ContributionMargin, 1e-6)
	assert.InDelta(t, 40.0, b.ContributionMarginRatio, 1e-9)
	assert.InDelta(t, 60.0, b.VariableCostRatio, 1e-9)
	assert.InDelta(t, 75_000_000, b.BreakEvenSales, 1e-6)
	assert.InDelta(t, 75.0, b.BreakEvenRatio, 1e-9)
	assert.InDelta(t, 25.0, b.SafetyMarginRatio, 1e-9)
	assert.InDelta(t, 10_000_000, b.OperatingIncome, 1e-6)
}

func TestAnalyzeBreakEvenZeroSales(t *testing.T) {
	t.Parallel()

	assert.Equal(t, BreakEven{}, AnalyzeBreakEven(0, 10, 10))
}

func TestAnalyzeCVPTargetSales(t *testing.T) {
	t.Parallel()

	b := AnalyzeCVP(100_000_000, 60_000_000, 30_000_000, 10_000_000)

	assert.InDelta(t, 100_000_000, b.TargetSales, 1e-6)
}

func TestEstimateCostStructure(t *testing.T) {
	t.Parallel()

	c := EstimateCostStructure(60_000_000, 30_000_000)

	assert.InDelta(t, 69_000_000, c.VariableCosts, 1e-6)
	assert.InDelta(t, 21_000_000, c.FixedCosts, 1e-6)
	assert.InDelta(t, 90_000_000, c.TotalCosts, 1e-6)
}
