package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDepreciateStraightLine(t *testing.T) {
	t.Parallel()

	got := Depreciate(10_000_000, 1_000_000, 5, StraightLine)

	require.Len(t, got, 5)
	for _, e := range got {
		assert.InDelta(t, 1_800_000, e.Depreciation, 1e-6)
	}
	assert.InDelta(t, 9_000_000, got[4].Accumulated, 1e-6)
	assert.InDelta(t, 1_000_000, got[4].BookValue, 1e-6)
}

func TestDepreciateDecliningBalance(t *testing.T) {
	t.Parallel()

	got := Depreciate(10_000_000, 1_000_000, 5, DecliningBalance)

	require.Len(t, got, 5)
	// rate 2/5 on the opening book value
	assert.InDelta(t, 4_000_000, got[0].Depreciation, 1e-6)
	assert.InDelta(t, 2_400_000, got[1].Depreciation, 1e-6)
	// final year writes down to the salvage value exactly
	assert.InDelta(t, 1_000_000, got[4].BookValue, 1e-6)
	assert.InDelta(t, 9_000_000, got[4].Accumulated, 1e-6)

	// yearly charge never increases
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i].Depreciation, got[i-1].Depreciation)
	}
}

func TestDepreciateZeroLife(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Depreciate(10_000_000, 0, 0, StraightLine))
}
