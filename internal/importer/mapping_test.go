package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/midori-advisory/finplan-cli/internal/statement"
)

func TestParseAmount(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		cell string
		want float64
		ok   bool
	}{
		{"plain", "1200", 1200, true},
		{"thousands separator", "1,200,500", 1200500, true},
		{"yen mark", "¥3,000", 3000, true},
		{"yen suffix", "3000円", 3000, true},
		{"decimal", "12.5", 12.5, true},
		{"parenthesized negative", "(450)", -450, true},
		{"triangle negative", "△1,200", -1200, true},
		{"filled triangle negative", "▲300", -300, true},
		{"minus sign", "-75", -75, true},
		{"blank", "", 0, false},
		{"whitespace only", "  ", 0, false},
		{"text", "n/a", 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, ok := parseAmount(tc.cell)
			assert.Equal(t, tc.ok, ok)
			assert.InDelta(t, tc.want, got, 1e-9)
		})
	}
}

func TestNormalizeLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "売上高", normalizeLabel("  売上高 "))
	assert.Equal(t, "土地時価", normalizeLabel("土地（時価）"))
	assert.Equal(t, "sales", normalizeLabel("Sales"))
	assert.Equal(t, "売上原価", normalizeLabel("売上　原価"))
}

func TestFieldSettersCoverAliases(t *testing.T) {
	t.Parallel()

	aliases := map[string]func(statement.Snapshot) float64{
		"売上高":          func(s statement.Snapshot) float64 { return s.Sales },
		"sales":        func(s statement.Snapshot) float64 { return s.Sales },
		"販管費":          func(s statement.Snapshot) float64 { return s.OperatingExpenses },
		"資産合計":         func(s statement.Snapshot) float64 { return s.TotalAssets },
		"total_assets": func(s statement.Snapshot) float64 { return s.TotalAssets },
		"純資産合計":        func(s statement.Snapshot) float64 { return s.NetAssets },
		"土地時価":         func(s statement.Snapshot) float64 { return s.LandMarketValue },
	}
	for label, get := range aliases {
		set, ok := fieldSetters[normalizeLabel(label)]
		require.True(t, ok, "no setter for %q", label)

		var s statement.Snapshot
		set(&s, 123)
		assert.InDelta(t, 123, get(s), 1e-9, "label %q", label)
	}
}
