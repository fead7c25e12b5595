package regress

// TrendStrength labels how well a fitted line explains the series.
type TrendStrength string

const (
	TrendVeryStrong TrendStrength = "very_strong"
	TrendStrong     TrendStrength = "strong"
	TrendModerate   TrendStrength = "moderate"
	TrendWeak       TrendStrength = "weak"
	TrendVeryWeak   TrendStrength = "very_weak"
)

// Strength labels the trend by its R².
func Strength(r2 float64) TrendStrength {
	switch {
	case r2 >= 0.9:
		return TrendVeryStrong
	case r2 >= 0.7:
		return TrendStrong
	case r2 >= 0.5:
		return TrendModerate
	case r2 >= 0.3:
		return TrendWeak
	default:
		return TrendVeryWeak
	}
}

// AverageGrowthRate is the mean of the year-over-year percentage changes in
// values. Steps starting from a non-positive value are skipped; fewer than
// two points, or no usable steps, yield 0.
func AverageGrowthRate(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	var sum float64
	var n int
	for i := 1; i < len(values); i++ {
		prev := values[i-1]
		if prev <= 0 {
			continue
		}
		sum += (values[i] - prev) / prev * 100
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
