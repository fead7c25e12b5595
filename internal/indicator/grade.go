// Package indicator computes the four families of performance indicators
// (growth, profitability, financial strength, productivity) and the shared
// year-over-year grading used across every report surface.
package indicator

// Grade is the visual score assigned to a year-over-year change.
type Grade string

// Grade symbols, best to worst.
const (
	GradeExcellent Grade = "◎"
	GradeGood      Grade = "◯"
	GradeCaution   Grade = "△"
	GradePoor      Grade = "×"
)

// Thresholds parameterize the grading law: a YoY ratio at or above Excellent
// grades ◎, at or above zero ◯, at or above Caution △, below that ×.
type Thresholds struct {
	Excellent float64
	Caution   float64
}

// DefaultThresholds is the grading table every report shares.
var DefaultThresholds = Thresholds{Excellent: 10.0, Caution: -10.0}

// Comparison is one indicator's year-over-year evaluation.
type Comparison struct {
	ThisYear float64 `json:"this_year"`
	PrevYear float64 `json:"prev_year"`
	Ratio    float64 `json:"ratio"`
	Grade    Grade   `json:"grade"`
}

// EvaluateYoY grades a value against its prior-year counterpart using the
// default thresholds. When the prior year is zero the ratio is pinned to
// ±100 (or 0 for no change) rather than divided.
func EvaluateYoY(thisYear, prevYear float64) Comparison {
	return EvaluateYoYWith(thisYear, prevYear, DefaultThresholds)
}

// EvaluateYoYWith grades with an explicit threshold table.
func EvaluateYoYWith(thisYear, prevYear float64, th Thresholds) Comparison {
	c := Comparison{ThisYear: thisYear, PrevYear: prevYear}

	if prevYear == 0 {
		switch {
		case thisYear > 0:
			c.Ratio, c.Grade = 100.0, GradeExcellent
		case thisYear == 0:
			c.Ratio, c.Grade = 0.0, GradeGood
		default:
			c.Ratio, c.Grade = -100.0, GradePoor
		}
		return c
	}

	c.Ratio = (thisYear - prevYear) / prevYear * 100.0
	switch {
	case c.Ratio >= th.Excellent:
		c.Grade = GradeExcellent
	case c.Ratio >= 0:
		c.Grade = GradeGood
	case c.Ratio >= th.Caution:
		c.Grade = GradeCaution
	default:
		c.Grade = GradePoor
	}
	return c
}

// CompareSets evaluates every indicator present in either year. Indicators
// missing from one side are treated as zero.
func CompareSets(thisYear, prevYear map[string]float64) map[string]Comparison {
	out := make(map[string]Comparison, len(thisYear))
	for name, v := range thisYear {
		out[name] = EvaluateYoY(v, prevYear[name])
	}
	for name, v := range prevYear {
		if _, ok := out[name]; !ok {
			out[name] = EvaluateYoY(0, v)
		}
	}
	return out
}
