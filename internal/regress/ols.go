// Package regress fits the linear cost structure of a business from
// historical observations and derives forecasts, break-even figures and
// trend diagnostics from the fitted line.
package regress

import (
	"github.com/rotisserie/eris"
)

// Model is a fitted least-squares line y = Slope*x + Intercept.
type Model struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
	R2        float64 `json:"r_squared"`
	N         int     `json:"n"`
}

// Fit computes the ordinary least-squares line through (xs[i], ys[i]).
// When every x is identical the slope is 0 and the line is the mean of ys.
func Fit(xs, ys []float64) (Model, error) {
	if len(xs) != len(ys) {
		return Model{}, eris.Errorf("regress: length mismatch, %d x values and %d y values", len(xs), len(ys))
	}
	if len(xs) < 2 {
		return Model{}, eris.Errorf("regress: need at least 2 points, got %d", len(xs))
	}

	n := float64(len(xs))
	var xMean, yMean float64
	for i := range xs {
		xMean += xs[i]
		yMean += ys[i]
	}
	xMean /= n
	yMean /= n

	var num, den float64
	for i := range xs {
		num += (xs[i] - xMean) * (ys[i] - yMean)
		den += (xs[i] - xMean) * (xs[i] - xMean)
	}

	m := Model{N: len(xs)}
	if den != 0 {
		m.Slope = num / den
	}
	m.Intercept = yMean - m.Slope*xMean
	m.R2 = rSquared(xs, ys, m)
	return m, nil
}

// Predict evaluates the fitted line at x.
func (m Model) Predict(x float64) float64 {
	return m.Slope*x + m.Intercept
}

// rSquared is 1 - SSE/SST clamped to [0,1]. A constant series (SST 0) is a
// perfect fit.
func rSquared(xs, ys []float64, m Model) float64 {
	var yMean float64
	for _, y := range ys {
		yMean += y
	}
	yMean /= float64(len(ys))

	var sst, sse float64
	for i := range ys {
		d := ys[i] - yMean
		sst += d * d
		e := ys[i] - m.Predict(xs[i])
		sse += e * e
	}
	if sst == 0 {
		return 1.0
	}
	r2 := 1 - sse/sst
	if r2 < 0 {
		return 0
	}
	if r2 > 1 {
		return 1
	}
	return r2
}

// Point pairs a position on the fitted line with its value.
type Point struct {
	Index     int     `json:"index"`
	Predicted float64 `json:"predicted"`
}

// Forecast extends the fitted line for years positions past lastIndex.
// Predictions are floored at zero.
func (m Model) Forecast(lastIndex, years int) []Point {
	out := make([]Point, 0, years)
	for i := 1; i <= years; i++ {
		idx := lastIndex + i
		p := m.Predict(float64(idx))
		if p < 0 {
			p = 0
		}
		out = append(out, Point{Index: idx, Predicted: p})
	}
	return out
}

// BreakEvenSales returns intercept/(1-slope), the sales level at which the
// fitted total cost equals sales. It is undefined when the slope is 1 or
// more: variable cost alone consumes all revenue.
func (m Model) BreakEvenSales() (float64, bool) {
	if m.Slope >= 1 {
		return 0, false
	}
	return m.Intercept / (1 - m.Slope), true
}
