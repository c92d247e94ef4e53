package bspline

import (
	"github.com/tphakala/go-bspline/internal/basis"
	"gonum.org/v1/gonum/floats"
)

// Linspace returns n evenly spaced values from start to end inclusive.
// It returns nil for n <= 0 and {start} for n == 1.
func Linspace(start, end float64, n int) []float64 {
	switch {
	case n <= 0:
		return nil
	case n < minLinspace:
		return []float64{start}
	default:
		s := floats.Span(make([]float64, n), start, end)
		s[n-1] = end
		return s
	}
}

// BasisSamples evaluates every basis function of degree p over knots at
// count evenly spaced parameters in [knots[0], knots[last]].
//
// The result is indexed [function][sample]; the second return value holds the
// sample parameters. It returns nil slices when the knot vector holds no
// basis function of degree p.
func BasisSamples(p int, knots []float64, count int) (values [][]float64, samples []float64) {
	if p < 0 || len(knots) < p+2 || count <= 0 {
		return nil, nil
	}

	samples = Linspace(knots[0], knots[len(knots)-1], count)

	tb := basis.NewTable(p, knots)
	values = make([][]float64, tb.Functions())
	for i := range values {
		values[i] = make([]float64, len(samples))
	}

	row := make([]float64, tb.Functions())
	for s, t := range samples {
		row = tb.Row(t, row)
		for i, v := range row {
			values[i][s] = v
		}
	}

	return values, samples
}

// InterpolateWithRule is like Interpolate with an explicit knot averaging rule.
func InterpolateWithRule(points Points2D, degree int, rule AveragingRule) (*Curve, error) {
	return interpolate(points, degree, rule)
}

// InterpolateAndSample interpolates points with the given degree and
// evaluates the result at count evenly spaced parameters.
func InterpolateAndSample(points Points2D, degree, count int) (*Curve, Points2D, error) {
	ip, err := New(&Config{Degree: degree})
	if err != nil {
		return nil, Points2D{}, err
	}
	return ip.Sample(points, count)
}
