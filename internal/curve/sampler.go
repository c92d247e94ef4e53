// Package curve evaluates 2D B-spline curves at parameter samples.
//
// The dense Sampler sums every control point weighted by its basis function,
// the direct definition of the curve. EvaluateDeBoor provides the local
// de Boor scheme for comparison and for long control polygons.
package curve

import (
	"fmt"

	"github.com/tphakala/go-bspline/internal/basis"
	"github.com/tphakala/go-bspline/internal/simdops"
)

// Sampler evaluates a B-spline curve with control coordinates of type F.
//
// The degree is implied by the sizes: p = len(knots) - len(control) - 1.
// A Sampler is immutable and safe for concurrent use.
type Sampler[F simdops.Float] struct {
	controlX []F
	controlY []F
	knots    []float64
	degree   int
	ops      *simdops.Ops[F]
}

// NewSampler creates a sampler for the given control points and knot vector.
// Slices are retained, not copied.
func NewSampler[F simdops.Float](controlX, controlY []F, knots []float64) (*Sampler[F], error) {
	if len(controlX) != len(controlY) {
		return nil, fmt.Errorf("control point coordinates differ in length: %d x, %d y", len(controlX), len(controlY))
	}
	if len(controlX) == 0 {
		return nil, fmt.Errorf("no control points")
	}

	degree := len(knots) - len(controlX) - 1
	if degree < 0 {
		return nil, fmt.Errorf("knot vector of length %d too short for %d control points", len(knots), len(controlX))
	}

	return &Sampler[F]{
		controlX: controlX,
		controlY: controlY,
		knots:    knots,
		degree:   degree,
		ops:      simdops.For[F](),
	}, nil
}

// Degree returns the derived polynomial degree.
func (s *Sampler[F]) Degree() int {
	return s.degree
}

// Evaluate returns the curve coordinates at each sample parameter.
func (s *Sampler[F]) Evaluate(samples []float64) (x, y []F) {
	x = make([]F, len(samples))
	y = make([]F, len(samples))
	s.evaluateInto(samples, x, y)
	return x, y
}

// evaluateInto fills x and y for the given samples using one basis table.
func (s *Sampler[F]) evaluateInto(samples []float64, x, y []F) {
	tb := basis.NewTable(s.degree, s.knots)
	row := make([]float64, tb.Functions())
	weights := make([]F, len(row))

	for i, t := range samples {
		row = tb.Row(t, row)
		for j, v := range row {
			weights[j] = F(v)
		}
		x[i] = s.ops.DotProductUnsafe(weights, s.controlX)
		y[i] = s.ops.DotProductUnsafe(weights, s.controlY)
	}
}

// Evaluate computes the curve at each sample with float64 control points.
// It is the plain-function form of NewSampler followed by Sampler.Evaluate.
func Evaluate(samples, controlX, controlY, knots []float64) (x, y []float64, err error) {
	s, err := NewSampler(controlX, controlY, knots)
	if err != nil {
		return nil, nil, err
	}
	x, y = s.Evaluate(samples)
	return x, y, nil
}
