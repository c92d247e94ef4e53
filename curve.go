package bspline

import (
	"fmt"

	"github.com/tphakala/go-bspline/internal/curve"
)

// Curve is an interpolating B-spline curve.
type Curve struct {
	// Degree is the polynomial degree.
	Degree int

	// Control holds the control points.
	Control Points2D

	// Knots is the clamped knot vector, Control.Len()+Degree+1 values in [0, 1].
	Knots []float64

	// Parameters holds the parameter at which the curve passes through each
	// interpolation point. Nil for curves not produced by interpolation.
	Parameters []float64
}

// Evaluate returns the curve points at each sample parameter.
func (c *Curve) Evaluate(samples []float64) (Points2D, error) {
	return EvaluateCurve(samples, c.Control, c.Knots)
}

// EvaluateDeBoor returns the curve points at each sample parameter using
// de Boor's algorithm.
func (c *Curve) EvaluateDeBoor(samples []float64) (Points2D, error) {
	return EvaluateCurveDeBoor(samples, c.Control, c.Knots)
}

// Sample evaluates the curve at count evenly spaced parameters over [0, 1].
// A count of zero or less picks ten samples per span between control points.
func (c *Curve) Sample(count int) (Points2D, error) {
	return c.Evaluate(Linspace(domainStart, domainEnd, c.sampleCount(count)))
}

// SampleParallel is like Sample but evaluates on up to workers goroutines.
func (c *Curve) SampleParallel(count, workers int) (Points2D, error) {
	if err := c.Control.Validate(); err != nil {
		return Points2D{}, err
	}

	s, err := curve.NewSampler(c.Control.X, c.Control.Y, c.Knots)
	if err != nil {
		return Points2D{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	x, y := s.EvaluateParallel(Linspace(domainStart, domainEnd, c.sampleCount(count)), workers)
	return Points2D{X: x, Y: y}, nil
}

func (c *Curve) sampleCount(count int) int {
	if count > 0 {
		return count
	}
	return max(minLinspace, (len(c.Control.X)-1)*samplesPerSegment)
}
