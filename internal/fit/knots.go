package fit

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// AveragingRule selects how interior knots are placed from parameter positions.
type AveragingRule int

const (
	// AveragingMoving places knot p+1+i at the mean of the p consecutive
	// positions positions[i+1 .. i+p]. This is the standard averaging
	// technique.
	AveragingMoving AveragingRule = iota

	// AveragingReference reproduces the legacy spline kernel: degree 1 and 2
	// use the moving average, higher degrees sum a fixed three-position window
	// and divide by the degree. It agrees with AveragingMoving for degrees up
	// to 3.
	AveragingReference
)

// String returns the rule name.
func (r AveragingRule) String() string {
	switch r {
	case AveragingMoving:
		return "moving"
	case AveragingReference:
		return "reference"
	default:
		return fmt.Sprintf("AveragingRule(%d)", int(r))
	}
}

// Valid reports whether r is a known rule.
func (r AveragingRule) Valid() bool {
	return r == AveragingMoving || r == AveragingReference
}

// KnotVectorUsingAveraging builds an open (clamped) knot vector of length
// len(positions)+degree+1 for the given parameter positions.
//
// The first and last degree+1 knots are 0 and 1. It fails with
// ErrInvalidInput when the degree is below one or too high for the number of
// positions.
func KnotVectorUsingAveraging(positions []float64, degree int, rule AveragingRule) ([]float64, error) {
	if degree < minDegree {
		return nil, fmt.Errorf("%w: degree must be at least %d, got %d", ErrInvalidInput, minDegree, degree)
	}
	if !rule.Valid() {
		return nil, fmt.Errorf("%w: unknown averaging rule %v", ErrInvalidInput, rule)
	}

	n := len(positions)
	size := n + degree + 1
	inner := size - 2*(degree+1)
	if inner < 0 {
		return nil, fmt.Errorf("%w: degree %d too high for %d points", ErrInvalidInput, degree, n)
	}

	knots := make([]float64, size)
	for i := 0; i <= degree; i++ {
		knots[i] = domainStart
		knots[size-1-i] = domainEnd
	}

	p := float64(degree)
	for i := range inner {
		var sum float64
		if rule == AveragingReference && degree > referenceWindow-1 {
			sum = positions[degree+i-2] + (positions[degree+i] + positions[degree-1+i])
		} else {
			sum = floats.Sum(positions[i+1 : i+degree+1])
		}
		knots[degree+1+i] = sum / p
	}

	return knots, nil
}
