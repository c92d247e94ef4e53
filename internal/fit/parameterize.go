package fit

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// CentripetalParameterPositions assigns a parameter in [0, 1] to each
// interpolation point using the square roots of the chord lengths between
// consecutive points.
//
// The first and last positions are exactly 0 and 1. A point set whose total
// centripetal length is zero (all points coincide) is rejected.
func CentripetalParameterPositions(x, y []float64) ([]float64, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: %d x-coordinates but %d y-coordinates", ErrInvalidInput, len(x), len(y))
	}

	n := len(x)
	if n < minPoints {
		return nil, fmt.Errorf("%w: need at least %d points, got %d", ErrInvalidInput, minPoints, n)
	}

	rootChords := make([]float64, n-1)
	for i := range rootChords {
		rootChords[i] = math.Sqrt(math.Hypot(x[i+1]-x[i], y[i+1]-y[i]))
	}

	// The total is the last prefix sum, so no prefix can round above it.
	prefix := floats.CumSum(make([]float64, n-1), rootChords)
	total := prefix[n-2]
	if total == 0 || math.IsNaN(total) || math.IsInf(total, 0) {
		return nil, fmt.Errorf("%w: point set has no centripetal length (%g)", ErrInvalidInput, total)
	}

	positions := make([]float64, n)
	positions[0] = domainStart
	positions[n-1] = domainEnd
	for i := 1; i < n-1; i++ {
		positions[i] = min(prefix[i-1]/total, domainEnd)
	}

	return positions, nil
}
