package curve

import (
	"fmt"
	"math"
)

// FindSpan returns the index k of the knot span [knots[k], knots[k+1]) that
// contains t, restricted to k in [p, n-1] where n is the number of control
// points. Parameters at or beyond knots[n] map to the last span, so the end
// of a clamped curve is reachable.
func FindSpan(t float64, p, n int, knots []float64) int {
	if t >= knots[n] {
		return n - 1
	}
	if t <= knots[p] {
		return p
	}

	low, high := p, n
	mid := (low + high) / 2
	for t < knots[mid] || t >= knots[mid+1] {
		if t < knots[mid] {
			high = mid
		} else {
			low = mid
		}
		mid = (low + high) / 2
	}
	return mid
}

// EvaluateDeBoor evaluates the curve at each sample with de Boor's algorithm,
// touching only the p+1 control points whose basis functions are non-zero.
//
// For clamped knot vectors it agrees with the dense evaluation on
// [knots[p], knots[n]]. Samples outside [knots[0], knots[last]] evaluate to
// the origin, matching the dense evaluation where every basis function is zero.
func EvaluateDeBoor(samples, controlX, controlY, knots []float64) (x, y []float64, err error) {
	if len(controlX) != len(controlY) {
		return nil, nil, fmt.Errorf("control point coordinates differ in length: %d x, %d y", len(controlX), len(controlY))
	}

	n := len(controlX)
	p := len(knots) - n - 1
	if n == 0 || p < 0 {
		return nil, nil, fmt.Errorf("knot vector of length %d does not fit %d control points", len(knots), n)
	}

	x = make([]float64, len(samples))
	y = make([]float64, len(samples))
	dx := make([]float64, p+1)
	dy := make([]float64, p+1)

	lo, hi := knots[0], knots[len(knots)-1]
	for s, t := range samples {
		if t < lo || t > hi {
			continue
		}

		k := FindSpan(t, p, n, knots)
		for j := 0; j <= p; j++ {
			dx[j] = controlX[j+k-p]
			dy[j] = controlY[j+k-p]
		}

		for r := 1; r <= p; r++ {
			for j := p; j >= r; j-- {
				left := knots[j+k-p]
				den := knots[j+1+k-r] - left

				var alpha float64
				if math.Abs(den) > spanTolerance {
					alpha = (t - left) / den
				}

				dx[j] = (1-alpha)*dx[j-1] + alpha*dx[j]
				dy[j] = (1-alpha)*dy[j-1] + alpha*dy[j]
			}
		}

		x[s] = dx[p]
		y[s] = dy[p]
	}

	return x, y, nil
}
