// Package basis evaluates B-spline basis functions using the Cox–de Boor
// recursion.
//
// Degenerate spans produced by repeated knots follow the 0/0 := 0 convention:
// a term whose denominator is within Tolerance of zero is dropped instead of
// divided.
package basis

import "math"

// Evaluate returns N_{i,p}(t), the i-th basis function of degree p over the
// given knot vector.
//
// The degree-0 functions are half-open on [knots[i], knots[i+1]), except that
// the last non-empty interval also contains the final knot, so that a curve is
// defined at its end parameter.
//
// Indices outside the range implied by len(knots) panic.
func Evaluate(t float64, i, p int, knots []float64) float64 {
	if p == 0 {
		return step(t, i, knots)
	}

	var result float64

	if den := knots[i+p] - knots[i]; math.Abs(den) > Tolerance {
		result += (t - knots[i]) / den * Evaluate(t, i, p-1, knots)
	}

	if den := knots[i+p+1] - knots[i+1]; math.Abs(den) > Tolerance {
		result += (knots[i+p+1] - t) / den * Evaluate(t, i+1, p-1, knots)
	}

	return result
}

// step evaluates the degree-0 basis function N_{i,0}(t).
func step(t float64, i int, knots []float64) float64 {
	if t >= knots[i] && t < knots[i+1] {
		return 1
	}

	last := knots[len(knots)-1]
	if math.Abs(t-knots[i+1]) < Tolerance && math.Abs(t-last) < Tolerance {
		return 1
	}

	return 0
}
