// Package testutil provides reusable test helper functions for spline tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tphakala/go-bspline/internal/simdops"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance   = 1e-12
	RoundTripTolerance = 1e-9
	ReferenceTolerance = 1e-5
)

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertAllInRange verifies that all elements are within [min, max].
func AssertAllInRange(t *testing.T, s []float64, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if v < minVal || v > maxVal {
			return assert.Fail(t, "value out of range",
				"s[%d]=%f is outside range [%f, %f]", i, v, minVal, maxVal)
		}
	}
	return true
}

// AssertMonotonic verifies that a slice is monotonically non-decreasing.
func AssertMonotonic(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return assert.Fail(t, "not monotonic",
				"s[%d]=%f < s[%d]=%f", i, s[i], i-1, s[i-1])
		}
	}
	return true
}

// AssertRelativeError verifies that the relative error between actual and expected is within tolerance.
func AssertRelativeError(t *testing.T, expected, actual, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if expected == 0 {
		return assert.InDelta(t, expected, actual, tolerance, msgAndArgs...)
	}
	relError := math.Abs(actual-expected) / math.Abs(expected)
	return assert.LessOrEqual(t, relError, tolerance,
		"relative error %e exceeds tolerance %e (expected=%f, actual=%f)",
		relError, tolerance, expected, actual)
}

// AssertSlicesInDelta verifies that two slices have equal length and that
// every pair of elements differs by at most delta.
func AssertSlicesInDelta(t *testing.T, expected, actual []float64, delta float64, msgAndArgs ...any) bool {
	t.Helper()
	if !assert.Len(t, actual, len(expected), msgAndArgs...) {
		return false
	}
	for i := range expected {
		if !assert.InDelta(t, expected[i], actual[i], delta,
			"element %d: expected %g, got %g", i, expected[i], actual[i]) {
			return false
		}
	}
	return true
}

// AssertClamped verifies that the first and last (degree+1) knots equal
// lo and hi respectively.
func AssertClamped(t *testing.T, knots []float64, degree int, lo, hi float64) bool {
	t.Helper()
	if !assert.GreaterOrEqual(t, len(knots), 2*(degree+1), "knot vector too short") {
		return false
	}
	for i := 0; i <= degree; i++ {
		if !assert.Equal(t, lo, knots[i], "knot %d should be %g", i, lo) {
			return false
		}
		j := len(knots) - 1 - i
		if !assert.Equal(t, hi, knots[j], "knot %d should be %g", j, hi) {
			return false
		}
	}
	return true
}

// AssertPartitionOfUnity verifies that a row of basis function values sums to one.
func AssertPartitionOfUnity(t *testing.T, row []float64, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	return assert.InDelta(t, 1.0, simdops.Float64Ops().Sum(row), tolerance, msgAndArgs...)
}

// AssertInRange verifies that a value is within [min, max].
func AssertInRange(t *testing.T, value, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	if value < minVal || value > maxVal {
		return assert.Fail(t, "value out of range",
			"value %f is outside range [%f, %f]", value, minVal, maxVal)
	}
	return true
}
