package curve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-bspline/internal/testutil"
)

// Cubic curve with six control points and two interior knots.
var (
	cubicX     = []float64{0, 7.35, -1.22, -5.16, -4.36, -3}
	cubicY     = []float64{0, 2.85, 8.31, 0.98, -4.04, -3}
	cubicKnots = []float64{0, 0, 0, 0, 0.3, 0.7, 1, 1, 1, 1}
)

func linspace(n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = float64(i) / float64(n-1)
	}
	return s
}

// =============================================================================
// Dense evaluation
// =============================================================================

// TestEvaluate_Endpoints verifies that a clamped curve starts and ends at its
// first and last control points.
func TestEvaluate_Endpoints(t *testing.T) {
	x, y, err := Evaluate([]float64{0, 1}, cubicX, cubicY, cubicKnots)
	require.NoError(t, err)

	assert.InDelta(t, cubicX[0], x[0], testutil.DefaultTolerance)
	assert.InDelta(t, cubicY[0], y[0], testutil.DefaultTolerance)
	assert.InDelta(t, cubicX[5], x[1], testutil.DefaultTolerance)
	assert.InDelta(t, cubicY[5], y[1], testutil.DefaultTolerance)
}

// TestEvaluate_Linear verifies that a degree 1 curve is the control polygon.
func TestEvaluate_Linear(t *testing.T) {
	cx := []float64{0, 10, 10}
	cy := []float64{0, 0, 10}
	knots := []float64{0, 0, 0.5, 1, 1}

	x, y, err := Evaluate([]float64{0, 0.25, 0.5, 0.75, 1}, cx, cy, knots)
	require.NoError(t, err)

	testutil.AssertSlicesInDelta(t, []float64{0, 5, 10, 10, 10}, x, 1e-12)
	testutil.AssertSlicesInDelta(t, []float64{0, 0, 0, 5, 10}, y, 1e-12)
}

// TestEvaluate_ConstantControlPoints verifies the partition of unity through
// the sampler: equal control points give a constant curve.
func TestEvaluate_ConstantControlPoints(t *testing.T) {
	cx := []float64{2, 2, 2, 2, 2, 2}
	cy := []float64{-1, -1, -1, -1, -1, -1}

	x, y, err := Evaluate(linspace(101), cx, cy, cubicKnots)
	require.NoError(t, err)

	for i := range x {
		assert.InDelta(t, 2.0, x[i], 1e-12)
		assert.InDelta(t, -1.0, y[i], 1e-12)
	}
}

// TestEvaluate_OutsideDomain verifies that samples outside the knot range are zero.
func TestEvaluate_OutsideDomain(t *testing.T) {
	x, y, err := Evaluate([]float64{-0.5, 1.5}, cubicX, cubicY, cubicKnots)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0}, x)
	assert.Equal(t, []float64{0, 0}, y)
}

// TestEvaluate_EmptySamples verifies that no samples produce empty output.
func TestEvaluate_EmptySamples(t *testing.T) {
	x, y, err := Evaluate(nil, cubicX, cubicY, cubicKnots)
	require.NoError(t, err)
	assert.Empty(t, x)
	assert.Empty(t, y)
}

// TestNewSampler_Invalid verifies construction errors.
func TestNewSampler_Invalid(t *testing.T) {
	_, err := NewSampler([]float64{0, 1}, []float64{0}, []float64{0, 0, 1, 1})
	assert.Error(t, err)

	_, err = NewSampler([]float64{}, []float64{}, []float64{0, 1})
	assert.Error(t, err)

	_, err = NewSampler(cubicX, cubicY, []float64{0, 0, 1, 1})
	assert.Error(t, err, "negative derived degree")
}

// TestSampler_Degree verifies the derived degree.
func TestSampler_Degree(t *testing.T) {
	s, err := NewSampler(cubicX, cubicY, cubicKnots)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Degree())
}

// TestSampler_Float32 verifies the float32 path against float64.
func TestSampler_Float32(t *testing.T) {
	cx32 := make([]float32, len(cubicX))
	cy32 := make([]float32, len(cubicY))
	for i := range cubicX {
		cx32[i] = float32(cubicX[i])
		cy32[i] = float32(cubicY[i])
	}

	s32, err := NewSampler(cx32, cy32, cubicKnots)
	require.NoError(t, err)

	samples := linspace(33)
	x32, y32 := s32.Evaluate(samples)
	x64, y64, err := Evaluate(samples, cubicX, cubicY, cubicKnots)
	require.NoError(t, err)

	for i := range samples {
		assert.InDelta(t, x64[i], float64(x32[i]), 1e-5)
		assert.InDelta(t, y64[i], float64(y32[i]), 1e-5)
	}
}

// =============================================================================
// Parallel evaluation
// =============================================================================

// TestSampler_EvaluateParallel verifies that parallel output equals sequential output.
func TestSampler_EvaluateParallel(t *testing.T) {
	s, err := NewSampler(cubicX, cubicY, cubicKnots)
	require.NoError(t, err)

	for _, n := range []int{0, 1, 63, 64, 1000, 4097} {
		samples := make([]float64, n)
		for i := range samples {
			samples[i] = float64(i) / float64(max(n-1, 1))
		}

		wantX, wantY := s.Evaluate(samples)
		for _, workers := range []int{0, 1, 3, 8} {
			gotX, gotY := s.EvaluateParallel(samples, workers)
			assert.Equal(t, wantX, gotX, "n=%d workers=%d", n, workers)
			assert.Equal(t, wantY, gotY, "n=%d workers=%d", n, workers)
		}
	}
}

// TestChunkCount verifies work splitting bounds.
func TestChunkCount(t *testing.T) {
	assert.Equal(t, 1, chunkCount(0, 8))
	assert.Equal(t, 1, chunkCount(10, 8))
	assert.Equal(t, 1, chunkCount(1000, 0))
	assert.Equal(t, 2, chunkCount(128, 8))
	assert.Equal(t, 8, chunkCount(10000, 8))
}
