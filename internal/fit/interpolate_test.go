package fit

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-bspline/internal/basis"
	"github.com/tphakala/go-bspline/internal/testutil"
)

// evaluateAt sums the control points weighted by the basis functions at t.
func evaluateAt(res *Result, t float64) (x, y float64) {
	for j := range res.ControlX {
		n := basis.Evaluate(t, j, res.Degree, res.Knots)
		x += n * res.ControlX[j]
		y += n * res.ControlY[j]
	}
	return x, y
}

// =============================================================================
// Reference scenarios
// =============================================================================

// TestInterpolate_LinearIsIdentity verifies that degree 1 returns the input points.
func TestInterpolate_LinearIsIdentity(t *testing.T) {
	res, err := Interpolate(refX, refY, 1, AveragingMoving)
	require.NoError(t, err)

	assert.Equal(t, refX, res.ControlX)
	assert.Equal(t, refY, res.ControlY)

	wantKnots := []float64{0, 0, 5 / refLength, 18 / refLength, 35 / refLength, 1, 1}
	diff(t, wantKnots, res.Knots, approxKnots)

	wantParams := []float64{0, 5 / refLength, 18 / refLength, 35 / refLength, 1}
	diff(t, wantParams, res.Parameters, approxKnots)
}

// TestInterpolate_LinearCopiesInput verifies the result does not alias the input.
func TestInterpolate_LinearCopiesInput(t *testing.T) {
	x := append([]float64(nil), refX...)
	y := append([]float64(nil), refY...)

	res, err := Interpolate(x, y, 1, AveragingMoving)
	require.NoError(t, err)

	res.ControlX[0] = 42
	res.ControlY[0] = 42
	assert.Equal(t, refX, x)
	assert.Equal(t, refY, y)
}

// TestInterpolate_ReferenceControlPoints checks control points against known
// values for the reference point set.
func TestInterpolate_ReferenceControlPoints(t *testing.T) {
	tests := []struct {
		degree    int
		wantX     []float64
		wantY     []float64
		wantKnots []float64
	}{
		{
			degree:    3,
			wantX:     []float64{0, -12.5687, 383.886, 236.859, 907},
			wantY:     []float64{0, 31.9598, 30.3872, 672.775, 515},
			wantKnots: []float64{0, 0, 0, 0, (3*5.0 + 2*13.0 + 17.0) / 3 / refLength, 1, 1, 1, 1},
		},
		{
			degree:    4,
			wantX:     []float64{0, -38.5422077922, 718.2705627706, -139.3798701299, 907},
			wantY:     []float64{0, 80.2976190476, -71.8650793651, 883.5119047619, 515},
			wantKnots: []float64{0, 0, 0, 0, 0, 1, 1, 1, 1, 1},
		},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("degree_%d", tt.degree), func(t *testing.T) {
			res, err := Interpolate(refX, refY, tt.degree, AveragingMoving)
			require.NoError(t, err)

			require.Len(t, res.ControlX, len(refX))
			require.Len(t, res.ControlY, len(refY))
			for i := range tt.wantX {
				testutil.AssertRelativeError(t, tt.wantX[i], res.ControlX[i], testutil.ReferenceTolerance, "x[%d]", i)
				testutil.AssertRelativeError(t, tt.wantY[i], res.ControlY[i], testutil.ReferenceTolerance, "y[%d]", i)
			}

			diff(t, tt.wantKnots, res.Knots, approxKnots)
		})
	}
}

// =============================================================================
// Properties
// =============================================================================

// TestInterpolate_RoundTrip verifies that the curve passes through every input
// point at its parameter for all admissible degrees and both averaging rules.
func TestInterpolate_RoundTrip(t *testing.T) {
	sets := []struct {
		name string
		x, y []float64
	}{
		{"reference", refX, refY},
		{"script", scriptX, scriptY},
	}

	for _, set := range sets {
		for degree := 1; degree < len(set.x); degree++ {
			for _, rule := range []AveragingRule{AveragingMoving, AveragingReference} {
				name := fmt.Sprintf("%s_degree_%d_%s", set.name, degree, rule)
				t.Run(name, func(t *testing.T) {
					res, err := Interpolate(set.x, set.y, degree, rule)
					require.NoError(t, err)

					testutil.AssertClamped(t, res.Knots, degree, 0, 1)
					testutil.AssertMonotonic(t, res.Knots)
					testutil.AssertNoNaNOrInf(t, res.ControlX)
					testutil.AssertNoNaNOrInf(t, res.ControlY)

					scale := 1.0
					for i := range set.x {
						scale = math.Max(scale, math.Max(math.Abs(set.x[i]), math.Abs(set.y[i])))
					}

					for i, p := range res.Parameters {
						x, y := evaluateAt(res, p)
						assert.InDelta(t, set.x[i], x, testutil.RoundTripTolerance*scale, "x at point %d", i)
						assert.InDelta(t, set.y[i], y, testutil.RoundTripTolerance*scale, "y at point %d", i)
					}
				})
			}
		}
	}
}

// TestInterpolate_EndpointsAreControlPoints verifies the clamped end condition.
func TestInterpolate_EndpointsAreControlPoints(t *testing.T) {
	res, err := Interpolate(scriptX, scriptY, 3, AveragingMoving)
	require.NoError(t, err)

	last := len(scriptX) - 1
	assert.InDelta(t, scriptX[0], res.ControlX[0], 1e-12)
	assert.InDelta(t, scriptY[0], res.ControlY[0], 1e-12)
	assert.InDelta(t, scriptX[last], res.ControlX[last], 1e-9)
	assert.InDelta(t, scriptY[last], res.ControlY[last], 1e-9)
}

// TestAssembleMatrix_RowsArePartitionsOfUnity verifies the assembled basis matrix.
func TestAssembleMatrix_RowsArePartitionsOfUnity(t *testing.T) {
	params, err := CentripetalParameterPositions(scriptX, scriptY)
	require.NoError(t, err)
	knots, err := KnotVectorUsingAveraging(params, 3, AveragingMoving)
	require.NoError(t, err)

	n := len(params)
	m := AssembleMatrix(params, 3, knots)
	require.Len(t, m, n*n)

	for row := range n {
		testutil.AssertPartitionOfUnity(t, m[row*n:(row+1)*n], 1e-12, "row %d", row)
		for col := range n {
			assert.Equal(t, basis.Evaluate(params[row], col, 3, knots), m[row*n+col])
		}
	}

	assert.Equal(t, 1.0, m[0], "first point sits on the first control point")
	assert.Equal(t, 1.0, m[n*n-1], "last point sits on the last control point")
}

// =============================================================================
// Failures
// =============================================================================

// TestInterpolate_InvalidInput verifies that bad input is rejected.
func TestInterpolate_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		x, y   []float64
		degree int
	}{
		{"length_mismatch", []float64{0, 1, 2, 3, 4, 5}, []float64{0, 1, 2, 3, 4}, 4},
		{"length_mismatch_linear", []float64{0, 1, 2}, []float64{0, 1}, 1},
		{"length_mismatch_bad_degree", []float64{0, 1, 2}, []float64{0, 1}, 0},
		{"degree_zero", []float64{0, 1, 2, 3, 4}, []float64{0, 1, 2, 3, 4}, 0},
		{"degree_too_high", refX, refY, 5},
		{"single_point", []float64{1}, []float64{1}, 1},
		{"coincident_points", []float64{2, 2, 2}, []float64{5, 5, 5}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Interpolate(tt.x, tt.y, tt.degree, AveragingMoving)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Nil(t, res)
		})
	}
}

// TestInterpolate_SingularSystem verifies that repeated parameters surface as
// a singular system.
func TestInterpolate_SingularSystem(t *testing.T) {
	x := []float64{0, 1, 1, 2}
	y := []float64{0, 1, 1, 0}

	res, err := Interpolate(x, y, 2, AveragingMoving)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSingularSystem)
	assert.NotErrorIs(t, err, ErrInvalidInput)
	assert.Nil(t, res)

	// Linear interpolation does not need a solve and accepts the same points.
	lin, err := Interpolate(x, y, 1, AveragingMoving)
	require.NoError(t, err)
	assert.Equal(t, x, lin.ControlX)
}
