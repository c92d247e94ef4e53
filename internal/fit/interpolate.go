// Package fit solves the global B-spline interpolation problem: given ordered
// 2D points and a degree, it finds control points and a knot vector whose
// curve passes through every point.
//
// The pipeline is centripetal parameterization, knot averaging, assembly of
// the basis matrix, and one dense LU solve per coordinate axis.
package fit

import (
	"errors"
	"fmt"

	"github.com/tphakala/go-bspline/internal/basis"
	"github.com/tphakala/go-bspline/internal/linalg"
)

// Result holds an interpolating curve.
type Result struct {
	Degree int

	// ControlX and ControlY are the control point coordinates.
	ControlX []float64
	ControlY []float64

	// Knots is the clamped knot vector, len(ControlX)+Degree+1 values.
	Knots []float64

	// Parameters holds the parameter at which the curve passes each input point.
	Parameters []float64
}

// Interpolate fits a B-spline curve of the given degree through the points
// (x[i], y[i]) using the selected knot averaging rule.
//
// Inputs are not modified. Errors wrap ErrInvalidInput or ErrSingularSystem.
func Interpolate(x, y []float64, degree int, rule AveragingRule) (*Result, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: %d x-coordinates but %d y-coordinates", ErrInvalidInput, len(x), len(y))
	}
	if degree < minDegree {
		return nil, fmt.Errorf("%w: degree must be at least %d, got %d", ErrInvalidInput, minDegree, degree)
	}

	params, err := CentripetalParameterPositions(x, y)
	if err != nil {
		return nil, err
	}

	knots, err := KnotVectorUsingAveraging(params, degree, rule)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Degree:     degree,
		Knots:      knots,
		Parameters: params,
	}

	// Linear interpolation passes through its control points.
	if degree == 1 {
		res.ControlX = append([]float64(nil), x...)
		res.ControlY = append([]float64(nil), y...)
		return res, nil
	}

	solver, err := linalg.Factorize(len(params), AssembleMatrix(params, degree, knots))
	if err != nil {
		return nil, wrapSolveError(err, "basis matrix")
	}

	if res.ControlX, err = solver.Solve(x); err != nil {
		return nil, wrapSolveError(err, "x-coordinates")
	}
	if res.ControlY, err = solver.Solve(y); err != nil {
		return nil, wrapSolveError(err, "y-coordinates")
	}

	return res, nil
}

// AssembleMatrix returns the n×n basis matrix in row-major order, where
// n = len(params) and entry (row, col) is N_{col,degree}(params[row]).
// The knot vector must hold n+degree+1 values.
func AssembleMatrix(params []float64, degree int, knots []float64) []float64 {
	n := len(params)
	m := make([]float64, n*n)

	tb := basis.NewTable(degree, knots)
	for row, t := range params {
		tb.Row(t, m[row*n:(row+1)*n])
	}

	return m
}

func wrapSolveError(err error, what string) error {
	if errors.Is(err, linalg.ErrSingular) {
		return fmt.Errorf("%w: %s: %w", ErrSingularSystem, what, err)
	}
	return fmt.Errorf("solving %s: %w", what, err)
}
