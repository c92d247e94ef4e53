package bspline

import (
	"fmt"

	"github.com/tphakala/go-bspline/internal/basis"
	"github.com/tphakala/go-bspline/internal/curve"
	"github.com/tphakala/go-bspline/internal/fit"
)

// Points2D holds 2D points as two parallel coordinate slices.
// X and Y must have the same length.
type Points2D struct {
	X []float64
	Y []float64
}

// Len returns the number of points, or -1 if X and Y differ in length.
func (p Points2D) Len() int {
	if len(p.X) != len(p.Y) {
		return -1
	}
	return len(p.X)
}

// Validate reports whether X and Y have equal length.
func (p Points2D) Validate() error {
	if len(p.X) != len(p.Y) {
		return fmt.Errorf("%w: %d x-coordinates but %d y-coordinates", ErrInvalidInput, len(p.X), len(p.Y))
	}
	return nil
}

// Clone returns a deep copy of p.
func (p Points2D) Clone() Points2D {
	return Points2D{
		X: append([]float64(nil), p.X...),
		Y: append([]float64(nil), p.Y...),
	}
}

// AveragingRule selects how interior knots are derived from parameter positions.
type AveragingRule = fit.AveragingRule

const (
	// AveragingMoving averages a window of degree consecutive parameter
	// positions per interior knot. This is the default.
	AveragingMoving = fit.AveragingMoving

	// AveragingReference reproduces the legacy spline kernel's knot vectors,
	// which average a fixed three-position window for degrees above 2.
	AveragingReference = fit.AveragingReference
)

// Common errors returned by this package.
var (
	// ErrInvalidInput indicates input that cannot be processed, such as
	// coordinate slices of different length or a degree too high for the
	// number of points.
	ErrInvalidInput = fit.ErrInvalidInput

	// ErrSingularSystem indicates that the interpolation system has no unique solution.
	ErrSingularSystem = fit.ErrSingularSystem
)

// EvaluateBasis returns N_{i,p}(t), the value of the i-th B-spline basis
// function of degree p over knots, by the Cox–de Boor recursion.
//
// The caller must keep i and p within the range implied by len(knots);
// out-of-range indices panic.
func EvaluateBasis(t float64, i, p int, knots []float64) float64 {
	return basis.Evaluate(t, i, p, knots)
}

// EvaluateCurve evaluates the curve with the given control points and knot
// vector at each sample parameter. The degree is len(knots) - n - 1 for n
// control points.
func EvaluateCurve(samples []float64, control Points2D, knots []float64) (Points2D, error) {
	if err := control.Validate(); err != nil {
		return Points2D{}, err
	}

	x, y, err := curve.Evaluate(samples, control.X, control.Y, knots)
	if err != nil {
		return Points2D{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return Points2D{X: x, Y: y}, nil
}

// EvaluateCurveFloat32 is like EvaluateCurve for float32 control points.
// Basis functions are computed in float64 and rounded per sample.
func EvaluateCurveFloat32(samples []float64, controlX, controlY []float32, knots []float64) (x, y []float32, err error) {
	s, err := curve.NewSampler(controlX, controlY, knots)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	x, y = s.Evaluate(samples)
	return x, y, nil
}

// EvaluateCurveDeBoor is like EvaluateCurve but uses de Boor's algorithm,
// which only visits the degree+1 control points active at each sample.
func EvaluateCurveDeBoor(samples []float64, control Points2D, knots []float64) (Points2D, error) {
	if err := control.Validate(); err != nil {
		return Points2D{}, err
	}

	x, y, err := curve.EvaluateDeBoor(samples, control.X, control.Y, knots)
	if err != nil {
		return Points2D{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return Points2D{X: x, Y: y}, nil
}

// CentripetalParameterPositions returns one parameter in [0, 1] per point,
// spaced by the square roots of the chord lengths between consecutive points.
func CentripetalParameterPositions(points Points2D) ([]float64, error) {
	return fit.CentripetalParameterPositions(points.X, points.Y)
}

// KnotVectorUsingAveraging returns the clamped knot vector for the given
// parameter positions and degree using the moving-average rule.
func KnotVectorUsingAveraging(positions []float64, degree int) ([]float64, error) {
	return fit.KnotVectorUsingAveraging(positions, degree, AveragingMoving)
}

// Interpolate returns the B-spline curve of the given degree that passes
// through every point, using centripetal parameters and moving-average knots.
//
// For degree 1 the control points equal the input points.
func Interpolate(points Points2D, degree int) (*Curve, error) {
	return interpolate(points, degree, AveragingMoving)
}

func interpolate(points Points2D, degree int, rule AveragingRule) (*Curve, error) {
	res, err := fit.Interpolate(points.X, points.Y, degree, rule)
	if err != nil {
		return nil, err
	}

	return &Curve{
		Degree:     res.Degree,
		Control:    Points2D{X: res.ControlX, Y: res.ControlY},
		Knots:      res.Knots,
		Parameters: res.Parameters,
	}, nil
}
