// Package bspline computes B-spline curves in pure Go.
//
// It evaluates B-spline basis functions, samples 2D curves built from them,
// and solves the global interpolation problem: fitting a B-spline curve
// through an ordered set of 2D points. The resulting control points and knot
// vector can be handed to any curve renderer or CAD component.
//
// # Features
//
//   - Cox–de Boor basis evaluation with the 0/0 := 0 convention for repeated knots
//   - Dense curve sampling with SIMD dot products via github.com/tphakala/simd
//   - de Boor evaluation for comparison and long control polygons
//   - Centripetal parameterization and knot averaging
//   - Dense LU solve of the interpolation system via gonum
//   - Optional parallel sampling for large sample counts
//
// # Quick Start
//
// Interpolate points with a cubic curve and sample it:
//
//	points := bspline.Points2D{
//	    X: []float64{0, 3, -1, -4, -4, -3},
//	    Y: []float64{0, 4, 4, 0, -3, -3},
//	}
//	c, err := bspline.Interpolate(points, 3)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	xy, err := c.Sample(100)
//
// For repeated fits with the same settings, create an [Interpolator]:
//
//	ip, err := bspline.New(&bspline.Config{
//	    Degree:         3,
//	    Averaging:      bspline.AveragingMoving,
//	    EnableParallel: true,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	c, xy, err := ip.Sample(points, 1000)
//
// # Interpolation
//
// [Interpolate] runs four steps, each available on its own:
//
//	points -> [CentripetalParameterPositions] -> [KnotVectorUsingAveraging]
//	       -> basis matrix -> LU solve per axis -> control points
//
// Parameters are spaced by the square roots of the chord lengths between
// consecutive points, which behaves better than uniform or chord-length
// spacing around sharp turns. Interior knots are averages of parameter
// positions, so every knot span holds enough data for a well-conditioned
// system. Degree 1 needs no solve: the control points are the input points.
//
// Knot vectors are clamped: the first and last degree+1 knots are 0 and 1,
// so the curve starts at the first point and ends at the last.
//
// # Knot Averaging Rules
//
// [AveragingMoving] places each interior knot at the mean of degree
// consecutive parameter positions. [AveragingReference] reproduces the knot
// vectors of the legacy spline kernel, which average a fixed three-position
// window for degrees above 2. The rules agree up to degree 3.
//
// # Errors
//
// Input problems are reported as [ErrInvalidInput]: coordinate slices of
// different length, fewer than two points, a degree below one or too high for
// the number of points, and point sets whose points all coincide. A system
// with no unique solution, for example from repeated consecutive points, is
// reported as [ErrSingularSystem]. Use [errors.Is] to test for them.
//
// # Thread Safety
//
// All functions are pure and may be called concurrently. [Interpolator] and
// [Curve] values are not modified by their methods.
package bspline
