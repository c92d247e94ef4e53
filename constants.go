package bspline

// Parameter domain of curves built by this package
const (
	domainStart = 0.0
	domainEnd   = 1.0
)

// Sampling defaults
const (
	// samplesPerSegment is the number of curve samples Curve.Sample uses per
	// span between interpolation points when no count is given.
	samplesPerSegment = 10

	// minLinspace is the smallest sample count that spans both ends of a range.
	minLinspace = 2
)

// Degree limits
const (
	minDegree = 1
	maxDegree = 32 // Bounds the basis recursion depth
)
