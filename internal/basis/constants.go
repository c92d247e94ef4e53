package basis

// Numerical tolerances
const (
	// Tolerance is the absolute tolerance used to close the final knot
	// interval and to detect degenerate (zero-length) knot spans.
	Tolerance = 1e-12
)
