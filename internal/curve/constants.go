package curve

// Parallel sampling constants
const (
	// minSamplesPerWorker is the smallest chunk handed to one goroutine.
	// Below it the goroutine overhead outweighs the basis evaluation.
	minSamplesPerWorker = 64
)

// de Boor constants
const (
	// spanTolerance is the tolerance below which a knot difference is
	// treated as zero in the de Boor recurrence.
	spanTolerance = 1e-12
)
