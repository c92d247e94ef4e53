package fit

// Interpolation limits
const (
	minPoints = 2 // Fewest interpolation points that define a parameter range
	minDegree = 1 // Lowest supported polynomial degree
)

// Parameter domain
const (
	domainStart = 0.0
	domainEnd   = 1.0
)

// Reference averaging rule: higher degrees use a fixed window of this many
// parameter positions.
const referenceWindow = 3
