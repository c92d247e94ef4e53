package fit

import "errors"

var (
	// ErrInvalidInput indicates interpolation input that cannot be processed:
	// mismatched coordinate lengths, too few points, an unsupported degree, or
	// a point set with no extent.
	ErrInvalidInput = errors.New("invalid interpolation input")

	// ErrSingularSystem indicates that the interpolation matrix has no unique
	// solution for the given parameterization.
	ErrSingularSystem = errors.New("singular interpolation system")
)
