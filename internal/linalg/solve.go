// Package linalg solves dense square linear systems A·x = b.
//
// It is a thin layer over gonum's LU factorization. A system whose matrix is
// exactly or numerically singular is rejected with ErrSingular instead of
// returning an unreliable solution.
package linalg

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrSingular indicates the system matrix has no unique solution.
	ErrSingular = errors.New("singular matrix")

	// ErrDimension indicates inconsistent matrix or vector dimensions.
	ErrDimension = errors.New("dimension mismatch")
)

// Solver holds the LU factorization of a square matrix and solves systems
// against any number of right-hand sides.
type Solver struct {
	n  int
	lu mat.LU
}

// Factorize computes the LU factorization of the n×n matrix stored row-major
// in data. The data slice is not retained.
func Factorize(n int, data []float64) (*Solver, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: matrix order must be positive, got %d", ErrDimension, n)
	}
	if len(data) != n*n {
		return nil, fmt.Errorf("%w: %d values for a %dx%d matrix", ErrDimension, len(data), n, n)
	}

	a := mat.NewDense(n, n, append([]float64(nil), data...))

	s := &Solver{n: n}
	s.lu.Factorize(a)

	if cond := s.lu.Cond(); math.IsInf(cond, 1) || math.IsNaN(cond) || cond > conditionLimit {
		return nil, fmt.Errorf("%w: condition number %g", ErrSingular, cond)
	}

	return s, nil
}

// Solve returns x such that A·x = b.
func (s *Solver) Solve(b []float64) ([]float64, error) {
	if len(b) != s.n {
		return nil, fmt.Errorf("%w: right-hand side has %d values, want %d", ErrDimension, len(b), s.n)
	}

	rhs := mat.NewVecDense(s.n, append([]float64(nil), b...))
	var x mat.VecDense

	if err := s.lu.SolveVecTo(&x, false, rhs); err != nil {
		var cond mat.Condition
		if errors.As(err, &cond) {
			return nil, fmt.Errorf("%w: condition number %g", ErrSingular, float64(cond))
		}
		return nil, err
	}

	out := make([]float64, s.n)
	for i := range out {
		out[i] = x.AtVec(i)
	}
	return out, nil
}
