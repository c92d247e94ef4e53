package basis

import "math"

// Table evaluates all basis functions of one degree at a parameter value in
// a single bottom-up pass.
//
// Level k of the triangle holds N_{j,k}(t) for every j that still has a full
// support inside the knot vector. Each level is computed from the one below it
// with the same terms, in the same order, as Evaluate, so a row produced by a
// Table is bit-identical to calling Evaluate once per index.
//
// A Table owns a scratch buffer and is not safe for concurrent use.
type Table struct {
	knots  []float64
	degree int
	work   []float64
}

// NewTable creates a table for degree p over knots. The knot slice is
// retained, not copied, and must not be modified while the table is in use.
// It panics if the knot vector is too short to hold a single basis function
// of degree p.
func NewTable(p int, knots []float64) *Table {
	if p < 0 || len(knots) < p+2 {
		panic("basis: knot vector too short for degree")
	}

	return &Table{
		knots:  knots,
		degree: p,
		work:   make([]float64, len(knots)-1),
	}
}

// Degree returns the polynomial degree of the table.
func (tb *Table) Degree() int {
	return tb.degree
}

// Functions returns the number of basis functions of the table's degree,
// len(knots) - p - 1.
func (tb *Table) Functions() int {
	return len(tb.knots) - tb.degree - 1
}

// Row writes N_{j,p}(t) for j = 0..Functions()-1 into dst and returns it.
// If dst is too small a new slice is allocated.
func (tb *Table) Row(t float64, dst []float64) []float64 {
	n := tb.Functions()
	if cap(dst) < n {
		dst = make([]float64, n)
	}
	dst = dst[:n]

	knots := tb.knots
	work := tb.work

	for j := range work {
		work[j] = step(t, j, knots)
	}

	// Level k overwrites work[j] in increasing j; work[j+1] is still level k-1.
	for k := 1; k <= tb.degree; k++ {
		for j := 0; j < len(work)-k; j++ {
			var v float64

			if den := knots[j+k] - knots[j]; math.Abs(den) > Tolerance {
				v += (t - knots[j]) / den * work[j]
			}

			if den := knots[j+k+1] - knots[j+1]; math.Abs(den) > Tolerance {
				v += (knots[j+k+1] - t) / den * work[j+1]
			}

			work[j] = v
		}
	}

	copy(dst, work[:n])
	return dst
}
