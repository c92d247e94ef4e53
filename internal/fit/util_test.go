package fit

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

const knotTolerance = 1e-12

var approxKnots = cmpopts.EquateApprox(0, knotTolerance)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// Reference point set: consecutive chords are 25, 169, 289 and 625, so the
// square roots sum to 60.
var (
	refX = []float64{0, 15, 171, 307, 907}
	refY = []float64{0, 20, 85, 340, 515}
)

const refLength = 5.0 + 13.0 + 17.0 + 25.0

// Points from the interactive interpolation script.
var (
	scriptX = []float64{0, 3, -1, -4, -4, -3}
	scriptY = []float64{0, 4, 4, 0, -3, -3}
)
