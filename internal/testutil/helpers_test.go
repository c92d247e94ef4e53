package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssertPartitionOfUnity(t *testing.T) {
	// Long enough to cover the vector body and the scalar tail of the sum.
	row := make([]float64, 37)
	for i := range row {
		row[i] = 1.0 / 37
	}
	assert.True(t, AssertPartitionOfUnity(t, row, 1e-12))
	assert.True(t, AssertPartitionOfUnity(t, []float64{0, 0, 0.25, 0.75, 0}, 0))
}
