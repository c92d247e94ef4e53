package basis

import "testing"

func BenchmarkEvaluate_Cubic(b *testing.B) {
	for b.Loop() {
		for i := 0; i < 5; i++ {
			_ = Evaluate(0.37, i, cubicDegree, cubicKnots)
		}
	}
}

func BenchmarkTable_Cubic(b *testing.B) {
	tb := NewTable(cubicDegree, cubicKnots)
	row := make([]float64, tb.Functions())
	for b.Loop() {
		row = tb.Row(0.37, row)
	}
}
