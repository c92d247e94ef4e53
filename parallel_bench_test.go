package bspline

import (
	"testing"
)

// BenchmarkSampleSequential benchmarks sequential curve sampling.
func BenchmarkSampleSequential(b *testing.B) {
	benchmarkSample(b, false)
}

// BenchmarkSampleParallel benchmarks parallel curve sampling.
func BenchmarkSampleParallel(b *testing.B) {
	benchmarkSample(b, true)
}

func benchmarkSample(b *testing.B, parallel bool) {
	b.Helper()

	const (
		numPoints  = 64
		numSamples = 44100
		degree     = 3
	)

	ip, err := New(&Config{Degree: degree, EnableParallel: parallel})
	if err != nil {
		b.Fatalf("Failed to create interpolator: %v", err)
	}

	c, err := ip.Interpolate(spiralPoints(numPoints))
	if err != nil {
		b.Fatalf("Interpolate failed: %v", err)
	}

	workers := ip.Config().Workers

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		var err error
		if parallel {
			_, err = c.SampleParallel(numSamples, workers)
		} else {
			_, err = c.Sample(numSamples)
		}
		if err != nil {
			b.Fatalf("Sample failed: %v", err)
		}
	}
}

// BenchmarkInterpolate benchmarks the full fit for a mid-sized point set.
func BenchmarkInterpolate(b *testing.B) {
	points := spiralPoints(64)

	b.ReportAllocs()
	for b.Loop() {
		if _, err := Interpolate(points, 3); err != nil {
			b.Fatalf("Interpolate failed: %v", err)
		}
	}
}
