package curve

import "sync"

// EvaluateParallel is like Evaluate but splits the samples into contiguous
// chunks evaluated on up to workers goroutines. Each goroutine owns its basis
// table, so the result is identical to the sequential path.
func (s *Sampler[F]) EvaluateParallel(samples []float64, workers int) (x, y []F) {
	x = make([]F, len(samples))
	y = make([]F, len(samples))

	chunks := chunkCount(len(samples), workers)
	if chunks <= 1 {
		s.evaluateInto(samples, x, y)
		return x, y
	}

	size := (len(samples) + chunks - 1) / chunks

	var wg sync.WaitGroup
	for start := 0; start < len(samples); start += size {
		end := min(start+size, len(samples))
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			s.evaluateInto(samples[lo:hi], x[lo:hi], y[lo:hi])
		}(start, end)
	}
	wg.Wait()

	return x, y
}

// chunkCount returns how many chunks n samples are split into for the
// requested number of workers.
func chunkCount(n, workers int) int {
	if workers < 1 {
		workers = 1
	}
	return max(1, min(workers, n/minSamplesPerWorker))
}
