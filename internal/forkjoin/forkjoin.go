// Package forkjoin provides a minimal data-parallel fan-out/fan-in
// primitive, the Go-native replacement for the OpenMP `#pragma omp
// parallel for` directives the original C++ source used around its
// per-vertex classification and preprocessing loops.
//
// There is exactly one idiom for concurrency anywhere in the retrieved
// corpus: plain goroutines fanned out over a range and joined with a
// sync.WaitGroup (see katalvlaran/lvlath's core/concurrency_test.go).
// For builds this small, a pool is overkill; For reaches for nothing
// heavier than that.
package forkjoin

import "sync"

// For calls fn(i) for every i in [0, n), using up to workers goroutines.
// It blocks until every call has returned. fn must be safe to call
// concurrently with itself; For makes no ordering guarantee between
// calls — callers that need a deterministic result must assemble it in
// a sequential pass over [0, n) afterwards, writing into a pre-sized
// slice indexed by i from within fn.
//
// workers <= 1 runs fn sequentially on the calling goroutine, with no
// goroutines spawned at all. workers is clamped to n when n < workers,
// since spawning more goroutines than there is work to do only adds
// scheduling overhead.
func For(n int, workers int, fn func(i int)) {
	if n <= 0 {
		return
	}
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	var wg sync.WaitGroup
	wg.Add(workers)
	chunk := (n + workers - 1) / workers
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				fn(i)
			}
		}(lo, hi)
	}
	wg.Wait()
}
