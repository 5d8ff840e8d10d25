// Package parallel provides chunked CPU parallelism for embarrassingly
// parallel numerical loops.
package parallel

import (
	"runtime"
	"sync"
)

// Parallelize divides items across workers matching the CPU count and runs
// fn for each half-open range [start, end).
func Parallelize(items int, fn func(start, end int)) {
	if items == 0 {
		return
	}

	numWorkers := runtime.NumCPU()
	if numWorkers > items {
		numWorkers = items // no need for more workers than items
	}

	ParallelizeWorkers(items, numWorkers, fn)
}

// ParallelizeWorkers divides items across exactly numWorkers goroutines,
// so the split does not depend on the machine's CPU count.
func ParallelizeWorkers(items, numWorkers int, fn func(start, end int)) {
	if items == 0 || numWorkers < 1 {
		return
	}
	if numWorkers > items {
		numWorkers = items
	}

	// Ceiling division so every item is covered.
	chunkSize := (items + numWorkers - 1) / numWorkers

	var wg sync.WaitGroup

	for i := 0; i < numWorkers; i++ {
		start := i * chunkSize
		end := start + chunkSize
		if end > items {
			end = items
		}

		if start >= end {
			continue
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}

	wg.Wait()
}

// ParallelizeWithThreshold parallelizes only when items exceeds threshold;
// below it the loop runs sequentially in the calling goroutine.
func ParallelizeWithThreshold(items int, threshold int, fn func(start, end int)) {
	if items <= threshold {
		fn(0, items)
		return
	}

	Parallelize(items, fn)
}
