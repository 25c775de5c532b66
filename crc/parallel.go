package crc

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// processParallel splits data into roughly-equal chunks, processes
// each chunk independently (the first starting from s's own register,
// every later one starting from a zero register) across a bounded
// worker pool, extends every chunk's partial register with
// ProcessZeroBytes out to the message's end so all partials share a
// common bit-position, and XOR-reduces them with Combine.
//
// Chunk boundaries: for a target chunk size C = len(data)/workers, the
// first chunk absorbs the remainder (len(data) mod C) so every chunk
// after it is exactly C bytes — offset_0 = 0, offset_1 = len(data) mod
// C + C, offset_i = offset_1 + (i-1)*C thereafter.
func processParallel(algo Algorithm, s State, data []byte) State {
	workers := algo.workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers < 1 {
		workers = 1
	}

	total := len(data)
	chunkSize := 0
	if workers > 0 {
		chunkSize = total / workers
	}
	if total == 0 || workers <= 1 || chunkSize == 0 {
		return processSliceBy(algo.lanes, s, data)
	}

	offsets := []int{0}
	remainder := total % chunkSize
	offsets = append(offsets, chunkSize+remainder)
	for next := offsets[len(offsets)-1] + chunkSize; next < total; next += chunkSize {
		offsets = append(offsets, next)
	}
	offsets = append(offsets, total)

	n := len(offsets) - 1
	chunkStates := make([]State, n)
	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		i := i
		start, end := offsets[i], offsets[i+1]
		g.Go(func() error {
			init := s.crc.NewZeroState()
			if i == 0 {
				init = s
			}
			partial := processSliceBy(algo.lanes, init, data[start:end])
			chunkStates[i] = ProcessZeroBytes(partial, uint64(total-end))
			return nil
		})
	}
	_ = g.Wait() // the goroutines above never return a non-nil error

	acc := chunkStates[0]
	for i := 1; i < n; i++ {
		acc = Combine(acc, chunkStates[i])
	}
	return acc
}
