// Package parallel splits independent work items across a fixed number of
// worker goroutines.
//
// Every kernel uses the same partition scheme, so a given (n, workers) pair
// always produces the same contiguous, non-overlapping blocks.
package parallel

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
)

// ErrInvalidConfiguration reports a worker count or worker id that cannot be
// partitioned.
var ErrInvalidConfiguration = errors.New("invalid parallel configuration")

// Config controls parallel execution behavior.
type Config struct {
	NumWorkers int // Number of worker goroutines to use.
}

// DefaultConfig returns one worker per CPU.
func DefaultConfig() Config {
	return Config{NumWorkers: runtime.NumCPU()}
}

// Validate checks that the configuration can be partitioned.
func (c Config) Validate() error {
	if c.NumWorkers <= 0 {
		return fmt.Errorf("%w: %d workers (must be > 0)", ErrInvalidConfiguration, c.NumWorkers)
	}
	return nil
}

// Block is the half-open range [Start, Start+Count) owned by one worker.
type Block struct {
	Worker int
	Start  int
	Count  int
}

// End returns the exclusive end of the block.
func (b Block) End() int {
	return b.Start + b.Count
}

// Empty reports whether the block holds no items.
func (b Block) Empty() bool {
	return b.Count == 0
}

// Partition returns the block of [0, n) assigned to worker out of workers.
//
// With base = n / workers and rem = n % workers, workers 0..rem-1 receive
// base+1 items and the rest receive base; blocks are laid out in worker
// order. When n < workers the trailing workers get empty blocks.
//
// Example (n=10, workers=4):
//
//	worker 0: [0, 3)
//	worker 1: [3, 6)
//	worker 2: [6, 8)
//	worker 3: [8, 10)
func Partition(n, workers, worker int) (Block, error) {
	if workers <= 0 {
		return Block{}, fmt.Errorf("%w: %d workers (must be > 0)", ErrInvalidConfiguration, workers)
	}
	if worker < 0 || worker >= workers {
		return Block{}, fmt.Errorf("%w: worker %d not in [0, %d)", ErrInvalidConfiguration, worker, workers)
	}
	if n < 0 {
		return Block{}, fmt.Errorf("%w: %d work items", ErrInvalidConfiguration, n)
	}

	base, rem := n/workers, n%workers
	count := base
	if worker < rem {
		count++
	}
	start := worker*base + min(worker, rem)
	return Block{Worker: worker, Start: start, Count: count}, nil
}

// Blocks returns the partition of [0, n) for every worker in order.
func Blocks(n, workers int) ([]Block, error) {
	if workers <= 0 {
		return nil, fmt.Errorf("%w: %d workers (must be > 0)", ErrInvalidConfiguration, workers)
	}
	blocks := make([]Block, workers)
	for w := range blocks {
		b, err := Partition(n, workers, w)
		if err != nil {
			return nil, err
		}
		blocks[w] = b
	}
	return blocks, nil
}

// Run partitions [0, n) across cfg.NumWorkers goroutines and calls f once per
// non-empty block. It returns after every call has finished.
//
// f must only write state owned by its block; Run adds no synchronization
// between workers.
func Run(n int, cfg Config, f func(b Block)) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	blocks, err := Blocks(n, cfg.NumWorkers)
	if err != nil {
		return err
	}

	var wg sync.WaitGroup
	for _, b := range blocks {
		if b.Empty() {
			continue
		}
		wg.Add(1)
		go func(b Block) {
			defer wg.Done()
			f(b)
		}(b)
	}
	wg.Wait()
	return nil
}

// For executes f(i) for i in [0, n), each block of indices on its own
// goroutine.
func For(n int, f func(i int), cfg Config) error {
	return Run(n, cfg, func(b Block) {
		for i := b.Start; i < b.End(); i++ {
			f(i)
		}
	})
}
