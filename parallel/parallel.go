// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package parallel exposes the partition scheme shared by every kernel.
//
// Example:
//
//	for w := 0; w < 4; w++ {
//	    b, _ := parallel.Partition(10, 4, w)
//	    fmt.Println(b.Start, b.End()) // 0 3, 3 6, 6 8, 8 10
//	}
package parallel

import (
	"github.com/born-ml/convcore/internal/parallel"
)

// Config controls the number of worker goroutines.
type Config = parallel.Config

// Block is the half-open range of work items owned by one worker.
type Block = parallel.Block

// ErrInvalidConfiguration reports a worker count or id that cannot be
// partitioned.
var ErrInvalidConfiguration = parallel.ErrInvalidConfiguration

// DefaultConfig returns one worker per CPU.
func DefaultConfig() Config {
	return parallel.DefaultConfig()
}

// Partition returns the block of [0, n) assigned to worker out of workers.
func Partition(n, workers, worker int) (Block, error) {
	return parallel.Partition(n, workers, worker)
}

// Blocks returns the partition of [0, n) for every worker.
func Blocks(n, workers int) ([]Block, error) {
	return parallel.Blocks(n, workers)
}

// Run calls f once per non-empty block, each on its own goroutine, and waits.
func Run(n int, cfg Config, f func(b Block)) error {
	return parallel.Run(n, cfg, f)
}
