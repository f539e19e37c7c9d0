// Package cpu implements the convolution and max-pooling kernels on CPU.
//
// Each kernel splits its outermost independent axis (filters for Conv2D,
// channels for MaxPool2D) across the backend's workers with
// parallel.Partition. Workers write disjoint output regions, so results do
// not depend on the worker count.
package cpu

import (
	"fmt"

	"github.com/born-ml/convcore/internal/parallel"
)

// CPUBackend runs kernels on a fixed number of worker goroutines.
type CPUBackend struct {
	parallel parallel.Config
}

// New creates a CPU backend with one worker per CPU.
func New() *CPUBackend {
	return &CPUBackend{
		parallel: parallel.DefaultConfig(),
	}
}

// NewWithConfig creates a CPU backend with an explicit worker configuration.
func NewWithConfig(cfg parallel.Config) (*CPUBackend, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &CPUBackend{parallel: cfg}, nil
}

// Name returns the backend name, including the detected SIMD level.
func (cpu *CPUBackend) Name() string {
	return fmt.Sprintf("CPU (%s)", DetectFeatures().Best())
}

// Workers returns the number of worker goroutines used per kernel call.
func (cpu *CPUBackend) Workers() int {
	return cpu.parallel.NumWorkers
}

// Config returns the backend's parallel configuration.
func (cpu *CPUBackend) Config() parallel.Config {
	return cpu.parallel
}
