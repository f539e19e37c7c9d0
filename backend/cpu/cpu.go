// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/born-ml/convcore/internal/backend/cpu"
	"github.com/born-ml/convcore/internal/parallel"
	"github.com/born-ml/convcore/internal/tensor"
)

// Backend runs the kernels on a fixed number of worker goroutines.
type Backend = internalcpu.CPUBackend

// Padding selects valid or same convolution borders.
type Padding = internalcpu.Padding

// Padding modes.
const (
	Valid = internalcpu.Valid
	Same  = internalcpu.Same
)

// Features lists the SIMD extensions of the host CPU.
type Features = internalcpu.Features

// New creates a CPU backend with one worker per CPU.
//
// Example:
//
//	import (
//	    "github.com/born-ml/convcore/backend/cpu"
//	    "github.com/born-ml/convcore/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    out, err := cpu.Conv2D(backend, filters, input, 1, cpu.Same)
//	}
func New() *Backend {
	return internalcpu.New()
}

// NewWithConfig creates a CPU backend with an explicit worker count.
func NewWithConfig(cfg parallel.Config) (*Backend, error) {
	return internalcpu.NewWithConfig(cfg)
}

// ParsePadding parses "valid" or "same".
func ParsePadding(s string) (Padding, error) {
	return internalcpu.ParsePadding(s)
}

// DetectFeatures queries the host CPU.
func DetectFeatures() Features {
	return internalcpu.DetectFeatures()
}

// Conv2D cross-correlates input with every filter; see the package
// documentation for shapes and padding.
func Conv2D[T tensor.Numeric](b *Backend, filters []*tensor.Tensor[T], input *tensor.Tensor[T], stride int, padding Padding) (*tensor.Tensor[T], error) {
	return internalcpu.Conv2D(b, filters, input, stride, padding)
}

// MaxPool2D pools every channel of input and returns the maxima together
// with the input coordinate of each maximum.
func MaxPool2D[T tensor.Numeric](b *Backend, input *tensor.Tensor[T], window, stride int) (*tensor.Tensor[T], *tensor.Tensor[tensor.Coord], error) {
	return internalcpu.MaxPool2D(b, input, window, stride)
}

// ConvOutputShape returns the output shape Conv2D would produce.
func ConvOutputShape(input, filter tensor.Shape, filters, stride int, padding Padding) (tensor.Shape, error) {
	return internalcpu.ConvOutputShape(input, filter, filters, stride, padding)
}

// PoolOutputShape returns the output shape MaxPool2D would produce.
func PoolOutputShape(input tensor.Shape, window, stride int) (tensor.Shape, error) {
	return internalcpu.PoolOutputShape(input, window, stride)
}
