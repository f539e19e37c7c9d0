// Package nn composes the CPU kernels into forward-only network layers.
//
// This package provides:
//   - Module interface: a layer that maps one tensor to another
//   - Conv2D: filter bank + per-filter bias + activation
//   - MaxPool2D: windowed max reduction that keeps its arg-max indices
//   - Sequential: container for stacking layers
//   - Activations and initializers as plain values
//
// There is no backward pass; arg-max indices are kept for inspection only.
package nn

import (
	"github.com/born-ml/convcore/internal/tensor"
)

// Module is the interface shared by every layer.
//
// Modules can be composed to build a network:
//
//	model := nn.NewSequential[float32](
//	    conv,
//	    nn.NewMaxPool2D[float32](2, 2, backend),
//	)
type Module[T tensor.Numeric] interface {
	// Forward computes the output of the module given an input tensor.
	// The input is only read.
	Forward(input *tensor.Tensor[T]) (*tensor.Tensor[T], error)
}
