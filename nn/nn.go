// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/convcore/internal/backend/cpu"
	"github.com/born-ml/convcore/internal/nn"
	"github.com/born-ml/convcore/internal/tensor"
)

// Module is the interface shared by every layer.
type Module[T tensor.Numeric] = nn.Module[T]

// Activation is an element-wise function applied to a layer's output.
type Activation[T tensor.Numeric] = nn.Activation[T]

// Initializer creates a tensor of the given shape.
type Initializer[T tensor.Numeric] = nn.Initializer[T]

// Layers

// ConvConfig describes a convolutional layer.
type ConvConfig[T tensor.Numeric] = nn.ConvConfig[T]

// Conv2D is a convolutional layer with per-filter bias and activation.
type Conv2D[T tensor.Numeric] = nn.Conv2D[T]

// NewConv2D validates cfg and creates the layer.
func NewConv2D[T tensor.Numeric](cfg ConvConfig[T], backend *cpu.CPUBackend) (*Conv2D[T], error) {
	return nn.NewConv2D(cfg, backend)
}

// MaxPool2D is a max pooling layer that keeps its arg-max indices.
type MaxPool2D[T tensor.Numeric] = nn.MaxPool2D[T]

// NewMaxPool2D creates a max pooling layer.
func NewMaxPool2D[T tensor.Numeric](window, stride int, backend *cpu.CPUBackend) *MaxPool2D[T] {
	return nn.NewMaxPool2D[T](window, stride, backend)
}

// Sequential chains modules.
type Sequential[T tensor.Numeric] = nn.Sequential[T]

// NewSequential creates a new Sequential container.
func NewSequential[T tensor.Numeric](modules ...Module[T]) *Sequential[T] {
	return nn.NewSequential(modules...)
}

// Activations

// ReLU applies f(x) = max(0, x).
func ReLU[T tensor.Numeric](x T) T {
	return nn.ReLU(x)
}

// Identity returns x unchanged.
func Identity[T tensor.Numeric](x T) T {
	return nn.Identity(x)
}

// Initializers

// Constant fills every element with v.
func Constant[T tensor.Numeric](v T) Initializer[T] {
	return nn.Constant(v)
}

// Uniform draws from U(lo, hi) with a deterministic seed.
func Uniform[T tensor.Numeric](lo, hi float64, seed uint64) Initializer[T] {
	return nn.Uniform[T](lo, hi, seed)
}

// Normal draws from N(mean, stddev²) with a deterministic seed.
func Normal[T tensor.Numeric](mean, stddev float64, seed uint64) Initializer[T] {
	return nn.Normal[T](mean, stddev, seed)
}
