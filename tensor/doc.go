// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the 3-D tensor used by the convolution and pooling
// kernels.
//
// # Overview
//
// This package provides:
//   - Tensor[T]: an owning, contiguous x-fastest buffer with a fixed Shape
//   - View[T]: a non-owning window over a tensor that reads zero outside it
//   - CoordIterator: x-fastest, then y, then z traversal of a Box
//   - Dot and ArgMax: the reductions the kernels are built from
//
// # Basic Usage
//
//	import "github.com/born-ml/convcore/tensor"
//
//	func main() {
//	    a, _ := tensor.New[float32](tensor.Shape{X: 3, Y: 3, Z: 1}, 1)
//	    b := a.Clone()
//
//	    sum, _ := tensor.Dot(a.Flatten(), b.Flatten()) // 9
//	    at, _ := tensor.ArgMax(a.Flatten())             // first maximum: [0, 0, 0]
//	}
//
// # Errors
//
// Precondition failures wrap one of ErrShapeMismatch, ErrInvalidDimension,
// ErrInvalidShape or ErrOutOfRange; match them with errors.Is.
package tensor
