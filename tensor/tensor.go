// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"cmp"

	"github.com/born-ml/convcore/internal/tensor"
)

// Numeric is the constraint for element types that support Dot.
type Numeric = tensor.Numeric

// DataType represents runtime type information for tensors.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
)

// Shape represents the extents of a tensor.
// Example: Shape{X: 2, Y: 3, Z: 4} holds 24 elements.
type Shape = tensor.Shape

// Coord is a signed position along the x, y and z axes.
type Coord = tensor.Coord

// Box is an axis-aligned bounding box with inclusive corners.
type Box = tensor.Box

// Tensor is a dense 3-D array that owns its buffer.
type Tensor[T any] = tensor.Tensor[T]

// View is a non-owning window into a Tensor.
type View[T any] = tensor.View[T]

// CoordIterator walks a Box in x-fastest order.
type CoordIterator = tensor.CoordIterator

// Errors reported by tensor operations.
var (
	ErrShapeMismatch    = tensor.ErrShapeMismatch
	ErrInvalidDimension = tensor.ErrInvalidDimension
	ErrInvalidShape     = tensor.ErrInvalidShape
	ErrOutOfRange       = tensor.ErrOutOfRange
)

// NewShape creates a shape, rejecting negative extents.
func NewShape(x, y, z int) (Shape, error) {
	return tensor.NewShape(x, y, z)
}

// BoxOf returns the box covering every element of shape s.
func BoxOf(s Shape) Box {
	return tensor.BoxOf(s)
}

// New creates a tensor of the given shape with every element set to fill.
func New[T any](shape Shape, fill T) (*Tensor[T], error) {
	return tensor.New(shape, fill)
}

// Zeros creates a tensor filled with the zero value.
func Zeros[T any](shape Shape) (*Tensor[T], error) {
	return tensor.Zeros[T](shape)
}

// FromSlice creates a tensor from x-fastest data.
func FromSlice[T any](shape Shape, data []T) (*Tensor[T], error) {
	return tensor.FromSlice(shape, data)
}

// NewCoordIterator creates an iterator over b.
func NewCoordIterator(b Box) *CoordIterator {
	return tensor.NewCoordIterator(b)
}

// Dot returns the sum of element-wise products of two equally sized views.
func Dot[T Numeric](a, b View[T]) (T, error) {
	return tensor.Dot(a, b)
}

// ArgMax returns the coordinate of the first maximum of v.
func ArgMax[T cmp.Ordered](v View[T]) (Coord, error) {
	return tensor.ArgMax(v)
}
