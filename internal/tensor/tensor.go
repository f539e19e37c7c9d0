package tensor

import "fmt"

// Tensor is a dense 3-D array that owns its buffer.
//
// Elements are stored x-fastest: the element at (x, y, z) lives at index
// x + X*(y + Y*z) of Data(). The buffer length always equals
// Shape().NumElements().
//
// T is usually a Numeric type, but any element type can be stored; the
// pooling kernel keeps its arg-max coordinates in a Tensor[Coord].
//
// Example:
//
//	t, err := tensor.New[float32](tensor.Shape{X: 4, Y: 4, Z: 1}, 0)
//	if err != nil {
//	    return err
//	}
//	_ = t.Set(tensor.Coord{X: 1, Y: 2}, 3.5)
type Tensor[T any] struct {
	shape Shape
	data  []T
}

// New creates a tensor of the given shape with every element set to fill.
func New[T any](shape Shape, fill T) (*Tensor[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	data := make([]T, shape.NumElements())
	for i := range data {
		data[i] = fill
	}
	return &Tensor[T]{shape: shape, data: data}, nil
}

// Zeros creates a tensor of the given shape filled with the zero value.
func Zeros[T any](shape Shape) (*Tensor[T], error) {
	var zero T
	return New(shape, zero)
}

// FromSlice creates a tensor from a Go slice laid out x-fastest.
// The slice is copied into the tensor's memory.
func FromSlice[T any](shape Shape, data []T) (*Tensor[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("%w: shape %v requires %d elements, but got %d",
			ErrShapeMismatch, shape, shape.NumElements(), len(data))
	}
	buf := make([]T, len(data))
	copy(buf, data)
	return &Tensor[T]{shape: shape, data: buf}, nil
}

// Shape returns the tensor's shape.
func (t *Tensor[T]) Shape() Shape {
	return t.shape
}

// NumElements returns the total number of elements.
func (t *Tensor[T]) NumElements() int {
	return len(t.data)
}

// Data returns the backing slice in x-fastest order. Writes through the
// slice modify the tensor.
func (t *Tensor[T]) Data() []T {
	return t.data
}

// Clone returns a deep copy with an independent buffer.
func (t *Tensor[T]) Clone() *Tensor[T] {
	data := make([]T, len(t.data))
	copy(data, t.data)
	return &Tensor[T]{shape: t.shape, data: data}
}

// At returns the element at c.
func (t *Tensor[T]) At(c Coord) (T, error) {
	if !t.shape.Contains(c) {
		var zero T
		return zero, fmt.Errorf("%w: %v outside shape %v", ErrOutOfRange, c, t.shape)
	}
	return t.data[t.shape.Index(c)], nil
}

// Set writes v at c.
func (t *Tensor[T]) Set(c Coord, v T) error {
	if !t.shape.Contains(c) {
		return fmt.Errorf("%w: %v outside shape %v", ErrOutOfRange, c, t.shape)
	}
	t.data[t.shape.Index(c)] = v
	return nil
}

// Flatten returns a view over the whole tensor.
func (t *Tensor[T]) Flatten() View[T] {
	return View[T]{src: t, box: BoxOf(t.shape)}
}

// Slice returns a view over the inclusive box [minC, maxC]. The box may
// extend beyond the tensor; such positions read as zero through the view.
func (t *Tensor[T]) Slice(minC, maxC Coord) View[T] {
	return View[T]{src: t, box: Box{Min: minC, Max: maxC}}
}

// String returns a short description of the tensor.
func (t *Tensor[T]) String() string {
	return fmt.Sprintf("Tensor%v", t.shape)
}
