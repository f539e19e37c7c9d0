package nn

import (
	"github.com/born-ml/convcore/internal/backend/cpu"
	"github.com/born-ml/convcore/internal/tensor"
)

// MaxPool2D is a max pooling layer with a square window.
//
// It remembers the arg-max coordinates of the most recent Forward call, so
// a single instance must not run Forward concurrently.
type MaxPool2D[T tensor.Numeric] struct {
	window, stride int
	indices        *tensor.Tensor[tensor.Coord]
	backend        *cpu.CPUBackend
}

// NewMaxPool2D creates a max pooling layer. Window and stride are checked on
// the first Forward call, when the input shape is known. A nil backend means
// cpu.New().
func NewMaxPool2D[T tensor.Numeric](window, stride int, backend *cpu.CPUBackend) *MaxPool2D[T] {
	if backend == nil {
		backend = cpu.New()
	}
	return &MaxPool2D[T]{
		window:  window,
		stride:  stride,
		backend: backend,
	}
}

// Forward pools every channel of input.
func (m *MaxPool2D[T]) Forward(input *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	out, indices, err := cpu.MaxPool2D(m.backend, input, m.window, m.stride)
	if err != nil {
		return nil, err
	}
	m.indices = indices
	return out, nil
}

// Indices returns the input coordinate of every maximum from the last
// Forward call, or nil before the first call.
func (m *MaxPool2D[T]) Indices() *tensor.Tensor[tensor.Coord] {
	return m.indices
}
