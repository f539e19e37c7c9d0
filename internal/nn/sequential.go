package nn

import (
	"fmt"

	"github.com/born-ml/convcore/internal/tensor"
)

// Sequential is a container module that chains multiple modules together.
//
// Each module's output becomes the next module's input.
//
// Example:
//
//	model := nn.NewSequential[float32](conv1, pool1, conv2)
//	output, err := model.Forward(input)
type Sequential[T tensor.Numeric] struct {
	modules []Module[T]
}

// NewSequential creates a new Sequential container.
func NewSequential[T tensor.Numeric](modules ...Module[T]) *Sequential[T] {
	return &Sequential[T]{
		modules: modules,
	}
}

// Forward applies all modules in sequence and stops at the first error.
func (s *Sequential[T]) Forward(input *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	output := input

	for i, module := range s.modules {
		next, err := module.Forward(output)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		output = next
	}

	return output, nil
}

// Add appends a module to the sequence.
func (s *Sequential[T]) Add(module Module[T]) {
	s.modules = append(s.modules, module)
}

// Len returns the number of modules in the sequence.
func (s *Sequential[T]) Len() int {
	return len(s.modules)
}

// Module returns the module at the given index.
//
// Panics if index is out of bounds.
func (s *Sequential[T]) Module(index int) Module[T] {
	if index < 0 || index >= len(s.modules) {
		panic("Sequential.Module: index out of bounds")
	}
	return s.modules[index]
}
