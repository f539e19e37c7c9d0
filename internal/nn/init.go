package nn

import (
	"math/rand/v2"

	"github.com/born-ml/convcore/internal/tensor"
)

// Initializer creates a tensor of the given shape. Initializers are passed
// into layer constructors explicitly; there is no package-level state.
type Initializer[T tensor.Numeric] func(shape tensor.Shape) (*tensor.Tensor[T], error)

// Constant fills every element with v.
func Constant[T tensor.Numeric](v T) Initializer[T] {
	return func(shape tensor.Shape) (*tensor.Tensor[T], error) {
		return tensor.New(shape, v)
	}
}

// Uniform draws from U(lo, hi) with a deterministic seed.
func Uniform[T tensor.Numeric](lo, hi float64, seed uint64) Initializer[T] {
	rng := rand.New(rand.NewPCG(seed, seed))
	return func(shape tensor.Shape) (*tensor.Tensor[T], error) {
		t, err := tensor.Zeros[T](shape)
		if err != nil {
			return nil, err
		}
		data := t.Data()
		for i := range data {
			//nolint:gosec // Weight initialization is not security-critical
			data[i] = T(lo + rng.Float64()*(hi-lo))
		}
		return t, nil
	}
}

// Normal draws from N(mean, stddev²) with a deterministic seed.
func Normal[T tensor.Numeric](mean, stddev float64, seed uint64) Initializer[T] {
	rng := rand.New(rand.NewPCG(seed, seed))
	return func(shape tensor.Shape) (*tensor.Tensor[T], error) {
		t, err := tensor.Zeros[T](shape)
		if err != nil {
			return nil, err
		}
		data := t.Data()
		for i := range data {
			//nolint:gosec // Weight initialization is not security-critical
			data[i] = T(mean + rng.NormFloat64()*stddev)
		}
		return t, nil
	}
}
