package nn

import "github.com/born-ml/convcore/internal/tensor"

// Activation is an element-wise function applied to a layer's output.
type Activation[T tensor.Numeric] func(T) T

// ReLU applies f(x) = max(0, x).
func ReLU[T tensor.Numeric](x T) T {
	if x < 0 {
		return 0
	}
	return x
}

// Identity returns x unchanged.
func Identity[T tensor.Numeric](x T) T {
	return x
}

// applySlice runs f over every element of data in place.
func (f Activation[T]) applySlice(data []T) {
	if f == nil {
		return
	}
	for i, v := range data {
		data[i] = f(v)
	}
}
