package main

import (
	"fmt"

	"github.com/born-ml/convcore/internal/tensor"
)

// createInput fills a tensor with 0, 1, 2, ... in iterator order, each value
// divided by scale.
func createInput[T tensor.Numeric](shape tensor.Shape, scale float64) (*tensor.Tensor[T], error) {
	t, err := tensor.Zeros[T](shape)
	if err != nil {
		return nil, err
	}
	fillSequential(t, 0, scale)
	return t, nil
}

// fillSequential writes start, start+1, ... (divided by scale) in iterator
// order and returns the last value written.
func fillSequential[T tensor.Numeric](t *tensor.Tensor[T], start int, scale float64) int {
	i := start
	for c := range tensor.BoxOf(t.Shape()).All() {
		_ = t.Set(c, T(float64(i)/scale))
		i++
	}
	return i - 1
}

// createFilters builds count filters of one shape. A single running index is
// spread across the bank with the filter index varying fastest, then depth,
// then y, then x, so neighbouring filters hold neighbouring values.
func createFilters[T tensor.Numeric](count int, shape tensor.Shape, scale float64) ([]*tensor.Tensor[T], error) {
	filters := make([]*tensor.Tensor[T], count)
	for fi := range filters {
		f, err := tensor.Zeros[T](shape)
		if err != nil {
			return nil, err
		}
		filters[fi] = f
	}

	index := 0
	for x := 0; x < shape.X; x++ {
		for y := 0; y < shape.Y; y++ {
			for z := 0; z < shape.Z; z++ {
				for fi := 0; fi < count; fi++ {
					_ = filters[fi].Set(tensor.Coord{X: x, Y: y, Z: z}, T(float64(index)/scale))
					index++
				}
			}
		}
	}
	return filters, nil
}

// filterDict names the bank "filter.0", "filter.1", ... for a weights file.
func filterDict[T tensor.Numeric](filters []*tensor.Tensor[T]) map[string]*tensor.Tensor[T] {
	dict := make(map[string]*tensor.Tensor[T], len(filters))
	for i, f := range filters {
		dict[fmt.Sprintf("filter.%d", i)] = f
	}
	return dict
}

// filtersFromDict is the inverse of filterDict. Every index from 0 up to
// len(dict)-1 must be present.
func filtersFromDict[T tensor.Numeric](dict map[string]*tensor.Tensor[T]) ([]*tensor.Tensor[T], error) {
	if len(dict) == 0 {
		return nil, fmt.Errorf("%w: no filters", tensor.ErrInvalidDimension)
	}
	filters := make([]*tensor.Tensor[T], len(dict))
	for i := range filters {
		f, ok := dict[fmt.Sprintf("filter.%d", i)]
		if !ok {
			return nil, fmt.Errorf("missing filter.%d", i)
		}
		filters[i] = f
	}
	return filters, nil
}
