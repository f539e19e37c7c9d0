package cpu

import (
	"fmt"

	"github.com/born-ml/convcore/internal/parallel"
	"github.com/born-ml/convcore/internal/tensor"
)

// Conv2D cross-correlates input with every filter.
//
// Input shape:  [X, Y, D]
// Filter shape: [Fx, Fy, D] (all filters share one shape)
// Output shape: [outX, outY, len(filters)]
//
// Where, for Valid padding:
//
//	outX = (X - Fx) / stride + 1
//	outY = (Y - Fy) / stride + 1
//
// and for Same padding outX = X, outY = Y.
//
// Output element (x, y, f) is the dot product of filter f with the input
// window whose origin is (x*stride - left, y*stride - top, 0), where left and
// top are LeftPadding and TopPadding of the filter (both 0 for Valid).
// Window positions outside the input read as zero. The filter is not
// flipped:
//
//	out(x, y, f) = Σ input(xs+m, ys+n, d) * filter_f(m, n, d)
//
// Filters are partitioned across the backend's workers; each worker writes
// only the output planes of its own filters.
func Conv2D[T tensor.Numeric](
	cpu *CPUBackend,
	filters []*tensor.Tensor[T],
	input *tensor.Tensor[T],
	stride int,
	padding Padding,
) (*tensor.Tensor[T], error) {
	if cpu == nil {
		return nil, fmt.Errorf("conv2d: %w: nil backend", parallel.ErrInvalidConfiguration)
	}
	filterShape, err := validateFilters(filters, input)
	if err != nil {
		return nil, err
	}
	outShape, err := ConvOutputShape(input.Shape(), filterShape, len(filters), stride, padding)
	if err != nil {
		return nil, fmt.Errorf("conv2d: %w", err)
	}

	var left, top int
	if padding == Same {
		left, top = LeftPadding(filterShape), TopPadding(filterShape)
	}

	output, err := tensor.Zeros[T](outShape)
	if err != nil {
		return nil, fmt.Errorf("conv2d: failed to create output tensor: %w", err)
	}
	outData := output.Data()
	depth := input.Shape().Z

	err = parallel.Run(len(filters), cpu.parallel, func(b parallel.Block) {
		for fi := b.Start; fi < b.End(); fi++ {
			filter := filters[fi].Flatten()

			// 2D loop over the output plane of this filter
			for y := 0; y < outShape.Y; y++ {
				ys := y*stride - top

				for x := 0; x < outShape.X; x++ {
					xs := x*stride - left

					window := input.Slice(
						tensor.Coord{X: xs, Y: ys, Z: 0},
						tensor.Coord{X: xs + filterShape.X - 1, Y: ys + filterShape.Y - 1, Z: depth - 1},
					)
					// Extents match by construction; Dot cannot fail here.
					v, _ := tensor.Dot(window, filter)
					outData[outShape.Index(tensor.Coord{X: x, Y: y, Z: fi})] = v
				}
			}
		}
	})
	if err != nil {
		return nil, fmt.Errorf("conv2d: %w", err)
	}

	return output, nil
}

// validateFilters checks the filter bank against the input and returns the
// common filter shape.
func validateFilters[T tensor.Numeric](filters []*tensor.Tensor[T], input *tensor.Tensor[T]) (tensor.Shape, error) {
	if input == nil {
		return tensor.Shape{}, fmt.Errorf("conv2d: %w: nil input", tensor.ErrShapeMismatch)
	}
	if len(filters) == 0 {
		return tensor.Shape{}, fmt.Errorf("conv2d: %w: no filters", tensor.ErrInvalidDimension)
	}
	if filters[0] == nil {
		return tensor.Shape{}, fmt.Errorf("conv2d: %w: filter 0 is nil", tensor.ErrShapeMismatch)
	}

	fs := filters[0].Shape()
	if fs.X <= 0 || fs.Y <= 0 {
		return tensor.Shape{}, fmt.Errorf("conv2d: %w: filter shape %v", tensor.ErrInvalidDimension, fs)
	}
	if fs.Z != input.Shape().Z {
		return tensor.Shape{}, fmt.Errorf("conv2d: %w: filter depth %d != input depth %d",
			tensor.ErrShapeMismatch, fs.Z, input.Shape().Z)
	}
	for i, f := range filters[1:] {
		if f == nil {
			return tensor.Shape{}, fmt.Errorf("conv2d: %w: filter %d is nil", tensor.ErrShapeMismatch, i+1)
		}
		if f.Shape() != fs {
			return tensor.Shape{}, fmt.Errorf("conv2d: %w: filter %d has shape %v, filter 0 has %v",
				tensor.ErrShapeMismatch, i+1, f.Shape(), fs)
		}
	}
	return fs, nil
}
