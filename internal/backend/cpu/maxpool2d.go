package cpu

import (
	"fmt"

	"github.com/born-ml/convcore/internal/parallel"
	"github.com/born-ml/convcore/internal/tensor"
)

// MaxPool2D performs 2D max pooling on every channel of input.
//
// Input shape:  [X, Y, D]
// Output shape: [outX, outY, D]
//
// Where:
//
//	outX = (X - window) / stride + 1
//	outY = (Y - window) / stride + 1
//
// Two co-indexed tensors are returned: the window maxima and, for each
// output cell, the input coordinate the maximum was read from. Ties resolve
// to the first coordinate in x-fastest order.
//
// Example (2x2 pool, stride=2, one channel, x-fastest values 0..15):
//
//	Input: [[ 0, 1, 2, 3],    Output: [[ 5, 7],
//	        [ 4, 5, 6, 7],             [13,15]]
//	        [ 8, 9,10,11],
//	        [12,13,14,15]]
//
// Channels are partitioned across the backend's workers.
func MaxPool2D[T tensor.Numeric](
	cpu *CPUBackend,
	input *tensor.Tensor[T],
	window, stride int,
) (*tensor.Tensor[T], *tensor.Tensor[tensor.Coord], error) {
	if cpu == nil {
		return nil, nil, fmt.Errorf("maxpool2d: %w: nil backend", parallel.ErrInvalidConfiguration)
	}
	if input == nil {
		return nil, nil, fmt.Errorf("maxpool2d: %w: nil input", tensor.ErrShapeMismatch)
	}
	outShape, err := PoolOutputShape(input.Shape(), window, stride)
	if err != nil {
		return nil, nil, fmt.Errorf("maxpool2d: %w", err)
	}

	maxima, err := tensor.Zeros[T](outShape)
	if err != nil {
		return nil, nil, fmt.Errorf("maxpool2d: failed to create output: %w", err)
	}
	indices, err := tensor.Zeros[tensor.Coord](outShape)
	if err != nil {
		return nil, nil, fmt.Errorf("maxpool2d: failed to create indices: %w", err)
	}
	maxData, idxData := maxima.Data(), indices.Data()

	err = parallel.Run(outShape.Z, cpu.parallel, func(b parallel.Block) {
		for z := b.Start; z < b.End(); z++ {
			// 2D loop over the pooled plane of this channel
			for y := 0; y < outShape.Y; y++ {
				ys := y * stride

				for x := 0; x < outShape.X; x++ {
					xs := x * stride

					view := input.Slice(
						tensor.Coord{X: xs, Y: ys, Z: z},
						tensor.Coord{X: xs + window - 1, Y: ys + window - 1, Z: z},
					)
					// The window is non-empty and inside the input.
					at, _ := tensor.ArgMax(view)

					i := outShape.Index(tensor.Coord{X: x, Y: y, Z: z})
					idxData[i] = at
					maxData[i] = view.At(at)
				}
			}
		}
	})
	if err != nil {
		return nil, nil, fmt.Errorf("maxpool2d: %w", err)
	}

	return maxima, indices, nil
}
