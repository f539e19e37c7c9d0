package cpu

import (
	"fmt"

	"github.com/born-ml/convcore/internal/tensor"
)

// Padding selects how Conv2D treats the input border.
type Padding int

const (
	// Valid uses only windows that lie fully inside the input; the output
	// shrinks by the filter size.
	Valid Padding = iota
	// Same keeps the output's spatial size equal to the input's, reading
	// zeros for window positions outside the input.
	Same
)

// String returns the padding mode name.
func (p Padding) String() string {
	switch p {
	case Valid:
		return "valid"
	case Same:
		return "same"
	default:
		return fmt.Sprintf("Padding(%d)", int(p))
	}
}

// ParsePadding is the inverse of Padding.String.
func ParsePadding(s string) (Padding, error) {
	switch s {
	case "valid":
		return Valid, nil
	case "same":
		return Same, nil
	default:
		return 0, fmt.Errorf("unknown padding %q (want valid or same)", s)
	}
}

// LeftPadding returns the number of zero columns added before the input for
// a filter of the given shape: half of the total horizontal pad
// filter.X - 1, rounded down.
func LeftPadding(filter tensor.Shape) int {
	return (filter.X - 1) / 2
}

// TopPadding is LeftPadding for the y axis.
func TopPadding(filter tensor.Shape) int {
	return (filter.Y - 1) / 2
}

// ConvOutputShape returns the output shape of Conv2D, or ErrInvalidDimension
// when a valid-padded window does not fit.
func ConvOutputShape(input, filter tensor.Shape, filters, stride int, padding Padding) (tensor.Shape, error) {
	if stride <= 0 {
		return tensor.Shape{}, fmt.Errorf("%w: stride %d (must be > 0)", tensor.ErrInvalidDimension, stride)
	}
	switch padding {
	case Same:
		return tensor.Shape{X: input.X, Y: input.Y, Z: filters}, nil
	case Valid:
		out := tensor.Shape{
			X: windowCount(input.X, filter.X, stride),
			Y: windowCount(input.Y, filter.Y, stride),
			Z: filters,
		}
		if out.X <= 0 || out.Y <= 0 {
			return tensor.Shape{}, fmt.Errorf("%w: output %dx%d (input=%v, filter=%v, stride=%d)",
				tensor.ErrInvalidDimension, out.X, out.Y, input, filter, stride)
		}
		return out, nil
	default:
		return tensor.Shape{}, fmt.Errorf("%w: unknown padding %v", tensor.ErrInvalidDimension, padding)
	}
}

// PoolOutputShape returns the output shape of MaxPool2D, or
// ErrInvalidDimension when the window does not fit.
func PoolOutputShape(input tensor.Shape, window, stride int) (tensor.Shape, error) {
	if window <= 0 {
		return tensor.Shape{}, fmt.Errorf("%w: window %d (must be > 0)", tensor.ErrInvalidDimension, window)
	}
	if stride <= 0 {
		return tensor.Shape{}, fmt.Errorf("%w: stride %d (must be > 0)", tensor.ErrInvalidDimension, stride)
	}
	out := tensor.Shape{
		X: windowCount(input.X, window, stride),
		Y: windowCount(input.Y, window, stride),
		Z: input.Z,
	}
	if out.X <= 0 || out.Y <= 0 {
		return tensor.Shape{}, fmt.Errorf("%w: output %dx%d (input=%v, window=%d, stride=%d)",
			tensor.ErrInvalidDimension, out.X, out.Y, input, window, stride)
	}
	return out, nil
}

// windowCount is floor((in - size) / stride) + 1, or 0 when size > in.
func windowCount(in, size, stride int) int {
	if size > in {
		return 0
	}
	return (in-size)/stride + 1
}
