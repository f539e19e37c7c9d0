package tensor

import (
	"fmt"
	"math"
	"math/bits"
)

// Shape represents the extents of a 3-D tensor along the x, y and z axes.
type Shape struct {
	X, Y, Z int
}

// NewShape creates a shape, rejecting negative extents.
func NewShape(x, y, z int) (Shape, error) {
	s := Shape{X: x, Y: y, Z: z}
	if err := s.Validate(); err != nil {
		return Shape{}, err
	}
	return s, nil
}

// Validate checks that no extent is negative and that the element count fits
// in an int. Zero extents are allowed and describe an empty tensor.
func (s Shape) Validate() error {
	if s.X < 0 || s.Y < 0 || s.Z < 0 {
		return fmt.Errorf("%w: %v (extents must be >= 0)", ErrInvalidShape, s)
	}
	if _, ok := checkedVolume(s); !ok {
		return fmt.Errorf("%w: %v (element count overflows int)", ErrInvalidShape, s)
	}
	return nil
}

// checkedVolume returns X*Y*Z for non-negative extents, or false if the
// product does not fit in an int.
func checkedVolume(s Shape) (int, bool) {
	n := uint64(1)
	for _, d := range [3]int{s.X, s.Y, s.Z} {
		hi, lo := bits.Mul64(n, uint64(d))
		if hi != 0 || lo > math.MaxInt {
			return 0, false
		}
		n = lo
	}
	return int(n), true
}

// NumElements returns the total number of elements in the tensor. It is only
// meaningful for shapes that pass Validate.
func (s Shape) NumElements() int {
	return s.X * s.Y * s.Z
}

// Contains reports whether c addresses an element of a tensor of this shape.
func (s Shape) Contains(c Coord) bool {
	return c.X >= 0 && c.X < s.X &&
		c.Y >= 0 && c.Y < s.Y &&
		c.Z >= 0 && c.Z < s.Z
}

// Index maps an in-bounds coordinate to its position in the x-fastest buffer.
// It does not check bounds.
func (s Shape) Index(c Coord) int {
	return c.X + s.X*(c.Y+s.Y*c.Z)
}

// String formats the shape as (x, y, z).
func (s Shape) String() string {
	return fmt.Sprintf("(%d, %d, %d)", s.X, s.Y, s.Z)
}

// Coord is a signed position along the x, y and z axes. It may fall outside a
// tensor while padding offsets are applied.
type Coord struct {
	X, Y, Z int
}

// Add returns the component-wise sum c + o.
func (c Coord) Add(o Coord) Coord {
	return Coord{X: c.X + o.X, Y: c.Y + o.Y, Z: c.Z + o.Z}
}

// Sub returns the component-wise difference c - o.
func (c Coord) Sub(o Coord) Coord {
	return Coord{X: c.X - o.X, Y: c.Y - o.Y, Z: c.Z - o.Z}
}

// String formats the coordinate as [x, y, z].
func (c Coord) String() string {
	return fmt.Sprintf("[%d, %d, %d]", c.X, c.Y, c.Z)
}

// Box is an axis-aligned bounding box with inclusive corners.
type Box struct {
	Min, Max Coord
}

// BoxOf returns the box that covers every element of shape s.
func BoxOf(s Shape) Box {
	return Box{Max: Coord{X: s.X - 1, Y: s.Y - 1, Z: s.Z - 1}}
}

// Extents returns the number of positions along each axis. An axis whose max
// corner lies below its min corner has extent 0.
func (b Box) Extents() Shape {
	return Shape{
		X: max(b.Max.X-b.Min.X+1, 0),
		Y: max(b.Max.Y-b.Min.Y+1, 0),
		Z: max(b.Max.Z-b.Min.Z+1, 0),
	}
}

// Volume returns the number of coordinates inside the box.
func (b Box) Volume() int {
	return b.Extents().NumElements()
}

// Contains reports whether c lies inside the box.
func (b Box) Contains(c Coord) bool {
	return c.X >= b.Min.X && c.X <= b.Max.X &&
		c.Y >= b.Min.Y && c.Y <= b.Max.Y &&
		c.Z >= b.Min.Z && c.Z <= b.Max.Z
}

// String formats the box as min..max.
func (b Box) String() string {
	return fmt.Sprintf("%v..%v", b.Min, b.Max)
}
