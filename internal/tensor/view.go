package tensor

import (
	"cmp"
	"fmt"
)

// View is a non-owning window into a Tensor. It must not outlive the tensor
// it was taken from.
//
// Coordinates passed to At are tensor coordinates, not offsets into the
// window. Positions outside the owning tensor read as the zero value of T,
// which is how "same" padding is realised without a padded copy.
type View[T any] struct {
	src *Tensor[T]
	box Box
}

// Box returns the inclusive bounding box of the view.
func (v View[T]) Box() Box {
	return v.box
}

// Extents returns the size of the view along each axis.
func (v View[T]) Extents() Shape {
	return v.box.Extents()
}

// Tensor returns the tensor the view reads from.
func (v View[T]) Tensor() *Tensor[T] {
	return v.src
}

// At returns the element at tensor coordinate c, or zero if c lies outside
// the owning tensor.
func (v View[T]) At(c Coord) T {
	if !v.src.shape.Contains(c) {
		var zero T
		return zero
	}
	return v.src.data[v.src.shape.Index(c)]
}

// Iterator returns a fresh iterator over the view's coordinates.
func (v View[T]) Iterator() *CoordIterator {
	return NewCoordIterator(v.box)
}

// ArgMax returns the coordinate of the largest element of v. Ties go to the
// coordinate visited first in iterator order.
func ArgMax[T cmp.Ordered](v View[T]) (Coord, error) {
	it := v.Iterator()
	best, ok := it.Next()
	if !ok {
		return Coord{}, fmt.Errorf("argmax: %w: empty view %v", ErrInvalidDimension, v.box)
	}
	bestVal := v.At(best)
	for c, ok := it.Next(); ok; c, ok = it.Next() {
		if val := v.At(c); val > bestVal {
			best, bestVal = c, val
		}
	}
	return best, nil
}

// Dot returns the sum of a.At(a.Min+d) * b.At(b.Min+d) over every offset d of
// the two views, accumulated in iterator order.
func Dot[T Numeric](a, b View[T]) (T, error) {
	ea, eb := a.Extents(), b.Extents()
	if ea != eb {
		return 0, fmt.Errorf("dot: %w: extents %v vs %v", ErrShapeMismatch, ea, eb)
	}

	if ea.NumElements() == 0 {
		return 0, nil
	}

	// Both views inside their tensors: walk the buffers directly.
	if a.inBounds() && b.inBounds() {
		return dotInBounds(a, b), nil
	}

	var sum T
	shift := b.box.Min.Sub(a.box.Min)
	it := a.Iterator()
	for c, ok := it.Next(); ok; c, ok = it.Next() {
		sum += a.At(c) * b.At(c.Add(shift))
	}
	return sum, nil
}

// inBounds reports whether every coordinate of the view lies in its tensor.
func (v View[T]) inBounds() bool {
	return v.src.shape.Contains(v.box.Min) && v.src.shape.Contains(v.box.Max)
}

// dotInBounds is Dot for views known to lie inside their tensors. It visits
// elements in the same order as the generic path, so results are identical.
func dotInBounds[T Numeric](a, b View[T]) T {
	var sum T
	ext := a.Extents()
	sa, sb := a.src.shape, b.src.shape
	da, db := a.src.data, b.src.data
	for z := 0; z < ext.Z; z++ {
		for y := 0; y < ext.Y; y++ {
			rowA := sa.Index(Coord{X: a.box.Min.X, Y: a.box.Min.Y + y, Z: a.box.Min.Z + z})
			rowB := sb.Index(Coord{X: b.box.Min.X, Y: b.box.Min.Y + y, Z: b.box.Min.Z + z})
			ra := da[rowA : rowA+ext.X]
			rb := db[rowB : rowB+ext.X]
			for x := range ra {
				sum += ra[x] * rb[x]
			}
		}
	}
	return sum
}
