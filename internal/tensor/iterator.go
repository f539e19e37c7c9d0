package tensor

import "iter"

// CoordIterator walks every coordinate of a Box with x varying fastest, then
// y, then z. It is finite and restartable and never touches tensor data.
//
// Example:
//
//	it := tensor.NewCoordIterator(box)
//	for c, ok := it.Next(); ok; c, ok = it.Next() {
//	    ...
//	}
type CoordIterator struct {
	box  Box
	cur  Coord
	left int
}

// NewCoordIterator creates an iterator positioned before the first coordinate.
func NewCoordIterator(b Box) *CoordIterator {
	it := &CoordIterator{box: b}
	it.Reset()
	return it
}

// Reset rewinds the iterator to the first coordinate of the box.
func (it *CoordIterator) Reset() {
	it.cur = it.box.Min
	it.left = it.box.Volume()
}

// Len returns the number of coordinates not yet produced.
func (it *CoordIterator) Len() int {
	return it.left
}

// Next returns the next coordinate, or false once the box is exhausted.
func (it *CoordIterator) Next() (Coord, bool) {
	if it.left == 0 {
		return Coord{}, false
	}
	c := it.cur
	it.left--

	it.cur.X++
	if it.cur.X > it.box.Max.X {
		it.cur.X = it.box.Min.X
		it.cur.Y++
		if it.cur.Y > it.box.Max.Y {
			it.cur.Y = it.box.Min.Y
			it.cur.Z++
		}
	}
	return c, true
}

// All returns the coordinates of b in iterator order as a range-over-func
// sequence.
func (b Box) All() iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		it := NewCoordIterator(b)
		for c, ok := it.Next(); ok; c, ok = it.Next() {
			if !yield(c) {
				return
			}
		}
	}
}
