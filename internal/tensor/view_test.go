package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordIterator_Order(t *testing.T) {
	box := Box{Min: Coord{X: 1, Y: 0, Z: 5}, Max: Coord{X: 2, Y: 1, Z: 6}}
	it := NewCoordIterator(box)
	assert.Equal(t, 8, it.Len())

	want := []Coord{
		{1, 0, 5}, {2, 0, 5}, {1, 1, 5}, {2, 1, 5},
		{1, 0, 6}, {2, 0, 6}, {1, 1, 6}, {2, 1, 6},
	}
	var got []Coord
	for c, ok := it.Next(); ok; c, ok = it.Next() {
		got = append(got, c)
	}
	assert.Equal(t, want, got)
	assert.Equal(t, 0, it.Len())

	_, ok := it.Next()
	assert.False(t, ok, "exhausted iterator stays exhausted")

	it.Reset()
	first, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, want[0], first)
}

func TestCoordIterator_EmptyBox(t *testing.T) {
	box := Box{Min: Coord{X: 3}, Max: Coord{X: 2, Y: 4, Z: 4}}
	assert.Equal(t, 0, box.Volume())

	it := NewCoordIterator(box)
	_, ok := it.Next()
	assert.False(t, ok)
}

func TestBoxAll_MatchesIterator(t *testing.T) {
	box := Box{Min: Coord{X: -1, Y: -1}, Max: Coord{X: 1, Y: 0, Z: 1}}

	var fromSeq []Coord
	for c := range box.All() {
		fromSeq = append(fromSeq, c)
	}

	it := NewCoordIterator(box)
	var fromIt []Coord
	for c, ok := it.Next(); ok; c, ok = it.Next() {
		fromIt = append(fromIt, c)
	}

	assert.Equal(t, fromIt, fromSeq)
	assert.Len(t, fromSeq, box.Volume())
}

func TestBoxAll_EarlyBreak(t *testing.T) {
	n := 0
	for range BoxOf(Shape{X: 4, Y: 4, Z: 4}).All() {
		n++
		if n == 5 {
			break
		}
	}
	assert.Equal(t, 5, n)
}

func TestViewAt_ZeroFill(t *testing.T) {
	tn, err := New[float32](Shape{X: 2, Y: 2, Z: 1}, 3)
	require.NoError(t, err)

	v := tn.Slice(Coord{X: -1, Y: -1}, Coord{X: 2, Y: 2})
	assert.Equal(t, Shape{X: 4, Y: 4, Z: 1}, v.Extents())

	assert.Equal(t, float32(0), v.At(Coord{X: -1, Y: -1}))
	assert.Equal(t, float32(0), v.At(Coord{X: 2, Y: 0}))
	assert.Equal(t, float32(0), v.At(Coord{Z: 1}))
	assert.Equal(t, float32(3), v.At(Coord{X: 1, Y: 1}))
}

func TestDot_AllOnes(t *testing.T) {
	a, err := New[float32](Shape{X: 3, Y: 3, Z: 1}, 1)
	require.NoError(t, err)
	b, err := New[float32](Shape{X: 3, Y: 3, Z: 1}, 1)
	require.NoError(t, err)

	got, err := Dot(a.Flatten(), b.Flatten())
	require.NoError(t, err)
	assert.Equal(t, float32(9), got)
}

func TestDot_OffsetWindows(t *testing.T) {
	// 4x4x1 holding 0..15; a 2x2 window at (2,2) against an all-ones filter.
	in, err := Zeros[int64](Shape{X: 4, Y: 4, Z: 1})
	require.NoError(t, err)
	fillSequential(in)
	ones, err := New[int64](Shape{X: 2, Y: 2, Z: 1}, 1)
	require.NoError(t, err)

	got, err := Dot(in.Slice(Coord{X: 2, Y: 2}, Coord{X: 3, Y: 3}), ones.Flatten())
	require.NoError(t, err)
	assert.Equal(t, int64(10+11+14+15), got)
}

func TestDot_PartiallyOutside(t *testing.T) {
	// All-ones 3x3 input; a 3x3 window centred on the corner only sees 4 cells.
	in, err := New[float64](Shape{X: 3, Y: 3, Z: 1}, 1)
	require.NoError(t, err)
	k, err := New[float64](Shape{X: 3, Y: 3, Z: 1}, 1)
	require.NoError(t, err)

	got, err := Dot(in.Slice(Coord{X: -1, Y: -1}, Coord{X: 1, Y: 1}), k.Flatten())
	require.NoError(t, err)
	assert.Equal(t, 4.0, got)

	got, err = Dot(in.Slice(Coord{X: 0, Y: -1}, Coord{X: 2, Y: 1}), k.Flatten())
	require.NoError(t, err)
	assert.Equal(t, 6.0, got)
}

func TestDot_FastPathMatchesGeneric(t *testing.T) {
	in, err := Zeros[float32](Shape{X: 5, Y: 5, Z: 3})
	require.NoError(t, err)
	fillSequential(in)
	for i, v := range in.Data() {
		in.Data()[i] = v / 7
	}
	k, err := Zeros[float32](Shape{X: 3, Y: 3, Z: 3})
	require.NoError(t, err)
	fillSequential(k)

	window := in.Slice(Coord{X: 1, Y: 2}, Coord{X: 3, Y: 4, Z: 2})
	fast, err := Dot(window, k.Flatten())
	require.NoError(t, err)

	var slow float32
	shift := k.Flatten().Box().Min.Sub(window.Box().Min)
	for c := range window.Box().All() {
		slow += window.At(c) * k.Flatten().At(c.Add(shift))
	}
	assert.Equal(t, slow, fast)
}

func TestDot_ShapeMismatch(t *testing.T) {
	a, err := Zeros[float32](Shape{X: 3, Y: 3, Z: 1})
	require.NoError(t, err)
	b, err := Zeros[float32](Shape{X: 3, Y: 3, Z: 2})
	require.NoError(t, err)

	_, err = Dot(a.Flatten(), b.Flatten())
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestArgMax(t *testing.T) {
	in, err := Zeros[float32](Shape{X: 4, Y: 4, Z: 1})
	require.NoError(t, err)
	fillSequential(in)

	c, err := ArgMax(in.Slice(Coord{X: 0, Y: 0}, Coord{X: 1, Y: 1}))
	require.NoError(t, err)
	assert.Equal(t, Coord{X: 1, Y: 1}, c)

	c, err = ArgMax(in.Flatten())
	require.NoError(t, err)
	assert.Equal(t, Coord{X: 3, Y: 3}, c)
}

func TestArgMax_FirstOccurrenceWins(t *testing.T) {
	in, err := New[int32](Shape{X: 3, Y: 3, Z: 2}, 5)
	require.NoError(t, err)

	c, err := ArgMax(in.Flatten())
	require.NoError(t, err)
	assert.Equal(t, Coord{}, c)

	require.NoError(t, in.Set(Coord{X: 2, Y: 0, Z: 1}, 9))
	require.NoError(t, in.Set(Coord{X: 0, Y: 1, Z: 1}, 9))
	c, err = ArgMax(in.Flatten())
	require.NoError(t, err)
	assert.Equal(t, Coord{X: 2, Y: 0, Z: 1}, c)
}

func TestArgMax_Empty(t *testing.T) {
	in, err := Zeros[float32](Shape{X: 2, Y: 2, Z: 1})
	require.NoError(t, err)

	_, err = ArgMax(in.Slice(Coord{X: 1}, Coord{X: 0, Y: 1}))
	assert.ErrorIs(t, err, ErrInvalidDimension)
}
