package tensor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fillSequential writes 0, 1, 2, ... in iterator order.
func fillSequential[T Numeric](t *Tensor[T]) {
	i := 0
	for c := range BoxOf(t.Shape()).All() {
		_ = t.Set(c, T(i))
		i++
	}
}

func TestDataTypeSize(t *testing.T) {
	tests := []struct {
		dtype DataType
		size  int
	}{
		{Float32, 4},
		{Float64, 8},
		{Int32, 4},
		{Int64, 8},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.size, tt.dtype.Size(), tt.dtype.String())
	}
}

func TestParseDataType(t *testing.T) {
	for _, dt := range []DataType{Float32, Float64, Int32, Int64} {
		got, err := ParseDataType(dt.String())
		require.NoError(t, err)
		assert.Equal(t, dt, got)
	}

	_, err := ParseDataType("complex64")
	assert.Error(t, err)
}

func TestDataTypeOf(t *testing.T) {
	assert.Equal(t, Float32, DataTypeOf[float32]())
	assert.Equal(t, Float64, DataTypeOf[float64]())
	assert.Equal(t, Int32, DataTypeOf[int32]())
	assert.Equal(t, Int64, DataTypeOf[int64]())
}

func TestNewShape(t *testing.T) {
	s, err := NewShape(2, 3, 4)
	require.NoError(t, err)
	assert.Equal(t, 24, s.NumElements())

	empty, err := NewShape(0, 3, 4)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.NumElements())

	for _, bad := range []Shape{{-1, 1, 1}, {1, -1, 1}, {1, 1, -1}} {
		_, err := NewShape(bad.X, bad.Y, bad.Z)
		assert.ErrorIs(t, err, ErrInvalidShape, "shape %v", bad)
	}
}

func TestCoordArithmetic(t *testing.T) {
	a := Coord{X: 1, Y: -2, Z: 3}
	b := Coord{X: 4, Y: 5, Z: -6}

	assert.Equal(t, Coord{X: 5, Y: 3, Z: -3}, a.Add(b))
	assert.Equal(t, Coord{X: -3, Y: -7, Z: 9}, a.Sub(b))
	assert.Equal(t, a, a.Add(b).Sub(b))
}

func TestNew_Fill(t *testing.T) {
	tn, err := New[float32](Shape{X: 2, Y: 3, Z: 2}, 1.5)
	require.NoError(t, err)

	assert.Equal(t, Shape{X: 2, Y: 3, Z: 2}, tn.Shape())
	assert.Len(t, tn.Data(), 12)
	for _, v := range tn.Data() {
		assert.Equal(t, float32(1.5), v)
	}
}

func TestNew_InvalidShape(t *testing.T) {
	_, err := New[float32](Shape{X: 2, Y: -3, Z: 2}, 0)
	assert.ErrorIs(t, err, ErrInvalidShape)
}

func TestNew_ElementCountOverflow(t *testing.T) {
	for _, s := range []Shape{
		{X: 1 << 32, Y: 1 << 32, Z: 1},
		{X: 1 << 21, Y: 1 << 21, Z: 1 << 21},
		{X: math.MaxInt, Y: 2, Z: 1},
	} {
		tn, err := New[float32](s, 1)
		assert.ErrorIs(t, err, ErrInvalidShape, "shape %v", s)
		assert.Nil(t, tn)

		_, err = FromSlice[float32](s, nil)
		assert.ErrorIs(t, err, ErrInvalidShape, "shape %v", s)
	}

	// Largest count that still fits is accepted by Validate.
	assert.NoError(t, Shape{X: math.MaxInt, Y: 1, Z: 1}.Validate())
}

func TestFromSlice(t *testing.T) {
	src := []int32{0, 1, 2, 3, 4, 5}
	tn, err := FromSlice(Shape{X: 3, Y: 2, Z: 1}, src)
	require.NoError(t, err)

	// x-fastest layout.
	v, err := tn.At(Coord{X: 2, Y: 1})
	require.NoError(t, err)
	assert.Equal(t, int32(5), v)

	// The tensor owns a copy.
	src[0] = 42
	v, _ = tn.At(Coord{})
	assert.Equal(t, int32(0), v)

	_, err = FromSlice(Shape{X: 2, Y: 2, Z: 2}, src)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestAtSet_OutOfRange(t *testing.T) {
	tn, err := Zeros[float64](Shape{X: 2, Y: 2, Z: 2})
	require.NoError(t, err)

	outside := []Coord{
		{X: -1}, {Y: -1}, {Z: -1},
		{X: 2}, {Y: 2}, {Z: 2},
	}
	for _, c := range outside {
		_, err := tn.At(c)
		assert.ErrorIs(t, err, ErrOutOfRange, "At(%v)", c)
		assert.ErrorIs(t, tn.Set(c, 1), ErrOutOfRange, "Set(%v)", c)
	}

	require.NoError(t, tn.Set(Coord{X: 1, Y: 1, Z: 1}, 7))
	v, err := tn.At(Coord{X: 1, Y: 1, Z: 1})
	require.NoError(t, err)
	assert.Equal(t, 7.0, v)
	assert.Equal(t, 7.0, tn.Data()[7])
}

func TestClone_Independent(t *testing.T) {
	orig, err := New[float32](Shape{X: 2, Y: 2, Z: 1}, 1)
	require.NoError(t, err)

	clone := orig.Clone()
	require.NoError(t, clone.Set(Coord{}, 9))

	v, _ := orig.At(Coord{})
	assert.Equal(t, float32(1), v)
	v, _ = clone.At(Coord{})
	assert.Equal(t, float32(9), v)
	assert.Equal(t, orig.Shape(), clone.Shape())
}

func TestFlatten(t *testing.T) {
	tn, err := Zeros[int64](Shape{X: 3, Y: 2, Z: 4})
	require.NoError(t, err)

	v := tn.Flatten()
	assert.Equal(t, tn.Shape(), v.Extents())
	assert.Equal(t, Coord{}, v.Box().Min)
	assert.Equal(t, Coord{X: 2, Y: 1, Z: 3}, v.Box().Max)
	assert.Same(t, tn, v.Tensor())
}

func TestTensorOfCoords(t *testing.T) {
	tn, err := New(Shape{X: 2, Y: 1, Z: 1}, Coord{X: -1, Y: -1, Z: -1})
	require.NoError(t, err)

	c, err := tn.At(Coord{X: 1})
	require.NoError(t, err)
	assert.Equal(t, Coord{X: -1, Y: -1, Z: -1}, c)
}
