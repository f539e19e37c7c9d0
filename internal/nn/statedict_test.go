package nn_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/convcore/internal/backend/cpu"
	"github.com/born-ml/convcore/internal/nn"
	"github.com/born-ml/convcore/internal/serialization"
	"github.com/born-ml/convcore/internal/tensor"
)

func smallConv(t *testing.T, weights nn.Initializer[float32]) *nn.Conv2D[float32] {
	t.Helper()
	conv, err := nn.NewConv2D(nn.ConvConfig[float32]{
		Input:   tensor.Shape{X: 6, Y: 6, Z: 2},
		Filter:  tensor.Shape{X: 3, Y: 3, Z: 2},
		Filters: 3,
		Stride:  1,
		Padding: cpu.Same,
		Weights: weights,
		Bias:    nn.Uniform[float32](-1, 1, 9),
	}, newBackend(t, 2))
	require.NoError(t, err)
	return conv
}

func TestConv2D_StateDict(t *testing.T) {
	conv := smallConv(t, nn.Normal[float32](0, 1, 5))

	dict := conv.StateDict()
	require.Len(t, dict, 4)
	assert.Equal(t, tensor.Shape{X: 3, Y: 1, Z: 1}, dict["bias"].Shape())
	assert.Equal(t, conv.Biases(), dict["bias"].Data())
	for i, f := range conv.Filters() {
		assert.Equal(t, f.Data(), dict[fmt.Sprintf("filter.%d", i)].Data())
	}

	// Exported tensors are copies.
	dict["filter.0"].Data()[0] = 1000
	assert.NotEqual(t, float32(1000), conv.Filters()[0].Data()[0])
}

func TestConv2D_StateDictThroughWeightsFile(t *testing.T) {
	src := smallConv(t, nn.Normal[float32](0, 1, 5))
	dst := smallConv(t, nn.Constant[float32](0))

	var buf bytes.Buffer
	require.NoError(t, serialization.WriteTo(&buf, src.StateDict(), map[string]string{"layer": "conv"}))
	dict, header, err := serialization.ReadFrom[float32](&buf)
	require.NoError(t, err)
	assert.Equal(t, "conv", header.Metadata["layer"])
	require.NoError(t, dst.LoadStateDict(dict))

	input, err := nn.Uniform[float32](-1, 1, 11)(tensor.Shape{X: 6, Y: 6, Z: 2})
	require.NoError(t, err)

	want, err := src.Forward(input)
	require.NoError(t, err)
	got, err := dst.Forward(input)
	require.NoError(t, err)
	assert.Equal(t, want.Data(), got.Data())
}

func TestConv2D_LoadStateDictErrors(t *testing.T) {
	conv := smallConv(t, nil)

	withBias := func(extra map[string]*tensor.Tensor[float32]) map[string]*tensor.Tensor[float32] {
		dict := conv.StateDict()
		for k, v := range extra {
			dict[k] = v
		}
		return dict
	}

	missingBias := conv.StateDict()
	delete(missingBias, "bias")
	assert.Error(t, conv.LoadStateDict(missingBias))

	missingFilter := conv.StateDict()
	delete(missingFilter, "filter.2")
	assert.ErrorIs(t, conv.LoadStateDict(missingFilter), tensor.ErrShapeMismatch)

	assert.ErrorIs(t, conv.LoadStateDict(withBias(map[string]*tensor.Tensor[float32]{
		"filter.3": ones(t, tensor.Shape{X: 3, Y: 3, Z: 2}),
	})), tensor.ErrOutOfRange)

	assert.ErrorIs(t, conv.LoadStateDict(withBias(map[string]*tensor.Tensor[float32]{
		"bias": ones(t, tensor.Shape{X: 2, Y: 1, Z: 1}),
	})), tensor.ErrShapeMismatch)

	assert.Error(t, conv.LoadStateDict(withBias(map[string]*tensor.Tensor[float32]{
		"weight": ones(t, tensor.Shape{X: 1, Y: 1, Z: 1}),
	})))
}
