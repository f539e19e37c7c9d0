package nn

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/born-ml/convcore/internal/backend/cpu"
	"github.com/born-ml/convcore/internal/parallel"
	"github.com/born-ml/convcore/internal/tensor"
)

// ConvConfig describes a convolutional layer.
type ConvConfig[T tensor.Numeric] struct {
	Input      tensor.Shape  // Expected input shape.
	Filter     tensor.Shape  // Shape of each filter; Filter.Z must equal Input.Z.
	Filters    int           // Number of filters (output depth).
	Stride     int           // Window step, > 0.
	Padding    cpu.Padding   // Valid or Same.
	Activation Activation[T] // Applied after the bias; nil means identity.

	// Optional initializers. When nil, filters and biases start at zero and
	// are expected to be provided with Load.
	Weights Initializer[T]
	Bias    Initializer[T]
}

// Conv2D is a 2D convolutional layer.
//
// Performs: output(x, y, f) = activation(conv(input, filter_f)(x, y) + bias_f)
//
// Input shape:  cfg.Input
// Filter shape: cfg.Filter, one per output channel
// Output shape: see cpu.ConvOutputShape
//
// Example:
//
//	conv, err := nn.NewConv2D(nn.ConvConfig[float32]{
//	    Input:      tensor.Shape{X: 200, Y: 200, Z: 50},
//	    Filter:     tensor.Shape{X: 3, Y: 3, Z: 50},
//	    Filters:    7,
//	    Stride:     1,
//	    Padding:    cpu.Valid,
//	    Activation: nn.ReLU[float32],
//	}, backend)
type Conv2D[T tensor.Numeric] struct {
	cfg    ConvConfig[T]
	output tensor.Shape

	filters []*tensor.Tensor[T]
	biases  []T

	backend *cpu.CPUBackend
}

// NewConv2D validates cfg and creates the layer. A nil backend means
// cpu.New().
func NewConv2D[T tensor.Numeric](cfg ConvConfig[T], backend *cpu.CPUBackend) (*Conv2D[T], error) {
	if backend == nil {
		backend = cpu.New()
	}
	if cfg.Filters <= 0 {
		return nil, fmt.Errorf("conv2d: %w: %d filters", tensor.ErrInvalidDimension, cfg.Filters)
	}
	if err := cfg.Input.Validate(); err != nil {
		return nil, fmt.Errorf("conv2d: input: %w", err)
	}
	if err := cfg.Filter.Validate(); err != nil {
		return nil, fmt.Errorf("conv2d: filter: %w", err)
	}
	if cfg.Filter.Z != cfg.Input.Z {
		return nil, fmt.Errorf("conv2d: %w: filter depth %d != input depth %d",
			tensor.ErrShapeMismatch, cfg.Filter.Z, cfg.Input.Z)
	}
	out, err := cpu.ConvOutputShape(cfg.Input, cfg.Filter, cfg.Filters, cfg.Stride, cfg.Padding)
	if err != nil {
		return nil, fmt.Errorf("conv2d: %w", err)
	}

	c := &Conv2D[T]{
		cfg:     cfg,
		output:  out,
		filters: make([]*tensor.Tensor[T], cfg.Filters),
		biases:  make([]T, cfg.Filters),
		backend: backend,
	}

	weights := cfg.Weights
	if weights == nil {
		weights = Constant[T](0)
	}
	for i := range c.filters {
		f, err := weights(cfg.Filter)
		if err != nil {
			return nil, fmt.Errorf("conv2d: filter %d: %w", i, err)
		}
		c.filters[i] = f
	}

	if cfg.Bias != nil {
		for i := range c.biases {
			b, err := cfg.Bias(tensor.Shape{X: 1, Y: 1, Z: 1})
			if err != nil {
				return nil, fmt.Errorf("conv2d: bias %d: %w", i, err)
			}
			c.biases[i] = b.Data()[0]
		}
	}

	return c, nil
}

// Load replaces the layer's filters and biases. Filters are cloned, so the
// caller keeps ownership of its tensors.
func (c *Conv2D[T]) Load(filters []*tensor.Tensor[T], biases []T) error {
	if len(filters) != c.cfg.Filters || len(biases) != c.cfg.Filters {
		return fmt.Errorf("conv2d: %w: got %d filters and %d biases, want %d",
			tensor.ErrShapeMismatch, len(filters), len(biases), c.cfg.Filters)
	}
	loaded := make([]*tensor.Tensor[T], len(filters))
	for i, f := range filters {
		if f == nil || f.Shape() != c.cfg.Filter {
			return fmt.Errorf("conv2d: %w: filter %d does not have shape %v",
				tensor.ErrShapeMismatch, i, c.cfg.Filter)
		}
		loaded[i] = f.Clone()
	}

	c.filters = loaded
	c.biases = append(c.biases[:0], biases...)
	return nil
}

// Forward computes activation(conv(input) + bias).
func (c *Conv2D[T]) Forward(input *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	if input == nil || input.Shape() != c.cfg.Input {
		return nil, fmt.Errorf("conv2d: %w: input does not have shape %v", tensor.ErrShapeMismatch, c.cfg.Input)
	}

	out, err := cpu.Conv2D(c.backend, c.filters, input, c.cfg.Stride, c.cfg.Padding)
	if err != nil {
		return nil, err
	}

	// Each output plane z belongs to filter z.
	s := out.Shape()
	plane := s.X * s.Y
	data := out.Data()
	err = parallel.For(len(c.biases), func(z int) {
		p := data[z*plane : (z+1)*plane]
		b := c.biases[z]
		for i := range p {
			p[i] += b
		}
		c.cfg.Activation.applySlice(p)
	}, c.backend.Config())
	if err != nil {
		return nil, fmt.Errorf("conv2d: %w", err)
	}

	return out, nil
}

// OutputShape returns the shape Forward produces.
func (c *Conv2D[T]) OutputShape() tensor.Shape {
	return c.output
}

// Filters returns the layer's filter bank.
func (c *Conv2D[T]) Filters() []*tensor.Tensor[T] {
	return c.filters
}

// Biases returns one bias per filter.
func (c *Conv2D[T]) Biases() []T {
	return c.biases
}

// StateDict exports the layer's parameters as "filter.<i>" tensors plus a
// "bias" tensor of shape {Filters, 1, 1}. The tensors are copies.
func (c *Conv2D[T]) StateDict() map[string]*tensor.Tensor[T] {
	dict := make(map[string]*tensor.Tensor[T], len(c.filters)+1)
	for i, f := range c.filters {
		dict["filter."+strconv.Itoa(i)] = f.Clone()
	}
	bias, _ := tensor.FromSlice(tensor.Shape{X: len(c.biases), Y: 1, Z: 1}, c.biases)
	dict["bias"] = bias
	return dict
}

// LoadStateDict is the inverse of StateDict. Unknown keys are rejected.
func (c *Conv2D[T]) LoadStateDict(dict map[string]*tensor.Tensor[T]) error {
	filters := make([]*tensor.Tensor[T], c.cfg.Filters)
	var biases []T

	for name, t := range dict {
		if name == "bias" {
			if t == nil || t.Shape() != (tensor.Shape{X: c.cfg.Filters, Y: 1, Z: 1}) {
				return fmt.Errorf("conv2d: %w: bias must have shape {%d, 1, 1}",
					tensor.ErrShapeMismatch, c.cfg.Filters)
			}
			biases = t.Data()
			continue
		}

		idx, ok := strings.CutPrefix(name, "filter.")
		if !ok {
			return fmt.Errorf("conv2d: unexpected parameter %q", name)
		}
		i, err := strconv.Atoi(idx)
		if err != nil || i < 0 || i >= len(filters) {
			return fmt.Errorf("conv2d: %w: parameter %q", tensor.ErrOutOfRange, name)
		}
		filters[i] = t
	}

	if biases == nil {
		return fmt.Errorf("conv2d: missing parameter %q", "bias")
	}
	return c.Load(filters, biases)
}
