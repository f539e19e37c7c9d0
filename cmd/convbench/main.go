// Package main provides the convcore benchmark driver.
//
// Usage:
//
//	convbench conv -input 200,200,50 -filter 3,3,50 -filters 7 -workers 8
//	convbench pool -input 2000,2000,20 -window 2 -stride 2 -iters 10
//	convbench conv -filters 16 -save bank.born
//	convbench conv -load bank.born -padding same
//	convbench version
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/born-ml/convcore/internal/backend/cpu"
	"github.com/born-ml/convcore/internal/parallel"
	"github.com/born-ml/convcore/internal/serialization"
	"github.com/born-ml/convcore/internal/tensor"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "conv":
		err = runConv(os.Args[2:])
	case "pool":
		err = runPool(os.Args[2:])
	case "version":
		fmt.Printf("convbench %s\n", version)
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("%s: %v", os.Args[1], err)
	}
}

func usage() {
	fmt.Println("convbench - convolution and max-pooling benchmarks")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  conv       Benchmark Conv2D")
	fmt.Println("  pool       Benchmark MaxPool2D")
	fmt.Println("  version    Show version")
}

// common holds the flags shared by every benchmark.
type common struct {
	input   string
	workers int
	iters   int
	dtype   string
	scale   float64
}

func (c *common) register(fs *flag.FlagSet, defaultInput string) {
	fs.StringVar(&c.input, "input", defaultInput, "Input shape as x,y,z")
	fs.IntVar(&c.workers, "workers", parallel.DefaultConfig().NumWorkers, "Number of worker goroutines")
	fs.IntVar(&c.iters, "iters", 10, "Number of timed iterations")
	fs.StringVar(&c.dtype, "dtype", "float32", "Element type: float32 or float64")
	fs.Float64Var(&c.scale, "scale", 1, "Divide generated values by this factor")
}

func (c *common) backend() (*cpu.CPUBackend, error) {
	if c.iters <= 0 {
		return nil, fmt.Errorf("iters must be > 0, got %d", c.iters)
	}
	if c.scale == 0 {
		return nil, fmt.Errorf("scale must be non-zero")
	}
	return cpu.NewWithConfig(parallel.Config{NumWorkers: c.workers})
}

func runConv(args []string) error {
	fs := flag.NewFlagSet("conv", flag.ExitOnError)
	var c common
	c.register(fs, "200,200,50")
	filterArg := fs.String("filter", "3,3,50", "Filter shape as x,y,z")
	filters := fs.Int("filters", 7, "Number of filters")
	stride := fs.Int("stride", 1, "Convolution stride")
	paddingArg := fs.String("padding", "valid", "Padding: valid or same")
	load := fs.String("load", "", "Read the filter bank from a .born weights file")
	save := fs.String("save", "", "Write the filter bank to a .born weights file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	inShape, err := parseShape(c.input)
	if err != nil {
		return fmt.Errorf("-input: %w", err)
	}
	fShape, err := parseShape(*filterArg)
	if err != nil {
		return fmt.Errorf("-filter: %w", err)
	}
	padding, err := cpu.ParsePadding(*paddingArg)
	if err != nil {
		return err
	}
	backend, err := c.backend()
	if err != nil {
		return err
	}

	dt, err := tensor.ParseDataType(c.dtype)
	if err != nil {
		return err
	}
	switch dt {
	case tensor.Float32:
		return benchConv[float32](backend, c, convArgs{inShape, fShape, *filters, *stride, padding, *load, *save})
	case tensor.Float64:
		return benchConv[float64](backend, c, convArgs{inShape, fShape, *filters, *stride, padding, *load, *save})
	default:
		return fmt.Errorf("unsupported dtype %s", dt)
	}
}

func runPool(args []string) error {
	fs := flag.NewFlagSet("pool", flag.ExitOnError)
	var c common
	c.register(fs, "2000,2000,20")
	window := fs.Int("window", 2, "Pooling window size")
	stride := fs.Int("stride", 2, "Pooling stride")
	if err := fs.Parse(args); err != nil {
		return err
	}

	inShape, err := parseShape(c.input)
	if err != nil {
		return fmt.Errorf("-input: %w", err)
	}
	backend, err := c.backend()
	if err != nil {
		return err
	}

	dt, err := tensor.ParseDataType(c.dtype)
	if err != nil {
		return err
	}
	switch dt {
	case tensor.Float32:
		return benchPool[float32](backend, c, inShape, *window, *stride)
	case tensor.Float64:
		return benchPool[float64](backend, c, inShape, *window, *stride)
	default:
		return fmt.Errorf("unsupported dtype %s", dt)
	}
}

// convArgs holds the conv-specific flags.
type convArgs struct {
	input, filter tensor.Shape
	filters       int
	stride        int
	padding       cpu.Padding
	load, save    string
}

func benchConv[T tensor.Numeric](backend *cpu.CPUBackend, c common, a convArgs) error {
	input, err := createInput[T](a.input, c.scale)
	if err != nil {
		return err
	}

	var filters []*tensor.Tensor[T]
	if a.load != "" {
		dict, _, err := serialization.Load[T](a.load)
		if err != nil {
			return err
		}
		if filters, err = filtersFromDict(dict); err != nil {
			return fmt.Errorf("%s: %w", a.load, err)
		}
	} else if filters, err = createFilters[T](a.filters, a.filter, c.scale); err != nil {
		return err
	}
	if len(filters) == 0 {
		return fmt.Errorf("%w: no filters", tensor.ErrInvalidDimension)
	}
	if a.save != "" {
		meta := map[string]string{"scale": strconv.FormatFloat(c.scale, 'g', -1, 64)}
		if err := serialization.Save(a.save, filterDict(filters), meta); err != nil {
			return err
		}
		log.Printf("saved %d filters to %s", len(filters), a.save)
	}

	printHeader(backend, c)
	fmt.Printf("Conv2D: input=%v filter=%v filters=%d stride=%d padding=%v\n",
		a.input, filters[0].Shape(), len(filters), a.stride, a.padding)

	var out *tensor.Tensor[T]
	start := time.Now()
	for i := 0; i < c.iters; i++ {
		out, err = cpu.Conv2D(backend, filters, input, a.stride, a.padding)
		if err != nil {
			return err
		}
	}
	elapsed := time.Since(start)

	fmt.Printf("output=%v\n", out.Shape())
	fmt.Printf("time = %.6fs (avg of %d)\n", elapsed.Seconds()/float64(c.iters), c.iters)
	return nil
}

func benchPool[T tensor.Numeric](backend *cpu.CPUBackend, c common, inShape tensor.Shape, window, stride int) error {
	input, err := createInput[T](inShape, c.scale)
	if err != nil {
		return err
	}

	printHeader(backend, c)
	fmt.Printf("MaxPool2D: input=%v window=%d stride=%d\n", inShape, window, stride)

	var out *tensor.Tensor[T]
	start := time.Now()
	for i := 0; i < c.iters; i++ {
		out, _, err = cpu.MaxPool2D(backend, input, window, stride)
		if err != nil {
			return err
		}
	}
	elapsed := time.Since(start)

	fmt.Printf("output=%v\n", out.Shape())
	fmt.Printf("time = %.6fs (avg of %d)\n", elapsed.Seconds()/float64(c.iters), c.iters)
	return nil
}

func printHeader(backend *cpu.CPUBackend, c common) {
	fmt.Println(strings.Repeat("-", 40))
	fmt.Printf("backend=%s workers=%d dtype=%s\n", backend.Name(), backend.Workers(), c.dtype)
	fmt.Printf("cpu features: %s\n", cpu.DetectFeatures())
}

// parseShape parses "x,y,z".
func parseShape(s string) (tensor.Shape, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return tensor.Shape{}, fmt.Errorf("shape %q: want x,y,z", s)
	}
	var dims [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return tensor.Shape{}, fmt.Errorf("shape %q: %w", s, err)
		}
		dims[i] = v
	}
	return tensor.NewShape(dims[0], dims[1], dims[2])
}
