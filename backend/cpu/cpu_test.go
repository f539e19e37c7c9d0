// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu_test

import (
	"errors"
	"testing"

	"github.com/born-ml/convcore/backend/cpu"
	"github.com/born-ml/convcore/parallel"
	"github.com/born-ml/convcore/tensor"
)

// TestConv2DShape checks the (5,5,5) * (3,3,5) valid example.
func TestConv2DShape(t *testing.T) {
	input, _ := tensor.New[float32](tensor.Shape{X: 5, Y: 5, Z: 5}, 1)
	filter, _ := tensor.New[float32](tensor.Shape{X: 3, Y: 3, Z: 5}, 1)

	out, err := cpu.Conv2D(cpu.New(), []*tensor.Tensor[float32]{filter}, input, 1, cpu.Valid)
	if err != nil {
		t.Fatalf("Conv2D failed: %v", err)
	}
	if out.Shape() != (tensor.Shape{X: 3, Y: 3, Z: 1}) {
		t.Errorf("shape = %v, want (3, 3, 1)", out.Shape())
	}
	for i, v := range out.Data() {
		if v != 45 {
			t.Errorf("out[%d] = %v, want 45", i, v)
		}
	}
}

// TestMaxPool2DExample checks the 4x4 ramp example.
func TestMaxPool2DExample(t *testing.T) {
	data := make([]float32, 16)
	for i := range data {
		data[i] = float32(i)
	}
	input, err := tensor.FromSlice(tensor.Shape{X: 4, Y: 4, Z: 1}, data)
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}

	backend, err := cpu.NewWithConfig(parallel.Config{NumWorkers: 3})
	if err != nil {
		t.Fatalf("NewWithConfig failed: %v", err)
	}
	maxima, indices, err := cpu.MaxPool2D(backend, input, 2, 2)
	if err != nil {
		t.Fatalf("MaxPool2D failed: %v", err)
	}

	want := []float32{5, 7, 13, 15}
	for i, v := range maxima.Data() {
		if v != want[i] {
			t.Errorf("maxima[%d] = %v, want %v", i, v, want[i])
		}
		src, err := input.At(indices.Data()[i])
		if err != nil || src != v {
			t.Errorf("indices[%d] = %v does not point at %v", i, indices.Data()[i], v)
		}
	}
}

// TestPartitionFacade checks the public partition helpers.
func TestPartitionFacade(t *testing.T) {
	b, err := parallel.Partition(10, 4, 2)
	if err != nil {
		t.Fatalf("Partition failed: %v", err)
	}
	if b.Start != 6 || b.End() != 8 {
		t.Errorf("block = [%d, %d), want [6, 8)", b.Start, b.End())
	}

	if _, err := parallel.Partition(10, 0, 0); !errors.Is(err, parallel.ErrInvalidConfiguration) {
		t.Errorf("error = %v, want ErrInvalidConfiguration", err)
	}
	if _, err := cpu.ParsePadding("same"); err != nil {
		t.Errorf("ParsePadding(same) failed: %v", err)
	}
}
