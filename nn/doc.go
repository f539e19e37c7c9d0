// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn chains the CPU kernels into forward-only network layers.
//
// # Overview
//
// This package contains:
//   - Layers: Conv2D (filters + bias + activation), MaxPool2D
//   - Activations: ReLU, Identity
//   - Initializers: Constant, Uniform, Normal (explicitly seeded)
//   - Utilities: Sequential, Module interface
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/convcore/backend/cpu"
//	    "github.com/born-ml/convcore/nn"
//	    "github.com/born-ml/convcore/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    conv, _ := nn.NewConv2D(nn.ConvConfig[float32]{
//	        Input:      tensor.Shape{X: 28, Y: 28, Z: 1},
//	        Filter:     tensor.Shape{X: 5, Y: 5, Z: 1},
//	        Filters:    6,
//	        Stride:     1,
//	        Padding:    cpu.Valid,
//	        Activation: nn.ReLU[float32],
//	        Weights:    nn.Normal[float32](0, 0.2, 1),
//	    }, backend)
//	    model := nn.NewSequential[float32](conv, nn.NewMaxPool2D[float32](2, 2, backend))
//	    out, err := model.Forward(input)
//	}
//
// There is no backward pass.
package nn
