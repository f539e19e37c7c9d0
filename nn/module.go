// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/convcore/internal/serialization"
	"github.com/born-ml/convcore/tensor"
)

// Stateful is a module whose parameters can be exported and restored.
//
// Conv2D implements it; MaxPool2D and Sequential have no parameters.
type Stateful[T tensor.Numeric] interface {
	StateDict() map[string]*tensor.Tensor[T]
	LoadStateDict(dict map[string]*tensor.Tensor[T]) error
}

// Header is the JSON header of a .born weights file.
type Header = serialization.Header

// Save writes a module's parameters to a .born weights file.
//
// Example:
//
//	conv, _ := nn.NewConv2D(cfg, backend)
//	err := nn.Save[float32](conv, "conv.born", map[string]string{"layer": "conv1"})
func Save[T tensor.Numeric](module Stateful[T], path string, metadata map[string]string) error {
	return serialization.Save(path, module.StateDict(), metadata)
}

// Load reads a .born weights file into module and returns the file header.
//
// Example:
//
//	conv, _ := nn.NewConv2D(cfg, backend)
//	header, err := nn.Load[float32]("conv.born", conv)
func Load[T tensor.Numeric](path string, module Stateful[T]) (Header, error) {
	dict, header, err := serialization.Load[T](path)
	if err != nil {
		return Header{}, err
	}
	if err := module.LoadStateDict(dict); err != nil {
		return Header{}, err
	}
	return header, nil
}
