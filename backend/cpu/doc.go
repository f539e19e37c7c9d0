// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the CPU convolution and max-pooling kernels.
//
// # Overview
//
//   - Pure Go implementation (no CGO)
//   - Cross-correlation with valid or same padding; same padding reads zeros
//     outside the input instead of materialising a padded copy
//   - Max pooling that also returns the source coordinate of each maximum
//   - Work split across a fixed number of goroutines: filters for Conv2D,
//     channels for MaxPool2D
//
// # Shapes
//
// Tensors are [X, Y, Z]. Conv2D takes an [X, Y, D] input and filters of
// shape [Fx, Fy, D] and returns [outX, outY, len(filters)]. MaxPool2D keeps
// the depth and shrinks X and Y by the window.
//
// # Determinism
//
// Every output element is written by exactly one worker and computed in a
// fixed order, so results are bit-identical for any worker count.
package cpu
