// Copyright 2026 The Tendec Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for dense arrays in Tendec.
//
// The package defines the core types for tensor reconstruction:
//   - Dense: immutable N-dimensional array over a contiguous float64 buffer
//   - Shape: ordered mode sizes
//   - ModeProduct, Fold: the mode-n contraction primitives
//
// Example:
//
//	t, err := tensor.NewDense([]float64{0, 1, 2, 3, 4, 5}, tensor.Shape{2, 3})
//	u, err := t.Unfold(1) // mode-1 unfolding as a gonum matrix
package tensor

import (
	"gonum.org/v1/gonum/mat"

	"github.com/tendec-ml/tendec/internal/tensor"
)

// Shape represents the dimensions of a dense array, one entry per mode.
// Example: Shape{2, 3, 4} is a 3-D array with dimensions 2×3×4.
type Shape = tensor.Shape

// Dense is an immutable N-dimensional array over a contiguous row-major
// float64 buffer.
type Dense = tensor.Dense

// Sentinel errors. Match with errors.Is.
var (
	ErrShapeMismatch     = tensor.ErrShapeMismatch
	ErrDimensionMismatch = tensor.ErrDimensionMismatch
	ErrIndexOutOfRange   = tensor.ErrIndexOutOfRange
)

// NewDense creates a dense array from a buffer and a shape; the buffer is
// copied. Optional mode names must come one per mode and default to
// "mode-0" ... "mode-(N-1)".
func NewDense(data []float64, shape Shape, modeNames ...string) (*Dense, error) {
	return tensor.NewDense(data, shape, modeNames...)
}

// ModeProduct contracts mode n of a dense array against a matrix, replacing
// that mode's size with the matrix's row count.
func ModeProduct(t *Dense, m *mat.Dense, mode int) (*Dense, error) {
	return tensor.ModeProduct(t, m, mode)
}

// Fold rebuilds a dense array of the given shape from its mode-n unfolding.
func Fold(m *mat.Dense, mode int, shape Shape, modeNames ...string) (*Dense, error) {
	return tensor.Fold(m, mode, shape, modeNames...)
}

// Creation functions

// Zeros creates a dense array filled with zeros.
func Zeros(shape Shape) *Dense {
	return tensor.Zeros(shape)
}

// Full creates a dense array filled with a specific value.
func Full(shape Shape, value float64) *Dense {
	return tensor.Full(shape, value)
}

// Arange creates a 1-D dense array with values 0, 1, ..., n-1.
func Arange(n int) *Dense {
	return tensor.Arange(n)
}

// Eye creates an n×n identity factor matrix.
func Eye(n int) *mat.Dense {
	return tensor.Eye(n)
}
