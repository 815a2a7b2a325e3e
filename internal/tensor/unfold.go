package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Unfold returns the mode-n unfolding of the array: a 2-D matrix whose rows
// index the chosen mode and whose columns flatten all remaining modes in
// their original relative order.
//
// Example:
//
//	t, _ := tensor.NewDense([]float64{0, 1, 2, 3, 4, 5}, tensor.Shape{2, 3})
//	u, _ := t.Unfold(1) // 3x2 matrix
func (d *Dense) Unfold(mode int) (*mat.Dense, error) {
	if mode < 0 || mode >= d.Order() {
		return nil, fmt.Errorf("Unfold: mode %d out of range [0, %d): %w",
			mode, d.Order(), ErrDimensionMismatch)
	}

	rows := d.shape[mode]
	cols := d.Size() / rows
	out := mat.NewDense(rows, cols, nil)

	strides := d.shape.ComputeStrides()
	colStrides := unfoldColumnStrides(d.shape, mode)

	for flat, v := range d.data {
		row, col := 0, 0
		rem := flat
		for j := 0; j < len(d.shape); j++ {
			idx := rem / strides[j]
			rem %= strides[j]
			if j == mode {
				row = idx
			} else {
				col += idx * colStrides[j]
			}
		}
		out.Set(row, col, v)
	}
	return out, nil
}

// Fold inverts Unfold: it rebuilds a dense array of the given shape from its
// mode-n unfolding. The matrix must be shape[mode] × (product of the
// remaining mode sizes).
func Fold(m *mat.Dense, mode int, shape Shape, modeNames ...string) (*Dense, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("Fold: %v: %w", err, ErrShapeMismatch)
	}
	if mode < 0 || mode >= len(shape) {
		return nil, fmt.Errorf("Fold: mode %d out of range [0, %d): %w",
			mode, len(shape), ErrDimensionMismatch)
	}
	mr, mc := m.Dims()
	if mr != shape[mode] || mr*mc != shape.NumElements() {
		return nil, fmt.Errorf("Fold: %dx%d matrix cannot fold to shape %v along mode %d: %w",
			mr, mc, shape, mode, ErrShapeMismatch)
	}

	data := make([]float64, shape.NumElements())
	strides := shape.ComputeStrides()
	colStrides := unfoldColumnStrides(shape, mode)

	for flat := range data {
		row, col := 0, 0
		rem := flat
		for j := 0; j < len(shape); j++ {
			idx := rem / strides[j]
			rem %= strides[j]
			if j == mode {
				row = idx
			} else {
				col += idx * colStrides[j]
			}
		}
		data[flat] = m.At(row, col)
	}
	return NewDense(data, shape, modeNames...)
}

// unfoldColumnStrides computes row-major strides over all modes except the
// unfolded one; the entry at the unfolded mode stays zero.
func unfoldColumnStrides(shape Shape, mode int) []int {
	strides := make([]int, len(shape))
	s := 1
	for j := len(shape) - 1; j >= 0; j-- {
		if j == mode {
			continue
		}
		strides[j] = s
		s *= shape[j]
	}
	return strides
}
