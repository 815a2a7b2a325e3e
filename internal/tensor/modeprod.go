package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ModeProduct contracts mode n of a dense array against a matrix: the array
// is unfolded along the mode, left-multiplied by the matrix, and folded back
// with the mode's size replaced by the matrix's row count. All other modes
// keep their sizes and relative order.
//
// The matrix's column count must equal the array's size along the mode.
//
// Example:
//
//	// t has shape (3, 4, 5); m is 7x4.
//	r, err := tensor.ModeProduct(t, m, 1) // shape (3, 7, 5)
func ModeProduct(t *Dense, m *mat.Dense, mode int) (*Dense, error) {
	if mode < 0 || mode >= t.Order() {
		return nil, fmt.Errorf("ModeProduct: mode %d out of range [0, %d): %w",
			mode, t.Order(), ErrDimensionMismatch)
	}
	mr, mc := m.Dims()
	if mc != t.shape[mode] {
		return nil, fmt.Errorf("ModeProduct: matrix has %d columns, mode %d has size %d: %w",
			mc, mode, t.shape[mode], ErrDimensionMismatch)
	}

	u, err := t.Unfold(mode)
	if err != nil {
		return nil, err
	}

	var prod mat.Dense
	prod.Mul(m, u)

	newShape := t.Shape()
	newShape[mode] = mr
	return Fold(&prod, mode, newShape, t.modeNames...)
}
