package decomp

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/tendec-ml/tendec/internal/tensor"
)

// CP holds a tensor in canonical polyadic form: one factor matrix per mode,
// all sharing a common column count R, plus a length-R vector of core values
// that weight the rank-one terms.
type CP struct {
	factors    []*mat.Dense
	coreValues []float64
}

// NewCP creates a CP representation from factor matrices and core values.
// All factor matrices must share the same number of columns R, and exactly
// R core values must be given. Inputs are copied.
//
// Example:
//
//	a := mat.NewDense(3, 2, nil)
//	b := mat.NewDense(4, 2, nil)
//	c := mat.NewDense(5, 2, nil)
//	cp, err := decomp.NewCP([]*mat.Dense{a, b, c}, []float64{1, 1})
func NewCP(factors []*mat.Dense, coreValues []float64) (*CP, error) {
	if len(factors) == 0 {
		return nil, fmt.Errorf("NewCP: at least one factor matrix required: %w", ErrRankMismatch)
	}
	for i, f := range factors {
		if f == nil {
			return nil, fmt.Errorf("NewCP: factor %d is nil: %w", i, tensor.ErrShapeMismatch)
		}
	}
	_, rank := factors[0].Dims()
	for i, f := range factors {
		if _, c := f.Dims(); c != rank {
			return nil, fmt.Errorf("NewCP: factor %d has %d columns, factor 0 has %d: %w",
				i, c, rank, ErrRankMismatch)
		}
	}
	if len(coreValues) != rank {
		return nil, fmt.Errorf("NewCP: %d core values for rank %d: %w",
			len(coreValues), rank, ErrRankMismatch)
	}

	return &CP{
		factors:    copyFactors(factors),
		coreValues: append([]float64(nil), coreValues...),
	}, nil
}

// FactorMatrices returns copies of the per-mode factor matrices.
func (c *CP) FactorMatrices() []*mat.Dense {
	return copyFactors(c.factors)
}

// CoreValues returns a copy of the diagonal core values.
func (c *CP) CoreValues() []float64 {
	return append([]float64(nil), c.coreValues...)
}

// Rank returns the CP rank as a 1-tuple, by convention: a CP decomposition
// has a single scalar rank shared by every mode.
func (c *CP) Rank() tensor.Shape {
	return tensor.Shape{len(c.coreValues)}
}

// Core builds the superdiagonal core array of shape (R, ..., R), one R per
// mode, with coreValues[r] at position (r, ..., r) and zero elsewhere.
// O(R) writes into an O(R^N) buffer; R is small by design.
func (c *CP) Core() *tensor.Dense {
	rank := len(c.coreValues)
	shape := make(tensor.Shape, len(c.factors))
	for i := range shape {
		shape[i] = rank
	}

	data := make([]float64, shape.NumElements())
	step := 0
	for _, s := range shape.ComputeStrides() {
		step += s
	}
	for r, v := range c.coreValues {
		data[r*step] = v
	}
	return mustDense(data, shape)
}

// Reconstruct produces the full dense array by applying the mode product of
// the superdiagonal core with every factor matrix, one mode at a time. The
// result's shape is the factor matrices' row counts.
func (c *CP) Reconstruct() (*tensor.Dense, error) {
	t := c.Core()
	for mode, f := range c.factors {
		var err error
		t, err = tensor.ModeProduct(t, f, mode)
		if err != nil {
			return nil, fmt.Errorf("CP reconstruct, mode %d: %w", mode, err)
		}
	}
	return t, nil
}
