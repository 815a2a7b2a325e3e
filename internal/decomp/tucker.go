package decomp

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/tendec-ml/tendec/internal/tensor"
)

// Tucker holds a tensor in Tucker form: one factor matrix per mode plus a
// dense core array whose shape is the multilinear rank tuple. Unlike CP's
// superdiagonal core, every core position carries a value.
type Tucker struct {
	factors []*mat.Dense
	core    *tensor.Dense
}

// NewTucker creates a Tucker representation from factor matrices and a dense
// core. Factor matrix n must have exactly core.Shape()[n] columns. The
// factor matrices are copied; the core is immutable and shared.
func NewTucker(factors []*mat.Dense, core *tensor.Dense) (*Tucker, error) {
	if core == nil {
		return nil, fmt.Errorf("NewTucker: core is nil: %w", tensor.ErrShapeMismatch)
	}
	for i, f := range factors {
		if f == nil {
			return nil, fmt.Errorf("NewTucker: factor %d is nil: %w", i, tensor.ErrShapeMismatch)
		}
	}
	if len(factors) != core.Order() {
		return nil, fmt.Errorf("NewTucker: %d factor matrices for an order-%d core: %w",
			len(factors), core.Order(), ErrRankMismatch)
	}
	shape := core.Shape()
	for i, f := range factors {
		if _, c := f.Dims(); c != shape[i] {
			return nil, fmt.Errorf("NewTucker: factor %d has %d columns, core mode %d has size %d: %w",
				i, c, i, shape[i], ErrRankMismatch)
		}
	}

	return &Tucker{
		factors: copyFactors(factors),
		core:    core,
	}, nil
}

// FactorMatrices returns copies of the per-mode factor matrices.
func (t *Tucker) FactorMatrices() []*mat.Dense {
	return copyFactors(t.factors)
}

// CoreValues returns the dense core array.
func (t *Tucker) CoreValues() *tensor.Dense {
	return t.core
}

// MultilinearRank returns the core's shape: one rank per mode.
func (t *Tucker) MultilinearRank() tensor.Shape {
	return t.core.Shape()
}

// Core returns the dense core array. For Tucker this is the stored core
// itself; no construction is needed.
func (t *Tucker) Core() *tensor.Dense {
	return t.core
}

// Reconstruct produces the full dense array by applying the mode product of
// the core with every factor matrix, one mode at a time.
func (t *Tucker) Reconstruct() (*tensor.Dense, error) {
	out := t.core
	for mode, f := range t.factors {
		var err error
		out, err = tensor.ModeProduct(out, f, mode)
		if err != nil {
			return nil, fmt.Errorf("Tucker reconstruct, mode %d: %w", mode, err)
		}
	}
	return out, nil
}
