package decomp

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/tendec-ml/tendec/internal/tensor"
)

// TT holds a tensor in tensor-train form: an ordered chain of cores. The
// first core has shape [I_1, R_1], the last [R_{N-1}, I_N], and interior
// cores [R_{k-1}, I_k, R_k]; adjacent cores share their link dimension.
type TT struct {
	cores []*tensor.Dense
}

// NewTT creates a tensor-train representation from an ordered chain of
// cores. The chain must contain at least two cores: a one-mode tensor is
// just a dense array and needs no train. Cores are immutable and shared.
func NewTT(cores []*tensor.Dense) (*TT, error) {
	if len(cores) < 2 {
		return nil, fmt.Errorf("NewTT: a train needs at least two cores, got %d: %w",
			len(cores), tensor.ErrShapeMismatch)
	}
	for i, c := range cores {
		if c == nil {
			return nil, fmt.Errorf("NewTT: core %d is nil: %w", i, tensor.ErrShapeMismatch)
		}
		boundary := i == 0 || i == len(cores)-1
		if boundary && c.Order() != 2 {
			return nil, fmt.Errorf("NewTT: core %d must have order 2, got %d: %w",
				i, c.Order(), tensor.ErrShapeMismatch)
		}
		if !boundary && c.Order() != 3 {
			return nil, fmt.Errorf("NewTT: core %d must have order 3, got %d: %w",
				i, c.Order(), tensor.ErrShapeMismatch)
		}
	}
	for i := 0; i < len(cores)-1; i++ {
		trailing := trailingRank(cores[i])
		leading := cores[i+1].Shape()[0]
		if trailing != leading {
			return nil, fmt.Errorf("NewTT: core %d ends with rank %d, core %d starts with rank %d: %w",
				i, trailing, i+1, leading, ErrLinkRankMismatch)
		}
	}

	return &TT{cores: append([]*tensor.Dense(nil), cores...)}, nil
}

// trailingRank returns a core's last dimension: its link to the next core.
func trailingRank(c *tensor.Dense) int {
	shape := c.Shape()
	return shape[len(shape)-1]
}

// Cores returns the ordered chain of cores.
func (t *TT) Cores() []*tensor.Dense {
	return append([]*tensor.Dense(nil), t.cores...)
}

// Core returns the i-th core of the chain.
func (t *TT) Core(i int) (*tensor.Dense, error) {
	if i < 0 || i >= len(t.cores) {
		return nil, fmt.Errorf("Core: index %d out of range [0, %d): %w",
			i, len(t.cores), tensor.ErrIndexOutOfRange)
	}
	return t.cores[i], nil
}

// Order returns the number of physical modes, which equals the number of
// cores in the chain.
func (t *TT) Order() int {
	return len(t.cores)
}

// TTRank returns the tuple of link dimensions shared between consecutive
// cores; it has Order()-1 entries.
func (t *TT) TTRank() tensor.Shape {
	ranks := make(tensor.Shape, len(t.cores)-1)
	for i := range ranks {
		ranks[i] = trailingRank(t.cores[i])
	}
	return ranks
}

// FullShape returns each core's physical (non-link) dimension: the shape of
// the reconstructed tensor.
func (t *TT) FullShape() tensor.Shape {
	shape := make(tensor.Shape, len(t.cores))
	for i, c := range t.cores {
		cs := c.Shape()
		if i == 0 {
			shape[i] = cs[0]
		} else {
			shape[i] = cs[1]
		}
	}
	return shape
}

// Reconstruct contracts the chain left to right. The accumulator starts as
// the first core, viewed as an [I_1, R_1] matrix, and after folding in core
// k holds [I_1*...*I_k, R_k]. Each step reshapes core k to
// [R_{k-1}, I_k*R_k], multiplies, and reshapes the product to
// [prefix*I_k, R_k]. The accumulator is bounded by prefix*max-rank; the full
// tensor only materialises at the final step.
//
// The reshapes reinterpret contiguous row-major buffers; no element moves.
func (t *TT) Reconstruct() (*tensor.Dense, error) {
	first := t.cores[0].Shape()
	acc := mat.NewDense(first[0], first[1], t.cores[0].Data())
	prefix := first[0]

	for k := 1; k < len(t.cores)-1; k++ {
		cs := t.cores[k].Shape() // [R_{k-1}, I_k, R_k]
		core := mat.NewDense(cs[0], cs[1]*cs[2], t.cores[k].Data())

		var prod mat.Dense
		prod.Mul(acc, core) // [prefix, I_k*R_k]

		prefix *= cs[1]
		acc = mat.NewDense(prefix, cs[2], prod.RawMatrix().Data)
	}

	last := t.cores[len(t.cores)-1].Shape() // [R_{N-1}, I_N]
	lastMat := mat.NewDense(last[0], last[1], t.cores[len(t.cores)-1].Data())

	var prod mat.Dense
	prod.Mul(acc, lastMat) // [I_1*...*I_{N-1}, I_N]

	full, err := tensor.NewDense(prod.RawMatrix().Data, t.FullShape())
	if err != nil {
		return nil, fmt.Errorf("TT reconstruct: %w", err)
	}
	return full, nil
}
