// Package decomp implements compressed tensor representations — canonical
// polyadic (CP), Tucker, and tensor-train (TT) — and the reconstruction of a
// full dense array from each.
//
// Every representation validates its factors eagerly at construction and is
// immutable afterwards; Core and Reconstruct are recomputed on each call and
// have no side effects.
package decomp

import (
	"errors"

	"gonum.org/v1/gonum/mat"

	"github.com/tendec-ml/tendec/internal/tensor"
)

// Sentinel errors for representation construction. Callers match them with
// errors.Is.
var (
	// ErrRankMismatch is returned when factor matrices and core values
	// disagree on their shared rank dimension (CP, Tucker).
	ErrRankMismatch = errors.New("decomp: factors disagree on rank")

	// ErrLinkRankMismatch is returned when adjacent TT-cores disagree on
	// their shared link dimension.
	ErrLinkRankMismatch = errors.New("decomp: adjacent cores disagree on link rank")
)

// copyFactors deep-copies a slice of factor matrices.
func copyFactors(factors []*mat.Dense) []*mat.Dense {
	out := make([]*mat.Dense, len(factors))
	for i, f := range factors {
		out[i] = mat.DenseCopyOf(f)
	}
	return out
}

// mustDense wraps a buffer that is constructed to match its shape; a failure
// here is a programmer error, not a caller error.
func mustDense(data []float64, shape tensor.Shape) *tensor.Dense {
	d, err := tensor.NewDense(data, shape)
	if err != nil {
		panic(err)
	}
	return d
}
