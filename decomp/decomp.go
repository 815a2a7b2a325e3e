// Copyright 2026 The Tendec Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package decomp provides the public API for compressed tensor
// representations in Tendec: canonical polyadic (CP), Tucker, and
// tensor-train (TT), each able to reconstruct its full dense array.
//
// Example:
//
//	a := mat.NewDense(3, 2, nil)
//	b := mat.NewDense(4, 2, nil)
//	c := mat.NewDense(5, 2, nil)
//	cp, err := decomp.NewCP([]*mat.Dense{a, b, c}, []float64{1, 1})
//	full, err := cp.Reconstruct() // shape (3, 4, 5)
package decomp

import (
	"gonum.org/v1/gonum/mat"

	"github.com/tendec-ml/tendec/internal/decomp"
	"github.com/tendec-ml/tendec/tensor"
)

// CP is a canonical polyadic representation: per-mode factor matrices plus a
// vector of diagonal core values.
type CP = decomp.CP

// Tucker is a Tucker representation: per-mode factor matrices plus a dense
// core array.
type Tucker = decomp.Tucker

// TT is a tensor-train representation: an ordered chain of cores.
type TT = decomp.TT

// Sentinel errors. Match with errors.Is.
var (
	ErrRankMismatch     = decomp.ErrRankMismatch
	ErrLinkRankMismatch = decomp.ErrLinkRankMismatch
)

// NewCP creates a CP representation from factor matrices and core values.
func NewCP(factors []*mat.Dense, coreValues []float64) (*CP, error) {
	return decomp.NewCP(factors, coreValues)
}

// NewTucker creates a Tucker representation from factor matrices and a dense
// core.
func NewTucker(factors []*mat.Dense, core *tensor.Dense) (*Tucker, error) {
	return decomp.NewTucker(factors, core)
}

// NewTT creates a tensor-train representation from an ordered chain of
// cores.
func NewTT(cores []*tensor.Dense) (*TT, error) {
	return decomp.NewTT(cores)
}
