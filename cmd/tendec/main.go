// Package main provides the Tendec CLI.
package main

import (
	"fmt"
	"os"

	"gonum.org/v1/gonum/mat"

	"github.com/tendec-ml/tendec/decomp"
	"github.com/tendec-ml/tendec/tensor"
)

const version = "v0.0.1-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("Tendec %s\n", version)
			return
		case "demo":
			if err := demo(); err != nil {
				fmt.Fprintf(os.Stderr, "demo failed: %v\n", err)
				os.Exit(1)
			}
			return
		}
	}

	fmt.Println("Tendec - Tensor Decomposition Reconstruction for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  demo       Reconstruct example CP, Tucker and TT tensors")
}

// arangeMat builds an r×c matrix filled with 0, 1, ..., r*c-1 row by row.
func arangeMat(r, c int) *mat.Dense {
	data := make([]float64, r*c)
	for i := range data {
		data[i] = float64(i)
	}
	return mat.NewDense(r, c, data)
}

func demo() error {
	// CP: shape (3, 4, 5), rank 2.
	cp, err := decomp.NewCP(
		[]*mat.Dense{arangeMat(3, 2), arangeMat(4, 2), arangeMat(5, 2)},
		[]float64{0, 1},
	)
	if err != nil {
		return err
	}
	full, err := cp.Reconstruct()
	if err != nil {
		return err
	}
	corner, err := full.At(0, 0, 0)
	if err != nil {
		return err
	}
	fmt.Printf("CP      rank %v -> %v, value at (0,0,0): %g\n", cp.Rank(), full, corner)

	// Tucker: identity factors reproduce the core unchanged.
	core, err := tensor.NewDense([]float64{1, 2, 3, 4, 5, 6, 7, 8}, tensor.Shape{2, 2, 2})
	if err != nil {
		return err
	}
	tk, err := decomp.NewTucker([]*mat.Dense{tensor.Eye(2), tensor.Eye(2), tensor.Eye(2)}, core)
	if err != nil {
		return err
	}
	full, err = tk.Reconstruct()
	if err != nil {
		return err
	}
	corner, err = full.At(1, 1, 1)
	if err != nil {
		return err
	}
	fmt.Printf("Tucker  rank %v -> %v, value at (1,1,1): %g\n", tk.MultilinearRank(), full, corner)

	// TT: shape (4, 5, 6), tt-rank (2, 3).
	cores := make([]*tensor.Dense, 0, 3)
	for _, shape := range []tensor.Shape{{4, 2}, {2, 5, 3}, {3, 6}} {
		c, err := tensor.NewDense(tensor.Arange(shape.NumElements()).Data(), shape)
		if err != nil {
			return err
		}
		cores = append(cores, c)
	}
	tt, err := decomp.NewTT(cores)
	if err != nil {
		return err
	}
	full, err = tt.Reconstruct()
	if err != nil {
		return err
	}
	corner, err = full.At(0, 0, 0)
	if err != nil {
		return err
	}
	fmt.Printf("TT      rank %v -> %v, value at (0,0,0): %g\n", tt.TTRank(), full, corner)
	return nil
}
