// Copyright 2026 The Tendec Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package decomp_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/tendec-ml/tendec/decomp"
	"github.com/tendec-ml/tendec/tensor"
)

func ExampleNewCP() {
	a := mat.NewDense(3, 1, []float64{1, 2, 3})
	b := mat.NewDense(4, 1, []float64{1, 1, 1, 1})
	c := mat.NewDense(5, 1, []float64{2, 2, 2, 2, 2})

	cp, err := decomp.NewCP([]*mat.Dense{a, b, c}, []float64{1})
	if err != nil {
		fmt.Println(err)
		return
	}

	full, err := cp.Reconstruct()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(full.Shape())
	// Output: [3 4 5]
}

func ExampleNewTT() {
	left, _ := tensor.NewDense([]float64{1, 0, 0, 1}, tensor.Shape{2, 2})
	right, _ := tensor.NewDense([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})

	tt, err := decomp.NewTT([]*tensor.Dense{left, right})
	if err != nil {
		fmt.Println(err)
		return
	}

	full, err := tt.Reconstruct()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(full.Shape(), tt.TTRank())
	// Output: [2 3] [2]
}
