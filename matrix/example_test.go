// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/orthospace/matrix"
)

// ExampleHouseholderQR factors a small tall matrix and checks A = Q·R.
func ExampleHouseholderQR() {
	a, _ := matrix.FromRows([][]float64{
		{3, 1},
		{4, 2},
		{0, 5},
	})
	q, r, _ := matrix.HouseholderQR(a)
	qr, _ := matrix.Mul(q, r)
	ok, _ := matrix.AllClose(a, qr, 0, 1e-12)
	upper, _ := matrix.IsUpperTriangular(r, matrix.WithEpsilon(0))
	r00, _ := r.At(0, 0)

	fmt.Printf("|R00|=%.1f reconstructs=%v upper=%v\n", abs(r00), ok, upper)
	// Output:
	// |R00|=5.0 reconstructs=true upper=true
}

// ExamplePermuteCols shows the index-vector permutation convention.
func ExamplePermuteCols() {
	a, _ := matrix.FromRows([][]float64{{10, 20, 30}})
	ap, _ := matrix.PermuteCols(a, []int{2, 0, 1})
	fmt.Print(ap)
	// Output:
	// [30, 10, 20]
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}

	return x
}
