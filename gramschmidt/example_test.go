// SPDX-License-Identifier: MIT
package gramschmidt_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/orthospace/gramschmidt"
	"github.com/katalvlaran/orthospace/matrix"
)

func ExampleOrthonormalize() {
	a, _ := matrix.FromRows([][]float64{
		{3, 2},
		{4, 1},
	})
	b, _ := gramschmidt.Orthonormalize(a, gramschmidt.Modified)
	fmt.Println(b.Status, b.Rank)
	for i := 0; i < 2; i++ {
		q0, _ := b.Q.At(i, 0)
		q1, _ := b.Q.At(i, 1)
		fmt.Printf("%.3f %.3f\n", q0, q1)
	}
	// Output:
	// ok 2
	// 0.600 0.800
	// 0.800 -0.600
}

func ExampleOrthonormalize_degenerate() {
	a, _ := matrix.FromRows([][]float64{
		{1, 2},
		{1, 2},
	})
	b, err := gramschmidt.Orthonormalize(a, gramschmidt.Classical)
	var dep *gramschmidt.DependenceError
	if errors.As(err, &dep) {
		fmt.Println("stopped at column", dep.Column)
	}
	fmt.Println(b.Status, b.Rank)
	// Output:
	// stopped at column 1
	// degenerate 1
}
