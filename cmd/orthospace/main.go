// SPDX-License-Identifier: MIT

// Command orthospace orthonormalizes matrices, factors them with Householder
// QR and extracts null spaces and orthogonal complements.
//
//	orthospace demo
//	orthospace factorize --mode colpiv -f a.yaml
//	orthospace nullspace --mode fullpiv --transpose -f a.yaml -o yaml
//
// Matrix files are YAML documents with a single "rows" key.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
