// Package linsys is a small numerical-methods library for solving dense
// square linear systems A·x = b and for studying how much arithmetic each
// method spends doing it.
//
// linsys offers three interchangeable strategies that all count their own
// additions/subtractions, multiplications/divisions and row interchanges,
// plus closed-form estimates of those counts for comparison.
//
// # Features
//
// - Gaussian elimination with back substitution
// - Gauss-Jordan elimination
// - LU decomposition (Doolittle, no pivoting) with reusable factors
// - Operation counting on every solve
// - Theoretical complexity formulas per method
// - Benchmark sweeps with SVG/PNG charts and terminal charts
//
// # Installation
//
//	go get github.com/YuminosukeSato/linsys
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/linsys/linear"
//	    "gonum.org/v1/gonum/mat"
//	)
//
//	func main() {
//	    A := mat.NewDense(2, 2, []float64{4, 3, 6, 3})
//	    b := mat.NewVecDense(2, []float64{1, 1})
//
//	    x, ops, err := linear.SolveCounted(linear.MethodGaussJordan, A, b)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    fmt.Println("x:", mat.Formatted(x.T()))
//	    fmt.Println(ops)
//	}
//
// # Packages
//
// The library is organized into several packages:
//
//   - linear: solvers, operation counter, augmented-matrix utilities
//   - complexity: closed-form operation-count estimates
//   - metrics: residuals and solution distances
//   - benchmark: random systems, size sweeps and charts
//   - core/model: fitted state and gob persistence of factorisations
//   - core/parallel: parallel processing utilities
//   - pkg/errors, pkg/log: error taxonomy and structured logging
//
// The linsys command (cmd/linsys) exposes the same functionality:
//
//	linsys solve -f examples/systems/textbook.yaml --method all --ops
//	linsys compare --min 2 --max 40 --plot counts.svg --ascii
package linsys
