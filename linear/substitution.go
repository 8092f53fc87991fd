package linear

import (
	"gonum.org/v1/gonum/mat"
)

// backSubstitute solves the upper-triangular system formed by the leading
// n×n block of u and the right-hand side rhs, from row n-1 up to row 0.
//
// Cost: the last unknown is one division; every other row i accumulates
// n-1-i products (one mul/div and one add/sub each), then pays one
// subtraction and one division.
func backSubstitute(u mat.Matrix, rhs func(i int) float64, n int, counter *OperationCounter) *mat.VecDense {
	x := mat.NewVecDense(n, nil)

	x.SetVec(n-1, rhs(n-1)/u.At(n-1, n-1))
	counter.div()

	for i := n - 2; i >= 0; i-- {
		sum := 0.0
		for j := i + 1; j < n; j++ {
			sum += u.At(i, j) * x.AtVec(j)
			counter.fma()
		}
		x.SetVec(i, (rhs(i)-sum)/u.At(i, i))
		counter.sub()
		counter.div()
	}
	return x
}

// forwardSubstitute solves the lower-triangular system l·y = rhs from row 0
// down to row n-1. Costs mirror backSubstitute.
func forwardSubstitute(l mat.Matrix, rhs func(i int) float64, n int, counter *OperationCounter) *mat.VecDense {
	y := mat.NewVecDense(n, nil)

	y.SetVec(0, rhs(0)/l.At(0, 0))
	counter.div()

	for i := 1; i < n; i++ {
		sum := 0.0
		for j := 0; j < i; j++ {
			sum += l.At(i, j) * y.AtVec(j)
			counter.fma()
		}
		y.SetVec(i, (rhs(i)-sum)/l.At(i, i))
		counter.sub()
		counter.div()
	}
	return y
}
