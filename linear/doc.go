// Package linear solves dense square linear systems A·x = b and counts the
// arithmetic it performs.
//
// Three strategies are provided:
//
//   - GaussianEliminate: forward elimination on the augmented matrix [A|b]
//     followed by back substitution. Among the nonzero candidates of a
//     column it pivots on the entry of SMALLEST magnitude. This is the
//     implemented policy and it is not textbook partial pivoting; do not
//     expect it to maximise numerical stability.
//   - GaussJordan: reduces [A|b] to [I|x], pivoting on the entry of LARGEST
//     magnitude and eliminating above and below every pivot.
//   - LUDecompose + LUSolve: Doolittle factorisation A = L·U without
//     pivoting, then forward and back substitution. A zero pivot fails
//     instead of triggering a row interchange.
//
// Every operation has a bare entry point and a Counted variant that also
// returns an OperationCounter tallying additions/subtractions,
// multiplications/divisions and row interchanges. Inputs are copied before
// elimination; callers' matrices are never modified.
//
//	A, _ := linear.NewDenseFromRows([][]float64{{2, 1, -1}, {-3, -1, 2}, {-2, 1, 2}})
//	b, _ := linear.NewVecFromSlice([]float64{8, -11, -3})
//	ab, _ := linear.BuildAugmented(A, b)
//	x, ops, err := linear.GaussianEliminateCounted(ab)
//	// x ≈ [2 3 -1], ops.MulDiv() == 20, ops.AddSub() == 16
package linear
