package linear

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/linsys/pkg/errors"
	"github.com/YuminosukeSato/linsys/pkg/log"
)

type augmentedSolver func(ab mat.Matrix, opts ...Option) (*mat.VecDense, *OperationCounter, error)

func augmented(t *testing.T, a [][]float64, b []float64) *mat.Dense {
	t.Helper()
	am, err := NewDenseFromRows(a)
	require.NoError(t, err)
	bv, err := NewVecFromSlice(b)
	require.NoError(t, err)
	ab, err := BuildAugmented(am, bv)
	require.NoError(t, err)
	return ab
}

// dominantSystem builds a strictly diagonally dominant n×n system with a
// known solution x = (1, 2, ..., n).
func dominantSystem(n int) (*mat.Dense, *mat.VecDense, *mat.VecDense) {
	a := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				a.Set(i, j, float64(2*n+i+1))
			} else {
				a.Set(i, j, float64((i+2*j)%5)-2)
			}
		}
	}
	x := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		x.SetVec(i, float64(i+1))
	}
	b := mat.NewVecDense(n, nil)
	b.MulVec(a, x)
	return a, b, x
}

func TestSolversThreeByThree(t *testing.T) {
	a := [][]float64{{2, 1, -1}, {-3, -1, 2}, {-2, 1, 2}}
	b := []float64{8, -11, -3}
	want := []float64{2, 3, -1}

	solvers := map[string]augmentedSolver{
		"gauss":        GaussianEliminateCounted,
		"gauss-jordan": GaussJordanCounted,
	}
	for name, solve := range solvers {
		t.Run(name, func(t *testing.T) {
			x, ops, err := solve(augmented(t, a, b))
			require.NoError(t, err)
			require.NotNil(t, ops)
			assert.InDeltaSlice(t, want, x.RawVector().Data, 1e-12)
		})
	}

	t.Run("lu", func(t *testing.T) {
		am, _ := NewDenseFromRows(a)
		l, u, err := LUDecompose(am)
		require.NoError(t, err)
		x, err := LUSolve(l, u, mat.NewVecDense(3, b))
		require.NoError(t, err)
		assert.InDeltaSlice(t, want, x.RawVector().Data, 1e-12)
	})
}

func TestGaussianEliminateCounts(t *testing.T) {
	tests := []struct {
		name  string
		a     [][]float64
		b     []float64
		want  []float64
		count Counts
	}{
		{
			name:  "2x2 without interchange",
			a:     [][]float64{{4, 3}, {6, 3}},
			b:     []float64{1, 1},
			want:  []float64{0, 1.0 / 3},
			count: Counts{MulDiv: 7, AddSub: 5, Swaps: 0},
		},
		{
			name:  "2x2 smallest pivot moves up",
			a:     [][]float64{{6, 3}, {4, 3}},
			b:     []float64{1, 1},
			want:  []float64{0, 1.0 / 3},
			count: Counts{MulDiv: 7, AddSub: 5, Swaps: 1},
		},
		{
			name:  "3x3",
			a:     [][]float64{{2, 1, -1}, {-3, -1, 2}, {-2, 1, 2}},
			b:     []float64{8, -11, -3},
			want:  []float64{2, 3, -1},
			count: Counts{MulDiv: 20, AddSub: 16, Swaps: 0},
		},
		{
			name:  "1x1",
			a:     [][]float64{{4}},
			b:     []float64{2},
			want:  []float64{0.5},
			count: Counts{MulDiv: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, ops, err := GaussianEliminateCounted(augmented(t, tt.a, tt.b))
			require.NoError(t, err)
			assert.InDeltaSlice(t, tt.want, x.RawVector().Data, 1e-12)
			assert.Equal(t, tt.count, ops.Snapshot())
		})
	}
}

func TestGaussJordanCounts(t *testing.T) {
	x, ops, err := GaussJordanCounted(augmented(t, [][]float64{{4, 3}, {6, 3}}, []float64{1, 1}))
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 1.0 / 3}, x.RawVector().Data, 1e-12)
	assert.Equal(t, Counts{MulDiv: 10, AddSub: 5, Swaps: 1}, ops.Snapshot())
}

func TestLUDecomposeTwoByTwo(t *testing.T) {
	a := mat.NewDense(2, 2, []float64{4, 3, 6, 3})

	l, u, ops, err := LUDecomposeCounted(a)
	require.NoError(t, err)
	assert.True(t, mat.EqualApprox(l, mat.NewDense(2, 2, []float64{1, 0, 1.5, 1}), 1e-12))
	assert.True(t, mat.EqualApprox(u, mat.NewDense(2, 2, []float64{4, 3, 0, -1.5}), 1e-12))
	assert.Equal(t, Counts{MulDiv: 3, AddSub: 2}, ops.Snapshot())

	x, solveOps, err := LUSolveCounted(l, u, mat.NewVecDense(2, []float64{1, 1}))
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 1.0 / 3}, x.RawVector().Data, 1e-12)
	assert.Equal(t, Counts{MulDiv: 6, AddSub: 4}, solveOps.Snapshot())
}

func TestLUFactorsReconstruct(t *testing.T) {
	for _, n := range []int{1, 2, 5, 8} {
		a, _, _ := dominantSystem(n)
		l, u, err := LUDecompose(a)
		require.NoError(t, err)

		for i := 0; i < n; i++ {
			assert.Equal(t, 1.0, l.At(i, i))
			for j := i + 1; j < n; j++ {
				assert.Zero(t, l.At(i, j), "L must be lower triangular")
			}
			for j := 0; j < i; j++ {
				assert.InDelta(t, 0, u.At(i, j), 1e-9, "U must be upper triangular")
			}
		}

		var lu mat.Dense
		lu.Mul(l, u)
		assert.True(t, mat.EqualApprox(&lu, a, 1e-9), "n=%d", n)
	}
}

func TestSolversAgree(t *testing.T) {
	for _, n := range []int{2, 3, 6, 10} {
		a, b, want := dominantSystem(n)
		for _, m := range Methods() {
			x, err := Solve(m, a, b)
			require.NoError(t, err, "%s n=%d", m, n)
			assert.True(t, mat.EqualApprox(x, want, 1e-9), "%s n=%d", m, n)

			var r mat.VecDense
			r.MulVec(a, x)
			r.SubVec(&r, b)
			assert.Less(t, mat.Norm(&r, 2), 1e-9)
		}
	}
}

func TestCountsGrowWithSize(t *testing.T) {
	for _, m := range Methods() {
		prev := Counts{}
		for n := 2; n <= 7; n++ {
			a, b, _ := dominantSystem(n)
			_, ops, err := SolveCounted(m, a, b)
			require.NoError(t, err)
			got := ops.Snapshot()
			assert.Greater(t, got.MulDiv, prev.MulDiv, "%s n=%d", m, n)
			assert.Greater(t, got.AddSub, prev.AddSub, "%s n=%d", m, n)
			prev = got
		}
	}
}

func TestSolveCountedMergesLU(t *testing.T) {
	a := mat.NewDense(2, 2, []float64{4, 3, 6, 3})
	b := mat.NewVecDense(2, []float64{1, 1})

	_, ops, err := SolveCounted(MethodLU, a, b)
	require.NoError(t, err)
	assert.Equal(t, Counts{MulDiv: 9, AddSub: 6}, ops.Snapshot())
}

func TestSingularSystems(t *testing.T) {
	singular := augmented(t, [][]float64{{1, 1}, {0, 0}}, []float64{2, 0})
	zeroColumn := augmented(t, [][]float64{{0, 1}, {0, 1}}, []float64{1, 1})

	tests := []struct {
		name   string
		solve  augmentedSolver
		ab     *mat.Dense
		column int
	}{
		{"gauss zero diagonal", GaussianEliminateCounted, singular, 1},
		{"gauss-jordan zero pivot", GaussJordanCounted, singular, 1},
		{"gauss zero column", GaussianEliminateCounted, zeroColumn, 0},
		{"gauss-jordan zero column", GaussJordanCounted, zeroColumn, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, ops, err := tt.solve(tt.ab)
			assert.Nil(t, x)
			assert.Nil(t, ops)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrNoUniqueSolution))

			var singErr *errors.SingularSystemError
			require.True(t, errors.As(err, &singErr))
			assert.Equal(t, tt.column, singErr.Column)
		})
	}

	t.Run("lu requires pivoting", func(t *testing.T) {
		_, _, err := LUDecompose(mat.NewDense(2, 2, []float64{0, 1, 1, 0}))
		var singErr *errors.SingularSystemError
		require.True(t, errors.As(err, &singErr))
		assert.Equal(t, 0, singErr.Column)
		assert.Contains(t, err.Error(), "pivoting required")
	})

	t.Run("lu non-finite last diagonal", func(t *testing.T) {
		l, u, err := LUDecompose(mat.NewDense(2, 2, []float64{1, 2, 3, math.Inf(1)}))
		assert.Nil(t, l)
		assert.Nil(t, u)
		var numErr *errors.NumericalInstabilityError
		require.True(t, errors.As(err, &numErr))
		assert.Equal(t, opLUDecompose, numErr.Operation)
	})
}

func TestShapeValidation(t *testing.T) {
	notAugmented := mat.NewDense(2, 2, []float64{1, 2, 3, 4})

	_, err := GaussianEliminate(notAugmented)
	var shapeErr *errors.ShapeError
	require.ErrorAs(t, err, &shapeErr)
	assert.Equal(t, []int{2, 3}, shapeErr.Expected)
	assert.Equal(t, []int{2, 2}, shapeErr.Got)

	_, err = GaussJordan(notAugmented)
	assert.ErrorAs(t, err, &shapeErr)

	_, _, err = LUDecompose(mat.NewDense(2, 3, nil))
	assert.ErrorAs(t, err, &shapeErr)

	_, err = Solve(MethodGauss, mat.NewDense(2, 3, nil), mat.NewVecDense(2, nil))
	assert.ErrorAs(t, err, &shapeErr)
}

func TestInputsNotMutated(t *testing.T) {
	ab := augmented(t, [][]float64{{6, 3}, {4, 3}}, []float64{1, 1})
	orig := mat.DenseCopyOf(ab)

	_, err := GaussianEliminate(ab)
	require.NoError(t, err)
	_, err = GaussJordan(ab)
	require.NoError(t, err)
	assert.True(t, mat.Equal(ab, orig))

	a := mat.NewDense(2, 2, []float64{4, 3, 6, 3})
	origA := mat.DenseCopyOf(a)
	_, _, err = LUDecompose(a)
	require.NoError(t, err)
	assert.True(t, mat.Equal(a, origA))
}

func TestLUSolveSingularFactorsWarns(t *testing.T) {
	var warnings []error
	previous := errors.SetWarningHandler(func(w error) { warnings = append(warnings, w) })
	defer errors.SetWarningHandler(previous)

	l := mat.NewDense(2, 2, []float64{1, 0, 0, 1})
	u := mat.NewDense(2, 2, []float64{1, 1, 0, 0})

	x, err := LUSolve(l, u, mat.NewVecDense(2, []float64{1, 1}))
	require.NoError(t, err)
	assert.True(t, math.IsInf(x.AtVec(1), 1))

	require.Len(t, warnings, 1)
	var instab *errors.NumericalInstabilityError
	assert.True(t, errors.As(warnings[0], &instab))
}

func TestLUSolveDimensionPanicRecovered(t *testing.T) {
	l := mat.NewDense(2, 2, []float64{1, 0, 0, 1})
	u := mat.NewDense(2, 2, []float64{1, 0, 0, 1})

	x, ops, err := LUSolveCounted(l, u, mat.NewVecDense(3, []float64{1, 2, 3}))
	assert.Nil(t, x)
	assert.Nil(t, ops)
	var panicErr *errors.PanicError
	require.ErrorAs(t, err, &panicErr)
	assert.Equal(t, opLUSolve, panicErr.Operation)
}

func TestParseMethod(t *testing.T) {
	tests := []struct {
		in      string
		want    Method
		wantErr bool
	}{
		{"gauss", MethodGauss, false},
		{"Gaussian", MethodGauss, false},
		{"gauss_jordan", MethodGaussJordan, false},
		{"GJ", MethodGaussJordan, false},
		{" lu ", MethodLU, false},
		{"LU decomposition", MethodLU, false},
		{"cholesky", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMethod(tt.in)
			if tt.wantErr {
				assert.True(t, errors.Is(err, errors.ErrUnknownMethod))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := Solve(Method("qr"), mat.NewDense(1, 1, []float64{1}), mat.NewVecDense(1, []float64{1}))
	assert.True(t, errors.Is(err, errors.ErrUnknownMethod))
}

func TestDebugTrace(t *testing.T) {
	logger, _ := log.NewTestLogger(log.LevelDebug)
	ab := augmented(t, [][]float64{{4, 3}, {6, 3}}, []float64{1, 1})

	_, err := GaussJordan(ab, WithLogger(logger))
	require.NoError(t, err)

	assert.True(t, logger.ContainsMessage("row interchange"))
	assert.True(t, logger.ContainsMessage("column reduced"))
	assert.True(t, logger.ContainsField(log.MethodKey, string(MethodGaussJordan)))
	assert.True(t, logger.ContainsField(log.PivotRowKey, float64(1)))

	quiet, buf := log.NewTestLogger(log.LevelInfo)
	_, err = GaussJordan(ab, WithLogger(quiet))
	require.NoError(t, err)
	assert.Zero(t, buf.Len())
}
