package linear

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/linsys/pkg/errors"
	"github.com/YuminosukeSato/linsys/pkg/log"
)

const opGauss = "GaussianEliminate"

// GaussianEliminate はガウスの消去法で拡大行列 ab = [A|b]（n×(n+1)）の連立方程式を解く
//
// ピボットには、列 i の非ゼロ候補のうち絶対値が最小の行を選ぶ（パッケージ文書参照）。
// 形状が不正な場合は ShapeError、一意解が存在しない場合は SingularSystemError を返す。
// ab は変更されない。
func GaussianEliminate(ab mat.Matrix, opts ...Option) (*mat.VecDense, error) {
	x, _, err := gaussianEliminate(ab, newConfig(opts))
	return x, err
}

// GaussianEliminateCounted は GaussianEliminate と同じ計算を行い、演算回数も返す
func GaussianEliminateCounted(ab mat.Matrix, opts ...Option) (*mat.VecDense, *OperationCounter, error) {
	return gaussianEliminate(ab, newConfig(opts))
}

func gaussianEliminate(ab mat.Matrix, cfg *config) (*mat.VecDense, *OperationCounter, error) {
	a, n, err := copyAugmented(opGauss, ab)
	if err != nil {
		return nil, nil, err
	}

	counter := NewOperationCounter()
	trace := cfg.tracer(opGauss, MethodGauss, n)

	// 前進消去: 列ごとにループ
	for i := 0; i < n-1; i++ {
		p, ok := smallestNonzeroPivot(a, i, n)
		if !ok {
			return nil, nil, errors.NewSingularSystemError(opGauss, i, "every pivot candidate is zero")
		}

		if p != i {
			swapRows(a, i, p)
			counter.swap()
			trace.swap(i, p, a.At(i, i))
		}

		for j := i + 1; j < n; j++ {
			m := a.At(j, i) / a.At(i, i)
			counter.div()

			// A[j, i:] -= m * A[i, i:]（拡大列を含む）
			for k := i; k <= n; k++ {
				a.Set(j, k, a.At(j, k)-m*a.At(i, k))
				counter.fma()
			}
		}

		trace.matrix("column eliminated", log.PhaseElimination, i, a)
	}

	if a.At(n-1, n-1) == 0 {
		return nil, nil, errors.NewSingularSystemError(opGauss, n-1, "zero diagonal entry after elimination")
	}

	x := backSubstitute(a, func(i int) float64 { return a.At(i, n) }, n, counter)
	trace.vector("back substitution finished", log.PhaseBackward, x)
	trace.done(counter)

	return x, counter, nil
}

// smallestNonzeroPivot returns the row in [col, n) whose entry in column col
// has the smallest nonzero magnitude. Ties keep the first row found.
func smallestNonzeroPivot(a *mat.Dense, col, n int) (int, bool) {
	p := -1
	for r := col; r < n; r++ {
		v := a.At(r, col)
		if v == 0 {
			continue
		}
		if p < 0 || math.Abs(v) < math.Abs(a.At(p, col)) {
			p = r
		}
	}
	return p, p >= 0
}
