package linear

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/linsys/pkg/errors"
	"github.com/YuminosukeSato/linsys/pkg/log"
)

const opGaussJordan = "GaussJordan"

// GaussJordan はガウス・ジョルダン法で拡大行列 ab = [A|b]（n×(n+1)）を [I|x] に簡約して解く
//
// ピボットには、列 i の非ゼロ候補のうち絶対値が最大の行を選ぶ（通常の部分ピボット選択）。
// ピボット行を正規化した後、ピボットの上下すべての行から列 i を消去するため、
// 後退代入は不要で最終列がそのまま解になる。ab は変更されない。
func GaussJordan(ab mat.Matrix, opts ...Option) (*mat.VecDense, error) {
	x, _, err := gaussJordan(ab, newConfig(opts))
	return x, err
}

// GaussJordanCounted は GaussJordan と同じ計算を行い、演算回数も返す
func GaussJordanCounted(ab mat.Matrix, opts ...Option) (*mat.VecDense, *OperationCounter, error) {
	return gaussJordan(ab, newConfig(opts))
}

func gaussJordan(ab mat.Matrix, cfg *config) (*mat.VecDense, *OperationCounter, error) {
	a, n, err := copyAugmented(opGaussJordan, ab)
	if err != nil {
		return nil, nil, err
	}

	counter := NewOperationCounter()
	trace := cfg.tracer(opGaussJordan, MethodGaussJordan, n)

	for i := 0; i < n; i++ {
		p, ok := largestNonzeroPivot(a, i, n)
		if !ok {
			return nil, nil, errors.NewSingularSystemError(opGaussJordan, i, "every pivot candidate is zero")
		}

		if p != i {
			swapRows(a, i, p)
			counter.swap()
			trace.swap(i, p, a.At(i, i))
		}

		// ピボット行の正規化
		pivot := a.At(i, i)
		for k := i; k <= n; k++ {
			a.Set(i, k, a.At(i, k)/pivot)
			counter.div()
		}

		// 下だけでなく、他のすべての行から消去する
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			m := a.At(j, i)
			for k := i; k <= n; k++ {
				a.Set(j, k, a.At(j, k)-m*a.At(i, k))
				counter.fma()
			}
		}

		trace.matrix("column reduced", log.PhaseElimination, i, a)
	}

	x := mat.VecDenseCopyOf(a.ColView(n))
	trace.done(counter)

	return x, counter, nil
}

// largestNonzeroPivot returns the row in [col, n) whose entry in column col
// has the largest magnitude among nonzero candidates. Ties keep the first
// row found.
func largestNonzeroPivot(a *mat.Dense, col, n int) (int, bool) {
	p := -1
	for r := col; r < n; r++ {
		v := a.At(r, col)
		if v == 0 {
			continue
		}
		if p < 0 || math.Abs(v) > math.Abs(a.At(p, col)) {
			p = r
		}
	}
	return p, p >= 0
}
