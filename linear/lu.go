package linear

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/linsys/pkg/errors"
	"github.com/YuminosukeSato/linsys/pkg/log"
)

const (
	opLUDecompose = "LUDecompose"
	opLUSolve     = "LUSolve"
)

// LUDecompose は正方行列 A を A = L·U に分解する（Doolittle 法、ピボット選択なし）
//
// L は対角成分が1の下三角行列、U は上三角行列。ピボット選択を行わないため、
// 対角成分がゼロになった時点で SingularSystemError を返す（行交換が必要な行列は
// 分解できない）。U の最後の対角成分が NaN や Inf になった場合は
// NumericalInstabilityError を返す。A は変更されない。
func LUDecompose(a mat.Matrix, opts ...Option) (l, u *mat.Dense, err error) {
	l, u, _, err = luDecompose(a, newConfig(opts))
	return l, u, err
}

// LUDecomposeCounted は LUDecompose と同じ計算を行い、分解の演算回数も返す
func LUDecomposeCounted(a mat.Matrix, opts ...Option) (l, u *mat.Dense, counter *OperationCounter, err error) {
	return luDecompose(a, newConfig(opts))
}

func luDecompose(a mat.Matrix, cfg *config) (*mat.Dense, *mat.Dense, *OperationCounter, error) {
	u, n, err := copySquare(opLUDecompose, a)
	if err != nil {
		return nil, nil, nil, err
	}

	counter := NewOperationCounter()
	trace := cfg.tracer(opLUDecompose, MethodLU, n)
	l := mat.NewDense(n, n, nil)

	for i := 0; i < n; i++ {
		if u.At(i, i) == 0 {
			return nil, nil, nil, errors.NewSingularSystemError(opLUDecompose, i, "zero pivot, pivoting required")
		}
		l.Set(i, i, 1)

		for j := i + 1; j < n; j++ {
			m := u.At(j, i) / u.At(i, i)
			counter.div()

			for k := i; k < n; k++ {
				u.Set(j, k, u.At(j, k)-m*u.At(i, k))
				counter.fma()
			}
			l.Set(j, i, m)
		}

		trace.matrix("column decomposed", log.PhaseDecompose, i, u)
	}

	// 最終的な U の対角成分の確認
	if u.At(n-1, n-1) == 0 {
		return nil, nil, nil, errors.NewSingularSystemError(opLUDecompose, n-1, "zero diagonal entry in U")
	}
	if err := errors.CheckScalar(opLUDecompose, u.At(n-1, n-1)); err != nil {
		return nil, nil, nil, err
	}

	trace.done(counter)
	return l, u, counter, nil
}

// LUSolve は LUDecompose で得た L, U を用いて A·x = b を解く
//
// 前進代入で L·y = b を、後退代入で U·x = y を解く。形状や正則性の検証は行わない:
// 特異な U に対しては Inf/NaN を含む解がそのまま返され、警告が errors.Warn に送られる。
// 次元の不整合による範囲外アクセスは PanicError として返す。
func LUSolve(l, u mat.Matrix, b mat.Vector, opts ...Option) (*mat.VecDense, error) {
	x, _, err := luSolve(l, u, b, newConfig(opts))
	return x, err
}

// LUSolveCounted は LUSolve と同じ計算を行い、代入部分の演算回数も返す
func LUSolveCounted(l, u mat.Matrix, b mat.Vector, opts ...Option) (*mat.VecDense, *OperationCounter, error) {
	return luSolve(l, u, b, newConfig(opts))
}

func luSolve(l, u mat.Matrix, b mat.Vector, cfg *config) (x *mat.VecDense, counter *OperationCounter, err error) {
	defer func() {
		if err != nil {
			x, counter = nil, nil
		}
	}()
	defer errors.Recover(&err, opLUSolve)

	n := b.Len()
	counter = NewOperationCounter()
	trace := cfg.tracer(opLUSolve, MethodLU, n)

	y := forwardSubstitute(l, b.AtVec, n, counter)
	trace.vector("forward substitution finished", log.PhaseForward, y)

	x = backSubstitute(u, y.AtVec, n, counter)
	trace.vector("back substitution finished", log.PhaseBackward, x)
	trace.done(counter)

	if werr := errors.CheckNumericalStability(opLUSolve, x.RawVector().Data); werr != nil {
		errors.Warn(werr)
	}
	return x, counter, nil
}
