package metrics

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/linsys/pkg/errors"
)

// Residual は残差ベクトル r = A·x − b を計算する
func Residual(a mat.Matrix, x, b mat.Vector) (*mat.VecDense, error) {
	const op = "Residual"
	if a == nil || x == nil || b == nil {
		return nil, errors.NewValueError(op, "nil input")
	}

	rows, cols := a.Dims()
	if rows == 0 || cols == 0 || x.Len() == 0 {
		return nil, errors.NewValueError(op, "empty input")
	}
	if x.Len() != cols {
		return nil, errors.NewDimensionError(op, cols, x.Len(), 1)
	}
	if b.Len() != rows {
		return nil, errors.NewDimensionError(op, rows, b.Len(), 0)
	}

	r := mat.NewVecDense(rows, nil)
	r.MulVec(a, x)
	r.SubVec(r, b)
	return r, nil
}

// ResidualNorm は残差の L2 ノルム ‖A·x − b‖₂ を返す
func ResidualNorm(a mat.Matrix, x, b mat.Vector) (float64, error) {
	r, err := Residual(a, x, b)
	if err != nil {
		return 0, err
	}
	return mat.Norm(r, 2), nil
}

// MaxAbsDiff は要素ごとの差の絶対値の最大値（L∞ 距離）を返す
func MaxAbsDiff(x, y mat.Vector) (float64, error) {
	xs, ys, err := pair("MaxAbsDiff", x, y)
	if err != nil {
		return 0, err
	}
	return floats.Distance(xs, ys, math.Inf(1)), nil
}

// MSE は平均二乗誤差（Mean Squared Error）を計算する
func MSE(x, y mat.Vector) (float64, error) {
	xs, ys, err := pair("MSE", x, y)
	if err != nil {
		return 0, err
	}

	// MSE = (1/n) * Σ(x - y)²
	var sum float64
	for i := range xs {
		diff := xs[i] - ys[i]
		sum += diff * diff
	}
	return sum / float64(len(xs)), nil
}

// RMSE は平方根平均二乗誤差（Root Mean Squared Error）を計算する
func RMSE(x, y mat.Vector) (float64, error) {
	mse, err := MSE(x, y)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(mse), nil
}

// Agree は2つの解が要素ごとに tol 以内で一致するかを返す
// 各要素は絶対誤差または相対誤差のどちらかが tol 以下であればよい
func Agree(x, y mat.Vector, tol float64) (bool, error) {
	if tol < 0 || math.IsNaN(tol) {
		return false, errors.NewValueError("Agree", "tolerance must be non-negative")
	}
	xs, ys, err := pair("Agree", x, y)
	if err != nil {
		return false, err
	}
	return floats.EqualApprox(xs, ys, tol), nil
}

// pair validates two vectors of equal, nonzero length and returns their
// elements as slices.
func pair(op string, x, y mat.Vector) ([]float64, []float64, error) {
	if x == nil || y == nil {
		return nil, nil, errors.NewValueError(op, "nil vector")
	}
	n := x.Len()
	if n == 0 {
		return nil, nil, errors.NewValueError(op, "empty vector")
	}
	if y.Len() != n {
		return nil, nil, errors.NewDimensionError(op, n, y.Len(), 0)
	}
	return mat.Col(nil, 0, x), mat.Col(nil, 0, y), nil
}
