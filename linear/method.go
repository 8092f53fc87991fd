package linear

import (
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/linsys/pkg/errors"
)

// Method は解法の種類を表す
type Method string

const (
	// MethodGauss はガウスの消去法＋後退代入
	MethodGauss Method = "gauss"
	// MethodGaussJordan はガウス・ジョルダン法
	MethodGaussJordan Method = "gauss-jordan"
	// MethodLU は LU 分解＋前進・後退代入
	MethodLU Method = "lu"
)

// Methods returns every supported method in a stable order.
func Methods() []Method {
	return []Method{MethodGauss, MethodGaussJordan, MethodLU}
}

func (m Method) String() string { return string(m) }

// ParseMethod は文字列から Method を返す。大文字小文字と区切り文字は区別しない
//
//	"gauss", "gaussian"              -> MethodGauss
//	"gauss-jordan", "gauss_jordan", "gj" -> MethodGaussJordan
//	"lu", "lu-decomposition"         -> MethodLU
func ParseMethod(s string) (Method, error) {
	key := strings.NewReplacer("_", "-", " ", "-").Replace(strings.ToLower(strings.TrimSpace(s)))
	switch key {
	case "gauss", "gaussian":
		return MethodGauss, nil
	case "gauss-jordan", "gaussjordan", "gj":
		return MethodGaussJordan, nil
	case "lu", "lu-decomposition":
		return MethodLU, nil
	}
	return "", errors.Wrapf(errors.ErrUnknownMethod, "linsys: ParseMethod %q", s)
}

// Solve は指定された解法で A·x = b を解く
func Solve(method Method, a mat.Matrix, b mat.Vector, opts ...Option) (*mat.VecDense, error) {
	x, _, err := SolveCounted(method, a, b, opts...)
	return x, err
}

// SolveCounted は Solve と同じ計算を行い、演算回数も返す
//
// LU の場合、返されるカウンタは分解と代入の合計になる。
func SolveCounted(method Method, a mat.Matrix, b mat.Vector, opts ...Option) (*mat.VecDense, *OperationCounter, error) {
	if err := checkSystem("Solve", a, b, true); err != nil {
		return nil, nil, err
	}

	switch method {
	case MethodGauss, MethodGaussJordan:
		ab, err := BuildAugmented(a, b)
		if err != nil {
			return nil, nil, err
		}
		if method == MethodGauss {
			return GaussianEliminateCounted(ab, opts...)
		}
		return GaussJordanCounted(ab, opts...)

	case MethodLU:
		l, u, ops, err := LUDecomposeCounted(a, opts...)
		if err != nil {
			return nil, nil, err
		}
		x, solveOps, err := LUSolveCounted(l, u, b, opts...)
		if err != nil {
			return nil, nil, err
		}
		ops.Add(solveOps)
		return x, ops, nil
	}

	return nil, nil, errors.Wrapf(errors.ErrUnknownMethod, "linsys: Solve %q", string(method))
}
