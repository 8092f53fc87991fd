package linear

import (
	"io"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/linsys/core/model"
	"github.com/YuminosukeSato/linsys/pkg/errors"
)

// LU は係数行列の LU 分解を保持し、複数の右辺ベクトルに対して再利用する
//
// 使用例:
//
//	var lu linear.LU
//	if err := lu.Fit(A); err != nil {
//	    return err
//	}
//	x1, _ := lu.Solve(b1)
//	x2, _ := lu.Solve(b2)
type LU struct {
	model.BaseEstimator

	// L は単位下三角因子
	L *mat.Dense
	// U は上三角因子
	U *mat.Dense
	// DecompositionOps は Fit 時の分解の演算回数
	DecompositionOps Counts

	opts []Option
}

// NewLU creates an unfitted factorisation whose solves use opts.
func NewLU(opts ...Option) *LU {
	return &LU{opts: opts}
}

// Fit は A を分解して因子を保持する。失敗した場合、以前の因子は破棄される
func (f *LU) Fit(a mat.Matrix) error {
	f.Reset()
	f.L, f.U, f.DecompositionOps = nil, nil, Counts{}

	l, u, ops, err := LUDecomposeCounted(a, f.opts...)
	if err != nil {
		return err
	}

	f.L, f.U = l, u
	f.DecompositionOps = ops.Snapshot()
	f.SetFitted()
	return nil
}

// Size は分解した行列の次数を返す。未分解の場合は0
func (f *LU) Size() int {
	if !f.IsFitted() {
		return 0
	}
	n, _ := f.L.Dims()
	return n
}

// Solve は保持している因子で A·x = b を解く
func (f *LU) Solve(b mat.Vector) (*mat.VecDense, error) {
	x, _, err := f.SolveCounted(b)
	return x, err
}

// SolveCounted は Solve と同じ計算を行い、代入部分の演算回数を返す
func (f *LU) SolveCounted(b mat.Vector) (*mat.VecDense, *OperationCounter, error) {
	if !f.IsFitted() {
		return nil, nil, errors.NewNotFittedError("LU", "Solve")
	}
	if b == nil {
		return nil, nil, errors.NewShapeError(opLUSolve, []int{f.Size()}, nil, "nil right-hand side")
	}
	if b.Len() != f.Size() {
		return nil, nil, errors.NewShapeError(opLUSolve, []int{f.Size()}, []int{b.Len()}, "length of b must equal the order of the factorisation")
	}
	return LUSolveCounted(f.L, f.U, b, f.opts...)
}

// Save は因子を gob 形式で w に書き出す
func (f *LU) Save(w io.Writer) error {
	if !f.IsFitted() {
		return errors.NewNotFittedError("LU", "Save")
	}
	return model.SaveModelToWriter(f, w)
}

// SaveFile は因子を gob 形式で path に保存する
func (f *LU) SaveFile(path string) error {
	if !f.IsFitted() {
		return errors.NewNotFittedError("LU", "SaveFile")
	}
	return model.SaveModel(f, path)
}

// Load は Save で書き出した因子を r から読み込む
func (f *LU) Load(r io.Reader) error {
	var loaded LU
	if err := model.LoadModelFromReader(&loaded, r); err != nil {
		return err
	}
	return f.adopt(&loaded, "LU.Load")
}

// LoadFile は SaveFile で保存した因子を path から読み込む
func (f *LU) LoadFile(path string) error {
	var loaded LU
	if err := model.LoadModel(&loaded, path); err != nil {
		return err
	}
	return f.adopt(&loaded, "LU.LoadFile")
}

// adopt replaces f with loaded once it is known to hold square factors.
func (f *LU) adopt(loaded *LU, op string) error {
	if !loaded.IsFitted() || loaded.L == nil || loaded.U == nil {
		return errors.NewValueError(op, "stream does not contain a fitted factorisation")
	}
	lr, lc := loaded.L.Dims()
	ur, uc := loaded.U.Dims()
	if lr != lc || ur != uc || lr != ur {
		return errors.NewValueError(op, "factors are not square matrices of equal order")
	}
	loaded.opts = f.opts
	*f = *loaded
	return nil
}
