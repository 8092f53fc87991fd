package linear

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/linsys/pkg/errors"
)

// NewDenseFromRows は入れ子スライスから行列を作成する
// 空の入力や行ごとに列数が異なる入力は ShapeError を返す。データはコピーされる
func NewDenseFromRows(rows [][]float64) (*mat.Dense, error) {
	const op = "NewDenseFromRows"
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, errors.NewShapeError(op, []int{-1, -1}, []int{len(rows), 0}, "matrix must have at least one row and one column")
	}

	r, c := len(rows), len(rows[0])
	data := make([]float64, 0, r*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, errors.NewShapeError(op, []int{r, c}, []int{r, len(row)},
				fmt.Sprintf("row %d has %d columns, row 0 has %d", i, len(row), c))
		}
		data = append(data, row...)
	}
	return mat.NewDense(r, c, data), nil
}

// NewVecFromSlice はスライスからベクトルを作成する（データはコピーされる）
func NewVecFromSlice(values []float64) (*mat.VecDense, error) {
	if len(values) == 0 {
		return nil, errors.NewShapeError("NewVecFromSlice", []int{-1}, []int{0}, "vector must not be empty")
	}
	data := make([]float64, len(values))
	copy(data, values)
	return mat.NewVecDense(len(data), data), nil
}

// BuildAugmented は係数行列 A の末尾に b を列として連結した拡大行列 [A|b] を返す
// A の行数と b の長さが一致しない場合は ShapeError を返す
func BuildAugmented(a mat.Matrix, b mat.Vector) (*mat.Dense, error) {
	const op = "BuildAugmented"
	if err := checkSystem(op, a, b, false); err != nil {
		return nil, err
	}

	r, c := a.Dims()
	ab := mat.NewDense(r, c+1, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			ab.Set(i, j, a.At(i, j))
		}
		ab.Set(i, c, b.AtVec(i))
	}
	return ab, nil
}

// SplitAugmented は拡大行列 [A|b] を A と b に分割する（BuildAugmented の逆操作）
//
// 1列だけの入力は「A が空、b がその列」という分割にはならず、ShapeError を返す。
// 1列以上なら常に成功する元の定義からの意図的な逸脱で、列数0の A を
// *mat.Dense で表現できない（mat.NewDense がパニックする）ことによる。
func SplitAugmented(ab mat.Matrix) (*mat.Dense, *mat.VecDense, error) {
	if ab == nil {
		return nil, nil, errors.NewShapeError("SplitAugmented", []int{-1, -1}, nil, "nil matrix")
	}
	r, c := ab.Dims()
	if r == 0 || c < 2 {
		return nil, nil, errors.NewShapeError("SplitAugmented", []int{-1, -1}, []int{r, c}, "augmented matrix needs at least one row and two columns")
	}

	a := mat.NewDense(r, c-1, nil)
	b := mat.NewVecDense(r, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c-1; j++ {
			a.Set(i, j, ab.At(i, j))
		}
		b.SetVec(i, ab.At(i, c-1))
	}
	return a, b, nil
}

// checkSystem validates A (and b when non-nil) before any computation.
// With square set, A must be n×n.
func checkSystem(op string, a mat.Matrix, b mat.Vector, square bool) error {
	if a == nil {
		return errors.NewShapeError(op, []int{-1, -1}, nil, "nil coefficient matrix")
	}
	r, c := a.Dims()
	if r == 0 || c == 0 {
		return errors.NewShapeError(op, []int{-1, -1}, []int{r, c}, "empty coefficient matrix")
	}
	if square && r != c {
		return errors.NewShapeError(op, []int{r, r}, []int{r, c}, "coefficient matrix must be square")
	}
	if b == nil {
		return errors.NewShapeError(op, []int{r}, nil, "nil right-hand side")
	}
	if b.Len() != r {
		return errors.NewShapeError(op, []int{r}, []int{b.Len()}, "length of b must equal the number of rows of A")
	}
	return nil
}

// copyAugmented validates an n×(n+1) augmented matrix and returns a private
// copy the caller may eliminate in place.
func copyAugmented(op string, ab mat.Matrix) (*mat.Dense, int, error) {
	if ab == nil {
		return nil, 0, errors.NewShapeError(op, []int{-1, -1}, nil, "nil augmented matrix")
	}
	r, c := ab.Dims()
	if r == 0 || c != r+1 {
		return nil, 0, errors.NewShapeError(op, []int{r, r + 1}, []int{r, c}, "augmented matrix must be n×(n+1)")
	}
	return mat.DenseCopyOf(ab), r, nil
}

// copySquare validates an n×n matrix and returns a private copy.
func copySquare(op string, a mat.Matrix) (*mat.Dense, int, error) {
	if a == nil {
		return nil, 0, errors.NewShapeError(op, []int{-1, -1}, nil, "nil matrix")
	}
	r, c := a.Dims()
	if r == 0 || r != c {
		return nil, 0, errors.NewShapeError(op, []int{r, r}, []int{r, c}, "matrix must be square")
	}
	return mat.DenseCopyOf(a), r, nil
}

// swapRows exchanges rows i and p of m in place.
func swapRows(m *mat.Dense, i, p int) {
	ri := m.RawRowView(i)
	rp := m.RawRowView(p)
	for k := range ri {
		ri[k], rp[k] = rp[k], ri[k]
	}
}
