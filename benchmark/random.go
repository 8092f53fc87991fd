package benchmark

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/YuminosukeSato/linsys/pkg/errors"
)

// RandomSystem は乱数で n×n の連立方程式 A·x = b を生成する
//
// 非対角成分は [-1, 1) の一様分布から取り、対角成分はその行の非対角成分の
// 絶対値和より大きく設定する（狭義対角優位）。このため A は正則で、
// ピボット選択なしの LU 分解でもゼロピボットは生じない。
// 同じ n と seed からは常に同じ系が得られる。
func RandomSystem(n int, seed uint64) (*mat.Dense, *mat.VecDense, error) {
	if n < 1 {
		return nil, nil, errors.NewValidationError("n", "must be at least 1", n)
	}

	src := rand.NewPCG(seed, uint64(n))
	offDiag := distuv.Uniform{Min: -1, Max: 1, Src: src}
	margin := distuv.Uniform{Min: 1, Max: 2, Src: src}

	a := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		sum := 0.0
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			v := offDiag.Rand()
			a.Set(i, j, v)
			sum += math.Abs(v)
		}
		d := sum + margin.Rand()
		if offDiag.Rand() < 0 {
			d = -d
		}
		a.Set(i, i, d)
	}

	b := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		b.SetVec(i, offDiag.Rand()*float64(n))
	}
	return a, b, nil
}
