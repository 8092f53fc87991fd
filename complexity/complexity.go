// Package complexity provides closed-form estimates of the number of
// arithmetic operations each solver in package linear performs on an n×n
// system. The estimates are for comparison with measured OperationCounter
// values only; no solver consults them.
//
// Every polynomial is evaluated in float64 and truncated toward zero, so a
// value whose exact result is an integer can come out one lower (Gauss(2)
// reports 5 multiplications/divisions, not 6).
package complexity

import (
	"fmt"

	"github.com/YuminosukeSato/linsys/linear"
)

// Estimate は予測される演算回数
type Estimate struct {
	MulDiv int `json:"mul_div" yaml:"mul_div"`
	AddSub int `json:"add_sub" yaml:"add_sub"`
}

// Total は乗除算と加減算の合計
func (e Estimate) Total() int { return e.MulDiv + e.AddSub }

func (e Estimate) String() string {
	return fmt.Sprintf("mul/div=%d add/sub=%d", e.MulDiv, e.AddSub)
}

// LUEstimate は LU 法の予測を分解・代入・合計に分けて保持する
type LUEstimate struct {
	Decomposition Estimate `json:"decomposition" yaml:"decomposition"`
	Resolution    Estimate `json:"resolution" yaml:"resolution"`
	Total         Estimate `json:"total" yaml:"total"`
}

// Gauss はガウスの消去法（消去＋後退代入）の予測演算回数を返す
//
//	消去:     mul/div n³/3 + n²/2 − 5n/6,  add/sub n³/3 − n/3
//	後退代入: mul/div n²/2 + n/2,          add/sub n²/2 − n/2
func Gauss(n int) Estimate {
	n1, n2, n3 := float64(n), float64(n*n), float64(n*n*n)
	return Estimate{
		MulDiv: int(n3/3 + n2/2 - 5*n1/6 + n2/2 + n1/2),
		AddSub: int(n3/3 - n1/3 + n2/2 - n1/2),
	}
}

// GaussJordan はガウス・ジョルダン法の予測演算回数を返す
func GaussJordan(n int) Estimate {
	n1, n2, n3 := float64(n), float64(n*n), float64(n*n*n)
	return Estimate{
		MulDiv: int(n3/2 + n2/2 - n1/2),
		AddSub: int(n3/2 - n2/2),
	}
}

// LU は LU 分解と2回の代入の予測演算回数を返す
func LU(n int) LUEstimate {
	n1, n2, n3 := float64(n), float64(n*n), float64(n*n*n)

	decomp := n3/3 - n1/3
	resMulDiv := n2
	resAddSub := n2 - n1

	return LUEstimate{
		Decomposition: Estimate{MulDiv: int(decomp), AddSub: int(decomp)},
		Resolution:    Estimate{MulDiv: int(resMulDiv), AddSub: int(resAddSub)},
		Total:         Estimate{MulDiv: int(decomp + resMulDiv), AddSub: int(decomp + resAddSub)},
	}
}

// ForMethod returns the full-solve estimate for method. For LU that is the
// decomposition plus both substitutions. Unknown methods yield a zero
// Estimate.
func ForMethod(method linear.Method, n int) Estimate {
	switch method {
	case linear.MethodGauss:
		return Gauss(n)
	case linear.MethodGaussJordan:
		return GaussJordan(n)
	case linear.MethodLU:
		return LU(n).Total
	}
	return Estimate{}
}
