package linear

import (
	"fmt"

	"github.com/rs/zerolog"
)

// OperationCounter は演算回数（加減算・乗除算・行交換）を数える
//
// カウンタはソルバー内部でのみ加算され、外部から減らすことはできない。
// 並行利用は想定していない。
type OperationCounter struct {
	addSub int
	mulDiv int
	swaps  int
}

// Counts は OperationCounter の値をエクスポート可能な形で保持するスナップショット
type Counts struct {
	AddSub int `json:"add_sub" yaml:"add_sub"`
	MulDiv int `json:"mul_div" yaml:"mul_div"`
	Swaps  int `json:"swaps" yaml:"swaps"`
}

// NewOperationCounter はすべてゼロのカウンタを作成する
func NewOperationCounter() *OperationCounter {
	return &OperationCounter{}
}

// AddSub は加減算の回数を返す
func (c *OperationCounter) AddSub() int { return c.addSub }

// MulDiv は乗除算の回数を返す
func (c *OperationCounter) MulDiv() int { return c.mulDiv }

// Swaps は行交換の回数を返す
func (c *OperationCounter) Swaps() int { return c.swaps }

// Total は算術演算（加減算＋乗除算）の合計を返す。行交換は含まない
func (c *OperationCounter) Total() int { return c.addSub + c.mulDiv }

// Reset は3つのカウンタをすべてゼロに戻す
func (c *OperationCounter) Reset() {
	c.addSub = 0
	c.mulDiv = 0
	c.swaps = 0
}

// Add は other の値を c に加算する。LU の分解と代入を合算する際に使う
func (c *OperationCounter) Add(other *OperationCounter) {
	if other == nil {
		return
	}
	c.addSub += other.addSub
	c.mulDiv += other.mulDiv
	c.swaps += other.swaps
}

// Snapshot は現在の値をコピーして返す
func (c *OperationCounter) Snapshot() Counts {
	return Counts{AddSub: c.addSub, MulDiv: c.mulDiv, Swaps: c.swaps}
}

func (c *OperationCounter) String() string {
	return fmt.Sprintf("additions/subtractions: %d\nmultiplications/divisions: %d\nrow interchanges: %d",
		c.addSub, c.mulDiv, c.swaps)
}

// MarshalZerologObject はzerologのイベントにカウンタの値を追加する
func (c *OperationCounter) MarshalZerologObject(e *zerolog.Event) {
	e.Int("add_sub", c.addSub).
		Int("mul_div", c.mulDiv).
		Int("swaps", c.swaps)
}

// multiply-subtract の1回分（乗算1回＋減算1回）
func (c *OperationCounter) fma() {
	c.mulDiv++
	c.addSub++
}

func (c *OperationCounter) div() {
	c.mulDiv++
}

func (c *OperationCounter) sub() {
	c.addSub++
}

func (c *OperationCounter) swap() {
	c.swaps++
}
