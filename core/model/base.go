package model

// EstimatorState は分解済みかどうかの状態を表す
type EstimatorState int

const (
	// NotFitted は係数行列がまだ分解されていない状態
	NotFitted EstimatorState = iota
	// Fitted は分解が完了し、因子を再利用できる状態
	Fitted
)

// String は状態名を返す
func (s EstimatorState) String() string {
	if s == Fitted {
		return "fitted"
	}
	return "not_fitted"
}

// BaseEstimator は分解結果を保持する型に埋め込む基底構造体
type BaseEstimator struct {
	State EstimatorState
}

// IsFitted は分解済みかどうかを返す
func (e *BaseEstimator) IsFitted() bool {
	return e.State == Fitted
}

// SetFitted は分解済み状態に設定する
func (e *BaseEstimator) SetFitted() {
	e.State = Fitted
}

// Reset は初期状態に戻す
func (e *BaseEstimator) Reset() {
	e.State = NotFitted
}
