// Package log defines standard attribute keys for solver operations.
//
// Keys follow a hierarchical naming convention ("solver.method",
// "ops.mul_div") so traces from different solvers can be filtered uniformly.
package log

// Solver context
const (
	// MethodKey identifies the solution strategy.
	// Values: "gauss", "gauss-jordan", "lu".
	MethodKey = "solver.method"

	// OperationKey names the library entry point emitting the record.
	// Examples: "GaussianEliminate", "LUDecompose", "LUSolve"
	OperationKey = "solver.operation"

	// PhaseKey indicates the phase of a solve.
	PhaseKey = "solver.phase"

	// ComponentKey identifies which package emitted the record.
	ComponentKey = "solver.component"
)

// System shape
const (
	// SizeKey is the number of unknowns n.
	SizeKey = "system.size"

	// ColumnKey is the pivot column currently being eliminated.
	ColumnKey = "system.column"

	// RowKey and PivotRowKey describe a row interchange.
	RowKey      = "system.row"
	PivotRowKey = "system.pivot_row"

	// PivotKey is the selected pivot value.
	PivotKey = "system.pivot"

	// MatrixKey carries a formatted matrix snapshot (debug only).
	MatrixKey = "system.matrix"

	// VectorKey carries a formatted vector snapshot (debug only).
	VectorKey = "system.vector"
)

// Operation counts
const (
	MulDivKey = "ops.mul_div"
	AddSubKey = "ops.add_sub"
	SwapsKey  = "ops.swaps"

	// CounterKey carries a whole operation counter object.
	CounterKey = "ops.counter"

	// ResidualKey records ||A·x − b||₂.
	ResidualKey = "metrics.residual"

	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"
)

// Error context
const (
	// ErrorCodeKey provides a structured error code for programmatic handling.
	ErrorCodeKey = "error.code"
)

// Standard attribute values.
const (
	PhaseElimination = "elimination"
	PhaseForward     = "forward_substitution"
	PhaseBackward    = "back_substitution"
	PhaseDecompose   = "decomposition"

	ErrorShapeMismatch = "SHAPE_MISMATCH"
	ErrorNoUniqueSol   = "NO_UNIQUE_SOLUTION"
	ErrorInvalidInput  = "INVALID_INPUT"
)
