package linear

import (
	"context"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/linsys/pkg/log"
)

// tracer emits debug records of intermediate states. Formatting only
// happens when the logger has Debug enabled.
type tracer struct {
	logger  log.Logger
	enabled bool
}

func (c *config) tracer(op string, method Method, n int) tracer {
	enabled := c.logger.Enabled(context.Background(), log.LevelDebug)
	logger := c.logger
	if enabled {
		logger = logger.With(
			log.OperationKey, op,
			log.MethodKey, string(method),
			log.SizeKey, n,
		)
	}
	return tracer{logger: logger, enabled: enabled}
}

func (t tracer) swap(row, pivotRow int, pivot float64) {
	if !t.enabled {
		return
	}
	t.logger.Debug("row interchange",
		log.RowKey, row,
		log.PivotRowKey, pivotRow,
		log.PivotKey, pivot,
	)
}

func (t tracer) matrix(msg, phase string, column int, m mat.Matrix) {
	if !t.enabled {
		return
	}
	t.logger.Debug(msg,
		log.PhaseKey, phase,
		log.ColumnKey, column,
		log.MatrixKey, fmt.Sprintf("%v", mat.Formatted(m, mat.Squeeze())),
	)
}

func (t tracer) vector(msg, phase string, v mat.Vector) {
	if !t.enabled {
		return
	}
	t.logger.Debug(msg,
		log.PhaseKey, phase,
		log.VectorKey, fmt.Sprintf("%v", mat.Formatted(v.T(), mat.Squeeze())),
	)
}

func (t tracer) done(counter *OperationCounter) {
	if !t.enabled {
		return
	}
	t.logger.Debug("solve finished", log.CounterKey, counter)
}
