package benchmark

import (
	"bytes"
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/linsys/internal/config"
	"github.com/YuminosukeSato/linsys/linear"
	"github.com/YuminosukeSato/linsys/pkg/errors"
)

func TestRandomSystem(t *testing.T) {
	a, b, err := RandomSystem(6, 7)
	require.NoError(t, err)

	r, c := a.Dims()
	assert.Equal(t, 6, r)
	assert.Equal(t, 6, c)
	assert.Equal(t, 6, b.Len())

	for i := 0; i < r; i++ {
		off := 0.0
		for j := 0; j < c; j++ {
			if i != j {
				off += math.Abs(a.At(i, j))
			}
		}
		assert.Greater(t, math.Abs(a.At(i, i)), off, "row %d must be diagonally dominant", i)
	}

	again, _, err := RandomSystem(6, 7)
	require.NoError(t, err)
	assert.True(t, mat.Equal(a, again), "same seed gives the same system")

	other, _, err := RandomSystem(6, 8)
	require.NoError(t, err)
	assert.False(t, mat.Equal(a, other))

	_, _, err = RandomSystem(0, 1)
	var valErr *errors.ValidationError
	assert.ErrorAs(t, err, &valErr)
}

func TestSweep(t *testing.T) {
	cfg := config.DefaultSweep()
	cfg.MinN, cfg.MaxN = 2, 6
	cfg.Workers = 2

	records, err := Sweep(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, records, 5*len(linear.Methods()))

	for i, r := range records {
		assert.Less(t, r.ResidualNorm, 1e-6, "%s n=%d", r.Method, r.N)
		assert.Less(t, r.RMSEVsGauss, 1e-6, "%s n=%d", r.Method, r.N)
		if r.Method == linear.MethodGauss {
			assert.Zero(t, r.RMSEVsGauss)
		}
		assert.Positive(t, r.Measured.MulDiv)
		assert.Positive(t, r.Estimated.MulDiv)
		if i > 0 && records[i-1].Method == r.Method {
			assert.Equal(t, records[i-1].N+1, r.N, "records are sorted by n within a method")
			assert.Greater(t, r.Measured.MulDiv, records[i-1].Measured.MulDiv)
		}
	}

	assert.Equal(t, linear.MethodGauss, records[0].Method)
	assert.Equal(t, linear.MethodLU, records[len(records)-1].Method)

	grouped := ByMethod(records)
	assert.Len(t, grouped, 3)
	assert.Len(t, grouped[linear.MethodGaussJordan], 5)
}

func TestSweepSingleMethod(t *testing.T) {
	cfg := config.DefaultSweep()
	cfg.MinN, cfg.MaxN, cfg.Step = 3, 9, 3
	cfg.Methods = []string{"lu"}

	records, err := Sweep(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, records, 3)
	for _, r := range records {
		assert.Equal(t, linear.MethodLU, r.Method)
		assert.Less(t, r.RMSEVsGauss, 1e-6, "gauss reference is computed even when not swept")
	}
}

func TestSweepErrors(t *testing.T) {
	cfg := config.DefaultSweep()
	cfg.Step = 0
	_, err := Sweep(context.Background(), cfg)
	var valErr *errors.ValidationError
	assert.ErrorAs(t, err, &valErr)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Sweep(ctx, config.DefaultSweep())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPlot(t *testing.T) {
	cfg := config.DefaultSweep()
	cfg.MinN, cfg.MaxN = 2, 5
	records, err := Sweep(context.Background(), cfg)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Plot(records, &buf, "svg"))
	assert.Contains(t, buf.String(), "<svg")

	buf.Reset()
	assert.Error(t, Plot(records, &buf, "doc"))
	assert.Error(t, Plot(nil, &buf, "svg"))
}

func TestASCIIChart(t *testing.T) {
	cfg := config.DefaultSweep()
	cfg.MinN, cfg.MaxN = 2, 8
	records, err := Sweep(context.Background(), cfg)
	require.NoError(t, err)

	chart := ASCIIChart(records, 10, 40)
	assert.Contains(t, chart, "mul/div by n (gauss, gauss-jordan, lu)")
	assert.Empty(t, ASCIIChart(nil, 10, 40))
}
