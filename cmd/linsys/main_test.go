package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/linsys/benchmark"
	"github.com/YuminosukeSato/linsys/linear"
	"github.com/YuminosukeSato/linsys/pkg/errors"
)

func TestDecomposeSave(t *testing.T) {
	systemFile = filepath.Join("..", "..", "examples", "systems", "textbook.yaml")
	saveFile = filepath.Join(t.TempDir(), "factors.gob")
	t.Cleanup(func() { systemFile, saveFile = "", "" })

	require.NoError(t, runDecompose(nil, nil))

	lu := linear.NewLU()
	require.NoError(t, lu.LoadFile(saveFile))
	x, err := lu.Solve(mat.NewVecDense(3, []float64{8, -11, -3}))
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{2, 3, -1}, x.RawVector().Data, 1e-12)
}

func TestDecomposeSaveUnwritable(t *testing.T) {
	systemFile = filepath.Join("..", "..", "examples", "systems", "textbook.yaml")
	saveFile = filepath.Join(t.TempDir(), "missing", "factors.gob")
	t.Cleanup(func() { systemFile, saveFile = "", "" })

	assert.Error(t, runDecompose(nil, nil))
}

func TestWritePlot(t *testing.T) {
	records := []benchmark.Record{
		{Method: linear.MethodGauss, N: 2, Measured: linear.Counts{MulDiv: 7, AddSub: 5}},
		{Method: linear.MethodGauss, N: 3, Measured: linear.Counts{MulDiv: 20, AddSub: 16}},
	}

	path := filepath.Join(t.TempDir(), "ops.svg")
	require.NoError(t, writePlot(records, path, "svg"))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "<svg"))

	err = writePlot(records, filepath.Join(t.TempDir(), "missing", "ops.svg"), "svg")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create")

	assert.Error(t, writePlot(records, filepath.Join(t.TempDir(), "ops.doc"), "doc"))
}

func TestComplexityRejectsSmallN(t *testing.T) {
	size = 0
	t.Cleanup(func() { size = 10 })

	var valErr *errors.ValidationError
	assert.ErrorAs(t, runComplexity(nil, nil), &valErr)
}
