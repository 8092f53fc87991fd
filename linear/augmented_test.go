package linear

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/linsys/pkg/errors"
)

func TestBuildAndSplitAugmented(t *testing.T) {
	a := mat.NewDense(2, 2, []float64{4, 3, 6, 3})
	b := mat.NewVecDense(2, []float64{1, 1})

	ab, err := BuildAugmented(a, b)
	require.NoError(t, err)
	assert.True(t, mat.Equal(ab, mat.NewDense(2, 3, []float64{4, 3, 1, 6, 3, 1})))

	gotA, gotB, err := SplitAugmented(ab)
	require.NoError(t, err)
	assert.True(t, mat.Equal(a, gotA))
	assert.True(t, mat.Equal(b, gotB))
}

func TestBuildAugmentedNonSquare(t *testing.T) {
	// BuildAugmented itself does not require a square A.
	a := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	b := mat.NewVecDense(2, []float64{7, 8})

	ab, err := BuildAugmented(a, b)
	require.NoError(t, err)
	r, c := ab.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 4, c)
	assert.Equal(t, 8.0, ab.At(1, 3))
}

func TestBuildAugmentedErrors(t *testing.T) {
	tests := []struct {
		name string
		a    mat.Matrix
		b    mat.Vector
	}{
		{"length mismatch", mat.NewDense(2, 2, nil), mat.NewVecDense(3, nil)},
		{"nil matrix", nil, mat.NewVecDense(2, nil)},
		{"nil vector", mat.NewDense(2, 2, nil), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildAugmented(tt.a, tt.b)
			var shapeErr *errors.ShapeError
			require.ErrorAs(t, err, &shapeErr)
			assert.Equal(t, "BuildAugmented", shapeErr.Op)
		})
	}
}

func TestSplitAugmentedSingleColumn(t *testing.T) {
	_, _, err := SplitAugmented(mat.NewDense(2, 1, []float64{1, 2}))
	var shapeErr *errors.ShapeError
	assert.ErrorAs(t, err, &shapeErr)
}

func TestNewDenseFromRows(t *testing.T) {
	m, err := NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	assert.Equal(t, 3.0, m.At(1, 0))

	_, err = NewDenseFromRows([][]float64{{1, 2}, {3}})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "row 1 has 1 columns")

	_, err = NewDenseFromRows(nil)
	assert.Error(t, err)
}

func TestNewVecFromSliceCopies(t *testing.T) {
	src := []float64{1, 2, 3}
	v, err := NewVecFromSlice(src)
	require.NoError(t, err)

	src[0] = 100
	assert.Equal(t, 1.0, v.AtVec(0))

	_, err = NewVecFromSlice(nil)
	assert.Error(t, err)
}
