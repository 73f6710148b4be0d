package lap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lap"
)

// TestNewMatrix_InvalidDimensions rejects non-positive shapes.
func TestNewMatrix_InvalidDimensions(t *testing.T) {
	_, err := lap.NewMatrix(0, 3)
	assert.ErrorIs(t, err, lap.ErrInvalidDimensions)

	_, err = lap.NewMatrix(3, -1)
	assert.ErrorIs(t, err, lap.ErrInvalidDimensions)
}

// TestFromRows_Validation rejects empty and ragged input.
func TestFromRows_Validation(t *testing.T) {
	_, err := lap.FromRows(nil)
	assert.ErrorIs(t, err, lap.ErrInvalidDimensions, "nil input")

	_, err = lap.FromRows([][]float64{})
	assert.ErrorIs(t, err, lap.ErrInvalidDimensions, "zero rows")

	_, err = lap.FromRows([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, lap.ErrRaggedRows, "ragged rows")
}

// TestFromRows_Accessors checks element access and shape reporting.
func TestFromRows_Accessors(t *testing.T) {
	m, err := lap.FromRows([][]float64{
		{1, 2, 3},
		{4, 5, 6},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	assert.False(t, m.IsSquare())
	assert.Equal(t, 1.0, m.At(0, 0))
	assert.Equal(t, 6.0, m.At(1, 2))
}

// TestMatrix_CloneIndependent verifies a clone does not alias the source.
func TestMatrix_CloneIndependent(t *testing.T) {
	m, err := lap.FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	clone := m.Clone()
	clone.Set(0, 0, 99)
	assert.Equal(t, 1.0, m.At(0, 0), "mutating the clone must not touch the source")
	assert.Equal(t, 99.0, clone.At(0, 0))
}

// TestFromDense_RoundTrip checks gonum interop in both directions.
func TestFromDense_RoundTrip(t *testing.T) {
	src := mat.NewDense(2, 2, []float64{2, 1, 1, 2})

	m, err := lap.FromDense(src)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 1.0, m.At(0, 1))

	back := m.Dense()
	assert.True(t, mat.Equal(src, back), "Dense export must round-trip")
}

// TestFromDense_Nil rejects a nil gonum matrix.
func TestFromDense_Nil(t *testing.T) {
	_, err := lap.FromDense(nil)
	assert.ErrorIs(t, err, lap.ErrNilMatrix)
}

// TestSolve_FromDenseInput runs a full solve on a gonum-built matrix.
func TestSolve_FromDenseInput(t *testing.T) {
	src := mat.NewDense(2, 2, []float64{2, 1, 1, 2})
	m, err := lap.FromDense(src)
	require.NoError(t, err)

	rowToCol, _, err := lap.Solve(m)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0}, rowToCol)
}

// TestMatrix_String spot-checks the debug representation.
func TestMatrix_String(t *testing.T) {
	m, err := lap.FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	assert.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}
