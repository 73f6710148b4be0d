package lap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lap"
)

// TestDefaultOptions checks the documented defaults.
func TestDefaultOptions(t *testing.T) {
	opts := lap.DefaultOptions()
	assert.Equal(t, lap.DefaultEpsilon, opts.Epsilon)
	assert.Nil(t, opts.Cancellation, "token is allocated by NewSolver, not DefaultOptions")
}

// TestWithEpsilon_Invalid panics on non-positive tolerance.
func TestWithEpsilon_Invalid(t *testing.T) {
	assert.Panics(t, func() { lap.WithEpsilon(0)(&lap.Options{}) }, "zero epsilon")
	assert.Panics(t, func() { lap.WithEpsilon(-1e-9)(&lap.Options{}) }, "negative epsilon")
}

// TestWithCancellation_Nil panics on a nil token.
func TestWithCancellation_Nil(t *testing.T) {
	assert.Panics(t, func() { lap.WithCancellation(nil)(&lap.Options{}) })
}

// TestWithEpsilon_Applied verifies a custom tolerance still solves to the
// optimum on a well-separated matrix.
func TestWithEpsilon_Applied(t *testing.T) {
	m, err := lap.FromRows([][]float64{{2, 1}, {1, 2}})
	require.NoError(t, err)

	rowToCol, _, err := lap.Solve(m, lap.WithEpsilon(1e-9))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0}, rowToCol)
}
