package lap

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Matrix is a row-major dense matrix of float64 costs, stored in a flat
// slice for cache friendliness. It is the read-only input of a solve:
// the solver never mutates it, so one Matrix may be shared by any number
// of concurrently running solver instances.
type Matrix struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewMatrix creates an r×c Matrix initialized to zeros.
// Returns ErrInvalidDimensions if rows or cols is non-positive.
// Complexity: O(r·c) time and memory.
func NewMatrix(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Matrix{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// FromRows builds a Matrix by copying the given nested slices.
// Returns ErrInvalidDimensions for empty input and ErrRaggedRows when rows
// differ in length. The input slices are not retained.
// Complexity: O(r·c).
func FromRows(rows [][]float64) (*Matrix, error) {
	r := len(rows)
	if r == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	c := len(rows[0])

	m := &Matrix{r: r, c: c, data: make([]float64, 0, r*c)}
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrRaggedRows, i, len(row), c)
		}
		m.data = append(m.data, row...)
	}

	return m, nil
}

// FromDense builds a Matrix by copying any gonum mat.Matrix, so cost
// matrices assembled with gonum (e.g. pairwise distances between two
// embedding sets) feed straight into the solver.
// Complexity: O(r·c).
func FromDense(src mat.Matrix) (*Matrix, error) {
	if src == nil {
		return nil, ErrNilMatrix
	}
	r, c := src.Dims()
	if r <= 0 || c <= 0 {
		return nil, ErrInvalidDimensions
	}

	m := &Matrix{r: r, c: c, data: make([]float64, r*c)}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			m.data[i*c+j] = src.At(i, j)
		}
	}

	return m, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Matrix) Rows() int { return m.r }

// Cols returns the number of columns. Complexity: O(1).
func (m *Matrix) Cols() int { return m.c }

// IsSquare reports whether row and column counts are equal.
func (m *Matrix) IsSquare() bool { return m.r == m.c }

// At returns the element at (row, col). Indices must be in range; an
// out-of-range access panics via the runtime bounds check, matching slice
// semantics on the hot path.
func (m *Matrix) At(row, col int) float64 {
	return m.data[row*m.c+col]
}

// Set assigns v at (row, col). Intended for matrix construction only —
// mutating a Matrix while a solve reads it is a data race.
func (m *Matrix) Set(row, col int, v float64) {
	m.data[row*m.c+col] = v
}

// Clone returns a deep copy. Complexity: O(r·c).
func (m *Matrix) Clone() *Matrix {
	data := make([]float64, len(m.data))
	copy(data, m.data)

	return &Matrix{r: m.r, c: m.c, data: data}
}

// Dense exports a copy of the matrix as a gonum *mat.Dense.
// Complexity: O(r·c).
func (m *Matrix) Dense() *mat.Dense {
	data := make([]float64, len(m.data))
	copy(data, m.data)

	return mat.NewDense(m.r, m.c, data)
}

// String implements fmt.Stringer for easy debugging.
func (m *Matrix) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		b.WriteString("[")
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%g", m.data[i*m.c+j])
			if j < m.c-1 {
				b.WriteString(", ")
			}
		}
		b.WriteString("]\n")
	}

	return b.String()
}
