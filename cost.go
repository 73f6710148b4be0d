package lap

import "fmt"

// AssignmentCost sums the matrix entries selected by a completed (or
// hypothetical) row→column assignment. Pure verification utility — it is
// not on the solving critical path.
//
// Validation:
//   - m must be non-nil (ErrNilMatrix).
//   - len(rowToCol) must equal m.Rows() and every entry must be a valid
//     column index (ErrBadAssignment).
//
// Complexity: O(N).
func AssignmentCost(m *Matrix, rowToCol []int) (float64, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}
	if len(rowToCol) != m.Rows() {
		return 0, fmt.Errorf("%w: got %d rows, matrix has %d", ErrBadAssignment, len(rowToCol), m.Rows())
	}

	var total float64
	for i, j := range rowToCol {
		if j < 0 || j >= m.Cols() {
			return 0, fmt.Errorf("%w: row %d assigned to column %d", ErrBadAssignment, i, j)
		}
		total += m.At(i, j)
	}

	return total, nil
}
