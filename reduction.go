package lap

import "math"

// columnReduction runs column reduction and reduction transfer, seeding
// the duals and an initial partial assignment. It never fails; afterwards
// the free-row list holds between 0 and N rows.
//
// Stage 1 (Reduce):   for every column, find the minimizing row and store
// the minimum as the column's initial dual; record a tentative claim of
// that row.
// Stage 2 (Resolve):  walk columns in descending index order and commit
// claims first-come-first-served; later claims on an already taken row
// are voided. The fixed order makes the result deterministic.
// Stage 3 (Transfer): rows claimed by exactly one column tighten that
// column's dual by the minimum reduced cost over all other columns,
// improving the starting point for the next phases.
//
// Complexity: O(N²).
func (s *Solver) columnReduction() {
	dim := s.dim

	// unique[i] stays true while row i is claimed by at most one column.
	unique := make([]bool, dim)
	for i := range unique {
		unique[i] = true
	}

	// Stage 1: per-column minimum row and value.
	var i, j int
	var minRow int
	var c, minVal float64
	for j = 0; j < dim; j++ {
		minRow = 0
		minVal = s.costs.At(0, j)
		for i = 1; i < dim; i++ {
			if c = s.costs.At(i, j); c < minVal {
				minVal = c
				minRow = i
			}
		}
		s.v[j] = minVal
		s.colToRow[j] = minRow
	}

	// Stage 2: commit claims, descending column order, first claim wins.
	for j = dim - 1; j >= 0; j-- {
		i = s.colToRow[j]
		if s.rowToCol[i] == unassigned {
			s.rowToCol[i] = j
		} else {
			unique[i] = false
			s.colToRow[j] = unassigned
		}
	}

	// Stage 3: collect free rows; transfer reduction on uniquely claimed rows.
	var min float64
	var j2 int
	for i = 0; i < dim; i++ {
		if s.rowToCol[i] == unassigned {
			s.freeRows = append(s.freeRows, i)
		} else if unique[i] {
			j = s.rowToCol[i]
			min = math.MaxFloat64
			for j2 = 0; j2 < dim; j2++ {
				if j2 == j {
					continue
				}
				if c = s.reducedCost(i, j2); c < min {
					min = c
				}
			}
			s.v[j] -= min
		}
	}
}
