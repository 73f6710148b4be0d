package lap

import "math"

// augmentingRowReduction performs one pass of augmenting row reduction
// over the current free-row list. Solve calls it at most
// rowReductionPasses times; the phase terminates early once the list
// stabilizes.
//
// For each free row the two smallest reduced costs are found. Tightening
// the minimizing column's dual by (second minimum − minimum) either frees
// a strictly better slot — in which case the column's previous occupant is
// displaced and rescanned immediately (a local augmenting swap) — or the
// occupant is queued for the shortest-path phase.
//
// The rrCnt < current·dim guard switches to plain always-requeue behavior
// once enough iterations have elapsed, preventing unbounded cycling on
// pathological inputs.
//
// Complexity: O(F·N) per pass, F = number of free rows.
func (s *Solver) augmentingRowReduction() {
	dim := s.dim
	current := 0 // cursor into the free-row list
	newFree := 0 // rows still free after this pass, compacted in place
	rrCnt := 0   // iteration counter feeding the anti-cycling guard
	numFree := len(s.freeRows)

	var freeRow, i0, j1, j2 int
	var min1, min2, v1New float64
	var lowers bool
	for current < numFree {
		rrCnt++
		freeRow = s.freeRows[current]
		current++

		// Minimum and second minimum reduced cost over all columns.
		min1, min2, j1, j2 = s.findRowMinima(freeRow)

		i0 = s.colToRow[j1]
		v1New = s.v[j1] - (min2 - min1)
		// Strict-lowering comparison instead of min2 > min1 sidesteps the
		// epsilon bug when the two minima differ by less than rounding.
		lowers = v1New < s.v[j1]

		if rrCnt < current*dim {
			if lowers {
				// Raise the minimum reduced cost in the row to the
				// subminimum by tightening the minimum column's dual.
				s.v[j1] = v1New
			} else if i0 != unassigned && j2 != unassigned {
				// Minimum and subminimum equal, and column j1 is taken;
				// switch to j2, which may be unassigned.
				j1 = j2
				i0 = s.colToRow[j1]
			}
			if i0 != unassigned {
				if lowers {
					// Displace the occupant and rescan it right away,
					// continuing the local augmenting swap.
					current--
					s.freeRows[current] = i0
				} else {
					// No further reduction possible here; queue the
					// occupant for the shortest-path phase.
					s.freeRows[newFree] = i0
					newFree++
				}
			}
		} else if i0 != unassigned {
			// Guard tripped: always requeue the displaced occupant.
			s.freeRows[newFree] = i0
			newFree++
		}
		s.rowToCol[freeRow] = j1
		s.colToRow[j1] = freeRow
	}
	s.freeRows = s.freeRows[:newFree]
}

// findRowMinima scans row i and returns the minimum and second-minimum
// reduced cost with their column indices. Ties break toward the smaller
// column index for the minimum; the next column with value ≥ the minimum
// becomes the second-minimum candidate. j2 is unassigned when no second
// column exists (N = 1).
func (s *Solver) findRowMinima(i int) (min1, min2 float64, j1, j2 int) {
	min1 = s.reducedCost(i, 0)
	min2 = math.MaxFloat64
	j1 = 0
	j2 = unassigned

	var h float64
	for j := 1; j < s.dim; j++ {
		h = s.reducedCost(i, j)
		if h < min2 {
			if h >= min1 {
				min2 = h
				j2 = j
			} else {
				min2 = min1
				min1 = h
				j2 = j1
				j1 = j
			}
		}
	}

	return min1, min2, j1, j2
}
