package lap

import (
	"fmt"
	"math"
)

// augment resolves every row still free after row reduction. Each free
// row roots one single-source shortest-path search over reduced costs
// (findPath); the returned terminal column closes an alternating path,
// which is applied by walking the predecessor chain back to the root and
// swapping row↔column assignment pointers at every step.
//
// The walk carries a defensive cap of dim swaps. Exceeding it means the
// predecessor chain is broken — impossible for finite cost matrices — and
// yields ErrNonConvergence.
//
// The cancellation token is polled once per free row, before its search.
func (s *Solver) augment() error {
	dim := s.dim
	pred := make([]int, dim) // column → row it was reached from

	free := s.freeRows
	s.freeRows = s.freeRows[:0]

	var i, j, k, freeRow int
	for _, freeRow = range free {
		if s.cancelled() {
			return ErrCancelled
		}
		s.opts.Logger.Trace().Int("row", freeRow).Msg("augmenting free row")

		j = s.findPath(freeRow, pred)

		// Apply the augmenting path: follow predecessors from the terminal
		// column back to freeRow, flipping assignments along the way.
		i = unassigned
		k = 0
		for i != freeRow {
			i = pred[j]
			s.colToRow[j] = i
			j, s.rowToCol[i] = s.rowToCol[i], j
			k++
			if k > dim {
				return fmt.Errorf("%w: predecessor walk exceeded %d steps", ErrNonConvergence, dim)
			}
		}
	}

	return nil
}

// findPath runs one modified Dijkstra search rooted at startRow and
// returns the first unassigned column reachable by a minimal alternating
// path. On return the duals of every settled column are updated by
// d[j] − minDist, keeping the reduced-cost invariant for later searches.
//
// The column list cols is maintained as a three-way partition:
//
//	cols[:lo]   – settled in an earlier round (distance final, "ready")
//	cols[lo:hi] – the current frontier: tied for minimum tentative distance
//	cols[hi:]   – unsettled remainder
//
// The search alternates two steps until a terminal column appears:
// expandFrontier grows cols[lo:hi] with the next minimum-distance group,
// and scanFrontier relaxes unsettled distances through the newly settled
// columns, possibly discovering the terminal column mid-relaxation.
func (s *Solver) findPath(startRow int, pred []int) int {
	dim := s.dim
	cols := make([]int, dim)  // columns, partitioned by search state
	d := make([]float64, dim) // tentative cost-distance per column
	lo, hi, nReady := 0, 0, 0

	// Every column starts one edge away from the root row.
	var j int
	for j = 0; j < dim; j++ {
		cols[j] = j
		d[j] = s.reducedCost(startRow, j)
		pred[j] = startRow
	}

	finalJ := unassigned
	for finalJ == unassigned {
		if lo == hi {
			// Frontier exhausted: settle the next minimum-distance group.
			nReady = lo
			hi = s.expandFrontier(lo, d, cols)
			// An unassigned column in the new group ends the search.
			for _, j = range cols[lo:hi] {
				if s.colToRow[j] == unassigned {
					finalJ = j
				}
			}
		}
		if finalJ == unassigned {
			finalJ = s.scanFrontier(&lo, &hi, d, cols, pred)
		}
	}

	// Update duals of all ready columns relative to the final minimum.
	minDist := d[cols[lo]]
	for _, j = range cols[:nReady] {
		s.v[j] += d[j] - minDist
	}

	return finalJ
}

// expandFrontier scans the unsettled columns cols[lo:] and moves every
// column tied for the minimum tentative distance to the front, returning
// the new hi bound. A strictly smaller distance restarts the group at lo.
func (s *Solver) expandFrontier(lo int, d []float64, cols []int) int {
	hi := lo + 1
	minDist := d[cols[lo]]

	var j int
	var h float64
	for k := hi; k < s.dim; k++ {
		j = cols[k]
		h = d[j]
		if h <= minDist {
			if h < minDist {
				// New minimum: restart the frontier group at lo.
				hi = lo
				minDist = h
			}
			cols[k] = cols[hi]
			cols[hi] = j
			hi++
		}
	}

	return hi
}

// scanFrontier relaxes distances to the unsettled columns through each
// newly settled frontier column. A relaxation that lands within Epsilon
// of the current minimum either terminates the search (if the column is
// unassigned) or joins the frontier immediately. Distances compare with
// epsilon tolerance, not exact equality, to absorb floating-point
// rounding.
//
// Returns the terminal column, or unassigned if the frontier was consumed
// without finding one; lo/hi are written back only in that case, matching
// the resumption point of the next expandFrontier round.
func (s *Solver) scanFrontier(plo, phi *int, d []float64, cols, pred []int) int {
	lo, hi := *plo, *phi

	var i, j, j2, k int
	var minDist, h, cred float64
	for lo != hi {
		j = cols[lo]
		lo++
		i = s.colToRow[j]
		minDist = d[j]
		h = s.reducedCost(i, j) - minDist

		for k = hi; k < s.dim; k++ {
			j2 = cols[k]
			cred = s.reducedCost(i, j2) - h
			if cred < d[j2] {
				d[j2] = cred
				pred[j2] = i
				if math.Abs(cred-minDist) < s.opts.Epsilon {
					if s.colToRow[j2] == unassigned {
						return j2
					}
					cols[k] = cols[hi]
					cols[hi] = j2
					hi++
				}
			}
		}
	}

	*plo, *phi = lo, hi

	return unassigned
}
