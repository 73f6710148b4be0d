// Package lap solves the Linear Assignment Problem (LAP) on dense square
// cost matrices: given an N×N matrix of pairwise costs between two
// equal-size sets, it finds the row→column permutation of minimum total
// cost.
//
// 🚀 What is lap?
//
//	An exact, sequential implementation of the Jonker–Volgenant shortest
//	augmenting path algorithm (LAPJV), described in:
//	R. Jonker, A. Volgenant. A Shortest Augmenting Path Algorithm for
//	Dense and Sparse Linear Assignment Problems. Computing 38, 325–340
//	(1987). Typical uses:
//	  • Object tracking — match detections to existing tracks
//	  • Feature matching — pair embedding vectors across two sets
//	  • Task scheduling — assign workers to jobs at minimum cost
//
// ✨ Key features:
//   - Exact optimum via three cooperating phases: column reduction with
//     reduction transfer, augmenting row reduction, and shortest
//     augmenting path search over reduced costs
//   - Cooperative cancellation — share a Cancellation token and abort a
//     long-running solve from another goroutine
//   - gonum interop — build the cost matrix from any mat.Matrix
//   - Deterministic — identical inputs always yield identical permutations
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lap"
//
//	m, err := lap.FromRows([][]float64{
//	    {2, 1},
//	    {1, 2},
//	})
//	if err != nil { ... }
//	rowToCol, colToRow, err := lap.Solve(m)
//	if err != nil { ... }
//	total, _ := lap.AssignmentCost(m, rowToCol)
//
// On success rowToCol and colToRow are mutual-inverse permutations of
// [0,N). Non-square inputs fail with ErrDimensionMismatch before any
// work is done; a cancelled solve fails with ErrCancelled and returns no
// partial assignment.
//
// Callers with unequal set sizes must pad the smaller side with
// large-cost rows or columns before invoking the solver; padding policy
// stays with the caller.
//
// Complexity:
//
//   - Time:  O(N³) worst case, far less on typical inputs
//   - Space: O(N²) for the matrix, O(N) solver state
package lap
