package lap

import "fmt"

// Solver owns all mutable state of a single solve: the dual variable
// vector, both assignment arrays and the free-row worklist. The three
// phases run strictly sequentially on the calling goroutine — each later
// phase depends on duals and assignments mutated by the earlier ones.
//
// A Solver is single-use: construct it, call Solve once, then discard it.
// The cost matrix is read-only throughout and may be shared with other
// solver instances.
type Solver struct {
	costs    *Matrix   // read-only input, caller-owned
	dim      int       // N for the N×N matrix
	v        []float64 // dual variable per column (lower-bound potential)
	rowToCol []int     // column assigned to each row, or unassigned
	colToRow []int     // row assigned to each column, or unassigned
	freeRows []int     // worklist of rows with no committed column
	opts     Options
}

// NewSolver constructs a Solver over the given cost matrix.
//
// Preconditions and validation (in order):
//  1. m must be non-nil (ErrNilMatrix).
//  2. m must be square (ErrDimensionMismatch) — checked before any
//     mutable state is allocated or touched.
//
// Options customization:
//   - WithEpsilon(e):      distance-equality tolerance (e > 0).
//   - WithLogger(l):       phase-level trace logging.
//   - WithCancellation(c): share an external abort token.
func NewSolver(m *Matrix, opts ...Option) (*Solver, error) {
	// 1) Validate the input before touching anything mutable.
	if m == nil {
		return nil, ErrNilMatrix
	}
	if !m.IsSquare() {
		return nil, fmt.Errorf("%w: got %d×%d", ErrDimensionMismatch, m.Rows(), m.Cols())
	}

	// 2) Build and apply Options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}
	if cfg.Cancellation == nil {
		cfg.Cancellation = NewCancellation()
	}

	// 3) Allocate per-solve state. Assignments start fully unassigned.
	n := m.Rows()
	s := &Solver{
		costs:    m,
		dim:      n,
		v:        make([]float64, n),
		rowToCol: make([]int, n),
		colToRow: make([]int, n),
		freeRows: make([]int, 0, n),
		opts:     cfg,
	}
	for i := 0; i < n; i++ {
		s.rowToCol[i] = unassigned
		s.colToRow[i] = unassigned
	}

	return s, nil
}

// Cancellation returns the solver's abort token. Call Cancel on it from
// any goroutine to stop a running Solve at its next poll point.
func (s *Solver) Cancellation() *Cancellation {
	return s.opts.Cancellation
}

// Solve runs the three phases in sequence and returns the two assignment
// permutations (rowToCol, colToRow). On success both are mutual-inverse
// permutations of [0,N) and the summed cost is minimal over all
// permutations.
//
// Failure modes:
//   - ErrCancelled      — the token was set; no partial assignment is
//     returned and the Solver must not be reused.
//   - ErrNonConvergence — defensive cap hit during augmentation; indicates
//     a broken invariant (e.g. non-finite costs), reproduces
//     deterministically on the same input.
//
// Complexity: O(N³) worst case.
func (s *Solver) Solve() ([]int, []int, error) {
	// A token set before the call aborts with no phase executed.
	if s.cancelled() {
		return nil, nil, ErrCancelled
	}

	// Phase 1: column reduction and reduction transfer. Never fails.
	s.columnReduction()
	s.opts.Logger.Trace().Int("free_rows", len(s.freeRows)).Msg("column reduction done")

	// Phase 2: augmenting row reduction, at most rowReductionPasses passes.
	var pass int
	for pass = 0; pass < rowReductionPasses && len(s.freeRows) > 0; pass++ {
		if s.cancelled() {
			return nil, nil, ErrCancelled
		}
		s.augmentingRowReduction()
		s.opts.Logger.Trace().Int("pass", pass+1).Int("free_rows", len(s.freeRows)).Msg("augmenting row reduction done")
	}

	// Phase 3: shortest augmenting path for every row still free.
	if len(s.freeRows) > 0 {
		if err := s.augment(); err != nil {
			return nil, nil, err
		}
	}

	return s.rowToCol, s.colToRow, nil
}

// Solve is the package-level convenience wrapper: construct a Solver over
// m, run it once and return the two permutations.
func Solve(m *Matrix, opts ...Option) ([]int, []int, error) {
	s, err := NewSolver(m, opts...)
	if err != nil {
		return nil, nil, err
	}

	return s.Solve()
}

// cancelled reports whether the shared token was set.
func (s *Solver) cancelled() bool {
	return s.opts.Cancellation.Cancelled()
}

// reducedCost returns cost(i,j) − v[j]: the edge cost as seen through the
// current column duals. All three phases search on reduced costs, which
// preserves the optimal assignment of the original matrix.
func (s *Solver) reducedCost(i, j int) float64 {
	return s.costs.At(i, j) - s.v[j]
}
