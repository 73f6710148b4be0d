package lap

import "errors"

var (
	// ErrDimensionMismatch indicates the cost matrix is not square.
	// Detected before any solver state is touched; retry with a square input.
	ErrDimensionMismatch = errors.New("lap: cost matrix is not square")

	// ErrCancelled indicates the solve was aborted through its Cancellation
	// token. Internal state is left partially updated; construct a fresh
	// Solver to retry.
	ErrCancelled = errors.New("lap: solve cancelled")

	// ErrNonConvergence indicates the augmentation phase exceeded its
	// defensive iteration cap. Unreachable for well-formed finite-cost
	// inputs; treat as a fatal invariant violation, not a retry signal.
	ErrNonConvergence = errors.New("lap: augmentation did not converge")

	// ErrInvalidDimensions indicates requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("lap: matrix dimensions must be > 0")

	// ErrRaggedRows indicates rows of differing lengths were passed to FromRows.
	ErrRaggedRows = errors.New("lap: all matrix rows must have the same length")

	// ErrNilMatrix indicates a nil *Matrix was passed where one is required.
	ErrNilMatrix = errors.New("lap: matrix is nil")

	// ErrBadAssignment indicates an assignment slice whose length or values
	// do not address the matrix.
	ErrBadAssignment = errors.New("lap: assignment does not address the matrix")

	// ErrBadEpsilon indicates a non-positive epsilon passed to WithEpsilon.
	ErrBadEpsilon = errors.New("lap: epsilon must be positive")

	// ErrNilCancellation indicates a nil token passed to WithCancellation.
	ErrNilCancellation = errors.New("lap: cancellation token is nil")
)
