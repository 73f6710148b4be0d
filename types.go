package lap

import "github.com/rs/zerolog"

// DefaultEpsilon is the smallest distinguishable difference between two
// float64 values near 1.0 (the machine epsilon, 2⁻⁵²). Distance
// comparisons near the frontier minimum during augmentation treat values
// within Epsilon as equal, absorbing floating-point rounding instead of
// demanding exact equality.
const DefaultEpsilon = 2.220446049250313e-16

// unassigned marks a row or column with no committed partner. It is an
// explicit out-of-range sentinel, distinct from every valid index in [0,N).
const unassigned = -1

// rowReductionPasses bounds the augmenting row reduction phase to exactly
// two passes over the free-row list regardless of matrix size. The bound
// is an empirically chosen constant from the reference algorithm; do not
// re-derive it.
const rowReductionPasses = 2

// Options configures a single solve.
//
// Epsilon      – tolerance for distance-equality checks during the
// shortest-path phase. Must be > 0. Default is DefaultEpsilon.
//
// Logger       – phase-level trace logger. Default is zerolog.Nop();
// supply a real logger to observe phase transitions and per-row
// augmentation progress.
//
// Cancellation – shared abort token polled between outer iterations.
// Default is a fresh private token, retrievable via
// (*Solver).Cancellation().
type Options struct {
	Epsilon      float64        // equality tolerance for reduced-cost distances
	Logger       zerolog.Logger // trace logger, no-op unless set
	Cancellation *Cancellation  // cooperative abort flag, shared across goroutines
}

// Option represents a functional option for configuring a Solver.
type Option func(*Options)

// WithEpsilon overrides the distance-equality tolerance used during the
// augmentation phase. Useful when matrix entries were produced at lower
// precision than float64. Must pass a positive value; zero or negative
// cause a panic with ErrBadEpsilon.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if eps <= 0 {
			// Panic to signal invalid configuration early.
			panic(ErrBadEpsilon.Error())
		}
		o.Epsilon = eps
	}
}

// WithLogger sets the trace logger. The solver emits Trace-level events at
// phase boundaries and once per augmentation source row, never inside the
// innermost scan loops.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithCancellation shares an external Cancellation token with the solver,
// so one token can abort several solver instances, or be cancelled by a
// timer raced externally. Must pass a non-nil token; nil causes a panic
// with ErrNilCancellation.
func WithCancellation(c *Cancellation) Option {
	return func(o *Options) {
		if c == nil {
			panic(ErrNilCancellation.Error())
		}
		o.Cancellation = c
	}
}

// DefaultOptions returns an Options struct initialized with sensible
// defaults. Use this as a starting point for further functional-options
// overrides.
//
// Defaults:
//   - Epsilon:      DefaultEpsilon (machine epsilon).
//   - Logger:       zerolog.Nop() (no tracing).
//   - Cancellation: nil (NewSolver allocates a private token).
func DefaultOptions() Options {
	return Options{
		Epsilon:      DefaultEpsilon,
		Logger:       zerolog.Nop(),
		Cancellation: nil,
	}
}
