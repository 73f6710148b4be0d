package lap

import "sync/atomic"

// Cancellation is a shared abort flag for cooperative cancellation of a
// running solve. Cancel may be called from any goroutine; the solver polls
// the flag once at the top of each outer phase iteration (never inside the
// innermost scan loops), so cancellation takes effect between iterations
// rather than instantly.
//
// Cancellation never rolls back partial solver state — it is an abort, not
// a retry-in-place. A solver that observed its token as set must be
// discarded; construct a fresh Solver to retry.
//
// A single token may be shared by several solver instances via
// WithCancellation, cancelling them all at once. The zero value is a valid,
// uncancelled token.
type Cancellation struct {
	flag atomic.Bool
}

// NewCancellation returns a fresh, uncancelled token.
func NewCancellation() *Cancellation {
	return &Cancellation{}
}

// Cancel sets the flag. Idempotent; safe from any goroutine.
func (c *Cancellation) Cancel() {
	c.flag.Store(true)
}

// Cancelled reports whether Cancel has been called.
func (c *Cancellation) Cancelled() bool {
	return c.flag.Load()
}
