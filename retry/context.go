package retry

import "time"

// Context is an immutable snapshot of retry progress. Next returns a
// new snapshot; a Context is never mutated in place.
type Context struct {
	// Attempt is the 1-based number of the attempt being judged.
	Attempt int

	// StartedAt is when the loop began.
	StartedAt time.Time

	// Elapsed is the time spent since StartedAt, recomputed by Next.
	Elapsed time.Duration

	// Budget is the total time allowed for the loop; zero means
	// unbounded.
	Budget time.Duration
}

// NewContext returns the snapshot for the first attempt.
func NewContext(now time.Time, budget time.Duration) Context {
	return Context{Attempt: 1, StartedAt: now, Budget: budget}
}

// Next returns the snapshot for the following attempt, with the
// attempt number incremented and elapsed time recomputed.
func (c Context) Next(now time.Time) Context {
	return Context{
		Attempt:   c.Attempt + 1,
		StartedAt: c.StartedAt,
		Elapsed:   now.Sub(c.StartedAt),
		Budget:    c.Budget,
	}
}

// Remaining returns the unspent budget and whether a budget is
// configured at all.
func (c Context) Remaining() (time.Duration, bool) {
	if c.Budget <= 0 {
		return 0, false
	}
	r := c.Budget - c.Elapsed
	if r < 0 {
		r = 0
	}
	return r, true
}

// BudgetExhausted reports whether a configured budget has been used
// up.
func (c Context) BudgetExhausted() bool {
	return c.Budget > 0 && c.Elapsed >= c.Budget
}
