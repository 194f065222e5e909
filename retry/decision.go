package retry

import "time"

// Give-up reasons produced by the built-in policies, in evaluation
// order.
const (
	ReasonNotRetryable    = "not retryable"
	ReasonMaxAttempts     = "max attempts reached"
	ReasonBudgetExhausted = "budget exhausted"
	ReasonScheduleStopped = "schedule stopped"
)

// Decision is a policy's verdict on one failed attempt: retry after a
// delay, or give up with a reason. Exactly one variant is live.
type Decision struct {
	retry  bool
	delay  time.Duration
	reason string
}

// RetryAfter returns the retry variant.
func RetryAfter(delay time.Duration) Decision {
	if delay < 0 {
		delay = 0
	}
	return Decision{retry: true, delay: delay}
}

// GiveUp returns the terminal variant.
func GiveUp(reason string) Decision {
	return Decision{reason: reason}
}

// ShouldRetry reports whether the retry variant is live.
func (d Decision) ShouldRetry() bool { return d.retry }

// Delay returns the wait before the next attempt; meaningful only when
// ShouldRetry is true.
func (d Decision) Delay() time.Duration { return d.delay }

// Reason explains a give-up; empty on the retry variant.
func (d Decision) Reason() string { return d.reason }
