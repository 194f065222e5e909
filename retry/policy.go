package retry

import (
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/jonwraymond/fallible/fault"
)

// Policy decides, from immutable attempt state and a failure, whether
// to retry and after what delay.
//
// Contract:
//   - Pure and stateless: all state lives in the Context argument.
//   - Priority order: failure class first, then attempt count, then
//     budget, then delay computation.
//   - A failure's RetryAfter is a lower bound on the returned delay,
//     never a command.
type Policy interface {
	// Name identifies the policy in reports.
	Name() string

	// Decide judges the attempt described by rc that failed with f.
	Decide(rc Context, f fault.Failure) Decision
}

type policy struct {
	name string
	fn   func(rc Context, f fault.Failure) Decision
}

func (p *policy) Name() string { return p.name }

func (p *policy) Decide(rc Context, f fault.Failure) Decision {
	return p.fn(rc, f)
}

// FixedConfig configures NewFixed.
type FixedConfig struct {
	// MaxAttempts is the maximum number of attempts (including the
	// initial one).
	// Default: 3
	MaxAttempts int

	// Delay is the constant wait between attempts.
	// Default: 100ms
	Delay time.Duration
}

// NewFixed returns a policy retrying transient failures at a constant
// delay.
func NewFixed(cfg FixedConfig) Policy {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 3
	}
	if cfg.Delay <= 0 {
		cfg.Delay = 100 * time.Millisecond
	}

	return &policy{
		name: "fixed",
		fn: decideWith(cfg.MaxAttempts, func(Context) (time.Duration, bool) {
			return cfg.Delay, true
		}),
	}
}

// BackoffConfig configures NewBackoff.
type BackoffConfig struct {
	// MaxAttempts is the maximum number of attempts (including the
	// initial one).
	// Default: 3
	MaxAttempts int

	// InitialDelay is the wait before the first retry; it doubles for
	// each further retry.
	// Default: 100ms
	InitialDelay time.Duration

	// MaxDelay caps the computed delay.
	// Default: 30s
	MaxDelay time.Duration
}

// NewBackoff returns a policy retrying transient failures with
// doubling delays: min(InitialDelay * 2^(attempt-1), MaxDelay).
func NewBackoff(cfg BackoffConfig) Policy {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 3
	}
	if cfg.InitialDelay <= 0 {
		cfg.InitialDelay = 100 * time.Millisecond
	}
	if cfg.MaxDelay <= 0 {
		cfg.MaxDelay = 30 * time.Second
	}

	return &policy{
		name: "backoff",
		fn: decideWith(cfg.MaxAttempts, func(rc Context) (time.Duration, bool) {
			d := cfg.InitialDelay
			for i := 1; i < rc.Attempt && d < cfg.MaxDelay; i++ {
				d *= 2
			}
			if d > cfg.MaxDelay {
				d = cfg.MaxDelay
			}
			return d, true
		}),
	}
}

// FromBackOff adapts a backoff/v5 schedule to a Policy. The factory is
// invoked per decision and stepped to the judged attempt, so the
// policy stays stateless; determinism is the supplied schedule's
// responsibility (disable randomization for reproducible delays). A
// schedule returning backoff.Stop ends the loop.
func FromBackOff(name string, maxAttempts int, schedule func() backoff.BackOff) Policy {
	if maxAttempts <= 0 {
		maxAttempts = 3
	}

	return &policy{
		name: name,
		fn: decideWith(maxAttempts, func(rc Context) (time.Duration, bool) {
			b := schedule()
			var d time.Duration
			for i := 0; i < rc.Attempt; i++ {
				d = b.NextBackOff()
				if d == backoff.Stop {
					return 0, false
				}
			}
			return d, true
		}),
	}
}

// decideWith applies the fixed priority order shared by all built-in
// policies around a candidate-delay function.
func decideWith(maxAttempts int, candidate func(rc Context) (time.Duration, bool)) func(Context, fault.Failure) Decision {
	return func(rc Context, f fault.Failure) Decision {
		if !f.Class.Retryable() {
			return GiveUp(ReasonNotRetryable)
		}
		if rc.Attempt >= maxAttempts {
			return GiveUp(ReasonMaxAttempts)
		}
		if rc.BudgetExhausted() {
			return GiveUp(ReasonBudgetExhausted)
		}
		d, ok := candidate(rc)
		if !ok {
			return GiveUp(ReasonScheduleStopped)
		}
		// Advisory floor from the failure itself.
		if f.RetryAfter > d {
			d = f.RetryAfter
		}
		return RetryAfter(d)
	}
}
