package retry

import (
	"context"
	"time"

	"github.com/jonwraymond/fallible/fault"
	"github.com/jonwraymond/fallible/outcome"
	"github.com/jonwraymond/fallible/report"
)

// Operation is one attempt producing an outcome.
type Operation[T any] func(ctx context.Context) outcome.Outcome[T]

// Feedback is what a guided attempt learns from the previous one.
type Feedback struct {
	// Failure is the previous attempt's failure.
	Failure fault.Failure

	// Hint is the interpreter's caller-meaningful guidance, or "" when
	// no interpreter produced one.
	Hint string
}

// GuidedOperation is one attempt that can incorporate the previous
// failure. The first call receives nil.
type GuidedOperation[T any] func(ctx context.Context, prior *Feedback) outcome.Outcome[T]

// Interpreter turns a raw failure into caller-meaningful guidance for
// the next attempt. Returning false leaves the next attempt a plain
// retry.
type Interpreter func(f fault.Failure) (string, bool)

// Retrier drives the loop. Construct it with New; the zero value is
// not usable.
type Retrier struct {
	policy    Policy
	reporter  report.Reporter
	clock     func() time.Time
	sleep     func(ctx context.Context, d time.Duration) error
	budget    time.Duration
	interpret Interpreter
}

// Option configures a Retrier.
type Option func(*Retrier)

// WithReporter sets the reporter. Default: report.Noop.
func WithReporter(r report.Reporter) Option {
	return func(rt *Retrier) {
		if r != nil {
			rt.reporter = r
		}
	}
}

// WithClock sets the time source. Default: time.Now.
func WithClock(clock func() time.Time) Option {
	return func(rt *Retrier) {
		if clock != nil {
			rt.clock = clock
		}
	}
}

// WithSleep replaces the inter-attempt wait, for tests.
func WithSleep(sleep func(ctx context.Context, d time.Duration) error) Option {
	return func(rt *Retrier) {
		if sleep != nil {
			rt.sleep = sleep
		}
	}
}

// WithBudget bounds the total time the loop may spend; once elapsed
// time reaches the budget, policies give up. Zero means unbounded.
func WithBudget(budget time.Duration) Option {
	return func(rt *Retrier) {
		rt.budget = budget
	}
}

// WithInterpreter sets the guidance interpreter used by ExecuteGuided.
func WithInterpreter(i Interpreter) Option {
	return func(rt *Retrier) {
		rt.interpret = i
	}
}

// New creates a Retrier around policy.
func New(p Policy, opts ...Option) *Retrier {
	rt := &Retrier{
		policy:   p,
		reporter: report.Noop{},
		clock:    time.Now,
		sleep:    sleepContext,
	}
	if rt.policy == nil {
		rt.policy = NewBackoff(BackoffConfig{})
	}
	for _, opt := range opts {
		opt(rt)
	}
	return rt
}

// Execute runs op until it succeeds or the policy gives up, and
// returns the final outcome. On give-up the last observed failure is
// returned unmodified.
func Execute[T any](ctx context.Context, r *Retrier, op Operation[T]) outcome.Outcome[T] {
	return ExecuteGuided(ctx, r, func(ctx context.Context, _ *Feedback) outcome.Outcome[T] {
		return op(ctx)
	})
}

// ExecuteGuided is Execute with the attempt function widened to
// receive feedback from the previous failure: nil on the first call,
// then the prior failure plus any interpreter-derived hint.
func ExecuteGuided[T any](ctx context.Context, r *Retrier, op GuidedOperation[T]) outcome.Outcome[T] {
	if ctx == nil {
		ctx = context.Background()
	}

	rc := NewContext(r.clock(), r.budget)
	out := op(ctx, nil)

	for {
		f, failed := out.Failure()
		if !failed {
			return out
		}

		decision := r.policy.Decide(rc, f)
		if !decision.ShouldRetry() {
			r.reportExhausted(ctx, f, rc.Attempt, decision.Reason())
			return out
		}

		r.reportAttempt(ctx, f, rc.Attempt, decision.Delay())

		if err := r.sleep(ctx, decision.Delay()); err != nil {
			// Cancelled mid-wait: abort with the most recent failure,
			// no further attempts or notifications.
			return out
		}

		rc = rc.Next(r.clock())

		feedback := &Feedback{Failure: f}
		if r.interpret != nil {
			if hint, ok := r.interpret(f); ok {
				feedback.Hint = hint
			}
		}
		out = op(ctx, feedback)
	}
}

// Reporter calls are isolated so a broken reporter cannot abort the
// loop.
func (r *Retrier) reportAttempt(ctx context.Context, f fault.Failure, attempt int, delay time.Duration) {
	report.Guard(func() { r.reporter.ReportRetryAttempt(ctx, f, attempt, delay) })
}

func (r *Retrier) reportExhausted(ctx context.Context, f fault.Failure, totalAttempts int, reason string) {
	report.Guard(func() { r.reporter.ReportRetryExhausted(ctx, f, totalAttempts, reason) })
}

// sleepContext waits for d or until ctx is done, whichever comes
// first.
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer func() {
		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
	}()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
