package report

import (
	"context"
	"time"

	"github.com/jonwraymond/fallible/fault"
)

// Reporter receives failure and retry notifications.
//
// Contract:
//   - Report is called once per failed boundary crossing, never on
//     success.
//   - ReportRetryAttempt is called once per retry decision, before the
//     inter-attempt wait.
//   - ReportRetryExhausted is called exactly once when a retry loop
//     gives up.
//   - Implementations must be safe for concurrent use and must not
//     panic; callers isolate them anyway.
type Reporter interface {
	Report(ctx context.Context, f fault.Failure)
	ReportRetryAttempt(ctx context.Context, f fault.Failure, attempt int, delay time.Duration)
	ReportRetryExhausted(ctx context.Context, f fault.Failure, totalAttempts int, reason string)
}

// Noop discards all notifications. It is the reporter for silent and
// test configurations.
type Noop struct{}

func (Noop) Report(context.Context, fault.Failure)                                 {}
func (Noop) ReportRetryAttempt(context.Context, fault.Failure, int, time.Duration) {}
func (Noop) ReportRetryExhausted(context.Context, fault.Failure, int, string)      {}

// Guard invokes fn and swallows any panic. Callers use it so a broken
// reporter cannot propagate into the primary computation.
func Guard(fn func()) {
	defer func() {
		_ = recover()
	}()
	fn()
}
