package report

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonwraymond/fallible/fault"
)

// Multi fans every notification out to each reporter in order. Each
// delegate is isolated: one panicking reporter does not stop the
// others and never reaches the caller.
type Multi []Reporter

// NewMulti builds a fan-out reporter, dropping nil delegates.
func NewMulti(reporters ...Reporter) Multi {
	m := make(Multi, 0, len(reporters))
	for _, r := range reporters {
		if r != nil {
			m = append(m, r)
		}
	}
	return m
}

func (m Multi) Report(ctx context.Context, f fault.Failure) {
	for _, r := range m {
		r := r
		Guard(func() { r.Report(ctx, f) })
	}
}

func (m Multi) ReportRetryAttempt(ctx context.Context, f fault.Failure, attempt int, delay time.Duration) {
	for _, r := range m {
		r := r
		Guard(func() { r.ReportRetryAttempt(ctx, f, attempt, delay) })
	}
}

func (m Multi) ReportRetryExhausted(ctx context.Context, f fault.Failure, totalAttempts int, reason string) {
	for _, r := range m {
		r := r
		Guard(func() { r.ReportRetryExhausted(ctx, f, totalAttempts, reason) })
	}
}

// Parallel fans notifications out concurrently and waits for all
// delegates before returning. Use it when sinks are slow (webhooks)
// and the caller cannot afford sequential delivery. Isolation matches
// Multi.
type Parallel struct {
	reporters []Reporter
}

// NewParallel builds a concurrent fan-out reporter, dropping nil
// delegates.
func NewParallel(reporters ...Reporter) Parallel {
	kept := make([]Reporter, 0, len(reporters))
	for _, r := range reporters {
		if r != nil {
			kept = append(kept, r)
		}
	}
	return Parallel{reporters: kept}
}

func (p Parallel) Report(ctx context.Context, f fault.Failure) {
	p.each(func(r Reporter) { r.Report(ctx, f) })
}

func (p Parallel) ReportRetryAttempt(ctx context.Context, f fault.Failure, attempt int, delay time.Duration) {
	p.each(func(r Reporter) { r.ReportRetryAttempt(ctx, f, attempt, delay) })
}

func (p Parallel) ReportRetryExhausted(ctx context.Context, f fault.Failure, totalAttempts int, reason string) {
	p.each(func(r Reporter) { r.ReportRetryExhausted(ctx, f, totalAttempts, reason) })
}

func (p Parallel) each(notify func(Reporter)) {
	var g errgroup.Group
	for _, r := range p.reporters {
		r := r
		g.Go(func() error {
			Guard(func() { notify(r) })
			return nil
		})
	}
	_ = g.Wait()
}
