package retry

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jonwraymond/fallible/fault"
	"github.com/jonwraymond/fallible/outcome"
)

type recordingReporter struct {
	mu        sync.Mutex
	attempts  []int
	delays    []time.Duration
	exhausted []int
	reasons   []string
}

func (r *recordingReporter) Report(context.Context, fault.Failure) {}

func (r *recordingReporter) ReportRetryAttempt(_ context.Context, _ fault.Failure, attempt int, delay time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.attempts = append(r.attempts, attempt)
	r.delays = append(r.delays, delay)
}

func (r *recordingReporter) ReportRetryExhausted(_ context.Context, _ fault.Failure, totalAttempts int, reason string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.exhausted = append(r.exhausted, totalAttempts)
	r.reasons = append(r.reasons, reason)
}

// testRetrier wires a fake clock advanced by the fake sleep, so
// elapsed time tracks the delays the loop actually requested.
func testRetrier(p Policy, rep *recordingReporter, opts ...Option) *Retrier {
	var mu sync.Mutex
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	base := []Option{
		WithReporter(rep),
		WithClock(func() time.Time {
			mu.Lock()
			defer mu.Unlock()
			return now
		}),
		WithSleep(func(_ context.Context, d time.Duration) error {
			mu.Lock()
			defer mu.Unlock()
			now = now.Add(d)
			return nil
		}),
	}
	return New(p, append(base, opts...)...)
}

func TestExecute_SuccessFirstAttempt(t *testing.T) {
	rep := &recordingReporter{}
	r := testRetrier(NewBackoff(BackoffConfig{MaxAttempts: 4}), rep)

	calls := 0
	out := Execute(context.Background(), r, func(ctx context.Context) outcome.Outcome[string] {
		calls++
		return outcome.Ok("done")
	})

	if v, _ := out.Value(); v != "done" || calls != 1 {
		t.Errorf("Execute() = (%q, calls %d)", v, calls)
	}
	if len(rep.attempts) != 0 || len(rep.exhausted) != 0 {
		t.Errorf("reporter notified on clean success: %+v", rep)
	}
}

func TestExecute_BackoffSequenceThenSuccess(t *testing.T) {
	rep := &recordingReporter{}
	r := testRetrier(NewBackoff(BackoffConfig{
		MaxAttempts:  4,
		InitialDelay: 100 * time.Millisecond,
		MaxDelay:     10 * time.Second,
	}), rep)

	calls := 0
	out := Execute(context.Background(), r, func(ctx context.Context) outcome.Outcome[int] {
		calls++
		if calls < 4 {
			return outcome.Fail[int](transient(0))
		}
		return outcome.Ok(calls)
	})

	if v, _ := out.Value(); v != 4 {
		t.Errorf("final value = %d, want success on attempt 4", v)
	}

	wantDelays := []time.Duration{100 * time.Millisecond, 200 * time.Millisecond, 400 * time.Millisecond}
	if len(rep.delays) != len(wantDelays) {
		t.Fatalf("recorded delays = %v, want %v", rep.delays, wantDelays)
	}
	for i, want := range wantDelays {
		if rep.delays[i] != want {
			t.Errorf("delay[%d] = %v, want %v", i, rep.delays[i], want)
		}
	}
	if len(rep.exhausted) != 0 {
		t.Error("exhaustion reported on a loop that succeeded")
	}
}

func TestExecute_AdvisoryDelayDominates(t *testing.T) {
	rep := &recordingReporter{}
	r := testRetrier(NewBackoff(BackoffConfig{
		MaxAttempts:  3,
		InitialDelay: 100 * time.Millisecond,
		MaxDelay:     10 * time.Second,
	}), rep)

	calls := 0
	Execute(context.Background(), r, func(ctx context.Context) outcome.Outcome[int] {
		calls++
		if calls == 1 {
			return outcome.Fail[int](transient(500 * time.Millisecond))
		}
		return outcome.Ok(calls)
	})

	if len(rep.delays) != 1 || rep.delays[0] != 500*time.Millisecond {
		t.Errorf("delays = %v, want [500ms]", rep.delays)
	}
}

func TestExecute_Exhaustion(t *testing.T) {
	rep := &recordingReporter{}
	r := testRetrier(NewBackoff(BackoffConfig{
		MaxAttempts:  3,
		InitialDelay: 10 * time.Millisecond,
	}), rep)

	calls := 0
	out := Execute(context.Background(), r, func(ctx context.Context) outcome.Outcome[int] {
		calls++
		f := transient(0)
		f.Message = "boom " + string(rune('0'+calls))
		return outcome.Fail[int](f)
	})

	if calls != 3 {
		t.Errorf("attempts = %d, want 3", calls)
	}
	if len(rep.attempts) != 2 {
		t.Errorf("ReportRetryAttempt calls = %d, want 2", len(rep.attempts))
	}
	if len(rep.exhausted) != 1 || rep.exhausted[0] != 3 {
		t.Errorf("ReportRetryExhausted = %v, want one call with totalAttempts 3", rep.exhausted)
	}
	if rep.reasons[0] != ReasonMaxAttempts {
		t.Errorf("reason = %q, want %q", rep.reasons[0], ReasonMaxAttempts)
	}

	// The returned outcome is the final attempt's failure, unmodified.
	f, ok := out.Failure()
	if !ok || f.Message != "boom 3" {
		t.Errorf("final failure = (%+v, %v), want the last attempt's", f, ok)
	}
}

func TestExecute_PermanentNeverRetried(t *testing.T) {
	for _, class := range []fault.Class{fault.ClassPermanent, fault.ClassDefect} {
		rep := &recordingReporter{}
		r := testRetrier(NewBackoff(BackoffConfig{MaxAttempts: 10}), rep)

		calls := 0
		out := Execute(context.Background(), r, func(ctx context.Context) outcome.Outcome[int] {
			calls++
			f := permanent()
			f.Class = class
			return outcome.Fail[int](f)
		})

		if calls != 1 {
			t.Errorf("class %v: attempts = %d, want 1", class, calls)
		}
		if len(rep.attempts) != 0 {
			t.Errorf("class %v: retry attempts reported", class)
		}
		if len(rep.reasons) != 1 || rep.reasons[0] != ReasonNotRetryable {
			t.Errorf("class %v: reasons = %v", class, rep.reasons)
		}
		if !out.IsFail() {
			t.Errorf("class %v: outcome not Fail", class)
		}
	}
}

func TestExecute_BudgetExhaustion(t *testing.T) {
	rep := &recordingReporter{}
	r := testRetrier(NewFixed(FixedConfig{MaxAttempts: 100, Delay: 300 * time.Millisecond}), rep,
		WithBudget(500*time.Millisecond))

	calls := 0
	Execute(context.Background(), r, func(ctx context.Context) outcome.Outcome[int] {
		calls++
		return outcome.Fail[int](transient(0))
	})

	// 300ms after attempt 1, 300ms after attempt 2; elapsed reaches
	// 600ms >= 500ms before attempt 3 is judged.
	if calls != 3 {
		t.Errorf("attempts = %d, want 3", calls)
	}
	if len(rep.reasons) != 1 || rep.reasons[0] != ReasonBudgetExhausted {
		t.Errorf("reasons = %v, want [%q]", rep.reasons, ReasonBudgetExhausted)
	}
}

func TestExecute_CancellationDuringWait(t *testing.T) {
	rep := &recordingReporter{}
	ctx, cancel := context.WithCancel(context.Background())

	r := New(NewFixed(FixedConfig{MaxAttempts: 5, Delay: time.Hour}),
		WithReporter(rep),
		WithSleep(func(ctx context.Context, d time.Duration) error {
			cancel()
			return ctx.Err()
		}),
	)

	calls := 0
	out := Execute(ctx, r, func(ctx context.Context) outcome.Outcome[int] {
		calls++
		f := transient(0)
		f.Message = "before cancel"
		return outcome.Fail[int](f)
	})

	if calls != 1 {
		t.Errorf("attempts after cancellation = %d, want 1", calls)
	}
	f, ok := out.Failure()
	if !ok || f.Message != "before cancel" {
		t.Errorf("outcome = (%+v, %v), want the pre-cancel failure as-is", f, ok)
	}
	// One attempt notification fired before the wait; no exhaustion
	// notification after cancellation.
	if len(rep.attempts) != 1 || len(rep.exhausted) != 0 {
		t.Errorf("notifications = %d attempts, %d exhausted; want 1, 0",
			len(rep.attempts), len(rep.exhausted))
	}
}

func TestExecute_ReporterPanicDoesNotAbortLoop(t *testing.T) {
	r := testRetrier(NewFixed(FixedConfig{MaxAttempts: 3, Delay: time.Millisecond}), &recordingReporter{},
		WithReporter(panickyReporter{}))

	calls := 0
	out := Execute(context.Background(), r, func(ctx context.Context) outcome.Outcome[int] {
		calls++
		if calls < 3 {
			return outcome.Fail[int](transient(0))
		}
		return outcome.Ok(calls)
	})

	if v, _ := out.Value(); v != 3 {
		t.Errorf("loop aborted by reporter panic: calls = %d", calls)
	}
}

type panickyReporter struct{}

func (panickyReporter) Report(context.Context, fault.Failure) { panic("down") }

func (panickyReporter) ReportRetryAttempt(context.Context, fault.Failure, int, time.Duration) {
	panic("down")
}

func (panickyReporter) ReportRetryExhausted(context.Context, fault.Failure, int, string) {
	panic("down")
}

func TestExecuteGuided_FeedbackSequence(t *testing.T) {
	rep := &recordingReporter{}
	r := testRetrier(NewFixed(FixedConfig{MaxAttempts: 3, Delay: time.Millisecond}), rep,
		WithInterpreter(func(f fault.Failure) (string, bool) {
			return "fix: " + f.Message, true
		}),
	)

	var seen []string
	out := ExecuteGuided(context.Background(), r, func(ctx context.Context, prior *Feedback) outcome.Outcome[string] {
		if prior == nil {
			seen = append(seen, "<nil>")
			f := transient(0)
			f.Message = "X"
			return outcome.Fail[string](f)
		}
		seen = append(seen, prior.Hint)
		return outcome.Ok("corrected")
	})

	if v, _ := out.Value(); v != "corrected" {
		t.Errorf("final outcome = %v", out.Err())
	}
	if len(seen) != 2 || seen[0] != "<nil>" || seen[1] != "fix: X" {
		t.Errorf("feedback sequence = %v, want [<nil> fix: X]", seen)
	}
}

func TestExecuteGuided_NoInterpreterStillCarriesFailure(t *testing.T) {
	r := testRetrier(NewFixed(FixedConfig{MaxAttempts: 2, Delay: time.Millisecond}), &recordingReporter{})

	var got *Feedback
	ExecuteGuided(context.Background(), r, func(ctx context.Context, prior *Feedback) outcome.Outcome[int] {
		if prior == nil {
			f := transient(0)
			f.Message = "first"
			return outcome.Fail[int](f)
		}
		got = prior
		return outcome.Ok(1)
	})

	if got == nil {
		t.Fatal("second attempt received no feedback")
	}
	if got.Hint != "" {
		t.Errorf("Hint = %q, want empty without an interpreter", got.Hint)
	}
	if got.Failure.Message != "first" {
		t.Errorf("Failure.Message = %q, want first", got.Failure.Message)
	}
}

func TestSleepContext(t *testing.T) {
	if err := sleepContext(context.Background(), 0); err != nil {
		t.Errorf("zero sleep error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := sleepContext(ctx, time.Hour); err == nil {
		t.Error("cancelled sleep returned nil")
	}

	start := time.Now()
	if err := sleepContext(context.Background(), 5*time.Millisecond); err != nil {
		t.Errorf("short sleep error = %v", err)
	}
	if time.Since(start) < 5*time.Millisecond {
		t.Error("sleep returned too early")
	}
}
