package outcome

import (
	"github.com/jonwraymond/fallible/fault"
)

// Outcome is an immutable success-or-failure value. The zero value is
// Ok with T's zero value; prefer the Ok and Fail constructors.
type Outcome[T any] struct {
	value         T
	failure       fault.Failure
	failed        bool
	correlationID string
}

// Ok returns a successful outcome carrying v.
func Ok[T any](v T) Outcome[T] {
	return Outcome[T]{value: v}
}

// Fail returns a failed outcome carrying f. If f already carries a
// correlation id, the outcome inherits it.
func Fail[T any](f fault.Failure) Outcome[T] {
	return Outcome[T]{failure: f, failed: true, correlationID: f.CorrelationID}
}

// IsOk reports whether the Ok variant is live.
func (o Outcome[T]) IsOk() bool { return !o.failed }

// IsFail reports whether the Fail variant is live.
func (o Outcome[T]) IsFail() bool { return o.failed }

// Value returns the success value and whether the Ok variant is live.
func (o Outcome[T]) Value() (T, bool) {
	return o.value, !o.failed
}

// Failure returns the failure and whether the Fail variant is live.
func (o Outcome[T]) Failure() (fault.Failure, bool) {
	return o.failure, o.failed
}

// Err returns nil on Ok and the failure as an error on Fail.
func (o Outcome[T]) Err() error {
	if !o.failed {
		return nil
	}
	return o.failure
}

// CorrelationID returns the trace token attached to this outcome, or
// "" if none is set.
func (o Outcome[T]) CorrelationID() string { return o.correlationID }

// WithCorrelationID returns a copy carrying the given correlation id.
func (o Outcome[T]) WithCorrelationID(id string) Outcome[T] {
	o.correlationID = id
	if o.failed {
		o.failure = o.failure.WithCorrelationID(id)
	}
	return o
}

// GetOrElse returns the value on Ok and fallback on Fail.
func (o Outcome[T]) GetOrElse(fallback T) T {
	if o.failed {
		return fallback
	}
	return o.value
}

// GetOrElseGet returns the value on Ok; on Fail it derives one from
// the failure.
func (o Outcome[T]) GetOrElseGet(fn func(fault.Failure) T) T {
	if o.failed {
		return fn(o.failure)
	}
	return o.value
}

// MustGet returns the value on Ok. Calling it on Fail is programmer
// misuse, not an operational failure: it panics with a
// *fault.DefectError carrying the failure so the fatal-signal handler
// can surface it.
func (o Outcome[T]) MustGet() T {
	if o.failed {
		panic(&fault.DefectError{Operation: "outcome.MustGet", Failure: o.failure})
	}
	return o.value
}

// Recover substitutes a value on Fail and is a no-op on Ok.
func (o Outcome[T]) Recover(fn func(fault.Failure) T) Outcome[T] {
	if !o.failed {
		return o
	}
	out := Ok(fn(o.failure))
	out.correlationID = o.correlationID
	return out
}

// RecoverWith substitutes a whole outcome on Fail and is a no-op on
// Ok. Correlation ids follow the transform rule: the substitute's own
// id wins, otherwise the outer id is carried forward.
func (o Outcome[T]) RecoverWith(fn func(fault.Failure) Outcome[T]) Outcome[T] {
	if !o.failed {
		return o
	}
	return inherit(fn(o.failure), o.correlationID)
}

// Map applies fn to the value on Ok and propagates the failure and its
// correlation id untouched on Fail.
func Map[T, U any](o Outcome[T], fn func(T) U) Outcome[U] {
	if o.failed {
		out := Fail[U](o.failure)
		out.correlationID = o.correlationID
		return out
	}
	out := Ok(fn(o.value))
	out.correlationID = o.correlationID
	return out
}

// FlatMap applies fn to the value on Ok and propagates the failure and
// its correlation id untouched on Fail. An id set by fn's outcome wins
// over the outer one.
func FlatMap[T, U any](o Outcome[T], fn func(T) Outcome[U]) Outcome[U] {
	if o.failed {
		out := Fail[U](o.failure)
		out.correlationID = o.correlationID
		return out
	}
	return inherit(fn(o.value), o.correlationID)
}

// inherit applies the correlation precedence rule: inner wins, outer
// fills the gap.
func inherit[T any](o Outcome[T], outer string) Outcome[T] {
	if o.correlationID == "" && outer != "" {
		return o.WithCorrelationID(outer)
	}
	return o
}
