// Package boundary adapts fallible calls into outcome values.
//
// A Boundary wraps a call that may return an error. Success becomes
// outcome.Ok. An operational error is classified, enriched into a full
// fault.Failure (operation, timestamp, correlation id, tags), reported
// exactly once, and returned as outcome.Fail. Errors whose
// classification is a defect are deliberately not converted: the
// boundary re-panics with the original error so it unwinds to the
// process fatal-signal handler, and panics raised inside the wrapped
// call are never recovered for the same reason.
//
// Transient and permanent failures therefore never unwind the call
// stack; the only way to observe an unhandled signal through a
// boundary is a true defect.
package boundary
