package fault

import (
	"fmt"
	"time"
)

// Failure describes what went wrong, fully contextualized. It is a
// value: methods that change it return a modified copy and leave the
// receiver untouched.
type Failure struct {
	// ID is the stable failure category.
	ID ID

	// Message is a human-readable description.
	Message string

	// Class governs retry eligibility and escalation.
	Class Class

	// Cause is the originating error, kept for diagnostics only.
	// Callers must not dispatch on it; the Class already did.
	Cause error

	// RetryAfter, when positive, is an advisory lower bound on the
	// delay before the next attempt. It is a hint, never a command.
	RetryAfter time.Duration

	// Operation names the call that failed.
	Operation string

	// OccurredAt is when the failure was observed.
	OccurredAt time.Time

	// CorrelationID is the optional trace token for this call chain.
	CorrelationID string

	// Tags carries free-form operational metadata.
	Tags map[string]string
}

// Error implements the error interface so a Failure can cross APIs
// that speak error.
func (f Failure) Error() string {
	if f.Operation != "" {
		return fmt.Sprintf("%s: %s (operation %s)", f.ID, f.Message, f.Operation)
	}
	return fmt.Sprintf("%s: %s", f.ID, f.Message)
}

// Unwrap exposes the diagnostic cause to errors.Is / errors.As.
func (f Failure) Unwrap() error {
	return f.Cause
}

// Retryable reports whether the failure's class permits another attempt.
func (f Failure) Retryable() bool {
	return f.Class.Retryable()
}

// WithCorrelationID returns a copy carrying the given correlation id.
func (f Failure) WithCorrelationID(id string) Failure {
	f.CorrelationID = id
	return f
}

// WithOperation returns a copy attributed to the given operation.
func (f Failure) WithOperation(operation string) Failure {
	f.Operation = operation
	return f
}

// WithTag returns a copy with one tag added. The tag map is copied,
// never shared with the receiver.
func (f Failure) WithTag(key, value string) Failure {
	return f.WithTags(map[string]string{key: value})
}

// WithTags returns a copy with the given tags merged in.
func (f Failure) WithTags(tags map[string]string) Failure {
	if len(tags) == 0 {
		return f
	}
	merged := make(map[string]string, len(f.Tags)+len(tags))
	for k, v := range f.Tags {
		merged[k] = v
	}
	for k, v := range tags {
		merged[k] = v
	}
	f.Tags = merged
	return f
}
