package classify

import (
	"time"

	"github.com/jonwraymond/fallible/fault"
)

// Draft is a failure before operational context is attached: taxonomy,
// identity, message and advisory delay only.
type Draft struct {
	// ID is the stable failure category.
	ID fault.ID

	// Message is a human-readable description.
	Message string

	// Class governs retry eligibility.
	Class fault.Class

	// RetryAfter, when positive, is an advisory lower bound on the
	// delay before the next attempt.
	RetryAfter time.Duration
}

// Classifier maps an operation name and a raised error to a Draft.
//
// Contract:
//   - Purity: no side effects, no stored state.
//   - Determinism: the same error category and operation always yield
//     the same draft.
type Classifier interface {
	Classify(operation string, err error) Draft
}

// Func adapts a plain function to the Classifier interface.
type Func func(operation string, err error) Draft

func (f Func) Classify(operation string, err error) Draft {
	return f(operation, err)
}
