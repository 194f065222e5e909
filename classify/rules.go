package classify

import (
	"context"
	"errors"
	"io/fs"
	"net"
	"syscall"
	"time"

	"github.com/jonwraymond/fallible/fault"
)

// Well-known failure identities emitted by the built-in rules.
var (
	IDDefect       = fault.MustID("fault", "defect")
	IDUnknown      = fault.MustID("fault", "unknown")
	IDTimeout      = fault.MustID("net", "timeout")
	IDUnreachable  = fault.MustID("net", "unreachable")
	IDCanceled     = fault.MustID("op", "canceled")
	IDNotFound     = fault.MustID("io", "not_found")
	IDAccessDenied = fault.MustID("io", "access_denied")
)

// DefaultTransientDelay is the modest advisory delay attached to
// connectivity and timeout failures by the built-in rules.
const DefaultTransientDelay = time.Second

// Rule is one row of a RuleClassifier's dispatch table.
type Rule struct {
	// Name identifies the rule in diagnostics.
	Name string

	// Match reports whether the rule applies to err.
	Match func(err error) bool

	// Class, ID and RetryAfter shape the resulting draft.
	Class      fault.Class
	ID         fault.ID
	RetryAfter time.Duration
}

// RuleClassifier dispatches by an ordered rule table; the first
// matching rule wins. The zero value classifies everything with the
// fallback draft.
type RuleClassifier struct {
	rules    []Rule
	fallback Draft
}

// NewRuleClassifier builds a classifier from the given rules. The
// fallback for unmatched errors is transient with the fault.unknown
// identity; unrecognized operational errors are recoverable by
// default.
func NewRuleClassifier(rules ...Rule) *RuleClassifier {
	return &RuleClassifier{
		rules: rules,
		fallback: Draft{
			ID:    IDUnknown,
			Class: fault.ClassTransient,
		},
	}
}

// WithFallback returns a copy using the given draft for unmatched
// errors. The draft's message field is ignored; the error's text is
// used.
func (c *RuleClassifier) WithFallback(fallback Draft) *RuleClassifier {
	return &RuleClassifier{rules: c.rules, fallback: fallback}
}

// Classify applies the first matching rule to err.
func (c *RuleClassifier) Classify(operation string, err error) Draft {
	for _, r := range c.rules {
		if r.Match != nil && r.Match(err) {
			return Draft{
				ID:         r.ID,
				Message:    err.Error(),
				Class:      r.Class,
				RetryAfter: r.RetryAfter,
			}
		}
	}
	d := c.fallback
	d.Message = err.Error()
	return d
}

// Default returns the built-in rule classifier:
//
//   - defect-marked errors → defect
//   - cancellation → permanent (the caller gave up; retrying fights it)
//   - deadlines and network timeouts → transient, advisory delay
//   - refused/reset/broken connections → transient, advisory delay
//   - missing files and permission errors → permanent
//   - everything else → transient, fault.unknown
func Default() *RuleClassifier {
	return NewRuleClassifier(DefaultRules()...)
}

// DefaultRules returns a fresh copy of the built-in rule table, in
// matching order, for callers that want to extend it.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name:  "defect",
			Match: fault.IsDefect,
			Class: fault.ClassDefect,
			ID:    IDDefect,
		},
		{
			Name:  "canceled",
			Match: func(err error) bool { return errors.Is(err, context.Canceled) },
			Class: fault.ClassPermanent,
			ID:    IDCanceled,
		},
		{
			Name:       "timeout",
			Match:      isTimeout,
			Class:      fault.ClassTransient,
			ID:         IDTimeout,
			RetryAfter: DefaultTransientDelay,
		},
		{
			Name:       "unreachable",
			Match:      isConnectivity,
			Class:      fault.ClassTransient,
			ID:         IDUnreachable,
			RetryAfter: DefaultTransientDelay,
		},
		{
			Name:  "not_found",
			Match: func(err error) bool { return errors.Is(err, fs.ErrNotExist) },
			Class: fault.ClassPermanent,
			ID:    IDNotFound,
		},
		{
			Name:  "access_denied",
			Match: func(err error) bool { return errors.Is(err, fs.ErrPermission) },
			Class: fault.ClassPermanent,
			ID:    IDAccessDenied,
		},
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, syscall.ETIMEDOUT) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

func isConnectivity(err error) bool {
	return errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.EPIPE)
}
