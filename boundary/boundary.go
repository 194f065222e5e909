package boundary

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jonwraymond/fallible/classify"
	"github.com/jonwraymond/fallible/fault"
	"github.com/jonwraymond/fallible/outcome"
	"github.com/jonwraymond/fallible/report"
)

// Work is a fallible call executed under a Boundary.
type Work[T any] func(ctx context.Context) (T, error)

// Boundary translates raised errors into outcome values. Construct it
// with New; the zero value is not usable.
type Boundary struct {
	classifier classify.Classifier
	reporter   report.Reporter
	clock      func() time.Time
	newID      func() string
	logger     *slog.Logger
	tags       map[string]string
}

// Option configures a Boundary.
type Option func(*Boundary)

// WithClassifier sets the classifier. Default: classify.Default().
func WithClassifier(c classify.Classifier) Option {
	return func(b *Boundary) {
		if c != nil {
			b.classifier = c
		}
	}
}

// WithReporter sets the reporter. Default: report.Noop.
func WithReporter(r report.Reporter) Option {
	return func(b *Boundary) {
		if r != nil {
			b.reporter = r
		}
	}
}

// WithClock sets the timestamp source. Default: time.Now.
func WithClock(clock func() time.Time) Option {
	return func(b *Boundary) {
		if clock != nil {
			b.clock = clock
		}
	}
}

// WithCorrelationIDs sets the correlation-id generator. Default:
// uuid.NewString.
func WithCorrelationIDs(gen func() string) Option {
	return func(b *Boundary) {
		if gen != nil {
			b.newID = gen
		}
	}
}

// WithLogger sets the logger used when a reporter panic is swallowed.
// Default: slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(b *Boundary) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithTags sets base tags attached to every failure this boundary
// produces.
func WithTags(tags map[string]string) Option {
	return func(b *Boundary) {
		if len(tags) == 0 {
			return
		}
		merged := make(map[string]string, len(b.tags)+len(tags))
		for k, v := range b.tags {
			merged[k] = v
		}
		for k, v := range tags {
			merged[k] = v
		}
		b.tags = merged
	}
}

// New creates a Boundary with the given options.
func New(opts ...Option) *Boundary {
	b := &Boundary{
		classifier: classify.Default(),
		reporter:   report.Noop{},
		clock:      time.Now,
		newID:      uuid.NewString,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Call runs work under b. It is synchronous: it returns only after the
// work and any classification and reporting complete.
//
// A correlation id is attached to the returned outcome: the one from
// ctx if present (see ContextWithCorrelationID), else a generated one.
func Call[T any](ctx context.Context, b *Boundary, operation string, work Work[T]) outcome.Outcome[T] {
	correlationID := CorrelationIDFromContext(ctx)
	if correlationID == "" {
		correlationID = b.newID()
	}

	v, err := work(ctx)
	if err == nil {
		return outcome.Ok(v).WithCorrelationID(correlationID)
	}

	draft := b.classifier.Classify(operation, err)
	if draft.Class == fault.ClassDefect {
		// Defects must unwind to the fatal-signal handler: re-raise
		// the original error, no reporting, no Failure value.
		panic(err)
	}

	f := fault.Failure{
		ID:            draft.ID,
		Message:       draft.Message,
		Class:         draft.Class,
		Cause:         err,
		RetryAfter:    draft.RetryAfter,
		Operation:     operation,
		OccurredAt:    b.clock(),
		CorrelationID: correlationID,
	}.WithTags(b.tags)

	b.report(ctx, f)
	return outcome.Fail[T](f)
}

// report isolates the reporter: a panicking reporter is logged and
// dropped, never surfaced through the returned outcome.
func (b *Boundary) report(ctx context.Context, f fault.Failure) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.LogAttrs(ctx, slog.LevelWarn, "reporter panicked",
				slog.Any("panic", r),
				slog.String("failure_id", f.ID.String()),
			)
		}
	}()
	b.reporter.Report(ctx, f)
}
