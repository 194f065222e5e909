package report

import (
	"context"
	"log/slog"
	"time"

	"github.com/jonwraymond/fallible/fault"
)

// SlogReporter emits structured log records for every notification.
type SlogReporter struct {
	logger *slog.Logger
}

// NewSlogReporter creates a reporter writing through logger. A nil
// logger falls back to slog.Default().
func NewSlogReporter(logger *slog.Logger) *SlogReporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogReporter{logger: logger}
}

func (r *SlogReporter) Report(ctx context.Context, f fault.Failure) {
	r.logger.LogAttrs(ctx, slog.LevelWarn, "operation failed", failureAttrs(f)...)
}

func (r *SlogReporter) ReportRetryAttempt(ctx context.Context, f fault.Failure, attempt int, delay time.Duration) {
	attrs := append(failureAttrs(f),
		slog.Int("attempt", attempt),
		slog.Duration("delay", delay),
	)
	r.logger.LogAttrs(ctx, slog.LevelInfo, "retrying operation", attrs...)
}

func (r *SlogReporter) ReportRetryExhausted(ctx context.Context, f fault.Failure, totalAttempts int, reason string) {
	attrs := append(failureAttrs(f),
		slog.Int("total_attempts", totalAttempts),
		slog.String("reason", reason),
	)
	r.logger.LogAttrs(ctx, slog.LevelError, "retries exhausted", attrs...)
}

func failureAttrs(f fault.Failure) []slog.Attr {
	attrs := []slog.Attr{
		slog.String("failure_id", f.ID.String()),
		slog.String("class", f.Class.String()),
		slog.String("operation", f.Operation),
		slog.String("message", f.Message),
	}
	if f.CorrelationID != "" {
		attrs = append(attrs, slog.String("correlation_id", f.CorrelationID))
	}
	for k, v := range f.Tags {
		attrs = append(attrs, slog.String("tag."+k, v))
	}
	return attrs
}
