package report

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jonwraymond/fallible/fault"
)

// OTelReporter records failure and retry metrics against an
// OpenTelemetry meter and annotates the active span with events.
type OTelReporter struct {
	failures  metric.Int64Counter
	attempts  metric.Int64Counter
	exhausted metric.Int64Counter
	delayHist metric.Float64Histogram
}

// NewOTelReporter creates the instruments on meter.
func NewOTelReporter(meter metric.Meter) (*OTelReporter, error) {
	failures, err := meter.Int64Counter(
		"fallible.failures",
		metric.WithDescription("Failed boundary crossings"),
		metric.WithUnit("{failure}"),
	)
	if err != nil {
		return nil, err
	}

	attempts, err := meter.Int64Counter(
		"fallible.retry.attempts",
		metric.WithDescription("Retry decisions of kind retry"),
		metric.WithUnit("{attempt}"),
	)
	if err != nil {
		return nil, err
	}

	exhausted, err := meter.Int64Counter(
		"fallible.retry.exhausted",
		metric.WithDescription("Retry loops that gave up"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, err
	}

	delayHist, err := meter.Float64Histogram(
		"fallible.retry.delay_ms",
		metric.WithDescription("Delay before each retry in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &OTelReporter{
		failures:  failures,
		attempts:  attempts,
		exhausted: exhausted,
		delayHist: delayHist,
	}, nil
}

func (r *OTelReporter) Report(ctx context.Context, f fault.Failure) {
	opt := metric.WithAttributes(failureAttributes(f)...)
	r.failures.Add(ctx, 1, opt)

	span := trace.SpanFromContext(ctx)
	if span.IsRecording() {
		span.AddEvent("failure", trace.WithAttributes(failureAttributes(f)...))
	}
}

func (r *OTelReporter) ReportRetryAttempt(ctx context.Context, f fault.Failure, attempt int, delay time.Duration) {
	attrs := append(failureAttributes(f), attribute.Int("attempt", attempt))
	opt := metric.WithAttributes(attrs...)
	r.attempts.Add(ctx, 1, opt)
	r.delayHist.Record(ctx, float64(delay.Milliseconds()), opt)

	span := trace.SpanFromContext(ctx)
	if span.IsRecording() {
		span.AddEvent("retry", trace.WithAttributes(
			append(attrs, attribute.String("delay", delay.String()))...))
	}
}

func (r *OTelReporter) ReportRetryExhausted(ctx context.Context, f fault.Failure, totalAttempts int, reason string) {
	attrs := append(failureAttributes(f),
		attribute.Int("total_attempts", totalAttempts),
		attribute.String("reason", reason),
	)
	r.exhausted.Add(ctx, 1, metric.WithAttributes(attrs...))

	span := trace.SpanFromContext(ctx)
	if span.IsRecording() {
		span.AddEvent("retries exhausted", trace.WithAttributes(attrs...))
	}
}

func failureAttributes(f fault.Failure) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("failure.id", f.ID.String()),
		attribute.String("failure.class", f.Class.String()),
		attribute.String("operation", f.Operation),
	}
}
