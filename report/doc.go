// Package report defines the reporter collaborators notified by
// boundaries and retriers.
//
// The core only calls into the Reporter interface; concrete sinks are
// external. This package ships the compositions every deployment
// needs anyway: Noop for silent and test configurations, Multi and
// Parallel for fanning out to several sinks with per-sink isolation,
// a slog-backed sink for structured logs, and an OpenTelemetry sink
// for metrics and span events.
//
// Reporters must not panic; every caller in this module isolates them
// regardless, so a broken reporter can never affect the outcome of the
// computation it is observing.
package report
