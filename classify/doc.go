// Package classify maps raised errors to failure drafts.
//
// A Classifier is a pure, deterministic function from an operation
// name and an error to a Draft: taxonomy class, failure identity,
// message and advisory retry delay, before any operational context
// (timestamp, correlation id, tags) is attached. The boundary package
// performs that enrichment.
//
// The default classifier is data-driven: an ordered rule table where
// the first matching rule wins, so dispatch can be inspected and
// extended without touching the boundary. Unrecognized errors classify
// as transient with the fault.unknown identity: an unrecognized
// operational error is assumed recoverable, not a bug. Errors known to
// be programmer mistakes classify as defects and never become values.
//
// Fatal is the second classifier, for the fatal-signal boundary only:
// it maps everything to a defect, since by definition nothing that
// reaches it was caught by an operational boundary.
package classify
