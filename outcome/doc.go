// Package outcome provides the two-variant result value threaded
// through code that crosses into non-deterministic territory.
//
// An Outcome[T] is either Ok, carrying a value, or Fail, carrying a
// fault.Failure. Exactly one variant is ever live. Outcomes are
// immutable: combinators return new values.
//
// Transformations follow the usual result-algebra contract: Map and
// FlatMap apply on Ok and propagate the failure untouched on Fail,
// Recover and RecoverWith are the dual. An optional correlation id
// rides along: a transform that produces an outcome without its own id
// inherits the outer one, while an id the transform set itself wins.
//
// Type-changing transforms (Map, FlatMap) are package-level functions
// because Go methods cannot introduce type parameters.
package outcome
