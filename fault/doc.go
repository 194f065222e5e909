// Package fault defines the failure model shared by the whole library.
//
// A Failure is an immutable, fully-contextualized description of an
// operational failure: a stable identity, a human-readable message, a
// three-way class governing retry eligibility, an optional advisory
// retry delay, and operational context (operation name, timestamp,
// correlation id, tags). Failures are values; they are never mutated,
// only copied with changes.
//
// The Class taxonomy:
//
//   - ClassTransient: a retry may succeed (timeouts, connectivity).
//   - ClassPermanent: a retry will not help (bad input, missing resource).
//   - ClassDefect: a programmer or configuration error; never retried,
//     surfaced loudly through the fatal-signal path instead of as a value.
package fault
