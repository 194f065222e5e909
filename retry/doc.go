// Package retry drives policy-controlled retry loops over outcome
// values.
//
// The decision side is pure: a Policy maps an immutable Context
// (attempt number, elapsed time, budget) and a fault.Failure to a
// Decision, either retry-after-delay or give-up-with-reason. All loop
// state lives in the Context value, which is rebuilt each iteration;
// the policy itself is stateless and independently testable.
//
// The Retrier runs the loop: invoke the attempt, consult the policy on
// failure, notify the reporter, wait, repeat. Attempts are strictly
// sequential; the inter-attempt wait is the only suspension point and
// honors context cancellation, in which case the loop returns the most
// recent failed outcome as-is.
//
// ExecuteGuided is the corrective variant: the attempt function
// receives feedback derived from the previous failure, so a fallible
// generator can self-correct. It is the same loop with the attempt
// signature widened, not a parallel machinery.
package retry
