// Package retry drives repeated solver attempts: a collapse either
// succeeds or fails with a propagation contradiction, and a retry policy
// decides how many attempts to make, how to source their randomness, and
// what the caller gets back.
//
// What:
//
//   - Func[T]: one attempt — given a randomness source, produce a T or a
//     contradiction-class error.
//   - Forever[T]: retries indefinitely; its return carries no failure
//     case (the caller accepts unbounded retry cost).
//   - NumTimes[T]: up to N sequential attempts; result or error.
//     NumTimes with N=0 fails immediately without invoking the attempt.
//   - ParNumTimes[T]: up to N attempts spread across concurrent workers;
//     first success wins and cancels the rest, all-fail reports a single
//     aggregated error.
//
// Why:
//
//   - Wave Function Collapse attempts fail nondeterministically; policy
//     choice is a cost/guarantee trade-off that belongs to the caller,
//     not the solver. The policies are generic so the same machinery
//     serves non-image uses of the solving engine; domain adapters (see
//     package wfcimage) convert each policy's raw return to a domain
//     result.
//
// Concurrency:
//
//   - Sequential policies block the caller between attempts.
//   - ParNumTimes requires fn to be safe for concurrent use; every worker
//     gets its own rand.Rand seeded from the parent source, so workers
//     share no mutable state.
//
// Errors:
//
//   - ErrAttemptsExhausted: every attempt of a bounded policy failed. It
//     wraps wfc.ErrContradiction, so errors.Is classifies it as a
//     contradiction-class failure.
package retry
