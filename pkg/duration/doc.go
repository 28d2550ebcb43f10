// Package duration provides Duration, an immutable non-negative span of time
// for timeouts, delays, and backoff calculations.
//
// Every Duration is built by a unit constructor (FromSecs, FromMillis, ...)
// or returned by an operation on other Durations, so its nanosecond count
// is always finite and >= 0. Results that would be negative saturate to zero.
// Results that would overflow, and non-finite inputs, return ErrInvalidDuration.
//
// Durations are stored as an int64 nanosecond count. The largest
// representable Duration is math.MaxInt64 nanoseconds (about 292 years).
// Fractional nanoseconds are rounded half away from zero.
package duration
