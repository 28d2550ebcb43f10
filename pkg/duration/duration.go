package duration

import (
	"fmt"
	"math"
	"time"
)

// Duration is a non-negative span of time with nanosecond resolution.
// The zero value is a valid zero Duration.
type Duration struct {
	ns int64
}

// Zero is the zero Duration.
var Zero = Duration{}

// maxFloat is the smallest float64 that doesn't fit in an int64 (2^63).
const maxFloat = float64(math.MaxInt64)

// validate converts a nanosecond count into a Duration.
// Non-finite or out of range counts are an error,
// negative counts saturate to zero.
func validate(ns float64) (Duration, error) {
	if math.IsNaN(ns) || math.IsInf(ns, 0) {
		return Zero, fmt.Errorf("%v nanoseconds: %w", ns, ErrInvalidDuration)
	}
	if ns < 0 {
		return Zero, nil
	}
	ns = math.Round(ns)
	if ns >= maxFloat {
		return Zero, fmt.Errorf("%g nanoseconds overflows int64: %w", ns, ErrInvalidDuration)
	}
	return Duration{ns: int64(ns)}, nil
}

// fromInt converts an integer nanosecond count into a Duration,
// saturating negative counts to zero.
func fromInt(ns int64) Duration {
	if ns < 0 {
		return Zero
	}
	return Duration{ns: ns}
}

// FromNanos returns a Duration of n nanoseconds.
func FromNanos(n float64) (Duration, error) { return Nanosecond.From(n) }

// FromMicros returns a Duration of n microseconds.
func FromMicros(n float64) (Duration, error) { return Microsecond.From(n) }

// FromMillis returns a Duration of n milliseconds.
func FromMillis(n float64) (Duration, error) { return Millisecond.From(n) }

// FromSecs returns a Duration of n seconds.
func FromSecs(n float64) (Duration, error) { return Second.From(n) }

// FromMinutes returns a Duration of n minutes.
func FromMinutes(n float64) (Duration, error) { return Minute.From(n) }

// FromHours returns a Duration of n hours.
func FromHours(n float64) (Duration, error) { return Hour.From(n) }

// MustFromNanos is like FromNanos, but panics if there's an error.
func MustFromNanos(n float64) Duration { return must(FromNanos(n)) }

// MustFromMicros is like FromMicros, but panics if there's an error.
func MustFromMicros(n float64) Duration { return must(FromMicros(n)) }

// MustFromMillis is like FromMillis, but panics if there's an error.
func MustFromMillis(n float64) Duration { return must(FromMillis(n)) }

// MustFromSecs is like FromSecs, but panics if there's an error.
func MustFromSecs(n float64) Duration { return must(FromSecs(n)) }

// MustFromMinutes is like FromMinutes, but panics if there's an error.
func MustFromMinutes(n float64) Duration { return must(FromMinutes(n)) }

// MustFromHours is like FromHours, but panics if there's an error.
func MustFromHours(n float64) Duration { return must(FromHours(n)) }

func must(d Duration, err error) Duration {
	if err != nil {
		panic(err)
	}
	return d
}

// FromStd converts a time.Duration. Negative values saturate to zero.
func FromStd(d time.Duration) Duration {
	return fromInt(int64(d))
}

// Std returns d as a time.Duration, for use with timers,
// sleeps, and context deadlines.
func (d Duration) Std() time.Duration {
	return time.Duration(d.ns)
}

// IsZero returns true if d is zero.
func (d Duration) IsZero() bool {
	return d.ns == 0
}
