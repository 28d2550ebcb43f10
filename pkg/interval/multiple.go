// Package interval aligns times and ticks to multiples of a duration.Duration.
package interval

import (
	"time"

	"github.com/mintel/duration/pkg/duration"
)

// Ceil returns the result of rounding t up to a multiple of d (since the zero time).
// If d is zero, Ceil returns t unchanged.
func Ceil(t time.Time, d duration.Duration) time.Time {
	if d.IsZero() {
		return t
	}
	if IsMultiple(t, d) {
		return t
	}
	return Next(t, d)
}

// Prev returns the nearest multiple of d before t (since the zero time).
// If d is zero, Prev returns t unchanged.
func Prev(t time.Time, d duration.Duration) time.Time {
	if d.IsZero() {
		return t
	}
	std := d.Std()
	t2 := t.Truncate(std)
	if t2.Equal(t) {
		t2 = t2.Add(-std)
	}
	return t2
}

// Next returns the nearest multiple of d after t (since the zero time).
// If d is zero, Next returns t unchanged.
func Next(t time.Time, d duration.Duration) time.Time {
	if d.IsZero() {
		return t
	}
	std := d.Std()
	return t.Truncate(std).Add(std)
}

// IsMultiple returns true if t is some multiple of d (since the zero time).
// If d is zero, IsMultiple returns false.
func IsMultiple(t time.Time, d duration.Duration) bool {
	if d.IsZero() {
		return false
	}
	return t.Truncate(d.Std()).Equal(t)
}

// Until returns the time from now until t, or zero if t has passed.
func Until(t time.Time) duration.Duration {
	return duration.FromStd(time.Until(t))
}
