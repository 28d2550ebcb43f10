package duration

import "fmt"

// Eq returns true if d and o are the same length.
func (d Duration) Eq(o Duration) bool { return d.ns == o.ns }

// Lt returns true if d is shorter than o.
func (d Duration) Lt(o Duration) bool { return d.ns < o.ns }

// Le returns true if d is shorter than or equal to o.
func (d Duration) Le(o Duration) bool { return d.ns <= o.ns }

// Gt returns true if d is longer than o.
func (d Duration) Gt(o Duration) bool { return d.ns > o.ns }

// Ge returns true if d is longer than or equal to o.
func (d Duration) Ge(o Duration) bool { return d.ns >= o.ns }

// Compare returns -1 if d is shorter than o, +1 if d is longer,
// and 0 if they're equal.
func (d Duration) Compare(o Duration) int {
	switch {
	case d.ns < o.ns:
		return -1
	case d.ns > o.ns:
		return 1
	default:
		return 0
	}
}

// Clamp returns d bounded to [min, max] inclusive.
// It returns ErrInvalidRange if min > max.
func (d Duration) Clamp(min, max Duration) (Duration, error) {
	if min.Gt(max) {
		return Zero, fmt.Errorf("clamp to [%s, %s]: %w", min, max, ErrInvalidRange)
	}
	switch {
	case d.Lt(min):
		return min, nil
	case d.Gt(max):
		return max, nil
	default:
		return d, nil
	}
}

// Min returns the shorter of a and b.
func Min(a, b Duration) Duration {
	if b.Lt(a) {
		return b
	}
	return a
}

// Max returns the longer of a and b.
func Max(a, b Duration) Duration {
	if b.Gt(a) {
		return b
	}
	return a
}
