package duration

import (
	"strconv"
	"strings"
)

// Number of decimal places kept when a Duration isn't a
// whole number of its display unit.
const (
	displayPlaces = 6
	displayScale  = 1e6
)

// String returns d in the largest unit that is either an exact divisor of d
// or no longer than d, e.g. "1h", "1.5s", "250µs", "1ns".
// Fractions are rounded to 6 decimal places. Zero is "0h".
func (d Duration) String() string {
	if d.ns == 0 {
		return "0" + Hour.Symbol()
	}
	u := Nanosecond
	for _, c := range Units {
		if s := c.Scale(); d.ns%s == 0 || d.ns >= s {
			u = c
			break
		}
	}
	return formatIn(d.ns, u.Scale()) + u.Symbol()
}

// formatIn formats ns/scale exactly, rounding half up to displayPlaces
// decimal places and trimming trailing zeros.
func formatIn(ns, scale int64) string {
	whole, rem := ns/scale, ns%scale
	if rem == 0 {
		return strconv.FormatInt(whole, 10)
	}
	// rem < scale <= 3.6e12, so rem*1e6 fits in an int64.
	frac := (rem*displayScale + scale/2) / scale
	if frac == displayScale {
		whole++
		frac = 0
	}
	if frac == 0 {
		return strconv.FormatInt(whole, 10)
	}
	digits := strconv.FormatInt(frac, 10)
	digits = strings.Repeat("0", displayPlaces-len(digits)) + digits
	return strconv.FormatInt(whole, 10) + "." + strings.TrimRight(digits, "0")
}
