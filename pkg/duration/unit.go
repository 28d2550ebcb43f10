package duration

import "fmt"

// Unit is a unit of time a Duration can be built from or observed in.
type Unit int

// Supported units, smallest first.
const (
	Nanosecond Unit = iota
	Microsecond
	Millisecond
	Second
	Minute
	Hour
)

var units = [...]struct {
	scale  int64
	symbol string
	name   string
}{
	Nanosecond:  {1, "ns", "nanoseconds"},
	Microsecond: {1e3, "µs", "microseconds"},
	Millisecond: {1e6, "ms", "milliseconds"},
	Second:      {1e9, "s", "seconds"},
	Minute:      {60e9, "m", "minutes"},
	Hour:        {3600e9, "h", "hours"},
}

// Units lists every supported Unit, largest first.
var Units = []Unit{Hour, Minute, Second, Millisecond, Microsecond, Nanosecond}

// Valid returns true if u is one of the supported units.
func (u Unit) Valid() bool {
	return u >= Nanosecond && u <= Hour
}

// Scale returns the number of nanoseconds in one u.
func (u Unit) Scale() int64 {
	return units[u].scale
}

// Symbol returns the short suffix used when displaying u, e.g. "ms".
func (u Unit) Symbol() string {
	return units[u].symbol
}

// String returns the plural name of u, e.g. "milliseconds".
func (u Unit) String() string {
	if !u.Valid() {
		return fmt.Sprintf("Unit(%d)", int(u))
	}
	return units[u].name
}

// From returns a Duration of n units.
func (u Unit) From(n float64) (Duration, error) {
	d, err := validate(n * float64(u.Scale()))
	if err != nil {
		return Zero, fmt.Errorf("%v %s: %w", n, u, err)
	}
	return d, nil
}

// In returns d as a number of units.
func (u Unit) In(d Duration) float64 {
	return float64(d.ns) / float64(u.Scale())
}
