package duration

import (
	"fmt"
	"strconv"
	"strings"

	kingpin "github.com/alecthomas/kingpin/v2" // Command line flag parsing.
)

// ParseUnit returns the Unit for a display symbol such as "ms".
// "us" is accepted as well as "µs".
func ParseUnit(s string) (Unit, error) {
	if s == "us" {
		return Microsecond, nil
	}
	for _, u := range Units {
		if u.Symbol() == s {
			return u, nil
		}
	}
	return 0, fmt.Errorf("unknown unit %q", s)
}

// UnitSymbols returns the symbols accepted by ParseUnit, largest unit first.
func UnitSymbols() []string {
	out := make([]string, 0, len(Units)+1)
	for _, u := range Units {
		out = append(out, u.Symbol())
	}
	return append(out, "us")
}

type unitValue struct {
	u Unit
	d *Duration
}

// UnitValue returns a kingpin.Value that sets d from a plain number
// of unit u, e.g. "1.5" for a flag named --timeout.secs.
func UnitValue(u Unit, d *Duration) kingpin.Value {
	return &unitValue{u: u, d: d}
}

// UnitVar binds a kingpin flag or arg to d in unit u.
func UnitVar(s kingpin.Settings, u Unit, d *Duration) {
	s.SetValue(UnitValue(u, d))
}

func (v *unitValue) Set(s string) error {
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("expected a number of %s, got %q", v.u, s)
	}
	d, err := v.u.From(n)
	if err != nil {
		return err
	}
	*v.d = d
	return nil
}

func (v *unitValue) String() string {
	return strconv.FormatFloat(v.u.In(*v.d), 'f', -1, 64)
}

type unitEnumValue struct {
	u *Unit
}

// UnitEnumVar binds a kingpin flag or arg to a Unit given by its symbol.
func UnitEnumVar(s kingpin.Settings, u *Unit) {
	s.SetValue(&unitEnumValue{u: u})
}

func (v *unitEnumValue) Set(s string) error {
	u, err := ParseUnit(s)
	if err != nil {
		return err
	}
	*v.u = u
	return nil
}

func (v *unitEnumValue) String() string {
	return v.u.Symbol()
}
