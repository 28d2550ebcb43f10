package duration

import (
	"testing"

	kingpin "github.com/alecthomas/kingpin/v2" // Command line flag parsing.
	"github.com/stretchr/testify/assert"       // Test assertions e.g. equality.
)

func TestUnitVar(t *testing.T) {
	newApp := func(d *Duration) *kingpin.Application {
		app := kingpin.New("test", "")
		UnitVar(app.Flag("timeout.secs", "Timeout.").Default("1.5"), Second, d)
		return app
	}

	t.Run("default", func(t *testing.T) {
		var d Duration
		_, err := newApp(&d).Parse(nil)
		if assert.NoError(t, err) {
			assert.Equal(t, MustFromMillis(1500), d)
		}
	})

	t.Run("set", func(t *testing.T) {
		var d Duration
		_, err := newApp(&d).Parse([]string{"--timeout.secs=30"})
		if assert.NoError(t, err) {
			assert.Equal(t, MustFromSecs(30), d)
		}
	})

	t.Run("negative", func(t *testing.T) {
		var d Duration
		_, err := newApp(&d).Parse([]string{"--timeout.secs=-1"})
		if assert.NoError(t, err) {
			assert.True(t, d.IsZero())
		}
	})

	t.Run("string_duration", func(t *testing.T) {
		var d Duration
		_, err := newApp(&d).Parse([]string{"--timeout.secs=5s"})
		assert.Error(t, err)
	})

	t.Run("non_finite", func(t *testing.T) {
		var d Duration
		_, err := newApp(&d).Parse([]string{"--timeout.secs=NaN"})
		assert.Error(t, err)
	})
}

func TestUnitValue_String(t *testing.T) {
	d := MustFromMillis(1500)
	assert.Equal(t, "1.5", UnitValue(Second, &d).String())
	assert.Equal(t, "1500", UnitValue(Millisecond, &d).String())
}

func TestParseUnit(t *testing.T) {
	for _, u := range Units {
		got, err := ParseUnit(u.Symbol())
		if assert.NoError(t, err) {
			assert.Equal(t, u, got)
		}
	}
	got, err := ParseUnit("us")
	if assert.NoError(t, err) {
		assert.Equal(t, Microsecond, got)
	}
	_, err = ParseUnit("d")
	assert.Error(t, err)
	assert.Equal(t, []string{"h", "m", "s", "ms", "µs", "ns", "us"}, UnitSymbols())
}

func TestUnitEnumVar(t *testing.T) {
	var u Unit
	app := kingpin.New("test", "")
	UnitEnumVar(app.Flag("unit", "Unit.").Default("s"), &u)
	_, err := app.Parse([]string{"--unit=us"})
	if assert.NoError(t, err) {
		assert.Equal(t, Microsecond, u)
	}
}
