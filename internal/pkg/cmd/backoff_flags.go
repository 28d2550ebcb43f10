package cmd

import (
	"strconv"

	"github.com/mintel/duration/pkg/backoff"  // Exponential backoff policy.
	"github.com/mintel/duration/pkg/duration" // Duration value type.
)

// BackoffFlags represents a set of flags for configuring
// an exponential backoff policy.
type BackoffFlags struct {
	Initial             duration.Duration // Initial backoff interval.
	Max                 duration.Duration // Max backoff interval.
	MaxElapsed          duration.Duration // Give up after this long. Zero never gives up.
	Multiplier          float64           // Growth factor per retry.
	RandomizationFactor float64           // Jitter as a fraction of the interval.
}

// NewBackoffFlags returns a new BackoffFlags.
func NewBackoffFlags(app Flagger, initial, max duration.Duration) *BackoffFlags {
	var f BackoffFlags

	duration.UnitVar(
		app.Flag("backoff.initial.millis", "Initial backoff interval in milliseconds.").
			Default(formatIn(initial, duration.Millisecond)),
		duration.Millisecond, &f.Initial,
	)

	duration.UnitVar(
		app.Flag("backoff.max.secs", "Max backoff interval in seconds.").
			Default(formatIn(max, duration.Second)),
		duration.Second, &f.Max,
	)

	duration.UnitVar(
		app.Flag("backoff.max-elapsed.secs", "Stop retrying after this many seconds. 0 retries forever.").
			Default("0"),
		duration.Second, &f.MaxElapsed,
	)

	app.Flag("backoff.multiplier", "Factor by which the backoff interval grows on each retry.").
		Default(strconv.FormatFloat(backoff.DefaultMultiplier, 'f', -1, 64)).
		Float64Var(&f.Multiplier)

	app.Flag("backoff.jitter", "Randomize each interval by up to this fraction of itself.").
		Default("0").
		Float64Var(&f.RandomizationFactor)

	return &f
}

// Exponential returns an exponential backoff policy
// configured with the flag values.
func (f *BackoffFlags) Exponential() (*backoff.Exponential, error) {
	b := backoff.NewExponential()
	b.Initial = f.Initial
	b.Max = f.Max
	b.MaxElapsed = f.MaxElapsed
	b.Multiplier = f.Multiplier
	b.RandomizationFactor = f.RandomizationFactor
	if err := b.Validate(); err != nil {
		return nil, err
	}
	b.Reset()
	return b, nil
}

func formatIn(d duration.Duration, u duration.Unit) string {
	return strconv.FormatFloat(u.In(d), 'f', -1, 64)
}
