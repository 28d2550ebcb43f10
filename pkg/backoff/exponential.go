// Package backoff implements retry backoff policies computed with
// duration.Duration arithmetic.
package backoff

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/cenkalti/backoff" // Retry loops and tickers.

	"github.com/mintel/duration/pkg/duration"
)

// Defaults mirror those of backoff.ExponentialBackOff.
var (
	DefaultInitial             = duration.FromStd(backoff.DefaultInitialInterval)
	DefaultMax                 = duration.FromStd(backoff.DefaultMaxInterval)
	DefaultMaxElapsed          = duration.FromStd(backoff.DefaultMaxElapsedTime)
	DefaultMultiplier          = backoff.DefaultMultiplier
	DefaultRandomizationFactor = backoff.DefaultRandomizationFactor
)

// Exponential is a backoff.BackOff whose interval grows by Multiplier
// each step, from Initial up to Max.
//
// Each returned interval is randomized within
// [interval * (1 - RandomizationFactor), interval * (1 + RandomizationFactor)].
// Once MaxElapsed has passed since the last Reset, NextBackOff
// returns backoff.Stop. A zero MaxElapsed never stops.
//
// Use NewExponential to get one with sane defaults.
type Exponential struct {
	Initial             duration.Duration
	Max                 duration.Duration
	MaxElapsed          duration.Duration
	Multiplier          float64
	RandomizationFactor float64
	Clock               backoff.Clock

	current duration.Duration
	start   time.Time
	random  func() float64
}

var _ backoff.BackOff = (*Exponential)(nil)

// NewExponential returns a new Exponential with default settings.
func NewExponential() *Exponential {
	b := &Exponential{
		Initial:             DefaultInitial,
		Max:                 DefaultMax,
		MaxElapsed:          DefaultMaxElapsed,
		Multiplier:          DefaultMultiplier,
		RandomizationFactor: DefaultRandomizationFactor,
		Clock:               backoff.SystemClock,
	}
	b.Reset()
	return b
}

// Validate returns an error if the settings can't produce a
// sensible sequence of intervals.
func (b *Exponential) Validate() error {
	if b.Initial.Gt(b.Max) {
		return fmt.Errorf("initial interval %s is longer than max interval %s: %w", b.Initial, b.Max, duration.ErrInvalidRange)
	}
	if math.IsNaN(b.Multiplier) || math.IsInf(b.Multiplier, 0) || b.Multiplier < 1 {
		return fmt.Errorf("multiplier must be a finite number >= 1, got %v", b.Multiplier)
	}
	if !(b.RandomizationFactor >= 0 && b.RandomizationFactor <= 1) {
		return fmt.Errorf("randomization factor must be between 0 and 1, got %v", b.RandomizationFactor)
	}
	return nil
}

// Reset restarts the sequence at Initial.
func (b *Exponential) Reset() {
	b.current = b.Initial
	b.start = b.now()
}

// NextBackOff returns the duration to wait before retrying,
// or backoff.Stop if MaxElapsed has passed.
func (b *Exponential) NextBackOff() time.Duration {
	if b.start.IsZero() {
		b.Reset()
	}
	if !b.MaxElapsed.IsZero() && b.Elapsed().Gt(b.MaxElapsed) {
		return backoff.Stop
	}
	next := b.randomize(b.current)
	b.current = b.grow(b.current)
	return next.Std()
}

// Elapsed returns the time since the last Reset.
func (b *Exponential) Elapsed() duration.Duration {
	return duration.FromStd(b.now().Sub(b.start))
}

// Schedule returns the first n intervals without randomization.
// It doesn't change the state of b.
func (b *Exponential) Schedule(n int) []duration.Duration {
	out := make([]duration.Duration, 0, n)
	d := duration.Min(b.Initial, b.Max)
	for i := 0; i < n; i++ {
		out = append(out, d)
		d = b.grow(d)
	}
	return out
}

// grow returns the interval after d. Intervals that overflow
// are pinned at Max.
func (b *Exponential) grow(d duration.Duration) duration.Duration {
	next, err := d.Mul(b.Multiplier)
	if err != nil {
		return b.Max
	}
	return duration.Min(next, b.Max)
}

func (b *Exponential) randomize(d duration.Duration) duration.Duration {
	if b.RandomizationFactor == 0 {
		return d
	}
	r := b.random
	if r == nil {
		r = rand.Float64
	}
	f := 1 - b.RandomizationFactor + 2*b.RandomizationFactor*r()
	next, err := d.Mul(f)
	if err != nil {
		return b.Max
	}
	return next
}

func (b *Exponential) now() time.Time {
	if b.Clock == nil {
		return backoff.SystemClock.Now()
	}
	return b.Clock.Now()
}
