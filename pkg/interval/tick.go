package interval

import (
	"sync"
	"time"

	"github.com/mintel/duration/pkg/duration"
)

// RoundedTicker is like a time.Ticker, but ticks on
// multiples of its Duration since the Unix Epoch.
type RoundedTicker struct {
	C <-chan time.Time

	c        chan<- time.Time
	d        duration.Duration
	once     sync.Once
	stopping chan struct{}
}

// NewRoundedTicker returns a new RoundedTicker.
// It panics if d is zero.
func NewRoundedTicker(d duration.Duration) *RoundedTicker {
	if d.IsZero() {
		panic("zero interval for NewRoundedTicker")
	}
	c := make(chan time.Time)
	rt := &RoundedTicker{
		C:        c,
		c:        c,
		d:        d,
		stopping: make(chan struct{}),
	}
	go rt.run()
	return rt
}

func (rt *RoundedTicker) run() {
	nextTick := Next(time.Now(), rt.d)
	timer := time.NewTimer(Until(nextTick).Std())
	for {
		select {
		case <-rt.stopping:
			if !timer.Stop() {
				<-timer.C
			}
			return
		case <-timer.C:
			// Drop the tick if nobody is ready for it.
			go func(t time.Time) {
				select {
				case rt.c <- t:
				default:
				}
			}(nextTick)
			nextTick = Next(nextTick, rt.d)
			timer.Reset(Until(nextTick).Std())
		}
	}
}

// Stop turns off a ticker. After Stop, no more ticks will be sent.
// Stop does not close the channel, to prevent a concurrent goroutine reading from
// the channel from seeing an erroneous "tick".
func (rt *RoundedTicker) Stop() {
	rt.once.Do(func() {
		if rt.stopping != nil {
			close(rt.stopping)
		}
	})
}
