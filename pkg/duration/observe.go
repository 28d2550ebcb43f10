package duration

// AsNanos returns d as an integer nanosecond count.
func (d Duration) AsNanos() int64 { return d.ns }

// AsMicros returns d as a number of microseconds.
func (d Duration) AsMicros() float64 { return Microsecond.In(d) }

// AsMillis returns d as a number of milliseconds.
func (d Duration) AsMillis() float64 { return Millisecond.In(d) }

// AsSecs returns d as a number of seconds.
func (d Duration) AsSecs() float64 { return Second.In(d) }

// AsMinutes returns d as a number of minutes.
func (d Duration) AsMinutes() float64 { return Minute.In(d) }

// AsHours returns d as a number of hours.
func (d Duration) AsHours() float64 { return Hour.In(d) }
