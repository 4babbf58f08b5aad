package component

import "time"

type TimerMode uint8

const (
	TimerOnce TimerMode = iota
	TimerRepeating
)

// Timer counts frame time up to Duration. JustFinished is true only for the
// Tick call that completed a cycle.
type Timer struct {
	Duration time.Duration
	Mode     TimerMode

	elapsed      time.Duration
	finished     bool
	justFinished bool
}

func NewTimer(d time.Duration, mode TimerMode) Timer {
	return Timer{Duration: d, Mode: mode}
}

// Tick advances the timer by dt.
func (t *Timer) Tick(dt time.Duration) *Timer {
	t.justFinished = false
	if dt < 0 {
		dt = 0
	}
	if t.Mode == TimerOnce && t.finished {
		return t
	}

	t.elapsed += dt
	if t.elapsed < t.Duration {
		return t
	}

	t.justFinished = true
	if t.Mode == TimerRepeating && t.Duration > 0 {
		t.elapsed %= t.Duration
		return t
	}
	t.elapsed = t.Duration
	t.finished = true
	return t
}

func (t *Timer) JustFinished() bool {
	return t.justFinished
}

// Finished reports whether a once timer has completed. Repeating timers are
// never finished.
func (t *Timer) Finished() bool {
	return t.finished
}

func (t *Timer) Elapsed() time.Duration {
	return t.elapsed
}

func (t *Timer) Remaining() time.Duration {
	if t.elapsed >= t.Duration {
		return 0
	}
	return t.Duration - t.elapsed
}

func (t *Timer) Reset() {
	t.elapsed = 0
	t.finished = false
	t.justFinished = false
}
