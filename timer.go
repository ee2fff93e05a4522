package ggbench

import "time"

// windowTimer measures per-window wall-clock time and per-frame deltas
// from a monotonic source. time.Time carries a monotonic reading, so the
// measurements are immune to wall-clock adjustment.
type windowTimer struct {
	now     func() time.Time
	start   time.Time
	last    time.Time
	hasLast bool
}

func newWindowTimer(now func() time.Time) *windowTimer {
	if now == nil {
		now = time.Now
	}
	return &windowTimer{now: now}
}

// startWindow captures the window start timestamp.
func (t *windowTimer) startWindow() {
	t.start = t.now()
}

// tick returns the elapsed seconds since the previous tick, and zero on
// the first tick of a run.
func (t *windowTimer) tick() float64 {
	n := t.now()
	var dt float64
	if t.hasLast {
		dt = n.Sub(t.last).Seconds()
	}
	t.last = n
	t.hasLast = true
	return dt
}

// elapsed returns the seconds since startWindow.
func (t *windowTimer) elapsed() float64 {
	return t.now().Sub(t.start).Seconds()
}

// frameBoundedFPS computes FPS for a window of exactly frames render
// calls measured over elapsedSeconds of wall-clock time.
func frameBoundedFPS(frames int, elapsedSeconds float64) float64 {
	return float64(frames) / elapsedSeconds
}

// timeBoundedFPS computes FPS for a fixed-duration window. remaining is
// the residual of the window countdown at close, zero or negative; the
// denominator is the nominal duration extended by the overshoot rather
// than a separately measured elapsed time, keeping the reported numbers
// stable against the harness's own overshoot.
func timeBoundedFPS(frames int, windowDuration, remaining float64) float64 {
	return float64(frames) / (windowDuration - remaining)
}
