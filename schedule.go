package ggbench

// Discipline selects how a measurement window is bounded.
//
// Rendering cost varies by orders of magnitude across workloads: a fixed
// frame count risks unbounded wall-clock time on slow workloads, while a
// fixed duration risks too few samples on fast ones. Both are supported
// as configuration; a run uses exactly one.
type Discipline int

const (
	// FrameBounded closes each window after a fixed number of frames.
	FrameBounded Discipline = iota

	// TimeBounded closes each window after a fixed wall-clock duration.
	TimeBounded
)

// String returns the discipline name.
func (d Discipline) String() string {
	switch d {
	case FrameBounded:
		return "FrameBounded"
	case TimeBounded:
		return "TimeBounded"
	}
	return "Unknown"
}

// scheduler is the sequencing state machine: one state per current test
// index, advancing modulo N, with per-window accumulators for the active
// discipline. It is mutated only by the harness tick.
type scheduler struct {
	n          int
	index      int
	discipline Discipline

	framesPerTest  int
	windowDuration float64 // seconds

	frames    int     // frames observed in the current window
	remaining float64 // seconds left in the current window (TimeBounded)
}

func newScheduler(n int, d Discipline, framesPerTest int, windowDuration float64) *scheduler {
	s := &scheduler{
		n:              n,
		discipline:     d,
		framesPerTest:  framesPerTest,
		windowDuration: windowDuration,
	}
	s.resetWindow()
	return s
}

// resetWindow clears the window accumulators for the current test.
func (s *scheduler) resetWindow() {
	s.frames = 0
	s.remaining = s.windowDuration
}

// observeFrame accounts one rendered frame and reports whether the
// current window just closed. dt is the elapsed seconds since the
// previous frame and is only consulted in TimeBounded mode.
func (s *scheduler) observeFrame(dt float64) bool {
	s.frames++
	switch s.discipline {
	case FrameBounded:
		return s.frames >= s.framesPerTest
	case TimeBounded:
		s.remaining -= dt
		return s.remaining < 0
	}
	return false
}

// advance moves to the next test, wrapping after the last. It reports
// whether the cursor wrapped to index 0, i.e. a pass completed.
func (s *scheduler) advance() bool {
	s.index = (s.index + 1) % s.n
	return s.index == 0
}
