package ggbench

import "time"

// Default harness configuration.
const (
	// DefaultFramesPerTest is the frame-bounded window length.
	DefaultFramesPerTest = 100

	// DefaultWindowDuration is the time-bounded window length.
	DefaultWindowDuration = 5 * time.Second

	// DefaultWarmupSteps is the number of priming ticks before
	// measurement begins.
	DefaultWarmupSteps = 5
)

// Option configures a Harness during creation.
type Option func(*config)

type config struct {
	discipline     Discipline
	framesPerTest  int
	windowDuration float64 // seconds
	maxPasses      int
	warmupSteps    int
	warmup         []Workload
	indicator      func(fr *Frame, final bool)
	notifier       Notifier
	now            func() time.Time
}

func defaultConfig() config {
	return config{
		discipline:     FrameBounded,
		framesPerTest:  DefaultFramesPerTest,
		windowDuration: DefaultWindowDuration.Seconds(),
		warmupSteps:    DefaultWarmupSteps,
		notifier:       nopNotifier{},
		now:            time.Now,
	}
}

// WithDiscipline selects how measurement windows are bounded.
func WithDiscipline(d Discipline) Option {
	return func(c *config) { c.discipline = d }
}

// WithFramesPerTest sets the frame-bounded window length. Values below 1
// are clamped to 1.
func WithFramesPerTest(frames int) Option {
	return func(c *config) { c.framesPerTest = max(frames, 1) }
}

// WithWindowDuration sets the time-bounded window length. Non-positive
// durations fall back to the default.
func WithWindowDuration(d time.Duration) Option {
	return func(c *config) {
		if d <= 0 {
			d = DefaultWindowDuration
		}
		c.windowDuration = d.Seconds()
	}
}

// WithMaxPasses sets the pass count after which the harness signals
// completion; the done signal fires once the counter exceeds n.
// Zero means unbounded (the default): the harness cycles forever.
func WithMaxPasses(n int) Option {
	return func(c *config) { c.maxPasses = max(n, 0) }
}

// WithWarmupSteps sets how many priming ticks run before measurement.
// Zero disables warm-up entirely.
func WithWarmupSteps(n int) Option {
	return func(c *config) { c.warmupSteps = max(n, 0) }
}

// WithWarmup sets the priming workloads executed on each warm-up tick.
// The set should touch every shader, texture and mesh resource the suite
// uses at least once, so lazy uploads happen before timing starts. It
// need not be the full registry.
func WithWarmup(workloads ...Workload) Option {
	return func(c *config) { c.warmup = workloads }
}

// WithIndicator sets a callback drawn on every warm-up tick, letting the
// driver show an "initializing" frame. final is true on the last warm-up
// tick. The core itself issues no draw calls.
func WithIndicator(fn func(fr *Frame, final bool)) Option {
	return func(c *config) { c.indicator = fn }
}

// WithNotifier sets the host notifier. The default discards messages.
func WithNotifier(n Notifier) Option {
	return func(c *config) {
		if n == nil {
			n = nopNotifier{}
		}
		c.notifier = n
	}
}

// withNow overrides the monotonic clock source in tests.
func withNow(now func() time.Time) Option {
	return func(c *config) { c.now = now }
}
