package ggbench

import (
	"fmt"

	"github.com/gogpu/gg"
)

// Frame is the per-tick rendering context handed to workloads. The
// harness fills DT before invoking a workload; drivers supply DC.
type Frame struct {
	// DC is the render target for this frame.
	DC *gg.Context

	// DT is the elapsed seconds since the previous tick, measured from a
	// monotonic source. Zero on the first tick of a run. Workloads use it
	// to advance animation; the time-bounded window countdown uses it
	// too.
	DT float64
}

// Status reports what one Tick did.
type Status struct {
	// Ready is false while the warm-up countdown is still running.
	// Nothing is measured during that phase.
	Ready bool

	// Index and Name identify the workload rendered this tick. Unset
	// during warm-up.
	Index int
	Name  string

	// WindowClosed is true when this tick completed the current
	// workload's measurement window; FPS then holds the measurement.
	WindowClosed bool
	FPS          float64

	// PassComplete is true when the window that closed was the last in
	// the registry, i.e. the results buffer was flushed to the host.
	PassComplete bool

	// Done is true on the tick that sent the one-time completion signal.
	Done bool
}

// Harness owns all benchmark state and advances it one frame at a time.
//
// A Harness is not safe for concurrent use: the driver must call Tick
// from a single goroutine, once per rendered frame, with no overlapping
// invocations. All fields are mutated exclusively inside Tick.
type Harness struct {
	cfg     config
	reg     *Registry
	sched   *scheduler
	timer   *windowTimer
	results *resultsBuffer

	warmupLeft int
	windowOpen bool
	passes     int
	done       bool
}

// New creates a harness over the given registry.
func New(reg *Registry, opts ...Option) *Harness {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Harness{
		cfg:        cfg,
		reg:        reg,
		sched:      newScheduler(reg.Len(), cfg.discipline, cfg.framesPerTest, cfg.windowDuration),
		timer:      newWindowTimer(cfg.now),
		results:    newResultsBuffer(reg.Len()),
		warmupLeft: cfg.warmupSteps,
	}
}

// Tick renders and accounts one frame. During the first warmupSteps
// invocations it runs the priming workloads and reports Ready == false;
// afterwards it renders the scheduled workload, counts the frame against
// the current window, and on window close records FPS and advances the
// schedule. When the schedule wraps, the results buffer is flushed to
// the notifier; once the pass counter exceeds the configured maximum,
// a single completion message is sent.
//
// Errors are fatal: a failed render, a host that went away, or a
// violated sequencing invariant. The harness has no recovery path for
// any of them.
func (h *Harness) Tick(fr *Frame) (Status, error) {
	dt := h.timer.tick()
	fr.DT = dt

	if h.warmupLeft > 0 {
		return h.warmupTick(fr)
	}

	if !h.windowOpen {
		h.sched.resetWindow()
		h.timer.startWindow()
		h.windowOpen = true
	}

	idx := h.sched.index
	w, err := h.reg.Lookup(idx)
	if err != nil {
		return Status{}, err
	}
	if err := w.Render(fr); err != nil {
		return Status{}, fmt.Errorf("ggbench: render %q: %w", w.Name(), err)
	}

	st := Status{Ready: true, Index: idx, Name: w.Name()}
	if !h.sched.observeFrame(dt) {
		return st, nil
	}
	return h.closeWindow(st, w)
}

// warmupTick runs one priming iteration. The last tick renders only the
// final indicator frame; every earlier tick pre-touches the configured
// warm-up workloads so lazy resource realization stays out of the
// measured windows.
func (h *Harness) warmupTick(fr *Frame) (Status, error) {
	final := h.warmupLeft == 1
	if !final {
		for _, w := range h.cfg.warmup {
			if err := w.Render(fr); err != nil {
				return Status{}, fmt.Errorf("ggbench: warm-up %q: %w", w.Name(), err)
			}
		}
	}
	if h.cfg.indicator != nil {
		h.cfg.indicator(fr, final)
	}
	h.warmupLeft--
	if h.warmupLeft == 0 {
		Logger().Info("warm-up complete", "steps", h.cfg.warmupSteps)
	}
	return Status{}, nil
}

// closeWindow records the finished measurement, resets per-test state and
// advances the schedule, flushing results on wrap.
func (h *Harness) closeWindow(st Status, w Workload) (Status, error) {
	var fps float64
	switch h.cfg.discipline {
	case FrameBounded:
		fps = frameBoundedFPS(h.sched.frames, h.timer.elapsed())
	case TimeBounded:
		fps = timeBoundedFPS(h.sched.frames, h.cfg.windowDuration, h.sched.remaining)
	}
	h.results.record(st.Index, fps)
	Logger().Debug("window closed", "index", st.Index, "test", st.Name, "fps", fps)

	w.Reset()
	h.windowOpen = false
	st.WindowClosed = true
	st.FPS = fps

	if !h.sched.advance() {
		return st, nil
	}

	h.passes++
	st.PassComplete = true
	Logger().Info("pass complete", "pass", h.passes)
	if err := h.cfg.notifier.Notify(Message{Kind: KindResultsReady, FPS: h.results.snapshot32()}); err != nil {
		return st, fmt.Errorf("ggbench: flush results: %w", err)
	}

	if h.cfg.maxPasses > 0 && h.passes > h.cfg.maxPasses && !h.done {
		h.done = true
		st.Done = true
		if err := h.cfg.notifier.Notify(Message{Kind: KindTestDone}); err != nil {
			return st, fmt.Errorf("ggbench: signal done: %w", err)
		}
	}
	return st, nil
}

// Results returns a copy of the FPS buffer, index-aligned with the
// registry. Slots not yet measured this pass hold their previous value
// (zero before the first measurement).
func (h *Harness) Results() []float64 { return h.results.values() }

// Passes returns the number of completed full passes over the registry.
func (h *Harness) Passes() int { return h.passes }

// Done reports whether the completion signal has been sent.
func (h *Harness) Done() bool { return h.done }

// Registry returns the harness's workload table.
func (h *Harness) Registry() *Registry { return h.reg }
