package ggbench

import (
	"errors"
	"math"
	"testing"
	"time"
)

// countWorkload counts render and reset calls.
type countWorkload struct {
	name    string
	renders int
	resets  int
	err     error
}

func (w *countWorkload) Name() string        { return w.name }
func (w *countWorkload) Render(*Frame) error { w.renders++; return w.err }
func (w *countWorkload) Reset()              { w.resets++ }

// recordingNotifier captures messages without blocking.
type recordingNotifier struct {
	msgs []Message
	err  error
}

func (n *recordingNotifier) Notify(m Message) error {
	if n.err != nil {
		return n.err
	}
	n.msgs = append(n.msgs, m)
	return nil
}

func (n *recordingNotifier) count(k MessageKind) int {
	c := 0
	for _, m := range n.msgs {
		if m.Kind == k {
			c++
		}
	}
	return c
}

func mustRegistry(t *testing.T, workloads ...Workload) *Registry {
	t.Helper()
	reg, err := NewRegistry(workloads...)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	return reg
}

// TestWarmupGating: the harness reports not-ready for exactly warmupSteps
// ticks, primes the warm-up set on all but the last of them, and never
// touches the warm-up set again once ready.
func TestWarmupGating(t *testing.T) {
	const steps = 5

	prime := &countWorkload{name: "prime"}
	measured := &countWorkload{name: "measured"}
	indicators := 0
	finals := 0

	clock := newFakeClock()
	h := New(mustRegistry(t, measured),
		WithWarmupSteps(steps),
		WithWarmup(prime),
		WithIndicator(func(_ *Frame, final bool) {
			indicators++
			if final {
				finals++
			}
		}),
		withNow(clock.now),
	)

	fr := &Frame{}
	for i := range steps {
		st, err := h.Tick(fr)
		if err != nil {
			t.Fatalf("warm-up tick %d: %v", i+1, err)
		}
		if st.Ready {
			t.Fatalf("tick %d: Ready = true during warm-up", i+1)
		}
		clock.advance(10 * time.Millisecond)
	}

	if prime.renders != steps-1 {
		t.Errorf("priming renders = %d, want %d", prime.renders, steps-1)
	}
	if indicators != steps {
		t.Errorf("indicator calls = %d, want %d", indicators, steps)
	}
	if finals != 1 {
		t.Errorf("final indicator calls = %d, want 1", finals)
	}

	for i := range 3 {
		st, err := h.Tick(fr)
		if err != nil {
			t.Fatalf("measured tick %d: %v", i+1, err)
		}
		if !st.Ready {
			t.Fatalf("measured tick %d: Ready = false after warm-up", i+1)
		}
		clock.advance(10 * time.Millisecond)
	}
	if prime.renders != steps-1 {
		t.Errorf("priming renders after readiness = %d, want %d", prime.renders, steps-1)
	}
	if measured.renders != 3 {
		t.Errorf("measured renders = %d, want 3", measured.renders)
	}
}

// TestEndToEndFrameBounded: with N = 3 and 10 frames per test, 30 ticks
// produce one FPS value per workload, one completed pass and exactly one
// RESULTS_READY message.
func TestEndToEndFrameBounded(t *testing.T) {
	ws := []*countWorkload{{name: "a"}, {name: "b"}, {name: "c"}}
	notifier := &recordingNotifier{}
	clock := newFakeClock()

	h := New(mustRegistry(t, ws[0], ws[1], ws[2]),
		WithFramesPerTest(10),
		WithWarmupSteps(0),
		WithNotifier(notifier),
		withNow(clock.now),
	)

	const step = 10 * time.Millisecond
	fr := &Frame{}
	for i := range 30 {
		st, err := h.Tick(fr)
		if err != nil {
			t.Fatalf("tick %d: %v", i+1, err)
		}
		if wantClosed := (i+1)%10 == 0; st.WindowClosed != wantClosed {
			t.Errorf("tick %d: WindowClosed = %v, want %v", i+1, st.WindowClosed, wantClosed)
		}
		clock.advance(step)
	}

	if got := h.Passes(); got != 1 {
		t.Errorf("Passes() = %d, want 1", got)
	}
	if got := notifier.count(KindResultsReady); got != 1 {
		t.Errorf("RESULTS_READY messages = %d, want 1", got)
	}
	if got := notifier.count(KindTestDone); got != 0 {
		t.Errorf("TEST_DONE messages = %d, want 0", got)
	}

	// Each window spans 9 inter-frame steps of the fake clock.
	want := 10.0 / (9 * step.Seconds())
	for i, fps := range h.Results() {
		if math.Abs(fps-want) > 1e-9 {
			t.Errorf("Results()[%d] = %v, want %v", i, fps, want)
		}
	}
	for _, w := range ws {
		if w.renders != 10 {
			t.Errorf("%s renders = %d, want 10", w.name, w.renders)
		}
		if w.resets != 1 {
			t.Errorf("%s resets = %d, want 1", w.name, w.resets)
		}
	}

	if msg := notifier.msgs[0]; len(msg.FPS) != 3 {
		t.Errorf("RESULTS_READY payload length = %d, want 3", len(msg.FPS))
	}
}

// TestDoneSignalIdempotence: TEST_DONE fires exactly once, on the pass
// that first exceeds maxPasses, and never again.
func TestDoneSignalIdempotence(t *testing.T) {
	w := &countWorkload{name: "only"}
	notifier := &recordingNotifier{}
	clock := newFakeClock()

	h := New(mustRegistry(t, w),
		WithFramesPerTest(1),
		WithWarmupSteps(0),
		WithMaxPasses(1),
		WithNotifier(notifier),
		withNow(clock.now),
	)

	fr := &Frame{}
	var doneTicks []int
	for i := range 5 {
		clock.advance(10 * time.Millisecond)
		st, err := h.Tick(fr)
		if err != nil {
			t.Fatalf("tick %d: %v", i+1, err)
		}
		if st.Done {
			doneTicks = append(doneTicks, i+1)
		}
	}

	if got := notifier.count(KindTestDone); got != 1 {
		t.Errorf("TEST_DONE messages = %d, want 1", got)
	}
	if len(doneTicks) != 1 || doneTicks[0] != 2 {
		t.Errorf("Done reported on ticks %v, want [2]", doneTicks)
	}
	if !h.Done() {
		t.Error("Done() = false after completion signal")
	}
	if got := notifier.count(KindResultsReady); got != 5 {
		t.Errorf("RESULTS_READY messages = %d, want 5", got)
	}
	if got := h.Passes(); got != 5 {
		t.Errorf("Passes() = %d, want 5", got)
	}
}

// TestResultsOverwrite: each pass overwrites every slot; a half-finished
// pass leaves later slots holding the previous pass's values.
func TestResultsOverwrite(t *testing.T) {
	ws := []*countWorkload{{name: "a"}, {name: "b"}}
	clock := newFakeClock()

	h := New(mustRegistry(t, ws[0], ws[1]),
		WithFramesPerTest(2),
		WithWarmupSteps(0),
		withNow(clock.now),
	)

	fr := &Frame{}
	tick := func(step time.Duration) Status {
		t.Helper()
		st, err := h.Tick(fr)
		if err != nil {
			t.Fatalf("Tick: %v", err)
		}
		clock.advance(step)
		return st
	}

	// Pass 1 at 10ms per frame: each 2-frame window spans one step.
	for range 4 {
		tick(10 * time.Millisecond)
	}
	fast := 2.0 / 0.010
	for i, fps := range h.Results() {
		if math.Abs(fps-fast) > 1e-9 {
			t.Errorf("pass 1 Results()[%d] = %v, want %v", i, fps, fast)
		}
	}

	// First window of pass 2 at 25ms per frame: slot 0 is overwritten,
	// slot 1 still holds the pass-1 value.
	for range 2 {
		tick(25 * time.Millisecond)
	}
	slow := 2.0 / 0.025
	got := h.Results()
	if math.Abs(got[0]-slow) > 1e-9 {
		t.Errorf("mid-pass Results()[0] = %v, want %v", got[0], slow)
	}
	if math.Abs(got[1]-fast) > 1e-9 {
		t.Errorf("mid-pass Results()[1] = %v, want %v", got[1], fast)
	}
}

// TestTimeBoundedHarness: the window closes when the accumulated deltas
// drive the countdown below zero, and FPS uses the nominal duration plus
// the overshoot.
func TestTimeBoundedHarness(t *testing.T) {
	w := &countWorkload{name: "only"}
	clock := newFakeClock()

	h := New(mustRegistry(t, w),
		WithDiscipline(TimeBounded),
		WithWindowDuration(time.Second),
		WithWarmupSteps(0),
		withNow(clock.now),
	)

	fr := &Frame{}
	var closed *Status
	for i := 0; i < 10 && closed == nil; i++ {
		st, err := h.Tick(fr)
		if err != nil {
			t.Fatalf("tick %d: %v", i+1, err)
		}
		if st.WindowClosed {
			closed = &st
		}
		clock.advance(250 * time.Millisecond)
	}
	if closed == nil {
		t.Fatal("window never closed")
	}

	// Deltas observed: 0, .25, .25, .25, .25 (remaining exactly 0, still
	// open), then .25 drives it to -0.25 and closes with 6 frames.
	if w.renders != 6 {
		t.Errorf("renders = %d, want 6", w.renders)
	}
	want := 6.0 / 1.25
	if math.Abs(closed.FPS-want) > 1e-9 {
		t.Errorf("FPS = %v, want %v", closed.FPS, want)
	}
}

func TestTickRenderError(t *testing.T) {
	boom := errors.New("boom")
	w := &countWorkload{name: "bad", err: boom}
	h := New(mustRegistry(t, w), WithWarmupSteps(0))

	if _, err := h.Tick(&Frame{}); !errors.Is(err, boom) {
		t.Fatalf("Tick error = %v, want wrapped %v", err, boom)
	}
}

func TestHostUnavailablePropagates(t *testing.T) {
	w := &countWorkload{name: "only"}
	notifier := &recordingNotifier{err: ErrHostUnavailable}
	clock := newFakeClock()

	h := New(mustRegistry(t, w),
		WithFramesPerTest(1),
		WithWarmupSteps(0),
		WithNotifier(notifier),
		withNow(clock.now),
	)

	clock.advance(10 * time.Millisecond)
	_, err := h.Tick(&Frame{})
	if !errors.Is(err, ErrHostUnavailable) {
		t.Fatalf("Tick error = %v, want ErrHostUnavailable", err)
	}
}
