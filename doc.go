// Package ggbench is a frames-per-second benchmark harness for the gg
// rendering stack.
//
// # Overview
//
// ggbench drives an ordered suite of rendering workloads (text layout,
// textured fills, procedural meshes, custom brush stages, offscreen
// targets) through a timed measurement loop. Each workload is measured in
// its own window, either a fixed number of frames or a fixed wall-clock
// duration, and the resulting FPS values are flushed to a host consumer
// after every full pass over the suite.
//
// # Quick Start
//
//	reg, _ := ggbench.NewRegistry(tests...)
//	h := ggbench.New(reg,
//	    ggbench.WithFramesPerTest(100),
//	    ggbench.WithMaxPasses(2),
//	    ggbench.WithNotifier(notifier),
//	)
//
//	for {
//	    fr := &ggbench.Frame{DC: dc}
//	    if _, err := h.Tick(fr); err != nil {
//	        break
//	    }
//	}
//
// The harness is single-threaded: Tick must be called from one goroutine,
// once per rendered frame. The only blocking operation is the notifier's
// acknowledged send, which provides backpressure against a slow host.
//
// # Architecture
//
//   - Registry: immutable ordered table of workloads
//   - Scheduler: advances the current test index, frame- or time-bounded
//   - Timer: monotonic window timing and FPS computation
//   - Results: per-test FPS buffer, flushed once per pass
//   - Notifier: outbound host channel (RESULTS_READY / TEST_DONE)
//
// The workload package provides the standard suite; cmd/ggbench is the
// reference driver.
package ggbench
