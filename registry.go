package ggbench

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange indicates a registry lookup outside [0, N).
// Given the scheduler's modulo-wrap advancement this is unreachable in a
// correctly driven harness; seeing it means the sequencing invariant was
// violated and the run should be aborted.
var ErrIndexOutOfRange = errors.New("ggbench: test index out of range")

// ErrEmptyRegistry indicates a registry constructed with no workloads.
var ErrEmptyRegistry = errors.New("ggbench: registry needs at least one workload")

// A Workload is one benchmark scenario: an opaque unit of rendering work
// with a display name. The harness never inspects what Render does; it
// only times it.
type Workload interface {
	// Name returns the display name reported with this workload's FPS.
	Name() string

	// Render draws one frame of the scenario. It must fully complete
	// before returning; the harness assumes no asynchrony inside a
	// workload.
	Render(fr *Frame) error

	// Reset restores any transient animation state (accumulated
	// rotation, light orbits) to its initial value. Called once when the
	// workload's measurement window closes.
	Reset()
}

// RenderFunc adapts a plain function to the Workload interface for
// stateless scenarios. Reset is a no-op.
type RenderFunc func(fr *Frame) error

type funcWorkload struct {
	name string
	fn   RenderFunc
}

func (w funcWorkload) Name() string           { return w.name }
func (w funcWorkload) Render(fr *Frame) error { return w.fn(fr) }
func (w funcWorkload) Reset()                 {}

// NewWorkload wraps fn as a named stateless Workload.
func NewWorkload(name string, fn RenderFunc) Workload {
	return funcWorkload{name: name, fn: fn}
}

// Registry is the ordered, fixed table mapping a test index to its
// workload. It is read-only after construction.
type Registry struct {
	workloads []Workload
}

// NewRegistry builds a registry from the given workloads, in order.
// Index i of the results buffer corresponds to workloads[i].
func NewRegistry(workloads ...Workload) (*Registry, error) {
	if len(workloads) == 0 {
		return nil, ErrEmptyRegistry
	}
	ws := make([]Workload, len(workloads))
	copy(ws, workloads)
	return &Registry{workloads: ws}, nil
}

// Len returns the number of registered workloads.
func (r *Registry) Len() int { return len(r.workloads) }

// Lookup returns the workload at index i.
func (r *Registry) Lookup(i int) (Workload, error) {
	if i < 0 || i >= len(r.workloads) {
		return nil, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(r.workloads))
	}
	return r.workloads[i], nil
}

// Names returns the display names in registry order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.workloads))
	for i, w := range r.workloads {
		names[i] = w.Name()
	}
	return names
}
