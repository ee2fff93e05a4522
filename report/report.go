// Package report collects benchmark results into a serializable run record.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Entry is one workload's score inside a pass.
type Entry struct {
	Index int     `json:"index"`
	Name  string  `json:"name"`
	FPS   float32 `json:"fps"`
}

// Pass holds the scores flushed after a full sweep over the suite.
type Pass struct {
	Completed time.Time `json:"completed"`
	Entries   []Entry   `json:"entries"`
}

// Run is a complete benchmark run: identity, timing and every pass.
type Run struct {
	ID         string    `json:"id"`
	Discipline string    `json:"discipline"`
	Width      int       `json:"width"`
	Height     int       `json:"height"`
	Started    time.Time `json:"started"`
	Finished   time.Time `json:"finished"`
	Passes     []Pass    `json:"passes"`
}

// NewRun starts a run record with a fresh identifier.
func NewRun(discipline string, width, height int) *Run {
	return &Run{
		ID:         uuid.NewString(),
		Discipline: discipline,
		Width:      width,
		Height:     height,
		Started:    time.Now(),
	}
}

// AddPass records one flushed result set. Names and scores are matched
// by index; a length mismatch is a host-side wiring bug.
func (r *Run) AddPass(names []string, fps []float32) error {
	if len(names) != len(fps) {
		return fmt.Errorf("report: %d names for %d scores", len(names), len(fps))
	}
	p := Pass{
		Completed: time.Now(),
		Entries:   make([]Entry, len(fps)),
	}
	for i := range fps {
		p.Entries[i] = Entry{Index: i, Name: names[i], FPS: fps[i]}
	}
	r.Passes = append(r.Passes, p)
	return nil
}

// Finish stamps the end of the run.
func (r *Run) Finish() {
	r.Finished = time.Now()
}

// Final returns the entries of the last completed pass, or nil when no
// pass has finished.
func (r *Run) Final() []Entry {
	if len(r.Passes) == 0 {
		return nil
	}
	return r.Passes[len(r.Passes)-1].Entries
}

// WriteJSON writes the run as indented JSON.
func (r *Run) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
