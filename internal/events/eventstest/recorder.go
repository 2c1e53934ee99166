// Package eventstest provides an in-memory events.Publisher for tests.
package eventstest

import (
	"context"
	"sync"

	"freezestore/internal/events"
)

// Recorder keeps published events in memory. A non-nil Err fails every publish.
type Recorder struct {
	mu     sync.Mutex
	events []events.Event
	Err    error
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Publish(_ context.Context, event events.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.events = append(r.events, event)
	return nil
}

func (r *Recorder) Close() error { return nil }

func (r *Recorder) Events() []events.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]events.Event, len(r.events))
	copy(out, r.events)
	return out
}

func (r *Recorder) Types() []string {
	recorded := r.Events()
	out := make([]string, len(recorded))
	for i, e := range recorded {
		out[i] = e.Type
	}
	return out
}
