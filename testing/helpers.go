// Package testing provides test utilities for euclid.
package testing

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/zoobzio/capitan"
	"github.com/zoobzio/euclid"
)

// Near reports whether a and b differ by at most tolerance.
// NaN is never near anything.
func Near(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

// VectorsNear reports whether got and want share a dimension and every
// coordinate pair is within tolerance.
func VectorsNear(got, want euclid.Vector, tolerance float64) bool {
	if got.Dimension() != want.Dimension() {
		return false
	}
	for i := 0; i < got.Dimension(); i++ {
		if !Near(got.At(i), want.At(i), tolerance) {
			return false
		}
	}
	return true
}

// CapturedEvent represents an event captured during testing.
type CapturedEvent struct {
	Signal    capitan.Signal
	Fields    []capitan.Field
	Timestamp time.Time
}

// Result returns the check verdict carried by the event.
func (e CapturedEvent) Result() bool {
	return euclid.FieldResult.ExtractFromFields(e.Fields)
}

// Status returns the human-readable verdict carried by the event.
func (e CapturedEvent) Status() string {
	return euclid.FieldStatus.ExtractFromFields(e.Fields)
}

// Err returns the error carried by a failed-check event.
func (e CapturedEvent) Err() error {
	return euclid.FieldError.ExtractFromFields(e.Fields)
}

// EventCapture captures euclid events for verification in tests.
type EventCapture struct {
	events []CapturedEvent
	mu     sync.Mutex
}

// NewEventCapture creates a new event capture utility.
func NewEventCapture() *EventCapture {
	return &EventCapture{
		events: make([]CapturedEvent, 0),
	}
}

// Handler returns a capitan.EventCallback that captures events.
func (c *EventCapture) Handler() capitan.EventCallback {
	return func(_ context.Context, e *capitan.Event) {
		c.mu.Lock()
		defer c.mu.Unlock()

		c.events = append(c.events, CapturedEvent{
			Signal:    e.Signal(),
			Fields:    e.Fields(),
			Timestamp: time.Now(),
		})
	}
}

// Events returns a copy of all captured events.
func (c *EventCapture) Events() []CapturedEvent {
	c.mu.Lock()
	defer c.mu.Unlock()

	result := make([]CapturedEvent, len(c.events))
	copy(result, c.events)
	return result
}

// Count returns the number of captured events.
func (c *EventCapture) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.events)
}

// Reset clears all captured events.
func (c *EventCapture) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.events = make([]CapturedEvent, 0)
}

// WaitForCount blocks until the specified number of events are captured or timeout.
func (c *EventCapture) WaitForCount(n int, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if c.Count() >= n {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return c.Count() >= n
}

// EventsBySignal returns events filtered by signal.
func (c *EventCapture) EventsBySignal(sig capitan.Signal) []CapturedEvent {
	c.mu.Lock()
	defer c.mu.Unlock()

	result := make([]CapturedEvent, 0)
	for _, e := range c.events {
		if e.Signal == sig {
			result = append(result, e)
		}
	}
	return result
}
