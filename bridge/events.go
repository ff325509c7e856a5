package bridge

import (
	"sync"
	"time"
)

// EventKind identifies the type of invocation event.
type EventKind string

const (
	EventInvocationStart     EventKind = "invocation_start"
	EventInvocationResolved  EventKind = "invocation_resolved"
	EventInvocationRejected  EventKind = "invocation_rejected"
	EventLookupFailed        EventKind = "lookup_failed"
	EventDuplicateSettlement EventKind = "duplicate_settlement"
)

// Event is a typed invocation lifecycle event emitted by the bridge.
type Event struct {
	Kind         EventKind      `json:"kind"`
	Timestamp    time.Time      `json:"timestamp"`
	InvocationID string         `json:"invocation_id"`
	Op           string         `json:"op"`
	Convention   Convention     `json:"convention,omitempty"`
	Data         map[string]any `json:"data,omitempty"`
}

// EventEmitter delivers typed events to the host application via a channel.
type EventEmitter struct {
	ch     chan Event
	closed bool
	mu     sync.Mutex
}

// NewEventEmitter creates an EventEmitter with a buffered channel.
func NewEventEmitter(bufferSize int) *EventEmitter {
	if bufferSize <= 0 {
		bufferSize = 256
	}
	return &EventEmitter{
		ch: make(chan Event, bufferSize),
	}
}

// Emit sends an event to the channel. If the emitter is closed or the
// buffer is full, the event is silently dropped.
func (e *EventEmitter) Emit(kind EventKind, inv *Invocation, data map[string]any) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	event := Event{
		Kind:      kind,
		Timestamp: time.Now(),
		Data:      data,
	}
	if inv != nil {
		event.InvocationID = inv.ID
		event.Op = inv.Op
		event.Convention = inv.Convention
	}
	select {
	case e.ch <- event:
	default:
	}
}

// Events returns the receive side of the event channel.
func (e *EventEmitter) Events() <-chan Event {
	return e.ch
}

// Close closes the event channel. Further Emit calls are dropped.
func (e *EventEmitter) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.closed = true
	close(e.ch)
}
