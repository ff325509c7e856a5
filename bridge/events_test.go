package bridge

import (
	"context"
	"testing"
)

func drainEvents(b *Bridge) []Event {
	b.Close()
	var out []Event
	for e := range b.Events() {
		out = append(out, e)
	}
	return out
}

func TestEventsResolvedLifecycle(t *testing.T) {
	b := New(successCapability("login", "ok"), WithEventBuffer(8))

	p, err := b.Invoke("login", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := p.Await(context.Background()); err != nil {
		t.Fatalf("unexpected await error: %v", err)
	}

	events := drainEvents(b)
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d: %v", len(events), events)
	}
	if events[0].Kind != EventInvocationStart || events[1].Kind != EventInvocationResolved {
		t.Errorf("unexpected kinds: %s, %s", events[0].Kind, events[1].Kind)
	}
	if events[0].Op != "login" {
		t.Errorf("expected op login, got %q", events[0].Op)
	}
	if events[0].InvocationID == "" || events[0].InvocationID != events[1].InvocationID {
		t.Error("events of one invocation should share a non-empty id")
	}
	if events[1].Convention != ConventionStructured {
		t.Errorf("expected structured convention, got %q", events[1].Convention)
	}
}

func TestEventsLookupFailed(t *testing.T) {
	b := New(CapabilityMap{}, WithEventBuffer(8))

	if _, err := b.Invoke("nope", nil); !IsUnsupportedOperation(err) {
		t.Fatalf("expected UnsupportedOperationError, got %v", err)
	}

	events := drainEvents(b)
	if len(events) != 1 || events[0].Kind != EventLookupFailed {
		t.Fatalf("expected one lookup_failed event, got %v", events)
	}
}

func TestEventsDuplicateSettlement(t *testing.T) {
	cap := CapabilityMap{
		"flaky": func(args ...any) any {
			opts := args[0].(Options)
			opts[KeySuccess].(Callback)("v")
			opts[KeyFail].(Callback)("late")
			return nil
		},
	}
	b := New(cap, WithEventBuffer(8))

	if _, err := b.Invoke("flaky", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var kinds []EventKind
	for _, e := range drainEvents(b) {
		kinds = append(kinds, e.Kind)
	}
	want := []EventKind{EventInvocationStart, EventInvocationResolved, EventDuplicateSettlement}
	if len(kinds) != len(want) {
		t.Fatalf("expected %v, got %v", want, kinds)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("event %d: expected %s, got %s", i, want[i], kinds[i])
		}
	}
}

func TestEmitterClosedDropsSilently(t *testing.T) {
	e := NewEventEmitter(1)
	e.Close()
	e.Emit(EventInvocationStart, nil, nil) // must not panic
}

func TestEventsDisabledByDefault(t *testing.T) {
	b := New(successCapability("login", "ok"))
	if b.Events() != nil {
		t.Error("events should be nil unless enabled")
	}
}
