package engine

import (
	"testing"
)

// MockObserver is a test observer that records events
type MockObserver struct {
	Events []Event
}

func (m *MockObserver) OnEvent(event Event) {
	m.Events = append(m.Events, event)
}

func TestAddObserver(t *testing.T) {
	eng := New(nil)
	observer := &MockObserver{}

	eng.AddObserver(observer)

	if len(eng.observers) != 1 {
		t.Errorf("Expected 1 observer, got %d", len(eng.observers))
	}
}

func TestRemoveObserver(t *testing.T) {
	eng := New(nil)
	observer := &MockObserver{}
	other := &MockObserver{}

	eng.AddObserver(observer)
	eng.AddObserver(other)
	eng.RemoveObserver(observer)

	if len(eng.observers) != 1 {
		t.Fatalf("Expected 1 observer, got %d", len(eng.observers))
	}
	if eng.observers[0] != other {
		t.Error("Expected the other observer to remain registered")
	}
}

func TestNotifyWithNoObservers(t *testing.T) {
	eng := New(nil)

	// Should not panic
	eng.notify(Event{Type: EventLoadStart, RunID: "test-run"})
}

func TestNotifyWithMultipleObservers(t *testing.T) {
	eng := New(nil)
	observer1 := &MockObserver{}
	observer2 := &MockObserver{}

	eng.AddObserver(observer1)
	eng.AddObserver(observer2)

	eng.notify(Event{Type: EventLoadStart, RunID: "test-run", Data: "data.csv"})

	if len(observer1.Events) != 1 {
		t.Errorf("Observer1: Expected 1 event, got %d", len(observer1.Events))
	}
	if len(observer2.Events) != 1 {
		t.Errorf("Observer2: Expected 1 event, got %d", len(observer2.Events))
	}
	if observer1.Events[0].Type != EventLoadStart {
		t.Errorf("Observer1: Expected EventLoadStart, got %v", observer1.Events[0].Type)
	}
}

func TestEventTimestamp(t *testing.T) {
	eng := New(nil)
	observer := &MockObserver{}
	eng.AddObserver(observer)

	eng.notify(Event{Type: EventLoadStart, RunID: "test-run"})

	if observer.Events[0].Timestamp.IsZero() {
		t.Error("Expected timestamp to be set, got zero value")
	}
}

func TestLoggingObserverDoesNotPanic(t *testing.T) {
	lo := NewLoggingObserver(nil)
	lo.OnEvent(Event{Type: EventWriteEnd, RunID: "test-run", Data: "out.json"})
}
