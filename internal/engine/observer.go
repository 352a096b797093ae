package engine

import "time"

// EventType represents different lifecycle phases of a run
type EventType string

const (
	EventLoadStart   EventType = "load_start"
	EventLoadEnd     EventType = "load_end"
	EventReduceStart EventType = "reduce_start"
	EventReduceEnd   EventType = "reduce_end"
	EventWriteStart  EventType = "write_start"
	EventWriteEnd    EventType = "write_end"
)

// Event represents a lifecycle event in a run
type Event struct {
	Type      EventType   // Type of event
	RunID     string      // Run ID for tracing
	Timestamp time.Time   // When the event occurred
	Data      interface{} // Phase-specific data (e.g., path, row count, warnings)
}

// Observer interface for event subscribers
// Observers receive events at major run phases
type Observer interface {
	OnEvent(event Event)
}
