package core

import "fmt"

// EventType classifies a change observed on the backing store.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event reports an external change to the backing store, typically another
// process rewriting the store file. Receivers usually react by calling Reload.
type Event struct {
	Type      EventType
	Name      string // file name relative to the store directory
	Timestamp int64  // Unix timestamp
}

// String implements fmt.Stringer, which also satisfies the lifecycle event
// contract used by the supervision bridge.
func (e Event) String() string {
	return fmt.Sprintf("%s %s", e.Type, e.Name)
}
