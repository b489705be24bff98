// Package pubsub provides a generic publish/subscribe event broker.
//
// Two producers run over it: the environment loader announces store reloads
// (Broker[int], payload is the object count after the swap) and the logger
// fans out formatted entries (Broker[string]).
package pubsub

import "time"

// EventType names what happened; the payload carries the detail.
type EventType string

const (
	// ReloadedEvent is published after the loader swapped in a fresh store.
	ReloadedEvent EventType = "reloaded"

	// LoggedEvent is published for every written log entry.
	LoggedEvent EventType = "logged"
)

// Event is a published event with a typed payload.
type Event[T any] struct {
	Type      EventType
	Payload   T
	Timestamp time.Time
}
