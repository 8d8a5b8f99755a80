// Package events decouples domain mutations from the live-update transport.
// Services publish domain events through the Publisher interface; the
// websocket hub (or anything else) subscribes by implementing it. Publishing
// is fire-and-forget: a failed broadcast never fails or rolls back the write
// that produced it.
package events

import (
	"context"
	"encoding/json"
	"time"
)

// Topics the dashboard subscribes to.
const (
	TopicBeds      = "beds"
	TopicTransfers = "transfers"
)

// Event types.
const (
	TypeBedsUpdated      = "beds_updated"
	TypeTransfersUpdated = "transfers_updated"
)

// Event is a single domain notification.
type Event struct {
	Type       string          `json:"type"`
	Topic      string          `json:"topic"`
	ResourceID string          `json:"resource_id,omitempty"`
	Timestamp  time.Time       `json:"timestamp"`
	Data       json.RawMessage `json:"data,omitempty"`
}

// Publisher delivers events to subscribers.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Nop is a Publisher that discards everything; used by the CLI and tests.
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }

// BedsUpdated builds the event emitted after any bed mutation.
func BedsUpdated() Event {
	return Event{Type: TypeBedsUpdated, Topic: TopicBeds, Timestamp: time.Now().UTC()}
}

// TransfersUpdated builds the event emitted after any transfer-request mutation.
func TransfersUpdated() Event {
	return Event{Type: TypeTransfersUpdated, Topic: TopicTransfers, Timestamp: time.Now().UTC()}
}
