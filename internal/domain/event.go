package domain

import "encoding/json"

// EventType identifies a studio notification pushed to connected clients.
type EventType string

const (
	EventTypeMessageCreated    EventType = "message.created"
	EventTypeMessageUpdated    EventType = "message.updated"
	EventTypeScriptUpdated     EventType = "script.updated"
	EventTypeTemplateChanged   EventType = "template.changed"
	EventTypeGenerationCreated EventType = "generation.created"
	EventTypeCapacityExceeded  EventType = "storage.capacity_exceeded"
)

// Event is a notification broadcast over the websocket hub. Capacity
// events are the out-of-band channel that tells the UI a write was
// dropped while the stored state stayed intact.
type Event struct {
	Type    EventType       `json:"type"`
	Ts      int64           `json:"ts"` // Unix milliseconds
	Payload json.RawMessage `json:"payload,omitempty"`
}
