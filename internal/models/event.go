package models

import "encoding/json"

// Event types published to the event stream.
const (
	EventMoodRecorded   = "mood.recorded"
	EventUserRegistered = "user.registered"
)

// Event is a domain event, keyed by user in the stream.
type Event struct {
	EventID    string          `json:"event_id"`    // Unique event identifier
	Type       string          `json:"type"`        // One of the Event* constants
	UserID     string          `json:"user_id"`     // Owner of the change
	OccurredAt int64           `json:"occurred_at"` // Unix seconds
	Payload    json.RawMessage `json:"payload"`     // Type specific body
}
