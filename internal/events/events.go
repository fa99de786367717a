package events

import (
	"encoding/json"
	"time"
)

// Event types the engine publishes over the SSE stream.
const (
	EventPing       = "ping"
	EventJobsStored = "jobs_stored"
	EventJobDeleted = "job_deleted"
)

// Event is the envelope for one SSE data frame. Data carries the payload
// pre-encoded so every event type serializes the same way.
type Event struct {
	Type      string          `json:"type"`
	Version   int             `json:"v"`
	At        time.Time       `json:"at"`
	RequestID string          `json:"request_id,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

// MakeEvent builds the serialized frame for one event.
func MakeEvent(reqID, typ string, v int, data any) string {
	var raw json.RawMessage
	if data != nil {
		b, _ := json.Marshal(data)
		raw = b
	}
	e := Event{
		Type:      typ,
		Version:   v,
		At:        time.Now().UTC(),
		RequestID: reqID,
		Data:      raw,
	}
	b, _ := json.Marshal(e)
	return string(b)
}
