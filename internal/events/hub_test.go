package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubDeliversToSubscribers(t *testing.T) {
	h := NewHub()
	ch := h.Subscribe()
	defer h.Unsubscribe(ch)

	h.Publish("hello")
	assert.Equal(t, "hello", <-ch)
}

func TestHubDropsWhenSubscriberIsFull(t *testing.T) {
	h := NewHub()
	ch := h.Subscribe()
	defer h.Unsubscribe(ch)

	for i := 0; i < 20; i++ {
		h.Publish("evt")
	}
	// buffered at 10; the rest were dropped, not blocked on
	assert.Len(t, ch, 10)
}

func TestMakeEventEnvelope(t *testing.T) {
	s := MakeEvent("req-1", EventJobsStored, 1, map[string]any{"added": 3})

	var e Event
	require.NoError(t, json.Unmarshal([]byte(s), &e))
	assert.Equal(t, "jobs_stored", e.Type)
	assert.Equal(t, "req-1", e.RequestID)
	assert.JSONEq(t, `{"added":3}`, string(e.Data))
}
