package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"jobscout-engine/internal/events"
)

// The SSE handler needs http.Flusher to survive the full middleware chain,
// including the access-log status wrapper.
func TestEventsStreamsThroughMiddlewareChain(t *testing.T) {
	hub := events.NewHub()
	h := Chain(NewMux(Deps{Hub: hub}), Cors, RequestID, Recover, AccessLog)

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // one ping frame, then the handler returns

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/events", nil).WithContext(ctx)
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), `"type":"ping"`)
	assert.NotContains(t, rec.Body.String(), "Streaming unsupported")
}
