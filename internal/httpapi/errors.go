package httpapi

import (
	"encoding/json"
	"net/http"
)

// ErrorBody is the uniform error envelope. Success and failure are
// distinguished by the presence of jobs/job vs. error, plus the status code.
type ErrorBody struct {
	Error     string `json:"error"`
	Details   string `json:"details,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, r *http.Request, status int, message, details string) {
	WriteJSON(w, status, ErrorBody{
		Error:     message,
		Details:   details,
		RequestID: RequestIDFrom(r.Context()),
	})
}
