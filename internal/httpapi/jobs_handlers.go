package httpapi

import (
	"database/sql"
	"net/http"
	"strconv"
	"strings"

	"jobscout-engine/internal/events"
	"jobscout-engine/internal/store"
)

type JobsHandler struct {
	DB  *sql.DB
	Hub *events.Hub
}

func (h JobsHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	jobs, err := store.ListJobs(r.Context(), h.DB, limit)
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "Failed to list stored jobs", err.Error())
		return
	}
	writeJSON(w, jobs)
}

func (h JobsHandler) DeleteByPath(w http.ResponseWriter, r *http.Request) {
	idStr := strings.TrimPrefix(r.URL.Path, "/jobs/")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		WriteError(w, r, http.StatusBadRequest, "Invalid job id", idStr)
		return
	}

	if err := store.DeleteJob(r.Context(), h.DB, id); err != nil {
		WriteError(w, r, http.StatusInternalServerError, "Failed to delete job", err.Error())
		return
	}

	reqID := RequestIDFrom(r.Context())
	if h.Hub != nil {
		h.Hub.Publish(events.MakeEvent(reqID, events.EventJobDeleted, 1, map[string]any{"id": id}))
	}
	writeJSON(w, map[string]any{"ok": true, "id": id})
}
