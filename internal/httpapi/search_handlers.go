package httpapi

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"jobscout-engine/internal/domain"
	"jobscout-engine/internal/events"
	"jobscout-engine/internal/extract"
	"jobscout-engine/internal/provider"
	"jobscout-engine/internal/store"
)

type SearchHandler struct {
	DB       *sql.DB
	Hub      *events.Hub
	Searcher *provider.Searcher

	// FetchTimeout bounds the whole provider chain for one request, so a
	// slow upstream can't eat the platform's entire budget.
	FetchTimeout time.Duration
}

type searchRequest struct {
	Query    string `json:"query"`
	Location string `json:"location"`
	URL      string `json:"url"`
}

// Search is the main entry point: {query, location?} runs the provider
// fallback chain, {url} extracts a single posting. URL wins when both are
// present.
func (h SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "Invalid request parameters", err.Error())
		return
	}
	req.Query = strings.TrimSpace(req.Query)
	req.Location = strings.TrimSpace(req.Location)
	req.URL = strings.TrimSpace(req.URL)

	ctx := r.Context()
	if h.FetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.FetchTimeout)
		defer cancel()
	}

	switch {
	case req.URL != "":
		job, err := h.Searcher.Lookup(ctx, req.URL)
		if err != nil {
			h.writeSearchError(w, r, err)
			return
		}
		h.persist(r, []domain.JobRecord{job})
		WriteJSON(w, http.StatusOK, map[string]any{"job": job})

	case req.Query != "":
		jobs, err := h.Searcher.Search(ctx, req.Query, req.Location)
		if err != nil {
			h.writeSearchError(w, r, err)
			return
		}
		if jobs == nil {
			jobs = []domain.JobRecord{}
		}
		h.persist(r, jobs)
		WriteJSON(w, http.StatusOK, map[string]any{"jobs": jobs})

	default:
		WriteError(w, r, http.StatusBadRequest, "Invalid request parameters", "body must include query or url")
	}
}

func (h SearchHandler) writeSearchError(w http.ResponseWriter, r *http.Request, err error) {
	var upstream *provider.UpstreamError
	var missing *extract.MissingFieldError

	switch {
	case errors.Is(err, provider.ErrNoProviderConfigured):
		WriteError(w, r, http.StatusInternalServerError, "Scraper API key not configured", err.Error())
	case errors.As(err, &upstream):
		WriteError(w, r, http.StatusBadGateway, "Failed to fetch jobs from provider", err.Error())
	case errors.As(err, &missing):
		WriteError(w, r, http.StatusInternalServerError, "Failed to parse job details from HTML", err.Error())
	default:
		WriteError(w, r, http.StatusInternalServerError, "An unexpected error occurred", err.Error())
	}
}

// persist stores whatever came back; storage trouble is logged and never
// surfaced to the search caller.
func (h SearchHandler) persist(r *http.Request, jobs []domain.JobRecord) {
	if h.DB == nil || len(jobs) == 0 {
		return
	}
	added, err := store.InsertJobsIfNew(r.Context(), h.DB, jobs)
	if err != nil {
		log.Printf("level=warn msg=\"store jobs\" request_id=%s err=%v", RequestIDFrom(r.Context()), err)
	}
	if added > 0 && h.Hub != nil {
		h.Hub.Publish(events.MakeEvent(RequestIDFrom(r.Context()), events.EventJobsStored, 1, map[string]any{"added": added}))
	}
}
