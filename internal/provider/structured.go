package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"jobscout-engine/internal/domain"
	"jobscout-engine/internal/extract"
)

const defaultStructuredEndpoint = "https://jobs.googleapis.com/v4/jobs:search"

// StructuredClient talks to the jobs API that returns structured fields.
// Its results map 1:1 into JobRecord with no heuristic extraction.
type StructuredClient struct {
	Endpoint string

	mu          sync.RWMutex
	apiKey      string
	credentials string

	hc      *http.Client
	limiter *HostLimiter
}

func NewStructuredClient(apiKey, credentials, endpoint string, limiter *HostLimiter) *StructuredClient {
	if endpoint == "" {
		endpoint = defaultStructuredEndpoint
	}
	return &StructuredClient{
		Endpoint:    endpoint,
		apiKey:      strings.TrimSpace(apiKey),
		credentials: strings.TrimSpace(credentials),
		hc:          &http.Client{Timeout: 20 * time.Second},
		limiter:     limiter,
	}
}

// SetCredentials swaps the credential pair at runtime. In-flight requests
// keep the pair they started with.
func (c *StructuredClient) SetCredentials(apiKey, credentials string) {
	c.mu.Lock()
	c.apiKey = strings.TrimSpace(apiKey)
	c.credentials = strings.TrimSpace(credentials)
	c.mu.Unlock()
}

func (c *StructuredClient) credentialPair() (key, creds string) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.apiKey, c.credentials
}

func (c *StructuredClient) Configured() bool {
	if c == nil {
		return false
	}
	key, creds := c.credentialPair()
	return key != "" && creds != ""
}

type locationFilter struct {
	Address string `json:"address"`
}

type jobQuery struct {
	Query           string           `json:"query"`
	LocationFilters []locationFilter `json:"locationFilters,omitempty"`
}

type searchRequest struct {
	SearchMode string   `json:"searchMode"`
	JobQuery   jobQuery `json:"jobQuery"`
}

type structuredJob struct {
	Title   string `json:"title"`
	Company struct {
		Name     string `json:"name"`
		ImageURI string `json:"imageUri"`
	} `json:"company"`
	Description     string   `json:"description"`
	Locations       []string `json:"locations"`
	Qualifications  []string `json:"qualifications"`
	Skills          []string `json:"skills"`
	ApplicationInfo struct {
		URIs []string `json:"uris"`
	} `json:"applicationInfo"`
}

type searchResponse struct {
	Jobs []structuredJob `json:"jobs"`
}

// Search issues one request to the structured provider. An empty slice with
// a nil error means the provider answered but had nothing; the caller treats
// that the same as a failure and falls back.
func (c *StructuredClient) Search(ctx context.Context, query, location string) ([]domain.JobRecord, error) {
	text := query
	if location != "" {
		text = fmt.Sprintf("%s in %s", query, location)
	}

	body := searchRequest{
		SearchMode: "JOB_SEARCH",
		JobQuery:   jobQuery{Query: text},
	}
	if location != "" {
		body.JobQuery.LocationFilters = []locationFilter{{Address: location}}
	}

	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("structured request: %w", err)
	}

	key, creds := c.credentialPair()
	endpoint := fmt.Sprintf("%s?key=%s", c.Endpoint, url.QueryEscape(key))

	if c.limiter != nil {
		if err := c.limiter.WaitURL(ctx, c.Endpoint); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("structured request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+creds)

	res, err := c.hc.Do(req)
	if err != nil {
		return nil, &UpstreamError{Provider: "structured", Err: err}
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return nil, &UpstreamError{Provider: "structured", Status: res.StatusCode}
	}

	var parsed searchResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, &UpstreamError{Provider: "structured", Err: err}
	}

	out := make([]domain.JobRecord, 0, len(parsed.Jobs))
	for _, j := range parsed.Jobs {
		out = append(out, mapStructuredJob(j))
	}
	return out, nil
}

func mapStructuredJob(j structuredJob) domain.JobRecord {
	logo := j.Company.ImageURI
	if logo == "" {
		logo = extract.PlaceholderLogo
	}
	loc := extract.DefaultLocation
	if len(j.Locations) > 0 && j.Locations[0] != "" {
		loc = j.Locations[0]
	}
	var jobURL string
	if len(j.ApplicationInfo.URIs) > 0 {
		jobURL = j.ApplicationInfo.URIs[0]
	}

	reqs := j.Qualifications
	if reqs == nil {
		reqs = []string{}
	}
	skills := j.Skills
	if skills == nil {
		skills = []string{}
	}

	return domain.JobRecord{
		Title:        j.Title,
		Company:      domain.Company{Name: j.Company.Name, LogoURL: logo},
		Location:     loc,
		Description:  j.Description,
		Requirements: reqs,
		Skills:       skills,
		URL:          jobURL,
		Source:       "google_jobs",
	}
}
