package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cardHTML = `
<div class="job_seen_beacon">
  <h2 class="jobTitle">Go Developer</h2>
  <span class="companyName">Acme</span>
  <div class="companyLocation">Berlin</div>
</div>`

func newSearcher(structuredURL, proxyURL string) *Searcher {
	s := &Searcher{
		SearchURLTemplate: "https://example.com/jobs?q=%s&l=%s",
	}
	if structuredURL != "" {
		s.Structured = NewStructuredClient("test-key", "test-creds", structuredURL, nil)
	} else {
		s.Structured = NewStructuredClient("", "", "", nil)
	}
	if proxyURL != "" {
		s.Proxy = NewProxyClient("proxy-key", proxyURL, nil)
	} else {
		s.Proxy = NewProxyClient("", "", nil)
	}
	return s
}

func TestSearchStructuredSuccessSkipsProxy(t *testing.T) {
	var structuredCalls, proxyCalls atomic.Int32

	structured := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		structuredCalls.Add(1)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-creds", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"jobs":[{
			"title":"Staff Engineer",
			"company":{"name":"Initech","imageUri":"https://cdn.initech.com/logo.png"},
			"description":"Do staff things",
			"locations":["Austin, TX"],
			"qualifications":["10 years experience"],
			"skills":["Go"],
			"applicationInfo":{"uris":["https://initech.com/careers/1"]}
		}]}`))
	}))
	defer structured.Close()

	proxy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		proxyCalls.Add(1)
	}))
	defer proxy.Close()

	s := newSearcher(structured.URL, proxy.URL)
	jobs, err := s.Search(context.Background(), "engineer", "austin")
	require.NoError(t, err)

	require.Len(t, jobs, 1)
	assert.Equal(t, "Staff Engineer", jobs[0].Title)
	assert.Equal(t, "Initech", jobs[0].Company.Name)
	assert.Equal(t, "Austin, TX", jobs[0].Location)
	assert.Equal(t, []string{"10 years experience"}, jobs[0].Requirements)
	assert.Equal(t, "https://initech.com/careers/1", jobs[0].URL)
	assert.Equal(t, "google_jobs", jobs[0].Source)

	assert.EqualValues(t, 1, structuredCalls.Load())
	assert.EqualValues(t, 0, proxyCalls.Load())
}

func TestSearchFallsBackOnStructuredError(t *testing.T) {
	var structuredCalls, proxyCalls atomic.Int32

	structured := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		structuredCalls.Add(1)
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer structured.Close()

	proxy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		proxyCalls.Add(1)
		assert.Equal(t, "proxy-key", r.URL.Query().Get("api_key"))
		assert.Contains(t, r.URL.Query().Get("url"), "example.com/jobs")
		_, _ = w.Write([]byte(cardHTML))
	}))
	defer proxy.Close()

	s := newSearcher(structured.URL, proxy.URL)
	jobs, err := s.Search(context.Background(), "go developer", "berlin")
	require.NoError(t, err)

	require.Len(t, jobs, 1)
	assert.Equal(t, "Go Developer", jobs[0].Title)
	assert.Equal(t, "indeed_scrape", jobs[0].Source)

	// structured tried exactly once, scrape path exactly once
	assert.EqualValues(t, 1, structuredCalls.Load())
	assert.EqualValues(t, 1, proxyCalls.Load())
}

func TestSearchFallsBackOnEmptyStructuredResult(t *testing.T) {
	var proxyCalls atomic.Int32

	structured := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"jobs":[]}`))
	}))
	defer structured.Close()

	proxy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		proxyCalls.Add(1)
		_, _ = w.Write([]byte(`<html><body>nothing here</body></html>`))
	}))
	defer proxy.Close()

	s := newSearcher(structured.URL, proxy.URL)
	jobs, err := s.Search(context.Background(), "underwater basket weaver", "")
	require.NoError(t, err)

	// empty listing from the scrape path is a success, not an error
	assert.Empty(t, jobs)
	assert.EqualValues(t, 1, proxyCalls.Load())
}

func TestStructuredSearchEscapesAPIKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Query().Get decodes, so this only matches when the key was escaped
		assert.Equal(t, "k+y/with=chars", r.URL.Query().Get("key"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"jobs":[]}`))
	}))
	defer srv.Close()

	c := NewStructuredClient("k+y/with=chars", "creds", srv.URL, nil)
	jobs, err := c.Search(context.Background(), "engineer", "")
	require.NoError(t, err)
	assert.Empty(t, jobs)
}

func TestSearchNoProviderConfigured(t *testing.T) {
	s := newSearcher("", "")
	_, err := s.Search(context.Background(), "anything", "")
	assert.ErrorIs(t, err, ErrNoProviderConfigured)
}

func TestSearchProxyFetchError(t *testing.T) {
	proxy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "denied", http.StatusForbidden)
	}))
	defer proxy.Close()

	s := newSearcher("", proxy.URL)
	_, err := s.Search(context.Background(), "go developer", "")

	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, "proxy", upstream.Provider)
	assert.Equal(t, http.StatusForbidden, upstream.Status)
}

func TestLookupParsesSinglePosting(t *testing.T) {
	proxy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "https://www.indeed.com/viewjob?jk=abc", r.URL.Query().Get("url"))
		_, _ = w.Write([]byte(`<h1>SRE</h1><div class="company">Hooli</div>`))
	}))
	defer proxy.Close()

	s := newSearcher("", proxy.URL)
	job, err := s.Lookup(context.Background(), "https://www.indeed.com/viewjob?jk=abc")
	require.NoError(t, err)

	assert.Equal(t, "SRE", job.Title)
	assert.Equal(t, "Hooli", job.Company.Name)
	assert.Equal(t, "https://www.indeed.com/viewjob?jk=abc", job.URL)
	assert.Equal(t, "indeed", job.Source)
}

func TestLookupNoProxyConfigured(t *testing.T) {
	s := newSearcher("", "")
	_, err := s.Lookup(context.Background(), "https://example.com/jobs/1")
	assert.ErrorIs(t, err, ErrNoProviderConfigured)
}
