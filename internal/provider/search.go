package provider

import (
	"context"
	"fmt"
	"log"
	"net/url"

	"jobscout-engine/internal/domain"
	"jobscout-engine/internal/extract"
)

const defaultSearchURLTemplate = "https://www.indeed.com/jobs?q=%s&l=%s"

// Searcher resolves a query into job records using the most structured
// source available: the jobs API first, then the scrape path. The two are
// never called concurrently; fallback ordering is deterministic.
type Searcher struct {
	Structured *StructuredClient
	Proxy      *ProxyClient

	// SearchURLTemplate is the results-page URL handed to the proxy on the
	// scrape path, with %s slots for query and location.
	SearchURLTemplate string
}

// UpdateCredentials swaps the provider credentials in place, so a key stored
// while the engine is running takes effect without a restart.
func (s *Searcher) UpdateCredentials(structuredAPIKey, structuredCreds, proxyAPIKey string) {
	if s.Structured != nil {
		s.Structured.SetCredentials(structuredAPIKey, structuredCreds)
	}
	if s.Proxy != nil {
		s.Proxy.SetAPIKey(proxyAPIKey)
	}
}

func (s *Searcher) searchURL(query, location string) string {
	tmpl := s.SearchURLTemplate
	if tmpl == "" {
		tmpl = defaultSearchURLTemplate
	}
	return fmt.Sprintf(tmpl, url.QueryEscape(query), url.QueryEscape(location))
}

// Search runs the provider fallback chain for one request. The structured
// provider is attempted at most once; on error or empty result the scrape
// path takes over. An empty listing from the scrape path is a success.
func (s *Searcher) Search(ctx context.Context, query, location string) ([]domain.JobRecord, error) {
	if s.Structured.Configured() {
		jobs, err := s.Structured.Search(ctx, query, location)
		if err != nil {
			log.Printf("[search] structured provider failed, falling back: %v", err)
		} else if len(jobs) == 0 {
			log.Printf("[search] structured provider returned no jobs, falling back")
		} else {
			return jobs, nil
		}
	}

	if !s.Proxy.Configured() {
		return nil, ErrNoProviderConfigured
	}

	html, err := s.Proxy.FetchHTML(ctx, s.searchURL(query, location))
	if err != nil {
		return nil, err
	}

	jobs, err := extract.ParseListing(html)
	if err != nil {
		return nil, err
	}
	for i := range jobs {
		jobs[i].Source = "indeed_scrape"
	}
	log.Printf("[search] scrape fallback parsed jobs=%d", len(jobs))
	return jobs, nil
}

// Lookup fetches a single posting URL through the proxy and parses it into
// one record.
func (s *Searcher) Lookup(ctx context.Context, rawURL string) (domain.JobRecord, error) {
	if !s.Proxy.Configured() {
		return domain.JobRecord{}, ErrNoProviderConfigured
	}

	html, err := s.Proxy.FetchHTML(ctx, rawURL)
	if err != nil {
		return domain.JobRecord{}, err
	}
	return extract.ParseJob(html, rawURL)
}
