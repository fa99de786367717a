package domain

import (
	"net/url"
	"strings"
)

// Company is the employer half of a job record. LogoURL is always set;
// extraction substitutes a placeholder when no logo can be found.
type Company struct {
	Name    string `json:"name"`
	LogoURL string `json:"logoUrl"`
}

// JobRecord is the canonical shape for one job posting, regardless of
// whether it came from the structured provider or from scraped HTML.
type JobRecord struct {
	Title        string   `json:"title"`
	Company      Company  `json:"company"`
	Location     string   `json:"location"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
	Skills       []string `json:"skills"`
	URL          string   `json:"url,omitempty"`
	Source       string   `json:"source,omitempty"`
}

// SourceForURL tags a record by the job board it was scraped from.
func SourceForURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "web"
	}
	host := strings.ToLower(u.Host)
	switch {
	case strings.Contains(host, "linkedin.com"):
		return "linkedin"
	case strings.Contains(host, "indeed.com"):
		return "indeed"
	case strings.Contains(host, "glassdoor.com"):
		return "glassdoor"
	case strings.Contains(host, "internshala.com"):
		return "internshala"
	default:
		return "web"
	}
}
