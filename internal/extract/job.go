package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"jobscout-engine/internal/domain"
)

// MissingFieldError means a posting page had no recognizable value for a
// field the record cannot exist without (title, company).
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return "missing required field: " + e.Field
}

// ParseJob assembles one JobRecord from the HTML of a posting page.
// Title and company must be locatable; everything else degrades to its
// documented default.
func ParseJob(html, sourceURL string) (domain.JobRecord, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return domain.JobRecord{}, fmt.Errorf("parse job html: %w", err)
	}
	sel := doc.Selection

	title := Title(sel)
	if title == "" {
		return domain.JobRecord{}, &MissingFieldError{Field: "title"}
	}
	company := CompanyName(sel)
	if company == "" {
		return domain.JobRecord{}, &MissingFieldError{Field: "company"}
	}

	return domain.JobRecord{
		Title:        title,
		Company:      domain.Company{Name: company, LogoURL: LogoURL(sel)},
		Location:     Location(sel),
		Description:  Description(sel),
		Requirements: Requirements(sel),
		Skills:       Skills(html),
		URL:          sourceURL,
		Source:       domain.SourceForURL(sourceURL),
	}, nil
}
