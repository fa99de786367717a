package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"jobscout-engine/internal/domain"
)

// cardSelectors locate repeated job-card containers on a results page.
// The first selector that matches anything wins for the whole page.
var cardSelectors = []string{
	"div.job_seen_beacon",
	"div.jobsearch-SerpJobCard",
	"li.base-search-card",
	"div.job-card",
	"[data-testid='job-card']",
}

// ParseListing assembles zero or more JobRecords from a search-results page.
// A card missing its title or company is dropped; one bad card never aborts
// the page. Requirements are not extracted per card.
func ParseListing(html string) ([]domain.JobRecord, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse listing html: %w", err)
	}

	var cards *goquery.Selection
	for _, q := range cardSelectors {
		if s := doc.Find(q); s.Length() > 0 {
			cards = s
			break
		}
	}

	records := []domain.JobRecord{}
	if cards == nil {
		return records, nil
	}

	cards.Each(func(_ int, card *goquery.Selection) {
		title := CardTitle(card)
		company := CompanyName(card)
		if title == "" || company == "" {
			return
		}

		cardHTML, err := goquery.OuterHtml(card)
		if err != nil {
			cardHTML = ""
		}

		records = append(records, domain.JobRecord{
			Title:        title,
			Company:      domain.Company{Name: company, LogoURL: LogoURL(card)},
			Location:     Location(card),
			Description:  Description(card),
			Requirements: []string{},
			Skills:       Skills(cardHTML),
		})
	})
	return records, nil
}
