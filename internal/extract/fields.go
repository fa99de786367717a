package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Defaults substituted when an optional field has no match.
const (
	PlaceholderLogo = "/placeholder.svg"
	DefaultLocation = "Remote"
)

// Each field has an ordered list of selectors; the first non-empty match
// wins. Selectors cover the markup of the boards we actually scrape
// (Indeed cards, LinkedIn search cards, generic posting pages).
var (
	titleSelectors = []string{
		"h1",
		"title",
	}

	cardTitleSelectors = []string{
		"h2.jobTitle",
		"h2",
		"h3",
		".jobTitle",
		"[data-testid='job-title']",
	}

	companySelectors = []string{
		".company",
		".companyName",
		"[data-testid='company-name']",
		".base-search-card__subtitle",
	}

	logoSelectors = []string{
		"img.company-logo",
		"img.logo",
	}

	locationSelectors = []string{
		".location",
		".companyLocation",
		"[data-test='job-location']",
		"[data-testid='text-location']",
	}

	descriptionSelectors = []string{
		".description",
		".job-description",
		"#jobDescriptionText",
		".job-snippet",
	}

	requirementLabels = []string{
		"requirements",
		"qualifications",
		"what you'll need",
	}
)

func firstText(s *goquery.Selection, selectors []string) string {
	for _, q := range selectors {
		if t := CleanText(s.Find(q).First().Text()); t != "" {
			return t
		}
	}
	return ""
}

// Title extracts a posting-page title. Empty means no match; the caller
// decides whether that is fatal.
func Title(s *goquery.Selection) string {
	return firstText(s, titleSelectors)
}

// CardTitle extracts a title from a listing card fragment.
func CardTitle(s *goquery.Selection) string {
	return firstText(s, cardTitleSelectors)
}

func CompanyName(s *goquery.Selection) string {
	return firstText(s, companySelectors)
}

// LogoURL returns the first logo-looking image src, else the placeholder.
func LogoURL(s *goquery.Selection) string {
	for _, q := range logoSelectors {
		if src, ok := s.Find(q).First().Attr("src"); ok && strings.TrimSpace(src) != "" {
			return src
		}
	}
	var found string
	s.Find("img[alt]").EachWithBreak(func(_ int, img *goquery.Selection) bool {
		alt, _ := img.Attr("alt")
		if !strings.Contains(strings.ToLower(alt), "logo") {
			return true
		}
		if src, ok := img.Attr("src"); ok && strings.TrimSpace(src) != "" {
			found = src
			return false
		}
		return true
	})
	if found != "" {
		return found
	}
	return PlaceholderLogo
}

func Location(s *goquery.Selection) string {
	if t := firstText(s, locationSelectors); t != "" {
		return t
	}
	return DefaultLocation
}

func Description(s *goquery.Selection) string {
	return firstText(s, descriptionSelectors)
}

// Requirements pulls list items from the first block headed by a
// requirements-style label. Only the first recognized list is used.
func Requirements(s *goquery.Selection) []string {
	out := []string{}
	s.Find("h1,h2,h3,h4,h5,strong,b,p").EachWithBreak(func(_ int, h *goquery.Selection) bool {
		label := strings.ToLower(CleanText(h.Text()))
		if label == "" || len(label) > 60 || !matchesRequirementLabel(label) {
			return true
		}

		list := h.NextAllFiltered("ul,ol").First()
		if list.Length() == 0 {
			list = h.Parent().Find("ul,ol").First()
		}
		if list.Length() == 0 {
			return true
		}

		list.Find("li").Each(func(_ int, li *goquery.Selection) {
			if t := CleanText(li.Text()); t != "" {
				out = append(out, t)
			}
		})
		return len(out) == 0
	})
	return out
}

func matchesRequirementLabel(label string) bool {
	for _, want := range requirementLabels {
		if strings.Contains(label, want) {
			return true
		}
	}
	return false
}
