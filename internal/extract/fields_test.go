package extract

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDoc(t *testing.T, html string) *goquery.Selection {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc.Selection
}

func TestCleanText(t *testing.T) {
	assert.Equal(t, "Senior Engineer", CleanText("  Senior\n\tEngineer   "))
	assert.Equal(t, "", CleanText("   "))
}

func TestStripTags(t *testing.T) {
	assert.Equal(t, "5+ years of Go", StripTags("<li><b>5+ years</b> of Go</li>"))
}

func TestSkillsVocabularyMembership(t *testing.T) {
	html := `<div>We use react, TYPESCRIPT, and also gardening tools.</div>`
	got := Skills(html)
	assert.Equal(t, []string{"React", "TypeScript"}, got)
}

func TestSkillsDeduplicatedAndOrdered(t *testing.T) {
	html := `Docker docker DOCKER Python then AWS and python again`
	got := Skills(html)
	// vocabulary scan order, one entry per token
	assert.Equal(t, []string{"Python", "AWS", "Docker"}, got)
}

func TestSkillsIdempotent(t *testing.T) {
	html := `<p>React and Kubernetes, with strong Communication.</p>`
	first := Skills(html)
	second := Skills(html)
	assert.Equal(t, first, second)
}

func TestSkillsEmptyInput(t *testing.T) {
	assert.Empty(t, Skills(""))
	assert.Empty(t, Skills("<html><body>nothing relevant</body></html>"))
}

func TestLocationDefault(t *testing.T) {
	sel := mustDoc(t, `<div class="other">Austin, TX</div>`)
	assert.Equal(t, "Remote", Location(sel))
}

func TestLocationFirstMatchWins(t *testing.T) {
	sel := mustDoc(t, `
<div class="location">Berlin, Germany</div>
<div class="companyLocation">Munich, Germany</div>`)
	assert.Equal(t, "Berlin, Germany", Location(sel))
}

func TestLocationIdempotent(t *testing.T) {
	sel := mustDoc(t, `<span class="companyLocation">New York, NY</span>`)
	assert.Equal(t, Location(sel), Location(sel))
}

func TestLogoPlaceholderWhenAbsent(t *testing.T) {
	sel := mustDoc(t, `<img src="/banner.png" alt="office photo">`)
	assert.Equal(t, PlaceholderLogo, LogoURL(sel))
}

func TestLogoByClass(t *testing.T) {
	sel := mustDoc(t, `<img class="company-logo" src="https://cdn.example.com/acme.png">`)
	assert.Equal(t, "https://cdn.example.com/acme.png", LogoURL(sel))
}

func TestLogoByAltText(t *testing.T) {
	sel := mustDoc(t, `<img alt="Acme Logo" src="/img/acme.svg">`)
	assert.Equal(t, "/img/acme.svg", LogoURL(sel))
}

func TestRequirementsFromLabeledList(t *testing.T) {
	sel := mustDoc(t, `
<h3>Requirements</h3>
<ul>
  <li>5+ years of <b>React</b> experience</li>
  <li>Solid CS fundamentals</li>
</ul>
<h3>Benefits</h3>
<ul><li>Free snacks</li></ul>`)
	got := Requirements(sel)
	assert.Equal(t, []string{"5+ years of React experience", "Solid CS fundamentals"}, got)
}

func TestRequirementsQualificationsLabel(t *testing.T) {
	sel := mustDoc(t, `
<strong>Qualifications:</strong>
<ul><li>Bachelor's degree</li></ul>`)
	assert.Equal(t, []string{"Bachelor's degree"}, Requirements(sel))
}

func TestRequirementsOnlyFirstBlock(t *testing.T) {
	sel := mustDoc(t, `
<h2>Requirements</h2>
<ul><li>Go</li></ul>
<h2>Qualifications</h2>
<ul><li>Rust</li></ul>`)
	assert.Equal(t, []string{"Go"}, Requirements(sel))
}

func TestRequirementsEmptyWhenNoLabel(t *testing.T) {
	sel := mustDoc(t, `<ul><li>orphan item</li></ul>`)
	assert.Empty(t, Requirements(sel))
}

func TestTitleAndCompany(t *testing.T) {
	sel := mustDoc(t, `<h1>Backend Engineer</h1><div class="companyName">Initech</div>`)
	assert.Equal(t, "Backend Engineer", Title(sel))
	assert.Equal(t, "Initech", CompanyName(sel))
}

func TestTitleAbsent(t *testing.T) {
	sel := mustDoc(t, `<div>no heading here</div>`)
	assert.Equal(t, "", Title(sel))
}
