package extract

import "strings"

// skillVocabulary is the fixed list of recognized skill tokens. Detection is
// a case-insensitive substring test against the document text, nothing
// smarter; results always come back in vocabulary order.
var skillVocabulary = []string{
	"JavaScript", "Python", "Java", "C++", "React", "Angular", "Vue",
	"Node.js", "TypeScript", "SQL", "AWS", "Docker", "Kubernetes",
	"Git", "Agile", "Scrum", "Communication", "Problem Solving",
}

// Skills scans the visible text of an HTML fragment for known skill tokens.
// Tags are stripped first so tokens inside attributes or URLs don't count.
func Skills(html string) []string {
	low := strings.ToLower(StripTags(html))
	out := make([]string, 0, 8)
	for _, sk := range skillVocabulary {
		if strings.Contains(low, strings.ToLower(sk)) {
			out = append(out, sk)
		}
	}
	return out
}
