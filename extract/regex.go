package extract

import (
	"regexp"
	"strings"
)

// nameSpan captures a two-or-three capitalized-word run. The patterns are
// compiled case-insensitively, so the shape filter does the real casing
// check afterwards.
const nameSpan = `([A-Z][a-z]+(?:\s+[A-Z][a-z]+){1,2})`

// RegexNamer extracts names with an ordered cascade of syntactic patterns
// built around the literal company and role strings.
type RegexNamer struct{}

// NewRegex creates a regex-only extractor.
func NewRegex() *RegexNamer {
	return &RegexNamer{}
}

// ExtractName tries each pattern in order against the full text and
// returns the first match that passes the name-shape filter. Within one
// pattern, matches are scanned in document order.
func (*RegexNamer) ExtractName(text, company, role string) (string, bool) {
	for _, p := range cascade(company, role) {
		for _, m := range p.FindAllStringSubmatch(text, -1) {
			candidate := strings.TrimSpace(m[1])
			if IsLikelyName(candidate) {
				return candidate, true
			}
		}
	}
	return "", false
}

// cascade builds the pattern list for a (company, role) pair, most
// explicit syntactic arrangement first. The final "Role: Name" pattern is
// the loosest and deliberately last.
func cascade(company, role string) []*regexp.Regexp {
	companyEsc := regexp.QuoteMeta(company)
	roleEsc := regexp.QuoteMeta(role)

	exprs := []string{
		nameSpan + `[,\s]+` + roleEsc + `\s+of\s+` + companyEsc,
		companyEsc + `\s+` + roleEsc + `\s+` + nameSpan,
		nameSpan + `\s+is\s+(?:the\s+)?` + roleEsc + `\s+of\s+` + companyEsc,
		nameSpan + `[,\s]+who\s+is\s+` + roleEsc + `\s+of\s+` + companyEsc,
		nameSpan + `\s+[–—]\s+` + roleEsc + `\s+of\s+` + companyEsc,
		roleEsc + `:\s*` + nameSpan,
	}

	patterns := make([]*regexp.Regexp, 0, len(exprs))
	for _, e := range exprs {
		patterns = append(patterns, regexp.MustCompile(`(?im)`+e))
	}
	return patterns
}
