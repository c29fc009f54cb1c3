// Package credibility maps source URLs to fixed trust weights.
package credibility

import (
	"net/url"
	"strings"
)

// Trust weights by source class. These are heuristics reflecting how often
// a source class names the current holder of a role correctly, not any
// verified measure.
const (
	linkedinScore  = 0.95
	wikipediaScore = 0.90
	govEduScore    = 0.85
	newsScore      = 0.80
	defaultScore   = 0.60
)

// Established outlets whose article pages usually name executives accurately.
var trustedNewsTokens = []string{
	"bloomberg", "reuters", "wsj", "nytimes", "bbc", "forbes",
	"techcrunch", "cnbc", "ft.com", "economist", "apnews",
}

// Score returns the trust weight for a URL's host. Checks are ordered most
// specific first; the first match wins. Unknown sources get the floor score
// rather than zero so corroboration across them still counts.
func Score(rawURL string) float64 {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return defaultScore
	}
	host := strings.ToLower(parsed.Host)

	switch {
	case strings.Contains(host, "linkedin.com"):
		return linkedinScore
	case strings.Contains(host, "wikipedia.org"):
		return wikipediaScore
	case strings.Contains(host, ".gov") || strings.Contains(host, ".edu"):
		return govEduScore
	}

	for _, token := range trustedNewsTokens {
		if strings.Contains(host, token) {
			return newsScore
		}
	}

	return defaultScore
}
