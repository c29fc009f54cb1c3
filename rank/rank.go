// Package rank accumulates name candidates and picks the best-evidenced one.
package rank

import (
	"math"
	"strings"
)

// Early-stop thresholds: once this many distinct names and total
// contributions have accumulated, further queries are unlikely to change
// the winner. A heuristic short-circuit, not a correctness guarantee.
const (
	stopNames         = 2
	stopContributions = 3
)

const corroborationBonus = 0.1

// genericFirstNames flags exactly-two-word names that regularly show up as
// false positives in example text ("John Smith said...").
var genericFirstNames = map[string]bool{
	"John": true, "Jane": true, "David": true, "Sarah": true,
}

// newsTokens mark URLs that look like news articles, which tend to name
// current officeholders rather than historical ones.
var newsTokens = []string{"/news/", "/article/", "bloomberg", "reuters"}

// Source is one piece of evidence for a candidate name.
type Source struct {
	URL         string
	Credibility float64
}

// Winner is the selected candidate with its final score and the single
// most credible source backing it.
type Winner struct {
	Name       string
	SourceURL  string
	Confidence float64
}

// Board accumulates (name -> sources) evidence across queries within one
// lookup. Accumulation is monotonic and insertion-ordered; boards are
// never shared across lookups.
type Board struct {
	sources map[string][]Source
	order   []string
	total   int
}

// NewBoard creates an empty accumulator.
func NewBoard() *Board {
	return &Board{sources: make(map[string][]Source)}
}

// Add records one source contribution for a name.
func (b *Board) Add(name, url string, credibility float64) {
	if _, ok := b.sources[name]; !ok {
		b.order = append(b.order, name)
	}
	b.sources[name] = append(b.sources[name], Source{URL: url, Credibility: credibility})
	b.total++
}

// Empty reports whether no candidate has been recorded.
func (b *Board) Empty() bool {
	return len(b.order) == 0
}

// ShouldStop reports whether enough corroborating evidence has accumulated
// to stop issuing further queries. Checked after each query's full result
// set; an early, less-credible name can trip it before the best-evidenced
// name is seen.
func (b *Board) ShouldStop() bool {
	return len(b.order) >= stopNames && b.total >= stopContributions
}

// Best scores every candidate and returns the winner, or nil if no
// candidate scored above zero. Candidates are scored in insertion order
// and the winner is replaced only on a strictly greater score, so ties
// keep the earlier-seen name.
func (b *Board) Best() *Winner {
	var best *Winner
	for _, name := range b.order {
		sources := b.sources[name]
		score, topURL := score(name, sources)
		if best == nil || score > best.Confidence {
			best = &Winner{
				Name:       name,
				SourceURL:  topURL,
				Confidence: score,
			}
		}
	}
	if best == nil || best.Confidence <= 0 {
		return nil
	}
	best.Confidence = math.Round(best.Confidence*100) / 100
	return best
}

// score computes a candidate's final score and its most credible source.
//
// base is the mean credibility across sources; each corroborating source
// adds 10% on top. Generic-looking two-word names are discounted, and a
// candidate whose strongest source looks like a news article gets a small
// boost. The score is capped at 1.0.
func score(name string, sources []Source) (final float64, topURL string) {
	var sum float64
	topCred := -1.0
	for _, s := range sources {
		sum += s.Credibility
		if s.Credibility > topCred {
			topCred = s.Credibility
			topURL = s.URL
		}
	}
	base := sum / float64(len(sources))

	multiplier := 1.0 + corroborationBonus*float64(len(sources))

	parts := strings.Fields(name)
	if len(parts) == 2 && genericFirstNames[parts[0]] {
		multiplier *= 0.9
	}

	for _, token := range newsTokens {
		if strings.Contains(topURL, token) {
			multiplier *= 1.05
			break
		}
	}

	return math.Min(base*multiplier, 1.0), topURL
}
