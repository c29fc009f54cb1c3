// Package extract pulls candidate personal names out of free text.
//
// Two extractors implement the same contract: NERNamer runs entity
// recognition and falls back to the regex cascade, RegexNamer runs the
// cascade alone. Both validate candidates with IsLikelyName.
package extract

import (
	"regexp"
	"strings"
)

// Namer extracts a person's name for a (company, role) pair from text.
// The boolean reports whether a candidate passed validation.
type Namer interface {
	ExtractName(text, company, role string) (string, bool)
}

// wordShape accepts a single name word: uppercase first letter, then
// letters or periods. Hyphenated and accented names fail this shape — a
// known precision/recall tradeoff that keeps corporate noise out.
var wordShape = regexp.MustCompile(`^[A-Z][a-zA-Z.]*$`)

// blacklist holds title, corporate and structural words that never appear
// in a personal name we want to return.
var blacklist = map[string]bool{
	"Chief": true, "Executive": true, "Officer": true, "Founder": true,
	"Director": true, "Manager": true, "Google": true, "Company": true,
	"Inc": true, "Ltd": true, "Corporation": true, "The": true,
	"And": true, "Of": true, "President": true, "Chairman": true,
	"Board": true, "Member": true, "Head": true, "Lead": true,
}

// IsLikelyName reports whether a candidate string is shaped like a
// personal name: at least two words, every word matching the name shape,
// no word blacklisted.
func IsLikelyName(candidate string) bool {
	words := strings.Fields(candidate)
	if len(words) < 2 {
		return false
	}
	for _, w := range words {
		if !wordShape.MatchString(w) {
			return false
		}
		if blacklist[w] {
			return false
		}
	}
	return true
}
