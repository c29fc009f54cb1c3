package extract

import (
	"strings"

	"github.com/jdkato/prose/v2"
)

// nerWindow bounds how much text entity recognition sees. Tagging is the
// slow path; names relevant to a leadership query show up early.
const nerWindow = 10000

// entity is a recognized span with the sentence it appeared in.
type entity struct {
	Text     string
	Label    string
	Sentence string
}

// entityFunc produces entities for a text span. Injected in tests.
type entityFunc func(text string) ([]entity, error)

// NERNamer extracts names via entity recognition, gated on the containing
// sentence mentioning both the company and the role. When recognition
// finds nothing usable it degrades to the regex cascade.
type NERNamer struct {
	entities entityFunc
	fallback *RegexNamer
}

// NewNER creates an entity-recognition extractor backed by prose.
func NewNER() *NERNamer {
	return &NERNamer{
		entities: proseEntities,
		fallback: NewRegex(),
	}
}

// ExtractName returns the first PERSON entity whose sentence mentions both
// company and role and whose text passes the name-shape filter. Entities
// are scanned in document order. Falls back to the regex cascade.
func (n *NERNamer) ExtractName(text, company, role string) (string, bool) {
	window := text
	if len(window) > nerWindow {
		window = window[:nerWindow]
	}

	ents, err := n.entities(window)
	if err == nil {
		companyLower := strings.ToLower(company)
		roleLower := strings.ToLower(role)
		for _, ent := range ents {
			if ent.Label != "PERSON" {
				continue
			}
			sentence := strings.ToLower(ent.Sentence)
			if !strings.Contains(sentence, companyLower) || !strings.Contains(sentence, roleLower) {
				continue
			}
			name := strings.TrimSpace(ent.Text)
			if IsLikelyName(name) {
				return name, true
			}
		}
	}

	return n.fallback.ExtractName(text, company, role)
}

// proseEntities runs prose over the text and attaches each entity to the
// first sentence containing it.
func proseEntities(text string) ([]entity, error) {
	doc, err := prose.NewDocument(text)
	if err != nil {
		return nil, err
	}

	sentences := doc.Sentences()
	var ents []entity
	for _, e := range doc.Entities() {
		ents = append(ents, entity{
			Text:     e.Text,
			Label:    e.Label,
			Sentence: containingSentence(sentences, e.Text),
		})
	}
	return ents, nil
}

func containingSentence(sentences []prose.Sentence, text string) string {
	for _, s := range sentences {
		if strings.Contains(s.Text, text) {
			return s.Text
		}
	}
	return ""
}
