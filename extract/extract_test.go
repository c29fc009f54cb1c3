package extract

import "testing"

func TestIsLikelyName(t *testing.T) {
	tests := []struct {
		candidate string
		want      bool
	}{
		{"John Smith", true},
		{"Mary Jane Watson", true},
		{"J. Robert Oppenheimer", true},
		{"Sundar", false},                // single word
		{"Chief Officer", false},         // blacklisted words
		{"Acme Inc", false},              // corporate suffix
		{"John And Smith", false},        // structural word
		{"O'Brien Smith", false},         // apostrophe fails the shape regex
		{"Jean-Luc Picard", false},       // hyphen fails the shape regex
		{"john smith", false},            // lowercase
		{"John 2Smith", false},           // numeral
		{"Board Member", false},          // blacklisted
		{"President Lincoln", false},     // blacklisted title
		{"", false},                      // empty
		{"   ", false},                   // whitespace only
	}

	for _, tt := range tests {
		t.Run(tt.candidate, func(t *testing.T) {
			if got := IsLikelyName(tt.candidate); got != tt.want {
				t.Errorf("IsLikelyName(%q) = %v, want %v", tt.candidate, got, tt.want)
			}
		})
	}
}

func TestRegexNamerCascade(t *testing.T) {
	namer := NewRegex()

	tests := []struct {
		name     string
		text     string
		wantName string
		wantOK   bool
	}{
		{
			name:     "name comma role of company",
			text:     "Jane Doe, CEO of Acme Corp, announced record earnings.",
			wantName: "Jane Doe",
			wantOK:   true,
		},
		{
			name:     "company role name",
			text:     "Read the interview with Acme Corp CEO Marco Bitran.",
			wantName: "Marco Bitran",
			wantOK:   true,
		},
		{
			name:     "name is the role of company",
			text:     "Priya Narayan is the CEO of Acme Corp.",
			wantName: "Priya Narayan",
			wantOK:   true,
		},
		{
			name:     "name who is role of company",
			text:     "Tomas Eriksson, who is CEO of Acme Corp, gave an interview.",
			wantName: "Tomas Eriksson",
			wantOK:   true,
		},
		{
			name:     "name dash role of company",
			text:     "Keynote: Amina Diallo — CEO of Acme Corp.",
			wantName: "Amina Diallo",
			wantOK:   true,
		},
		{
			name:     "role colon name",
			text:     "Leadership team. CEO: Walter Hoffman. CFO: somebody else.",
			wantName: "Walter Hoffman",
			wantOK:   true,
		},
		{
			name:   "no match",
			text:   "Acme Corp makes anvils and rockets.",
			wantOK: false,
		},
		{
			name:   "match fails shape filter",
			text:   "Chief Executive, CEO of Acme Corp, spoke at the event.",
			wantOK: false,
		},
		{
			name:     "blacklisted match skipped for later valid one",
			text:     "Executive Chairman, CEO of Acme Corp. Later: Dana Voss, CEO of Acme Corp.",
			wantName: "Dana Voss",
			wantOK:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := namer.ExtractName(tt.text, "Acme Corp", "CEO")
			if ok != tt.wantOK {
				t.Fatalf("ExtractName ok = %v, want %v (got %q)", ok, tt.wantOK, got)
			}
			if ok && got != tt.wantName {
				t.Errorf("ExtractName = %q, want %q", got, tt.wantName)
			}
		})
	}
}

func TestRegexNamerEscapesMetaChars(t *testing.T) {
	namer := NewRegex()

	// Company and role strings are quoted literally, so regex
	// metacharacters in them must not break or broaden the patterns.
	text := "Lena Brandt, VP (Sales) of Acme+Co Inc. said hello."
	got, ok := namer.ExtractName(text, "Acme+Co Inc.", "VP (Sales)")
	if !ok {
		t.Fatal("ExtractName found nothing")
	}
	if got != "Lena Brandt" {
		t.Errorf("ExtractName = %q, want %q", got, "Lena Brandt")
	}
}

func TestNERNamerAcceptsGatedEntity(t *testing.T) {
	namer := &NERNamer{
		entities: func(string) ([]entity, error) {
			return []entity{
				// Wrong label: skipped.
				{Text: "Acme Corp", Label: "GPE", Sentence: "Acme Corp is led by its CEO."},
				// Sentence lacks the role: skipped.
				{Text: "Omar Haddad", Label: "PERSON", Sentence: "Omar Haddad joined Acme Corp in 2019."},
				// Passes all gates.
				{Text: "Ingrid Olsen", Label: "PERSON", Sentence: "Ingrid Olsen is the CEO of Acme Corp."},
			}, nil
		},
		fallback: NewRegex(),
	}

	got, ok := namer.ExtractName("irrelevant", "Acme Corp", "CEO")
	if !ok {
		t.Fatal("ExtractName found nothing")
	}
	if got != "Ingrid Olsen" {
		t.Errorf("ExtractName = %q, want %q", got, "Ingrid Olsen")
	}
}

func TestNERNamerRejectsBadShape(t *testing.T) {
	namer := &NERNamer{
		entities: func(string) ([]entity, error) {
			return []entity{
				{Text: "Chief Executive", Label: "PERSON", Sentence: "Chief Executive of Acme Corp, our CEO."},
			}, nil
		},
		fallback: NewRegex(),
	}

	// The only entity fails the shape filter and the text has no regex
	// match either.
	if got, ok := namer.ExtractName("nothing useful here", "Acme Corp", "CEO"); ok {
		t.Errorf("ExtractName = %q, want no match", got)
	}
}

func TestNERNamerFallsBackToRegex(t *testing.T) {
	namer := &NERNamer{
		entities: func(string) ([]entity, error) {
			return nil, nil
		},
		fallback: NewRegex(),
	}

	got, ok := namer.ExtractName("Jane Doe, CEO of Acme Corp", "Acme Corp", "CEO")
	if !ok {
		t.Fatal("ExtractName should fall back to the regex cascade")
	}
	if got != "Jane Doe" {
		t.Errorf("ExtractName = %q, want %q", got, "Jane Doe")
	}
}

func TestNERNamerTruncatesWindow(t *testing.T) {
	var sawLen int
	namer := &NERNamer{
		entities: func(text string) ([]entity, error) {
			sawLen = len(text)
			return nil, nil
		},
		fallback: NewRegex(),
	}

	long := make([]byte, 30000)
	for i := range long {
		long[i] = 'a'
	}
	namer.ExtractName(string(long), "Acme Corp", "CEO")

	if sawLen != nerWindow {
		t.Errorf("entity recognition saw %d chars, want %d", sawLen, nerWindow)
	}
}

func TestNewNERUsesProse(t *testing.T) {
	namer := NewNER()
	if namer.entities == nil {
		t.Fatal("NewNER should wire an entity function")
	}
	if namer.fallback == nil {
		t.Fatal("NewNER should wire the regex fallback")
	}
}
