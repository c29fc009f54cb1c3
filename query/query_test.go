package query

import (
	"strings"
	"testing"
)

func TestBuildKnownRole(t *testing.T) {
	queries := Build("Acme Corp", "CEO")

	// CEO has 2 aliases: 5 templates x 3 variants
	want := 5 * 3
	if len(queries) != want {
		t.Errorf("Build returned %d queries, want %d", len(queries), want)
	}

	seen := make(map[string]bool)
	for _, q := range queries {
		if seen[q] {
			t.Errorf("duplicate query: %q", q)
		}
		seen[q] = true
	}

	if !seen["Acme Corp CEO"] {
		t.Error(`missing query "Acme Corp CEO"`)
	}
	if !seen["Who is the Chief Executive Officer of Acme Corp"] {
		t.Error("missing alias-expanded question query")
	}
	if !seen["Acme Corp CEO LinkedIn"] {
		t.Error("missing LinkedIn query")
	}
}

func TestBuildUnknownRole(t *testing.T) {
	queries := Build("Acme Corp", "Head of Cheese")

	// No aliases: just the 5 templates
	if len(queries) != 5 {
		t.Errorf("Build returned %d queries, want 5", len(queries))
	}
	for _, q := range queries {
		if !strings.Contains(q, "Head of Cheese") {
			t.Errorf("query %q does not mention the role", q)
		}
	}
}

func TestBuildCaseInsensitiveAlias(t *testing.T) {
	upper := Build("Acme Corp", "CEO")
	lower := Build("Acme Corp", "ceo")

	// Alias lookup is case-insensitive, so both expand to the same variant
	// count even though the literal role string differs.
	if len(upper) != len(lower) {
		t.Errorf("got %d queries for CEO but %d for ceo", len(upper), len(lower))
	}
}

func TestBuildCompoundRole(t *testing.T) {
	queries := Build("Acme Corp", "CEO & Founder")

	// "CEO & Founder" has no direct alias entry but each part contributes:
	// CEO (2) + Founder (2) + the compound itself = 5 variants.
	want := 5 * 5
	if len(queries) != want {
		t.Errorf("Build returned %d queries, want %d", len(queries), want)
	}

	var sawCoFounder bool
	for _, q := range queries {
		if strings.Contains(q, "Co-Founder") {
			sawCoFounder = true
		}
	}
	if !sawCoFounder {
		t.Error("compound role should pick up Co-Founder alias")
	}
}

func TestBuildBounds(t *testing.T) {
	for _, role := range []string{"CEO", "CTO", "Founder", "Janitor", "President"} {
		queries := Build("Acme Corp", role)
		n := len(Aliases(role))
		limit := 5 * (1 + n)
		if len(queries) < 5 || len(queries) > limit {
			t.Errorf("Build(%q) returned %d queries, want between 5 and %d", role, len(queries), limit)
		}
	}
}

func TestBuildDeterministic(t *testing.T) {
	a := Build("Acme Corp", "CFO")
	b := Build("Acme Corp", "CFO")

	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("query %d differs: %q vs %q", i, a[i], b[i])
		}
	}
}
