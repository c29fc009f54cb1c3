package cache

import (
	"bytes"
	"context"
	"testing"
)

func TestKey(t *testing.T) {
	a := Key("search:duckduckgo", "Acme Corp CEO")
	b := Key("search:duckduckgo", "Acme Corp CEO")
	if a != b {
		t.Error("Key should be deterministic")
	}

	if Key("search:brave", "Acme Corp CEO") == a {
		t.Error("different kinds must produce different keys")
	}
	if Key("search:duckduckgo", "Acme Corp CTO") == a {
		t.Error("different keys must produce different keys")
	}

	// Hex SHA256: fixed length, filesystem safe.
	if len(a) != 64 {
		t.Errorf("Key length = %d, want 64", len(a))
	}
}

func TestMemoryGetSet(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	if _, found := m.Get(ctx, "page", "https://example.com"); found {
		t.Error("Get on empty cache should not find anything")
	}

	data := []byte("page text here")
	if err := m.Set(ctx, "page", "https://example.com", data); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, found := m.Get(ctx, "page", "https://example.com")
	if !found {
		t.Fatal("Get should find the stored entry")
	}
	if !bytes.Equal(got, data) {
		t.Errorf("Get = %q, want %q", got, data)
	}

	// Same key, different kind: separate entry.
	if _, found := m.Get(ctx, "search:duckduckgo", "https://example.com"); found {
		t.Error("kind should namespace entries")
	}
}

func TestMemoryNegativeEntry(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	// Empty values are valid entries: negative caching relies on a stored
	// empty string being found.
	if err := m.Set(ctx, "page", "https://bad.example.com", []byte("")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, found := m.Get(ctx, "page", "https://bad.example.com")
	if !found {
		t.Fatal("empty entry should still be found")
	}
	if len(got) != 0 {
		t.Errorf("Get = %q, want empty", got)
	}
}

func TestMemoryOverwrite(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	_ = m.Set(ctx, "page", "k", []byte("one"))
	_ = m.Set(ctx, "page", "k", []byte("two"))

	got, _ := m.Get(ctx, "page", "k")
	if string(got) != "two" {
		t.Errorf("Get = %q, want whole-value replacement", got)
	}
	if m.Len() != 1 {
		t.Errorf("Len = %d, want 1", m.Len())
	}
}
