package search

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/codeGROOVE-dev/figurehead/cache"
)

// stubProvider serves canned results and counts invocations.
type stubProvider struct {
	name    string
	results []Result
	err     error
	calls   int
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) Search(_ context.Context, _ string, _ int) ([]Result, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.results, nil
}

func TestSearchMergesInProviderOrder(t *testing.T) {
	primary := &stubProvider{name: "primary", results: []Result{
		{Title: "one", URL: "https://a.example.com"},
		{Title: "two", URL: "https://b.example.com"},
	}}
	secondary := &stubProvider{name: "secondary", results: []Result{
		{Title: "three", URL: "https://c.example.com"},
	}}

	agg := NewAggregator([]Provider{primary, secondary})
	got := agg.Search(context.Background(), "Acme Corp CEO")

	want := []Result{
		{Title: "one", URL: "https://a.example.com"},
		{Title: "two", URL: "https://b.example.com"},
		{Title: "three", URL: "https://c.example.com"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Search mismatch (-want +got):\n%s", diff)
	}
}

func TestSearchDeduplicatesByURLFirstWins(t *testing.T) {
	primary := &stubProvider{name: "primary", results: []Result{
		{Title: "primary title", URL: "https://a.example.com", Snippet: "primary snippet"},
	}}
	secondary := &stubProvider{name: "secondary", results: []Result{
		{Title: "secondary title", URL: "https://a.example.com", Snippet: "secondary snippet"},
		{Title: "unique", URL: "https://b.example.com"},
	}}

	agg := NewAggregator([]Provider{primary, secondary})
	got := agg.Search(context.Background(), "Acme Corp CEO")

	if len(got) != 2 {
		t.Fatalf("got %d results, want 2", len(got))
	}
	if got[0].Title != "primary title" {
		t.Errorf("dedupe kept %q, want the first occurrence", got[0].Title)
	}
}

func TestSearchSkipsEmptyURLs(t *testing.T) {
	p := &stubProvider{name: "primary", results: []Result{
		{Title: "no url"},
		{Title: "ok", URL: "https://a.example.com"},
	}}

	agg := NewAggregator([]Provider{p})
	got := agg.Search(context.Background(), "Acme Corp CEO")

	if len(got) != 1 || got[0].URL != "https://a.example.com" {
		t.Errorf("Search = %+v, want only the result with a URL", got)
	}
}

func TestSearchSwallowsProviderFailure(t *testing.T) {
	broken := &stubProvider{name: "broken", err: errors.New("connection refused")}
	working := &stubProvider{name: "working", results: []Result{
		{Title: "ok", URL: "https://a.example.com"},
	}}

	agg := NewAggregator([]Provider{broken, working})
	got := agg.Search(context.Background(), "Acme Corp CEO")

	if len(got) != 1 {
		t.Fatalf("got %d results, want 1 despite the broken provider", len(got))
	}
}

func TestSearchAllProvidersDown(t *testing.T) {
	agg := NewAggregator([]Provider{
		&stubProvider{name: "a", err: errors.New("timeout")},
		&stubProvider{name: "b", err: errors.New("HTTP 503")},
	})

	if got := agg.Search(context.Background(), "Acme Corp CEO"); len(got) != 0 {
		t.Errorf("Search = %+v, want empty with every provider down", got)
	}
}

func TestSearchCachesPerProviderQuery(t *testing.T) {
	p := &stubProvider{name: "primary", results: []Result{
		{Title: "ok", URL: "https://a.example.com", Snippet: "snippet"},
	}}

	agg := NewAggregator([]Provider{p}, WithCache(cache.NewMemory()))
	ctx := context.Background()

	first := agg.Search(ctx, "Acme Corp CEO")
	second := agg.Search(ctx, "Acme Corp CEO")

	if p.calls != 1 {
		t.Errorf("provider invoked %d times, want 1 (second call served from cache)", p.calls)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("cached results differ (-first +second):\n%s", diff)
	}

	// A different query misses the cache.
	agg.Search(ctx, "Acme Corp CTO")
	if p.calls != 2 {
		t.Errorf("provider invoked %d times, want 2 after a new query", p.calls)
	}
}

func TestSearchDoesNotCacheFailures(t *testing.T) {
	p := &stubProvider{name: "flaky", err: errors.New("boom")}
	agg := NewAggregator([]Provider{p}, WithCache(cache.NewMemory()))
	ctx := context.Background()

	agg.Search(ctx, "Acme Corp CEO")
	agg.Search(ctx, "Acme Corp CEO")

	if p.calls != 2 {
		t.Errorf("provider invoked %d times, want 2 (failures are not cached)", p.calls)
	}
}
