package search

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/codeGROOVE-dev/figurehead/cache"
)

// maxResultsPerProvider bounds how many hits each provider is asked for.
const maxResultsPerProvider = 20

// cacheKind namespaces per-provider result caching.
const cacheKind = "search:"

// Aggregator fans a query out to every enabled provider in order and
// merges the results. Provider failures are logged and swallowed: a dead
// provider yields zero results, never an aborted lookup.
type Aggregator struct {
	providers []Provider
	cache     cache.Cache
	logger    *slog.Logger
}

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithCache sets the cache for per-provider results.
func WithCache(c cache.Cache) Option {
	return func(a *Aggregator) { a.cache = c }
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Aggregator) { a.logger = logger }
}

// NewAggregator creates an aggregator over the given providers. Providers
// are queried sequentially in the order given, so the first provider's
// results come first in the merge.
func NewAggregator(providers []Provider, opts ...Option) *Aggregator {
	a := &Aggregator{
		providers: providers,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Search queries all providers and returns merged results, deduplicated by
// URL with the first occurrence winning. It never returns an error: with
// every provider down the result is simply empty.
func (a *Aggregator) Search(ctx context.Context, query string) []Result {
	var merged []Result
	for _, p := range a.providers {
		merged = append(merged, a.searchOne(ctx, p, query)...)
	}

	seen := make(map[string]bool)
	unique := merged[:0]
	for _, r := range merged {
		if r.URL == "" || seen[r.URL] {
			continue
		}
		seen[r.URL] = true
		unique = append(unique, r)
	}
	return unique
}

// searchOne queries a single provider with per-(provider, query) caching.
// Only successful calls are cached; a failed provider call yields empty
// results for this lookup and will be attempted again on the next one.
func (a *Aggregator) searchOne(ctx context.Context, p Provider, query string) []Result {
	kind := cacheKind + p.Name()

	if a.cache != nil {
		if data, found := a.cache.Get(ctx, kind, query); found {
			var results []Result
			if err := json.Unmarshal(data, &results); err == nil {
				a.logger.DebugContext(ctx, "search cache hit", "provider", p.Name(), "query", query)
				return results
			}
		}
	}

	results, err := p.Search(ctx, query, maxResultsPerProvider)
	if err != nil {
		a.logger.WarnContext(ctx, "search provider failed", "provider", p.Name(), "query", query, "error", err)
		return nil
	}

	if a.cache != nil {
		if data, err := json.Marshal(results); err == nil {
			_ = a.cache.Set(ctx, kind, query, data) //nolint:errcheck // cache errors are non-critical
		}
	}
	return results
}
