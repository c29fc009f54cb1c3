// Package search defines the search-provider contract and merges results
// across providers.
package search

import "context"

// Result is a single search hit as reported by a provider.
type Result struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}

// Provider executes a web search. Implementations convert every transport
// and parsing failure into an error; the aggregator decides what failures
// mean (they never abort a lookup).
type Provider interface {
	// Name identifies the provider for logging and cache namespacing.
	Name() string
	// Search returns up to maxResults hits for the query.
	Search(ctx context.Context, query string, maxResults int) ([]Result, error)
}
