// Package figurehead answers "who currently holds role R at company C" by
// searching the web, extracting person names from results, and ranking
// candidates by source credibility and corroboration.
//
// Basic usage:
//
//	answer, err := figurehead.FindPerson(ctx, "Acme Corp", "CEO")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(answer.FirstName, answer.LastName, answer.Confidence)
//
// With a Brave Search API key and browser cookies for LinkedIn pages:
//
//	answer, err := figurehead.FindPerson(ctx, "Acme Corp", "CEO",
//	    figurehead.WithBraveAPIKey(os.Getenv("BRAVE_API_KEY")),
//	    figurehead.WithBrowserCookies())
//
// The answer is a best-effort heuristic ranking, not a verified knowledge-
// base lookup.
package figurehead

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/codeGROOVE-dev/figurehead/brave"
	"github.com/codeGROOVE-dev/figurehead/cache"
	"github.com/codeGROOVE-dev/figurehead/credibility"
	"github.com/codeGROOVE-dev/figurehead/duckduckgo"
	"github.com/codeGROOVE-dev/figurehead/extract"
	"github.com/codeGROOVE-dev/figurehead/page"
	"github.com/codeGROOVE-dev/figurehead/person"
	"github.com/codeGROOVE-dev/figurehead/query"
	"github.com/codeGROOVE-dev/figurehead/rank"
	"github.com/codeGROOVE-dev/figurehead/search"
)

type (
	// Answer re-exports person.Answer for convenience.
	Answer = person.Answer
	// Cache re-exports cache.Cache for convenience.
	Cache = cache.Cache
)

// Re-export common errors.
var (
	ErrNoCredibleSource = person.ErrNoCredibleSource
	ErrNoValidName      = person.ErrNoValidName
)

// ErrEmptyInput is returned when company or role is blank.
var ErrEmptyInput = errors.New("company and role are required")

// Option configures a Finder.
type Option func(*config)

type config struct {
	cache          cache.Cache
	logger         *slog.Logger
	namer          extract.Namer
	providers      []search.Provider
	cookies        map[string]string
	braveAPIKey    string
	browserCookies bool
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithCache sets the cache shared by search aggregation and page fetching.
func WithCache(store cache.Cache) Option {
	return func(c *config) { c.cache = store }
}

// WithBraveAPIKey enables the Brave Search provider. Without a key only
// DuckDuckGo is queried.
func WithBraveAPIKey(key string) Option {
	return func(c *config) { c.braveAPIKey = key }
}

// WithBrowserCookies enables reading LinkedIn cookies from browser stores
// for page fetches.
func WithBrowserCookies() Option {
	return func(c *config) { c.browserCookies = true }
}

// WithCookies sets explicit LinkedIn session cookies for page fetches.
func WithCookies(cookies map[string]string) Option {
	return func(c *config) { c.cookies = cookies }
}

// WithProviders replaces the default search providers.
func WithProviders(providers ...search.Provider) Option {
	return func(c *config) { c.providers = providers }
}

// WithNamer replaces the default name extractor.
func WithNamer(namer extract.Namer) Option {
	return func(c *config) { c.namer = namer }
}

// Finder runs role-holder lookups. A Finder is safe for concurrent use:
// each lookup keeps its own accumulation state and only the cache is
// shared.
type Finder struct {
	aggregator *search.Aggregator
	pages      *page.Client
	namer      extract.Namer
	logger     *slog.Logger
}

// New creates a Finder. By default it queries DuckDuckGo only, extracts
// names with entity recognition (regex fallback), and memoizes in process
// memory.
func New(ctx context.Context, opts ...Option) (*Finder, error) {
	cfg := &config{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.cache == nil {
		cfg.cache = cache.NewMemory()
	}
	if cfg.namer == nil {
		cfg.namer = extract.NewNER()
	}

	providers := cfg.providers
	if providers == nil {
		ddg, err := duckduckgo.New(ctx, duckduckgo.WithLogger(cfg.logger))
		if err != nil {
			return nil, err
		}
		providers = []search.Provider{ddg}

		if cfg.braveAPIKey != "" {
			brv, err := brave.New(ctx, brave.WithAPIKey(cfg.braveAPIKey), brave.WithLogger(cfg.logger))
			if err != nil {
				return nil, err
			}
			providers = append(providers, brv)
		}
	}

	pageOpts := []page.Option{page.WithCache(cfg.cache), page.WithLogger(cfg.logger)}
	if cfg.browserCookies {
		pageOpts = append(pageOpts, page.WithBrowserCookies())
	}
	if len(cfg.cookies) > 0 {
		pageOpts = append(pageOpts, page.WithCookies(cfg.cookies))
	}
	pages, err := page.New(ctx, pageOpts...)
	if err != nil {
		return nil, err
	}

	return &Finder{
		aggregator: search.NewAggregator(providers, search.WithCache(cfg.cache), search.WithLogger(cfg.logger)),
		pages:      pages,
		namer:      cfg.namer,
		logger:     cfg.logger,
	}, nil
}

// FindPerson looks up who holds the role at the company. It returns
// person.ErrNoCredibleSource when no name could be extracted from any
// source, and person.ErrNoValidName when candidates existed but none
// scored as a winner.
func (f *Finder) FindPerson(ctx context.Context, company, role string) (*person.Answer, error) {
	if company == "" || role == "" {
		return nil, ErrEmptyInput
	}

	queries := query.Build(company, role)
	board := rank.NewBoard()

	for _, q := range queries {
		f.logger.InfoContext(ctx, "running query", "query", q)

		for _, res := range f.aggregator.Search(ctx, q) {
			if res.URL == "" {
				continue
			}
			f.collect(ctx, board, res, company, role)
		}

		if board.ShouldStop() {
			f.logger.InfoContext(ctx, "early stop: enough corroborating evidence")
			break
		}
	}

	if board.Empty() {
		return nil, fmt.Errorf("%w: could not extract any name for %q at %q", person.ErrNoCredibleSource, role, company)
	}

	winner := board.Best()
	if winner == nil {
		return nil, person.ErrNoValidName
	}

	first, last := splitName(winner.Name)
	return &person.Answer{
		FirstName:  first,
		LastName:   last,
		Role:       role,
		Company:    company,
		SourceURL:  winner.SourceURL,
		Confidence: winner.Confidence,
	}, nil
}

// collect extracts a name for one search result, trying the snippet first
// and falling back to the full page text.
func (f *Finder) collect(ctx context.Context, board *rank.Board, res search.Result, company, role string) {
	if res.Snippet != "" {
		if name, ok := f.namer.ExtractName(res.Snippet, company, role); ok {
			f.logger.InfoContext(ctx, "found name in snippet", "name", name, "url", res.URL)
			board.Add(name, res.URL, credibility.Score(res.URL))
			return
		}
	}

	pageText := f.pages.Text(ctx, res.URL)
	if pageText == "" {
		return
	}
	if name, ok := f.namer.ExtractName(pageText, company, role); ok {
		f.logger.InfoContext(ctx, "found name in page", "name", name, "url", res.URL)
		board.Add(name, res.URL, credibility.Score(res.URL))
	}
}

// splitName divides a full name into first and remaining tokens.
func splitName(name string) (first, last string) {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return "", ""
	}
	first = parts[0]
	if len(parts) > 1 {
		last = strings.Join(parts[1:], " ")
	}
	return first, last
}

// FindPerson is a convenience wrapper that builds a Finder and runs a
// single lookup.
func FindPerson(ctx context.Context, company, role string, opts ...Option) (*person.Answer, error) {
	finder, err := New(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return finder.FindPerson(ctx, company, role)
}
