// Package page fetches web pages and reduces them to plain text for name
// extraction.
package page

import (
	"context"
	"crypto/tls"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/codeGROOVE-dev/figurehead/auth"
	"github.com/codeGROOVE-dev/figurehead/cache"
	"github.com/codeGROOVE-dev/figurehead/htmlutil"
)

const (
	// defaultMaxChars bounds how much page text the extractor sees.
	// Leadership mentions live in headers and opening paragraphs.
	defaultMaxChars = 5000

	fetchTimeout = 8 * time.Second

	cacheKind = "page"
)

// linkedinDomain is the one domain we load browser cookies for.
const linkedinDomain = "linkedin.com"

// Client fetches pages and extracts their visible text.
type Client struct {
	httpClient *http.Client
	cache      cache.Cache
	logger     *slog.Logger
	maxChars   int
}

// Option configures a Client.
type Option func(*config)

type config struct {
	cache          cache.Cache
	logger         *slog.Logger
	cookies        map[string]string
	maxChars       int
	browserCookies bool
}

// WithCache sets the cache for page text.
func WithCache(c cache.Cache) Option {
	return func(cfg *config) { cfg.cache = c }
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) { cfg.logger = logger }
}

// WithCookies sets explicit LinkedIn session cookies.
func WithCookies(cookies map[string]string) Option {
	return func(cfg *config) { cfg.cookies = cookies }
}

// WithBrowserCookies enables reading LinkedIn cookies from browser stores.
func WithBrowserCookies() Option {
	return func(cfg *config) { cfg.browserCookies = true }
}

// WithMaxChars overrides the page-text truncation limit.
func WithMaxChars(maxChars int) Option {
	return func(cfg *config) { cfg.maxChars = maxChars }
}

// New creates a page fetcher.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &config{logger: slog.Default(), maxChars: defaultMaxChars}
	for _, opt := range opts {
		opt(cfg)
	}

	client := &http.Client{
		Timeout: fetchTimeout,
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, //nolint:gosec // needed for corporate proxies
		},
	}

	// Walled LinkedIn pages render for logged-in sessions only.
	var sources []auth.Source
	if len(cfg.cookies) > 0 {
		sources = append(sources, auth.NewStaticSource(cfg.cookies))
	}
	sources = append(sources, auth.EnvSource{})
	if cfg.browserCookies {
		sources = append(sources, auth.NewBrowserSource(cfg.logger))
	}
	if cookies, err := auth.ChainSources(ctx, linkedinDomain, sources...); err == nil && len(cookies) > 0 {
		if jar, err := auth.NewCookieJar(linkedinDomain, cookies); err == nil {
			client.Jar = jar
			cfg.logger.DebugContext(ctx, "loaded linkedin session cookies", "count", len(cookies))
		}
	}

	return &Client{
		httpClient: client,
		cache:      cfg.cache,
		logger:     cfg.logger,
		maxChars:   cfg.maxChars,
	}, nil
}

// Text returns the visible text of a page, truncated. Failures of any kind
// yield an empty string which is cached, so repeated fetches of a known-bad
// URL short-circuit immediately. Text never returns an error: a page we
// cannot read is simply a page with nothing to extract.
func (c *Client) Text(ctx context.Context, url string) string {
	if c.cache != nil {
		if data, found := c.cache.Get(ctx, cacheKind, url); found {
			c.logger.DebugContext(ctx, "page cache hit", "url", url)
			return string(data)
		}
	}

	text := c.fetch(ctx, url)

	if c.cache != nil {
		_ = c.cache.Set(ctx, cacheKind, url, []byte(text)) //nolint:errcheck // cache errors are non-critical
	}
	return text
}

func (c *Client) fetch(ctx context.Context, url string) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		c.logger.DebugContext(ctx, "bad page url", "url", url, "error", err)
		return ""
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.DebugContext(ctx, "page fetch failed", "url", url, "error", err)
		return ""
	}
	defer func() { _ = resp.Body.Close() }() //nolint:errcheck // error ignored intentionally

	if resp.StatusCode != http.StatusOK {
		c.logger.DebugContext(ctx, "page fetch non-200", "url", url, "status", resp.StatusCode)
		return ""
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		c.logger.DebugContext(ctx, "page read failed", "url", url, "error", err)
		return ""
	}

	return htmlutil.Text(string(body), c.maxChars)
}
