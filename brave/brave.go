// Package brave implements the secondary search provider against the
// Brave Search API. It is only constructed when an API key is configured.
package brave

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/codeGROOVE-dev/figurehead/search"
)

const providerName = "brave"

const defaultBaseURL = "https://api.search.brave.com/res/v1/web/search"

// ErrMissingAPIKey is returned by New when no subscription token is given.
var ErrMissingAPIKey = errors.New("brave: API key required")

// Client queries the Brave Search web API.
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
	baseURL    string
	apiKey     string
}

// Option configures a Client.
type Option func(*config)

type config struct {
	logger  *slog.Logger
	baseURL string
	apiKey  string
}

// WithAPIKey sets the Brave subscription token.
func WithAPIKey(key string) Option {
	return func(c *config) { c.apiKey = key }
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithBaseURL overrides the API endpoint. Used in tests.
func WithBaseURL(baseURL string) Option {
	return func(c *config) { c.baseURL = baseURL }
}

// New creates a Brave client. An API key is mandatory: callers gate this
// provider on explicit configuration, not ambient environment inspection.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &config{logger: slog.Default(), baseURL: defaultBaseURL}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, //nolint:gosec // needed for corporate proxies
			},
		},
		logger:  cfg.logger,
		baseURL: cfg.baseURL,
		apiKey:  cfg.apiKey,
	}, nil
}

// Name identifies the provider.
func (*Client) Name() string { return providerName }

// Search queries the web search endpoint and converts the response.
func (c *Client) Search(ctx context.Context, query string, maxResults int) ([]search.Result, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("count", strconv.Itoa(maxResults))

	c.logger.DebugContext(ctx, "searching brave", "query", query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), http.NoBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Subscription-Token", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }() //nolint:errcheck // error ignored intentionally

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("brave API returned %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}

	return parseResponse(body)
}

func parseResponse(data []byte) ([]search.Result, error) {
	var payload struct {
		Web struct {
			Results []struct {
				Title       string `json:"title"`
				URL         string `json:"url"`
				Description string `json:"description"`
			} `json:"results"`
		} `json:"web"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, err
	}

	results := make([]search.Result, 0, len(payload.Web.Results))
	for _, item := range payload.Web.Results {
		results = append(results, search.Result{
			Title:   item.Title,
			URL:     item.URL,
			Snippet: item.Description,
		})
	}
	return results, nil
}

// Ensure Client implements search.Provider.
var _ search.Provider = (*Client)(nil)
