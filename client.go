// ABOUTME: Main client for the catalog library tying resolver, search and filter together
// ABOUTME: Offers a clean API over OpenSearch catalogs without exposing core wiring

package geocatalog

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/time/rate"

	"geocatalog-client/core/description"
	"geocatalog-client/core/domain"
	"geocatalog-client/core/feed"
	"geocatalog-client/core/interfaces"
	"geocatalog-client/core/result"
	"geocatalog-client/core/search"
	httpInfra "geocatalog-client/infrastructure/http/standard"
)

// Client is the main entry point for querying one OpenSearch catalog.
//
// The client has two states: unresolved (after New) and resolved (after
// a successful Resolve). Search is only valid once resolved and returns
// NotResolvedError otherwise. After resolution the description is
// immutable, so a resolved client is safe for concurrent searches as
// long as its HTTP client is.
type Client struct {
	config Config
	deps   interfaces.Dependencies

	resolver *description.Resolver
	searcher *search.Service
	filter   *result.Service
	feeds    *feed.Service

	descriptionURL string

	mu   sync.Mutex
	desc *domain.Description
}

// New creates a client for the catalog described at descriptionURL.
// No I/O happens here; call Resolve (or use Connect) before searching.
func New(descriptionURL string, opts ...Option) (*Client, error) {
	if descriptionURL == "" {
		return nil, errors.New("description URL cannot be empty")
	}

	config := defaultConfig()
	for _, opt := range opts {
		if err := opt(&config); err != nil {
			return nil, err
		}
	}
	if config.HTTPClient == nil {
		httpClient := httpInfra.NewStandardHTTPClient(config.Timeout)
		httpClient.SetUserAgent(config.UserAgent)
		config.HTTPClient = httpClient
	}
	if config.Logger == nil {
		config.Logger = DefaultLogger()
	}

	deps := interfaces.Dependencies{
		HTTPClient: config.HTTPClient,
		Logger:     config.Logger,
	}

	searcher := search.NewService(deps)
	searcher.SetForceHTTPS(config.ForceHTTPS)
	if rl := config.RateLimit; rl != nil {
		searcher.SetLimiter(rate.NewLimiter(rate.Limit(rl.RequestsPerSecond), rl.Burst))
	}

	return &Client{
		config:         config,
		deps:           deps,
		resolver:       description.NewResolver(deps),
		searcher:       searcher,
		filter:         result.NewService(deps),
		feeds:          feed.NewService(deps),
		descriptionURL: descriptionURL,
	}, nil
}

// Connect creates a client and resolves its description in one step.
func Connect(ctx context.Context, descriptionURL string, opts ...Option) (*Client, error) {
	client, err := New(descriptionURL, opts...)
	if err != nil {
		return nil, err
	}
	if err := client.Resolve(ctx); err != nil {
		return nil, err
	}
	return client, nil
}

// Discover finds the description URL advertised by a search endpoint via
// OpenSearch autodiscovery, without constructing a full client.
func Discover(ctx context.Context, endpoint string, opts ...Option) (string, error) {
	config := defaultConfig()
	for _, opt := range opts {
		if err := opt(&config); err != nil {
			return "", err
		}
	}
	if config.HTTPClient == nil {
		httpClient := httpInfra.NewStandardHTTPClient(config.Timeout)
		httpClient.SetUserAgent(config.UserAgent)
		config.HTTPClient = httpClient
	}

	resolver := description.NewResolver(interfaces.Dependencies{
		HTTPClient: config.HTTPClient,
		Logger:     config.Logger,
	})
	return resolver.Discover(ctx, endpoint)
}

// Resolve fetches and parses the description document. It is a no-op on
// an already resolved client; resolution never repeats once successful.
func (c *Client) Resolve(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.desc != nil {
		return nil
	}

	desc, err := c.resolver.Resolve(ctx, c.descriptionURL)
	if err != nil {
		return err
	}
	c.desc = desc
	return nil
}

// Resolved reports whether the description has been resolved.
func (c *Client) Resolved() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.desc != nil
}

// Description returns the resolved description, nil before Resolve.
func (c *Client) Description() *Description {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.desc
}

// SearchOption configures one search call.
type SearchOption func(*searchOptions)

type searchOptions struct {
	auth *domain.Credentials
}

// WithBasicAuth attaches HTTP basic-auth credentials to one search call.
func WithBasicAuth(username, password string) SearchOption {
	return func(o *searchOptions) {
		o.auth = &domain.Credentials{Username: username, Password: password}
	}
}

// Search substitutes params into the resolved template and performs one
// synchronous GET, returning the raw Atom body unmodified.
//
// Param keys accept the literal token ("{eop:instrument?}"), the
// qualified name ("eop:instrument") or, when unambiguous, the local name
// ("instrument"). Unknown keys fail with UnknownParameterError, required
// placeholders without values with MissingParameterError, and calling
// before Resolve with NotResolvedError.
func (c *Client) Search(ctx context.Context, params map[string]string, opts ...SearchOption) (RawResult, error) {
	var options searchOptions
	for _, opt := range opts {
		opt(&options)
	}

	searchParams := make(domain.SearchParams, len(params))
	for key, value := range params {
		searchParams[key] = domain.ParamValue{Value: value}
	}

	return c.searcher.Search(ctx, c.Description(), searchParams, options.auth)
}

// AvailableFields lists the distinct qualified element names observed in
// the entries of a raw result, to help build FieldRule lists.
func (c *Client) AvailableFields(raw RawResult) ([]Field, error) {
	return c.filter.AvailableFields(raw)
}

// FilterEntries extracts one FilteredEntry per Atom entry of the raw
// result, keyed by each rule's output name, in document order.
func (c *Client) FilterEntries(raw RawResult, rules []FieldRule) ([]FilteredEntry, error) {
	return c.filter.FilterEntries(raw, rules)
}

// Pagination extracts the paging metadata of a raw result.
func (c *Client) Pagination(raw RawResult) (*Pagination, error) {
	return c.filter.Pagination(raw)
}

// Summarize parses a raw result into a typed feed summary.
func (c *Client) Summarize(raw RawResult) (*FeedSummary, error) {
	return c.feeds.Summarize(raw)
}
