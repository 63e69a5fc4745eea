// ABOUTME: Standard HTTP client implementation with timeout support
// ABOUTME: Single-attempt GET semantics with optional basic authentication

package standard

import (
	"context"
	"io"
	"net/http"
	"time"

	"geocatalog-client/core/interfaces"
)

const (
	userAgent     = "GeocatalogClient/1.0"
	acceptHeader  = "application/atom+xml, application/xml;q=0.9, */*;q=0.8"
	defaultExpiry = 30 * time.Second
)

// StandardHTTPClient implements the HTTPClient interface using the
// standard library. Requests are strictly single-attempt: failures
// surface to the caller without retries.
type StandardHTTPClient struct {
	client    *http.Client
	userAgent string
}

// NewStandardHTTPClient creates a new HTTP client with the specified timeout.
// A zero timeout falls back to 30 seconds.
func NewStandardHTTPClient(timeout time.Duration) *StandardHTTPClient {
	if timeout <= 0 {
		timeout = defaultExpiry
	}
	return &StandardHTTPClient{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// SetUserAgent overrides the User-Agent header sent with every request.
func (c *StandardHTTPClient) SetUserAgent(ua string) {
	if ua != "" {
		c.userAgent = ua
	}
}

// Get performs an HTTP GET request
func (c *StandardHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	return c.get(ctx, url, "", "")
}

// GetWithAuth performs an HTTP GET request with basic-auth credentials
func (c *StandardHTTPClient) GetWithAuth(ctx context.Context, url, username, password string) (interfaces.Response, error) {
	return c.get(ctx, url, username, password)
}

func (c *StandardHTTPClient) get(ctx context.Context, url, username, password string) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", acceptHeader)
	if username != "" || password != "" {
		req.SetBasicAuth(username, password)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}

	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       resp.Body,
		headers:    resp.Header,
	}, nil
}

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode int
	body       io.ReadCloser
	headers    http.Header
}

// StatusCode returns the HTTP status code
func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

// Body returns the response body
func (r *httpResponse) Body() io.ReadCloser {
	return r.body
}

// Header returns the value of the specified header
func (r *httpResponse) Header(key string) string {
	return r.headers.Get(key)
}
