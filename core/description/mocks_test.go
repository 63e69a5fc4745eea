package description

import (
	"context"
	"io"
	"strings"

	"geocatalog-client/core/interfaces"
)

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	getFunc         func(ctx context.Context, url string) (interfaces.Response, error)
	getWithAuthFunc func(ctx context.Context, url, username, password string) (interfaces.Response, error)
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, url)
	}
	return nil, nil
}

func (m *mockHTTPClient) GetWithAuth(ctx context.Context, url, username, password string) (interfaces.Response, error) {
	if m.getWithAuthFunc != nil {
		return m.getWithAuthFunc(ctx, url, username, password)
	}
	return nil, nil
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	body       string
	headers    map[string]string
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) Body() io.ReadCloser {
	return io.NopCloser(strings.NewReader(m.body))
}

func (m *mockResponse) Header(key string) string {
	if m.headers != nil {
		return m.headers[key]
	}
	return ""
}
