// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as HTTP communication and logging.
//
// The infrastructure package is organized by technical concern:
//
// - http/standard: Standard library HTTP client with timeout and basic auth
// - logger/structured: logrus-backed structured logger
//
// # Design Philosophy
//
// Infrastructure components are designed to be:
// - Pluggable: Easy to swap implementations
// - Configurable: Accept timeouts, levels and headers
// - Testable: Covered by httptest-based unit tests
//
// # HTTP Client
//
// The HTTP client is strictly single-attempt; the protocol contract
// forbids implicit retries:
//
//	client := standard.NewStandardHTTPClient(30 * time.Second)
//	resp, err := client.Get(ctx, "https://catalog.example.org/description.xml")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
// The logger supports structured logging with fields:
//
//	logger := structured.NewStructuredLogger()
//	logger.Info("Search completed", map[string]interface{}{
//	    "url":     searchURL,
//	    "entries": 20,
//	})
package infrastructure
