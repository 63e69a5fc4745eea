// ABOUTME: Default implementations for client dependencies
// ABOUTME: Provides factory functions for creating default service implementations

package geocatalog

import (
	"time"

	"geocatalog-client/core/interfaces"
	httpInfra "geocatalog-client/infrastructure/http/standard"
	loggerInfra "geocatalog-client/infrastructure/logger/structured"
)

// DefaultHTTPClient creates a default HTTP client with sensible timeouts
func DefaultHTTPClient() interfaces.HTTPClient {
	return httpInfra.NewStandardHTTPClient(30 * time.Second)
}

// DefaultLogger creates a default structured logger
func DefaultLogger() interfaces.Logger {
	return loggerInfra.NewStructuredLogger()
}

// QuietLogger creates a logger that discards all output
func QuietLogger() interfaces.Logger {
	return &quietLogger{}
}

// quietLogger is a logger that discards all output
type quietLogger struct{}

func (q *quietLogger) Debug(msg string, fields map[string]interface{}) {}
func (q *quietLogger) Info(msg string, fields map[string]interface{})  {}
func (q *quietLogger) Warn(msg string, fields map[string]interface{})  {}
func (q *quietLogger) Error(msg string, fields map[string]interface{}) {}

// defaultConfig returns the default client configuration
func defaultConfig() Config {
	return Config{
		Timeout:   30 * time.Second,
		UserAgent: "GeocatalogClient/1.0",
	}
}
