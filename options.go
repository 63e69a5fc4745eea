// ABOUTME: Configuration options for the catalog client
// ABOUTME: Provides functional options pattern for flexible client configuration

package geocatalog

import (
	"time"

	"geocatalog-client/core/interfaces"
)

// Config holds the configuration for the client
type Config struct {
	// HTTPClient performs all outbound requests.
	HTTPClient interfaces.HTTPClient

	// Logger receives structured log output.
	Logger interfaces.Logger

	// Timeout applies to the default HTTP client only; ignored when a
	// custom HTTPClient is supplied.
	Timeout time.Duration

	// UserAgent applies to the default HTTP client only.
	UserAgent string

	// ForceHTTPS upgrades http:// search templates to https://.
	ForceHTTPS bool

	// RateLimit throttles outbound searches client-side when non-nil.
	RateLimit *RateLimit
}

// RateLimit describes a client-side limit on outbound searches.
type RateLimit struct {
	// RequestsPerSecond is the sustained request rate.
	RequestsPerSecond float64

	// Burst is the number of requests allowed to exceed the rate
	// momentarily. Values below 1 are treated as 1.
	Burst int
}

// Option is a functional option for configuring the client
type Option func(*Config) error

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client interfaces.HTTPClient) Option {
	return func(c *Config) error {
		c.HTTPClient = client
		return nil
	}
}

// WithLogger sets a custom logger
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithTimeout sets the request timeout of the default HTTP client
func WithTimeout(timeout time.Duration) Option {
	return func(c *Config) error {
		c.Timeout = timeout
		return nil
	}
}

// WithUserAgent sets the User-Agent of the default HTTP client
func WithUserAgent(userAgent string) Option {
	return func(c *Config) error {
		c.UserAgent = userAgent
		return nil
	}
}

// WithForceHTTPS upgrades http:// search templates to https://
func WithForceHTTPS() Option {
	return func(c *Config) error {
		c.ForceHTTPS = true
		return nil
	}
}

// WithRateLimit throttles outbound searches client-side. Requests stay
// single-attempt and synchronous; the limiter only delays them.
func WithRateLimit(requestsPerSecond float64, burst int) Option {
	return func(c *Config) error {
		if burst < 1 {
			burst = 1
		}
		c.RateLimit = &RateLimit{
			RequestsPerSecond: requestsPerSecond,
			Burst:             burst,
		}
		return nil
	}
}

// WithQuietMode configures the client to suppress all log output
func WithQuietMode() Option {
	return func(c *Config) error {
		c.Logger = QuietLogger()
		return nil
	}
}
