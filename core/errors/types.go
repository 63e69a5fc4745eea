// ABOUTME: Custom error types for the catalog client core
// ABOUTME: Provides structured errors so callers can branch on failure class

package errors

import (
	"errors"
	"fmt"
	"strings"
)

// FetchError represents a network or HTTP failure, including non-2xx
// status codes.
type FetchError struct {
	// URL is the request URL that failed.
	URL string

	// StatusCode is the HTTP status, 0 for transport-level failures.
	StatusCode int

	// Detail carries server-side exception reports decoded from the
	// error body (OGC OWS exception reports), when present.
	Detail []string

	// Err is the underlying transport error, when any.
	Err error
}

// Error implements the error interface
func (e *FetchError) Error() string {
	msg := fmt.Sprintf("fetch %s failed", e.URL)
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s: status %d", msg, e.StatusCode)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if len(e.Detail) > 0 {
		msg = fmt.Sprintf("%s (%s)", msg, strings.Join(e.Detail, "; "))
	}
	return msg
}

// Unwrap returns the underlying transport error
func (e *FetchError) Unwrap() error {
	return e.Err
}

// ParseError represents malformed XML in a description document or a
// search response.
type ParseError struct {
	// Source identifies the document that failed to parse,
	// e.g. "description" or "results".
	Source string

	// Err is the underlying parser error.
	Err error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse %s failed: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("parse %s failed", e.Source)
}

// Unwrap returns the underlying parser error
func (e *ParseError) Unwrap() error {
	return e.Err
}

// UnknownParameterError is returned when a search parameter key does not
// match any placeholder declared by the resolved description.
type UnknownParameterError struct {
	Token string
}

// Error implements the error interface
func (e *UnknownParameterError) Error() string {
	return fmt.Sprintf("unknown search parameter %q", e.Token)
}

// MissingParameterError is returned when a required placeholder is left
// without a value.
type MissingParameterError struct {
	Token string
}

// Error implements the error interface
func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("missing required search parameter %q", e.Token)
}

// NotResolvedError is returned when a search is attempted before the
// description document has been successfully resolved.
type NotResolvedError struct{}

// Error implements the error interface
func (e *NotResolvedError) Error() string {
	return "description not resolved: call Resolve before Search"
}

// IsFetch checks if an error is a FetchError
func IsFetch(err error) bool {
	var fetchErr *FetchError
	return errors.As(err, &fetchErr)
}

// IsParse checks if an error is a ParseError
func IsParse(err error) bool {
	var parseErr *ParseError
	return errors.As(err, &parseErr)
}

// IsUnknownParameter checks if an error is an UnknownParameterError
func IsUnknownParameter(err error) bool {
	var unknownErr *UnknownParameterError
	return errors.As(err, &unknownErr)
}

// IsMissingParameter checks if an error is a MissingParameterError
func IsMissingParameter(err error) bool {
	var missingErr *MissingParameterError
	return errors.As(err, &missingErr)
}

// IsNotResolved checks if an error is a NotResolvedError
func IsNotResolved(err error) bool {
	var notResolvedErr *NotResolvedError
	return errors.As(err, &notResolvedErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
