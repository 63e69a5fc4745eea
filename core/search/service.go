// ABOUTME: Search service performs parameterized catalog queries over HTTP
// ABOUTME: Validates params eagerly and returns the raw Atom body unmodified

package search

import (
	"context"
	"errors"
	"io"

	"golang.org/x/time/rate"

	"geocatalog-client/core/domain"
	cerrors "geocatalog-client/core/errors"
	"geocatalog-client/core/interfaces"
)

// Service executes searches against a resolved catalog description.
type Service struct {
	deps       interfaces.Dependencies
	limiter    *rate.Limiter
	forceHTTPS bool
}

// NewService creates a new search service instance.
func NewService(deps interfaces.Dependencies) *Service {
	return &Service{deps: deps}
}

// SetForceHTTPS upgrades http:// templates to https:// before requests.
func (s *Service) SetForceHTTPS(force bool) {
	s.forceHTTPS = force
}

// SetLimiter applies a client-side rate limit to outbound searches.
// A nil limiter disables limiting. Requests remain single-attempt; the
// limiter only delays them.
func (s *Service) SetLimiter(limiter *rate.Limiter) {
	s.limiter = limiter
}

// Search substitutes params into the description's template, performs one
// synchronous GET and returns the raw response body without parsing it.
//
// A nil description yields NotResolvedError. Unknown and missing
// parameters fail before any network traffic. Non-2xx responses yield a
// FetchError carrying any OWS exception detail found in the body. When
// auth is non-nil the request carries HTTP basic-auth credentials.
func (s *Service) Search(ctx context.Context, desc *domain.Description, params domain.SearchParams, auth *domain.Credentials) (domain.RawResult, error) {
	if desc == nil {
		return "", &cerrors.NotResolvedError{}
	}
	if s.deps.HTTPClient == nil {
		return "", errors.New("HTTP client not configured")
	}

	searchURL, err := BuildURL(desc, params, s.forceHTTPS)
	if err != nil {
		return "", err
	}

	s.deps.Log().Debug("searching", map[string]interface{}{
		"url":           searchURL,
		"authenticated": auth != nil,
	})

	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return "", err
		}
	}

	var resp interfaces.Response
	if auth != nil {
		resp, err = s.deps.HTTPClient.GetWithAuth(ctx, searchURL, auth.Username, auth.Password)
	} else {
		resp, err = s.deps.HTTPClient.Get(ctx, searchURL)
	}
	if err != nil {
		return "", &cerrors.FetchError{URL: searchURL, Err: err}
	}
	defer resp.Body().Close()

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return "", &cerrors.FetchError{URL: searchURL, Err: err}
	}

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		fetchErr := &cerrors.FetchError{
			URL:        searchURL,
			StatusCode: resp.StatusCode(),
			Detail:     decodeExceptionReport(body),
		}
		s.deps.Log().Error("search failed", map[string]interface{}{
			"url":    searchURL,
			"status": resp.StatusCode(),
		})
		return "", fetchErr
	}

	return domain.RawResult(body), nil
}
