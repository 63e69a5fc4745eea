// ABOUTME: Search URL construction from a resolved template and caller params
// ABOUTME: Substitutes placeholder tokens and drops unused optional segments

package search

import (
	"net/url"
	"regexp"
	"strings"

	"geocatalog-client/core/domain"
	cerrors "geocatalog-client/core/errors"
)

// BuildURL substitutes params into the description's search URL template
// and returns a well-formed request URL.
//
// Every key in params must resolve to a declared parameter, otherwise
// UnknownParameterError is returned. A required token without a value
// yields MissingParameterError. Optional tokens without values are
// removed together with the query segment that references them. Values
// are query-escaped before substitution.
func BuildURL(desc *domain.Description, params domain.SearchParams, forceHTTPS bool) (string, error) {
	u := desc.Template
	if forceHTTPS && strings.HasPrefix(u, "http://") {
		u = "https://" + strings.TrimPrefix(u, "http://")
	}

	// Validate all keys before substituting anything, so a typo cannot
	// produce a partially built URL.
	values := make(map[string]string, len(params))
	for key, pv := range params {
		param, ok := desc.Param(key)
		if !ok {
			return "", &cerrors.UnknownParameterError{Token: key}
		}
		if pv.Value != "" {
			values[param.Token] = pv.Value
		}
	}

	for token, value := range values {
		u = strings.ReplaceAll(u, token, url.QueryEscape(value))
	}

	leftover, err := unresolvedTokens(desc, u)
	if err != nil {
		return "", err
	}
	for _, token := range leftover {
		u = dropQuerySegment(u, token)
	}

	return normalizeQuery(u), nil
}

// unresolvedTokens lists optional tokens still present in u, failing on
// the first required one.
func unresolvedTokens(desc *domain.Description, u string) ([]string, error) {
	var leftover []string
	for _, p := range desc.Parameters {
		if !strings.Contains(u, p.Token) {
			continue
		}
		if !p.Optional {
			return nil, &cerrors.MissingParameterError{Token: p.Token}
		}
		leftover = append(leftover, p.Token)
	}
	return leftover, nil
}

// dropQuerySegment removes the query segment carrying token, or the bare
// token when it is embedded outside a key=value segment.
func dropQuerySegment(u, token string) string {
	segment := regexp.MustCompile(`[?&][^?&=]*=` + regexp.QuoteMeta(token))
	u = segment.ReplaceAllString(u, "")
	return strings.ReplaceAll(u, token, "")
}

// normalizeQuery repairs the query separator after segment removal: when
// the first remaining separator is '&', it becomes '?'; trailing
// separators are trimmed.
func normalizeQuery(u string) string {
	qm := strings.Index(u, "?")
	amp := strings.Index(u, "&")
	if amp >= 0 && (qm < 0 || qm > amp) {
		u = strings.Replace(u, "&", "?", 1)
	}
	return strings.TrimRight(u, "?&")
}
