// ABOUTME: Placeholder scanning for OpenSearch URL templates
// ABOUTME: Turns {ns:name} and {ns:name?} tokens into typed Parameter values

package description

import (
	"regexp"
	"strings"

	"geocatalog-client/core/domain"
)

// placeholderPattern matches template tokens such as {searchTerms},
// {eop:instrument?} or {time:start?}.
var placeholderPattern = regexp.MustCompile(`\{[A-Za-z_][\w.-]*(?::[\w.-]+)?\??\}`)

// ScanPlaceholders extracts every placeholder token from a search URL
// template, in order of appearance. Duplicate tokens collapse into one
// parameter.
func ScanPlaceholders(template string) []domain.Parameter {
	tokens := placeholderPattern.FindAllString(template, -1)

	var params []domain.Parameter
	seen := make(map[string]bool, len(tokens))
	for _, token := range tokens {
		if seen[token] {
			continue
		}
		seen[token] = true
		params = append(params, parameterFromToken(token))
	}
	return params
}

// parameterFromToken builds a Parameter from one literal template token.
func parameterFromToken(token string) domain.Parameter {
	name := strings.TrimSuffix(strings.TrimSuffix(strings.TrimPrefix(token, "{"), "}"), "?")

	p := domain.Parameter{
		Token:    token,
		Name:     name,
		Local:    name,
		Optional: strings.HasSuffix(strings.TrimSuffix(token, "}"), "?"),
		Type:     domain.ParamText,
		FormName: name,
	}
	if prefix, local, ok := strings.Cut(name, ":"); ok {
		p.Prefix = prefix
		p.Local = local
	}
	// Temporal extension tokens ({time:start}, {time:end}) and similar
	// time-flavored names are flagged so form builders can render pickers.
	if strings.Contains(strings.ToLower(name), "time") {
		p.Type = domain.ParamDate
	}
	return p
}
