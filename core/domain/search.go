// ABOUTME: Search domain models cover per-call search inputs and outputs
// ABOUTME: Provides SearchParams, Credentials and the raw result body type

package domain

// ParamValue is the value supplied for one placeholder token.
type ParamValue struct {
	Value string
}

// SearchParams maps placeholder tokens (or parameter names, see
// Description.Param) to the values to substitute into the template.
// It is supplied per search call and never retained.
type SearchParams map[string]ParamValue

// Credentials carries HTTP basic-auth credentials for catalogs that
// require authentication. Not retained beyond the call that uses them.
type Credentials struct {
	Username string
	Password string
}

// RawResult is the unparsed body of a search response, normally an
// Atom document. Ownership passes to the caller; the client keeps
// no reference to it.
type RawResult string

// String returns the raw body as a plain string.
func (r RawResult) String() string {
	return string(r)
}
