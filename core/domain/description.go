// ABOUTME: Description domain model represents a parsed OpenSearch description document
// ABOUTME: Holds the search URL template and the declared template parameters

package domain

import (
	"errors"
	"strings"
)

// Namespace URIs used throughout OpenSearch catalogs and their Atom results.
const (
	NSAtom            = "http://www.w3.org/2005/Atom"
	NSOpenSearch      = "http://a9.com/-/spec/opensearch/1.1/"
	NSOpenSearchParam = "http://a9.com/-/spec/opensearch/extensions/parameters/1.0/"
	NSOWS             = "http://www.opengis.net/ows/2.0"
)

// ParamType classifies a template parameter for callers that build input forms.
type ParamType string

const (
	// ParamText is a free-form text parameter.
	ParamText ParamType = "text"

	// ParamDate is a parameter whose token name suggests a temporal value.
	ParamDate ParamType = "date"

	// ParamSelect is a parameter with an enumerated set of allowed values,
	// advertised through the OpenSearch parameter extension.
	ParamSelect ParamType = "select"
)

// Parameter describes one placeholder token of a search URL template.
type Parameter struct {
	// Token is the literal placeholder as it appears in the template,
	// including braces and the optional marker, e.g. "{eop:instrument?}".
	Token string

	// Name is the qualified parameter name without template syntax,
	// e.g. "eop:instrument".
	Name string

	// Prefix is the namespace prefix of Name, empty for unprefixed
	// parameters such as "{searchTerms}".
	Prefix string

	// Local is the local part of Name, e.g. "instrument".
	Local string

	// Optional reports whether the token carried a trailing "?".
	Optional bool

	// Type classifies the parameter for form building.
	Type ParamType

	// FormName is the query-string key the catalog associates with this
	// parameter, taken from the parameter extension when advertised.
	FormName string

	// Metadata advertised through the OpenSearch parameter extension.
	// All fields are empty when the description does not use the extension.
	Title        string
	Pattern      string
	Minimum      string
	MinInclusive string
	MaxInclusive string

	// Options maps display labels to values for select-type parameters.
	Options map[string]string
}

// Description is the immutable result of resolving an OpenSearch
// description document. It is created once per client and never mutated.
type Description struct {
	// URL is the location the description document was fetched from.
	URL string

	// Template is the search URL template, placeholder tokens included.
	Template string

	// Parameters lists every placeholder token found in Template,
	// in order of appearance.
	Parameters []Parameter
}

// Param looks up a parameter by token, qualified name, or local name.
// Accepted forms for the eop:instrument parameter are "{eop:instrument?}",
// "{eop:instrument}", "eop:instrument" and, when unambiguous, "instrument".
// The second return value is false when no parameter matches or a bare
// local name matches more than one parameter.
func (d *Description) Param(key string) (*Parameter, bool) {
	name := strings.TrimPrefix(key, "{")
	name = strings.TrimSuffix(name, "}")
	name = strings.TrimSuffix(name, "?")

	for i := range d.Parameters {
		if d.Parameters[i].Name == name {
			return &d.Parameters[i], true
		}
	}

	var found *Parameter
	for i := range d.Parameters {
		if d.Parameters[i].Local == name {
			if found != nil {
				return nil, false
			}
			found = &d.Parameters[i]
		}
	}
	return found, found != nil
}

// Required returns the parameters that must be supplied on every search.
func (d *Description) Required() []Parameter {
	var out []Parameter
	for _, p := range d.Parameters {
		if !p.Optional {
			out = append(out, p)
		}
	}
	return out
}

// Validate checks that the description is usable for searching.
func (d *Description) Validate() error {
	if d.Template == "" {
		return errors.New("description has no search URL template")
	}
	return nil
}
