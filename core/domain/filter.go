// ABOUTME: Filter domain models describe entry field extraction rules and results
// ABOUTME: Provides FieldRule, FilteredEntry and the available-field descriptor

package domain

import "errors"

// AttrMatch restricts a FieldRule to elements carrying a specific
// attribute value, e.g. {Key: "rel", Value: "enclosure"}.
type AttrMatch struct {
	Key   string
	Value string
}

// FieldRule directs the extraction of one output field from each entry.
type FieldRule struct {
	// Tag is the qualified name of the element to match.
	Tag QName

	// AttrMatch optionally restricts matches by attribute value.
	AttrMatch *AttrMatch

	// ValueAttr names the attribute to read the value from instead of
	// the element's text content. When empty, text content is used, with
	// a fallback to the href attribute for elements that carry one and
	// have no text (Atom links).
	ValueAttr string

	// Name is the key the extracted value is stored under.
	Name string
}

// Validate checks that the rule can be applied.
func (r FieldRule) Validate() error {
	if r.Tag.Local == "" {
		return errors.New("field rule has no tag")
	}
	if r.Name == "" {
		return errors.New("field rule has no output name")
	}
	return nil
}

// FilteredEntry maps rule output names to extracted values for one
// Atom entry. A rule that matched nothing leaves its name absent.
type FilteredEntry map[string]string

// Field describes one element observed inside entries, for callers that
// want to build FieldRule lists against an unknown catalog.
type Field struct {
	// Tag is the qualified name of the element.
	Tag QName

	// Name is the local part of Tag, for display.
	Name string

	// Rel is the element's rel attribute, when present. Link elements
	// typically appear once per rel value.
	Rel string
}
