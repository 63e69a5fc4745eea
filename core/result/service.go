// ABOUTME: Result filter extracts whitelisted fields from Atom search results
// ABOUTME: Applies caller field rules per entry and lists available entry fields

package result

import (
	"errors"
	"strings"

	"github.com/antchfx/xmlquery"

	"geocatalog-client/core/domain"
	cerrors "geocatalog-client/core/errors"
	"geocatalog-client/core/interfaces"
)

// Service filters raw Atom search results. It is purely functional over
// its input and performs no I/O.
type Service struct {
	deps interfaces.Dependencies
}

// NewService creates a new result filter service instance.
func NewService(deps interfaces.Dependencies) *Service {
	return &Service{deps: deps}
}

// AvailableFields returns the distinct qualified element names observed
// inside entries, in first-seen document order, so callers can build
// FieldRule lists against an unfamiliar catalog. Link elements are
// reported once per rel value.
func (s *Service) AvailableFields(raw domain.RawResult) ([]domain.Field, error) {
	doc, err := parseResults(raw)
	if err != nil {
		return nil, err
	}

	var fields []domain.Field
	seen := make(map[string]bool)
	for _, entry := range entryNodes(doc) {
		walkElements(entry, func(n *xmlquery.Node) bool {
			field := domain.Field{
				Tag:  domain.NewQName(n.NamespaceURI, n.Data),
				Name: n.Data,
				Rel:  n.SelectAttr("rel"),
			}
			key := field.Tag.String() + "|" + field.Rel
			if !seen[key] {
				seen[key] = true
				fields = append(fields, field)
			}
			return false
		})
	}
	return fields, nil
}

// FilterEntries applies rules to every entry of the raw result and
// returns one FilteredEntry per entry, in document order.
//
// Per entry and rule the first matching descendant in document order
// wins. A rule that matches nothing leaves its name absent from that
// entry rather than present with an empty value. Malformed XML fails the
// whole call with ParseError.
func (s *Service) FilterEntries(raw domain.RawResult, rules []domain.FieldRule) ([]domain.FilteredEntry, error) {
	for _, rule := range rules {
		if err := rule.Validate(); err != nil {
			return nil, err
		}
	}

	doc, err := parseResults(raw)
	if err != nil {
		return nil, err
	}

	entries := entryNodes(doc)
	filtered := make([]domain.FilteredEntry, 0, len(entries))
	for _, entry := range entries {
		out := make(domain.FilteredEntry, len(rules))
		for _, rule := range rules {
			if match := firstMatch(entry, rule); match != nil {
				out[rule.Name] = ruleValue(match, rule)
			}
		}
		filtered = append(filtered, out)
	}

	s.deps.Log().Debug("filtered entries", map[string]interface{}{
		"entries": len(filtered),
		"rules":   len(rules),
	})

	return filtered, nil
}

// parseResults parses a raw result body, requiring a root element.
func parseResults(raw domain.RawResult) (*xmlquery.Node, error) {
	if strings.TrimSpace(string(raw)) == "" {
		return nil, &cerrors.ParseError{Source: "results", Err: errors.New("empty document")}
	}
	doc, err := xmlquery.Parse(strings.NewReader(string(raw)))
	if err != nil {
		return nil, &cerrors.ParseError{Source: "results", Err: err}
	}
	if firstElement(doc) == nil {
		return nil, &cerrors.ParseError{Source: "results", Err: errors.New("no root element")}
	}
	return doc, nil
}

// entryNodes returns the Atom entries of the document, falling back to
// RSS item elements for catalogs that only publish RSS results.
func entryNodes(doc *xmlquery.Node) []*xmlquery.Node {
	var entries []*xmlquery.Node
	for _, n := range xmlquery.Find(doc, "//*[local-name()='entry']") {
		if n.NamespaceURI == domain.NSAtom {
			entries = append(entries, n)
		}
	}
	if len(entries) == 0 {
		entries = xmlquery.Find(doc, "//*[local-name()='item']")
	}
	return entries
}

// walkElements visits the element descendants of n in document order,
// stopping early when visit returns true.
func walkElements(n *xmlquery.Node, visit func(*xmlquery.Node) bool) bool {
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == xmlquery.ElementNode {
			if visit(child) {
				return true
			}
		}
		if walkElements(child, visit) {
			return true
		}
	}
	return false
}

// firstMatch returns the first descendant of entry matching rule, in
// document order.
func firstMatch(entry *xmlquery.Node, rule domain.FieldRule) *xmlquery.Node {
	var match *xmlquery.Node
	walkElements(entry, func(n *xmlquery.Node) bool {
		if !ruleMatches(n, rule) {
			return false
		}
		match = n
		return true
	})
	return match
}

// ruleMatches reports whether n satisfies the rule's tag and attribute
// constraints.
func ruleMatches(n *xmlquery.Node, rule domain.FieldRule) bool {
	if n.Data != rule.Tag.Local {
		return false
	}
	if rule.Tag.Space != "" && n.NamespaceURI != rule.Tag.Space {
		return false
	}
	if rule.AttrMatch != nil && n.SelectAttr(rule.AttrMatch.Key) != rule.AttrMatch.Value {
		return false
	}
	return true
}

// ruleValue extracts the value of a matched element: the named attribute
// when the rule asks for one, otherwise text content with an href
// fallback for link-like elements.
func ruleValue(n *xmlquery.Node, rule domain.FieldRule) string {
	if rule.ValueAttr != "" {
		return n.SelectAttr(rule.ValueAttr)
	}
	if text := strings.TrimSpace(n.InnerText()); text != "" {
		return text
	}
	return n.SelectAttr("href")
}

// firstElement returns the first element child of n.
func firstElement(n *xmlquery.Node) *xmlquery.Node {
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == xmlquery.ElementNode {
			return child
		}
	}
	return nil
}
