// ABOUTME: Public types for the catalog client API
// ABOUTME: Re-exports core domain types under the facade package

package geocatalog

import (
	"geocatalog-client/core/domain"
)

// Description is the parsed OpenSearch description document.
type Description = domain.Description

// Parameter describes one placeholder of the search URL template.
type Parameter = domain.Parameter

// Credentials carries HTTP basic-auth credentials for one search call.
type Credentials = domain.Credentials

// RawResult is the unparsed body of a search response.
type RawResult = domain.RawResult

// QName identifies an XML element by namespace URI and local name.
type QName = domain.QName

// FieldRule directs the extraction of one output field per entry.
type FieldRule = domain.FieldRule

// AttrMatch restricts a FieldRule by attribute value.
type AttrMatch = domain.AttrMatch

// FilteredEntry maps rule output names to values for one entry.
type FilteredEntry = domain.FilteredEntry

// Field describes one element observed inside result entries.
type Field = domain.Field

// Pagination summarizes the paging state of a search response.
type Pagination = domain.Pagination

// PageRef holds the query parameters of one pagination link.
type PageRef = domain.PageRef

// FeedSummary is a typed view of one Atom search response.
type FeedSummary = domain.FeedSummary

// ItemSummary is a typed view of one Atom entry.
type ItemSummary = domain.ItemSummary

// AtomTag builds a QName in the Atom namespace, the common case when
// writing FieldRule lists.
func AtomTag(local string) QName {
	return domain.AtomName(local)
}

// Tag builds a QName from a namespace URI and a local name, for catalog
// extension elements (EOP, GML, georss).
func Tag(space, local string) QName {
	return domain.NewQName(space, local)
}
