// ABOUTME: Pagination domain model summarizes OpenSearch result paging metadata
// ABOUTME: Built from os:totalResults counters and rel-typed Atom feed links

package domain

// PageRef holds the query parameters of one pagination link, keyed by
// query-string name. Catalogs page by different keys (startIndex,
// startPage, cursor), so the reference stays a flat map.
type PageRef map[string]string

// Pagination describes the paging state of one search response.
type Pagination struct {
	// TotalResults is the catalog-reported total match count, 0 when
	// the response does not advertise one.
	TotalResults int

	// StartIndex is the index of the first returned entry.
	StartIndex int

	// ItemsPerPage is the page size the catalog applied.
	ItemsPerPage int

	// First, Previous, Next and Last point at the corresponding pages.
	// When the response does not link a page, the reference is computed
	// from the counters where possible, nil otherwise.
	First    PageRef
	Previous PageRef
	Next     PageRef
	Last     PageRef

	// Query holds the parameters of the rel="self" link, i.e. the
	// query that produced this response.
	Query PageRef
}
