// ABOUTME: Pagination extraction from OpenSearch result feeds
// ABOUTME: Reads os counters and rel-typed links, computing missing page refs

package result

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"

	"geocatalog-client/core/domain"
)

// Pagination extracts paging metadata from a raw search result: the
// os:totalResults/startIndex/itemsPerPage counters and the
// first/previous/next/last/self feed links. Page references missing from
// the document are computed from the counters where the page size allows
// it.
func (s *Service) Pagination(raw domain.RawResult) (*domain.Pagination, error) {
	doc, err := parseResults(raw)
	if err != nil {
		return nil, err
	}
	root := firstElement(doc)

	p := &domain.Pagination{}
	links := make(map[string]string)
	for child := root.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != xmlquery.ElementNode {
			continue
		}
		switch {
		case child.NamespaceURI == domain.NSOpenSearch:
			switch child.Data {
			case "totalResults":
				p.TotalResults = atoi(child.InnerText())
			case "startIndex":
				p.StartIndex = atoi(child.InnerText())
			case "itemsPerPage":
				p.ItemsPerPage = atoi(child.InnerText())
			}
		case child.NamespaceURI == domain.NSAtom && child.Data == "link":
			if rel := child.SelectAttr("rel"); rel != "" {
				links[rel] = child.SelectAttr("href")
			}
		}
	}

	p.First = pageRef(links["first"])
	p.Previous = pageRef(links["previous"])
	p.Next = pageRef(links["next"])
	p.Last = pageRef(links["last"])
	p.Query = pageRef(links["self"])

	fillComputedRefs(p)
	return p, nil
}

// fillComputedRefs derives absent page references from the counters,
// keyed by startIndex. Skipped when the page size is unknown, except for
// the first page which only needs a result count.
func fillComputedRefs(p *domain.Pagination) {
	if p.TotalResults <= 0 {
		return
	}
	if p.First == nil {
		p.First = domain.PageRef{"startIndex": "1"}
	}
	if p.ItemsPerPage <= 0 {
		return
	}
	if p.Previous == nil {
		prev := p.StartIndex - p.ItemsPerPage
		if prev <= 0 {
			prev = 1
		}
		p.Previous = domain.PageRef{"startIndex": strconv.Itoa(prev)}
	}
	if p.Next == nil {
		next := p.StartIndex + p.ItemsPerPage
		if next >= p.TotalResults {
			next = p.TotalResults - p.ItemsPerPage
		}
		if next < 1 {
			next = 1
		}
		p.Next = domain.PageRef{"startIndex": strconv.Itoa(next)}
	}
	if p.Last == nil {
		last := p.TotalResults - p.ItemsPerPage + 1
		if mod := p.TotalResults % p.ItemsPerPage; mod != 0 {
			last = p.TotalResults - mod + 1
		}
		if last < 1 {
			last = 1
		}
		p.Last = domain.PageRef{"startIndex": strconv.Itoa(last)}
	}
}

// pageRef parses the query parameters of a pagination link.
func pageRef(href string) domain.PageRef {
	if href == "" {
		return nil
	}
	u, err := url.Parse(href)
	if err != nil {
		return nil
	}
	query := u.Query()
	if len(query) == 0 {
		return nil
	}
	ref := make(domain.PageRef, len(query))
	for key, values := range query {
		if len(values) > 0 {
			ref[key] = values[0]
		}
	}
	return ref
}

// atoi is a tolerant atoi: malformed counters read as 0.
func atoi(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
