// ABOUTME: Feed service builds typed summaries from raw Atom search results
// ABOUTME: Convenience layer over gofeed for callers that skip field rules

package feed

import (
	"errors"
	"strings"

	"github.com/mmcdole/gofeed"

	"geocatalog-client/core/domain"
	cerrors "geocatalog-client/core/errors"
	"geocatalog-client/core/interfaces"
)

// Service converts raw search results into typed feed summaries.
type Service struct {
	deps interfaces.Dependencies
}

// NewService creates a new feed service instance.
func NewService(deps interfaces.Dependencies) *Service {
	return &Service{deps: deps}
}

// Summarize parses a raw Atom (or RSS) search result into a typed
// FeedSummary. Catalog extension elements are not carried over; use the
// result filter for those.
func (s *Service) Summarize(raw domain.RawResult) (*domain.FeedSummary, error) {
	if strings.TrimSpace(string(raw)) == "" {
		return nil, &cerrors.ParseError{Source: "results", Err: errors.New("empty document")}
	}

	parsed, err := gofeed.NewParser().ParseString(string(raw))
	if err != nil {
		return nil, &cerrors.ParseError{Source: "results", Err: err}
	}

	summary := &domain.FeedSummary{
		Title:       parsed.Title,
		Description: parsed.Description,
		Link:        parsed.Link,
		Items:       make([]domain.ItemSummary, 0, len(parsed.Items)),
	}
	if parsed.FeedLink != "" {
		summary.ID = parsed.FeedLink
	} else {
		summary.ID = parsed.Link
	}
	if parsed.UpdatedParsed != nil {
		summary.Updated = *parsed.UpdatedParsed
	} else if parsed.PublishedParsed != nil {
		summary.Updated = *parsed.PublishedParsed
	}

	for _, item := range parsed.Items {
		entry := domain.ItemSummary{
			ID:         item.GUID,
			Title:      item.Title,
			Link:       item.Link,
			Summary:    item.Description,
			Categories: item.Categories,
		}
		if entry.ID == "" {
			entry.ID = item.Link
		}
		if item.PublishedParsed != nil {
			entry.Published = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			entry.Published = *item.UpdatedParsed
		}
		summary.Items = append(summary.Items, entry)
	}

	s.deps.Log().Debug("summarized results", map[string]interface{}{
		"title": summary.Title,
		"items": len(summary.Items),
	})

	return summary, nil
}
