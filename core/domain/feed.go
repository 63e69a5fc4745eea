// ABOUTME: Feed summary domain models give typed access to Atom search results
// ABOUTME: Convenience alternative to field rules for common entry metadata

package domain

import "time"

// FeedSummary is a typed view of one Atom search response.
type FeedSummary struct {
	// ID is the feed-level identifier.
	ID string

	// Title is the feed title.
	Title string

	// Description is the feed subtitle or description, when present.
	Description string

	// Link is the feed's self or alternate link.
	Link string

	// Updated is the feed-level update time; zero when not advertised.
	Updated time.Time

	// Items holds one summary per entry, in document order.
	Items []ItemSummary
}

// ItemSummary is a typed view of one Atom entry.
type ItemSummary struct {
	// ID is the entry identifier.
	ID string

	// Title is the entry title.
	Title string

	// Link is the entry's primary link.
	Link string

	// Summary is the entry summary or description, when present.
	Summary string

	// Published is the entry publication time; zero when not advertised.
	Published time.Time

	// Categories lists the entry's category terms.
	Categories []string
}
