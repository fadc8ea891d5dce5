package driven

import (
	"context"
	"time"

	"github.com/custodia-labs/blobfeed/internal/core/domain"
)

// ChangeFeedOptions selects where pagination starts and how big pages are.
// A non-empty Cursor takes precedence over StartTime; with neither set,
// pagination starts at the earliest point the feed retains.
type ChangeFeedOptions struct {
	// StartTime is the UTC time to begin fetching changes from.
	// Ignored when Cursor is set.
	StartTime *time.Time

	// Cursor is an opaque continuation token from a previous run.
	Cursor string

	// PageSize is the requested number of events per page.
	// Implementations may return fewer.
	PageSize int
}

// ChangeFeedPage is one page of raw events plus the marker to resume after it.
type ChangeFeedPage struct {
	// Events are the raw records in feed order.
	Events []domain.FeedEvent

	// ContinuationToken resumes iteration after this page.
	ContinuationToken string
}

// ChangeFeedPager iterates pages of the change feed.
// Pagers are single-use and not safe for concurrent calls.
type ChangeFeedPager interface {
	// More reports whether another page is available.
	More() bool

	// NextPage fetches the next page. Blocking I/O; honours ctx cancellation.
	NextPage(ctx context.Context) (ChangeFeedPage, error)
}

// ChangeFeedClient exposes the storage platform's change log as pages.
// The Azure SDK for Go ships no change-feed reader, so implementations
// live behind this port (in-memory, file replay, or a caller's own).
type ChangeFeedClient interface {
	// Changes starts pagination with the given options.
	Changes(opts ChangeFeedOptions) ChangeFeedPager
}
