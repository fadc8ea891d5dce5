// Package memory provides an in-memory ChangeFeedClient.
// It serves tests and embedding callers that already hold their events;
// cursors are stable across Feed instances built from the same events.
package memory

import (
	"context"

	"github.com/custodia-labs/blobfeed/internal/core/domain"
	"github.com/custodia-labs/blobfeed/internal/core/ports/driven"
)

// defaultPageSize bounds pages when the caller requests none.
const defaultPageSize = 500

// Ensure Feed implements the interface.
var _ driven.ChangeFeedClient = (*Feed)(nil)

// Feed serves a fixed slice of events as a paginated change feed.
type Feed struct {
	events []domain.FeedEvent
}

// New creates a feed over the given events, in order.
func New(events ...domain.FeedEvent) *Feed {
	return &Feed{events: events}
}

// Changes starts pagination with the given options.
func (f *Feed) Changes(opts driven.ChangeFeedOptions) driven.ChangeFeedPager {
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	pager := &pager{feed: f, pageSize: pageSize}

	if opts.Cursor != "" {
		cursor, err := DecodeCursor(opts.Cursor)
		if err != nil {
			pager.err = err
			return pager
		}
		pager.next = cursor.NextIndex
		return pager
	}

	if opts.StartTime != nil {
		for pager.next < len(f.events) && f.events[pager.next].EventTime.Before(*opts.StartTime) {
			pager.next++
		}
	}
	return pager
}

// pager iterates fixed-size pages over the feed's events.
type pager struct {
	feed     *Feed
	pageSize int
	next     int
	err      error
}

// More reports whether another page is available.
func (p *pager) More() bool {
	if p.err != nil {
		return true // surface the error from NextPage
	}
	return p.next < len(p.feed.events)
}

// NextPage returns the next page of events.
func (p *pager) NextPage(ctx context.Context) (driven.ChangeFeedPage, error) {
	if p.err != nil {
		err := p.err
		p.err = nil
		p.next = len(p.feed.events)
		return driven.ChangeFeedPage{}, err
	}
	if err := ctx.Err(); err != nil {
		return driven.ChangeFeedPage{}, err
	}

	end := p.next + p.pageSize
	if end > len(p.feed.events) {
		end = len(p.feed.events)
	}

	page := driven.ChangeFeedPage{
		Events: p.feed.events[p.next:end],
	}
	p.next = end

	token := Cursor{Version: CursorVersion, NextIndex: p.next}
	page.ContinuationToken = token.Encode()
	return page, nil
}
