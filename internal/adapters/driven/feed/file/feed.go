// Package file provides a ChangeFeedClient that replays captured events
// from a JSON file. It backs the CLI, since the Azure SDK for Go ships no
// change-feed reader: events captured via Event Grid or the platform's
// tooling can be replayed through the full pipeline.
package file

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/custodia-labs/blobfeed/internal/adapters/driven/feed/memory"
	"github.com/custodia-labs/blobfeed/internal/core/domain"
	"github.com/custodia-labs/blobfeed/internal/core/ports/driven"
)

// Ensure Feed implements the interface.
var _ driven.ChangeFeedClient = (*Feed)(nil)

// Feed replays events from a capture file as a paginated change feed.
// Pagination and cursors are delegated to the in-memory feed, so cursors
// stay valid across runs as long as the file only grows.
type Feed struct {
	events *memory.Feed
}

// feedEvent is the on-disk event shape, matching the platform's
// change-feed record fields.
type feedEvent struct {
	ID        string         `json:"id"`
	EventType string         `json:"eventType"`
	Subject   string         `json:"subject"`
	EventTime time.Time      `json:"eventTime"`
	Data      map[string]any `json:"data"`
}

// New loads a capture file containing a JSON array of events.
func New(path string) (*Feed, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading capture file: %w", err)
	}

	var captured []feedEvent
	if err := json.Unmarshal(raw, &captured); err != nil {
		return nil, fmt.Errorf("parsing capture file %s: %w", path, err)
	}

	events := make([]domain.FeedEvent, 0, len(captured))
	for _, e := range captured {
		events = append(events, domain.FeedEvent{
			ID:        e.ID,
			EventType: e.EventType,
			Subject:   e.Subject,
			EventTime: e.EventTime,
			Data:      e.Data,
		})
	}

	return &Feed{events: memory.New(events...)}, nil
}

// Changes starts pagination with the given options.
func (f *Feed) Changes(opts driven.ChangeFeedOptions) driven.ChangeFeedPager {
	return f.events.Changes(opts)
}
