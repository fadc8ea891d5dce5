package services

import (
	"context"
	"sync"
	"time"

	"github.com/custodia-labs/blobfeed/internal/core/domain"
	"github.com/custodia-labs/blobfeed/internal/core/ports/driven"
	"github.com/custodia-labs/blobfeed/internal/logger"
)

// defaultPageSize is the number of events requested per feed page.
// Internal tuning, not part of the walk contract.
const defaultPageSize = 500

// WalkOptions control where a walk starts and what it keeps.
type WalkOptions struct {
	// StartTime begins the walk at the given UTC time.
	// Ignored when Cursor is set.
	StartTime *time.Time

	// Cursor resumes the walk from a token returned by a previous walk.
	Cursor string

	// Container, when non-empty, keeps only events for that container.
	// Filtering happens before any content is fetched.
	Container string

	// PageSize overrides the number of events requested per feed page.
	// Zero or negative keeps the default. Tuning only; results do not
	// depend on it.
	PageSize int
}

// Walker drives pagination over the change feed and dispatches each
// classified change, materialising upserts into document records.
//
// A walker holds the cursor of the last fully processed page; it is not
// safe for concurrent Walk calls on the same instance.
type Walker struct {
	feed         driven.ChangeFeedClient
	materializer *Materializer
	log          logger.Sink
	pageSize     int

	mu      sync.Mutex
	walking bool
	cursor  string
}

// NewWalker creates a walker over the given feed and materializer.
// A nil sink disables diagnostics.
func NewWalker(feed driven.ChangeFeedClient, materializer *Materializer, log logger.Sink) *Walker {
	if log == nil {
		log = logger.Nop()
	}
	return &Walker{
		feed:         feed,
		materializer: materializer,
		log:          log,
		pageSize:     defaultPageSize,
	}
}

// Cursor returns the continuation token of the last fully processed page.
// Valid after Walk returns, including after a failed walk.
func (w *Walker) Cursor() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.cursor
}

// Walk pages through the change feed and returns the document records
// produced for every upserted blob, in event order.
//
// Exactly one of opts.Cursor and opts.StartTime is honoured: a cursor
// resumes pagination and the start time is ignored. Deleted events
// produce no records but still count as processed. The walk either
// completes its page range or returns an error with no partial slice;
// after a failure the cursor reflects only fully processed pages.
func (w *Walker) Walk(ctx context.Context, opts WalkOptions) ([]domain.DocumentRecord, error) {
	w.mu.Lock()
	if w.walking {
		w.mu.Unlock()
		return nil, domain.ErrWalkInProgress
	}
	w.walking = true
	w.cursor = opts.Cursor
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.walking = false
		w.mu.Unlock()
	}()

	pageSize := w.pageSize
	if opts.PageSize > 0 {
		pageSize = opts.PageSize
	}
	feedOpts := driven.ChangeFeedOptions{PageSize: pageSize}
	if opts.Cursor != "" {
		feedOpts.Cursor = opts.Cursor
	} else {
		feedOpts.StartTime = opts.StartTime
	}

	w.log.Infof("fetching change feed events")
	pager := w.feed.Changes(feedOpts)

	var records []domain.DocumentRecord
	pages := 0
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, &domain.FeedFetchError{Err: err}
		}

		for _, event := range page.Events {
			change, ok := domain.Classify(event)
			if !ok {
				w.log.Debugf("skipping event %q (%s)", event.Subject, event.EventType)
				continue
			}
			if opts.Container != "" && change.Container != opts.Container {
				continue
			}
			if change.Kind != domain.ChangeUpsert {
				w.log.Debugf("deleted: %s/%s", change.Container, change.Key)
				continue
			}

			produced, err := w.materializer.Materialize(ctx, change.Container, change.Key)
			if err != nil {
				return nil, err
			}
			records = append(records, produced...)
		}

		// The page counts as processed even when every event in it was
		// skipped; resuming from this token must not replay the page.
		w.mu.Lock()
		w.cursor = page.ContinuationToken
		w.mu.Unlock()
		pages++
	}

	w.log.Infof("walk complete: %d page(s), %d record(s)", pages, len(records))
	return records, nil
}
