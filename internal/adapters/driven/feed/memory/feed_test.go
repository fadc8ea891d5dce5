package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/blobfeed/internal/core/domain"
	"github.com/custodia-labs/blobfeed/internal/core/ports/driven"
)

func eventAt(subject string, at time.Time) domain.FeedEvent {
	return domain.FeedEvent{
		EventType: "BlobCreated",
		Subject:   subject,
		EventTime: at,
	}
}

func TestFeed_Changes(t *testing.T) {
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("pages events in order", func(t *testing.T) {
		feed := New(
			eventAt("/containers/c/blobs/1", base),
			eventAt("/containers/c/blobs/2", base.Add(time.Minute)),
			eventAt("/containers/c/blobs/3", base.Add(2*time.Minute)),
		)

		pager := feed.Changes(driven.ChangeFeedOptions{PageSize: 2})

		require.True(t, pager.More())
		first, err := pager.NextPage(context.Background())
		require.NoError(t, err)
		require.Len(t, first.Events, 2)
		assert.Equal(t, "/containers/c/blobs/1", first.Events[0].Subject)

		require.True(t, pager.More())
		second, err := pager.NextPage(context.Background())
		require.NoError(t, err)
		require.Len(t, second.Events, 1)
		assert.Equal(t, "/containers/c/blobs/3", second.Events[0].Subject)

		assert.False(t, pager.More())
	})

	t.Run("resumes from a continuation token", func(t *testing.T) {
		feed := New(
			eventAt("/containers/c/blobs/1", base),
			eventAt("/containers/c/blobs/2", base.Add(time.Minute)),
		)

		pager := feed.Changes(driven.ChangeFeedOptions{PageSize: 1})
		first, err := pager.NextPage(context.Background())
		require.NoError(t, err)

		resumed := feed.Changes(driven.ChangeFeedOptions{Cursor: first.ContinuationToken, PageSize: 1})
		require.True(t, resumed.More())
		page, err := resumed.NextPage(context.Background())
		require.NoError(t, err)
		require.Len(t, page.Events, 1)
		assert.Equal(t, "/containers/c/blobs/2", page.Events[0].Subject)
		assert.False(t, resumed.More())
	})

	t.Run("start time skips earlier events", func(t *testing.T) {
		cutoff := base.Add(30 * time.Second)
		feed := New(
			eventAt("/containers/c/blobs/old", base),
			eventAt("/containers/c/blobs/new", base.Add(time.Minute)),
		)

		pager := feed.Changes(driven.ChangeFeedOptions{StartTime: &cutoff})
		page, err := pager.NextPage(context.Background())

		require.NoError(t, err)
		require.Len(t, page.Events, 1)
		assert.Equal(t, "/containers/c/blobs/new", page.Events[0].Subject)
	})

	t.Run("invalid cursor surfaces on NextPage", func(t *testing.T) {
		feed := New(eventAt("/containers/c/blobs/1", base))

		pager := feed.Changes(driven.ChangeFeedOptions{Cursor: "not base64!"})

		require.True(t, pager.More())
		_, err := pager.NextPage(context.Background())
		assert.ErrorIs(t, err, domain.ErrInvalidCursor)
		assert.False(t, pager.More())
	})

	t.Run("empty feed has no pages", func(t *testing.T) {
		feed := New()

		pager := feed.Changes(driven.ChangeFeedOptions{})

		assert.False(t, pager.More())
	})

	t.Run("honours context cancellation", func(t *testing.T) {
		feed := New(eventAt("/containers/c/blobs/1", base))
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		pager := feed.Changes(driven.ChangeFeedOptions{})
		_, err := pager.NextPage(ctx)

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestDecodeCursor(t *testing.T) {
	t.Run("round-trips", func(t *testing.T) {
		cursor := Cursor{Version: CursorVersion, NextIndex: 42}

		decoded, err := DecodeCursor(cursor.Encode())

		require.NoError(t, err)
		assert.Equal(t, 42, decoded.NextIndex)
	})

	t.Run("empty string yields a fresh cursor", func(t *testing.T) {
		decoded, err := DecodeCursor("")

		require.NoError(t, err)
		assert.Zero(t, decoded.NextIndex)
	})

	t.Run("rejects future versions", func(t *testing.T) {
		cursor := Cursor{Version: CursorVersion + 1}

		_, err := DecodeCursor(cursor.Encode())

		assert.ErrorIs(t, err, domain.ErrInvalidCursor)
	})
}
