package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/blobfeed/internal/core/ports/driven"
)

const capture = `[
  {
    "id": "ev-1",
    "eventType": "BlobCreated",
    "subject": "/containers/docs/blobs/a.txt",
    "eventTime": "2024-03-05T10:00:00Z",
    "data": {"url": "https://acct.blob.example/docs/a.txt"}
  },
  {
    "id": "ev-2",
    "eventType": "BlobDeleted",
    "subject": "/containers/docs/blobs/b.txt",
    "eventTime": "2024-03-05T11:00:00Z"
  }
]`

func writeCapture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "events.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestNew(t *testing.T) {
	t.Run("loads events from a capture file", func(t *testing.T) {
		feed, err := New(writeCapture(t, capture))
		require.NoError(t, err)

		pager := feed.Changes(driven.ChangeFeedOptions{})
		page, err := pager.NextPage(context.Background())

		require.NoError(t, err)
		require.Len(t, page.Events, 2)
		assert.Equal(t, "ev-1", page.Events[0].ID)
		assert.Equal(t, "BlobCreated", page.Events[0].EventType)
		assert.Equal(t, "/containers/docs/blobs/a.txt", page.Events[0].Subject)
		assert.Equal(t, "https://acct.blob.example/docs/a.txt", page.Events[0].Data["url"])
	})

	t.Run("fails on a missing file", func(t *testing.T) {
		_, err := New(filepath.Join(t.TempDir(), "absent.json"))

		assert.Error(t, err)
	})

	t.Run("fails on malformed JSON", func(t *testing.T) {
		_, err := New(writeCapture(t, "{not json"))

		assert.Error(t, err)
	})

	t.Run("empty capture yields no pages", func(t *testing.T) {
		feed, err := New(writeCapture(t, "[]"))
		require.NoError(t, err)

		pager := feed.Changes(driven.ChangeFeedOptions{})

		assert.False(t, pager.More())
	})
}
