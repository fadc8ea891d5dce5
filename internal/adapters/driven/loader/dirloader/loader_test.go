package dirloader

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stageFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func resolveWith(metadata map[string]any) func(string) map[string]any {
	return func(string) map[string]any { return metadata }
}

func TestLoader_Load(t *testing.T) {
	t.Run("produces one record with content and metadata", func(t *testing.T) {
		loader := New(nil)
		path := stageFile(t, "staged", "hello world")

		records, err := loader.Load(context.Background(), path, resolveWith(map[string]any{
			"file_name": "notes.md",
			"container": "docs",
		}))

		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.NotEmpty(t, records[0].ID)
		assert.Equal(t, "hello world", records[0].Content)
		assert.Equal(t, "text/markdown", records[0].MIMEType)
		assert.Equal(t, "docs", records[0].Metadata["container"])
	})

	t.Run("detects MIME type from the resolved file name", func(t *testing.T) {
		loader := New(nil)
		path := stageFile(t, "blobfeed-123", `{"a":1}`)

		records, err := loader.Load(context.Background(), path, resolveWith(map[string]any{
			"file_name": "data.json",
		}))

		require.NoError(t, err)
		assert.Equal(t, "application/json", records[0].MIMEType)
	})

	t.Run("unknown extensions fall back to text/plain", func(t *testing.T) {
		loader := New(nil)
		path := stageFile(t, "staged", "raw")

		records, err := loader.Load(context.Background(), path, resolveWith(map[string]any{
			"file_name": "dump.xyz",
		}))

		require.NoError(t, err)
		assert.Equal(t, "text/plain", records[0].MIMEType)
	})

	t.Run("uses a registered extractor for its extension", func(t *testing.T) {
		loader := New(nil)
		loader.RegisterExtractor(".csv", func(_ string, content []byte) (string, error) {
			return strings.ReplaceAll(string(content), ",", " | "), nil
		})
		path := stageFile(t, "staged", "a,b,c")

		records, err := loader.Load(context.Background(), path, resolveWith(map[string]any{
			"file_name": "table.csv",
		}))

		require.NoError(t, err)
		assert.Equal(t, "a | b | c", records[0].Content)
	})

	t.Run("propagates extractor failures", func(t *testing.T) {
		loader := New(nil)
		boom := errors.New("corrupt archive")
		loader.RegisterExtractor(".docx", func(string, []byte) (string, error) {
			return "", boom
		})
		path := stageFile(t, "staged", "zipbytes")

		_, err := loader.Load(context.Background(), path, resolveWith(map[string]any{
			"file_name": "report.docx",
		}))

		assert.ErrorIs(t, err, boom)
	})

	t.Run("works without a resolve callback", func(t *testing.T) {
		loader := New(nil)
		path := stageFile(t, "plain.txt", "x")

		records, err := loader.Load(context.Background(), path, nil)

		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Nil(t, records[0].Metadata)
	})

	t.Run("fails on a missing file", func(t *testing.T) {
		loader := New(nil)

		_, err := loader.Load(context.Background(), filepath.Join(t.TempDir(), "absent"), nil)

		assert.Error(t, err)
	})

	t.Run("honours context cancellation", func(t *testing.T) {
		loader := New(nil)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := loader.Load(ctx, stageFile(t, "a.txt", "x"), nil)

		assert.ErrorIs(t, err, context.Canceled)
	})
}
