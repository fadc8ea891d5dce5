package driven

import (
	"context"
	"io"

	"github.com/custodia-labs/blobfeed/internal/core/domain"
)

// BlobStore fetches blob content and properties from the storage platform.
type BlobStore interface {
	// Download streams the blob's full body into w.
	// The complete byte sequence is written before Download returns nil.
	Download(ctx context.Context, container, key string, w io.Writer) error

	// Properties fetches the blob's properties, user metadata and tags.
	Properties(ctx context.Context, container, key string) (*domain.BlobProperties, error)
}
