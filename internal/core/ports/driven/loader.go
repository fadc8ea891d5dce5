package driven

import (
	"context"

	"github.com/custodia-labs/blobfeed/internal/core/domain"
)

// MetadataFunc resolves the metadata to attach to records loaded from a
// file. fileName is the staged file's name.
type MetadataFunc func(fileName string) map[string]any

// DocumentLoader converts staged blob bytes into document records.
// Content parsing (text extraction, per-format handling) happens behind
// this port; the core only stages bytes and attaches metadata.
type DocumentLoader interface {
	// Load reads the file at path and produces zero or more records,
	// calling resolve to obtain their base metadata.
	Load(ctx context.Context, path string, resolve MetadataFunc) ([]domain.DocumentRecord, error)
}
