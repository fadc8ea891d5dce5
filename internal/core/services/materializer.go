package services

import (
	"context"
	"os"

	"github.com/custodia-labs/blobfeed/internal/core/domain"
	"github.com/custodia-labs/blobfeed/internal/core/ports/driven"
	"github.com/custodia-labs/blobfeed/internal/logger"
)

// Materializer fetches a blob's content and properties and converts them
// into document records via the configured loader.
type Materializer struct {
	blobs  driven.BlobStore
	loader driven.DocumentLoader
	log    logger.Sink
}

// NewMaterializer creates a materializer over the given blob store and loader.
// A nil sink disables diagnostics.
func NewMaterializer(blobs driven.BlobStore, loader driven.DocumentLoader, log logger.Sink) *Materializer {
	if log == nil {
		log = logger.Nop()
	}
	return &Materializer{
		blobs:  blobs,
		loader: loader,
		log:    log,
	}
}

// Materialize downloads the blob, normalises its properties and runs the
// loader over the staged bytes. The normalised metadata is attached to
// every produced record; the seven derived keys always reflect the
// platform's properties even when the loader set its own values.
//
// Any fetch failure returns a *domain.MaterializationError. No retries.
func (m *Materializer) Materialize(ctx context.Context, container, key string) ([]domain.DocumentRecord, error) {
	staged, err := os.CreateTemp("", "blobfeed-*")
	if err != nil {
		return nil, &domain.MaterializationError{Container: container, Key: key, Err: err}
	}
	path := staged.Name()
	defer os.Remove(path)

	m.log.Debugf("downloading %s/%s", container, key)
	if err := m.blobs.Download(ctx, container, key, staged); err != nil {
		staged.Close()
		return nil, &domain.MaterializationError{Container: container, Key: key, Err: err}
	}
	if err := staged.Close(); err != nil {
		return nil, &domain.MaterializationError{Container: container, Key: key, Err: err}
	}

	props, err := m.blobs.Properties(ctx, container, key)
	if err != nil {
		return nil, &domain.MaterializationError{Container: container, Key: key, Err: err}
	}
	metadata := domain.NormalizeMetadata(props, container)

	records, err := m.loader.Load(ctx, path, func(string) map[string]any {
		return cloneMetadata(metadata)
	})
	if err != nil {
		return nil, &domain.MaterializationError{Container: container, Key: key, Err: err}
	}

	for i := range records {
		records[i].Container = container
		records[i].Key = key
		records[i].Metadata = overlay(records[i].Metadata, metadata)
	}

	m.log.Debugf("materialised %s/%s into %d record(s)", container, key, len(records))
	return records, nil
}

// overlay merges normalised metadata into a record's metadata.
// Normalised values win so every record carries the platform's truth.
func overlay(existing, normalized map[string]any) map[string]any {
	if existing == nil {
		existing = make(map[string]any, len(normalized))
	}
	for k, v := range normalized {
		existing[k] = v
	}
	return existing
}

// cloneMetadata copies the mapping so loaders cannot mutate shared state.
func cloneMetadata(metadata map[string]any) map[string]any {
	clone := make(map[string]any, len(metadata))
	for k, v := range metadata {
		clone[k] = v
	}
	return clone
}
