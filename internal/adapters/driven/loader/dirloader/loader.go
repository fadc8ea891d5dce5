// Package dirloader provides a generic file-to-document loader.
// It reads staged blob bytes, detects a MIME type from the file name and
// produces document records carrying the metadata resolved for the blob.
// Per-extension extractors allow callers to plug in format-specific text
// extraction without the core knowing about formats.
package dirloader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/custodia-labs/blobfeed/internal/core/domain"
	"github.com/custodia-labs/blobfeed/internal/core/ports/driven"
	"github.com/custodia-labs/blobfeed/internal/logger"
)

// Ensure Loader implements the interface.
var _ driven.DocumentLoader = (*Loader)(nil)

// Extractor converts raw file bytes into text content.
type Extractor func(fileName string, content []byte) (string, error)

// Loader turns staged files into document records.
type Loader struct {
	extractors map[string]Extractor
	log        logger.Sink
}

// New creates a loader with no extractors registered.
// Unregistered extensions pass content through as text.
func New(log logger.Sink) *Loader {
	if log == nil {
		log = logger.Nop()
	}
	return &Loader{
		extractors: make(map[string]Extractor),
		log:        log,
	}
}

// RegisterExtractor installs an extractor for a file extension (".pdf").
// Registering again for the same extension replaces the previous one.
func (l *Loader) RegisterExtractor(ext string, fn Extractor) {
	l.extractors[strings.ToLower(ext)] = fn
}

// Load reads the file at path and produces one record, using resolve for
// the record's base metadata. The resolved "file_name" names the original
// blob; the staged path's name is platform-generated and only a fallback.
func (l *Loader) Load(ctx context.Context, path string, resolve driven.MetadataFunc) ([]domain.DocumentRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading staged file: %w", err)
	}

	fileName := filepath.Base(path)
	var metadata map[string]any
	if resolve != nil {
		metadata = resolve(fileName)
	}
	if name, ok := metadata["file_name"].(string); ok && name != "" {
		fileName = name
	}

	ext := strings.ToLower(filepath.Ext(fileName))
	text := string(content)
	if extract, ok := l.extractors[ext]; ok {
		text, err = extract(fileName, content)
		if err != nil {
			return nil, fmt.Errorf("extracting %s: %w", fileName, err)
		}
	}

	record := domain.DocumentRecord{
		ID:       uuid.New().String(),
		Content:  text,
		MIMEType: mimeForExtension(ext),
		Metadata: metadata,
	}

	l.log.Debugf("loaded %s (%s, %d bytes)", fileName, record.MIMEType, len(content))
	return []domain.DocumentRecord{record}, nil
}

// mimeForExtension maps common file extensions to MIME types.
// Unknown extensions fall back to text/plain, matching the loader's
// pass-through behaviour for content.
func mimeForExtension(ext string) string {
	switch ext {
	case ".md", ".markdown":
		return "text/markdown"
	case ".html", ".htm":
		return "text/html"
	case ".json":
		return "application/json"
	case ".xml":
		return "application/xml"
	case ".csv":
		return "text/csv"
	case ".yaml", ".yml":
		return "text/yaml"
	case ".pdf":
		return "application/pdf"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	default:
		return "text/plain"
	}
}
