package domain

// DocumentRecord represents content produced by a document loader,
// carrying the normalised metadata of the blob it came from.
// Ownership passes to the caller of the walk that produced it.
type DocumentRecord struct {
	// ID is the unique identifier for the record.
	ID string `json:"id"`

	// Container is the blob container the content came from.
	Container string `json:"container"`

	// Key is the blob name the content came from.
	Key string `json:"key"`

	// Content is the extracted text content.
	Content string `json:"content"`

	// MIMEType is the detected content type (e.g., "text/markdown").
	MIMEType string `json:"mime_type"`

	// Metadata contains the normalised blob metadata plus any
	// loader-specific pairs.
	Metadata map[string]any `json:"metadata,omitempty"`
}
