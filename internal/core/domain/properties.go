package domain

import "time"

// UnknownDate marks a date the platform did not provide.
// Consumers can distinguish "not provided" from a schema change.
const UnknownDate = "unknown"

// dateLayout is the normalised date format for metadata values.
const dateLayout = "2006-01-02"

// BlobProperties holds platform blob properties before normalisation.
// Pointer timestamp fields distinguish "absent" from the zero time.
type BlobProperties struct {
	// Name is the blob name.
	Name string

	// ContentType is the stored content type (e.g., "text/plain").
	ContentType string

	// ContentLength is the blob size in bytes.
	ContentLength int64

	// CreationTime is when the blob was created, if known.
	CreationTime *time.Time

	// LastModified is when the blob was last written, if known.
	LastModified *time.Time

	// LastAccessed is when the blob was last read, if known.
	LastAccessed *time.Time

	// Metadata contains user-defined metadata pairs.
	Metadata map[string]string

	// Tags contains user-defined blob tags.
	Tags map[string]string
}

// NormalizeMetadata flattens blob properties into the metadata mapping
// attached to every document record produced for the blob.
//
// Merge order is fixed: derived fields first, then user metadata, then
// tags. Later writers win on key collision, so tags take precedence over
// user metadata, and user metadata over the derived fields.
func NormalizeMetadata(props *BlobProperties, container string) map[string]any {
	metadata := map[string]any{
		"file_name":          props.Name,
		"file_type":          props.ContentType,
		"file_size":          props.ContentLength,
		"creation_date":      formatDate(props.CreationTime),
		"last_modified_date": formatDate(props.LastModified),
		"last_accessed_date": formatDate(props.LastAccessed),
		"container":          container,
	}

	for key, value := range props.Metadata {
		metadata[key] = value
	}
	for key, value := range props.Tags {
		metadata[key] = value
	}

	return metadata
}

// formatDate renders a timestamp as YYYY-MM-DD, or UnknownDate when absent.
func formatDate(t *time.Time) string {
	if t == nil {
		return UnknownDate
	}
	return t.UTC().Format(dateLayout)
}
