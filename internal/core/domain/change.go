package domain

import (
	"regexp"
	"time"
)

// FeedEvent is a raw record from the storage platform's change feed.
// It is held only while the page containing it is being processed.
type FeedEvent struct {
	// ID is the platform-assigned event identifier.
	ID string

	// EventType is the platform event type string (e.g., "BlobCreated").
	EventType string

	// Subject locates the affected blob, in the form
	// "/containers/<container>/blobs/<key>".
	Subject string

	// EventTime is when the mutation occurred.
	EventTime time.Time

	// Data carries the event-specific payload (url, etag, content type...).
	// Opaque to classification.
	Data map[string]any
}

// ChangeKind is the classified kind of a blob mutation.
type ChangeKind int

const (
	// ChangeUpsert indicates a created or updated blob.
	// Both require the content to be re-materialised.
	ChangeUpsert ChangeKind = iota

	// ChangeDeleted indicates a removed blob.
	ChangeDeleted
)

// String returns the kind name for diagnostics.
func (k ChangeKind) String() string {
	switch k {
	case ChangeUpsert:
		return "upsert"
	case ChangeDeleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// Change describes a single classified blob mutation.
// It is derived per event and discarded after dispatch.
type Change struct {
	// Container is the blob container name.
	Container string

	// Key is the blob name within the container. May contain "/".
	Key string

	// Kind is the classified mutation kind.
	Kind ChangeKind
}

// subjectPattern extracts container and blob key from an event subject.
// The key capture is greedy so nested blob paths survive intact.
var subjectPattern = regexp.MustCompile(`/containers/([^/]+)/blobs/(.+)`)

// Classify maps a raw feed event to a Change.
// Returns false when the subject does not locate a blob or the event type
// is not a recognised blob mutation. Such events are skipped, not errors.
func Classify(event FeedEvent) (Change, bool) {
	match := subjectPattern.FindStringSubmatch(event.Subject)
	if match == nil {
		return Change{}, false
	}

	var kind ChangeKind
	switch event.EventType {
	case "BlobCreated", "BlobUpdated":
		kind = ChangeUpsert
	case "BlobDeleted":
		kind = ChangeDeleted
	default:
		return Change{}, false
	}

	return Change{
		Container: match[1],
		Key:       match[2],
		Kind:      kind,
	}, true
}
