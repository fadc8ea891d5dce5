package domain

import "time"

// SyncState records where a caller left off in a change feed.
// The walker itself never persists state; persisting the cursor between
// runs is the caller's responsibility, typically via a SyncStateStore.
type SyncState struct {
	// SourceID identifies the storage account or configured source.
	SourceID string

	// Cursor is the opaque resumption token from the last completed page.
	Cursor string

	// LastSync is when the state was last saved.
	LastSync time.Time
}
