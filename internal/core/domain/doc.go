// Package domain defines the core business entities for blobfeed.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - FeedEvent: A raw change-feed record from the storage platform
//   - Change: A classified change (container, key, kind)
//   - BlobProperties: Platform blob properties before normalisation
//   - DocumentRecord: Content plus metadata produced by a loader
//   - SyncState: Persisted cursor position for a storage account
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
