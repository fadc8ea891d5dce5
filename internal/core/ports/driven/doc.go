// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - ChangeFeedClient: Pages through the storage platform's change log
//   - BlobStore: Fetches blob content and properties
//   - DocumentLoader: Turns staged bytes into document records
//
// # Caller-Side Interfaces
//
// Used by driving adapters, never by the walker itself:
//
//   - SyncStateStore: Cursor persistence between runs
//   - ConfigStore: Application configuration
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
