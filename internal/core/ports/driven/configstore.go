package driven

// ConfigStore provides the connector's configuration.
// Implementations handle persistence (e.g., TOML files); the surface is
// read-only because nothing in the pipeline writes configuration.
type ConfigStore interface {
	// ConnectionString is the storage account connection string.
	ConnectionString() string

	// FeedPath is the change-feed capture file to replay.
	FeedPath() string

	// Container restricts syncs to one container when non-empty.
	Container() string

	// DataDir is the directory holding the cursor database.
	// Empty means the store's default location.
	DataDir() string

	// PageSize is the requested number of events per change-feed page.
	// Zero means the walker's default.
	PageSize() int

	// Path returns where the configuration was loaded from.
	Path() string
}
