package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/blobfeed/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// settings is the on-disk configuration shape.
type settings struct {
	Azure struct {
		ConnectionString string `toml:"connection_string"`
	} `toml:"azure"`
	Feed struct {
		Path string `toml:"path"`
	} `toml:"feed"`
	Sync struct {
		Container string `toml:"container"`
		PageSize  int    `toml:"page_size"`
	} `toml:"sync"`
	Data struct {
		Dir string `toml:"dir"`
	} `toml:"data"`
}

// ConfigStore reads connector settings from a TOML file.
// Settings are loaded once at construction; a missing file yields defaults
// so a fresh install works with flags alone.
type ConfigStore struct {
	filePath string
	settings settings
}

// NewConfigStore loads config.toml from the given directory.
// If configDir is empty, defaults to ~/.blobfeed/config.toml.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolving home directory: %w", err)
		}
		configDir = filepath.Join(home, ".blobfeed")
	}

	s := &ConfigStore{
		filePath: filepath.Join(configDir, "config.toml"),
	}

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &s.settings); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", s.filePath, err)
	}

	return s, nil
}

// ConnectionString is the storage account connection string.
func (s *ConfigStore) ConnectionString() string {
	return s.settings.Azure.ConnectionString
}

// FeedPath is the change-feed capture file to replay.
func (s *ConfigStore) FeedPath() string {
	return s.settings.Feed.Path
}

// Container restricts syncs to one container when non-empty.
func (s *ConfigStore) Container() string {
	return s.settings.Sync.Container
}

// DataDir is the directory holding the cursor database.
func (s *ConfigStore) DataDir() string {
	return s.settings.Data.Dir
}

// PageSize is the requested number of events per change-feed page.
func (s *ConfigStore) PageSize() int {
	return s.settings.Sync.PageSize
}

// Path returns the configuration file path.
func (s *ConfigStore) Path() string {
	return s.filePath
}
