// Package cli implements the blobfeed command tree.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/blobfeed/internal/adapters/driven/azure"
	configfile "github.com/custodia-labs/blobfeed/internal/adapters/driven/config/file"
	filefeed "github.com/custodia-labs/blobfeed/internal/adapters/driven/feed/file"
	"github.com/custodia-labs/blobfeed/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/blobfeed/internal/core/ports/driven"
	"github.com/custodia-labs/blobfeed/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	configDir string
	verbose   bool
)

// stateStore is what the commands need from a cursor store.
type stateStore interface {
	driven.SyncStateStore
	Close() error
}

// Adapter factories. Package-level so tests can substitute fakes.
var (
	openConfig = func(dir string) (driven.ConfigStore, error) {
		return configfile.NewConfigStore(dir)
	}
	openStateStore = func(dataDir string) (stateStore, error) {
		return sqlite.NewStore(dataDir)
	}
	openFeed = func(path string) (driven.ChangeFeedClient, error) {
		return filefeed.New(path)
	}
	openBlobStore = func(connectionString string, log logger.Sink) (driven.BlobStore, error) {
		return azure.NewBlobStore(connectionString, log)
	}
)

var rootCmd = &cobra.Command{
	Use:   "blobfeed",
	Short: "Turn blob change-feed events into document records",
	Long: `blobfeed walks a blob storage change feed, classifies each event,
materialises created and updated blobs into document records and keeps
a resumable cursor between runs.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "",
		"config directory (default ~/.blobfeed)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable debug logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// newSink builds the diagnostic sink for a command invocation.
// Diagnostics go to stderr so record output on stdout stays parseable.
func newSink(cmd *cobra.Command) logger.Sink {
	return logger.NewWriter(cmd.ErrOrStderr(), verbose)
}
