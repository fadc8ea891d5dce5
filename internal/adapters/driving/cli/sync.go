package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/blobfeed/internal/adapters/driven/loader/dirloader"
	"github.com/custodia-labs/blobfeed/internal/adapters/driven/loader/extract"
	"github.com/custodia-labs/blobfeed/internal/core/domain"
	"github.com/custodia-labs/blobfeed/internal/core/services"
)

var (
	syncFeedPath  string
	syncSource    string
	syncContainer string
	syncStartTime string
	syncReset     bool
	syncOutPath   string
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Walk the change feed and emit document records",
	Long: `Walks the configured change feed from the persisted cursor, turns
created and updated blobs into document records and prints them as JSON.
The cursor is persisted after the walk so the next run resumes where
this one stopped.`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().StringVar(&syncFeedPath, "feed", "",
		"change feed file (overrides feed.path from config)")
	syncCmd.Flags().StringVar(&syncSource, "source", "default",
		"source ID the cursor is stored under")
	syncCmd.Flags().StringVar(&syncContainer, "container", "",
		"only process events for this container")
	syncCmd.Flags().StringVar(&syncStartTime, "start-time", "",
		"walk events at or after this RFC 3339 time (ignored when a cursor exists)")
	syncCmd.Flags().BoolVar(&syncReset, "reset", false,
		"ignore the persisted cursor and walk from the beginning")
	syncCmd.Flags().StringVar(&syncOutPath, "out", "",
		"write records to this file instead of stdout")

	rootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	sink := newSink(cmd)

	cfg, err := openConfig(configDir)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	feedPath := syncFeedPath
	if feedPath == "" {
		feedPath = cfg.FeedPath()
	}
	if feedPath == "" {
		return errors.New("no change feed configured: pass --feed or set feed.path")
	}

	connectionString := cfg.ConnectionString()
	if connectionString == "" {
		return errors.New("azure connection_string is not configured")
	}

	container := syncContainer
	if container == "" {
		container = cfg.Container()
	}

	feed, err := openFeed(feedPath)
	if err != nil {
		return fmt.Errorf("opening change feed: %w", err)
	}

	blobs, err := openBlobStore(connectionString, sink)
	if err != nil {
		return fmt.Errorf("connecting to blob storage: %w", err)
	}

	states, err := openStateStore(cfg.DataDir())
	if err != nil {
		return fmt.Errorf("opening state store: %w", err)
	}
	defer states.Close()

	opts := services.WalkOptions{
		Container: container,
		PageSize:  cfg.PageSize(),
	}
	if !syncReset {
		state, err := states.Get(ctx, syncSource)
		switch {
		case err == nil:
			opts.Cursor = state.Cursor
		case errors.Is(err, domain.ErrNotFound):
			// First walk for this source.
		default:
			return fmt.Errorf("reading sync state: %w", err)
		}
	}
	if opts.Cursor == "" && syncStartTime != "" {
		start, err := time.Parse(time.RFC3339, syncStartTime)
		if err != nil {
			return fmt.Errorf("parsing --start-time: %w", err)
		}
		opts.StartTime = &start
	}

	loader := dirloader.New(sink)
	loader.RegisterExtractor(".md", extract.Markdown)
	loader.RegisterExtractor(".html", extract.HTML)
	loader.RegisterExtractor(".htm", extract.HTML)
	walker := services.NewWalker(feed, services.NewMaterializer(blobs, loader, sink), sink)

	records, walkErr := walker.Walk(ctx, opts)

	// Pages processed before a failure are still behind us; persist the
	// cursor so the next run does not replay them.
	if cursor := walker.Cursor(); cursor != "" {
		state := domain.SyncState{SourceID: syncSource, Cursor: cursor}
		if walkErr == nil {
			state.LastSync = time.Now().UTC()
		}
		if err := states.Save(ctx, state); err != nil {
			if walkErr != nil {
				return fmt.Errorf("saving sync state after failed walk: %w", err)
			}
			return fmt.Errorf("saving sync state: %w", err)
		}
	}
	if walkErr != nil {
		return fmt.Errorf("walk failed: %w", walkErr)
	}

	return writeRecords(cmd, records)
}

// writeRecords emits the produced records as a JSON array.
func writeRecords(cmd *cobra.Command, records []domain.DocumentRecord) error {
	if records == nil {
		records = []domain.DocumentRecord{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding records: %w", err)
	}
	data = append(data, '\n')

	if syncOutPath != "" {
		if err := os.WriteFile(syncOutPath, data, 0600); err != nil {
			return fmt.Errorf("writing records: %w", err)
		}
		cmd.PrintErrf("Wrote %d record(s) to %s\n", len(records), syncOutPath)
		return nil
	}

	_, err = cmd.OutOrStdout().Write(data)
	return err
}
