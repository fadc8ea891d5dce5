package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/blobfeed/internal/core/domain"
)

var cursorCmd = &cobra.Command{
	Use:   "cursor",
	Short: "Inspect or clear persisted sync state",
}

var cursorShowCmd = &cobra.Command{
	Use:   "show [source-id]",
	Short: "Show the persisted cursor for a source",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCursorShow,
}

var cursorResetCmd = &cobra.Command{
	Use:   "reset [source-id]",
	Short: "Clear the persisted cursor so the next sync walks from the beginning",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCursorReset,
}

func init() {
	cursorCmd.AddCommand(cursorShowCmd)
	cursorCmd.AddCommand(cursorResetCmd)
	rootCmd.AddCommand(cursorCmd)
}

func cursorSource(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "default"
}

func runCursorShow(cmd *cobra.Command, args []string) error {
	cfg, err := openConfig(configDir)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	states, err := openStateStore(cfg.DataDir())
	if err != nil {
		return fmt.Errorf("opening state store: %w", err)
	}
	defer states.Close()

	source := cursorSource(args)
	state, err := states.Get(cmd.Context(), source)
	if errors.Is(err, domain.ErrNotFound) {
		cmd.Printf("No cursor stored for source %q.\n", source)
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading sync state: %w", err)
	}

	cmd.Printf("Source:    %s\n", state.SourceID)
	cmd.Printf("Cursor:    %s\n", state.Cursor)
	if state.LastSync.IsZero() {
		cmd.Println("Last sync: never completed")
	} else {
		cmd.Printf("Last sync: %s\n", state.LastSync.Format("2006-01-02 15:04:05 MST"))
	}
	return nil
}

func runCursorReset(cmd *cobra.Command, args []string) error {
	cfg, err := openConfig(configDir)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	states, err := openStateStore(cfg.DataDir())
	if err != nil {
		return fmt.Errorf("opening state store: %w", err)
	}
	defer states.Close()

	source := cursorSource(args)
	if err := states.Delete(cmd.Context(), source); err != nil {
		return fmt.Errorf("clearing sync state: %w", err)
	}

	cmd.Printf("Cursor cleared for source %q.\n", source)
	return nil
}
