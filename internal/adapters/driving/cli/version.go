package cli

import (
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the blobfeed version",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("blobfeed %s (%s)\n", buildVersion(), runtime.Version())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// buildVersion prefers the ldflags-injected version and falls back to the
// module version stamped into the binary by the Go toolchain.
func buildVersion() string {
	if version != "dev" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}
	}
	return version
}
