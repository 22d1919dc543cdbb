package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Will be set at build time using -ldflags
var (
	Version   = "v0.1.0"
	BuildTime string
	GitCommit = "unknown"
)

// VersionInfo returns a formatted string with version information
func VersionInfo() string {
	return fmt.Sprintf(
		"Version: %s\nBuild Date: %s\nGit Commit: %s\nGo Version: %s\nOS/Arch: %s/%s",
		Version,
		BuildTime,
		GitCommit,
		runtime.Version(),
		runtime.GOOS,
		runtime.GOARCH,
	)
}

// NewVersion creates a version command
func NewVersion(params *CmdParams) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of " + params.Use,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), params.Use)
			fmt.Fprintln(cmd.OutOrStdout(), VersionInfo())
		},
	}
}
