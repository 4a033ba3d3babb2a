package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets the version information injected via ldflags.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var rootCmd = &cobra.Command{
	Use:   "adrs",
	Short: "ADR Scribe - automatic Architecture Decision Records from Claude Code hooks",
	Long: `ADR Scribe (adrs) watches Claude Code hook events for development
completion and decision signals. When an event is significant enough, it
extracts a decision record and asks the project's ADR generator script to
persist it.

It provides hook handlers for Claude Code, an installer for the hook
wrappers, an event log browser, and an MCP server exposing the
classification heuristics to AI assistants.`,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("adrs %s\ncommit: %s\nbuilt:  %s\n", appVersion, appCommit, appDate)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
