package cli

import (
	"os"

	"github.com/valter-silva-au/adr-scribe/internal/hooks"

	"github.com/spf13/cobra"
)

var hookPostToolUseCmd = &cobra.Command{
	Use:   "post-tool-use",
	Short: "Handle PostToolUse hook events (non-blocking)",
	Long: `Score a tool invocation for architectural significance and generate
an ADR when the score clears the threshold. Reads a JSON payload with
"name", "description", "output", and "file_changes" fields from stdin.

Scoring is additive: +3 for architectural vocabulary in the tool name,
+2 in the description, +4 for changes to significant files (package
manifests, build config, container files), +2 for agent/task tools.

Non-blocking: the command always exits 0; generation failures are reported
on stdout only.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if HookEngine == nil {
			return nil
		}

		input, err := hooks.ParseStdin[hooks.PostToolUseInput](os.Stdin)
		if err != nil {
			cmd.Println("Invalid JSON data received")
			return nil // Non-blocking, swallow errors.
		}

		// Non-blocking: the engine reports outcomes itself.
		_ = HookEngine.HandlePostToolUse(*input)

		return nil
	},
}

func init() {
	hookCmd.AddCommand(hookPostToolUseCmd)
}
