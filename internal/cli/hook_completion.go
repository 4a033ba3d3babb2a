package cli

import (
	"os"

	"github.com/valter-silva-au/adr-scribe/internal/hooks"

	"github.com/spf13/cobra"
)

var hookCompletionCmd = &cobra.Command{
	Use:   "completion",
	Short: "Handle completion hook events (non-blocking)",
	Long: `Classify a development completion signal and generate an ADR when it
is significant. Reads a JSON payload with a "content" field from stdin.

Significance is decided by fixed phrase heuristics (phase complete, 100%,
deployed, milestone, ...). The completion type (phase, feature, integration,
deployment, testing, general) shapes the generated record.

Non-blocking: the command always exits 0; generation failures are reported
on stdout only.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if HookEngine == nil {
			return nil
		}

		input, err := hooks.ParseStdin[hooks.CompletionInput](os.Stdin)
		if err != nil {
			cmd.Println("Invalid JSON data received in completion hook")
			return nil // Non-blocking, swallow errors.
		}

		// Non-blocking: the engine reports outcomes itself.
		_ = HookEngine.HandleCompletion(*input)

		return nil
	},
}

func init() {
	hookCmd.AddCommand(hookCompletionCmd)
}
