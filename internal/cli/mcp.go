package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	adrsmcp "github.com/valter-silva-au/adr-scribe/internal/mcp"

	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  "Commands for running the adrs MCP (Model Context Protocol) server.",
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the adrs MCP server on stdio",
	Long: `Start the adrs MCP server on stdio transport.

The server exposes the classification heuristics as MCP tools that AI
coding assistants can call: classify_completion, score_tool_use,
list_events.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Config == nil {
			return fmt.Errorf("configuration not initialized")
		}

		srv := adrsmcp.NewServer(Config.Hooks, EventLog, appVersion)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		if err := srv.Run(ctx); err != nil {
			return fmt.Errorf("running MCP server: %w", err)
		}

		return nil
	},
}

func init() {
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}
