package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/valter-silva-au/adr-scribe/pkg/models"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Initialize an adrs workspace",
	Long: `Write a default .adrconfig file to the given directory (default:
current directory).

The config controls which hooks run, the post-tool-use significance
threshold, and the ADR generator command. An existing .adrconfig is never
overwritten.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		basePath := "."
		if len(args) > 0 {
			basePath = args[0]
		}
		absPath, err := filepath.Abs(basePath)
		if err != nil {
			return fmt.Errorf("resolving path: %w", err)
		}

		configPath := filepath.Join(absPath, ".adrconfig")
		if _, err := os.Stat(configPath); err == nil {
			fmt.Printf("Skipped (already exists): %s\n", configPath)
			return nil
		}

		out, err := yaml.Marshal(models.DefaultGlobalConfig())
		if err != nil {
			return fmt.Errorf("marshaling default config: %w", err)
		}
		if err := os.WriteFile(configPath, out, 0o644); err != nil {
			return fmt.Errorf("writing .adrconfig: %w", err)
		}

		fmt.Printf("Created: %s\n", configPath)
		fmt.Println("Run 'adrs hook install' to wire the Claude Code hooks.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
