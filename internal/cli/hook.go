package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	claudetpl "github.com/valter-silva-au/adr-scribe/templates/claude"

	"github.com/spf13/cobra"
)

var hookCmd = &cobra.Command{
	Use:   "hook",
	Short: "Handle Claude Code hook events",
	Long: `Process Claude Code hook events and generate Architecture Decision
Records for the significant ones.

Each subcommand handles a specific hook type by reading JSON from stdin,
classifying the payload, and invoking the project's ADR generator script
when the event clears the significance heuristics.

These commands are called by shell wrapper scripts installed in .claude/hooks/.`,
}

var hookInstallCmd = &cobra.Command{
	Use:   "install",
	Short: "Install adrs hook wrappers for Claude Code",
	Long: `Generate shell wrapper scripts and update .claude/settings.json
to route hook events through adrs.

This creates .claude/hooks/ wrapper scripts that delegate to 'adrs hook <type>'
and configures Claude Code to use them.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		targetDir, _ := cmd.Flags().GetString("dir")
		if targetDir == "" {
			var err error
			targetDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("getting working directory: %w", err)
			}
		}

		return installHookWrappers(targetDir)
	},
}

var hookStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show hook configuration status",
	Long:  `Display which adrs hooks are enabled and the effective generator settings.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Config == nil {
			fmt.Println("No adrs configuration loaded.")
			return nil
		}

		cfg := Config.Hooks
		fmt.Printf("Hook system: %s\n\n", enabledStr(cfg.Enabled))
		fmt.Printf("Completion:   %s\n", enabledStr(cfg.Completion.Enabled))
		fmt.Printf("PostToolUse:  %s\n", enabledStr(cfg.PostToolUse.Enabled))
		fmt.Printf("  threshold: %d\n", cfg.PostToolUse.Threshold)
		fmt.Println()
		fmt.Printf("Generator: %s %s\n", Config.GeneratorCommand, Config.GeneratorScript)
		if BasePath != "" {
			scriptPath := Config.GeneratorScript
			if !filepath.IsAbs(scriptPath) {
				scriptPath = filepath.Join(BasePath, scriptPath)
			}
			if _, err := os.Stat(scriptPath); err != nil {
				fmt.Printf("  warning: generator script not found at %s\n", scriptPath)
			}
		}

		return nil
	},
}

func enabledStr(b bool) string {
	if b {
		return "enabled"
	}
	return "disabled"
}

// installHookWrappers writes shell wrappers and updates settings.json.
func installHookWrappers(targetDir string) error {
	hooksDir := filepath.Join(targetDir, ".claude", "hooks")
	if err := os.MkdirAll(hooksDir, 0o755); err != nil {
		return fmt.Errorf("creating hooks directory: %w", err)
	}

	// Write shell wrapper templates from embedded FS.
	hookFiles := []string{
		"adrs-hook-completion.sh",
		"adrs-hook-post-tool-use.sh",
	}

	for _, name := range hookFiles {
		data, err := claudetpl.FS.ReadFile("hooks/" + name)
		if err != nil {
			return fmt.Errorf("reading embedded template %s: %w", name, err)
		}
		dest := filepath.Join(hooksDir, name)
		if err := os.WriteFile(dest, data, 0o755); err != nil {
			return fmt.Errorf("writing hook script %s: %w", name, err)
		}
		fmt.Printf("  Wrote %s\n", dest)
	}

	// Update settings.json with hook entries.
	settingsPath := filepath.Join(targetDir, ".claude", "settings.json")
	if err := updateSettingsWithHooks(settingsPath, hooksDir); err != nil {
		return fmt.Errorf("updating settings.json: %w", err)
	}

	fmt.Printf("\nHook wrappers installed in %s\n", hooksDir)
	fmt.Println("Claude Code will now route completion and tool-use events through adrs.")
	return nil
}

func updateSettingsWithHooks(settingsPath, hooksDir string) error {
	// Read existing settings or create new.
	var settings map[string]interface{}

	data, err := os.ReadFile(settingsPath) //nolint:gosec // G304: path from trusted CLI input
	if err == nil {
		if err := json.Unmarshal(data, &settings); err != nil {
			settings = make(map[string]interface{})
		}
	} else {
		settings = make(map[string]interface{})
	}

	// Build hooks section. Completion signals arrive on Stop; tool usage
	// on PostToolUse.
	hooksSection := map[string]interface{}{
		"PostToolUse": []interface{}{
			map[string]interface{}{
				"type":     "command",
				"command":  filepath.Join(hooksDir, "adrs-hook-post-tool-use.sh"),
				"triggers": []string{"Task", "Edit", "Write"},
			},
		},
		"Stop": []interface{}{
			map[string]interface{}{
				"type":    "command",
				"command": filepath.Join(hooksDir, "adrs-hook-completion.sh"),
			},
		},
	}

	settings["hooks"] = hooksSection

	// Write back settings.
	out, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling settings: %w", err)
	}
	// Ensure trailing newline.
	if !strings.HasSuffix(string(out), "\n") {
		out = append(out, '\n')
	}
	if err := os.WriteFile(settingsPath, out, 0o644); err != nil {
		return fmt.Errorf("writing settings.json: %w", err)
	}
	fmt.Printf("  Updated %s\n", settingsPath)
	return nil
}

func init() {
	hookInstallCmd.Flags().String("dir", "", "Target directory (defaults to current directory)")

	hookCmd.AddCommand(hookInstallCmd)
	hookCmd.AddCommand(hookStatusCmd)
	rootCmd.AddCommand(hookCmd)
}
