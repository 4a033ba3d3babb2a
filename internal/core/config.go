package core

import (
	"fmt"

	"github.com/spf13/viper"
	"github.com/valter-silva-au/adr-scribe/pkg/models"
)

// ConfigurationManager loads the .adrconfig file from the base path.
type ConfigurationManager interface {
	LoadGlobalConfig() (*models.GlobalConfig, error)
}

// viperConfigManager implements ConfigurationManager using Viper for
// reading the YAML configuration file.
type viperConfigManager struct {
	// basePath is the root directory where .adrconfig resides.
	basePath string
}

// NewConfigurationManager creates a ConfigurationManager that reads
// .adrconfig relative to basePath.
func NewConfigurationManager(basePath string) ConfigurationManager {
	return &viperConfigManager{basePath: basePath}
}

// LoadGlobalConfig reads the .adrconfig file from the base path using Viper.
// If the file does not exist, defaults are returned.
func (cm *viperConfigManager) LoadGlobalConfig() (*models.GlobalConfig, error) {
	cfg := models.DefaultGlobalConfig()

	v := viper.New()
	v.SetConfigName(".adrconfig")
	v.SetConfigType("yaml")
	v.AddConfigPath(cm.basePath)

	// Set Viper defaults so missing keys fall back gracefully.
	v.SetDefault("generator_command", cfg.GeneratorCommand)
	v.SetDefault("generator_script", cfg.GeneratorScript)
	v.SetDefault("hooks.enabled", cfg.Hooks.Enabled)
	v.SetDefault("hooks.completion.enabled", cfg.Hooks.Completion.Enabled)
	v.SetDefault("hooks.post_tool_use.enabled", cfg.Hooks.PostToolUse.Enabled)
	v.SetDefault("hooks.post_tool_use.threshold", cfg.Hooks.PostToolUse.Threshold)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// No config file found — return defaults.
			return cfg, nil
		}
		return nil, fmt.Errorf("reading .adrconfig: %w", err)
	}

	cfg.GeneratorCommand = v.GetString("generator_command")
	cfg.GeneratorScript = v.GetString("generator_script")
	cfg.Hooks.Enabled = v.GetBool("hooks.enabled")
	cfg.Hooks.Completion.Enabled = v.GetBool("hooks.completion.enabled")
	cfg.Hooks.PostToolUse.Enabled = v.GetBool("hooks.post_tool_use.enabled")
	cfg.Hooks.PostToolUse.Threshold = v.GetInt("hooks.post_tool_use.threshold")

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validateConfig rejects configurations the engine cannot run with.
func validateConfig(cfg *models.GlobalConfig) error {
	if cfg.GeneratorCommand == "" {
		return fmt.Errorf("validating .adrconfig: generator_command must not be empty")
	}
	if cfg.GeneratorScript == "" {
		return fmt.Errorf("validating .adrconfig: generator_script must not be empty")
	}
	if cfg.Hooks.PostToolUse.Threshold < 0 {
		return fmt.Errorf("validating .adrconfig: hooks.post_tool_use.threshold must be non-negative, got %d", cfg.Hooks.PostToolUse.Threshold)
	}
	return nil
}
