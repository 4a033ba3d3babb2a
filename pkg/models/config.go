package models

// GlobalConfig holds settings loaded from .adrconfig.
type GlobalConfig struct {
	// GeneratorCommand is the interpreter used to run the ADR generator
	// script (e.g. "node").
	GeneratorCommand string `yaml:"generator_command" mapstructure:"generator_command"`
	// GeneratorScript is the generator script path relative to the base path.
	GeneratorScript string `yaml:"generator_script" mapstructure:"generator_script"`

	Hooks HookConfig `yaml:"hooks" mapstructure:"hooks"`
}

// HookConfig holds hook configuration from .adrconfig.
type HookConfig struct {
	Enabled     bool              `yaml:"enabled" mapstructure:"enabled"`
	Completion  CompletionConfig  `yaml:"completion" mapstructure:"completion"`
	PostToolUse PostToolUseConfig `yaml:"post_tool_use" mapstructure:"post_tool_use"`
}

// CompletionConfig controls the completion hook.
type CompletionConfig struct {
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`
}

// PostToolUseConfig controls the post-tool-use hook.
type PostToolUseConfig struct {
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`
	// Threshold is the minimum significance score that triggers ADR
	// generation for a tool-use event.
	Threshold int `yaml:"threshold" mapstructure:"threshold"`
}

// DefaultGlobalConfig returns the configuration used when no .adrconfig exists.
func DefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		GeneratorCommand: "node",
		GeneratorScript:  "scripts/generate-adr.js",
		Hooks:            DefaultHookConfig(),
	}
}

// DefaultHookConfig returns sensible defaults for hook configuration.
func DefaultHookConfig() HookConfig {
	return HookConfig{
		Enabled: true,
		Completion: CompletionConfig{
			Enabled: true,
		},
		PostToolUse: PostToolUseConfig{
			Enabled:   true,
			Threshold: 7,
		},
	}
}
