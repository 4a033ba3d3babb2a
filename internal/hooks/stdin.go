// Package hooks defines the stdin payload types for Claude Code hook events
// and the parsing helper shared by all hook subcommands.
package hooks

import (
	"encoding/json"
	"fmt"
	"io"
)

// CompletionInput is the stdin JSON for completion hook events.
// Missing fields default to their zero values.
type CompletionInput struct {
	Content string `json:"content"`
}

// PostToolUseInput is the stdin JSON for post-tool-use hook events.
type PostToolUseInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Output      string   `json:"output"`
	FileChanges []string `json:"file_changes"`
}

// ParseStdin reads JSON from the given reader into a new instance of T.
func ParseStdin[T any](r io.Reader) (*T, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	if len(data) == 0 {
		// Return zero-value struct when no input is provided.
		var zero T
		return &zero, nil
	}
	var result T
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("parsing stdin JSON: %w", err)
	}
	return &result, nil
}
