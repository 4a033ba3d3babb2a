package core

import (
	"fmt"
	"strings"

	"github.com/valter-silva-au/adr-scribe/internal/hooks"
	"github.com/valter-silva-au/adr-scribe/pkg/models"
)

// ArchitecturalVocabulary contains the words whose presence in a tool name
// or description suggests an architecturally significant decision.
var ArchitecturalVocabulary = []string{
	"architecture",
	"design",
	"framework",
	"system",
	"integration",
	"phase",
	"component",
	"service",
	"implementation",
	"structure",
	"pattern",
}

// SignificantFiles are path substrings whose modification suggests an
// architectural change (package manifests, build config, container files,
// environment files).
var SignificantFiles = []string{
	"package.json",
	"tsconfig.json",
	"webpack.config.js",
	"docker-compose.yml",
	"dockerfile",
	".env",
}

// Score weights for each independent check. Overlapping matches each
// contribute their full weight.
const (
	scoreToolName    = 3
	scoreDescription = 2
	scoreFileChanges = 4
	scoreAgentTask   = 2
)

// DefaultScoreThreshold is the minimum cumulative score that marks a
// tool-use event as significant.
const DefaultScoreThreshold = 7

const decisionOutputMax = 500

// ScoreToolUse computes the additive significance score for a tool-use event.
func ScoreToolUse(input hooks.PostToolUseInput) int {
	name := strings.ToLower(input.Name)
	description := strings.ToLower(input.Description)

	score := 0

	if containsAny(name, ArchitecturalVocabulary) {
		score += scoreToolName
	}
	if containsAny(description, ArchitecturalVocabulary) {
		score += scoreDescription
	}
	if anyFileChangeSignificant(input.FileChanges) {
		score += scoreFileChanges
	}
	if strings.Contains(name, "agent") || strings.Contains(name, "task") {
		score += scoreAgentTask
	}

	return score
}

// SignificantToolUse reports whether the event's score clears the threshold.
// A threshold of zero or below falls back to DefaultScoreThreshold.
func SignificantToolUse(input hooks.PostToolUseInput, threshold int) bool {
	if threshold <= 0 {
		threshold = DefaultScoreThreshold
	}
	return ScoreToolUse(input) >= threshold
}

// ExtractDecisionRecord builds an ADR record from a tool-use payload.
// Name and description fall back to placeholders when absent; the score
// gate has already run by the time extraction happens.
func ExtractDecisionRecord(input hooks.PostToolUseInput) models.Record {
	name := input.Name
	if name == "" {
		name = "Unknown Tool"
	}
	description := input.Description
	if description == "" {
		description = "No description provided"
	}

	context := fmt.Sprintf("Tool: %s\nDescription: %s\n\n"+
		"This decision was made automatically by a Claude Code agent during development.",
		name, description)

	decision := fmt.Sprintf("Implemented changes using %s:\n%s...",
		name, truncateRunes(input.Output, decisionOutputMax))

	consequences := "- System architecture has been modified\n" +
		"- Development workflow may be impacted\n" +
		"- Future development should consider these changes"

	return models.Record{
		Title:        fmt.Sprintf("Architectural Decision from %s", name),
		Context:      context,
		Decision:     decision,
		Consequences: consequences,
	}
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

func anyFileChangeSignificant(changes []string) bool {
	for _, change := range changes {
		if containsAny(strings.ToLower(change), SignificantFiles) {
			return true
		}
	}
	return false
}
