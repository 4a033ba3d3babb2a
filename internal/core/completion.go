// Package core contains the classification logic for adr-scribe: completion
// type detection, significance heuristics, tool-use scoring, and record
// extraction for ADR generation.
package core

import (
	"fmt"
	"strings"

	"github.com/valter-silva-au/adr-scribe/internal/hooks"
	"github.com/valter-silva-au/adr-scribe/pkg/models"
)

// CompletionType labels what kind of development completion an event describes.
type CompletionType string

// Completion type labels, in classification priority order.
const (
	CompletionPhase       CompletionType = "phase"
	CompletionFeature     CompletionType = "feature"
	CompletionIntegration CompletionType = "integration"
	CompletionDeployment  CompletionType = "deployment"
	CompletionTesting     CompletionType = "testing"
	CompletionGeneral     CompletionType = "general"
)

// CompletionTypeKeywords pairs a completion type with the keywords that
// select it. ClassifyCompletion scans the table in order and the first
// matching entry wins, so declaration order is the tie-break policy.
type CompletionTypeKeywords struct {
	Type     CompletionType
	Keywords []string
}

// CompletionTypes is the ordered classification table.
var CompletionTypes = []CompletionTypeKeywords{
	{CompletionPhase, []string{"phase", "group", "stage", "milestone"}},
	{CompletionFeature, []string{"feature", "component", "service", "module"}},
	{CompletionIntegration, []string{"integration", "connection", "api"}},
	{CompletionDeployment, []string{"deployment", "build", "release"}},
	{CompletionTesting, []string{"test", "validation", "verification"}},
}

// SignificanceIndicators are the phrases that mark a completion as worth
// recording. Matching is case-insensitive substring containment.
var SignificanceIndicators = []string{
	"phase complete",
	"implementation complete",
	"success",
	"deliverable",
	"milestone",
	"architecture",
	"system",
	"100%",
	"finished",
	"deployed",
	"integrated",
}

// completionTitles maps each completion type to its record title.
var completionTitles = map[CompletionType]string{
	CompletionPhase:       "Phase Completion",
	CompletionFeature:     "Feature Implementation Completion",
	CompletionIntegration: "Integration Completion",
	CompletionDeployment:  "Deployment Completion",
	CompletionTesting:     "Testing Phase Completion",
	CompletionGeneral:     "Development Milestone Completion",
}

// achievementWords select content lines worth listing as achievements,
// alongside the checkmark glyph.
var achievementWords = []string{"complete", "success", "implemented"}

const (
	achievementLimit       = 5
	completionDecisionMax  = 800
	checkmark              = "✅"
	completionContextLead  = "Development milestone reached in the project."
	completionDecisionTail = "This represents a significant milestone in the project development."
)

// ClassifyCompletion returns the completion type for the given content.
// The first entry of CompletionTypes whose keywords appear in the
// lower-cased content wins; content matching no entry is "general".
func ClassifyCompletion(content string) CompletionType {
	lowered := strings.ToLower(content)
	for _, entry := range CompletionTypes {
		for _, kw := range entry.Keywords {
			if strings.Contains(lowered, kw) {
				return entry.Type
			}
		}
	}
	return CompletionGeneral
}

// SignificantCompletion reports whether the content contains at least one
// significance indicator.
func SignificantCompletion(content string) bool {
	lowered := strings.ToLower(content)
	for _, indicator := range SignificanceIndicators {
		if strings.Contains(lowered, indicator) {
			return true
		}
	}
	return false
}

// ExtractCompletionRecord builds an ADR record from a completion payload.
func ExtractCompletionRecord(input hooks.CompletionInput) models.Record {
	content := input.Content
	completionType := ClassifyCompletion(content)

	var sb strings.Builder
	sb.WriteString(completionContextLead)
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("Type: %s\n", titleCase(string(completionType))))
	sb.WriteString("Completion detected by Claude Code agent monitoring.\n\n")
	sb.WriteString("Key achievements identified:\n")
	for _, a := range extractAchievements(content) {
		sb.WriteString(fmt.Sprintf("- %s\n", a))
	}

	decision := fmt.Sprintf("Completed %s with the following outcomes:\n\n%s...\n\n%s",
		completionType, truncateRunes(content, completionDecisionMax), completionDecisionTail)

	consequences := fmt.Sprintf(
		"- %s functionality is now available\n"+
			"- Project has progressed to the next development stage\n"+
			"- Architecture has been enhanced with new capabilities\n"+
			"- Ready for subsequent development phases",
		titleCase(string(completionType)))

	return models.Record{
		Title:          completionTitles[completionType],
		Context:        sb.String(),
		Decision:       decision,
		Consequences:   consequences,
		CompletionType: string(completionType),
	}
}

// extractAchievements scans content lines for checkmarks or achievement
// words and returns at most achievementLimit cleaned entries.
func extractAchievements(content string) []string {
	var achievements []string
	for _, line := range strings.Split(content, "\n") {
		if len(achievements) == achievementLimit {
			break
		}
		lowered := strings.ToLower(line)
		matched := strings.Contains(line, checkmark)
		for _, w := range achievementWords {
			if matched {
				break
			}
			matched = strings.Contains(lowered, w)
		}
		if !matched {
			continue
		}
		cleaned := strings.TrimSpace(strings.ReplaceAll(line, checkmark, ""))
		achievements = append(achievements, cleaned)
	}
	return achievements
}

// truncateRunes returns the first max runes of s. The cut is a hard slice:
// truncating mid-word is expected.
func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

// titleCase upper-cases the first rune of s.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	return strings.ToUpper(string(runes[0])) + string(runes[1:])
}
