package core

import (
	"fmt"
	"io"
	"os"

	"github.com/valter-silva-au/adr-scribe/internal/hooks"
	"github.com/valter-silva-au/adr-scribe/pkg/models"
)

// ADRGenerator is the subset of the integration layer's generator that the
// engine needs. Defining it here avoids importing the integration package.
type ADRGenerator interface {
	Generate(record models.Record) models.GenerateResult
}

// EventLogger is the subset of the observability event log that core
// services need. Defining it here avoids importing the observability package.
type EventLogger interface {
	LogEvent(eventType string, data map[string]any) error
}

// HookEngine processes Claude Code hook events: it classifies payloads,
// gates on significance, and requests ADR generation for the significant
// ones. Both handlers are non-blocking: outcomes are reported on stdout
// and in the event log, never as errors, so hooks always exit zero.
type HookEngine interface {
	// HandleCompletion classifies a completion event and generates an ADR
	// when the content is significant.
	HandleCompletion(input hooks.CompletionInput) error

	// HandlePostToolUse scores a tool-use event and generates an ADR when
	// the score clears the configured threshold.
	HandlePostToolUse(input hooks.PostToolUseInput) error
}

type hookEngine struct {
	config    models.HookConfig
	generator ADRGenerator
	events    EventLogger // optional
	out       io.Writer
}

// NewHookEngine creates a HookEngine with the given configuration.
// events may be nil (outcome logging disabled).
func NewHookEngine(config models.HookConfig, generator ADRGenerator, events EventLogger) HookEngine {
	return &hookEngine{
		config:    config,
		generator: generator,
		events:    events,
		out:       os.Stdout,
	}
}

// newHookEngineWithOutput creates a HookEngine writing status lines to the
// given writer, for testing.
func newHookEngineWithOutput(config models.HookConfig, generator ADRGenerator, events EventLogger, out io.Writer) HookEngine {
	return &hookEngine{
		config:    config,
		generator: generator,
		events:    events,
		out:       out,
	}
}

// HandleCompletion classifies and records a completion event.
// Always returns nil.
func (e *hookEngine) HandleCompletion(input hooks.CompletionInput) error {
	if !e.config.Enabled || !e.config.Completion.Enabled {
		return nil
	}

	if !SignificantCompletion(input.Content) {
		fmt.Fprintln(e.out, "Completion not significant enough for ADR generation")
		return nil
	}

	fmt.Fprintln(e.out, "Significant completion detected, generating ADR...")

	record := ExtractCompletionRecord(input)
	result := e.generator.Generate(record)

	switch result.Outcome {
	case models.OutcomeSuccess:
		fmt.Fprintf(e.out, "Completion ADR generated: %s\n", result.Output)
	case models.OutcomeGeneratorMissing:
		fmt.Fprintln(e.out, result.Message)
	case models.OutcomeGeneratorFailed:
		fmt.Fprintf(e.out, "Completion ADR generation failed: %s\n", result.Stderr)
	case models.OutcomeUnexpectedError:
		fmt.Fprintf(e.out, "Error generating completion ADR: %s\n", result.Message)
	}

	if result.Succeeded() {
		fmt.Fprintf(e.out, "✅ Completion ADR generated for %s\n", record.CompletionType)
	} else {
		fmt.Fprintln(e.out, "❌ Completion ADR generation failed")
	}

	e.logOutcome("hook.completion", record, result, map[string]any{
		"completion_type": record.CompletionType,
	})

	return nil
}

// HandlePostToolUse scores and records a tool-use event.
// Always returns nil.
func (e *hookEngine) HandlePostToolUse(input hooks.PostToolUseInput) error {
	if !e.config.Enabled || !e.config.PostToolUse.Enabled {
		return nil
	}

	score := ScoreToolUse(input)
	if !SignificantToolUse(input, e.config.PostToolUse.Threshold) {
		fmt.Fprintln(e.out, "Tool usage not significant enough for ADR generation")
		return nil
	}

	fmt.Fprintln(e.out, "Significant architectural decision detected, generating ADR...")

	record := ExtractDecisionRecord(input)
	result := e.generator.Generate(record)

	switch result.Outcome {
	case models.OutcomeSuccess:
		fmt.Fprintf(e.out, "ADR generated successfully: %s\n", result.Output)
	case models.OutcomeGeneratorMissing:
		fmt.Fprintln(e.out, result.Message)
	case models.OutcomeGeneratorFailed:
		fmt.Fprintf(e.out, "ADR generation failed: %s\n", result.Stderr)
	case models.OutcomeUnexpectedError:
		fmt.Fprintf(e.out, "Error generating ADR: %s\n", result.Message)
	}

	if result.Succeeded() {
		fmt.Fprintln(e.out, "✅ ADR generated successfully")
	} else {
		fmt.Fprintln(e.out, "❌ ADR generation failed")
	}

	e.logOutcome("hook.post_tool_use", record, result, map[string]any{
		"tool":  input.Name,
		"score": score,
	})

	return nil
}

// logOutcome records the generation outcome in the event log. Failures to
// log never affect the hook outcome.
func (e *hookEngine) logOutcome(eventType string, record models.Record, result models.GenerateResult, extra map[string]any) {
	if e.events == nil {
		return
	}
	data := map[string]any{
		"title":   record.Title,
		"outcome": result.Outcome.String(),
	}
	for k, v := range extra {
		data[k] = v
	}
	if err := e.events.LogEvent(eventType, data); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log hook outcome: %v\n", err)
	}
}
