package internal

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/valter-silva-au/adr-scribe/internal/hooks"
	"github.com/valter-silva-au/adr-scribe/internal/observability"
)

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

// newTestApp creates a fully wired App in a temporary directory.
// The event log is closed automatically when the test finishes.
func newTestApp(t *testing.T) *App {
	t.Helper()
	dir := t.TempDir()
	app, err := NewApp(dir)
	if err != nil {
		t.Fatalf("creating test app: %v", err)
	}
	t.Cleanup(func() { _ = app.Close() })
	return app
}

// newTestAppWithConfig creates a fully wired App with a custom .adrconfig.
// The event log is closed automatically when the test finishes.
func newTestAppWithConfig(t *testing.T, configYAML string) *App {
	t.Helper()
	dir := t.TempDir()
	if configYAML != "" {
		if err := os.WriteFile(filepath.Join(dir, ".adrconfig"), []byte(configYAML), 0o644); err != nil {
			t.Fatalf("writing .adrconfig: %v", err)
		}
	}
	app, err := NewApp(dir)
	if err != nil {
		t.Fatalf("creating test app: %v", err)
	}
	t.Cleanup(func() { _ = app.Close() })
	return app
}

// writeGeneratorScript writes a shell script acting as the ADR generator and
// returns an .adrconfig snippet pointing at it.
func writeGeneratorScript(t *testing.T, dir, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, "gen.sh"), []byte("#!/bin/sh\n"+body+"\n"), 0o755); err != nil {
		t.Fatalf("writing generator script: %v", err)
	}
}

const shellGeneratorConfig = `generator_command: /bin/sh
generator_script: gen.sh
`

// =========================================================================
// 1. End-to-end completion hook: payload -> classification -> generator -> log
// =========================================================================

func TestIntegration_CompletionHook_Success(t *testing.T) {
	app := newTestAppWithConfig(t, shellGeneratorConfig)
	writeGeneratorScript(t, app.BasePath, `echo "ADR created: docs/adr/0001-phase.md"`)

	err := app.HookEngine.HandleCompletion(hooks.CompletionInput{
		Content: "✅ Phase 1 complete: all services deployed at 100%",
	})
	if err != nil {
		t.Fatalf("HandleCompletion() error = %v", err)
	}

	events, err := app.EventLog.Read(observability.EventFilter{Type: "hook.completion"})
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 completion event, got %d", len(events))
	}

	e := events[0]
	if outcome, _ := e.Data["outcome"].(string); outcome != "success" {
		t.Errorf("outcome = %q, want success", outcome)
	}
	if ct, _ := e.Data["completion_type"].(string); ct != "phase" {
		t.Errorf("completion_type = %q, want phase", ct)
	}
	if title, _ := e.Data["title"].(string); title != "Phase Completion" {
		t.Errorf("title = %q, want Phase Completion", title)
	}
}

func TestIntegration_CompletionHook_InsignificantNotLogged(t *testing.T) {
	app := newTestAppWithConfig(t, shellGeneratorConfig)
	writeGeneratorScript(t, app.BasePath, `echo "should never run"`)

	err := app.HookEngine.HandleCompletion(hooks.CompletionInput{
		Content: "tweaked a log message",
	})
	if err != nil {
		t.Fatalf("HandleCompletion() error = %v", err)
	}

	events, err := app.EventLog.Read(observability.EventFilter{})
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 0 {
		t.Fatalf("expected no events for insignificant completion, got %d", len(events))
	}
}

func TestIntegration_CompletionHook_MissingGenerator(t *testing.T) {
	// Default config points at scripts/generate-adr.js, which doesn't exist
	// in the temp dir. The hook must stay non-blocking and record the miss.
	app := newTestApp(t)

	err := app.HookEngine.HandleCompletion(hooks.CompletionInput{
		Content: "milestone reached, integration complete",
	})
	if err != nil {
		t.Fatalf("HandleCompletion() error = %v", err)
	}

	events, err := app.EventLog.Read(observability.EventFilter{Type: "hook.completion"})
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 completion event, got %d", len(events))
	}
	if outcome, _ := events[0].Data["outcome"].(string); outcome != "generator_missing" {
		t.Errorf("outcome = %q, want generator_missing", outcome)
	}
}

// =========================================================================
// 2. End-to-end post-tool-use hook: payload -> score -> generator -> log
// =========================================================================

func TestIntegration_PostToolUseHook_Success(t *testing.T) {
	app := newTestAppWithConfig(t, shellGeneratorConfig)
	writeGeneratorScript(t, app.BasePath, `echo "ADR created: docs/adr/0002-decision.md"`)

	// architecture in name (+3), design in description (+2), agent (+2) = 7.
	err := app.HookEngine.HandlePostToolUse(hooks.PostToolUseInput{
		Name:        "architecture-agent",
		Description: "redesign the service layout",
		Output:      "moved services behind a gateway",
	})
	if err != nil {
		t.Fatalf("HandlePostToolUse() error = %v", err)
	}

	events, err := app.EventLog.Read(observability.EventFilter{Type: "hook.post_tool_use"})
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 post-tool-use event, got %d", len(events))
	}

	e := events[0]
	if outcome, _ := e.Data["outcome"].(string); outcome != "success" {
		t.Errorf("outcome = %q, want success", outcome)
	}
	if tool, _ := e.Data["tool"].(string); tool != "architecture-agent" {
		t.Errorf("tool = %q, want architecture-agent", tool)
	}
	if score, _ := e.Data["score"].(float64); int(score) != 7 {
		t.Errorf("score = %v, want 7", score)
	}
}

func TestIntegration_PostToolUseHook_BelowThreshold(t *testing.T) {
	app := newTestAppWithConfig(t, shellGeneratorConfig)
	writeGeneratorScript(t, app.BasePath, `echo "should never run"`)

	err := app.HookEngine.HandlePostToolUse(hooks.PostToolUseInput{
		Name:        "formatter",
		Description: "reformat source files",
	})
	if err != nil {
		t.Fatalf("HandlePostToolUse() error = %v", err)
	}

	events, err := app.EventLog.Read(observability.EventFilter{})
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 0 {
		t.Fatalf("expected no events below threshold, got %d", len(events))
	}
}

func TestIntegration_PostToolUseHook_CustomThreshold(t *testing.T) {
	config := shellGeneratorConfig + `hooks:
  enabled: true
  post_tool_use:
    enabled: true
    threshold: 4
`
	app := newTestAppWithConfig(t, config)
	writeGeneratorScript(t, app.BasePath, `echo "ADR created: docs/adr/0003.md"`)

	// design in description (+2), task in name (+2) = 4: clears the lowered bar.
	err := app.HookEngine.HandlePostToolUse(hooks.PostToolUseInput{
		Name:        "task-runner",
		Description: "apply the new design",
	})
	if err != nil {
		t.Fatalf("HandlePostToolUse() error = %v", err)
	}

	events, err := app.EventLog.Read(observability.EventFilter{Type: "hook.post_tool_use"})
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event with threshold 4, got %d", len(events))
	}
}

func TestIntegration_PostToolUseHook_GeneratorFailure(t *testing.T) {
	app := newTestAppWithConfig(t, shellGeneratorConfig)
	writeGeneratorScript(t, app.BasePath, `echo "generator exploded" >&2
exit 3`)

	err := app.HookEngine.HandlePostToolUse(hooks.PostToolUseInput{
		Name:        "architecture-agent",
		Description: "redesign the service layout",
	})
	if err != nil {
		t.Fatalf("HandlePostToolUse() must stay non-blocking, got error = %v", err)
	}

	events, err := app.EventLog.Read(observability.EventFilter{Type: "hook.post_tool_use"})
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if outcome, _ := events[0].Data["outcome"].(string); outcome != "generator_failed" {
		t.Errorf("outcome = %q, want generator_failed", outcome)
	}
}

// =========================================================================
// 3. Hook gating from config
// =========================================================================

func TestIntegration_HooksDisabled(t *testing.T) {
	config := shellGeneratorConfig + `hooks:
  enabled: false
`
	app := newTestAppWithConfig(t, config)
	writeGeneratorScript(t, app.BasePath, `echo "should never run"`)

	if err := app.HookEngine.HandleCompletion(hooks.CompletionInput{
		Content: "✅ Phase 1 complete, deployed at 100%",
	}); err != nil {
		t.Fatalf("HandleCompletion() error = %v", err)
	}
	if err := app.HookEngine.HandlePostToolUse(hooks.PostToolUseInput{
		Name:        "architecture-agent",
		Description: "redesign the system",
		FileChanges: []string{"package.json"},
	}); err != nil {
		t.Fatalf("HandlePostToolUse() error = %v", err)
	}

	events, err := app.EventLog.Read(observability.EventFilter{})
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 0 {
		t.Fatalf("expected no events with hooks disabled, got %d", len(events))
	}
}

func TestIntegration_CompletionHookDisabledIndividually(t *testing.T) {
	config := shellGeneratorConfig + `hooks:
  enabled: true
  completion:
    enabled: false
`
	app := newTestAppWithConfig(t, config)
	writeGeneratorScript(t, app.BasePath, `echo "ADR created: docs/adr/0004.md"`)

	if err := app.HookEngine.HandleCompletion(hooks.CompletionInput{
		Content: "✅ Phase 1 complete, deployed at 100%",
	}); err != nil {
		t.Fatalf("HandleCompletion() error = %v", err)
	}

	// The post-tool-use hook keeps working.
	if err := app.HookEngine.HandlePostToolUse(hooks.PostToolUseInput{
		Name:        "architecture-agent",
		Description: "redesign the service layout",
	}); err != nil {
		t.Fatalf("HandlePostToolUse() error = %v", err)
	}

	completions, err := app.EventLog.Read(observability.EventFilter{Type: "hook.completion"})
	if err != nil {
		t.Fatal(err)
	}
	if len(completions) != 0 {
		t.Fatalf("expected no completion events, got %d", len(completions))
	}

	toolUses, err := app.EventLog.Read(observability.EventFilter{Type: "hook.post_tool_use"})
	if err != nil {
		t.Fatal(err)
	}
	if len(toolUses) != 1 {
		t.Fatalf("expected 1 post-tool-use event, got %d", len(toolUses))
	}
}

// =========================================================================
// 4. Generator argument contract
// =========================================================================

func TestIntegration_GeneratorReceivesRecordFields(t *testing.T) {
	app := newTestAppWithConfig(t, shellGeneratorConfig)
	// The generator gets [script, title, context, decision]; capture them.
	writeGeneratorScript(t, app.BasePath, `printf '%s\n' "$1" > args.txt
printf '%s\n' "$2" >> args.txt
echo "ADR created"`)

	err := app.HookEngine.HandleCompletion(hooks.CompletionInput{
		Content: "✅ Phase 2 complete: rollout finished at 100%",
	})
	if err != nil {
		t.Fatalf("HandleCompletion() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(app.BasePath, "args.txt"))
	if err != nil {
		t.Fatalf("generator should have run from the base path: %v", err)
	}
	got := string(data)
	if want := "Phase Completion\n"; !strings.HasPrefix(got, want) {
		t.Errorf("first generator arg = %q, want leading %q", got, want)
	}
}
