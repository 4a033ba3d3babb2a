// Package integration handles invocation of external collaborators,
// currently the ADR generator script.
package integration

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/valter-silva-au/adr-scribe/pkg/models"
)

// ADRGenerator persists extracted records by delegating to the external
// generator script. The script's persistence format and numbering scheme
// are its own concern.
type ADRGenerator interface {
	Generate(record models.Record) models.GenerateResult
}

// scriptRunner runs a command in dir and returns captured output streams
// and the exit code. err is non-nil only when the command could not be
// started.
type scriptRunner func(dir, name string, args ...string) (stdout, stderr string, exitCode int, err error)

type scriptGenerator struct {
	basePath string
	command  string
	script   string
	runner   scriptRunner
}

// NewADRGenerator creates an ADRGenerator that runs cfg.GeneratorScript
// with cfg.GeneratorCommand from basePath.
func NewADRGenerator(basePath string, cfg *models.GlobalConfig) ADRGenerator {
	return &scriptGenerator{
		basePath: basePath,
		command:  cfg.GeneratorCommand,
		script:   cfg.GeneratorScript,
		runner:   runScript,
	}
}

// newScriptGeneratorWithRunner creates a generator with an injectable
// runner for testing.
func newScriptGeneratorWithRunner(basePath string, cfg *models.GlobalConfig, runner scriptRunner) *scriptGenerator {
	return &scriptGenerator{
		basePath: basePath,
		command:  cfg.GeneratorCommand,
		script:   cfg.GeneratorScript,
		runner:   runner,
	}
}

// Generate invokes the generator script with the record's title, context,
// and decision as positional arguments. A missing script short-circuits
// without starting a subprocess.
func (g *scriptGenerator) Generate(record models.Record) models.GenerateResult {
	scriptPath := g.script
	if !filepath.IsAbs(scriptPath) {
		scriptPath = filepath.Join(g.basePath, scriptPath)
	}

	if _, err := os.Stat(scriptPath); err != nil {
		return models.GenerateResult{
			Outcome: models.OutcomeGeneratorMissing,
			Message: fmt.Sprintf("ADR script not found: %s", scriptPath),
		}
	}

	stdout, stderr, exitCode, err := g.runner(g.basePath, g.command,
		scriptPath, record.Title, record.Context, record.Decision)
	if err != nil {
		return models.GenerateResult{
			Outcome: models.OutcomeUnexpectedError,
			Message: err.Error(),
		}
	}
	if exitCode != 0 {
		return models.GenerateResult{
			Outcome: models.OutcomeGeneratorFailed,
			Stderr:  stderr,
		}
	}

	return models.GenerateResult{
		Outcome: models.OutcomeSuccess,
		Output:  strings.TrimSpace(stdout),
	}
}

// runScript executes the command with exec.Command, capturing both output
// streams. There is no timeout: the call blocks until the generator exits.
func runScript(dir, name string, args ...string) (string, string, int, error) {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	err := cmd.Run()

	exitCode := 0
	if err != nil {
		exitErr, ok := err.(*exec.ExitError)
		if !ok {
			// Command could not be started (e.g., interpreter not found).
			return stdoutBuf.String(), stderrBuf.String(), 0, fmt.Errorf("executing %s: %w", name, err)
		}
		exitCode = exitErr.ExitCode()
	}

	return stdoutBuf.String(), stderrBuf.String(), exitCode, nil
}
