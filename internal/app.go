// Package internal provides the App struct that wires all components of the
// ADR Scribe system together and initializes the CLI layer.
package internal

import (
	"os"
	"path/filepath"
	"time"

	"github.com/valter-silva-au/adr-scribe/internal/cli"
	"github.com/valter-silva-au/adr-scribe/internal/core"
	"github.com/valter-silva-au/adr-scribe/internal/integration"
	"github.com/valter-silva-au/adr-scribe/internal/observability"
)

// App holds all service dependencies for the ADR Scribe system.
type App struct {
	BasePath string

	// Configuration
	ConfigMgr core.ConfigurationManager

	// Integration services
	Generator integration.ADRGenerator

	// Core services
	HookEngine core.HookEngine

	// Observability
	EventLog observability.EventLog
}

// NewApp creates and wires all components of the ADR Scribe system.
// basePath is the project root: the directory holding .adrconfig and from
// which the generator script is resolved and run.
func NewApp(basePath string) (*App, error) {
	app := &App{BasePath: basePath}

	// --- Configuration ---
	app.ConfigMgr = core.NewConfigurationManager(basePath)
	globalCfg, err := app.ConfigMgr.LoadGlobalConfig()
	if err != nil {
		return nil, err
	}

	// --- Observability ---
	eventLogPath := filepath.Join(basePath, ".adrs_events.jsonl")
	app.EventLog, err = observability.NewJSONLEventLog(eventLogPath)
	if err != nil {
		// Non-fatal: disable outcome logging if the log can't be created.
		app.EventLog = nil
	}

	// --- Integration services ---
	app.Generator = integration.NewADRGenerator(basePath, globalCfg)

	// --- Hook engine ---
	var evtAdapter core.EventLogger
	if app.EventLog != nil {
		evtAdapter = &eventLogAdapter{log: app.EventLog}
	}
	app.HookEngine = core.NewHookEngine(globalCfg.Hooks, app.Generator, evtAdapter)

	// --- Wire CLI package-level variables ---
	cli.BasePath = basePath
	cli.Config = globalCfg
	cli.HookEngine = app.HookEngine
	cli.EventLog = app.EventLog

	return app, nil
}

// Close releases resources held by the App, such as the event log file handle.
// It is safe to call Close on an App whose EventLog is nil.
func (a *App) Close() error {
	if a.EventLog != nil {
		return a.EventLog.Close()
	}
	return nil
}

// ResolveBasePath determines the project root. It checks the ADRS_HOME env
// var, then walks up from the current directory looking for .adrconfig, and
// falls back to the current directory.
func ResolveBasePath() string {
	if home := os.Getenv("ADRS_HOME"); home != "" {
		return home
	}
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, ".adrconfig")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	// Fall back to cwd.
	cwd, _ := os.Getwd()
	return cwd
}

// --- Adapters ---

// eventLogAdapter adapts observability.EventLog to core.EventLogger.
type eventLogAdapter struct {
	log observability.EventLog
}

func (a *eventLogAdapter) LogEvent(eventType string, data map[string]any) error {
	return a.log.Write(observability.Event{
		Time:    time.Now().UTC(),
		Level:   "INFO",
		Type:    eventType,
		Message: eventType,
		Data:    data,
	})
}
