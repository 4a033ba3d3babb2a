package cli

import (
	"github.com/valter-silva-au/adr-scribe/internal/core"
	"github.com/valter-silva-au/adr-scribe/internal/observability"
	"github.com/valter-silva-au/adr-scribe/pkg/models"
)

// Service instances shared by the CLI commands, set during app
// initialization in app.go.
var (
	// BasePath is the resolved workspace root (directory holding .adrconfig).
	BasePath string

	// Config is the loaded global configuration.
	Config *models.GlobalConfig

	// HookEngine handles hook payloads. Nil when initialization failed;
	// hook commands degrade gracefully in that case.
	HookEngine core.HookEngine

	// EventLog records hook outcomes. May be nil (logging disabled).
	EventLog observability.EventLog
)
