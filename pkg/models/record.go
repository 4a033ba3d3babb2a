package models

// Record is an Architecture Decision Record draft extracted from a hook
// payload. It exists only long enough to be handed to the external ADR
// generator; nothing in adr-scribe persists it.
type Record struct {
	Title        string
	Context      string
	Decision     string
	Consequences string

	// CompletionType is set only for records extracted from completion
	// events (phase, feature, integration, deployment, testing, general).
	CompletionType string
}
