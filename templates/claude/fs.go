// Package claude embeds the Claude Code hook wrapper scripts installed by
// `adrs hook install`.
package claude

import "embed"

// FS holds the hook wrapper shell scripts.
//
//go:embed hooks/*.sh
var FS embed.FS
