// Package observability provides the append-only event log that records
// hook outcomes for adr-scribe. It uses structured JSON Lines (JSONL) so
// the `adrs events` command and the MCP server can inspect past hook runs
// without any database.
package observability
