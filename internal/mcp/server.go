// Package mcp provides an MCP (Model Context Protocol) server that exposes
// the adrs classification heuristics as MCP tools for AI coding assistants.
package mcp

import (
	"context"
	"fmt"

	"github.com/valter-silva-au/adr-scribe/internal/core"
	"github.com/valter-silva-au/adr-scribe/internal/hooks"
	"github.com/valter-silva-au/adr-scribe/internal/observability"
	"github.com/valter-silva-au/adr-scribe/pkg/models"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the classification heuristics and the event log and exposes
// them as MCP tools.
type Server struct {
	server   *gomcp.Server
	hookCfg  models.HookConfig
	eventLog observability.EventLog
}

// NewServer creates a new MCP server. eventLog may be nil (list_events
// reports an error to the client in that case).
func NewServer(hookCfg models.HookConfig, eventLog observability.EventLog, version string) *Server {
	if version == "" {
		version = "dev"
	}

	s := &Server{
		hookCfg:  hookCfg,
		eventLog: eventLog,
	}

	s.server = gomcp.NewServer(
		&gomcp.Implementation{Name: "adrs", Version: version},
		nil,
	)

	s.registerTools()

	return s
}

// Run starts the MCP server on stdio, blocking until the client
// disconnects or the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &gomcp.StdioTransport{})
}

// MCPServer returns the underlying mcp.Server for testing purposes.
func (s *Server) MCPServer() *gomcp.Server {
	return s.server
}

// --- Tool input/output types ---

type classifyCompletionInput struct {
	Content string `json:"content" jsonschema:"required,the completion message to classify"`
}

type classifyCompletionOutput struct {
	Type        string `json:"type"`
	Significant bool   `json:"significant"`
	Title       string `json:"title"`
}

type scoreToolUseInput struct {
	Name        string   `json:"name" jsonschema:"the tool name"`
	Description string   `json:"description,omitempty" jsonschema:"the tool description"`
	FileChanges []string `json:"file_changes,omitempty" jsonschema:"paths of files the tool modified"`
}

type scoreToolUseOutput struct {
	Score       int  `json:"score"`
	Threshold   int  `json:"threshold"`
	Significant bool `json:"significant"`
}

type listEventsInput struct {
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of events to return (default 20)"`
	Type  string `json:"type,omitempty" jsonschema:"filter by event type (hook.completion or hook.post_tool_use)"`
}

type eventOutput struct {
	Time    string         `json:"time"`
	Type    string         `json:"type"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data,omitempty"`
}

type listEventsOutput struct {
	Events []eventOutput `json:"events"`
	Count  int           `json:"count"`
}

// --- Tool registration ---

func (s *Server) registerTools() {
	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "classify_completion",
		Description: "Classify a completion message: returns its type (phase, feature, integration, deployment, testing, general), whether it is significant enough for an ADR, and the record title it would produce.",
	}, s.handleClassifyCompletion)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "score_tool_use",
		Description: "Score a tool invocation for architectural significance. Returns the additive score, the configured threshold, and whether the event would trigger ADR generation.",
	}, s.handleScoreToolUse)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "list_events",
		Description: "List recorded hook outcomes from the event log, most recent last.",
	}, s.handleListEvents)
}

// --- Tool handlers ---

func (s *Server) handleClassifyCompletion(_ context.Context, _ *gomcp.CallToolRequest, input classifyCompletionInput) (*gomcp.CallToolResult, classifyCompletionOutput, error) {
	if input.Content == "" {
		return errorResult("content is required"), classifyCompletionOutput{}, nil
	}

	record := core.ExtractCompletionRecord(hooks.CompletionInput{Content: input.Content})
	out := classifyCompletionOutput{
		Type:        record.CompletionType,
		Significant: core.SignificantCompletion(input.Content),
		Title:       record.Title,
	}
	return nil, out, nil
}

func (s *Server) handleScoreToolUse(_ context.Context, _ *gomcp.CallToolRequest, input scoreToolUseInput) (*gomcp.CallToolResult, scoreToolUseOutput, error) {
	payload := hooks.PostToolUseInput{
		Name:        input.Name,
		Description: input.Description,
		FileChanges: input.FileChanges,
	}

	threshold := s.hookCfg.PostToolUse.Threshold
	if threshold <= 0 {
		threshold = core.DefaultScoreThreshold
	}

	out := scoreToolUseOutput{
		Score:       core.ScoreToolUse(payload),
		Threshold:   threshold,
		Significant: core.SignificantToolUse(payload, threshold),
	}
	return nil, out, nil
}

func (s *Server) handleListEvents(_ context.Context, _ *gomcp.CallToolRequest, input listEventsInput) (*gomcp.CallToolResult, listEventsOutput, error) {
	if s.eventLog == nil {
		return errorResult("event log not available"), listEventsOutput{}, nil
	}

	limit := input.Limit
	if limit <= 0 {
		limit = 20
	}

	events, err := s.eventLog.Tail(limit)
	if err != nil {
		return errorResult(fmt.Sprintf("reading event log: %s", err)), listEventsOutput{}, nil
	}

	out := listEventsOutput{}
	for _, e := range events {
		if input.Type != "" && e.Type != input.Type {
			continue
		}
		out.Events = append(out.Events, eventOutput{
			Time:    e.Time.Format("2006-01-02T15:04:05Z07:00"),
			Type:    e.Type,
			Message: e.Message,
			Data:    e.Data,
		})
	}
	out.Count = len(out.Events)

	return nil, out, nil
}

// errorResult builds a CallToolResult carrying an error message.
func errorResult(msg string) *gomcp.CallToolResult {
	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: msg}},
		IsError: true,
	}
}
