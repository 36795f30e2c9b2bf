// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes chatutil helpers as MCP tools over stdio.
package mcpserver

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/erraggy/chatutil"
	"github.com/erraggy/chatutil/markup"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `chatutil MCP server: recases chat API payloads, extracts acronyms, converts colors and matches message markup.

Configuration: All defaults are configurable via CHATUTIL_* environment variables set in your MCP client config.

Key settings:
- CHATUTIL_MAX_INPUT_SIZE (default: 1048576) - maximum bytes of inline content per argument
- CHATUTIL_MAX_MATCHES (default: 100) - default result limit for match with all=true
- CHATUTIL_MAX_LIMIT (default: 1000) - upper bound for any explicit limit
- CHATUTIL_MAX_DELAY (default: 10s) - longest wait accepted by the delay tool
- CHATUTIL_LOG_LEVEL (default: warn) - stderr log level (debug, info, warn, error)`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	server, err := newServer(logger)
	if err != nil {
		return err
	}
	return server.Run(ctx, &mcp.StdioTransport{})
}

// newServer builds the MCP server with every tool registered.
func newServer(logger *slog.Logger) (*mcp.Server, error) {
	tools, err := newToolset(logger)
	if err != nil {
		return nil, err
	}
	server := mcp.NewServer(
		&mcp.Implementation{Name: "chatutil", Version: chatutil.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	tools.register(server)
	return server, nil
}

// toolset carries the shared state behind the tool handlers.
type toolset struct {
	matcher *markup.Matcher
	logger  *slog.Logger
}

func newToolset(logger *slog.Logger) (*toolset, error) {
	matcher, err := markup.NewMatcher(markup.WithLogger(markup.NewSlogAdapter(logger)))
	if err != nil {
		return nil, fmt.Errorf("mcpserver: creating matcher: %w", err)
	}
	return &toolset{matcher: matcher, logger: logger}, nil
}

func (ts *toolset) register(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "camel_case",
		Description: "Convert snake_case keys to camelCase. Pass key to convert a single key, or content to convert every mapping key of a JSON or YAML document recursively. Keys listed in skip keep their name and their value is copied unchanged; by default skip applies to the top-level mapping only, set deep_skip to apply it at every depth. The converted document is returned in the input format.",
	}, ts.handleCamelCase)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "acronym",
		Description: "Build the acronym of a guild or channel name: the first character of every word, punctuation kept and whitespace removed. For example \"Hello World\" becomes \"HW\".",
	}, ts.handleAcronym)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "color",
		Description: "Convert a color between its packed integer, hex and RGB forms. Accepts \"#rrggbb\", \"0xrrggbb\", a decimal integer, or an \"r,g,b\" triple.",
	}, ts.handleColor)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "match",
		Description: "Match message markup against a named pattern (EMOJI, MENTION_CHANNEL, MENTION_ROLE, MENTION_USER, TEXT_BOLD, TEXT_CODEBLOCK, TEXT_CODESTRING, TEXT_ITALICS, TEXT_SNOWFLAKE, TEXT_SPOILER, TEXT_STRIKE, TEXT_UNDERLINE, TEXT_URL). Returns the first match with its extracted fields, or every match with all=true. Use limit to bound results; the default is configurable via CHATUTIL_MAX_MATCHES.",
	}, ts.handleMatch)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "patterns",
		Description: "List the registered markup patterns with their regular expressions and whether match can extract fields for them.",
	}, ts.handlePatterns)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delay",
		Description: "Wait for the given number of milliseconds, then return. Zero or negative values return immediately. The maximum is configurable via CHATUTIL_MAX_DELAY.",
	}, ts.handleDelay)
}

// checkInputSize rejects inline content larger than cfg.MaxInputSize.
func checkInputSize(field, content string) error {
	if int64(len(content)) > cfg.MaxInputSize {
		return fmt.Errorf("%s size %d bytes exceeds maximum %d bytes; set CHATUTIL_MAX_INPUT_SIZE to increase",
			field, len(content), cfg.MaxInputSize)
	}
	return nil
}

// clampLimit applies the configured default and upper bound to a limit.
// A non-positive limit defaults to cfg.MatchLimit.
func clampLimit(limit int) int {
	if limit <= 0 {
		limit = cfg.MatchLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	return limit
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	text := ""
	if err != nil {
		text = err.Error()
	}
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}
