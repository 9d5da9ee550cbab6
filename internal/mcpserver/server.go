// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes casekit capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"log/slog"
	"os"
	"regexp"

	"github.com/erraggy/casekit"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `casekit MCP server: converts identifiers and text between naming conventions, formats JSON, and builds CSS gradients.

Text can be passed inline as content or read from a file path. Use tokenize to see how text splits into words before converting; every case style is rebuilt from those words.

Configuration comes from CASEKIT_* environment variables set in your MCP client config:
- CASEKIT_MAX_INPUT_SIZE (default: 10485760) maximum bytes of inline content or file input
- CASEKIT_DEFAULT_STYLES (default: all) comma-separated styles convert_case renders when none are requested
- CASEKIT_JSON_INDENT (default: 2) json_format indent in spaces
- CASEKIT_LOG_LEVEL (default: warn) server log level; logs go to stderr`

// logger writes to stderr because stdout carries the MCP transport.
var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "casekit", Version: casekit.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	logger.Info("starting MCP server", "version", casekit.Version())
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert_case",
		Description: "Convert text to one or more case styles: camelCase, PascalCase, snake_case, kebab-case, SCREAMING_SNAKE_CASE, Title Case, UPPERCASE, lowercase, Sentence case. Style names are matched loosely (snake, kebab, constant, title). Returns every style when none are requested unless CASEKIT_DEFAULT_STYLES is set. Set lines=true to convert each line of the input separately, e.g. a column of identifiers.",
	}, handleConvertCase)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "tokenize",
		Description: "Split text into the normalized lowercase words that every case style is built from. Boundaries fall between a lowercase and an uppercase letter, before the last capital of an acronym followed by a lowercase letter (XMLHttp -> xml, http), and at whitespace, underscores, and hyphens.",
	}, handleTokenize)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_styles",
		Description: "List the supported case styles with their display names, identifier names, examples, and accepted aliases.",
	}, handleListStyles)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "json_format",
		Description: "Pretty-print, minify, or validate a JSON document. mode is format (default), minify, or validate. Invalid JSON reports the line and column of the first error. Key order is preserved unless sort_keys=true. Default indent is configurable via CASEKIT_JSON_INDENT.",
	}, handleJSONFormat)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "gradient_css",
		Description: "Build a CSS gradient from a type (linear, radial, conic), an angle in degrees (0-360, ignored for radial), and 2 to 5 color stops with #rgb or #rrggbb colors and 0-100 positions. Returns the gradient function and a complete background declaration. Stops are emitted in position order.",
	}, handleGradientCSS)
}

// pathPattern matches absolute filesystem paths.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

// sanitizeError strips absolute filesystem paths from error messages
// to avoid leaking internal directory structure to MCP clients.
func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}
