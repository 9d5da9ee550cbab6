package mcpserver

import (
	"context"

	"github.com/erraggy/casekit/caser"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type listStylesInput struct{}

type styleSummary struct {
	Name    string   `json:"name"`
	Ident   string   `json:"ident"`
	Example string   `json:"example"`
	Aliases []string `json:"aliases,omitempty"`
}

type listStylesOutput struct {
	Styles []styleSummary `json:"styles"`
}

func handleListStyles(_ context.Context, _ *mcp.CallToolRequest, _ listStylesInput) (*mcp.CallToolResult, listStylesOutput, error) {
	styles := caser.Styles()
	output := listStylesOutput{Styles: make([]styleSummary, 0, len(styles))}
	for _, s := range styles {
		output.Styles = append(output.Styles, styleSummary{
			Name:    s.String(),
			Ident:   s.Ident(),
			Example: s.Example(),
			Aliases: s.Aliases(),
		})
	}
	return nil, output, nil
}
