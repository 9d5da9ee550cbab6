package mcpserver

import (
	"context"

	"github.com/erraggy/casekit/gradient"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type gradientStop struct {
	Color    string `json:"color"              jsonschema:"Hex color such as #3b82f6 or #fff"`
	Position int    `json:"position,omitempty" jsonschema:"Position along the gradient from 0 to 100 percent"`
}

type gradientCSSInput struct {
	Type  string         `json:"type,omitempty"  jsonschema:"linear (default) or radial or conic"`
	Angle *int           `json:"angle,omitempty" jsonschema:"Angle in degrees from 0 to 360 (default 90). Ignored for radial."`
	Stops []gradientStop `json:"stops,omitempty" jsonschema:"Two to five color stops. Defaults to #3b82f6 0% and #8b5cf6 100%."`
}

type gradientCSSOutput struct {
	Type        string         `json:"type"`
	Angle       int            `json:"angle"`
	Stops       []gradientStop `json:"stops"`
	CSS         string         `json:"css"`
	Declaration string         `json:"declaration"`
}

func handleGradientCSS(_ context.Context, _ *mcp.CallToolRequest, input gradientCSSInput) (*mcp.CallToolResult, gradientCSSOutput, error) {
	var opts []gradient.Option
	if input.Type != "" {
		t, err := gradient.ParseType(input.Type)
		if err != nil {
			return errResult(err), gradientCSSOutput{}, nil
		}
		opts = append(opts, gradient.WithType(t))
	}
	if input.Angle != nil {
		opts = append(opts, gradient.WithAngle(*input.Angle))
	}
	if len(input.Stops) > 0 {
		stops := make([]gradient.Stop, len(input.Stops))
		for i, s := range input.Stops {
			stops[i] = gradient.Stop(s)
		}
		opts = append(opts, gradient.WithStops(stops...))
	}

	g, err := gradient.New(opts...)
	if err != nil {
		return errResult(err), gradientCSSOutput{}, nil
	}

	output := gradientCSSOutput{
		Type:        string(g.Type),
		Angle:       g.Angle,
		Stops:       make([]gradientStop, len(g.Stops)),
		CSS:         g.CSS(),
		Declaration: g.Declaration(),
	}
	for i, s := range g.SortedStops() {
		output.Stops[i] = gradientStop(s)
	}
	return nil, output, nil
}
