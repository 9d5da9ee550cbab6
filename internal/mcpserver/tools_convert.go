package mcpserver

import (
	"context"
	"strings"

	"github.com/erraggy/casekit/caser"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type convertCaseInput struct {
	Content string   `json:"content,omitempty" jsonschema:"Inline text to convert"`
	File    string   `json:"file,omitempty"    jsonschema:"Path to a text file to convert"`
	Styles  []string `json:"styles,omitempty"  jsonschema:"Case styles to render in order. Defaults to every style."`
	Lines   bool     `json:"lines,omitempty"   jsonschema:"Convert each non-blank line separately"`
}

type styledText struct {
	Style  string `json:"style"`
	Output string `json:"output"`
}

type convertedText struct {
	Input   string       `json:"input"`
	Words   []string     `json:"words,omitempty"`
	Results []styledText `json:"results,omitempty"`
}

type convertCaseOutput struct {
	Styles      []string        `json:"styles"`
	Conversions []convertedText `json:"conversions,omitempty"`
}

func handleConvertCase(_ context.Context, _ *mcp.CallToolRequest, input convertCaseInput) (*mcp.CallToolResult, convertCaseOutput, error) {
	styles, err := caser.ParseStyleList(strings.Join(input.Styles, ","))
	if err != nil {
		return errResult(err), convertCaseOutput{}, nil
	}
	if len(styles) == 0 {
		styles = cfg.DefaultStyles
	}
	if len(styles) == 0 {
		styles = caser.Styles()
	}

	text, source, err := textInput{Content: input.Content, File: input.File}.resolve()
	if err != nil {
		return errResult(err), convertCaseOutput{}, nil
	}

	inputs := []string{text}
	if input.Lines {
		inputs = nonBlankLines(text)
	}

	output := convertCaseOutput{
		Styles:      make([]string, len(styles)),
		Conversions: makeSlice[convertedText](len(inputs)),
	}
	for i, s := range styles {
		output.Styles[i] = s.String()
	}
	for _, in := range inputs {
		output.Conversions = append(output.Conversions, convertText(in, styles))
	}

	logger.Debug("convert_case", "source", source, "styles", len(styles), "inputs", len(inputs))
	return nil, output, nil
}

func convertText(text string, styles []caser.Style) convertedText {
	conversions := caser.ConvertAll(text, styles...)
	out := convertedText{
		Input:   text,
		Results: makeSlice[styledText](len(conversions)),
	}
	for _, c := range conversions {
		out.Results = append(out.Results, styledText{Style: c.Style.String(), Output: c.Output})
	}
	out.Words = tokenizeWords(text)
	return out
}

func nonBlankLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
