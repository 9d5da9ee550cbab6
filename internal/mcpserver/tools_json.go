package mcpserver

import (
	"context"
	"errors"
	"fmt"

	"github.com/erraggy/casekit/jsonfmt"
	"github.com/erraggy/casekit/kiterrors"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// json_format modes.
const (
	modeFormat   = "format"
	modeMinify   = "minify"
	modeValidate = "validate"
)

type jsonFormatInput struct {
	Content  string `json:"content,omitempty"   jsonschema:"Inline JSON document"`
	File     string `json:"file,omitempty"      jsonschema:"Path to a JSON file"`
	Mode     string `json:"mode,omitempty"      jsonschema:"format (default) or minify or validate"`
	Indent   *int   `json:"indent,omitempty"    jsonschema:"Spaces per indentation level from 0 to 10. 0 behaves like minify."`
	SortKeys bool   `json:"sort_keys,omitempty" jsonschema:"Sort object keys lexically"`
}

type jsonFormatOutput struct {
	Valid  bool   `json:"valid"`
	Output string `json:"output,omitempty"`
	Error  string `json:"error,omitempty"`
	Line   int    `json:"line,omitempty"`
	Column int    `json:"column,omitempty"`
}

func handleJSONFormat(_ context.Context, _ *mcp.CallToolRequest, input jsonFormatInput) (*mcp.CallToolResult, jsonFormatOutput, error) {
	mode := input.Mode
	if mode == "" {
		mode = modeFormat
	}
	if mode != modeFormat && mode != modeMinify && mode != modeValidate {
		return errResult(fmt.Errorf("invalid mode %q: must be one of %s, %s, %s", input.Mode, modeFormat, modeMinify, modeValidate)), jsonFormatOutput{}, nil
	}

	indent := cfg.JSONIndent
	if input.Indent != nil {
		indent = *input.Indent
	}
	if indent < 0 || indent > 10 {
		return errResult(fmt.Errorf("invalid indent %d: must be between 0 and 10", indent)), jsonFormatOutput{}, nil
	}

	text, source, err := textInput{Content: input.Content, File: input.File}.resolve()
	if err != nil {
		return errResult(err), jsonFormatOutput{}, nil
	}
	data := []byte(text)

	logger.Debug("json_format", "source", source, "mode", mode, "bytes", len(data))

	if mode == modeValidate {
		return nil, validationOutput(jsonfmt.Validate(data, jsonfmt.WithSource(source))), nil
	}

	opts := []jsonfmt.Option{
		jsonfmt.WithSource(source),
		jsonfmt.WithSortKeys(input.SortKeys),
		jsonfmt.WithIndentSize(indent),
	}
	var out []byte
	if mode == modeMinify {
		out, err = jsonfmt.Minify(data, opts...)
	} else {
		out, err = jsonfmt.Format(data, opts...)
	}
	if err != nil {
		return errResult(err), jsonFormatOutput{}, nil
	}
	return nil, jsonFormatOutput{Valid: true, Output: string(out)}, nil
}

func validationOutput(err error) jsonFormatOutput {
	if err == nil {
		return jsonFormatOutput{Valid: true}
	}
	out := jsonFormatOutput{Error: sanitizeError(err)}
	var perr *kiterrors.ParseError
	if errors.As(err, &perr) {
		out.Error = perr.Message
		out.Line = perr.Line
		out.Column = perr.Column
	}
	return out
}
