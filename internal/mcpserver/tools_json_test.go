package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }

func TestJSONFormatTool(t *testing.T) {
	tests := []struct {
		name  string
		input jsonFormatInput
		want  string
	}{
		{
			name:  "default format",
			input: jsonFormatInput{Content: `{"b":1,"a":[]}`},
			want:  "{\n  \"b\": 1,\n  \"a\": []\n}",
		},
		{
			name:  "sorted with indent 4",
			input: jsonFormatInput{Content: `{"b":1,"a":2}`, SortKeys: true, Indent: intPtr(4)},
			want:  "{\n    \"a\": 2,\n    \"b\": 1\n}",
		},
		{
			name:  "minify",
			input: jsonFormatInput{Content: "{ \"a\" : [ 1 , 2 ] }", Mode: "minify"},
			want:  `{"a":[1,2]}`,
		},
		{
			name:  "indent 0 minifies",
			input: jsonFormatInput{Content: "[ 1, 2 ]", Indent: intPtr(0)},
			want:  `[1,2]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, output, err := handleJSONFormat(context.Background(), &mcp.CallToolRequest{}, tt.input)
			require.NoError(t, err)
			require.Nil(t, result)
			assert.True(t, output.Valid)
			assert.Equal(t, tt.want, output.Output)
		})
	}
}

func TestJSONFormatTool_Validate(t *testing.T) {
	_, output, err := handleJSONFormat(context.Background(), &mcp.CallToolRequest{}, jsonFormatInput{Content: `{"ok":true}`, Mode: "validate"})
	require.NoError(t, err)
	assert.True(t, output.Valid)
	assert.Empty(t, output.Output)

	result, output, err := handleJSONFormat(context.Background(), &mcp.CallToolRequest{}, jsonFormatInput{Content: "[1,\n2,,3]", Mode: "validate"})
	require.NoError(t, err)
	assert.Nil(t, result, "invalid JSON is a result, not a tool error, in validate mode")
	assert.False(t, output.Valid)
	assert.Equal(t, 2, output.Line)
	assert.Equal(t, 3, output.Column)
	assert.NotEmpty(t, output.Error)
}

func TestJSONFormatTool_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input jsonFormatInput
	}{
		{name: "invalid json", input: jsonFormatInput{Content: `{"a":`}},
		{name: "bad mode", input: jsonFormatInput{Content: `{}`, Mode: "beautify"}},
		{name: "indent too large", input: jsonFormatInput{Content: `{}`, Indent: intPtr(11)}},
		{name: "no input", input: jsonFormatInput{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, _, err := handleJSONFormat(context.Background(), &mcp.CallToolRequest{}, tt.input)
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.True(t, result.IsError)
		})
	}
}
