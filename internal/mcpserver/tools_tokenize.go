package mcpserver

import (
	"context"

	"github.com/erraggy/casekit/tokenizer"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type tokenizeInput struct {
	Content string `json:"content,omitempty" jsonschema:"Inline text to tokenize"`
	File    string `json:"file,omitempty"    jsonschema:"Path to a text file to tokenize"`
}

type tokenizeOutput struct {
	Count int      `json:"count"`
	Words []string `json:"words,omitempty"`
}

func handleTokenize(_ context.Context, _ *mcp.CallToolRequest, input tokenizeInput) (*mcp.CallToolResult, tokenizeOutput, error) {
	text, source, err := textInput(input).resolve()
	if err != nil {
		return errResult(err), tokenizeOutput{}, nil
	}

	words := tokenizeWords(text)
	logger.Debug("tokenize", "source", source, "words", len(words))
	return nil, tokenizeOutput{Count: len(words), Words: words}, nil
}

// tokenizeWords returns the words of text, or nil when there are none.
func tokenizeWords(text string) []string {
	seq := tokenizer.Tokenize(text)
	if seq.Empty() {
		return nil
	}
	return seq.Words
}
