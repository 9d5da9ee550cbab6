package mcpserver

import (
	"github.com/erraggy/casekit/internal/cliutil"
	"github.com/erraggy/casekit/internal/options"
	"github.com/erraggy/casekit/kiterrors"
)

// textInput represents the two ways text can be provided to a tool.
// Exactly one of Content or File must be set.
type textInput struct {
	Content string
	File    string
}

// resolve returns the text and a name for it to use in errors.
// Both inline content and files are bounded by cfg.MaxInputSize.
func (in textInput) resolve() (text, source string, err error) {
	if err := options.RequireOne(
		options.Source{Name: "content", Set: in.Content != ""},
		options.Source{Name: "file", Set: in.File != ""},
	); err != nil {
		return "", "", err
	}

	if in.Content != "" {
		if n := int64(len(in.Content)); n > cfg.MaxInputSize {
			return "", "", &kiterrors.ResourceLimitError{
				ResourceType: "input_size",
				Limit:        cfg.MaxInputSize,
				Actual:       n,
				Message:      "inline content too large; set CASEKIT_MAX_INPUT_SIZE to increase",
			}
		}
		return in.Content, "<content>", nil
	}

	data, err := cliutil.ReadFile(in.File, cfg.MaxInputSize)
	if err != nil {
		return "", "", err
	}
	return string(data), in.File, nil
}
