package cliutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/erraggy/casekit/internal/options"
	"github.com/erraggy/casekit/kiterrors"
)

// StdinPath is the path argument that selects standard input.
const StdinPath = "-"

// DefaultMaxInputSize bounds how much text a single command reads.
const DefaultMaxInputSize int64 = 10 * 1024 * 1024

// Input is text resolved from the command line, a file, or stdin.
type Input struct {
	Text   string
	Source string // "<args>", "<stdin>", or the file path
}

// ReadInput resolves command input. Positional args are joined with single
// spaces and used as the text itself. A file path of "-", a lone "-"
// argument, or no input at all reads stdin. Text read from a file or stdin
// loses one trailing line ending.
func ReadInput(args []string, file string, stdin io.Reader) (Input, error) {
	if file != "" && len(args) > 0 {
		return Input{}, options.RequireOne(
			options.Source{Name: "arguments", Set: true},
			options.Source{Name: "--file", Set: true},
		)
	}

	switch {
	case file == StdinPath, file == "" && (len(args) == 0 || len(args) == 1 && args[0] == StdinPath):
		data, err := ReadLimited(stdin, DefaultMaxInputSize)
		if err != nil {
			return Input{}, fmt.Errorf("reading stdin: %w", err)
		}
		return Input{Text: trimLineEnding(string(data)), Source: "<stdin>"}, nil
	case file != "":
		data, err := ReadFile(file, DefaultMaxInputSize)
		if err != nil {
			return Input{}, err
		}
		return Input{Text: trimLineEnding(string(data)), Source: file}, nil
	default:
		return Input{Text: strings.Join(args, " "), Source: "<args>"}, nil
	}
}

// ReadFile reads at most limit bytes from path.
func ReadFile(path string, limit int64) ([]byte, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}
	defer func() { _ = f.Close() }()

	data, err := ReadLimited(f, limit)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

// ReadLimited reads r to EOF, failing with a *kiterrors.ResourceLimitError
// once more than limit bytes arrive.
func ReadLimited(r io.Reader, limit int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, &kiterrors.ResourceLimitError{
			ResourceType: "input_size",
			Limit:        limit,
			Actual:       int64(len(data)),
			Message:      "input too large",
		}
	}
	return data, nil
}

func trimLineEnding(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}
