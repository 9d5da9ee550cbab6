package jsonfmt

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/erraggy/casekit/kiterrors"
	"github.com/tidwall/pretty"
)

// DefaultIndent is the indentation used by Format when no WithIndent option
// is given.
const DefaultIndent = "  "

// maxIndent matches the cap browsers apply to JSON.stringify's space argument.
const maxIndent = 10

// Option configures Format, Minify, and Validate.
type Option func(*formatConfig) error

type formatConfig struct {
	indent   string
	sortKeys bool
	source   string
}

// WithIndent sets the indentation string. It must consist only of spaces
// and tabs and be at most 10 characters long. An empty indent makes Format
// behave like Minify.
func WithIndent(indent string) Option {
	return func(c *formatConfig) error {
		if len(indent) > maxIndent {
			return &kiterrors.ConfigError{Option: "indent", Value: len(indent), Message: fmt.Sprintf("indent must be at most %d characters", maxIndent)}
		}
		if strings.Trim(indent, " \t") != "" {
			return &kiterrors.ConfigError{Option: "indent", Value: indent, Message: "indent may only contain spaces and tabs"}
		}
		c.indent = indent
		return nil
	}
}

// WithIndentSize sets the indentation to n spaces, clamped to [0, 10].
func WithIndentSize(n int) Option {
	n = max(0, min(n, maxIndent))
	return WithIndent(strings.Repeat(" ", n))
}

// WithSortKeys sorts object keys lexically. Source order is kept otherwise.
func WithSortKeys(enabled bool) Option {
	return func(c *formatConfig) error {
		c.sortKeys = enabled
		return nil
	}
}

// WithSource names the input in error messages (a file path, "<stdin>").
func WithSource(name string) Option {
	return func(c *formatConfig) error {
		c.source = name
		return nil
	}
}

func applyOptions(opts []Option) (*formatConfig, error) {
	cfg := &formatConfig{indent: DefaultIndent}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("jsonfmt: %w", err)
		}
	}
	return cfg, nil
}

// Format validates data and pretty-prints it, one element per line.
// The result has no trailing newline.
func Format(data []byte, opts ...Option) ([]byte, error) {
	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}
	if err := validate(data, cfg.source); err != nil {
		return nil, err
	}
	if cfg.indent == "" {
		return minify(data, cfg.sortKeys), nil
	}
	out := pretty.PrettyOptions(data, &pretty.Options{
		Indent:   cfg.indent,
		SortKeys: cfg.sortKeys,
	})
	return bytes.TrimRight(out, "\n"), nil
}

// Minify validates data and strips all insignificant whitespace.
func Minify(data []byte, opts ...Option) ([]byte, error) {
	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}
	if err := validate(data, cfg.source); err != nil {
		return nil, err
	}
	return minify(data, cfg.sortKeys), nil
}

// Validate reports whether data is a single well-formed JSON value.
// It returns nil for valid input and a *kiterrors.ParseError otherwise.
func Validate(data []byte, opts ...Option) error {
	cfg, err := applyOptions(opts)
	if err != nil {
		return err
	}
	return validate(data, cfg.source)
}

func minify(data []byte, sortKeys bool) []byte {
	if sortKeys {
		data = pretty.PrettyOptions(data, &pretty.Options{Indent: "  ", SortKeys: true})
	}
	return pretty.Ugly(data)
}

func validate(data []byte, source string) error {
	var v any
	err := json.Unmarshal(data, &v)
	if err == nil {
		return nil
	}

	perr := &kiterrors.ParseError{Source: source, Message: err.Error()}
	var syn *json.SyntaxError
	if errors.As(err, &syn) {
		perr.Offset = syn.Offset
		perr.Line, perr.Column = position(data, syn.Offset)
	}
	return fmt.Errorf("jsonfmt: %w", perr)
}

// position converts the byte offset reported by encoding/json (the count of
// bytes consumed, including the offending one) into a 1-based line and
// column.
func position(data []byte, offset int64) (line, column int) {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	prefix := data[:offset]
	line = 1 + bytes.Count(prefix, []byte{'\n'})
	lineStart := bytes.LastIndexByte(prefix, '\n') + 1
	column = max(1, int(offset)-lineStart)
	return line, column
}
