package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/casekit/internal/cliutil"
	"github.com/erraggy/casekit/internal/fileutil"
	"github.com/erraggy/casekit/jsonfmt"
	"github.com/erraggy/casekit/kiterrors"
)

// JSONFlags contains flags for the json command
type JSONFlags struct {
	Minify   bool
	Validate bool
	Indent   int
	SortKeys bool
	Output   string
	Format   string
}

// SetupJSONFlags creates and configures a FlagSet for the json command.
func SetupJSONFlags() (*flag.FlagSet, *JSONFlags) {
	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	flags := &JSONFlags{}

	fs.BoolVar(&flags.Minify, "minify", false, "remove all insignificant whitespace")
	fs.BoolVar(&flags.Minify, "m", false, "remove all insignificant whitespace")
	fs.BoolVar(&flags.Validate, "validate", false, "only check that the input is valid JSON")
	fs.IntVar(&flags.Indent, "indent", len(jsonfmt.DefaultIndent), "spaces per indentation level (0-10)")
	fs.BoolVar(&flags.SortKeys, "sort-keys", false, "sort object keys")
	fs.StringVar(&flags.Output, "output", "", "write the result to a file instead of stdout")
	fs.StringVar(&flags.Output, "o", "", "write the result to a file instead of stdout")
	fs.StringVar(&flags.Format, "format", FormatText, "report format for --validate: text, json, or yaml")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: casekit json [flags] [file|-]\n\n")
		Writef(fs.Output(), "Pretty-print, minify, or validate JSON. Reads stdin when no file is given.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  casekit json data.json\n")
		Writef(fs.Output(), "  curl -s https://example.com/api | casekit json --sort-keys\n")
		Writef(fs.Output(), "  casekit json --minify -o data.min.json data.json\n")
		Writef(fs.Output(), "  casekit json --validate --format json data.json\n")
		Writef(fs.Output(), "\nExit Codes:\n")
		Writef(fs.Output(), "  0    Input is valid JSON\n")
		Writef(fs.Output(), "  1    Input is invalid or an error occurred\n")
	}

	return fs, flags
}

// ValidationReport is the structured output of json --validate.
type ValidationReport struct {
	Source string `json:"source"           yaml:"source"`
	Valid  bool   `json:"valid"            yaml:"valid"`
	Error  string `json:"error,omitempty"  yaml:"error,omitempty"`
	Line   int    `json:"line,omitempty"   yaml:"line,omitempty"`
	Column int    `json:"column,omitempty" yaml:"column,omitempty"`
}

// HandleJSON executes the json command
func HandleJSON(args []string) error {
	fs, flags := SetupJSONFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() > 1 {
		fs.Usage()
		return fmt.Errorf("json command accepts at most one file path or '-' for stdin")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}
	if flags.Indent < 0 || flags.Indent > 10 {
		return fmt.Errorf("invalid indent %d: must be between 0 and 10", flags.Indent)
	}
	if flags.Validate && flags.Output != "" {
		return fmt.Errorf("--validate cannot be combined with --output")
	}

	path := StdinFilePath
	if fs.NArg() == 1 {
		path = fs.Arg(0)
	}
	data, err := readJSONSource(path)
	if err != nil {
		return err
	}
	source := FormatSourcePath(path)

	if flags.Validate {
		return reportValidation(data, source, flags.Format)
	}

	opts := []jsonfmt.Option{
		jsonfmt.WithSource(source),
		jsonfmt.WithSortKeys(flags.SortKeys),
		jsonfmt.WithIndentSize(flags.Indent),
	}
	var out []byte
	if flags.Minify {
		out, err = jsonfmt.Minify(data, opts...)
	} else {
		out, err = jsonfmt.Format(data, opts...)
	}
	if err != nil {
		return err
	}

	if flags.Output != "" {
		var inputs []string
		if path != StdinFilePath {
			inputs = append(inputs, path)
		}
		if err := fileutil.WriteOutput(flags.Output, append(out, '\n'), inputs...); err != nil {
			return err
		}
		Writef(stderr, "Wrote %s\n", flags.Output)
		return nil
	}

	Writef(stdout, "%s\n", out)
	return nil
}

func readJSONSource(path string) ([]byte, error) {
	if path == StdinFilePath {
		data, err := cliutil.ReadLimited(stdin, cliutil.DefaultMaxInputSize)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	return cliutil.ReadFile(path, cliutil.DefaultMaxInputSize)
}

// reportValidation prints the validation result and returns an error when
// data is not valid JSON, so the process exits non-zero.
func reportValidation(data []byte, source, format string) error {
	verr := jsonfmt.Validate(data, jsonfmt.WithSource(source))

	report := ValidationReport{Source: source, Valid: verr == nil}
	var perr *kiterrors.ParseError
	if errors.As(verr, &perr) {
		report.Error = perr.Message
		report.Line = perr.Line
		report.Column = perr.Column
	}

	if format != FormatText {
		if err := OutputStructured(report, format); err != nil {
			return err
		}
	} else if verr == nil {
		Writef(stdout, "%s: valid JSON\n", source)
	}
	return verr
}
