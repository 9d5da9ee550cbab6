package commands

import (
	"errors"
	"flag"
	"strings"

	"github.com/erraggy/casekit/caser"
)

// ConvertFlags contains flags for the convert command
type ConvertFlags struct {
	Style  string
	File   string
	Format string
	Lines  bool
}

// SetupConvertFlags creates and configures a FlagSet for the convert command.
// Returns the FlagSet and a ConvertFlags struct with bound flag variables.
func SetupConvertFlags() (*flag.FlagSet, *ConvertFlags) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	flags := &ConvertFlags{}

	fs.StringVar(&flags.Style, "style", "", "comma-separated case styles to render (default: all)")
	fs.StringVar(&flags.Style, "s", "", "comma-separated case styles to render (default: all)")
	fs.StringVar(&flags.File, "file", "", "read input text from a file ('-' for stdin)")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.BoolVar(&flags.Lines, "lines", false, "convert each input line separately")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: casekit convert [flags] [text...|-]\n\n")
		Writef(fs.Output(), "Convert text between naming conventions.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nStyles:\n")
		for _, s := range caser.Styles() {
			Writef(fs.Output(), "  %-21s aliases: %s\n", s, strings.Join(s.Aliases(), ", "))
		}
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  casekit convert XMLHttpRequest\n")
		Writef(fs.Output(), "  casekit convert -s snake my-variable-name\n")
		Writef(fs.Output(), "  casekit convert -s camel,kebab --format json \"hello world\"\n")
		Writef(fs.Output(), "  cut -d, -f1 columns.csv | casekit convert --lines -s snake\n")
	}

	return fs, flags
}

// lineConversion is the structured output of convert --lines.
type lineConversion struct {
	Input       string             `json:"input"       yaml:"input"`
	Conversions []caser.Conversion `json:"conversions" yaml:"conversions"`
}

// HandleConvert executes the convert command
func HandleConvert(args []string) error {
	fs, flags := SetupConvertFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	styles, err := caser.ParseStyleList(flags.Style)
	if err != nil {
		return err
	}

	in, err := readInput(fs.Args(), flags.File)
	if err != nil {
		return err
	}

	if !flags.Lines {
		conversions := caser.ConvertAll(in.Text, styles...)
		if flags.Format != FormatText {
			return OutputStructured(conversions, flags.Format)
		}
		writeConversions(conversions)
		return nil
	}

	var results []lineConversion
	for _, line := range strings.Split(in.Text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		results = append(results, lineConversion{Input: line, Conversions: caser.ConvertAll(line, styles...)})
	}
	if flags.Format != FormatText {
		return OutputStructured(results, flags.Format)
	}
	for i, r := range results {
		if len(styles) != 1 && i > 0 {
			Writef(stdout, "\n")
		}
		writeConversions(r.Conversions)
	}
	return nil
}

// writeConversions prints a bare result for a single style, otherwise one
// labelled line per style.
func writeConversions(conversions []caser.Conversion) {
	if len(conversions) == 1 {
		Writef(stdout, "%s\n", conversions[0].Output)
		return
	}
	for _, c := range conversions {
		Writef(stdout, "%-21s %s\n", c.Style, c.Output)
	}
}

