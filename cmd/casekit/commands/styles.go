package commands

import (
	"errors"
	"flag"
	"strings"

	"github.com/erraggy/casekit/caser"
)

// StylesFlags contains flags for the styles command
type StylesFlags struct {
	Format string
}

// SetupStylesFlags creates and configures a FlagSet for the styles command.
func SetupStylesFlags() (*flag.FlagSet, *StylesFlags) {
	fs := flag.NewFlagSet("styles", flag.ContinueOnError)
	flags := &StylesFlags{}

	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: casekit styles [flags]\n\n")
		Writef(fs.Output(), "List the supported case styles and the names accepted for each.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
	}

	return fs, flags
}

// StyleInfo describes one case style for structured output.
type StyleInfo struct {
	Name    string   `json:"name"    yaml:"name"`
	Ident   string   `json:"ident"   yaml:"ident"`
	Example string   `json:"example" yaml:"example"`
	Aliases []string `json:"aliases" yaml:"aliases"`
}

// StyleCatalog returns every style in display order.
func StyleCatalog() []StyleInfo {
	styles := caser.Styles()
	out := make([]StyleInfo, 0, len(styles))
	for _, s := range styles {
		out = append(out, StyleInfo{Name: s.String(), Ident: s.Ident(), Example: s.Example(), Aliases: s.Aliases()})
	}
	return out
}

// HandleStyles executes the styles command
func HandleStyles(args []string) error {
	fs, flags := SetupStylesFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 0 {
		fs.Usage()
		return errors.New("styles command takes no arguments")
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	catalog := StyleCatalog()
	if flags.Format != FormatText {
		return OutputStructured(catalog, flags.Format)
	}

	Writef(stdout, "%-21s %-19s %s\n", "STYLE", "IDENT", "ALIASES")
	for _, s := range catalog {
		Writef(stdout, "%-21s %-19s %s\n", s.Name, s.Ident, strings.Join(s.Aliases, ", "))
	}
	return nil
}
