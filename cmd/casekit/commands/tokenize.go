package commands

import (
	"errors"
	"flag"

	"github.com/erraggy/casekit/tokenizer"
)

// TokenizeFlags contains flags for the tokenize command
type TokenizeFlags struct {
	File   string
	Format string
}

// SetupTokenizeFlags creates and configures a FlagSet for the tokenize command.
func SetupTokenizeFlags() (*flag.FlagSet, *TokenizeFlags) {
	fs := flag.NewFlagSet("tokenize", flag.ContinueOnError)
	flags := &TokenizeFlags{}

	fs.StringVar(&flags.File, "file", "", "read input text from a file ('-' for stdin)")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: casekit tokenize [flags] [text...|-]\n\n")
		Writef(fs.Output(), "Split text into the lowercase words used by every case style.\n")
		Writef(fs.Output(), "Text output prints one word per line.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  casekit tokenize XMLHttpRequest\n")
		Writef(fs.Output(), "  echo 'HTTPServer_v2' | casekit tokenize --format json\n")
	}

	return fs, flags
}

// tokenizeOutput is the structured output of the tokenize command.
type tokenizeOutput struct {
	Input string   `json:"input" yaml:"input"`
	Words []string `json:"words" yaml:"words"`
}

// HandleTokenize executes the tokenize command
func HandleTokenize(args []string) error {
	fs, flags := SetupTokenizeFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	in, err := readInput(fs.Args(), flags.File)
	if err != nil {
		return err
	}

	seq := tokenizer.Tokenize(in.Text)
	if flags.Format != FormatText {
		words := seq.Words
		if words == nil {
			words = []string{}
		}
		return OutputStructured(tokenizeOutput{Input: seq.Input, Words: words}, flags.Format)
	}

	for _, w := range seq.Words {
		Writef(stdout, "%s\n", w)
	}
	return nil
}
