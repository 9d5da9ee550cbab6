package commands

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/erraggy/casekit/gradient"
)

// stopList collects repeated --stop flags.
type stopList []gradient.Stop

func (l *stopList) String() string {
	parts := make([]string, len(*l))
	for i, s := range *l {
		parts[i] = s.String()
	}
	return strings.Join(parts, ", ")
}

func (l *stopList) Set(v string) error {
	s, err := gradient.ParseStop(v)
	if err != nil {
		return err
	}
	*l = append(*l, s)
	return nil
}

// GradientFlags contains flags for the gradient command
type GradientFlags struct {
	Type        string
	Angle       int
	Stops       stopList
	Declaration bool
	Format      string
}

// SetupGradientFlags creates and configures a FlagSet for the gradient command.
func SetupGradientFlags() (*flag.FlagSet, *GradientFlags) {
	fs := flag.NewFlagSet("gradient", flag.ContinueOnError)
	flags := &GradientFlags{}

	fs.StringVar(&flags.Type, "type", string(gradient.Linear), "gradient type: linear, radial, or conic")
	fs.IntVar(&flags.Angle, "angle", gradient.DefaultAngle, "angle in degrees (0-360); ignored for radial")
	fs.Var(&flags.Stops, "stop", "color stop as '#rrggbb [position%]'; repeat 2-5 times")
	fs.BoolVar(&flags.Declaration, "declaration", false, "print a complete 'background: ...;' declaration")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: casekit gradient [flags]\n\n")
		Writef(fs.Output(), "Build a CSS gradient. Without --stop, uses #3b82f6 0%% to #8b5cf6 100%%.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  casekit gradient\n")
		Writef(fs.Output(), "  casekit gradient --type conic --angle 45 --stop '#fff 0%%' --stop '#000 100%%'\n")
		Writef(fs.Output(), "  casekit gradient --declaration --format json\n")
	}

	return fs, flags
}

// gradientOutput is the structured output of the gradient command.
type gradientOutput struct {
	gradient.Gradient `yaml:",inline"`
	CSS               string `json:"css"         yaml:"css"`
	Declaration       string `json:"declaration" yaml:"declaration"`
}

// HandleGradient executes the gradient command
func HandleGradient(args []string) error {
	fs, flags := SetupGradientFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("gradient command takes no positional arguments")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	typ, err := gradient.ParseType(flags.Type)
	if err != nil {
		return err
	}
	opts := []gradient.Option{gradient.WithType(typ), gradient.WithAngle(flags.Angle)}
	if len(flags.Stops) > 0 {
		opts = append(opts, gradient.WithStops(flags.Stops...))
	}
	g, err := gradient.New(opts...)
	if err != nil {
		return err
	}

	if flags.Format != FormatText {
		return OutputStructured(gradientOutput{Gradient: *g, CSS: g.CSS(), Declaration: g.Declaration()}, flags.Format)
	}
	if flags.Declaration {
		Writef(stdout, "%s\n", g.Declaration())
	} else {
		Writef(stdout, "%s\n", g.CSS())
	}
	return nil
}
