package commands

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/casekit/internal/mcpserver"
)

// SetupMCPFlags creates the FlagSet for the mcp command.
func SetupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: casekit mcp\n\n")
		Writef(fs.Output(), "Serve casekit tools over the Model Context Protocol on stdin/stdout.\n\n")
		Writef(fs.Output(), "Tools: convert_case, tokenize, list_styles, json_format, gradient_css\n\n")
		Writef(fs.Output(), "Environment:\n")
		Writef(fs.Output(), "  CASEKIT_MAX_INPUT_SIZE   maximum input size in bytes (default 10485760)\n")
		Writef(fs.Output(), "  CASEKIT_DEFAULT_STYLES   comma-separated styles convert_case renders by default\n")
		Writef(fs.Output(), "  CASEKIT_JSON_INDENT      default json_format indent in spaces (default 2)\n")
		Writef(fs.Output(), "  CASEKIT_LOG_LEVEL        debug, info, warn, or error (default warn)\n")
	}

	return fs
}

// HandleMCP executes the mcp command. It blocks until the client
// disconnects or the process receives SIGINT or SIGTERM.
func HandleMCP(args []string) error {
	fs := SetupMCPFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return errors.New("mcp command takes no arguments")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return mcpserver.Run(ctx)
}
