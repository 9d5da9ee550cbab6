package main

import (
	"fmt"
	"os"

	"github.com/erraggy/casekit"
	"github.com/erraggy/casekit/cmd/casekit/commands"
	"github.com/sahilm/fuzzy"
)

// handlers maps command names to their handlers.
var handlers = map[string]func([]string) error{
	"convert":  commands.HandleConvert,
	"tokenize": commands.HandleTokenize,
	"styles":   commands.HandleStyles,
	"json":     commands.HandleJSON,
	"gradient": commands.HandleGradient,
	"mcp":      commands.HandleMCP,
}

// commandNames lists every command, in usage order, for suggestions.
var commandNames = []string{"convert", "tokenize", "styles", "json", "gradient", "mcp", "version", "help"}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("casekit %s\n", casekit.Version())
		if len(os.Args) > 2 && os.Args[2] == "--verbose" {
			fmt.Println(casekit.BuildInfo())
		}
		return
	case "help", "-h", "--help":
		printUsage()
		return
	}

	handler, ok := handlers[command]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if s := suggestCommand(command); s != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", s)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}

	if err := handler(os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// suggestCommand returns the best fuzzy match for an unknown command, or ""
// when nothing is close. Matching tolerates dropped letters and
// abbreviations such as "tok" or "grad".
func suggestCommand(input string) string {
	if input == "" {
		return ""
	}
	matches := fuzzy.Find(input, commandNames)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Str
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `casekit - text case conversion and developer text utilities

Usage:
  casekit <command> [flags] [args]

Commands:
  convert     Convert text between naming conventions
  tokenize    Split text into normalized lowercase words
  styles      List supported case styles and their aliases
  json        Pretty-print, minify, or validate JSON
  gradient    Build a CSS gradient
  mcp         Serve casekit tools over MCP (stdio)
  version     Show version information (--verbose for build details)
  help        Show this help message

Examples:
  casekit convert XMLHttpRequest
  casekit convert -s snake "Hello World"
  echo '{"b":1,"a":2}' | casekit json --sort-keys
  casekit gradient --type radial --stop '#fff 0%%' --stop '#000 100%%'

Run 'casekit <command> --help' for more information on a command.
`)
}
