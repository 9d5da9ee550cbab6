// Package options provides shared utilities for input option validation
// in the CLI and MCP server.
package options

import (
	"strings"

	"github.com/erraggy/casekit/kiterrors"
)

// Source names one way of supplying input and whether the caller used it.
type Source struct {
	Name string
	Set  bool
}

// RequireOne ensures exactly one of sources is set.
// It returns a *kiterrors.ConfigError naming the sources otherwise.
func RequireOne(sources ...Source) error {
	names := make([]string, 0, len(sources))
	var set []string
	for _, s := range sources {
		names = append(names, s.Name)
		if s.Set {
			set = append(set, s.Name)
		}
	}

	switch len(set) {
	case 1:
		return nil
	case 0:
		return &kiterrors.ConfigError{
			Option:  "input",
			Message: "one of " + strings.Join(names, ", ") + " is required",
		}
	default:
		return &kiterrors.ConfigError{
			Option:  "input",
			Value:   strings.Join(set, ", "),
			Message: "only one of " + strings.Join(names, ", ") + " may be set",
		}
	}
}
