// Package kiterrors provides structured error types for the casekit library.
//
// Import path: github.com/erraggy/casekit/kiterrors
//
// The case conversion core (tokenizer and caser) is total and never returns
// errors. The errors in this package come from the edges: parsing style
// names, formatting JSON, validating gradient settings, and enforcing input
// limits in the CLI and MCP server.
//
// # Error Types
//
//   - [ParseError]: malformed input text, with line and column
//   - [ConfigError]: invalid options, unknown style names, out-of-range values
//   - [ResourceLimitError]: inputs larger than a configured limit
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrConfig]: Matches any [ConfigError]
//   - [ErrResourceLimit]: Matches any [ResourceLimitError]
//
// # Usage
//
//	out, err := jsonfmt.Format(data)
//	if err != nil {
//	    var perr *kiterrors.ParseError
//	    if errors.As(err, &perr) {
//	        fmt.Printf("bad JSON at line %d, column %d\n", perr.Line, perr.Column)
//	    }
//	}
package kiterrors
