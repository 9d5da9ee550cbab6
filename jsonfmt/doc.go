// Package jsonfmt formats, minifies, and validates JSON documents.
//
// All three operations validate first, so malformed input never produces
// partial output. Failures are reported as *kiterrors.ParseError with the
// 1-based line and column of the offending byte:
//
//	out, err := jsonfmt.Format([]byte(`{"name":"casekit","tags":["cli","mcp"]}`))
//	if err != nil {
//		var perr *kiterrors.ParseError
//		if errors.As(err, &perr) {
//			log.Fatalf("line %d, column %d: %s", perr.Line, perr.Column, perr.Message)
//		}
//	}
//
// Formatting works on the token stream rather than a decoded value, so key
// order, duplicate keys, and number spellings ("1.0", "1e3") are kept as
// written. Use [WithSortKeys] to order object keys.
package jsonfmt
