// Package naming provides shared case-mapping utilities for casekit packages.
//
// This internal package wraps golang.org/x/text/cases so that upper and lower
// casing follow the full Unicode mappings (special casing such as "ß" -> "SS"
// and final sigma) rather than the simple one-rune mappings used by
// strings.ToUpper and strings.ToLower. Functions include Upper, Lower, and
// UpperFirst, plus the ASCII letter predicates used by the tokenizer.
//
// These functions are used for:
//   - Tokenizer package: lowercasing word tokens
//   - Caser package: first-letter capitalization and UPPERCASE/lowercase styles
//
// As an internal package, these functions are not part of the public API
// and may change without notice.
package naming
