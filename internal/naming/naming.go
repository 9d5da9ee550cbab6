// Package naming provides the Unicode case-mapping primitives shared by the
// tokenizer and caser packages.
package naming

import (
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Upper maps s to upper case using full Unicode special casing.
// Example: "straße" -> "STRASSE"
func Upper(s string) string {
	if s == "" {
		return ""
	}
	// cases.Caser is stateful; a fresh one per call keeps this safe for
	// concurrent use.
	return cases.Upper(language.Und).String(s)
}

// Lower maps s to lower case using full Unicode special casing,
// including the context-sensitive final sigma.
// Example: "ΟΔΟΣ" -> "οδος"
func Lower(s string) string {
	if s == "" {
		return ""
	}
	return cases.Lower(language.Und).String(s)
}

// UpperFirst upper-cases the first code point of s and leaves the rest
// untouched. The first code point may expand to several (e.g. "ß" -> "SS").
// Example: "hello" -> "Hello"
// Example: "hELLO" -> "HELLO"
func UpperFirst(s string) string {
	if s == "" {
		return ""
	}
	_, size := utf8.DecodeRuneInString(s)
	return Upper(s[:size]) + s[size:]
}

// IsASCIILower reports whether b is in [a-z].
func IsASCIILower(b byte) bool {
	return 'a' <= b && b <= 'z'
}

// IsASCIIUpper reports whether b is in [A-Z].
func IsASCIIUpper(b byte) bool {
	return 'A' <= b && b <= 'Z'
}
