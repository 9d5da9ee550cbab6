package caser

import (
	"fmt"
	"strings"

	"github.com/erraggy/casekit/kiterrors"
)

// Style identifies one of the nine supported case conventions.
type Style int

const (
	// CamelCase joins words without separators, capitalizing every word but the first ("helloWorld").
	CamelCase Style = iota
	// PascalCase joins words without separators, capitalizing every word ("HelloWorld").
	PascalCase
	// SnakeCase joins lowercase words with underscores ("hello_world").
	SnakeCase
	// KebabCase joins lowercase words with hyphens ("hello-world").
	KebabCase
	// ScreamingSnakeCase joins uppercase words with underscores ("HELLO_WORLD").
	ScreamingSnakeCase
	// TitleCase capitalizes every word and joins them with spaces ("Hello World").
	TitleCase
	// UpperCase upper-cases the raw input, keeping its spacing and punctuation.
	UpperCase
	// LowerCase lower-cases the raw input, keeping its spacing and punctuation.
	LowerCase
	// SentenceCase joins lowercase words with spaces and capitalizes the first letter ("Hello world").
	SentenceCase
)

type styleInfo struct {
	name    string
	ident   string
	example string
	aliases []string
}

var styleTable = [...]styleInfo{
	CamelCase:          {name: "camelCase", ident: "CamelCase", example: "camelCase", aliases: []string{"camel", "lowercamel"}},
	PascalCase:         {name: "PascalCase", ident: "PascalCase", example: "PascalCase", aliases: []string{"pascal", "uppercamel"}},
	SnakeCase:          {name: "snake_case", ident: "SnakeCase", example: "snake_case", aliases: []string{"snake", "underscore"}},
	KebabCase:          {name: "kebab-case", ident: "KebabCase", example: "kebab-case", aliases: []string{"kebab", "dash", "lisp"}},
	ScreamingSnakeCase: {name: "SCREAMING_SNAKE_CASE", ident: "ScreamingSnakeCase", example: "SCREAMING_SNAKE", aliases: []string{"screaming", "screamingsnake", "constant", "macro"}},
	TitleCase:          {name: "Title Case", ident: "TitleCase", example: "Title Case", aliases: []string{"title"}},
	UpperCase:          {name: "UPPERCASE", ident: "UpperCase", example: "UPPERCASE", aliases: []string{"upper"}},
	LowerCase:          {name: "lowercase", ident: "LowerCase", example: "lowercase", aliases: []string{"lower"}},
	SentenceCase:       {name: "Sentence case", ident: "SentenceCase", example: "Sentence case", aliases: []string{"sentence"}},
}

// styleLookup maps normalized names and aliases to styles.
var styleLookup = func() map[string]Style {
	m := make(map[string]Style)
	for i, info := range styleTable {
		s := Style(i)
		m[normalizeStyleName(info.name)] = s
		m[normalizeStyleName(info.ident)] = s
		for _, a := range info.aliases {
			m[normalizeStyleName(a)] = s
		}
	}
	return m
}()

// Styles returns all styles in display order.
func Styles() []Style {
	out := make([]Style, len(styleTable))
	for i := range styleTable {
		out[i] = Style(i)
	}
	return out
}

// IsValid reports whether s is one of the nine defined styles.
func (s Style) IsValid() bool {
	return s >= 0 && int(s) < len(styleTable)
}

// String returns the display name of the style, e.g. "snake_case".
func (s Style) String() string {
	if !s.IsValid() {
		return fmt.Sprintf("Style(%d)", int(s))
	}
	return styleTable[s].name
}

// Ident returns the Go-identifier form of the style name, e.g. "SnakeCase".
func (s Style) Ident() string {
	if !s.IsValid() {
		return ""
	}
	return styleTable[s].ident
}

// Example returns a short label that is itself written in the style.
func (s Style) Example() string {
	if !s.IsValid() {
		return ""
	}
	return styleTable[s].example
}

// Aliases returns the short names ParseStyle accepts besides the display
// and identifier names.
func (s Style) Aliases() []string {
	if !s.IsValid() {
		return nil
	}
	return append([]string(nil), styleTable[s].aliases...)
}

// MarshalText encodes the style as its display name.
func (s Style) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, &kiterrors.ConfigError{Option: "style", Value: int(s), Message: "undefined case style"}
	}
	return []byte(s.String()), nil
}

// UnmarshalText decodes any name accepted by ParseStyle.
func (s *Style) UnmarshalText(text []byte) error {
	parsed, err := ParseStyle(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseStyle resolves a style name. It accepts the display name
// ("SCREAMING_SNAKE_CASE"), the identifier name ("ScreamingSnakeCase"),
// and short aliases ("screaming", "constant"). Matching ignores case,
// spaces, underscores, and hyphens.
func ParseStyle(name string) (Style, error) {
	key := normalizeStyleName(name)
	if key == "" {
		return 0, &kiterrors.ConfigError{Option: "style", Message: "case style name is empty"}
	}
	if s, ok := styleLookup[key]; ok {
		return s, nil
	}
	return 0, &kiterrors.ConfigError{
		Option:  "style",
		Value:   name,
		Message: "unknown case style; valid styles: " + strings.Join(StyleNames(), ", "),
	}
}

// ParseStyleList resolves a comma-separated list of style names, keeping
// order and dropping duplicates. A blank list yields nil.
func ParseStyleList(list string) ([]Style, error) {
	var styles []Style
	seen := make(map[Style]bool)
	for _, part := range strings.Split(list, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		s, err := ParseStyle(part)
		if err != nil {
			return nil, err
		}
		if !seen[s] {
			seen[s] = true
			styles = append(styles, s)
		}
	}
	return styles, nil
}

// StyleNames returns the display names of all styles in display order.
func StyleNames() []string {
	names := make([]string, len(styleTable))
	for i, info := range styleTable {
		names[i] = info.name
	}
	return names
}

func normalizeStyleName(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '_', '-':
			return -1
		}
		if 'A' <= r && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}, strings.TrimSpace(name))
}
