// Package caser renders tokenized text in one of nine case styles.
//
// It is the second stage of casekit's conversion pipeline. A
// [tokenizer.Sequence] is produced once per input and can be rendered in any
// number of styles:
//
//	seq := tokenizer.Tokenize("my_variable-Name Here")
//	caser.Render(seq, caser.CamelCase)          // "myVariableNameHere"
//	caser.Render(seq, caser.ScreamingSnakeCase) // "MY_VARIABLE_NAME_HERE"
//
// # Styles
//
//	camelCase             helloWorld
//	PascalCase            HelloWorld
//	snake_case            hello_world
//	kebab-case            hello-world
//	SCREAMING_SNAKE_CASE  HELLO_WORLD
//	Title Case            Hello World
//	UPPERCASE             raw input, upper-cased
//	lowercase             raw input, lower-cased
//	Sentence case         Hello world
//
// UPPERCASE and lowercase deliberately skip tokenization: they case-map the
// original text, so "  hello   world!" becomes "  HELLO   WORLD!". Every other
// style is rebuilt from the word tokens.
//
// An input with no word tokens (empty or only separators) renders as "" in
// every style, including UPPERCASE and lowercase.
//
// # Convenience
//
// [Convert] runs both stages for a single style, and [ConvertAll] tokenizes
// once and renders several styles. [ParseStyle] resolves user-supplied style
// names for the CLI and MCP server.
//
// Rendering is pure and allocation-light; a [tokenizer.Sequence] may be
// rendered concurrently from multiple goroutines.
package caser
