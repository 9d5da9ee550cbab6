// Package casekit provides small, dependable text utilities for developers:
// a case converter, a JSON formatter, and a CSS gradient builder.
//
// # Overview
//
// The library consists of these packages:
//
//   - tokenizer: split text into normalized lowercase word tokens
//   - caser: render tokens as camelCase, PascalCase, snake_case, kebab-case,
//     SCREAMING_SNAKE_CASE, Title Case, UPPERCASE, lowercase, or Sentence case
//   - jsonfmt: pretty-print, minify, and validate JSON
//   - gradient: build linear, radial, and conic CSS gradients
//   - kiterrors: structured error types shared by the packages above
//
// The casekit command (cmd/casekit) exposes all of them on the command line
// and as an MCP server.
//
// # Installation
//
//	go get github.com/erraggy/casekit
//
// # Quick Start
//
// Convert text between cases:
//
//	import "github.com/erraggy/casekit/caser"
//
//	fmt.Println(caser.Convert("XMLHttpRequest", caser.SnakeCase)) // xml_http_request
//
// Tokenize once, render many:
//
//	seq := tokenizer.Tokenize("my_variable-Name Here")
//	for _, style := range caser.Styles() {
//		fmt.Printf("%s: %s\n", style, caser.Render(seq, style))
//	}
//
// Format JSON:
//
//	import "github.com/erraggy/casekit/jsonfmt"
//
//	out, err := jsonfmt.Format(data)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// # Case conversion rules
//
// Tokenization inserts a boundary between a lowercase and an uppercase ASCII
// letter ("fooBar"), and before the last capital of an uppercase run that is
// followed by a lowercase letter ("HTTPServer" -> "HTTP", "Server"). It then
// splits on whitespace, underscores, and hyphens and lowercases each word.
//
// UPPERCASE and lowercase are applied to the original text rather than the
// tokens, so they keep spacing and punctuation. All other styles are rebuilt
// from the tokens. Input with no tokens renders as "" in every style.
package casekit
