// Package tokenizer splits arbitrary text into normalized word tokens.
//
// Tokenize is the first stage of casekit's conversion pipeline. It finds word
// boundaries at camelCase and PascalCase humps, keeps acronym runs together,
// splits on whitespace, underscores, and hyphens, and lowercases the result:
//
//	seq := tokenizer.Tokenize("XMLHttpRequest")
//	fmt.Println(seq.Words) // [xml http request]
//
// The returned [Sequence] also keeps the raw input, because some case styles
// (UPPERCASE and lowercase) are applied to the original text rather than to
// the tokens. The same sequence can be rendered in any number of styles; see
// package caser.
//
// Tokenize is a pure function. It never fails: any string, including the
// empty string and invalid UTF-8, produces a (possibly empty) sequence.
//
// Case boundaries only consider ASCII letters, so "éA" is a single word,
// while separators include every Unicode space character.
package tokenizer
