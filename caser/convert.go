package caser

import "github.com/erraggy/casekit/tokenizer"

// Conversion is the rendering of one input in one style.
type Conversion struct {
	Style  Style  `json:"style"  yaml:"style"`
	Output string `json:"output" yaml:"output"`
}

// Convert tokenizes input and renders it in style.
func Convert(input string, style Style) string {
	return Render(tokenizer.Tokenize(input), style)
}

// ConvertAll tokenizes input once and renders it in each of styles, in the
// order given. With no styles it renders all nine in display order.
func ConvertAll(input string, styles ...Style) []Conversion {
	if len(styles) == 0 {
		styles = Styles()
	}
	seq := tokenizer.Tokenize(input)
	out := make([]Conversion, len(styles))
	for i, s := range styles {
		out[i] = Conversion{Style: s, Output: Render(seq, s)}
	}
	return out
}
