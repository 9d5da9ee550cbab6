package caser

import (
	"strings"

	"github.com/erraggy/casekit/internal/naming"
	"github.com/erraggy/casekit/tokenizer"
)

// Render writes seq in the given style.
//
// Every style returns "" for an empty sequence. UpperCase and LowerCase are
// applied to seq.Input, so the original spacing and punctuation survive;
// all other styles are built from seq.Words. A style outside the defined
// set returns seq.Input unchanged.
//
// Render never modifies seq.
func Render(seq tokenizer.Sequence, style Style) string {
	words := seq.Words
	if len(words) == 0 {
		return ""
	}

	switch style {
	case CamelCase:
		var b strings.Builder
		b.WriteString(words[0])
		for _, w := range words[1:] {
			b.WriteString(naming.UpperFirst(w))
		}
		return b.String()
	case PascalCase:
		return joinMapped(words, "", naming.UpperFirst)
	case SnakeCase:
		return strings.Join(words, "_")
	case KebabCase:
		return strings.Join(words, "-")
	case ScreamingSnakeCase:
		return joinMapped(words, "_", naming.Upper)
	case TitleCase:
		return joinMapped(words, " ", naming.UpperFirst)
	case UpperCase:
		return naming.Upper(seq.Input)
	case LowerCase:
		return naming.Lower(seq.Input)
	case SentenceCase:
		return naming.UpperFirst(strings.Join(words, " "))
	default:
		return seq.Input
	}
}

// joinMapped applies fn to each word and joins the results with sep.
func joinMapped(words []string, sep string, fn func(string) string) string {
	var b strings.Builder
	for i, w := range words {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(fn(w))
	}
	return b.String()
}
