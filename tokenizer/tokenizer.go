package tokenizer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/erraggy/casekit/internal/naming"
)

// Sequence is the ordered list of normalized word tokens derived from an
// input string, together with the input itself.
type Sequence struct {
	// Input is the raw text the words were derived from. Renderers that work
	// on the raw text (UPPERCASE, lowercase) read it from here.
	Input string
	// Words are the lowercase word tokens in order of appearance.
	Words []string
}

// Len returns the number of word tokens.
func (s Sequence) Len() int {
	return len(s.Words)
}

// Empty reports whether the sequence has no word tokens.
func (s Sequence) Empty() bool {
	return len(s.Words) == 0
}

// Tokenize splits input into lowercase word tokens.
//
// Boundaries are placed:
//   - between an ASCII lowercase letter and a following ASCII uppercase letter ("fooBar" -> foo|Bar)
//   - before the last capital of an uppercase run that is followed by a lowercase letter ("HTTPServer" -> HTTP|Server)
//   - at every run of whitespace, underscores, or hyphens, which are discarded
//
// Empty segments are dropped and every remaining segment is lowercased.
// Input that is empty or consists only of separators yields an empty sequence.
func Tokenize(input string) Sequence {
	seq := Sequence{Input: input}

	start := -1
	flush := func(end int) {
		if start >= 0 && end > start {
			seq.Words = append(seq.Words, naming.Lower(input[start:end]))
		}
		start = -1
	}

	for i := 0; i < len(input); {
		r, size := utf8.DecodeRuneInString(input[i:])
		switch {
		case isSeparator(r):
			flush(i)
		case start < 0:
			start = i
		case isCaseBoundary(input, i):
			flush(i)
			start = i
		}
		i += size
	}
	flush(len(input))

	return seq
}

// FromWords builds a sequence from words that are already normalized.
// Empty words are skipped. The sequence's Input is the words joined by a
// single space.
func FromWords(words ...string) Sequence {
	kept := make([]string, 0, len(words))
	for _, w := range words {
		if w != "" {
			kept = append(kept, w)
		}
	}
	if len(kept) == 0 {
		return Sequence{}
	}
	return Sequence{Input: strings.Join(kept, " "), Words: kept}
}

// isCaseBoundary reports whether a word boundary falls immediately before
// s[i]. Only ASCII letters participate in case boundaries.
func isCaseBoundary(s string, i int) bool {
	if i == 0 || !naming.IsASCIIUpper(s[i]) {
		return false
	}
	prev := s[i-1]
	if naming.IsASCIILower(prev) {
		return true
	}
	return naming.IsASCIIUpper(prev) && i+1 < len(s) && naming.IsASCIILower(s[i+1])
}

// isSeparator reports whether r splits words: underscore, hyphen, or any
// character in the ECMAScript whitespace class.
func isSeparator(r rune) bool {
	switch r {
	case '_', '-',
		'\t', '\n', '\v', '\f', '\r',
		'\u2028', '\u2029', '\ufeff':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}
