package caser

import (
	"sync"
	"testing"

	"github.com/erraggy/casekit/tokenizer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_HelloWorld(t *testing.T) {
	seq := tokenizer.FromWords("hello", "world")

	tests := []struct {
		style Style
		want  string
	}{
		{CamelCase, "helloWorld"},
		{PascalCase, "HelloWorld"},
		{SnakeCase, "hello_world"},
		{KebabCase, "hello-world"},
		{ScreamingSnakeCase, "HELLO_WORLD"},
		{TitleCase, "Hello World"},
		{UpperCase, "HELLO WORLD"},
		{LowerCase, "hello world"},
		{SentenceCase, "Hello world"},
	}

	for _, tt := range tests {
		t.Run(tt.style.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, Render(seq, tt.style))
		})
	}
}

func TestRender_EmptySequence(t *testing.T) {
	inputs := []string{"", "   ", "_-_", "\t\n"}
	for _, in := range inputs {
		seq := tokenizer.Tokenize(in)
		for _, s := range Styles() {
			assert.Empty(t, Render(seq, s), "Render(Tokenize(%q), %s)", in, s)
		}
	}

	// Sentence case must not trip over the first character of an empty join.
	assert.Empty(t, Render(tokenizer.Sequence{}, SentenceCase))
	assert.Empty(t, Render(tokenizer.FromWords(), SentenceCase))
}

func TestRender_EndToEnd(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  map[Style]string
	}{
		{
			name:  "default sample",
			input: "Hello World Example",
			want: map[Style]string{
				CamelCase:          "helloWorldExample",
				PascalCase:         "HelloWorldExample",
				SnakeCase:          "hello_world_example",
				KebabCase:          "hello-world-example",
				ScreamingSnakeCase: "HELLO_WORLD_EXAMPLE",
				TitleCase:          "Hello World Example",
				UpperCase:          "HELLO WORLD EXAMPLE",
				LowerCase:          "hello world example",
				SentenceCase:       "Hello world example",
			},
		},
		{
			name:  "mixed separators",
			input: "my_variable-Name Here",
			want: map[Style]string{
				CamelCase:          "myVariableNameHere",
				PascalCase:         "MyVariableNameHere",
				SnakeCase:          "my_variable_name_here",
				KebabCase:          "my-variable-name-here",
				ScreamingSnakeCase: "MY_VARIABLE_NAME_HERE",
				TitleCase:          "My Variable Name Here",
				UpperCase:          "MY_VARIABLE-NAME HERE",
				LowerCase:          "my_variable-name here",
				SentenceCase:       "My variable name here",
			},
		},
		{
			name:  "acronym run",
			input: "XMLHttpRequest",
			want: map[Style]string{
				CamelCase:          "xmlHttpRequest",
				PascalCase:         "XmlHttpRequest",
				SnakeCase:          "xml_http_request",
				KebabCase:          "xml-http-request",
				ScreamingSnakeCase: "XML_HTTP_REQUEST",
				TitleCase:          "Xml Http Request",
				UpperCase:          "XMLHTTPREQUEST",
				LowerCase:          "xmlhttprequest",
				SentenceCase:       "Xml http request",
			},
		},
		{
			name:  "raw styles keep spacing and punctuation",
			input: "  hello   world!  ",
			want: map[Style]string{
				CamelCase:          "helloWorld!",
				PascalCase:         "HelloWorld!",
				SnakeCase:          "hello_world!",
				KebabCase:          "hello-world!",
				ScreamingSnakeCase: "HELLO_WORLD!",
				TitleCase:          "Hello World!",
				UpperCase:          "  HELLO   WORLD!  ",
				LowerCase:          "  hello   world!  ",
				SentenceCase:       "Hello world!",
			},
		},
		{
			name:  "numeric tokens",
			input: "version 2 release_10",
			want: map[Style]string{
				CamelCase:          "version2Release10",
				PascalCase:         "Version2Release10",
				SnakeCase:          "version_2_release_10",
				KebabCase:          "version-2-release-10",
				ScreamingSnakeCase: "VERSION_2_RELEASE_10",
				TitleCase:          "Version 2 Release 10",
				UpperCase:          "VERSION 2 RELEASE_10",
				LowerCase:          "version 2 release_10",
				SentenceCase:       "Version 2 release 10",
			},
		},
		{
			name:  "special casing",
			input: "straße test",
			want: map[Style]string{
				CamelCase:          "straßeTest",
				PascalCase:         "StraßeTest",
				SnakeCase:          "straße_test",
				KebabCase:          "straße-test",
				ScreamingSnakeCase: "STRASSE_TEST",
				TitleCase:          "Straße Test",
				UpperCase:          "STRASSE TEST",
				LowerCase:          "straße test",
				SentenceCase:       "Straße test",
			},
		},
		{
			name:  "symbols only",
			input: "!!!",
			want: map[Style]string{
				CamelCase:          "!!!",
				PascalCase:         "!!!",
				SnakeCase:          "!!!",
				KebabCase:          "!!!",
				ScreamingSnakeCase: "!!!",
				TitleCase:          "!!!",
				UpperCase:          "!!!",
				LowerCase:          "!!!",
				SentenceCase:       "!!!",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Len(t, tt.want, len(Styles()), "every style needs an expectation")
			seq := tokenizer.Tokenize(tt.input)
			for style, want := range tt.want {
				assert.Equal(t, want, Render(seq, style), "Render(Tokenize(%q), %s)", tt.input, style)
			}
		})
	}
}

func TestRender_FirstLetterExpands(t *testing.T) {
	seq := tokenizer.FromWords("ßa", "ßb")
	assert.Equal(t, "ßaSSb", Render(seq, CamelCase))
	assert.Equal(t, "SSaSSb", Render(seq, PascalCase))
	assert.Equal(t, "SSa SSb", Render(seq, TitleCase))
	assert.Equal(t, "SSa ßb", Render(seq, SentenceCase))
}

func TestRender_UndefinedStyleReturnsInput(t *testing.T) {
	seq := tokenizer.Tokenize("Foo  Bar")
	assert.Equal(t, "Foo  Bar", Render(seq, Style(99)))
	assert.Equal(t, "Foo  Bar", Render(seq, Style(-1)))
	assert.Empty(t, Render(tokenizer.Tokenize(""), Style(99)))
}

func TestRender_DoesNotMutateSequence(t *testing.T) {
	seq := tokenizer.Tokenize("someHTTPValue_here")
	before := append([]string(nil), seq.Words...)
	for _, s := range Styles() {
		_ = Render(seq, s)
	}
	assert.Equal(t, before, seq.Words)
	assert.Equal(t, "someHTTPValue_here", seq.Input)
}

func TestRender_Idempotence(t *testing.T) {
	inputs := []string{"Hello World", "my_variable-Name Here", "straße", "  x  ", "!!!"}
	for _, in := range inputs {
		for _, s := range []Style{UpperCase, LowerCase} {
			once := Convert(in, s)
			twice := Convert(once, s)
			assert.Equal(t, once, twice, "%s applied twice to %q", s, in)
		}
	}
}

func TestRender_Deterministic(t *testing.T) {
	for _, s := range Styles() {
		first := Convert("Deterministic_outputCheck", s)
		for range 3 {
			assert.Equal(t, first, Convert("Deterministic_outputCheck", s))
		}
	}
}

func TestRender_Concurrent(t *testing.T) {
	seq := tokenizer.Tokenize("concurrent Render_check")
	want := make(map[Style]string)
	for _, s := range Styles() {
		want[s] = Render(seq, s)
	}

	var wg sync.WaitGroup
	for range 8 {
		for _, s := range Styles() {
			wg.Add(1)
			go func(s Style) {
				defer wg.Done()
				assert.Equal(t, want[s], Render(seq, s))
			}(s)
		}
	}
	wg.Wait()
}
