package jsonfmt

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/erraggy/casekit/kiterrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	t.Run("object", func(t *testing.T) {
		out, err := Format([]byte(`{"name":"casekit","version":1.0,"ok":true,"none":null}`))
		require.NoError(t, err)
		want := "{\n  \"name\": \"casekit\",\n  \"version\": 1.0,\n  \"ok\": true,\n  \"none\": null\n}"
		assert.Equal(t, want, string(out))
	})

	t.Run("nested values stay equivalent", func(t *testing.T) {
		in := `{"a":[1,2,{"b":"c"}],"d":{"e":[]}}`
		out, err := Format([]byte(in))
		require.NoError(t, err)
		assert.JSONEq(t, in, string(out))
		assert.Contains(t, string(out), "\n  \"a\": [")
		assert.False(t, strings.HasSuffix(string(out), "\n"), "no trailing newline")
	})

	t.Run("keeps key order", func(t *testing.T) {
		out, err := Format([]byte(`{"z":1,"a":2}`))
		require.NoError(t, err)
		assert.Less(t, strings.Index(string(out), `"z"`), strings.Index(string(out), `"a"`))
	})

	t.Run("sort keys", func(t *testing.T) {
		out, err := Format([]byte(`{"z":1,"a":2}`), WithSortKeys(true))
		require.NoError(t, err)
		assert.Equal(t, "{\n  \"a\": 2,\n  \"z\": 1\n}", string(out))
	})

	t.Run("custom indent", func(t *testing.T) {
		out, err := Format([]byte(`{"a":1}`), WithIndent("\t"))
		require.NoError(t, err)
		assert.Equal(t, "{\n\t\"a\": 1\n}", string(out))

		out, err = Format([]byte(`{"a":1}`), WithIndentSize(4))
		require.NoError(t, err)
		assert.Equal(t, "{\n    \"a\": 1\n}", string(out))
	})

	t.Run("zero indent minifies", func(t *testing.T) {
		out, err := Format([]byte(`{ "a" : 1 }`), WithIndentSize(0))
		require.NoError(t, err)
		assert.Equal(t, `{"a":1}`, string(out))
	})

	t.Run("scalar", func(t *testing.T) {
		out, err := Format([]byte(`  "hi"  `))
		require.NoError(t, err)
		assert.Equal(t, `"hi"`, string(out))
	})

	t.Run("invalid input", func(t *testing.T) {
		out, err := Format([]byte(`{"a":}`))
		assert.Nil(t, out)
		assert.True(t, errors.Is(err, kiterrors.ErrParse))
	})
}

func TestMinify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "object", input: "{\n  \"a\" : 1,\n  \"b\" : [ 1, 2 ]\n}", want: `{"a":1,"b":[1,2]}`},
		{name: "whitespace in strings kept", input: `{ "msg" : "hello  world" }`, want: `{"msg":"hello  world"}`},
		{name: "array", input: "[ 1 ,\t2 ]", want: `[1,2]`},
		{name: "scalar", input: " 42 ", want: `42`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Minify([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(out))
		})
	}

	t.Run("sorted", func(t *testing.T) {
		out, err := Minify([]byte(`{"b":1,"a":{"d":1,"c":2}}`), WithSortKeys(true))
		require.NoError(t, err)
		assert.Equal(t, `{"a":{"c":2,"d":1},"b":1}`, string(out))
	})
}

func TestValidate(t *testing.T) {
	valid := []string{`{}`, `[]`, `null`, `0`, `"x"`, `{"a":[true,false]}`, " \n{\"a\":1}\n "}
	for _, in := range valid {
		assert.NoError(t, Validate([]byte(in)), "Validate(%q)", in)
	}

	tests := []struct {
		name       string
		input      string
		wantLine   int
		wantColumn int
	}{
		{name: "missing value", input: `{"a": }`, wantLine: 1, wantColumn: 7},
		{name: "second line", input: "{\n  \"a\": x\n}", wantLine: 2, wantColumn: 8},
		{name: "trailing comma", input: "[1,2,]", wantLine: 1, wantColumn: 6},
		{name: "empty input", input: "", wantLine: 1, wantColumn: 1},
		{name: "truncated", input: `{"a":1`, wantLine: 1, wantColumn: 6},
		{name: "trailing garbage", input: `{} x`, wantLine: 1, wantColumn: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate([]byte(tt.input), WithSource("payload.json"))
			require.Error(t, err)

			var perr *kiterrors.ParseError
			require.True(t, errors.As(err, &perr), "expected ParseError, got %T", err)
			assert.Equal(t, "payload.json", perr.Source)
			assert.Equal(t, tt.wantLine, perr.Line, "line")
			assert.Equal(t, tt.wantColumn, perr.Column, "column")
			assert.NotEmpty(t, perr.Message)
			assert.Contains(t, err.Error(), "payload.json")
		})
	}
}

func TestOptions_Invalid(t *testing.T) {
	_, err := Format([]byte(`{}`), WithIndent("xx"))
	assert.True(t, errors.Is(err, kiterrors.ErrConfig))

	_, err = Format([]byte(`{}`), WithIndent(strings.Repeat(" ", 11)))
	assert.True(t, errors.Is(err, kiterrors.ErrConfig))

	// Oversized sizes are clamped, not rejected.
	out, err := Format([]byte(`{"a":1}`), WithIndentSize(50))
	require.NoError(t, err)
	assert.Contains(t, string(out), "\n"+strings.Repeat(" ", 10)+`"a"`)
}

func TestFormat_RoundTrip(t *testing.T) {
	in := []byte(`{"users":[{"id":1,"name":"Ada"},{"id":2,"name":"Grace"}],"count":2}`)
	pretty, err := Format(in)
	require.NoError(t, err)
	mini, err := Minify(pretty)
	require.NoError(t, err)
	assert.Equal(t, string(in), string(mini))

	var v map[string]any
	require.NoError(t, json.Unmarshal(pretty, &v))
	assert.Equal(t, float64(2), v["count"])
}
