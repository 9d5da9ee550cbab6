// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// CaseFixture is an input together with its expected tokens and its
// rendering in every case style, keyed by style display name.
type CaseFixture struct {
	Input string
	Words []string
	Want  map[string]string
}

// CaseFixtures returns a fresh copy of the shared conversion fixtures.
func CaseFixtures() []CaseFixture {
	return []CaseFixture{
		{
			Input: "hello world",
			Words: []string{"hello", "world"},
			Want: map[string]string{
				"camelCase":            "helloWorld",
				"PascalCase":           "HelloWorld",
				"snake_case":           "hello_world",
				"kebab-case":           "hello-world",
				"SCREAMING_SNAKE_CASE": "HELLO_WORLD",
				"Title Case":           "Hello World",
				"UPPERCASE":            "HELLO WORLD",
				"lowercase":            "hello world",
				"Sentence case":        "Hello world",
			},
		},
		{
			Input: "XMLHttpRequest",
			Words: []string{"xml", "http", "request"},
			Want: map[string]string{
				"camelCase":            "xmlHttpRequest",
				"PascalCase":           "XmlHttpRequest",
				"snake_case":           "xml_http_request",
				"kebab-case":           "xml-http-request",
				"SCREAMING_SNAKE_CASE": "XML_HTTP_REQUEST",
				"Title Case":           "Xml Http Request",
				"UPPERCASE":            "XMLHTTPREQUEST",
				"lowercase":            "xmlhttprequest",
				"Sentence case":        "Xml http request",
			},
		},
		{
			Input: "my_variable-Name Here",
			Words: []string{"my", "variable", "name", "here"},
			Want: map[string]string{
				"camelCase":            "myVariableNameHere",
				"PascalCase":           "MyVariableNameHere",
				"snake_case":           "my_variable_name_here",
				"kebab-case":           "my-variable-name-here",
				"SCREAMING_SNAKE_CASE": "MY_VARIABLE_NAME_HERE",
				"Title Case":           "My Variable Name Here",
				"UPPERCASE":            "MY_VARIABLE-NAME HERE",
				"lowercase":            "my_variable-name here",
				"Sentence case":        "My variable name here",
			},
		},
		{
			Input: "  __--  ",
			Words: nil,
			Want: map[string]string{
				"camelCase":            "",
				"PascalCase":           "",
				"snake_case":           "",
				"kebab-case":           "",
				"SCREAMING_SNAKE_CASE": "",
				"Title Case":           "",
				"UPPERCASE":            "",
				"lowercase":            "",
				"Sentence case":        "",
			},
		},
	}
}

// WriteTempText writes content to a file named name in a temporary
// directory and returns its path.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempText(t *testing.T, name, content string) string {
	t.Helper()

	tmpFile := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(tmpFile, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write temporary file: %v", err)
	}

	return tmpFile
}

// WriteTempJSON marshals v to compact JSON and writes it to a temporary file.
// Returns the path to the temporary file.
func WriteTempJSON(t *testing.T, v any) string {
	t.Helper()

	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Failed to marshal value to JSON: %v", err)
	}

	return WriteTempText(t, "test.json", string(data))
}
