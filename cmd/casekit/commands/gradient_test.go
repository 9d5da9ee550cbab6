package commands

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/erraggy/casekit/gradient"
	"github.com/erraggy/casekit/kiterrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupGradientFlags(t *testing.T) {
	fs, flags := SetupGradientFlags()

	assert.Equal(t, "linear", flags.Type)
	assert.Equal(t, gradient.DefaultAngle, flags.Angle)
	assert.Empty(t, flags.Stops)

	require.NoError(t, fs.Parse([]string{"--stop", "#fff 10%", "--stop", "#000"}))
	assert.Equal(t, stopList{{Color: "#fff", Position: 10}, {Color: "#000", Position: 0}}, flags.Stops)
	assert.Equal(t, "#fff 10%, #000 0%", flags.Stops.String())

	fs2, _ := SetupGradientFlags()
	assert.Error(t, fs2.Parse([]string{"--stop", "red"}))
}

func TestHandleGradient(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "default",
			want: "linear-gradient(90deg, #3b82f6 0%, #8b5cf6 100%)\n",
		},
		{
			name: "declaration",
			args: []string{"--declaration"},
			want: "background: linear-gradient(90deg, #3b82f6 0%, #8b5cf6 100%);\n",
		},
		{
			name: "conic with sorted stops",
			args: []string{"--type", "conic", "--angle", "45", "--stop", "#000 100%", "--stop", "#fff 0%"},
			want: "conic-gradient(from 45deg, #fff 0%, #000 100%)\n",
		},
		{
			name: "radial ignores angle",
			args: []string{"--type", "Radial", "--angle", "10"},
			want: "radial-gradient(circle, #3b82f6 0%, #8b5cf6 100%)\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := captureStdout(t)
			require.NoError(t, HandleGradient(tt.args))
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestHandleGradient_JSON(t *testing.T) {
	out := captureStdout(t)
	require.NoError(t, HandleGradient([]string{"--format", "json"}))

	var got map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "linear", got["type"])
	assert.Equal(t, float64(90), got["angle"])
	assert.Len(t, got["stops"], 2)
	assert.Equal(t, "linear-gradient(90deg, #3b82f6 0%, #8b5cf6 100%)", got["css"])
	assert.Equal(t, "background: linear-gradient(90deg, #3b82f6 0%, #8b5cf6 100%);", got["declaration"])
}

func TestHandleGradient_YAML(t *testing.T) {
	out := captureStdout(t)
	require.NoError(t, HandleGradient([]string{"--format", "yaml", "--type", "radial"}))
	assert.Contains(t, out.String(), "type: radial")
	// '#' after a space would start a comment, so the emitter quotes the value.
	assert.Contains(t, out.String(), "css: ")
	assert.Contains(t, out.String(), "radial-gradient(circle, #3b82f6 0%, #8b5cf6 100%)")
}

// TestHandleGradient_ErrorPaths tests error handling for the gradient command.
func TestHandleGradient_ErrorPaths(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "unknown type", args: []string{"--type", "spiral"}, wantErr: kiterrors.ErrConfig},
		{name: "angle out of range", args: []string{"--angle", "400"}, wantErr: kiterrors.ErrConfig},
		{name: "one stop", args: []string{"--stop", "#fff"}, wantErr: kiterrors.ErrConfig},
		{
			name: "six stops",
			args: []string{
				"--stop", "#000", "--stop", "#111", "--stop", "#222",
				"--stop", "#333", "--stop", "#444", "--stop", "#555",
			},
			wantErr: kiterrors.ErrResourceLimit,
		},
		{name: "positional argument", args: []string{"extra"}},
		{name: "invalid format", args: []string{"--format", "html"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			captureStdout(t)
			err := HandleGradient(tt.args)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			}
		})
	}
}
