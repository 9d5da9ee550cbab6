package options

import (
	"errors"
	"testing"

	"github.com/erraggy/casekit/kiterrors"
	"github.com/stretchr/testify/assert"
)

func TestRequireOne(t *testing.T) {
	tests := []struct {
		name    string
		sources []Source
		wantErr string
	}{
		{
			name:    "exactly one",
			sources: []Source{{Name: "content", Set: true}, {Name: "file"}},
		},
		{
			name:    "none",
			sources: []Source{{Name: "content"}, {Name: "file"}},
			wantErr: "configuration error for input: one of content, file is required",
		},
		{
			name:    "both",
			sources: []Source{{Name: "content", Set: true}, {Name: "file", Set: true}},
			wantErr: "configuration error for input (value: content, file): only one of content, file may be set",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RequireOne(tt.sources...)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
			assert.True(t, errors.Is(err, kiterrors.ErrConfig))
		})
	}
}
