package tracker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/HonorBot_Go/internal/domain"
)

func TestNormalizeUsername(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr string
	}{
		{name: "plain", input: "alice", want: "alice"},
		{name: "trimmed", input: "  g964 ", want: "g964"},
		{name: "unicode", input: "Ωmega", want: "Ωmega"},
		{name: "empty", input: "", wantErr: "username is required"},
		{name: "blank", input: " \t", wantErr: "username is required"},
		{name: "inner space", input: "al ice", wantErr: "invalid characters"},
		{name: "slash", input: "a/b", wantErr: "invalid characters"},
		{name: "too long", input: strings.Repeat("x", 65), wantErr: "at most 64"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeUsername(tt.input)
			if tt.wantErr != "" {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
