package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationErrorError(t *testing.T) {
	tests := []struct {
		name     string
		err      *ValidationError
		contains []string
	}{
		{
			name: "full error",
			err:  NewValidationError("mcp_server", "github", "transport.command", ErrMissingRequiredField),
			contains: []string{
				"mcp_server",
				"github",
				"transport.command",
				"missing required field",
			},
		},
		{
			name: "no field",
			err:  NewValidationError("mcp_server", "search", "", errors.New("unreachable")),
			contains: []string{
				"mcp_server",
				"search",
				"unreachable",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errStr := tt.err.Error()
			for _, substr := range tt.contains {
				assert.Contains(t, errStr, substr)
			}
		})
	}
}

func TestValidationErrorUnwrap(t *testing.T) {
	validationErr := NewValidationError("mcp_server", "github", "transport.url", ErrMissingRequiredField)

	assert.Equal(t, ErrMissingRequiredField, validationErr.Unwrap())
	assert.True(t, errors.Is(validationErr, ErrMissingRequiredField))
}

func TestLoadErrorError(t *testing.T) {
	loadErr := NewLoadError("weft.yaml", errors.New("yaml: unmarshal error"))

	errStr := loadErr.Error()
	assert.Contains(t, errStr, "failed to load")
	assert.Contains(t, errStr, "weft.yaml")
	assert.Contains(t, errStr, "unmarshal error")
}

func TestLoadErrorUnwrap(t *testing.T) {
	baseErr := errors.New("base error")
	loadErr := NewLoadError("weft.yaml", baseErr)

	assert.Equal(t, baseErr, loadErr.Unwrap())
	assert.True(t, errors.Is(loadErr, baseErr))
}
