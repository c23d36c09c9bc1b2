package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/questify/questify/internal/engine"
)

func TestCleanQuery(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "machine learning", "machine learning"},
		{"extra whitespace", "  machine \t learning \n", "machine learning"},
		{"control characters", "machine\x00learning", "machine learning"},
		{"empty", "", ""},
		{"only whitespace", " \t\n ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, engine.CleanQuery(tt.input))
		})
	}
}

func TestValidateQuery(t *testing.T) {
	assert.True(t, engine.ValidateQuery([]string{"machine"}))
	assert.False(t, engine.ValidateQuery(nil))
	assert.False(t, engine.ValidateQuery([]string{}))
}
