package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		raw  string
		want Mode
	}{
		{"true", ModeEnabled},
		{"TRUE", ModeEnabled},
		{"  True  ", ModeEnabled},
		{"no_security", ModeNoSecurity},
		{"NO_SECURITY", ModeNoSecurity},
		{"false", ModeDisabled},
		{"", ModeDisabled},
		{"1", ModeDisabled},
		{"on", ModeDisabled},
		{"whatever", ModeDisabled},
	}

	for _, tt := range tests {
		t.Run("raw "+tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseMode(tt.raw))
		})
	}
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "disabled", ModeDisabled.String())
	assert.Equal(t, "enabled", ModeEnabled.String())
	assert.Equal(t, "no_security", ModeNoSecurity.String())
}
