package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scriptguard-dev/scriptguard/domain/entities"
)

func TestSettings_ModeResolution(t *testing.T) {
	tests := []struct {
		value string
		want  entities.Mode
	}{
		{"true", entities.ModeEnabled},
		{"TRUE", entities.ModeEnabled},
		{" true ", entities.ModeEnabled},
		{"no_security", entities.ModeNoSecurity},
		{"NO_SECURITY", entities.ModeNoSecurity},
		{"false", entities.ModeDisabled},
		{"", entities.ModeDisabled},
		{"yes", entities.ModeDisabled},
		{"enabled", entities.ModeDisabled},
	}

	for _, tt := range tests {
		t.Run("value "+tt.value, func(t *testing.T) {
			s := Settings{PermissiveMode: tt.value}
			assert.Equal(t, tt.want, s.Mode())
		})
	}
}

func TestSettings_Validate(t *testing.T) {
	assert.NoError(t, Settings{}.Validate())
	assert.NoError(t, Settings{PermissiveMode: "true"}.Validate())
	assert.NoError(t, Settings{PermissiveMode: "false"}.Validate())
	assert.NoError(t, Settings{PermissiveMode: "no_security"}.Validate())

	err := Settings{PermissiveMode: "yes"}.Validate()
	assert.Error(t, err, "unknown explicit values are flagged even though Mode tolerates them")
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvPermissiveMode, "no_security")
	t.Setenv(EnvApprovalPath, "/var/lib/scriptguard/approvals.yaml")

	s := FromEnv()
	assert.Equal(t, entities.ModeNoSecurity, s.Mode())
	assert.Equal(t, "/var/lib/scriptguard/approvals.yaml", s.ApprovalPath)
}

func TestFromEnv_UnsetMeansDisabled(t *testing.T) {
	t.Setenv(EnvPermissiveMode, "")

	s := FromEnv()
	assert.Equal(t, entities.ModeDisabled, s.Mode())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scriptguard.yaml")
	doc := `permissive_mode: "true"
approval_path: /tmp/approvals.yaml
denied_signatures:
  - staticMethod os RemoveAll string
allowed_signatures:
  - method strings.Builder String
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	s, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, entities.ModeEnabled, s.Mode())
	assert.Equal(t, "/tmp/approvals.yaml", s.ApprovalPath)
	assert.Equal(t, []string{"staticMethod os RemoveAll string"}, s.DeniedSignatures)
	assert.Equal(t, []string{"method strings.Builder String"}, s.AllowedSignatures)
}

func TestLoadFile_MissingFileIsZeroSettings(t *testing.T) {
	s, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Settings{}, s)
	assert.Equal(t, entities.ModeDisabled, s.Mode())
}

func TestLoadFile_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scriptguard.yaml")
	require.NoError(t, os.WriteFile(path, []byte("permissive_mode: [oops"), 0o600))

	_, err := LoadFile(path)
	assert.Error(t, err)
}
