// Package config loads and validates ScriptGuard host settings.
package config

import (
	stdErrors "errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/scriptguard-dev/scriptguard/domain/entities"
	"github.com/scriptguard-dev/scriptguard/domain/errors"
)

// Environment variables recognized by FromEnv.
const (
	EnvPermissiveMode = "SCRIPTGUARD_PERMISSIVE"
	EnvApprovalPath   = "SCRIPTGUARD_APPROVAL_PATH"
)

// Settings is the host configuration surface. PermissiveMode follows the
// switch semantics of Mode: "true" enables the permissive arbiter,
// "no_security" disables enforcement entirely, anything else leaves the
// arbiter off.
type Settings struct {
	PermissiveMode    string   `json:"permissive_mode,omitempty" yaml:"permissive_mode,omitempty" validate:"omitempty,oneof=true false no_security"`
	ApprovalPath      string   `json:"approval_path,omitempty" yaml:"approval_path,omitempty"`
	DeniedSignatures  []string `json:"denied_signatures,omitempty" yaml:"denied_signatures,omitempty"`
	AllowedSignatures []string `json:"allowed_signatures,omitempty" yaml:"allowed_signatures,omitempty"`
}

var validate = validator.New()

// FromEnv builds Settings from the process environment. Unset variables
// leave the zero values in place.
func FromEnv() Settings {
	return Settings{
		PermissiveMode: os.Getenv(EnvPermissiveMode),
		ApprovalPath:   os.Getenv(EnvApprovalPath),
	}
}

// LoadFile reads Settings from a YAML file. A missing file yields zero
// Settings, matching an unconfigured host.
func LoadFile(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Settings{}, nil
	}
	if err != nil {
		return Settings{}, &errors.ConfigError{Err: err}
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, &errors.ConfigError{Err: fmt.Errorf("failed to parse %s: %w", path, err)}
	}
	return s, nil
}

// Validate checks the settings against their struct constraints. Note that
// Mode itself tolerates unknown PermissiveMode values (they parse as
// disabled); Validate is the stricter check for explicit configuration.
func (s Settings) Validate() error {
	if err := validate.Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if stdErrors.As(err, &verrs) && len(verrs) > 0 {
			return &errors.ConfigError{Err: err, Field: verrs[0].Field()}
		}
		return &errors.ConfigError{Err: err}
	}
	return nil
}

// Mode resolves the configured permissive mode.
func (s Settings) Mode() entities.Mode {
	return entities.ParseMode(s.PermissiveMode)
}
