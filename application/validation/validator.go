// Package validation checks raw settings documents against the generated
// JSON schema before they are trusted.
package validation

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/scriptguard-dev/scriptguard/application/schema"
	"github.com/scriptguard-dev/scriptguard/domain/errors"
)

const settingsSchemaURL = "scriptguard://settings"

// SettingsValidator validates settings documents using the JSON schema
// reflected from config.Settings.
type SettingsValidator struct {
	compiled *jsonschema.Schema
}

// NewSettingsValidator compiles the settings schema once.
func NewSettingsValidator() (*SettingsValidator, error) {
	raw, err := schema.Settings()
	if err != nil {
		return nil, fmt.Errorf("failed to generate settings schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(settingsSchemaURL, bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}
	compiled, err := compiler.Compile(settingsSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("failed to compile settings schema: %w", err)
	}
	return &SettingsValidator{compiled: compiled}, nil
}

// ValidateJSON validates a JSON settings document.
func (v *SettingsValidator) ValidateJSON(data []byte) error {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return &errors.ConfigError{Err: fmt.Errorf("settings document is not valid JSON: %w", err)}
	}
	return v.validate(doc)
}

// ValidateYAML validates a YAML settings document by normalizing it to the
// shapes JSON schema validation understands.
func (v *SettingsValidator) ValidateYAML(data []byte) error {
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return &errors.ConfigError{Err: fmt.Errorf("settings document is not valid YAML: %w", err)}
	}
	return v.validate(normalize(doc))
}

func (v *SettingsValidator) validate(doc interface{}) error {
	if err := v.compiled.Validate(doc); err != nil {
		return &errors.ConfigError{Err: err}
	}
	return nil
}

// normalize rewrites yaml.v3 map shapes into the map[string]interface{}
// form the schema validator expects.
func normalize(doc interface{}) interface{} {
	switch t := doc.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(t))
		for k, val := range t {
			out[k] = normalize(val)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, val := range t {
			out[i] = normalize(val)
		}
		return out
	default:
		return doc
	}
}
