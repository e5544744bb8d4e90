// Package schema provides JSON schema generation for ScriptGuard's
// persisted and configured shapes.
package schema

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"

	"github.com/scriptguard-dev/scriptguard/application/config"
	"github.com/scriptguard-dev/scriptguard/domain/entities"
)

// GenerateSchema creates a JSON schema from a Go struct.
// It uses the `invopop/jsonschema` library to reflect on the struct
// and generate a standard JSON Schema (Draft 2020-12).
func GenerateSchema(v interface{}) ([]byte, error) {
	reflector := jsonschema.Reflector{
		ExpandedStruct: true, // Expand struct definitions inline
	}
	schema := reflector.Reflect(v)

	jsonBytes, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}

	return jsonBytes, nil
}

// Settings returns the schema for the host settings document.
func Settings() ([]byte, error) {
	return GenerateSchema(config.Settings{})
}

// ApprovalState returns the schema for the persisted approval state.
func ApprovalState() ([]byte, error) {
	return GenerateSchema(entities.ApprovalState{})
}
