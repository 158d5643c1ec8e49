package config

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

const schemaID = "https://github.com/shadowflee/fluxer/config.schema.json"

// GenerateJSONSchema returns the JSON schema of config.toml, keyed by the
// TOML names.
func GenerateJSONSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		FieldNameTag:   "toml",
		DoNotReference: true,
	}
	schema := r.Reflect(&Config{})
	schema.ID = schemaID
	schema.Title = "Fluxer Configuration"
	schema.Description = "Configuration schema for the Fluxer desktop shell"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}
