package spec

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// ToJSONSchema returns the JSON schema describing a generation spec,
// suitable for editor validation of spec YAML files.
func ToJSONSchema() (string, error) {
	r := new(jsonschema.Reflector)
	r.DoNotReference = true
	schema := r.Reflect(&Spec{})

	jsonSchemaBytes, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return "", err
	}

	return string(jsonSchemaBytes), nil
}
