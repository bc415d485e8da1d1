package config

import (
	"encoding/json"

	"github.com/grovetools/zism/schema"
	"github.com/invopop/jsonschema"
)

const schemaResource = "zism.schema.json"

// GenerateSchema generates the JSON Schema for zism.yml from the Config struct.
func GenerateSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		// Extensions are stripped before validation, so anything else is a typo.
		AllowAdditionalProperties: false,
		// Expand struct references instead of using $ref for cleaner base schema.
		ExpandedStruct: true,
		// Inline nested structs so the document has no $defs to resolve.
		DoNotReference: true,
		// Use YAML field names for property names
		FieldNameTag: "yaml",
	}

	s := r.Reflect(&Config{})
	s.Title = "zism Configuration"
	s.Description = "Schema for zism.yml."
	s.Version = "http://json-schema.org/draft-07/schema#"

	return json.MarshalIndent(s, "", "  ")
}

// NewSchemaValidator compiles the generated schema into a validator.
func NewSchemaValidator() (*schema.Validator, error) {
	data, err := GenerateSchema()
	if err != nil {
		return nil, err
	}
	return schema.NewValidator(schemaResource, data)
}
