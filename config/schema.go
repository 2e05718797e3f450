package config

import (
	"encoding/json"
	"sync"

	"github.com/invopop/jsonschema"

	"github.com/grovetools/docnav/schema"
)

const schemaID = "docnav.config.schema.json"

// GenerateSchema generates the JSON Schema for docnav.yml. Nested objects
// reject unknown keys; unknown top-level keys are extension sections and
// are allowed.
func GenerateSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		AllowAdditionalProperties: false,
		// Expand struct references instead of using $ref for cleaner base schema.
		ExpandedStruct: true,
		// Use YAML field names for property names
		FieldNameTag: "yaml",
	}

	s := r.Reflect(&Config{})
	s.Title = "docnav Configuration"
	s.Description = "Schema for docnav.yml: version rules, navigation sources and extension sections."
	// Extensions are captured from the remaining top-level keys.
	s.AdditionalProperties = nil

	return json.MarshalIndent(s, "", "  ")
}

var (
	schemaValidatorOnce sync.Once
	schemaValidator     *schema.Validator
	schemaValidatorErr  error
)

// NewSchemaValidator returns the compiled configuration schema validator.
func NewSchemaValidator() (*schema.Validator, error) {
	schemaValidatorOnce.Do(func() {
		data, err := GenerateSchema()
		if err != nil {
			schemaValidatorErr = err
			return
		}
		schemaValidator, schemaValidatorErr = schema.Compile(schemaID, data)
	})
	return schemaValidator, schemaValidatorErr
}
