package schema

//go:generate sh -c "cd .. && go run ./tools/schema-generator/"

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"

	"github.com/grovetools/docnav/nav"
)

// NavDocumentID is the resource name the navigation schema is compiled under.
const NavDocumentID = "docnav.nav.schema.json"

// NavDocument reflects the JSON Schema of a navigation document from
// nav.Document. Unknown keys are rejected and every link must match
// nav.LinkPattern.
func NavDocument() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		AllowAdditionalProperties: false,
		ExpandedStruct:            true,
		// Use YAML field names for property names
		FieldNameTag: "yaml",
	}

	s := r.Reflect(&nav.Document{})
	s.Title = "Documentation Navigation Set"
	s.Description = "An ordered list of navigation entries whose links contain the " + nav.Placeholder + " placeholder."

	if entry, ok := s.Definitions["Entry"]; ok && entry.Properties != nil {
		if link, ok := entry.Properties.Get("link"); ok {
			link.Pattern = nav.LinkPattern
		}
	}
	return s
}

// GenerateNavDocument renders NavDocument as indented JSON.
func GenerateNavDocument() ([]byte, error) {
	data, err := json.MarshalIndent(NavDocument(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal navigation schema: %w", err)
	}
	return data, nil
}
