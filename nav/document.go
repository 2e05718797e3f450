package nav

import (
	stderrors "errors"

	"github.com/grovetools/docnav/errors"
)

var errEmptyName = stderrors.New("set name is empty")

// Document is the serialized form of a navigation set.
type Document struct {
	Name        string  `yaml:"name,omitempty" json:"name,omitempty" toml:"name,omitempty" jsonschema:"description=Name of the navigation set"`
	Description string  `yaml:"description,omitempty" json:"description,omitempty" toml:"description,omitempty" jsonschema:"description=Free-form notes about the set"`
	Entries     []Entry `yaml:"entries" json:"entries" toml:"entries" jsonschema:"required,minItems=1,description=Menu entries in display order"`
}

func invalidSet(name string, err error) error {
	return errors.SourceInvalid(name, err)
}
