package nav

import (
	"fmt"
	"slices"

	"github.com/grovetools/docnav/errors"
)

// Catalog is an ordered collection of navigation sets addressable by name.
// It is safe for concurrent use; nothing in it changes after construction.
type Catalog struct {
	order []string
	sets  map[string]*Set
}

// NewCatalog builds a catalog. Set names must be unique.
func NewCatalog(sets ...*Set) (*Catalog, error) {
	c := &Catalog{sets: make(map[string]*Set, len(sets))}
	for _, s := range sets {
		if s == nil {
			continue
		}
		if _, dup := c.sets[s.Name()]; dup {
			return nil, errors.New(errors.ErrCodeInvalidInput, fmt.Sprintf("duplicate navigation set '%s'", s.Name())).
				WithDetail("set", s.Name())
		}
		c.order = append(c.order, s.Name())
		c.sets[s.Name()] = s
	}
	return c, nil
}

// With returns a new catalog with sets layered over c. A set whose name is
// already present replaces the existing one in place; new names are appended.
func (c *Catalog) With(sets ...*Set) *Catalog {
	out := &Catalog{
		order: slices.Clone(c.order),
		sets:  make(map[string]*Set, len(c.sets)+len(sets)),
	}
	for name, s := range c.sets {
		out.sets[name] = s
	}
	for _, s := range sets {
		if s == nil {
			continue
		}
		if _, exists := out.sets[s.Name()]; !exists {
			out.order = append(out.order, s.Name())
		}
		out.sets[s.Name()] = s
	}
	return out
}

// Names lists set names in catalog order.
func (c *Catalog) Names() []string {
	return slices.Clone(c.order)
}

// Sets returns the sets in catalog order.
func (c *Catalog) Sets() []*Set {
	out := make([]*Set, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.sets[name])
	}
	return out
}

// Set looks up a set by name.
func (c *Catalog) Set(name string) (*Set, error) {
	s, ok := c.sets[name]
	if !ok {
		return nil, errors.SetNotFound(name, c.order)
	}
	return s, nil
}

// Entries returns a copy of the named set's entries in display order.
func (c *Catalog) Entries(name string) ([]Entry, error) {
	s, err := c.Set(name)
	if err != nil {
		return nil, err
	}
	return s.Entries(), nil
}
