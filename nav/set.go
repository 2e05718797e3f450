package nav

import (
	"slices"
	"strings"
)

// OriginBuiltin marks sets compiled into the binary.
const OriginBuiltin = "builtin"

// Set is a named, validated navigation list. A Set never changes after
// construction; accessors hand out copies.
type Set struct {
	name        string
	description string
	origin      string
	entries     []Entry
}

// NewSet validates entries and wraps a private copy of them in a Set.
func NewSet(name, origin string, entries []Entry) (*Set, error) {
	return newSet(Document{Name: name, Entries: entries}, origin)
}

// NewSetFromDocument builds a Set from a decoded navigation document.
// name overrides the document's own name when non-empty.
func NewSetFromDocument(name, origin string, doc Document) (*Set, error) {
	if name != "" {
		doc.Name = name
	}
	return newSet(doc, origin)
}

func newSet(doc Document, origin string) (*Set, error) {
	if doc.Name == "" {
		return nil, invalidSet(doc.Name, errEmptyName)
	}
	if err := ValidateEntries(doc.Entries); err != nil {
		return nil, invalidSet(doc.Name, err)
	}
	return &Set{
		name:        doc.Name,
		description: doc.Description,
		origin:      origin,
		entries:     slices.Clone(doc.Entries),
	}, nil
}

// Name returns the set's name.
func (s *Set) Name() string { return s.name }

// Description returns the optional free-form description.
func (s *Set) Description() string { return s.description }

// Origin is OriginBuiltin or the path the set was loaded from.
func (s *Set) Origin() string { return s.origin }

// Len returns the number of entries.
func (s *Set) Len() int { return len(s.entries) }

// Entries returns the entries in display order.
func (s *Set) Entries() []Entry {
	return slices.Clone(s.entries)
}

// Resolve returns the entries with the version placeholder substituted.
func (s *Set) Resolve(version string) ([]Entry, error) {
	return ResolveEntries(s.entries, version)
}

// Document returns the set in its serializable form.
func (s *Set) Document() Document {
	return Document{
		Name:        s.name,
		Description: s.description,
		Entries:     s.Entries(),
	}
}

// ResolveEntries substitutes version into every link of entries.
func ResolveEntries(entries []Entry, version string) ([]Entry, error) {
	if err := ValidateVersion(version); err != nil {
		return nil, err
	}
	out := make([]Entry, len(entries))
	for i, e := range entries {
		out[i] = Entry{Text: e.Text, Link: strings.ReplaceAll(e.Link, Placeholder, version)}
	}
	return out, nil
}
