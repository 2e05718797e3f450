// Package nav holds documentation navigation sets: ordered, immutable lists
// of menu entries whose links carry a version placeholder.
package nav

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/grovetools/docnav/errors"
)

// Placeholder is the token substituted with a concrete documentation version.
const Placeholder = "{{version}}"

// LinkPrefix starts every navigation link.
const LinkPrefix = "/docs/" + Placeholder + "/"

// LinkPattern matches a well-formed link template: the prefix followed by a
// single non-empty slug segment.
const LinkPattern = `^/docs/\{\{version\}\}/[^/\s{}]+$`

var linkRegex = regexp.MustCompile(LinkPattern)

// Entry is one menu item of a documentation navigation set.
type Entry struct {
	Text string `yaml:"text" json:"text" toml:"text" jsonschema:"required,minLength=1,description=Human-readable menu label"`
	Link string `yaml:"link" json:"link" toml:"link" jsonschema:"required,description=Link template of the form /docs/{{version}}/<slug>"`
}

// Slug returns the trailing path segment of the link.
func (e Entry) Slug() string {
	return strings.TrimPrefix(e.Link, LinkPrefix)
}

// Validate checks that both fields are populated and the link is well-formed.
func (e Entry) Validate() error {
	if strings.TrimSpace(e.Text) == "" {
		return fmt.Errorf("entry text is empty (link %q)", e.Link)
	}
	if e.Link == "" {
		return fmt.Errorf("entry %q has an empty link", e.Text)
	}
	if !linkRegex.MatchString(e.Link) {
		return fmt.Errorf("entry %q: link %q does not match %s", e.Text, e.Link, LinkPrefix+"<slug>")
	}
	return nil
}

// Resolve returns a copy of the entry with the version placeholder replaced.
// The version must pass ValidateVersion.
func (e Entry) Resolve(version string) (Entry, error) {
	if err := ValidateVersion(version); err != nil {
		return Entry{}, err
	}
	return Entry{Text: e.Text, Link: strings.ReplaceAll(e.Link, Placeholder, version)}, nil
}

// ValidateVersion rejects versions that would leave a placeholder behind or
// change the shape of a resolved path.
func ValidateVersion(version string) error {
	switch {
	case version == "":
		return errors.InvalidVersion(version, "version is empty")
	case strings.ContainsAny(version, "{}"):
		return errors.InvalidVersion(version, "braces are not allowed")
	case strings.Contains(version, "/"):
		return errors.InvalidVersion(version, "'/' is not allowed")
	case strings.IndexFunc(version, unicode.IsSpace) >= 0:
		return errors.InvalidVersion(version, "whitespace is not allowed")
	}
	return nil
}

// ValidateEntries validates every entry and reports the first problem with
// its position.
func ValidateEntries(entries []Entry) error {
	if len(entries) == 0 {
		return fmt.Errorf("navigation set has no entries")
	}
	for i, e := range entries {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
	}
	return nil
}
