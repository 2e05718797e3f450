package config

import (
	"slices"

	"github.com/Masterminds/semver/v3"
)

// SetFor returns the navigation set for a documentation version: the set of
// the first matching rule, or DefaultSet.
func (c *Config) SetFor(version string) string {
	for _, rule := range c.Versions {
		if rule.Matches(version) {
			return rule.Set
		}
	}
	return c.DefaultSet
}

// Matches reports whether version is listed in Match or satisfies
// Constraint. Versions that are not semantic versions only match by name.
func (r VersionRule) Matches(version string) bool {
	if slices.Contains(r.Match, version) {
		return true
	}
	if r.Constraint == "" {
		return false
	}

	constraint, err := semver.NewConstraint(r.Constraint)
	if err != nil {
		return false
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return false
	}
	return constraint.Check(v)
}
