package config

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/grovetools/docnav/errors"
)

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.DefaultSet == "" {
		return errors.New(errors.ErrCodeConfigValidation, "default_set cannot be empty")
	}

	for i, rule := range c.Versions {
		if err := validateRule(rule); err != nil {
			return errors.Wrap(err, errors.ErrCodeConfigValidation, fmt.Sprintf("invalid version rule %d", i)).
				WithDetail("rule", i).
				WithDetail("set", rule.Set)
		}
	}

	seen := make(map[string]bool, len(c.Sources))
	for i, src := range c.Sources {
		if err := validateSource(src); err != nil {
			return errors.Wrap(err, errors.ErrCodeConfigValidation, fmt.Sprintf("invalid source %d", i)).
				WithDetail("source", src.Name)
		}
		if seen[src.Name] {
			return errors.New(errors.ErrCodeConfigValidation, fmt.Sprintf("source '%s' is declared more than once", src.Name)).
				WithDetail("source", src.Name)
		}
		seen[src.Name] = true
	}

	return nil
}

func validateRule(rule VersionRule) error {
	if strings.TrimSpace(rule.Set) == "" {
		return errors.New(errors.ErrCodeInvalidInput, "set cannot be empty")
	}
	if rule.Constraint == "" && len(rule.Match) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "rule needs a constraint or a match list")
	}
	if rule.Constraint != "" {
		if _, err := semver.NewConstraint(rule.Constraint); err != nil {
			return errors.Wrap(err, errors.ErrCodeInvalidInput, fmt.Sprintf("invalid constraint %q", rule.Constraint))
		}
	}
	for _, m := range rule.Match {
		if strings.TrimSpace(m) == "" {
			return errors.New(errors.ErrCodeInvalidInput, "match entries cannot be empty")
		}
	}
	return nil
}

func validateSource(src Source) error {
	if strings.TrimSpace(src.Name) == "" {
		return errors.New(errors.ErrCodeInvalidInput, "source name cannot be empty")
	}
	if strings.TrimSpace(src.Path) == "" {
		return errors.New(errors.ErrCodeInvalidInput, fmt.Sprintf("source '%s' has no path", src.Name))
	}
	return nil
}
