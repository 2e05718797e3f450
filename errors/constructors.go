package errors

import (
	"fmt"
	"strings"
)

// ConfigNotFound creates a configuration not found error
func ConfigNotFound(path string) *DocnavError {
	return New(ErrCodeConfigNotFound, fmt.Sprintf("configuration file not found: %s", path)).
		WithDetail("path", path)
}

// ConfigInvalid creates an invalid configuration error
func ConfigInvalid(reason string) *DocnavError {
	return New(ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration: %s", reason))
}

// SetNotFound creates a navigation set not found error
func SetNotFound(name string, known []string) *DocnavError {
	return New(ErrCodeSetNotFound, fmt.Sprintf("navigation set '%s' not found", name)).
		WithDetail("set", name).
		WithDetail("available", strings.Join(known, ", "))
}

// SourceNotFound creates a missing navigation document error
func SourceNotFound(path string, err error) *DocnavError {
	return Wrap(err, ErrCodeSourceNotFound, fmt.Sprintf("navigation source not found: %s", path)).
		WithDetail("path", path)
}

// SourceInvalid creates an invalid navigation document error
func SourceInvalid(name string, err error) *DocnavError {
	return Wrap(err, ErrCodeSourceInvalid, fmt.Sprintf("invalid navigation set '%s'", name)).
		WithDetail("set", name)
}

// InvalidVersion creates an invalid documentation version error
func InvalidVersion(version, reason string) *DocnavError {
	return New(ErrCodeInvalidVersion, fmt.Sprintf("invalid documentation version %q: %s", version, reason)).
		WithDetail("version", version).
		WithDetail("reason", reason)
}
