package config

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// DefaultSetName is the navigation set used when no version rule matches.
const DefaultSetName = "5.3"

// Config is the docnav configuration loaded from docnav.yml or docnav.toml.
type Config struct {
	// Version is the configuration format version.
	Version string `yaml:"version,omitempty" toml:"version,omitempty" jsonschema:"description=Configuration version (e.g. '1.0')"`

	// DefaultSet is the navigation set for versions no rule matches.
	DefaultSet string `yaml:"default_set,omitempty" toml:"default_set,omitempty" jsonschema:"description=Navigation set used when no version rule matches"`

	// Versions maps documentation versions to navigation sets. The first
	// matching rule wins.
	Versions []VersionRule `yaml:"versions,omitempty" toml:"versions,omitempty" jsonschema:"description=Ordered rules mapping documentation versions to navigation sets"`

	// Sources registers navigation documents stored on disk.
	Sources []Source `yaml:"sources,omitempty" toml:"sources,omitempty" jsonschema:"description=Additional navigation sets loaded from files"`

	// Extensions captures all other top-level keys, such as "logging".
	Extensions map[string]interface{} `yaml:",inline" toml:"-" jsonschema:"-"`
}

// VersionRule selects Set for versions satisfying Constraint or listed in
// Match.
type VersionRule struct {
	Set        string   `yaml:"set" toml:"set" jsonschema:"minLength=1,description=Name of the navigation set"`
	Constraint string   `yaml:"constraint,omitempty" toml:"constraint,omitempty" jsonschema:"description=Semantic version constraint such as '>= 5.0 < 5.3'"`
	Match      []string `yaml:"match,omitempty" toml:"match,omitempty" jsonschema:"description=Exact version identifiers such as 'master'"`
}

// Source is a navigation document on disk. Relative paths are resolved
// against the directory of the configuration file declaring them.
type Source struct {
	Name string `yaml:"name" toml:"name" jsonschema:"minLength=1,description=Name the set is registered under"`
	Path string `yaml:"path" toml:"path" jsonschema:"minLength=1,description=Path to a YAML or JSON or TOML navigation document"`
}

// DefaultVersionRules maps the built-in sets onto documentation versions.
func DefaultVersionRules() []VersionRule {
	return []VersionRule{
		{Set: "5.1", Constraint: ">= 5.0, < 5.3"},
		{Set: "5.3", Constraint: ">= 5.3"},
	}
}

// Default returns a configuration with only default values applied.
func Default() *Config {
	cfg := &Config{}
	cfg.SetDefaults()
	return cfg
}

// SetDefaults sets default values for configuration
func (c *Config) SetDefaults() {
	if c.Version == "" {
		c.Version = "1.0"
	}
	if c.DefaultSet == "" {
		c.DefaultSet = DefaultSetName
	}
	if len(c.Versions) == 0 {
		c.Versions = DefaultVersionRules()
	}
}

// UnmarshalExtension decodes a specific extension's configuration from the
// loaded docnav.yml into the provided target struct. The target must be a
// pointer.
//
// Example:
//
//	var logCfg logging.Config
//	err := cfg.UnmarshalExtension("logging", &logCfg)
func (c *Config) UnmarshalExtension(key string, target interface{}) error {
	extensionConfig, ok := c.Extensions[key]
	if !ok {
		// It's not an error if the key doesn't exist.
		// The target struct will simply remain zero-valued.
		return nil
	}

	// Use mapstructure to decode the generic map[string]interface{}
	// into the strongly-typed target struct. We configure it to use
	// `yaml` tags for consistency.
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "yaml",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(extensionConfig); err != nil {
		return fmt.Errorf("failed to decode extension config for '%s': %w", key, err)
	}

	return nil
}

// ConfigSource identifies the origin of a configuration layer.
type ConfigSource string

const (
	SourceDefault  ConfigSource = "default"
	SourceGlobal   ConfigSource = "global"
	SourceProject  ConfigSource = "project"
	SourceOverride ConfigSource = "override"
)

// OverrideSource is one override file and its raw configuration.
type OverrideSource struct {
	Path   string
	Config *Config
}

// LayeredConfig holds every configuration layer separately, along with the
// merged result.
type LayeredConfig struct {
	Default   *Config                 // Config with only default values applied.
	Global    *Config                 // Raw config from the global file.
	Project   *Config                 // Raw config from the project file.
	Overrides []OverrideSource        // Raw configs from override files, in order of application.
	Final     *Config                 // The fully merged and validated config.
	FilePaths map[ConfigSource]string // Maps sources to their file paths.
}
