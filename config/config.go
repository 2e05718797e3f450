package config

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/grovetools/docnav/errors"
	"github.com/grovetools/docnav/pkg/format"
)

var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

// configNames are searched in order in every directory.
var configNames = []string{
	"docnav.yml",
	"docnav.yaml",
	"docnav.toml",
	".docnav.yml",
	".docnav.yaml",
	".docnav.toml",
}

// overrideNames are applied, in order, on top of the project config.
var overrideNames = []string{
	"docnav.override.yml",
	"docnav.override.yaml",
	"docnav.override.toml",
}

// Load reads, validates and parses a single configuration file. Relative
// source paths are resolved against the file's directory.
func Load(path string) (*Config, error) {
	cfg, err := loadRaw(path)
	if err != nil {
		return nil, err
	}

	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDefault finds and loads the configuration with hierarchical merging:
// 1. Global config (~/.config/docnav/docnav.yml) - base layer
// 2. Project config (docnav.yml) - overrides global
// 3. Local override (docnav.override.yml) - overrides all
func LoadDefault() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to get current directory")
	}

	return LoadFrom(cwd)
}

// LoadFrom loads configuration with hierarchical merging starting from the given directory
func LoadFrom(startDir string) (*Config, error) {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.WarnLevel)
	return LoadFromWithLogger(startDir, logger)
}

// LoadFromWithLogger loads configuration with hierarchical merging and logging
func LoadFromWithLogger(startDir string, logger *logrus.Logger) (*Config, error) {
	layered, err := loadLayers(startDir, logger)
	if err != nil {
		return nil, err
	}

	logger.Debug("Configuration loaded and validated successfully")

	// Log the merged config at debug level
	if logger.IsLevelEnabled(logrus.DebugLevel) {
		configData, err := yaml.Marshal(layered.Final)
		if err == nil {
			logger.Debugf("Merged configuration:\n%s", string(configData))
		}
	}

	return layered.Final, nil
}

// LoadLayered loads every configuration layer without merging them, for
// analysis purposes. It also computes the final merged config.
func LoadLayered(startDir string) (*LayeredConfig, error) {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.WarnLevel)
	return loadLayers(startDir, logger)
}

func loadLayers(startDir string, logger *logrus.Logger) (*LayeredConfig, error) {
	projectPath, err := FindConfigFile(startDir)
	if err != nil {
		return nil, err
	}

	layered := &LayeredConfig{
		Default:   Default(),
		FilePaths: make(map[ConfigSource]string),
	}

	// 1. Global config (optional)
	globalPath := getXDGConfigPath()
	if globalPath != "" && !samePath(globalPath, projectPath) {
		if _, err := os.Stat(globalPath); err == nil {
			logger.WithField("path", globalPath).WithField("layer", SourceGlobal).Debug("Loading global configuration")
			globalConfig, err := loadRaw(globalPath)
			if err != nil {
				logger.WithError(err).Warn("Failed to load global configuration, continuing without it")
			} else {
				layered.Global = globalConfig
				layered.FilePaths[SourceGlobal] = globalPath
			}
		}
	}

	// 2. Project config (required)
	logger.WithField("path", projectPath).WithField("layer", SourceProject).Debug("Loading project configuration")
	projectConfig, err := loadRaw(projectPath)
	if err != nil {
		return nil, err
	}
	layered.Project = projectConfig
	layered.FilePaths[SourceProject] = projectPath

	// 3. Override files (optional)
	projectDir := filepath.Dir(projectPath)
	for _, name := range overrideNames {
		overridePath := filepath.Join(projectDir, name)
		if _, err := os.Stat(overridePath); err != nil {
			continue
		}

		logger.WithField("path", overridePath).WithField("layer", SourceOverride).Debug("Loading local override configuration")
		overrideConfig, err := loadRaw(overridePath)
		if err != nil {
			logger.WithError(err).Warn("Failed to load override file, skipping")
			continue
		}
		layered.Overrides = append(layered.Overrides, OverrideSource{Path: overridePath, Config: overrideConfig})
	}

	final := layered.Project
	if layered.Global != nil {
		logger.Debug("Merging project configuration over global configuration")
		final = mergeConfigs(layered.Global, layered.Project)
	}
	for _, override := range layered.Overrides {
		final = mergeConfigs(final, override.Config)
	}

	// Copy before applying defaults so the raw layers stay untouched.
	merged := *final
	merged.SetDefaults()
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	layered.Final = &merged

	return layered, nil
}

// LoadFromBytes parses YAML configuration without resolving source paths.
func LoadFromBytes(data []byte) (*Config, error) {
	return LoadFromBytesFormat(data, format.YAML)
}

// LoadFromBytesFormat parses configuration in the given format, validating
// it against the configuration schema first.
func LoadFromBytesFormat(data []byte, f format.Format) (*Config, error) {
	cfg, err := parse(data, f)
	if err != nil {
		return nil, err
	}

	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadRaw reads and parses one file without applying defaults, so layers
// can be merged.
func loadRaw(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigNotFound(path)
		}
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to read config file").
			WithDetail("path", path)
	}

	cfg, err := parse(data, format.ForPath(path))
	if err != nil {
		if dnErr, ok := errors.As(err); ok {
			dnErr.WithDetail("path", path)
		}
		return nil, err
	}

	cfg.resolveSourcePaths(filepath.Dir(path))
	return cfg, nil
}

func parse(data []byte, f format.Format) (*Config, error) {
	if f == format.JSON {
		// Config has no json tags; JSON is read as YAML.
		f = format.YAML
	}
	expanded := []byte(expandEnvVars(string(data)))

	// Decode into plain maps first so the schema sees unknown keys.
	var raw interface{}
	if err := format.Decode(expanded, f, &raw); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse "+string(f)+" configuration")
	}

	validator, err := NewSchemaValidator()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to create validator")
	}
	if raw != nil {
		if err := validator.Validate(raw); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "schema validation failed")
		}
	}

	var cfg Config
	if err := format.Decode(expanded, f, &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse "+string(f)+" configuration")
	}
	if f != format.YAML {
		// Only the YAML decoder fills the inline Extensions map.
		cfg.Extensions = rawExtensions(raw)
	}

	return &cfg, nil
}

// rawExtensions collects the top-level keys that are not part of Config.
func rawExtensions(raw interface{}) map[string]interface{} {
	m, ok := raw.(map[string]interface{})
	if !ok {
		return nil
	}

	known := map[string]bool{"version": true, "default_set": true, "versions": true, "sources": true}
	var ext map[string]interface{}
	for key, value := range m {
		if known[key] {
			continue
		}
		if ext == nil {
			ext = make(map[string]interface{})
		}
		ext[key] = value
	}
	return ext
}

func (c *Config) resolveSourcePaths(dir string) {
	for i, src := range c.Sources {
		path := expandPath(src.Path)
		if path != "" && !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		c.Sources[i].Path = path
	}
}

// FindConfigFile searches for docnav configuration files with the following precedence:
// 1. Current directory up to filesystem root
// 2. XDG config directory (~/.config/docnav/docnav.yml)
func FindConfigFile(startDir string) (string, error) {
	// 1. Search from current directory up to filesystem root
	dir := startDir
	for {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	// 2. Check XDG config directory
	if xdgConfigPath := getXDGConfigPath(); xdgConfigPath != "" {
		if info, err := os.Stat(xdgConfigPath); err == nil && !info.IsDir() {
			return xdgConfigPath, nil
		}
	}

	return "", errors.ConfigNotFound(startDir).WithDetail("searchPath", startDir)
}

// expandEnvVars replaces ${VAR} with environment variable values
func expandEnvVars(content string) string {
	return envVarRegex.ReplaceAllStringFunc(content, func(match string) string {
		varName := envVarRegex.FindStringSubmatch(match)[1]

		// Handle default values: ${VAR:-default}
		parts := strings.SplitN(varName, ":-", 2)
		varName = parts[0]
		defaultValue := ""
		if len(parts) > 1 {
			defaultValue = parts[1]
		}

		if value := os.Getenv(varName); value != "" {
			return value
		}

		return defaultValue
	})
}

// getXDGConfigPath returns the XDG config path for docnav
func getXDGConfigPath() string {
	// Check XDG_CONFIG_HOME first
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "docnav", "docnav.yml")
	}

	// Fall back to ~/.config
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".config", "docnav", "docnav.yml")
	}

	return ""
}

// expandPath expands tilde in file paths
func expandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return a == b
	}
	return absA == absB
}
