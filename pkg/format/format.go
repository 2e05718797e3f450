// Package format decodes and encodes documents in the serialization formats
// docnav reads and writes.
package format

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a document serialization format.
type Format string

const (
	YAML Format = "yaml"
	JSON Format = "json"
	TOML Format = "toml"
)

// All lists the supported formats.
var All = []Format{YAML, JSON, TOML}

// Parse converts a user-supplied name such as "yml" into a Format.
func Parse(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "yaml", "yml":
		return YAML, nil
	case "json":
		return JSON, nil
	case "toml":
		return TOML, nil
	}
	return "", fmt.Errorf("unsupported format %q (want yaml, json or toml)", name)
}

// ForPath picks the format from a file extension, defaulting to YAML.
func ForPath(path string) Format {
	f, err := Parse(filepath.Ext(path))
	if err != nil {
		return YAML
	}
	return f
}

// Decode unmarshals data into v.
func Decode(data []byte, f Format, v interface{}) error {
	switch f {
	case JSON:
		return json.Unmarshal(data, v)
	case TOML:
		return toml.Unmarshal(data, v)
	case YAML, "":
		return yaml.Unmarshal(data, v)
	}
	return fmt.Errorf("unsupported format %q", f)
}

// Encode marshals v. JSON output is indented and leaves non-ASCII and HTML
// characters unescaped.
func Encode(v interface{}, f Format) ([]byte, error) {
	var buf bytes.Buffer
	switch f {
	case JSON:
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return nil, err
		}
	case TOML:
		enc := toml.NewEncoder(&buf)
		enc.SetIndentTables(true)
		if err := enc.Encode(v); err != nil {
			return nil, err
		}
	case YAML, "":
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported format %q", f)
	}
	return buf.Bytes(), nil
}
