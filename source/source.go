// Package source loads navigation documents from disk and layers them over
// the built-in sets.
package source

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/grovetools/docnav/config"
	"github.com/grovetools/docnav/errors"
	"github.com/grovetools/docnav/nav"
	"github.com/grovetools/docnav/pkg/format"
	"github.com/grovetools/docnav/schema"
)

var navValidator = sync.OnceValues(schema.NewNavValidator)

// Parse decodes a navigation document, validates it against the navigation
// schema and builds a Set. name overrides the document's own name.
func Parse(name, origin string, data []byte, f format.Format) (*nav.Set, error) {
	label := name
	if label == "" {
		label = origin
	}

	var raw interface{}
	if err := format.Decode(data, f, &raw); err != nil {
		return nil, errors.SourceInvalid(label, fmt.Errorf("decode %s: %w", f, err))
	}
	if raw == nil {
		return nil, errors.SourceInvalid(label, fmt.Errorf("document is empty"))
	}

	validator, err := navValidator()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to build navigation schema validator")
	}
	if err := validator.Validate(raw); err != nil {
		return nil, errors.SourceInvalid(label, err)
	}

	var doc nav.Document
	if err := format.Decode(data, f, &doc); err != nil {
		return nil, errors.SourceInvalid(label, fmt.Errorf("decode %s: %w", f, err))
	}
	return nav.NewSetFromDocument(name, origin, doc)
}

// Load reads a navigation document from path. When neither name nor the
// document provide a set name, the file name without extension is used.
func Load(name, path string) (*nav.Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.SourceNotFound(path, err)
		}
		return nil, errors.Wrap(err, errors.ErrCodeSourceInvalid, "failed to read navigation source").
			WithDetail("path", path)
	}

	f := format.ForPath(path)
	if name == "" {
		var header struct {
			Name string `yaml:"name" json:"name" toml:"name"`
		}
		// Errors surface from Parse below.
		_ = format.Decode(data, f, &header)
		if header.Name == "" {
			name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		}
	}

	set, err := Parse(name, path, data, f)
	if err != nil {
		if dnErr, ok := errors.As(err); ok {
			dnErr.WithDetail("path", path)
		}
		return nil, err
	}
	return set, nil
}

// LoadCatalog returns the built-in catalog with every configured source
// layered over it. A source named like a built-in set replaces it.
func LoadCatalog(cfg *config.Config, logger *logrus.Entry) (*nav.Catalog, error) {
	builtin, err := nav.Builtin()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to load built-in navigation sets")
	}
	if cfg == nil || len(cfg.Sources) == 0 {
		return builtin, nil
	}

	sets := make([]*nav.Set, 0, len(cfg.Sources))
	for _, src := range cfg.Sources {
		set, err := Load(src.Name, src.Path)
		if err != nil {
			return nil, err
		}

		fields := logrus.Fields{"set": set.Name(), "path": src.Path, "entries": set.Len()}
		if _, err := builtin.Set(set.Name()); err == nil {
			logger.WithFields(fields).Warn("Navigation source replaces a built-in set")
		} else {
			logger.WithFields(fields).Debug("Loaded navigation source")
		}
		sets = append(sets, set)
	}

	return builtin.With(sets...), nil
}

// SelectSet picks the set name for a request: an explicit set wins, then
// the version mapping from config. The result must exist in cat.
func SelectSet(cat *nav.Catalog, cfg *config.Config, set, version string) (*nav.Set, error) {
	name := set
	if name == "" {
		if cfg == nil {
			cfg = config.Default()
		}
		if version != "" {
			name = cfg.SetFor(version)
		} else {
			name = cfg.DefaultSet
		}
	}
	return cat.Set(name)
}
