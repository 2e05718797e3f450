package nav

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yml
var builtinFS embed.FS

// Builtin returns the catalog of sets compiled into the binary. The data is
// decoded once; every call returns the same catalog.
var Builtin = sync.OnceValues(loadBuiltin)

// BuiltinDocuments returns the raw embedded navigation documents, keyed by file
// name.
func BuiltinDocuments() (map[string][]byte, error) {
	files, err := builtinFS.ReadDir("data")
	if err != nil {
		return nil, fmt.Errorf("read embedded navigation data: %w", err)
	}

	docs := make(map[string][]byte, len(files))
	for _, f := range files {
		if f.IsDir() || path.Ext(f.Name()) != ".yml" {
			continue
		}
		data, err := builtinFS.ReadFile(path.Join("data", f.Name()))
		if err != nil {
			return nil, fmt.Errorf("read embedded %s: %w", f.Name(), err)
		}
		docs[f.Name()] = data
	}
	return docs, nil
}

func loadBuiltin() (*Catalog, error) {
	docs, err := BuiltinDocuments()
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(docs))
	for name := range docs {
		names = append(names, name)
	}
	sort.Strings(names)

	sets := make([]*Set, 0, len(names))
	for _, file := range names {
		var doc Document
		if err := yaml.Unmarshal(docs[file], &doc); err != nil {
			return nil, fmt.Errorf("decode embedded %s: %w", file, err)
		}
		set, err := NewSetFromDocument(strings.TrimSuffix(file, ".yml"), OriginBuiltin, doc)
		if err != nil {
			return nil, err
		}
		sets = append(sets, set)
	}
	return NewCatalog(sets...)
}
