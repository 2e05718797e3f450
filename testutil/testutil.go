// Package testutil holds helpers shared by docnav tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteFile writes content to dir/name, creating parent directories, and
// returns the full path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// NavDocument returns a minimal YAML navigation document with one entry per
// slug. Each entry's text is the slug itself.
func NavDocument(name string, slugs ...string) string {
	doc := "name: \"" + name + "\"\nentries:\n"
	for _, slug := range slugs {
		doc += "  - text: \"" + slug + "\"\n    link: \"/docs/{{version}}/" + slug + "\"\n"
	}
	return doc
}

// SetupProject creates a temporary project directory containing docnav.yml
// with the given content and isolates the global config layer.
func SetupProject(t *testing.T, configYAML string) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, ".xdg"))
	WriteFile(t, dir, "docnav.yml", configYAML)
	return dir
}

// Chdir changes the working directory for the duration of the test.
func Chdir(t *testing.T, dir string) {
	t.Helper()

	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(prev)
	})
}
