package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/docnav/errors"
	"github.com/grovetools/docnav/nav"
	"github.com/grovetools/docnav/pkg/format"
	"github.com/grovetools/docnav/source"
	"github.com/grovetools/docnav/testutil"
)

// execute runs the docnav command tree in an isolated working directory and
// returns what it wrote to stdout.
func execute(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	stdout, _, err := executeWithStderr(t, dir, args...)
	return stdout, err
}

func executeWithStderr(t *testing.T, dir string, args ...string) (string, string, error) {
	t.Helper()

	if dir == "" {
		dir = t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, ".xdg"))
	}
	testutil.Chdir(t, dir)

	root := NewRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func decodeEntries(t *testing.T, out string) []nav.Entry {
	t.Helper()
	var entries []nav.Entry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	return entries
}

func TestListBuiltinSet(t *testing.T) {
	out, err := execute(t, "", "list", "--set", "5.1", "--json")
	require.NoError(t, err)

	entries := decodeEntries(t, out)
	require.Len(t, entries, 54)
	assert.Equal(t, nav.Entry{Text: "翻译说明", Link: "/docs/{{version}}/about"}, entries[0])
	assert.Equal(t, nav.Entry{Text: "序列化", Link: "/docs/{{version}}/eloquent-serialization"}, entries[53])
}

func TestListDefaultSet(t *testing.T) {
	out, err := execute(t, "", "list", "--json")
	require.NoError(t, err)
	assert.Len(t, decodeEntries(t, out), 66)
}

func TestListVersionResolveAndMatch(t *testing.T) {
	out, err := execute(t, "", "list", "--version", "5.2", "--resolve",
		"--match", "eloquent*", "--match", "!eloquent-collections", "--json")
	require.NoError(t, err)

	entries := decodeEntries(t, out)
	require.Len(t, entries, 4)
	for _, e := range entries {
		assert.True(t, strings.HasPrefix(e.Link, "/docs/5.2/eloquent"), e.Link)
	}
}

func TestListPlainTable(t *testing.T) {
	out, err := execute(t, "", "list", "--set", "5.1")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 55, "header plus one line per entry")
	assert.Contains(t, lines[1], "/docs/{{version}}/about")
}

func TestListErrors(t *testing.T) {
	_, err := execute(t, "", "list", "--resolve")
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))

	_, err = execute(t, "", "list", "--set", "4.2")
	assert.True(t, errors.Is(err, errors.ErrCodeSetNotFound))

	_, err = execute(t, "", "list", "--version", "5 3", "--resolve")
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidVersion))
}

func TestSetsWithConfiguredSource(t *testing.T) {
	dir := testutil.SetupProject(t, `
default_set: "zh-5.5"
sources:
  - name: "zh-5.5"
    path: nav/5.5.yml
`)
	testutil.WriteFile(t, dir, "nav/5.5.yml", testutil.NavDocument("zh-5.5", "installation", "routing"))

	out, err := execute(t, dir, "sets", "--json")
	require.NoError(t, err)

	var infos []SetInfo
	require.NoError(t, json.Unmarshal([]byte(out), &infos))
	require.Len(t, infos, 3)
	assert.Equal(t, "5.1", infos[0].Name)
	assert.Equal(t, "builtin", infos[0].Origin)
	assert.Equal(t, SetInfo{
		Name:    "zh-5.5",
		Entries: 2,
		Origin:  filepath.Join(dir, "nav", "5.5.yml"),
		Default: true,
	}, infos[2])

	out, err = execute(t, dir, "list", "--json")
	require.NoError(t, err)
	assert.Len(t, decodeEntries(t, out), 2, "default_set selects the configured source")
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	good := testutil.WriteFile(t, dir, "good.yml", testutil.NavDocument("good", "about"))
	bad := testutil.WriteFile(t, dir, "bad.yml", "entries:\n  - text: \"\"\n    link: \"/docs/5.1/about\"\n")

	out, err := execute(t, "", "validate", good)
	require.NoError(t, err)
	assert.Contains(t, out, `set "good", 1 entries`)

	out, err = execute(t, "", "validate", good, bad)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeSourceInvalid))
	assert.Contains(t, err.Error(), "1 of 2")
	assert.Contains(t, out, "/entries/0/text")
}

func TestValidateWithoutTargets(t *testing.T) {
	_, err := execute(t, "", "validate")
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
}

func TestExportRoundTrip(t *testing.T) {
	out, err := execute(t, "", "export", "--set", "5.1", "--format", "toml")
	require.NoError(t, err)

	set, err := source.Parse("", "export", []byte(out), format.TOML)
	require.NoError(t, err)
	assert.Equal(t, "5.1", set.Name())

	builtin, err := nav.Builtin()
	require.NoError(t, err)
	want, err := builtin.Entries("5.1")
	require.NoError(t, err)
	assert.Equal(t, want, set.Entries())
}

func TestExportResolved(t *testing.T) {
	out, err := execute(t, "", "export", "--version", "5.3", "--format", "json")
	require.NoError(t, err)

	var doc nav.Document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "5.3", doc.Name)
	require.Len(t, doc.Entries, 66)
	assert.NotContains(t, out, nav.Placeholder)
	assert.True(t, strings.HasPrefix(doc.Entries[0].Link, "/docs/5.3/"))

	_, err = execute(t, "", "export", "--format", "xml")
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
}

func TestSchema(t *testing.T) {
	out, err := execute(t, "", "schema")
	require.NoError(t, err)
	assert.Contains(t, out, `"entries"`)

	out, err = execute(t, "", "schema", "config")
	require.NoError(t, err)
	assert.Contains(t, out, `"default_set"`)

	_, err = execute(t, "", "schema", "other")
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
}

func TestConfigLayers(t *testing.T) {
	dir := testutil.SetupProject(t, `default_set: "5.1"`)
	testutil.WriteFile(t, dir, "docnav.override.yml", `default_set: "5.3"`)

	out, err := execute(t, dir, "config-layers")
	require.NoError(t, err)
	assert.Contains(t, out, "--- # PROJECT CONFIG")
	assert.Contains(t, out, "--- # OVERRIDE CONFIG")
	assert.Contains(t, out, "# Source: "+filepath.Join(dir, "docnav.yml"))

	final := out[strings.Index(out, "FINAL MERGED CONFIG"):]
	assert.Contains(t, final, "default_set: \"5.3\"")
}

func TestVersionJSON(t *testing.T) {
	out, err := execute(t, "", "version", "--json")
	require.NoError(t, err)

	var info map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, "dev", info["version"])
}

func TestConfigFlagDrivesLogging(t *testing.T) {
	t.Setenv("DOCNAV_LOG_LEVEL", "")

	cfgDir := t.TempDir()
	logPath := filepath.Join(cfgDir, "logs", "docnav.log")
	cfgPath := testutil.WriteFile(t, cfgDir, "custom.yml", `
default_set: "5.1"
logging:
  level: debug
  file:
    enabled: true
    path: `+logPath+`
`)

	// The working directory holds no configuration; only --config names it.
	out, _, err := executeWithStderr(t, "", "list", "--json", "--config", cfgPath)
	require.NoError(t, err)
	assert.Len(t, decodeEntries(t, out), 54, "default_set comes from --config")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Listing navigation entries")
	assert.Contains(t, string(data), "set=5.1")
}

func TestVerboseLogsToCommandStderr(t *testing.T) {
	t.Setenv("DOCNAV_LOG_LEVEL", "")

	out, stderr, err := executeWithStderr(t, "", "list", "--set", "5.3", "--json", "--verbose")
	require.NoError(t, err)
	assert.Len(t, decodeEntries(t, out), 66)
	assert.Contains(t, stderr, "[DEBUG]")
	assert.Contains(t, stderr, "Listing navigation entries")
}

func TestValidateWarnsAboutBuiltinNames(t *testing.T) {
	dir := t.TempDir()
	shadow := testutil.WriteFile(t, dir, "shadow.yml", testutil.NavDocument("5.1", "about"))

	out, err := execute(t, "", "validate", shadow)
	require.NoError(t, err)
	assert.Contains(t, out, `set "5.1" replaces the built-in set`)
}
