package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/docnav/config"
)

func TestNewLoggerIsCachedPerComponent(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	logger := NewLogger("test-component")
	require.NotNil(t, logger)
	assert.Equal(t, "test-component", logger.Data["component"])

	assert.Same(t, logger, NewLogger("test-component"))
	assert.NotSame(t, logger, NewLogger("other-component"))
}

func TestTextFormatter(t *testing.T) {
	var buf bytes.Buffer

	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&TextFormatter{Config: FormatConfig{DisableTimestamp: true}})

	logger.WithField("component", "nav").
		WithField("set", "5.1").
		WithField("entries", 54).
		Warn("Loaded navigation set")

	output := buf.String()
	assert.True(t, strings.HasPrefix(output, "[WARN]"), "got %q", output)
	assert.Contains(t, output, "nav")
	assert.Contains(t, output, "Loaded navigation set")
	assert.Contains(t, output, "entries=54 set=5.1")
	assert.True(t, strings.HasSuffix(output, "\n"))
}

func TestTextFormatterDisableComponent(t *testing.T) {
	var buf bytes.Buffer

	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&TextFormatter{Config: FormatConfig{DisableTimestamp: true, DisableComponent: true}})
	logger.WithField("component", "hidden-component").Info("hello")

	assert.Equal(t, "[INFO] hello\n", buf.String())
}

func TestNewLevelAndPresets(t *testing.T) {
	t.Setenv("DOCNAV_LOG_LEVEL", "")

	var buf bytes.Buffer
	entry := New("cli", Config{
		Level:  "warn",
		Format: FormatConfig{Preset: "json", StructuredToStderr: "always"},
	}, &buf)

	entry.Info("dropped")
	entry.WithError(errors.New("boom")).Error("kept")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &record))
	assert.Equal(t, "kept", record["msg"])
	assert.Equal(t, "cli", record["component"])
	assert.Equal(t, "boom", record["error"])
}

func TestNewEnvLevelWins(t *testing.T) {
	t.Setenv("DOCNAV_LOG_LEVEL", "debug")

	entry := New("cli", Config{Level: "error"}, &bytes.Buffer{})
	assert.Equal(t, logrus.DebugLevel, entry.Logger.GetLevel())
}

func TestNewNeverToStderr(t *testing.T) {
	t.Setenv("DOCNAV_LOG_LEVEL", "")

	var buf bytes.Buffer
	entry := New("cli", Config{Format: FormatConfig{StructuredToStderr: "never"}}, &buf)
	entry.Error("not shown")
	assert.Empty(t, buf.String())
}

func TestNewFileSink(t *testing.T) {
	t.Setenv("DOCNAV_LOG_LEVEL", "")

	path := filepath.Join(t.TempDir(), "logs", "docnav.log")
	entry := New("cli", Config{
		File:   FileSinkConfig{Enabled: true, Path: path},
		Format: FormatConfig{Preset: "simple", StructuredToStderr: "never"},
	}, &bytes.Buffer{})
	entry.Info("written to file")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[INFO] written to file\n", string(data))
}

func TestPrettyLogger(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrettyLogger().WithWriter(&buf)

	p.Success("5.1 is valid")
	p.ErrorPretty("zh-5.5 is invalid", errors.New("entry 3: empty text"))

	output := buf.String()
	assert.Contains(t, output, "5.1 is valid")
	assert.Contains(t, output, "zh-5.5 is invalid: entry 3: empty text")
}

func TestNewFromConfigReadsLoggingSection(t *testing.T) {
	t.Setenv("DOCNAV_LOG_LEVEL", "")
	cfg, err := config.LoadFromBytes([]byte(`
logging:
  level: debug
  format:
    preset: simple
`))
	require.NoError(t, err)

	var buf bytes.Buffer
	logger := NewFromConfig("docnav", cfg, &buf)
	assert.Equal(t, logrus.DebugLevel, logger.Logger.GetLevel())

	logger.Debug("Selected navigation set")
	assert.Equal(t, "[DEBUG] Selected navigation set\n", buf.String())

	defaults := NewFromConfig("docnav", nil, &buf)
	assert.Equal(t, logrus.InfoLevel, defaults.Logger.GetLevel())
}
