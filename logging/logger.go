package logging

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"

	"github.com/grovetools/docnav/config"
)

var (
	loggers   = make(map[string]*logrus.Entry)
	loggersMu sync.Mutex
)

// NewLogger creates and returns a pre-configured logger for a specific component.
// It uses a singleton pattern per component to avoid re-initializing.
func NewLogger(component string) *logrus.Entry {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if logger, exists := loggers[component]; exists {
		return logger
	}

	// Load the logging section from docnav.yml, if any
	cfg, _ := config.LoadDefault()

	entry := NewFromConfig(component, cfg, os.Stderr)
	loggers[component] = entry
	return entry
}

// NewFromConfig builds an uncached logger for component from the "logging"
// section of cfg. A nil cfg means defaults.
func NewFromConfig(component string, cfg *config.Config, stderrSink io.Writer) *logrus.Entry {
	var logCfg Config
	if cfg != nil {
		if err := cfg.UnmarshalExtension("logging", &logCfg); err != nil {
			// Log a warning if parsing fails, but continue with defaults
			logrus.Warnf("Failed to parse 'logging' config: %v", err)
		}
	}
	return New(component, logCfg, stderrSink)
}

// New builds a logger for component from an explicit configuration.
// Structured output goes to stderrSink according to Format.StructuredToStderr.
func New(component string, logCfg Config, stderrSink io.Writer) *logrus.Entry {
	logger := logrus.New()

	// Configure Level
	levelStr := "info" // Default level
	if os.Getenv("DOCNAV_LOG_LEVEL") != "" {
		levelStr = os.Getenv("DOCNAV_LOG_LEVEL")
	} else if logCfg.Level != "" {
		levelStr = logCfg.Level
	}
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	// Configure Caller Reporting
	if os.Getenv("DOCNAV_LOG_CALLER") == "true" || logCfg.ReportCaller {
		logger.SetReportCaller(true)
	}

	// Configure Formatter
	switch logCfg.Format.Preset {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "simple":
		logger.SetFormatter(&TextFormatter{Config: FormatConfig{
			DisableTimestamp: true,
			DisableComponent: true,
		}})
	default:
		logger.SetFormatter(&TextFormatter{Config: logCfg.Format})
	}

	// Configure Output Sinks
	var writers []io.Writer

	if logCfg.File.Enabled && logCfg.File.Path != "" {
		logFilePath := expandPath(logCfg.File.Path)
		dir := filepath.Dir(logFilePath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			logger.Warnf("Failed to create log directory %s: %v", dir, err)
		} else if file, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			logger.Warnf("Failed to open log file %s: %v", logFilePath, err)
		} else {
			writers = append(writers, file)
		}
	}

	if shouldLogToStderr(logger, logCfg.Format.StructuredToStderr, stderrSink) {
		writers = append(writers, stderrSink)
	}

	// Configure the output based on the number of writers
	switch len(writers) {
	case 0:
		// Nothing asked for output; stay quiet instead of defaulting to stderr
		logger.SetOutput(io.Discard)
	case 1:
		logger.SetOutput(writers[0])
	default:
		logger.SetOutput(io.MultiWriter(writers...))
	}

	return logger.WithField("component", component)
}

func shouldLogToStderr(logger *logrus.Logger, mode string, sink io.Writer) bool {
	if sink == nil {
		return false
	}
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}

	// "auto": log to stderr if debug is enabled, or if not in an interactive terminal
	if os.Getenv("DOCNAV_DEBUG") == "1" || logger.GetLevel() >= logrus.DebugLevel {
		return true
	}
	f, ok := sink.(*os.File)
	if !ok {
		return true
	}
	interactive := isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	return !interactive
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
