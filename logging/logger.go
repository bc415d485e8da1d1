package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/grovetools/zism/config"
	"github.com/grovetools/zism/pkg/paths"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

var (
	loggers   = make(map[string]*logrus.Entry)
	loggersMu sync.Mutex

	// verbose is set by --verbose and forces debug level on every logger.
	verbose bool
)

// SetVerbose raises every existing and future logger to debug level.
func SetVerbose(on bool) {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	verbose = on
	if !on {
		return
	}
	for _, entry := range loggers {
		entry.Logger.SetLevel(logrus.DebugLevel)
		if !hasStderrSink(entry.Logger) {
			entry.Logger.SetOutput(appendWriter(entry.Logger.Out, os.Stderr))
		}
	}
}

// NewLogger creates and returns a pre-configured logger for a specific component.
// It uses a singleton pattern per component to avoid re-initializing.
func NewLogger(component string) *logrus.Entry {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if logger, exists := loggers[component]; exists {
		return logger
	}

	logger := logrus.New()

	// Load the logging section of zism.yml
	var logCfg Config
	cfg, err := config.LoadDefault()
	if err == nil {
		if err := cfg.UnmarshalExtension("logging", &logCfg); err != nil {
			// Log a warning if parsing fails, but continue with defaults
			logrus.Warnf("Failed to parse 'logging' config: %v", err)
		}
	}

	// Configure Level
	levelStr := "info" // Default level
	if os.Getenv("ZISM_LOG_LEVEL") != "" {
		levelStr = os.Getenv("ZISM_LOG_LEVEL")
	} else if logCfg.Level != "" {
		levelStr = logCfg.Level
	}
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = logrus.InfoLevel
	}
	if verbose {
		level = logrus.DebugLevel
	}
	logger.SetLevel(level)

	// Configure Caller Reporting
	if os.Getenv("ZISM_LOG_CALLER") == "true" || logCfg.ReportCaller {
		logger.SetReportCaller(true)
	}

	logger.SetFormatter(formatterFor(logCfg.Format))

	var writers []io.Writer
	if w := openFileSink(logger, component, logCfg.File); w != nil {
		writers = append(writers, w)
	}
	if shouldLogToStderr(logger, logCfg.Format.StructuredToStderr) {
		writers = append(writers, os.Stderr)
	}

	// Configure the output based on the number of writers
	switch len(writers) {
	case 0:
		// Nothing to write to: keep the interactive terminal clean.
		logger.SetOutput(io.Discard)
	case 1:
		logger.SetOutput(writers[0])
	default:
		logger.SetOutput(io.MultiWriter(writers...))
	}

	entry := logger.WithField("component", component)
	loggers[component] = entry
	return entry
}

func formatterFor(format FormatConfig) logrus.Formatter {
	switch format.Preset {
	case "json":
		return &logrus.JSONFormatter{}
	case "simple":
		return &TextFormatter{Config: FormatConfig{
			DisableTimestamp: true,
			DisableComponent: true,
		}}
	default:
		return &TextFormatter{Config: format}
	}
}

// openFileSink opens the configured log file, or the default dated file in
// the state directory when file logging is enabled without a path.
func openFileSink(logger *logrus.Logger, component string, sink FileSinkConfig) io.Writer {
	if !sink.Enabled {
		return nil
	}

	logFilePath := expandPath(sink.Path)
	if logFilePath == "" {
		dir := paths.LogDir()
		if dir == "" {
			return nil
		}
		dateStr := time.Now().Format("2006-01-02")
		logFilePath = filepath.Join(dir, fmt.Sprintf("%s-%s.log", component, dateStr))
	}

	dir := filepath.Dir(logFilePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		logger.Warnf("Failed to create log directory %s: %v", dir, err)
		return nil
	}
	file, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		logger.Warnf("Failed to open log file %s: %v", logFilePath, err)
		return nil
	}
	return file
}

func shouldLogToStderr(logger *logrus.Logger, mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		// "auto": log to stderr if debug is enabled, or if not in an interactive terminal
		isDebug := os.Getenv("ZISM_DEBUG") == "1" || logger.GetLevel() >= logrus.DebugLevel
		isInteractive := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
		return isDebug || !isInteractive
	}
}

func hasStderrSink(logger *logrus.Logger) bool {
	return logger.Out == os.Stderr
}

func appendWriter(current io.Writer, w io.Writer) io.Writer {
	if current == nil || current == io.Discard {
		return w
	}
	return io.MultiWriter(current, w)
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
