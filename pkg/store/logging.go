package store

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// NewLogger builds the structured logger shared by the store and the state
// layer. Output goes to cfg.LogFile when set, otherwise to w.
func NewLogger(cfg Config, w io.Writer) (*log.Logger, io.Closer, error) {
	var closer io.Closer = nopCloser{}
	if cfg != nil && cfg.LogFile() != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile()), 0o755); err != nil {
			return nil, nil, err
		}
		f, err := os.OpenFile(cfg.LogFile(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		w, closer = f, f
	}
	if w == nil {
		w = os.Stderr
	}
	level := "info"
	if cfg != nil {
		level = cfg.LogLevel()
	}
	logger := log.NewWithOptions(w, log.Options{
		Level:           ParseLogLevel(level),
		ReportTimestamp: true,
		Prefix:          "habits",
	})
	return logger, closer, nil
}

// ParseLogLevel maps a config string to a log level, defaulting to info.
func ParseLogLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// DiscardLogger drops everything; handy for tests.
func DiscardLogger() *log.Logger {
	return log.New(io.Discard)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
