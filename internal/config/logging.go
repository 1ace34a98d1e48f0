package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// LogLevel is the verbosity of the operation log. The CLI logs one line
// per rs/sss operation at debug level (parameters, error outcome, and
// inversion-cache stats), so "debug" is the level to use when tracing
// encode/decode behavior.
type LogLevel int

// Operation log levels, least to most verbose.
const (
	LogLevelOff LogLevel = iota
	LogLevelError
	LogLevelDebug
)

// ParseLogLevel maps a config-file or GFSHARD_LOG_LEVEL string to a
// LogLevel. Unknown strings fall back to "error".
func ParseLogLevel(s string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "off", "none":
		return LogLevelOff
	case "debug":
		return LogLevelDebug
	default:
		return LogLevelError
	}
}

// String returns the config-file spelling of the level.
func (l LogLevel) String() string {
	switch l {
	case LogLevelOff:
		return "off"
	case LogLevelDebug:
		return "debug"
	default:
		return "error"
	}
}

func (l LogLevel) slogLevel() slog.Level {
	if l == LogLevelDebug {
		return slog.LevelDebug
	}
	return slog.LevelError
}

// Logger writes the gfshard operation log to a file. The printf-style
// Debug and Error methods carry the CLI's per-operation lines;
// Structured exposes the underlying slog.Logger for attribute-based
// logging. A nil file (off level, empty path) disables all output.
type Logger struct {
	mu      sync.Mutex
	level   LogLevel
	leveler *slog.LevelVar
	file    *os.File
	slogger *slog.Logger
}

// NewLogger opens the log file at filePath, creating its directory as
// needed, and returns a logger at the given level. A "~/" prefix on
// filePath expands to the user's home directory. An off level or an
// empty path yields a disabled logger.
func NewLogger(level LogLevel, filePath string) (*Logger, error) {
	if level == LogLevelOff || filePath == "" {
		return &Logger{level: level}, nil
	}

	if strings.HasPrefix(filePath, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		filePath = filepath.Join(home, filePath[2:])
	}
	if err := os.MkdirAll(filepath.Dir(filePath), 0o750); err != nil {
		return nil, err
	}

	// #nosec G304 -- log file path comes from the user's own config
	f, err := os.OpenFile(filePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, err
	}

	leveler := new(slog.LevelVar)
	leveler.Set(level.slogLevel())
	return &Logger{
		level:   level,
		leveler: leveler,
		file:    f,
		slogger: slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: leveler})),
	}, nil
}

// NullLogger returns a logger that discards everything.
func NullLogger() *Logger {
	return &Logger{level: LogLevelOff}
}

// Debug logs a printf-style operation line at debug level.
func (l *Logger) Debug(format string, args ...any) {
	l.log(LogLevelDebug, slog.LevelDebug, format, args...)
}

// Error logs a printf-style line at error level.
func (l *Logger) Error(format string, args ...any) {
	l.log(LogLevelError, slog.LevelError, format, args...)
}

func (l *Logger) log(minimum LogLevel, at slog.Level, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.level < minimum || l.slogger == nil {
		return
	}
	l.slogger.Log(context.Background(), at, fmt.Sprintf(format, args...))
}

// Structured returns the underlying slog.Logger, or nil when logging is
// disabled.
func (l *Logger) Structured() *slog.Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.slogger
}

// SetLevel changes the log level in place.
func (l *Logger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
	if l.leveler != nil {
		l.leveler.Set(level.slogLevel())
	}
}

// Level returns the current log level.
func (l *Logger) Level() LogLevel {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// Close closes the log file, if one is open.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
