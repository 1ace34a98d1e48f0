package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/gfshard/internal/config"
)

func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]config.LogLevel{
		"off":     config.LogLevelOff,
		"none":    config.LogLevelOff,
		"  OFF  ": config.LogLevelOff,
		"error":   config.LogLevelError,
		"debug":   config.LogLevelDebug,
		"DEBUG":   config.LogLevelDebug,
		"bogus":   config.LogLevelError,
		"":        config.LogLevelError,
	}
	for in, want := range cases {
		assert.Equal(t, want, config.ParseLogLevel(in), "input=%q", in)
	}
}

func TestLogLevelString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "off", config.LogLevelOff.String())
	assert.Equal(t, "error", config.LogLevelError.String())
	assert.Equal(t, "debug", config.LogLevelDebug.String())
}

func newFileLogger(t *testing.T, level config.LogLevel) (*config.Logger, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ops.log")
	logger, err := config.NewLogger(level, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = logger.Close() })
	return logger, path
}

func TestDebugLoggerWritesBothLevels(t *testing.T) {
	t.Parallel()

	logger, path := newFileLogger(t, config.LogLevelDebug)
	logger.Debug("rs encode: data=%d parity=%d", 8, 4)
	logger.Error("rs decode failed: %v", "parity mismatch")

	data, err := os.ReadFile(path) // #nosec G304 -- temp path from t.TempDir
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "level=DEBUG")
	assert.Contains(t, content, "rs encode: data=8 parity=4")
	assert.Contains(t, content, "level=ERROR")
	assert.Contains(t, content, "parity mismatch")
}

func TestErrorLoggerSuppressesDebug(t *testing.T) {
	t.Parallel()

	logger, path := newFileLogger(t, config.LogLevelError)
	logger.Debug("sss split: threshold=%d", 3)
	logger.Error("sss reconstruct failed")

	data, err := os.ReadFile(path) // #nosec G304 -- temp path from t.TempDir
	require.NoError(t, err)
	content := string(data)
	assert.NotContains(t, content, "sss split")
	assert.Contains(t, content, "sss reconstruct failed")
}

func TestOffLevelWritesNothing(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "ops.log")
	logger, err := config.NewLogger(config.LogLevelOff, path)
	require.NoError(t, err)

	logger.Debug("dropped")
	logger.Error("also dropped")
	require.NoError(t, logger.Close())

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "off level must not create the log file")
}

func TestEmptyPathDisablesLogging(t *testing.T) {
	t.Parallel()

	logger, err := config.NewLogger(config.LogLevelDebug, "")
	require.NoError(t, err)
	assert.Nil(t, logger.Structured())
	assert.NotPanics(t, func() { logger.Debug("nowhere to go") })
	require.NoError(t, logger.Close())
}

func TestNewLoggerCreatesMissingDirectory(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "dir", "ops.log")
	logger, err := config.NewLogger(config.LogLevelError, path)
	require.NoError(t, err)
	defer func() { _ = logger.Close() }()

	logger.Error("created")
	_, statErr := os.Stat(path)
	assert.NoError(t, statErr)
}

func TestNullLoggerIsSafe(t *testing.T) {
	t.Parallel()

	logger := config.NullLogger()
	assert.NotPanics(t, func() {
		logger.Debug("ignored")
		logger.Error("ignored")
	})
	assert.Nil(t, logger.Structured())
	assert.NoError(t, logger.Close())
}

func TestSetLevelRaisesVerbosity(t *testing.T) {
	t.Parallel()

	logger, path := newFileLogger(t, config.LogLevelError)
	logger.Debug("before: invisible")

	logger.SetLevel(config.LogLevelDebug)
	assert.Equal(t, config.LogLevelDebug, logger.Level())
	logger.Debug("after: visible")

	data, err := os.ReadFile(path) // #nosec G304 -- temp path from t.TempDir
	require.NoError(t, err)
	content := string(data)
	assert.NotContains(t, content, "before: invisible")
	assert.Contains(t, content, "after: visible")
}

func TestStructuredLoggerHonorsLevel(t *testing.T) {
	t.Parallel()

	logger, path := newFileLogger(t, config.LogLevelDebug)
	slogger := logger.Structured()
	require.NotNil(t, slogger)

	slogger.Debug("cache lookup", "hits", 3, "misses", 1)

	data, err := os.ReadFile(path) // #nosec G304 -- temp path from t.TempDir
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "cache lookup")
	assert.Contains(t, content, "hits=3")
}

func TestCloseThenCloseAgainErrors(t *testing.T) {
	t.Parallel()

	logger, _ := newFileLogger(t, config.LogLevelError)
	require.NoError(t, logger.Close())
	assert.Error(t, logger.Close(), "second close reports the already-closed file")
}
