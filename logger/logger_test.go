package logger_test

import (
	"bytes"
	"errors"
	"io"
	"log"
	"regexp"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/reqarg"
	"github.com/xy-planning-network/reqarg/logger"
)

var (
	logLevelRegexp = regexp.MustCompile(`^\[[A-Z]+\]`)
	fpRegexp       = regexp.MustCompile(`logger_test\.go:\d+`)
	msgRegexp      = regexp.MustCompile(`'(.*)'`)
)

func newTestLogger(w io.Writer) *log.Logger {
	color.NoColor = true
	return log.New(w, "", 0)
}

func TestNewLogLevel(t *testing.T) {
	for _, tc := range []struct {
		input    string
		expected logger.LogLevel
	}{
		{"DEBUG", logger.LogLevelDebug},
		{"INFO", logger.LogLevelInfo},
		{"WARN", logger.LogLevelWarn},
		{"ERROR", logger.LogLevelError},
		{"FATAL", logger.LogLevelFatal},
		{"debug", logger.LogLevelUnk},
		{"", logger.LogLevelUnk},
	} {
		t.Run(tc.input, func(t *testing.T) {
			require.Equal(t, tc.expected, logger.NewLogLevel(tc.input))
		})
	}
}

func TestColorLoggerLevels(t *testing.T) {
	// Arrange
	t.Setenv("SENTRY_DSN", "")
	b := new(bytes.Buffer)
	l := logger.NewLogger(logger.WithLogger(newTestLogger(b)), logger.WithLevel(logger.LogLevelWarn))

	// Act
	l.Debug("quiet", nil)
	l.Info("quiet", nil)

	// Assert
	require.Equal(t, logger.LogLevelWarn, l.LogLevel())
	require.Zero(t, b.Len())

	// Act
	l.Warn("loud", nil)

	// Assert
	line := b.String()
	require.Equal(t, "[WARN]", logLevelRegexp.FindString(line))
	require.True(t, fpRegexp.MatchString(line))
	require.Equal(t, "loud", msgRegexp.FindStringSubmatch(line)[1])
	require.NotContains(t, line, "log_context")
}

func TestColorLoggerLogContext(t *testing.T) {
	// Arrange
	t.Setenv("SENTRY_DSN", "")
	b := new(bytes.Buffer)
	l := logger.NewLogger(logger.WithLogger(newTestLogger(b)), logger.WithLevel(logger.LogLevelDebug))

	// Act
	l.Debug("coercion failed", &logger.LogContext{
		Error:  errors.New("bad int"),
		Source: reqarg.SourceQuery,
		Key:    "page",
	})

	// Assert
	line := b.String()
	require.True(t, fpRegexp.MatchString(line))
	require.Contains(t, line, `'coercion failed' log_context: {"error":"bad int","source":"get","key":"page"}`)
}

func TestLogLevelString(t *testing.T) {
	require.Equal(t, "[WARN]", logger.LogLevelWarn.String())
	require.Equal(t, "[UNK]", logger.LogLevelUnk.String())
	require.Equal(t, "[UNK]", logger.LogLevel(42).String())
}

func TestWithLevelUnk(t *testing.T) {
	// Arrange
	t.Setenv("SENTRY_DSN", "")

	// Act
	l := logger.NewLogger(logger.WithLevel(logger.LogLevelUnk))

	// Assert
	require.Equal(t, logger.LogLevelInfo, l.LogLevel())
}

func TestNewLoggerBadSentryDSN(t *testing.T) {
	// Arrange
	t.Setenv("SENTRY_DSN", "not a dsn")
	b := new(bytes.Buffer)

	// Act
	l := logger.NewLogger(logger.WithLogger(newTestLogger(b)))

	// Assert
	require.IsType(t, &logger.ColorLogger{}, l)
	require.Contains(t, b.String(), "unable to init Sentry")
}
