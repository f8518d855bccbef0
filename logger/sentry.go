package logger

import (
	"fmt"

	"github.com/getsentry/sentry-go"
)

// A SentryLogger writes logs through a ColorLogger
// and ships the LogContext.Error of logs at or above LogLevelWarn to Sentry.
type SentryLogger struct {
	cl *ColorLogger
}

var sentryLevels = map[LogLevel]sentry.Level{
	LogLevelWarn:  sentry.LevelWarning,
	LogLevelError: sentry.LevelError,
	LogLevelFatal: sentry.LevelFatal,
}

// NewSentryLogger constructs a SentryLogger reporting to dsn, tagged with cl's environment.
// If Sentry cannot be initialized, cl is returned.
func NewSentryLogger(cl *ColorLogger, dsn string) Logger {
	err := sentry.Init(sentry.ClientOptions{
		Dsn:          dsn,
		Environment:  cl.env,
		IgnoreErrors: []string{"write: broken pipe"},
	})
	if err != nil {
		cl.Error(fmt.Sprintf("unable to init Sentry: %s", err), nil)
		return cl
	}

	wrapped := *cl
	wrapped.depth++

	return &SentryLogger{cl: &wrapped}
}

// Debug writes a debug log.
func (sl *SentryLogger) Debug(msg string, ctx *LogContext) { sl.cl.Debug(msg, ctx) }

// Error writes an error log and sends it to Sentry.
func (sl *SentryLogger) Error(msg string, ctx *LogContext) {
	sl.cl.Error(msg, ctx)
	sl.send(LogLevelError, ctx)
}

// Fatal writes a fatal log and sends it to Sentry.
func (sl *SentryLogger) Fatal(msg string, ctx *LogContext) {
	sl.cl.Fatal(msg, ctx)
	sl.send(LogLevelFatal, ctx)
}

// Info writes an info log.
func (sl *SentryLogger) Info(msg string, ctx *LogContext) { sl.cl.Info(msg, ctx) }

// Warn writes a warning log and sends it to Sentry.
func (sl *SentryLogger) Warn(msg string, ctx *LogContext) {
	sl.cl.Warn(msg, ctx)
	sl.send(LogLevelWarn, ctx)
}

// LogLevel returns the LogLevel set for the SentryLogger.
func (sl *SentryLogger) LogLevel() LogLevel { return sl.cl.LogLevel() }

// send captures ctx.Error, tagged with where in the request it arose.
func (sl *SentryLogger) send(level LogLevel, ctx *LogContext) {
	if ctx == nil || ctx.Error == nil || !sl.cl.enabled(level) {
		return
	}

	sentry.WithScope(func(scope *sentry.Scope) {
		if ctx.Request != nil {
			scope.SetRequest(ctx.Request)
		}

		for tag, val := range map[string]string{
			"param":      ctx.Param,
			"source":     ctx.Source.String(),
			"key":        ctx.Key,
			"request_id": ctx.RequestID,
		} {
			if val != "" {
				scope.SetTag(tag, val)
			}
		}

		scope.SetLevel(sentryLevels[level])
		sentry.CaptureException(ctx.Error)
	})
}
