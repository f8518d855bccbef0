/*
Package logger provides leveled logging for reqarg by defining the required behavior in [Logger]
and providing an implementation of it with [ColorLogger].

# Overview

The Logger interface outputs messages at certain levels of importance.
LogLevel is the type to use to represent those levels.
An implementation of Logger may be initialized at a certain [LogLevel]
and only emit messages at or above that level of importance.
For example, [ColorLogger] accepts a [LogLevel],
and if initialized with [LogLevelWarn],
only [*ColorLogger.Warn], [*ColorLogger.Error], and [*ColorLogger.Fatal] produce messages.

# ColorLogger

Log messages emitted by [ColorLogger] are composed of a few parts:
  - timestamp
  - log level
  - call site
  - message
  - log context

Here's an example:

	2026/04/28 15:55:21 [DEBUG] reqarg/http/req/accessor.go:140 'coercion failed, using default' log_context: {"error":"strconv.Atoi: parsing \"abc\": invalid syntax","source":"get","key":"page"}

The log context is a JSON-encoded [LogContext].

# SentryLogger

When the SENTRY_DSN environment variable is set, [NewLogger] returns a [SentryLogger],
which additionally ships any [LogContext.Error] logged at [LogLevelWarn] or above to Sentry.
*/
package logger
