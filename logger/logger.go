package logger

import (
	"log"
	"os"
	"path"
	"regexp"
	"runtime"

	"github.com/fatih/color"
	"github.com/xy-planning-network/reqarg"
)

// frames from ColorLogger.log up to the caller of a Logger method
const callerFrames = 2

var reqargPathRegex = regexp.MustCompile("reqarg.*$")

// The Logger interface defines the levels a logging can occur at.
type Logger interface {
	Debug(msg string, ctx *LogContext)
	Error(msg string, ctx *LogContext)
	Fatal(msg string, ctx *LogContext)
	Info(msg string, ctx *LogContext)
	Warn(msg string, ctx *LogContext)

	LogLevel() LogLevel
}

type LogLevel int

const (
	LogLevelUnk LogLevel = iota
	LogLevelDebug
	LogLevelInfo
	LogLevelWarn
	LogLevelError
	LogLevelFatal
)

var levelNames = map[LogLevel]string{
	LogLevelDebug: "DEBUG",
	LogLevelInfo:  "INFO",
	LogLevelWarn:  "WARN",
	LogLevelError: "ERROR",
	LogLevelFatal: "FATAL",
}

var levelColors = map[LogLevel]func(string, ...any) string{
	LogLevelDebug: color.WhiteString,
	LogLevelInfo:  color.BlueString,
	LogLevelWarn:  color.YellowString,
	LogLevelError: color.RedString,
	LogLevelFatal: color.MagentaString,
}

// NewLogLevel parses an upper-case level name, such as "WARN".
// Anything else is LogLevelUnk.
func NewLogLevel(val string) LogLevel {
	for ll, name := range levelNames {
		if name == val {
			return ll
		}
	}

	return LogLevelUnk
}

func (ll LogLevel) String() string {
	name, ok := levelNames[ll]
	if !ok {
		name = "UNK"
	}

	return "[" + name + "]"
}

// ColorLogger implements Logger using log,
// colorizing each line by its LogLevel.
type ColorLogger struct {
	env   string
	l     *log.Logger
	ll    LogLevel
	depth int
}

// NewLogger constructs a ColorLogger.
//
// Logs are printed to os.Stdout by default, using the std lib log pkg.
// The environment is read from ENVIRONMENT, defaulting to development.
// The default log level is INFO.
//
// If SENTRY_DSN is set, NewLogger wraps the ColorLogger in a SentryLogger.
func NewLogger(opts ...LoggerOptFn) Logger {
	l := &ColorLogger{
		env: reqarg.EnvVarOrString("ENVIRONMENT", reqarg.Development.String()),
		l:   log.New(os.Stdout, "", log.LstdFlags),
		ll:  LogLevelInfo,
	}
	for _, opt := range opts {
		opt(l)
	}

	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		l.Info("SENTRY_DSN set, configuring SentryLogger", nil)
		return NewSentryLogger(l, dsn)
	}

	return l
}

// Debug writes a debug log.
func (l *ColorLogger) Debug(msg string, ctx *LogContext) { l.log(LogLevelDebug, msg, ctx) }

// Error writes an error log.
func (l *ColorLogger) Error(msg string, ctx *LogContext) { l.log(LogLevelError, msg, ctx) }

// Fatal writes a fatal log.
// Fatal does not exit.
func (l *ColorLogger) Fatal(msg string, ctx *LogContext) { l.log(LogLevelFatal, msg, ctx) }

// Info writes an info log.
func (l *ColorLogger) Info(msg string, ctx *LogContext) { l.log(LogLevelInfo, msg, ctx) }

// Warn writes a warning log.
func (l *ColorLogger) Warn(msg string, ctx *LogContext) { l.log(LogLevelWarn, msg, ctx) }

// LogLevel returns the LogLevel set for the ColorLogger.
func (l *ColorLogger) LogLevel() LogLevel { return l.ll }

// enabled reports whether messages at level are written.
func (l *ColorLogger) enabled(level LogLevel) bool { return level >= l.ll }

// log prints msg prefixed by level and call site,
// followed by ctx when there is one.
func (l *ColorLogger) log(level LogLevel, msg string, ctx *LogContext) {
	if !l.enabled(level) {
		return
	}

	_, file, line, _ := runtime.Caller(callerFrames + l.depth)
	msg = levelColors[level]("%s %s:%d '%s'", level, immediateFilepath(file), line, msg)
	if ctx == nil {
		l.l.Println(msg)
		return
	}

	l.l.Println(msg, "log_context:", ctx)
}

// immediateFilepath trims file down to the module-relative path
// or, outside the module, the file and the directory it is in
// e.g.,:
// /home/dev/my-project/main.go => my-project/main.go
// /home/dev/reqarg/http/arg/resolver.go => reqarg/http/arg/resolver.go
func immediateFilepath(file string) string {
	if match := reqargPathRegex.FindString(file); match != "" {
		return match
	}

	dir, name := path.Split(file)
	return path.Join(path.Base(dir), name)
}
