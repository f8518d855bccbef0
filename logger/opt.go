package logger

import "log"

// A LoggerOptFn is a functional option configuring a ColorLogger when constructing a new one.
type LoggerOptFn func(*ColorLogger)

// WithLevel sets the log level ColorLogger uses.
// LogLevelUnk leaves the default in place.
func WithLevel(level LogLevel) LoggerOptFn {
	return func(l *ColorLogger) {
		if level != LogLevelUnk {
			l.ll = level
		}
	}
}

// WithLogger sets the log.Logger ColorLogger writes to.
func WithLogger(log *log.Logger) LoggerOptFn {
	return func(l *ColorLogger) {
		l.l = log
	}
}
