package logger

import (
	"fmt"

	"github.com/hut8labs/failmail-client/core"
	"github.com/hut8labs/failmail-client/handler"
	"github.com/hut8labs/failmail-client/handler/consolehandler"
)

// RootName is the name the root logger reports in formatted output
const RootName = "root"

var (
	rootHandlers = handler.NewMultiHandler()

	// lastResort receives WARN and above while the root has no handlers,
	// so errors are not lost before logging is configured.
	lastResort handler.Handler = handler.NewLevelFilter(
		consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{}),
		core.WarnLevel,
	)

	root = NewBuilder().
		WithName(RootName).
		WithHandler(rootDispatcher{}).
		WithLevel(core.InfoLevel).
		Build()
)

type rootDispatcher struct{}

func (rootDispatcher) Handle(entry *core.Entry) error {
	if rootHandlers.Len() == 0 {
		return lastResort.Handle(entry)
	}
	return rootHandlers.Handle(entry)
}

func (rootDispatcher) Close() error {
	return rootHandlers.Close()
}

// Root returns the process-wide root logger. Loggers derived from it with
// With share its handlers and its level.
func Root() *Logger {
	return root
}

// AddHandler attaches h to the root logger. A handler that is already
// attached is not attached again; AddHandler then returns false.
func AddHandler(h handler.Handler) bool {
	return rootHandlers.Add(h)
}

// RemoveHandler detaches h from the root logger without closing it
func RemoveHandler(h handler.Handler) bool {
	return rootHandlers.Remove(h)
}

// Handlers returns the handlers attached to the root logger
func Handlers() []handler.Handler {
	return rootHandlers.Handlers()
}

// SetLevel sets the root logger's minimum level
func SetLevel(level Level) {
	root.SetLevel(level)
}

// GetLevel returns the root logger's minimum level
func GetLevel() Level {
	return root.Level()
}

// Shutdown closes and detaches every handler attached to the root logger.
// Call it before the process exits so handlers can flush.
func Shutdown() error {
	return rootHandlers.Close()
}

// Package-level convenience functions using the root logger

// Debug logs a debug message using the root logger
func Debug(msg string, fields ...core.Field) {
	if root.Enabled(core.DebugLevel) {
		root.log(core.DebugLevel, msg, fields, nil, root.callerSkip)
	}
}

// Info logs an info message using the root logger
func Info(msg string, fields ...core.Field) {
	if root.Enabled(core.InfoLevel) {
		root.log(core.InfoLevel, msg, fields, nil, root.callerSkip)
	}
}

// Warn logs a warning message using the root logger
func Warn(msg string, fields ...core.Field) {
	if root.Enabled(core.WarnLevel) {
		root.log(core.WarnLevel, msg, fields, nil, root.callerSkip)
	}
}

// Error logs an error message using the root logger
func Error(msg string, fields ...core.Field) {
	if root.Enabled(core.ErrorLevel) {
		root.log(core.ErrorLevel, msg, fields, nil, root.callerSkip)
	}
}

// Exception logs msg, err and err's trace at ERROR using the root logger
func Exception(msg string, err error, fields ...core.Field) {
	if root.Enabled(core.ErrorLevel) {
		root.exception(msg, err, fields, root.callerSkip+1)
	}
}

// Exceptionf formats a message and logs it like Exception using the root logger
func Exceptionf(err error, format string, args ...interface{}) {
	if root.Enabled(core.ErrorLevel) {
		root.exception(fmt.Sprintf(format, args...), err, nil, root.callerSkip+1)
	}
}

// Debugf logs a formatted debug message using the root logger
func Debugf(format string, args ...interface{}) {
	if root.Enabled(core.DebugLevel) {
		root.log(core.DebugLevel, fmt.Sprintf(format, args...), nil, nil, root.callerSkip)
	}
}

// Infof logs a formatted info message using the root logger
func Infof(format string, args ...interface{}) {
	if root.Enabled(core.InfoLevel) {
		root.log(core.InfoLevel, fmt.Sprintf(format, args...), nil, nil, root.callerSkip)
	}
}

// Warnf logs a formatted warning message using the root logger
func Warnf(format string, args ...interface{}) {
	if root.Enabled(core.WarnLevel) {
		root.log(core.WarnLevel, fmt.Sprintf(format, args...), nil, nil, root.callerSkip)
	}
}

// Errorf logs a formatted error message using the root logger
func Errorf(format string, args ...interface{}) {
	if root.Enabled(core.ErrorLevel) {
		root.log(core.ErrorLevel, fmt.Sprintf(format, args...), nil, nil, root.callerSkip)
	}
}

// With creates a logger with additional fields on top of the root logger
func With(fields ...core.Field) *Logger {
	return root.With(fields...)
}
