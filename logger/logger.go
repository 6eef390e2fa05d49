package logger

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/hut8labs/failmail-client/core"
	"github.com/hut8labs/failmail-client/handler"
)

// osExit is a variable to allow overriding os.Exit in tests
var osExit = os.Exit

// Logger dispatches entries to a handler. Everything but the level is
// fixed at construction; the level lives in a LevelVar shared with the
// loggers derived through With.
type Logger struct {
	name          string
	handler       handler.Handler
	level         *LevelVar
	fields        []core.Field
	includeCaller bool
	callerSkip    int
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	name          string
	handler       handler.Handler
	level         Level
	fields        []core.Field
	includeCaller bool
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		level: core.InfoLevel,
	}
}

// WithName sets the logger name shown in formatted output
func (b *Builder) WithName(name string) *Builder {
	b.name = name
	return b
}

// WithHandler sets the handler
func (b *Builder) WithHandler(h handler.Handler) *Builder {
	b.handler = h
	return b
}

// WithLevel sets the log level
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	return b
}

// WithFields adds default fields to all log entries
func (b *Builder) WithFields(fields ...core.Field) *Builder {
	b.fields = append(b.fields, fields...)
	return b
}

// WithCaller enables caller information
func (b *Builder) WithCaller(enabled bool) *Builder {
	b.includeCaller = enabled
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	return &Logger{
		name:          b.name,
		handler:       b.handler,
		level:         NewLevelVar(b.level),
		fields:        b.fields,
		includeCaller: b.includeCaller,
		callerSkip:    3,
	}
}

// With creates a new Logger with additional fields
func (l *Logger) With(fields ...core.Field) *Logger {
	newFields := make([]core.Field, len(l.fields)+len(fields))
	copy(newFields, l.fields)
	copy(newFields[len(l.fields):], fields)

	return &Logger{
		name:          l.name,
		handler:       l.handler,
		level:         l.level,
		fields:        newFields,
		includeCaller: l.includeCaller,
		callerSkip:    l.callerSkip,
	}
}

// Name returns the logger name
func (l *Logger) Name() string {
	return l.name
}

// Level returns the current minimum level
func (l *Logger) Level() Level {
	return l.level.Level()
}

// SetLevel changes the minimum level of l and of every logger derived from it
func (l *Logger) SetLevel(level Level) {
	l.level.Set(level)
}

// Enabled reports whether entries at level pass the logger's level
func (l *Logger) Enabled(level Level) bool {
	return level.AtLeast(l.level.Level())
}

// Log logs a message at the specified level
func (l *Logger) Log(level core.Level, msg string, fields ...core.Field) {
	if !l.Enabled(level) {
		return
	}
	l.log(level, msg, fields, nil, l.callerSkip)
}

func (l *Logger) log(level core.Level, msg string, fields []core.Field, stack []byte, skip int) {
	h := l.handler
	if h == nil {
		return
	}

	entry := core.GetEntry()
	defer core.PutEntry(entry)

	entry.Level = level
	entry.Logger = l.name
	entry.Message = msg
	entry.Stack = stack

	if len(l.fields) > 0 {
		entry.Fields = append(entry.Fields, l.fields...)
	}
	if len(fields) > 0 {
		entry.Fields = append(entry.Fields, fields...)
	}
	if l.includeCaller {
		entry.Caller = core.GetCaller(skip)
	}

	// Handler errors are the handler's to report; logging never fails the caller.
	_ = h.Handle(entry)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields ...core.Field) {
	if !l.Enabled(core.DebugLevel) {
		return
	}
	l.log(core.DebugLevel, msg, fields, nil, l.callerSkip)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields ...core.Field) {
	if !l.Enabled(core.InfoLevel) {
		return
	}
	l.log(core.InfoLevel, msg, fields, nil, l.callerSkip)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields ...core.Field) {
	if !l.Enabled(core.WarnLevel) {
		return
	}
	l.log(core.WarnLevel, msg, fields, nil, l.callerSkip)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields ...core.Field) {
	if !l.Enabled(core.ErrorLevel) {
		return
	}
	l.log(core.ErrorLevel, msg, fields, nil, l.callerSkip)
}

// Exception logs msg at ERROR together with err and its trace. The trace is
// the one carried by err (see WithStack); without one, the current
// goroutine's trace is used.
func (l *Logger) Exception(msg string, err error, fields ...core.Field) {
	if !l.Enabled(core.ErrorLevel) {
		return
	}
	l.exception(msg, err, fields, l.callerSkip+1)
}

// Exceptionf formats a message and logs it like Exception
func (l *Logger) Exceptionf(err error, format string, args ...interface{}) {
	if !l.Enabled(core.ErrorLevel) {
		return
	}
	l.exception(fmt.Sprintf(format, args...), err, nil, l.callerSkip+1)
}

func (l *Logger) exception(msg string, err error, fields []core.Field, skip int) {
	stack := StackOf(err)
	if stack == nil {
		stack = debug.Stack()
	}
	all := make([]core.Field, 0, len(fields)+1)
	all = append(all, fields...)
	if err != nil {
		all = append(all, Err(err))
	}
	l.log(core.ErrorLevel, msg, all, stack, skip)
}

// Fatal logs a fatal message and exits the program with os.Exit(1)
func (l *Logger) Fatal(msg string, fields ...core.Field) {
	l.log(core.FatalLevel, msg, fields, nil, l.callerSkip)
	osExit(1)
}

// Panic logs a panic message and panics
func (l *Logger) Panic(msg string, fields ...core.Field) {
	l.log(core.PanicLevel, msg, fields, nil, l.callerSkip)
	panic(msg)
}

// Debugf logs a debug message with formatting
func (l *Logger) Debugf(format string, args ...interface{}) {
	if !l.Enabled(core.DebugLevel) {
		return
	}
	l.log(core.DebugLevel, fmt.Sprintf(format, args...), nil, nil, l.callerSkip)
}

// Infof logs an info message with formatting
func (l *Logger) Infof(format string, args ...interface{}) {
	if !l.Enabled(core.InfoLevel) {
		return
	}
	l.log(core.InfoLevel, fmt.Sprintf(format, args...), nil, nil, l.callerSkip)
}

// Warnf logs a warning message with formatting
func (l *Logger) Warnf(format string, args ...interface{}) {
	if !l.Enabled(core.WarnLevel) {
		return
	}
	l.log(core.WarnLevel, fmt.Sprintf(format, args...), nil, nil, l.callerSkip)
}

// Errorf logs an error message with formatting
func (l *Logger) Errorf(format string, args ...interface{}) {
	if !l.Enabled(core.ErrorLevel) {
		return
	}
	l.log(core.ErrorLevel, fmt.Sprintf(format, args...), nil, nil, l.callerSkip)
}

// Close closes the logger's handler
func (l *Logger) Close() error {
	if l.handler != nil {
		return l.handler.Close()
	}
	return nil
}
