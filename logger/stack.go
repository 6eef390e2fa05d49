package logger

import (
	"bytes"
	"errors"
	"fmt"
	"runtime/debug"
)

// StackTracer is implemented by errors that carry the trace of the place
// they were raised.
type StackTracer interface {
	StackTrace() []byte
}

type stackError struct {
	err   error
	stack []byte
}

func (e *stackError) Error() string { return e.err.Error() }
func (e *stackError) Unwrap() error { return e.err }
func (e *stackError) StackTrace() []byte { return e.stack }

// WithStack attaches the current goroutine trace to err. Called from a
// deferred recover, the trace still contains the frames that panicked.
func WithStack(err error) error {
	if err == nil {
		return nil
	}
	var st StackTracer
	if errors.As(err, &st) {
		return err
	}
	return &stackError{err: err, stack: debug.Stack()}
}

// StackOf returns the trace carried by err, or nil
func StackOf(err error) []byte {
	var st StackTracer
	if errors.As(err, &st) {
		return st.StackTrace()
	}
	return nil
}

// Recovered converts a value returned by recover into an error with the
// current trace attached. The trace starts at the panic( frame, dropping
// the recover machinery above it. It returns nil when r is nil.
func Recovered(r interface{}) error {
	if r == nil {
		return nil
	}
	err, ok := r.(error)
	if !ok {
		err = fmt.Errorf("panic: %v", r)
	}
	if StackOf(err) != nil {
		return err
	}
	return &stackError{err: err, stack: fromPanic(debug.Stack())}
}

// fromPanic keeps the goroutine header line and everything from the
// innermost panic( frame down. Traces without one are returned unchanged.
func fromPanic(stack []byte) []byte {
	header, _, found := bytes.Cut(stack, []byte{'\n'})
	if !found {
		return stack
	}
	i := bytes.Index(stack, []byte("\npanic("))
	if i < 0 {
		return stack
	}
	out := make([]byte, 0, len(header)+len(stack)-i)
	out = append(out, header...)
	return append(out, stack[i:]...)
}
