package logger

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func raise() (err error) {
	defer func() {
		err = Recovered(recover())
	}()
	raiseDeep(0)
	return nil
}

//go:noinline
func raiseDeep(d int) int {
	return 1 / d
}

func TestRecovered_DivideByZero(t *testing.T) {
	err := raise()
	require.Error(t, err)

	var re runtime.Error
	assert.True(t, errors.As(err, &re), "expected a runtime.Error, got %T", err)
	assert.Equal(t, "runtime error: integer divide by zero", err.Error())
	stack := string(StackOf(err))
	assert.Contains(t, stack, "raiseDeep")
	assert.True(t, strings.HasPrefix(stack, "goroutine "), stack)
	assert.Contains(t, stack, "\npanic(")
	assert.NotContains(t, stack, "runtime/debug.Stack")
	assert.NotContains(t, stack, "logger.Recovered")
}

func TestFromPanic(t *testing.T) {
	stack := []byte("goroutine 1 [running]:\n" +
		"runtime/debug.Stack()\n\t/go/src/runtime/debug/stack.go:26 +0x5e\n" +
		"main.divide.func1()\n\t/src/main.go:10 +0x25\n" +
		"panic({0x4b6e60?, 0x5a1f90?})\n\t/go/src/runtime/panic.go:785 +0x132\n" +
		"main.divide(0x1, 0x0)\n\t/src/main.go:14 +0x4a\n")

	want := "goroutine 1 [running]:\n" +
		"panic({0x4b6e60?, 0x5a1f90?})\n\t/go/src/runtime/panic.go:785 +0x132\n" +
		"main.divide(0x1, 0x0)\n\t/src/main.go:14 +0x4a\n"
	assert.Equal(t, want, string(fromPanic(stack)))

	plain := []byte("goroutine 1 [running]:\nmain.main()\n\t/src/main.go:3 +0x1\n")
	assert.Equal(t, plain, fromPanic(plain))
}

func TestRecovered_NonErrorValue(t *testing.T) {
	err := Recovered("bad state")
	require.Error(t, err)
	assert.Equal(t, "panic: bad state", err.Error())
	assert.NotEmpty(t, StackOf(err))
}

func TestRecovered_Nil(t *testing.T) {
	assert.NoError(t, Recovered(nil))
}

func TestWithStack_KeepsExistingTrace(t *testing.T) {
	first := WithStack(errors.New("first"))
	wrapped := fmt.Errorf("context: %w", first)

	again := WithStack(wrapped)
	assert.Same(t, wrapped, again)
	assert.Equal(t, StackOf(first), StackOf(again))
}

func TestWithStack_Nil(t *testing.T) {
	assert.NoError(t, WithStack(nil))
	assert.Nil(t, StackOf(errors.New("plain")))
}
