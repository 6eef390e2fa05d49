package logger

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hut8labs/failmail-client/core"
	"github.com/hut8labs/failmail-client/handler"
	"github.com/hut8labs/failmail-client/handler/consolehandler"
)

// resetRoot restores the root logger after a test touches it.
func resetRoot(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		for _, h := range Handlers() {
			RemoveHandler(h)
		}
		SetLevel(InfoLevel)
	})
}

func TestRoot_AddHandlerOnce(t *testing.T) {
	resetRoot(t)
	c := &capture{}

	assert.True(t, AddHandler(c))
	assert.False(t, AddHandler(c), "same handler must not be attached twice")
	assert.Len(t, Handlers(), 1)

	Error("once")
	assert.Len(t, c.entries, 1)
	assert.Equal(t, RootName, c.entries[0].Logger)
}

func TestRoot_PerHandlerLevel(t *testing.T) {
	resetRoot(t)
	all := &capture{}
	errorsOnly := &capture{}
	AddHandler(all)
	AddHandler(handler.NewLevelFilter(errorsOnly, ErrorLevel))
	SetLevel(DebugLevel)

	Debug("debug")
	Infof("info %s", "x")
	Warn("warn")
	Exception("an error has occurred", errors.New("integer divide by zero"))

	assert.Len(t, all.entries, 4)
	require.Len(t, errorsOnly.entries, 1)
	assert.Equal(t, "an error has occurred", errorsOnly.entries[0].Message)
	assert.True(t, errorsOnly.entries[0].HasStack())
}

func TestRoot_LevelGate(t *testing.T) {
	resetRoot(t)
	c := &capture{}
	AddHandler(c)
	SetLevel(ErrorLevel)

	assert.Equal(t, ErrorLevel, GetLevel())
	Info("hidden")
	Warnf("hidden %d", 1)
	Errorf("shown %d", 2)

	require.Len(t, c.entries, 1)
	assert.Equal(t, "shown 2", c.entries[0].Message)
}

func TestRoot_WithSharesRootHandlers(t *testing.T) {
	resetRoot(t)
	c := &capture{}
	AddHandler(c)

	With(String("request", "42")).Error("child")

	require.Len(t, c.entries, 1)
	assert.Equal(t, "request", c.entries[0].Fields[0].Key)
}

func TestRoot_LastResortWithoutHandlers(t *testing.T) {
	resetRoot(t)
	var buf bytes.Buffer
	orig := lastResort
	lastResort = handler.NewLevelFilter(
		consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{Writer: &buf}),
		core.WarnLevel,
	)
	t.Cleanup(func() { lastResort = orig })

	Info("not important")
	Exceptionf(errors.New("boom"), "failed: %s", "boom")

	assert.NotContains(t, buf.String(), "not important")
	assert.Contains(t, buf.String(), "[ERROR] root: failed: boom error=boom")
}

type closeCounter struct {
	capture
	closed int
}

func (c *closeCounter) Close() error {
	c.closed++
	return nil
}

func TestShutdown_ClosesAndDetaches(t *testing.T) {
	resetRoot(t)
	c := &closeCounter{}
	AddHandler(c)

	require.NoError(t, Shutdown())
	assert.Equal(t, 1, c.closed)
	assert.Empty(t, Handlers())
}
