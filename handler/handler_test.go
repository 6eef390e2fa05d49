package handler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hut8labs/failmail-client/core"
)

type recordingHandler struct {
	messages []string
	err      error
	closed   int
}

func (r *recordingHandler) Handle(entry *core.Entry) error {
	r.messages = append(r.messages, entry.Message)
	return r.err
}

func (r *recordingHandler) Close() error {
	r.closed++
	return r.err
}

// leveledRecorder records everything it is given, so only the caller's
// level check keeps entries out.
type leveledRecorder struct {
	recordingHandler
	min core.Level
}

func (r *leveledRecorder) Enabled(level core.Level) bool {
	return level >= r.min
}

// funcHandler has a non-comparable dynamic type.
type funcHandler func(entry *core.Entry) error

func (f funcHandler) Handle(entry *core.Entry) error { return f(entry) }
func (f funcHandler) Close() error                   { return nil }

// sliceHandler is a struct value holding a slice, also non-comparable.
type sliceHandler struct {
	seen *[]string
	tags []string
}

func (s sliceHandler) Handle(entry *core.Entry) error {
	*s.seen = append(*s.seen, entry.Message)
	return nil
}

func (s sliceHandler) Close() error { return nil }

func entryAt(level core.Level, msg string) *core.Entry {
	return &core.Entry{Level: level, Message: msg}
}

func TestLevelFilter(t *testing.T) {
	rec := &recordingHandler{}
	f := NewLevelFilter(rec, core.ErrorLevel)

	require.NoError(t, f.Handle(entryAt(core.DebugLevel, "debug")))
	require.NoError(t, f.Handle(entryAt(core.WarnLevel, "warn")))
	require.NoError(t, f.Handle(entryAt(core.ErrorLevel, "error")))
	require.NoError(t, f.Handle(entryAt(core.FatalLevel, "fatal")))

	assert.Equal(t, []string{"error", "fatal"}, rec.messages)
	assert.False(t, Enabled(f, core.InfoLevel))
	assert.True(t, Enabled(f, core.ErrorLevel))
	assert.Same(t, rec, f.Unwrap())

	require.NoError(t, f.Close())
	assert.Equal(t, 1, rec.closed)
}

func TestEnabled_UnleveledHandlerAcceptsAll(t *testing.T) {
	assert.True(t, Enabled(&recordingHandler{}, core.DebugLevel))
}

func TestMultiHandler_AddIsIdempotent(t *testing.T) {
	rec := &recordingHandler{}
	m := NewMultiHandler(rec, rec)

	assert.Equal(t, 1, m.Len())
	assert.False(t, m.Add(rec))
	assert.False(t, m.Add(nil))

	require.NoError(t, m.Handle(entryAt(core.ErrorLevel, "once")))
	assert.Equal(t, []string{"once"}, rec.messages)
}

func TestMultiHandler_ContinuesAfterChildError(t *testing.T) {
	errSend := errors.New("relay unreachable")
	failing := &recordingHandler{err: errSend}
	ok := &recordingHandler{}
	m := NewMultiHandler(failing, ok)

	err := m.Handle(entryAt(core.ErrorLevel, "boom"))
	require.Error(t, err)
	assert.ErrorIs(t, err, errSend)
	assert.Equal(t, []string{"boom"}, ok.messages)
}

func TestMultiHandler_Remove(t *testing.T) {
	a, b := &recordingHandler{}, &recordingHandler{}
	m := NewMultiHandler(a, b)

	assert.True(t, m.Remove(a))
	assert.False(t, m.Remove(a))

	require.NoError(t, m.Handle(entryAt(core.InfoLevel, "after remove")))
	assert.Empty(t, a.messages)
	assert.Equal(t, []string{"after remove"}, b.messages)
}

func TestMultiHandler_CloseDetachesAll(t *testing.T) {
	a, b := &recordingHandler{}, &recordingHandler{}
	m := NewMultiHandler(a, b)

	require.NoError(t, m.Close())
	assert.Equal(t, 1, a.closed)
	assert.Equal(t, 1, b.closed)
	assert.Zero(t, m.Len())
}

func TestMultiHandler_SkipsChildrenBelowTheirLevel(t *testing.T) {
	mailLike := &leveledRecorder{min: core.ErrorLevel}
	all := &recordingHandler{}
	m := NewMultiHandler(mailLike, all)

	require.NoError(t, m.Handle(entryAt(core.DebugLevel, "debug")))
	require.NoError(t, m.Handle(entryAt(core.WarnLevel, "warn")))
	require.NoError(t, m.Handle(entryAt(core.ErrorLevel, "error")))

	assert.Equal(t, []string{"error"}, mailLike.messages)
	assert.Equal(t, []string{"debug", "warn", "error"}, all.messages)
}

func TestMultiHandler_NonComparableHandlers(t *testing.T) {
	var calls int
	fn := funcHandler(func(*core.Entry) error {
		calls++
		return nil
	})
	var seen []string
	sl := sliceHandler{seen: &seen, tags: []string{"mail"}}

	m := NewMultiHandler()
	assert.NotPanics(t, func() {
		assert.True(t, m.Add(fn))
		assert.True(t, m.Add(sl))
		assert.True(t, m.Add(&recordingHandler{}))
		assert.False(t, m.Remove(sl))
	})
	assert.Equal(t, 3, m.Len())

	require.NoError(t, m.Handle(entryAt(core.ErrorLevel, "boom")))
	assert.Equal(t, 1, calls)
	assert.Equal(t, []string{"boom"}, seen)
}
