package logger

import (
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/hut8labs/failmail-client/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	DebugLevel = core.DebugLevel
	InfoLevel  = core.InfoLevel
	WarnLevel  = core.WarnLevel
	ErrorLevel = core.ErrorLevel
	FatalLevel = core.FatalLevel
	PanicLevel = core.PanicLevel
)

// ErrUnknownLevel is returned by ParseLevelStrict for names it does not know
var ErrUnknownLevel = errors.New("unknown log level")

// ParseLevel converts a string to a Level, falling back to InfoLevel
func ParseLevel(s string) Level {
	level, err := ParseLevelStrict(s)
	if err != nil {
		return InfoLevel
	}
	return level
}

// ParseLevelStrict converts a string to a Level. Names are case-insensitive;
// WARNING and CRITICAL are accepted as aliases of WARN and FATAL.
func ParseLevelStrict(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return DebugLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "WARN", "WARNING":
		return WarnLevel, nil
	case "ERROR":
		return ErrorLevel, nil
	case "FATAL", "CRITICAL":
		return FatalLevel, nil
	case "PANIC":
		return PanicLevel, nil
	default:
		return InfoLevel, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
}

// LevelVar is a Level that can be changed while loggers use it. Loggers
// derived with With share their parent's LevelVar.
type LevelVar struct {
	v atomic.Int32
}

// NewLevelVar returns a LevelVar set to level
func NewLevelVar(level Level) *LevelVar {
	lv := &LevelVar{}
	lv.Set(level)
	return lv
}

// Level returns the current level
func (lv *LevelVar) Level() Level {
	return Level(lv.v.Load())
}

// Set changes the level
func (lv *LevelVar) Set(level Level) {
	lv.v.Store(int32(level))
}
