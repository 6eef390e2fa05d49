package handler

import (
	"github.com/hut8labs/failmail-client/core"
)

// LevelFilter forwards entries at or above Level to the wrapped handler
type LevelFilter struct {
	next  Handler
	level core.Level
}

// NewLevelFilter wraps h so that it only receives entries at or above level
func NewLevelFilter(h Handler, level core.Level) *LevelFilter {
	return &LevelFilter{next: h, level: level}
}

// Enabled reports whether entries at level pass the filter
func (f *LevelFilter) Enabled(level core.Level) bool {
	return level.AtLeast(f.level)
}

// Handle forwards the entry when it passes the filter
func (f *LevelFilter) Handle(entry *core.Entry) error {
	if !f.Enabled(entry.Level) {
		return nil
	}
	return f.next.Handle(entry)
}

// Unwrap returns the wrapped handler
func (f *LevelFilter) Unwrap() Handler {
	return f.next
}

// Close closes the wrapped handler
func (f *LevelFilter) Close() error {
	return f.next.Close()
}
