package handler

import (
	"github.com/hut8labs/failmail-client/core"
)

// Handler defines the interface for log handlers
type Handler interface {
	// Handle processes a log entry
	Handle(entry *core.Entry) error

	// Close closes the handler and releases resources
	Close() error
}

// Leveled is implemented by handlers that only accept entries at or above
// a minimum level.
type Leveled interface {
	Enabled(level core.Level) bool
}

// Enabled reports whether h accepts entries at level. Handlers that do not
// implement Leveled accept everything.
func Enabled(h Handler, level core.Level) bool {
	if lh, ok := h.(Leveled); ok {
		return lh.Enabled(level)
	}
	return true
}
