package handler

import (
	"errors"
	"reflect"
	"sync"

	"github.com/hut8labs/failmail-client/core"
)

// MultiHandler sends log entries to multiple handlers. Children may be added
// and removed while the handler is in use.
type MultiHandler struct {
	mu       sync.RWMutex
	handlers []Handler
}

// NewMultiHandler creates a new multi-handler
func NewMultiHandler(handlers ...Handler) *MultiHandler {
	m := &MultiHandler{}
	for _, h := range handlers {
		m.Add(h)
	}
	return m
}

// Add attaches child. It returns false, and does nothing, when child is nil
// or already attached. Handlers whose dynamic type is not comparable (a struct
// value holding a slice, a func type) cannot be recognised and are attached
// on every call; pass them by pointer to get add-once behaviour.
func (h *MultiHandler) Add(child Handler) bool {
	if child == nil {
		return false
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, existing := range h.handlers {
		if sameHandler(existing, child) {
			return false
		}
	}
	h.handlers = append(h.handlers, child)
	return true
}

// Remove detaches child and reports whether it was attached
func (h *MultiHandler) Remove(child Handler) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	for i, existing := range h.handlers {
		if sameHandler(existing, child) {
			h.handlers = append(h.handlers[:i:i], h.handlers[i+1:]...)
			return true
		}
	}
	return false
}

// sameHandler compares a and b with == only when that cannot panic
func sameHandler(a, b Handler) bool {
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}

// Handlers returns a copy of the attached handlers
func (h *MultiHandler) Handlers() []Handler {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]Handler, len(h.handlers))
	copy(out, h.handlers)
	return out
}

// Len returns the number of attached handlers
func (h *MultiHandler) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.handlers)
}

// Handle sends the entry to every child whose level accepts it. A failing
// child does not stop the others; the errors are joined.
func (h *MultiHandler) Handle(entry *core.Entry) error {
	var errs []error
	for _, child := range h.Handlers() {
		if !Enabled(child, entry.Level) {
			continue
		}
		if err := child.Handle(entry); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Close closes all handlers and detaches them
func (h *MultiHandler) Close() error {
	h.mu.Lock()
	handlers := h.handlers
	h.handlers = nil
	h.mu.Unlock()

	var errs []error
	for _, child := range handlers {
		if err := child.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
