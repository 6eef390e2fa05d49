package consolehandler

import (
	"io"
	"os"
	"sync"

	"github.com/hut8labs/failmail-client/core"
	"github.com/hut8labs/failmail-client/formatter"
)

// ConsoleHandler writes log entries to a writer
type ConsoleHandler struct {
	mu              sync.Mutex
	writer          io.Writer
	formatter       formatter.Formatter
	writerFormatter formatter.WriterFormatter
}

// ConsoleConfig holds configuration for console handler
type ConsoleConfig struct {
	// Writer to write to (default: os.Stderr)
	Writer io.Writer
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
}

// NewConsoleHandler creates a new console handler
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	if cfg.Writer == nil {
		cfg.Writer = os.Stderr
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}

	h := &ConsoleHandler{
		writer:    cfg.Writer,
		formatter: cfg.Formatter,
	}
	h.writerFormatter, _ = cfg.Formatter.(formatter.WriterFormatter)
	return h
}

// Handle formats and writes the entry
func (h *ConsoleHandler) Handle(entry *core.Entry) error {
	if h.writerFormatter != nil {
		h.mu.Lock()
		defer h.mu.Unlock()
		return h.writerFormatter.FormatTo(entry, h.writer)
	}

	data, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err = h.writer.Write(data)
	return err
}

// Close is a no-op; the writer is owned by the caller
func (h *ConsoleHandler) Close() error {
	return nil
}
