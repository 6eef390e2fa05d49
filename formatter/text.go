package formatter

import (
	"bytes"
	"io"
	"time"

	"github.com/hut8labs/failmail-client/core"
)

// TracebackHeader introduces the exception trace in formatted output.
const TracebackHeader = "Traceback (most recent call first):"

// TextFormatter formats log entries as human-readable text
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339
	}
	return &TextFormatter{Config: cfg}
}

// Format formats an entry as text
func (f *TextFormatter) Format(entry *core.Entry) ([]byte, error) {
	buf := buffers.get()
	defer buffers.put(buf)

	f.formatToBuffer(entry, buf)

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats an entry and writes it directly to the writer
func (f *TextFormatter) FormatTo(entry *core.Entry, w io.Writer) error {
	buf := buffers.get()
	defer buffers.put(buf)

	f.formatToBuffer(entry, buf)

	_, err := w.Write(buf.Bytes())
	return err
}

func (f *TextFormatter) formatToBuffer(entry *core.Entry, buf *bytes.Buffer) {
	buf.Write(entry.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))

	buf.WriteString(" [")
	buf.WriteString(entry.Level.String())
	buf.WriteString("] ")

	if entry.Logger != "" {
		buf.WriteString(entry.Logger)
		buf.WriteString(": ")
	}

	if f.IncludeCaller && entry.Caller.Defined {
		buf.WriteByte('[')
		buf.WriteString(entry.Caller.String())
		buf.WriteString("] ")
	}

	buf.WriteString(entry.Message)

	for _, field := range entry.Fields {
		buf.WriteByte(' ')
		buf.WriteString(field.Key)
		buf.WriteByte('=')
		buf.WriteString(field.StringValue())
	}

	buf.WriteByte('\n')

	if entry.HasStack() && !f.OmitStack {
		writeStack(buf, entry.Stack)
	}
}

// writeStack writes the trace under TracebackHeader. Function lines are
// indented four spaces and the tab-indented file:line lines eight, so each
// location stays paired with its function.
func writeStack(buf *bytes.Buffer, stack []byte) {
	buf.WriteString(TracebackHeader)
	buf.WriteByte('\n')
	for _, line := range bytes.Split(bytes.TrimRight(stack, "\n"), []byte{'\n'}) {
		buf.WriteString("    ")
		if trimmed := bytes.TrimLeft(line, "\t"); len(trimmed) < len(line) {
			buf.WriteString("    ")
			line = trimmed
		}
		buf.Write(line)
		buf.WriteByte('\n')
	}
}
