// Package formatter defines how log entries are serialized into bytes.
//
// TextFormatter renders one line per entry. When the entry carries an
// exception trace, the trace follows the line as an indented Traceback
// block, so the same output works for a terminal and for a mail body.
//
// Formatters use a pooled bytes.Buffer internally. Buffers larger than
// 64 KiB are not returned to the pool.
package formatter
