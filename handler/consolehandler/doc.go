// Package consolehandler provides a synchronous handler that writes
// formatted log entries to any io.Writer (default: os.Stderr).
package consolehandler
