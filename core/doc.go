// Package core defines the shared types of the logging facility.
//
// It provides the Level type for severity filtering, the Entry type that
// represents a single log event, and the Field type for structured
// key-value pairs.
//
// An Entry may carry a Stack: the goroutine trace captured when an error
// is logged with logger.Exception. Handlers that report failures out of
// process, such as the mail handler, render it after the message.
//
// Entry objects are pooled via sync.Pool. Callers get an Entry with
// GetEntry and return it with PutEntry once every handler has consumed it.
package core
