// Package handler provides the Handler interface and the combinators used
// to attach several outputs to one logger.
//
// Handlers are synchronous: Handle returns after the entry has been
// written or delivered, so the caller may recycle the entry afterwards.
//
//   - LevelFilter gives a handler its own minimum level, independent of
//     the logger's level. A mail handler attached at ERROR to a logger
//     running at DEBUG only sees errors.
//   - MultiHandler fans a single entry out to every child handler and
//     keeps going when one of them fails.
//
// Concrete outputs live in subpackages: consolehandler writes to an
// io.Writer and mailhandler delivers each entry through an SMTP relay.
package handler
