// Package mailhandler delivers log entries by mail through an SMTP relay.
//
// Each handled entry becomes one plain-text message whose body is the
// formatted entry, including the exception trace when one was captured.
// The handler is meant to sit behind a failmail relay, which batches the
// individual error mails into periodic summaries:
//
//	h, err := mailhandler.NewMailHandler(mailhandler.Config{
//	    Host:    "localhost",
//	    Port:    2525,
//	    From:    "test@example.com",
//	    To:      []string{"errors@example.com"},
//	    Subject: "error from the Go logging example",
//	})
//
// By default only entries at ERROR and above are sent. Delivery happens
// synchronously inside Handle; failures are returned to the caller and
// reported on the diagnostics zap logger, never retried.
package mailhandler
