package mailhandler

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"sync/atomic"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"github.com/hut8labs/failmail-client/core"
	"github.com/hut8labs/failmail-client/formatter"
)

// BatchHeader is the header a failmail relay uses to split incoming
// messages into separate summary mails.
const BatchHeader = "X-Failmail-Split"

var (
	ErrNoRelay      = errors.New("mailhandler: relay host is required")
	ErrInvalidPort  = errors.New("mailhandler: relay port must be between 1 and 65535")
	ErrNoSender     = errors.New("mailhandler: from address is required")
	ErrNoRecipients = errors.New("mailhandler: at least one recipient is required")
	ErrClosed       = errors.New("mailhandler: handler is closed")
)

// Sender delivers composed messages. *gomail.Dialer satisfies it.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// Config describes the relay and the envelope of every message sent.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string

	From    string
	To      []string
	Subject string
	// Batch, when set, is sent as the X-Failmail-Split header.
	Batch string
}

// Addr returns the relay address in host:port form
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Validate checks that the config can produce a deliverable message
func (c Config) Validate() error {
	switch {
	case c.Host == "":
		return ErrNoRelay
	case c.Port <= 0 || c.Port > 65535:
		return ErrInvalidPort
	case c.From == "":
		return ErrNoSender
	case len(c.To) == 0:
		return ErrNoRecipients
	}
	return nil
}

// Option customizes a MailHandler
type Option func(*MailHandler)

// WithLevel sets the minimum level that is mailed (default: ErrorLevel)
func WithLevel(level core.Level) Option {
	return func(h *MailHandler) { h.level = level }
}

// WithFormatter sets the formatter used for the message body
func WithFormatter(f formatter.Formatter) Option {
	return func(h *MailHandler) { h.formatter = f }
}

// WithSender replaces the SMTP dialer
func WithSender(s Sender) Option {
	return func(h *MailHandler) { h.sender = s }
}

// WithLogger sets the zap logger that receives delivery diagnostics
func WithLogger(l *zap.Logger) Option {
	return func(h *MailHandler) { h.log = l }
}

// MailHandler sends one mail per handled entry
type MailHandler struct {
	cfg       Config
	level     core.Level
	formatter formatter.Formatter
	sender    Sender
	log       *zap.Logger
	closed    atomic.Bool
	delivered atomic.Uint64
	failed    atomic.Uint64
}

// NewMailHandler validates cfg and creates a handler that relays through
// cfg.Host:cfg.Port.
func NewMailHandler(cfg Config, opts ...Option) (*MailHandler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	h := &MailHandler{
		cfg:   cfg,
		level: core.ErrorLevel,
	}
	for _, opt := range opts {
		opt(h)
	}

	if h.formatter == nil {
		h.formatter = formatter.NewTextFormatter(formatter.Config{})
	}
	if h.log == nil {
		h.log = zap.L()
	}
	if h.sender == nil {
		h.sender = gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	}
	h.log = h.log.Named("mailhandler").With(zap.String("relay", cfg.Addr()))

	return h, nil
}

// Enabled reports whether entries at level are mailed
func (h *MailHandler) Enabled(level core.Level) bool {
	return level.AtLeast(h.level)
}

// Handle composes a message for the entry and hands it to the relay.
func (h *MailHandler) Handle(entry *core.Entry) error {
	if entry.Level < h.level {
		return nil
	}
	if h.closed.Load() {
		return ErrClosed
	}

	msg, err := h.compose(entry)
	if err != nil {
		return err
	}

	if err := h.sender.DialAndSend(msg); err != nil {
		h.failed.Add(1)
		h.log.Warn("mail delivery failed",
			zap.Strings("to", h.cfg.To),
			zap.String("subject", h.cfg.Subject),
			zap.Error(err))
		return fmt.Errorf("mailhandler: deliver to %s: %w", h.cfg.Addr(), err)
	}

	h.delivered.Add(1)
	h.log.Debug("mail delivered", zap.Strings("to", h.cfg.To), zap.Stringer("level", entry.Level))
	return nil
}

func (h *MailHandler) compose(entry *core.Entry) (*gomail.Message, error) {
	body, err := h.formatter.Format(entry)
	if err != nil {
		return nil, fmt.Errorf("mailhandler: format entry: %w", err)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", h.cfg.From)
	msg.SetHeader("To", h.cfg.To...)
	msg.SetHeader("Subject", h.cfg.Subject)
	msg.SetDateHeader("Date", entry.Time)
	if h.cfg.Batch != "" {
		msg.SetHeader(BatchHeader, h.cfg.Batch)
	}
	msg.SetBody("text/plain", string(body))
	return msg, nil
}

// Stats returns the number of delivered and failed messages
func (h *MailHandler) Stats() (delivered, failed uint64) {
	return h.delivered.Load(), h.failed.Load()
}

// Close stops the handler from sending further mail. Each message uses its
// own connection, so there is nothing else to release.
func (h *MailHandler) Close() error {
	h.closed.Store(true)
	return nil
}
