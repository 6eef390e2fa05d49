// Package smtptest runs an in-process SMTP relay for tests that need to
// observe what a mail handler actually put on the wire.
package smtptest

import (
	"errors"
	"io"
	"mime/quotedprintable"
	"net"
	"net/mail"
	"strings"
	"sync"
	"testing"

	"github.com/emersion/go-smtp"
)

// Message is one message accepted by the server
type Message struct {
	From   string
	To     []string
	Header mail.Header
	Body   string
	Raw    string
}

// Server accepts SMTP sessions on a random local port and records every
// message it is sent. It offers neither STARTTLS nor AUTH.
type Server struct {
	ln         net.Listener
	smtp       *smtp.Server
	rejectData bool
	done       chan struct{}

	mu   sync.Mutex
	msgs []Message
}

// Option customizes a Server
type Option func(*Server)

// RejectData makes the server refuse every message with 554 once its
// content has been received.
func RejectData() Option {
	return func(s *Server) { s.rejectData = true }
}

// NewServer starts a server that is closed when the test ends
func NewServer(t testing.TB, opts ...Option) *Server {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to listen: %v", err)
	}

	s := &Server{ln: ln, done: make(chan struct{})}
	for _, opt := range opts {
		opt(s)
	}

	s.smtp = smtp.NewServer(backend{s})
	s.smtp.Domain = "localhost"

	go func() {
		defer close(s.done)
		if err := s.smtp.Serve(ln); err != nil && !errors.Is(err, smtp.ErrServerClosed) {
			t.Logf("smtptest: serve: %v", err)
		}
	}()
	t.Cleanup(s.Close)
	return s
}

// Host returns the address the server listens on
func (s *Server) Host() string {
	return s.ln.Addr().(*net.TCPAddr).IP.String()
}

// Port returns the port the server listens on
func (s *Server) Port() int {
	return s.ln.Addr().(*net.TCPAddr).Port
}

// Messages returns a copy of the messages received so far
func (s *Server) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.msgs))
	copy(out, s.msgs)
	return out
}

// Close stops the server and waits for it to return. It may be called more
// than once.
func (s *Server) Close() {
	_ = s.smtp.Close()
	<-s.done
}

func (s *Server) record(msg Message) {
	if parsed, err := mail.ReadMessage(strings.NewReader(msg.Raw)); err == nil {
		msg.Header = parsed.Header
		var body io.Reader = parsed.Body
		if strings.EqualFold(parsed.Header.Get("Content-Transfer-Encoding"), "quoted-printable") {
			body = quotedprintable.NewReader(body)
		}
		if b, err := io.ReadAll(body); err == nil {
			msg.Body = strings.ReplaceAll(string(b), "\r\n", "\n")
		}
	}

	s.mu.Lock()
	s.msgs = append(s.msgs, msg)
	s.mu.Unlock()
}

type backend struct {
	srv *Server
}

func (b backend) NewSession(*smtp.Conn) (smtp.Session, error) {
	return &session{srv: b.srv}, nil
}

// errRejected is the reply RejectData servers give at the end of DATA.
var errRejected = &smtp.SMTPError{
	Code:         554,
	EnhancedCode: smtp.EnhancedCode{5, 0, 0},
	Message:      "Transaction failed",
}

type session struct {
	srv  *Server
	from string
	to   []string
}

func (s *session) Mail(from string, _ *smtp.MailOptions) error {
	s.from = from
	s.to = nil
	return nil
}

func (s *session) Rcpt(to string, _ *smtp.RcptOptions) error {
	s.to = append(s.to, to)
	return nil
}

func (s *session) Data(r io.Reader) error {
	raw, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if s.srv.rejectData {
		return errRejected
	}
	s.srv.record(Message{From: s.from, To: s.to, Raw: string(raw)})
	return nil
}

func (s *session) Reset() {
	s.from = ""
	s.to = nil
}

func (s *session) Logout() error {
	return nil
}
