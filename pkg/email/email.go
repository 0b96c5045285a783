package email

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"

	"seo-audit-backend/config"

	"github.com/wneessen/go-mail"
)

// ErrNotConfigured is returned by Send when the relay host or recipient is missing.
var ErrNotConfigured = errors.New("email: relay is not configured")

// Mailer delivers a composed message to the configured destination.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
	IsConfigured() bool
	// Relay returns host:port for diagnostics.
	Relay() string
}

// Message is a composed email. Sender and recipient addresses come from the
// relay configuration, not from the message.
type Message struct {
	FromName string
	ReplyTo  string
	Subject  string
	TextBody string
	HTMLBody string
}

// Sender relays messages through an SMTP server. A new connection is dialed
// for every Send.
type Sender struct {
	cfg config.SMTPConfig
}

func NewSender(cfg config.SMTPConfig) *Sender {
	if cfg.Port == 0 {
		cfg.Port = config.DefaultSMTPPort
	}
	return &Sender{cfg: cfg}
}

func (s *Sender) IsConfigured() bool {
	return s.cfg.Host != "" && s.cfg.To != ""
}

func (s *Sender) Relay() string {
	return net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port))
}

// Send makes a single delivery attempt.
func (s *Sender) Send(ctx context.Context, msg Message) error {
	if !s.IsConfigured() {
		return ErrNotConfigured
	}

	m, err := s.buildMsg(msg)
	if err != nil {
		return err
	}

	c, err := mail.NewClient(s.cfg.Host, s.clientOptions()...)
	if err != nil {
		return fmt.Errorf("email: failed to create client: %w", err)
	}

	if err := c.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("email: failed to send: %w", err)
	}
	return nil
}

func (s *Sender) buildMsg(msg Message) (*mail.Msg, error) {
	m := mail.NewMsg()

	if msg.FromName != "" {
		if err := m.FromFormat(msg.FromName, s.cfg.From); err != nil {
			return nil, fmt.Errorf("email: invalid from address: %w", err)
		}
	} else if err := m.From(s.cfg.From); err != nil {
		return nil, fmt.Errorf("email: invalid from address: %w", err)
	}

	if err := m.To(s.cfg.To); err != nil {
		return nil, fmt.Errorf("email: invalid to address: %w", err)
	}

	if msg.ReplyTo != "" {
		if err := m.ReplyTo(msg.ReplyTo); err != nil {
			return nil, fmt.Errorf("email: invalid reply-to address: %w", err)
		}
	}

	m.Subject(msg.Subject)
	m.SetDate()

	switch {
	case msg.TextBody != "" && msg.HTMLBody != "":
		m.SetBodyString(mail.TypeTextPlain, msg.TextBody)
		m.AddAlternativeString(mail.TypeTextHTML, msg.HTMLBody)
	case msg.HTMLBody != "":
		m.SetBodyString(mail.TypeTextHTML, msg.HTMLBody)
	case msg.TextBody != "":
		m.SetBodyString(mail.TypeTextPlain, msg.TextBody)
	default:
		return nil, errors.New("email: message body is empty")
	}

	return m, nil
}

func (s *Sender) clientOptions() []mail.Option {
	opts := []mail.Option{}

	if s.cfg.Secure {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}

	if s.cfg.User != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.cfg.User),
			mail.WithPassword(s.cfg.Password),
		)
	}

	// Last, so no TLS option can move it.
	return append(opts, mail.WithPort(s.cfg.Port))
}
