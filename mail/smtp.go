package mail

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strings"

	"github.com/pkg/errors"
)

// ErrNotConfigured is returned when SMTP credentials are missing.
var ErrNotConfigured = errors.New("SMTP credentials not configured")

// SMTPConfig holds the SMTP relay settings.
type SMTPConfig struct {
	Host string // e.g. "smtp.gmail.com"
	Port string // e.g. "587"
	User string
	Pass string // app password
	To   string // where contact messages are delivered
}

type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTP sends messages through an SMTP relay with PLAIN auth.
type SMTP struct {
	cfg      SMTPConfig
	sendMail sendMailFunc
}

func NewSMTP(cfg SMTPConfig) *SMTP {
	return &SMTP{cfg: cfg, sendMail: smtp.SendMail}
}

func (s *SMTP) Send(ctx context.Context, msg Message) error {
	if s.cfg.User == "" || s.cfg.Pass == "" {
		return ErrNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "smtp send")
	}

	auth := smtp.PlainAuth("", s.cfg.User, s.cfg.Pass, s.cfg.Host)
	addr := net.JoinHostPort(s.cfg.Host, s.cfg.Port)
	body := compose(s.cfg.User, s.cfg.To, msg)

	// net/smtp has no context support; give up waiting when ctx ends
	result := make(chan error, 1)
	go func() {
		result <- s.sendMail(addr, auth, s.cfg.User, []string{s.cfg.To}, body)
	}()

	select {
	case err := <-result:
		return errors.Wrap(err, "smtp send")
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "smtp send")
	}
}

func compose(from, to string, msg Message) []byte {
	subject := msg.Subject
	if subject == "" {
		subject = msg.Name
	}
	subject = headerValue("Portfolio Contact: " + subject)

	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Subject: %s
Message:
%s

---
Sent from your portfolio contact form
`, msg.Name, msg.Email, msg.Subject, msg.Body)

	return []byte("To: " + headerValue(to) + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + headerValue(from) + "\r\n" +
		"Reply-To: " + headerValue(msg.Email) + "\r\n" +
		"\r\n" +
		body + "\r\n")
}

// headerValue strips line breaks so form input cannot add headers.
func headerValue(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}
