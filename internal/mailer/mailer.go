// Package mailer delivers activation emails. Drivers share one interface so
// the worker can swap transports by configuration.
package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/smtp"
	"strconv"
	"strings"
)

// Mailer sends a single plain-text message.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// LogMailer writes messages to the log. Development driver.
type LogMailer struct {
	Logger *slog.Logger
}

// Send logs the message instead of delivering it.
func (m LogMailer) Send(_ context.Context, to, subject, body string) error {
	logger := m.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("mail (log driver)",
		slog.String("to", to),
		slog.String("subject", subject),
		slog.String("body", body))
	return nil
}

// SMTPMailer talks to a plain SMTP endpoint such as Mailpit.
type SMTPMailer struct {
	Host string
	Port int
	From string
}

// Send delivers the message over SMTP without authentication.
func (m SMTPMailer) Send(_ context.Context, to, subject, body string) error {
	addr := net.JoinHostPort(m.Host, strconv.Itoa(m.Port))
	msg := buildMessage(m.From, to, subject, body)
	if err := smtp.SendMail(addr, nil, m.From, []string{to}, msg); err != nil {
		return fmt.Errorf("mailer: smtp send: %w", err)
	}
	return nil
}

func buildMessage(from, to, subject, body string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	b.WriteString("\r\n")
	return []byte(b.String())
}

var (
	_ Mailer = LogMailer{}
	_ Mailer = SMTPMailer{}
)
