package notify

import (
	"log/slog"

	"gopkg.in/gomail.v2"
)

// Mailer is the outbound mail transport.
type Mailer interface {
	Send(to, subject, body string) error
}

// SMTPMailer delivers mail over SMTP.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(host string, port int, username, password, from string) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	return m.dialer.DialAndSend(msg)
}

// LogMailer stands in when SMTP is not configured; it logs the mail
// instead of sending it.
type LogMailer struct {
	logger *slog.Logger
}

func NewLogMailer(logger *slog.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

func (m *LogMailer) Send(to, subject, body string) error {
	m.logger.Info("Mail delivery skipped, SMTP not configured",
		"to", to,
		"subject", subject,
	)
	return nil
}
