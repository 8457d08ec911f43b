// Package mail delivers the gateway's notification emails over SMTP.
// Delivery is fire-and-forget: Send reports success or failure and never
// lets an SMTP error escape past this boundary.
package mail

import (
	"log/slog"

	"gopkg.in/gomail.v2"
)

// Sender is the SMTP send primitive. Notifier wraps it with the
// templated messages the services actually send.
type Sender interface {
	Send(to, subject, htmlBody string) bool
}

type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
	log    *slog.Logger
}

func NewSMTPSender(host string, port int, user, password string, logger *slog.Logger) *SMTPSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(host, port, user, password),
		from:   user,
		log:    logger.With(slog.String("component", "mailer")),
	}
}

func (s *SMTPSender) Send(to, subject, htmlBody string) bool {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		s.log.Error("email delivery failed", "to", to, "subject", subject, "error", err)
		return false
	}
	s.log.Info("email delivered", "to", to, "subject", subject)
	return true
}
