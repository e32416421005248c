// Package mail relays contact-form notifications over SMTP.
package mail

import (
	"errors"
	"net/smtp"

	"github.com/matthieukhl/giftlab/internal/config"
)

// Mailer sends a notification to the shop inbox. Implementations are
// best-effort collaborators: a Send failure must never fail the request that
// triggered it.
type Mailer interface {
	Send(subject, body string) error
}

type smtpMailer struct {
	addr, from, to string
}

func NewSMTPMailer(cfg config.SMTPConfig) Mailer {
	return &smtpMailer{addr: cfg.Addr, from: cfg.From, to: cfg.To}
}

func (m *smtpMailer) Send(subject, body string) error {
	if m.addr == "" {
		return errors.New("smtp relay not configured")
	}

	msg := "From: " + m.from + "\r\n" +
		"To: " + m.to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n" +
		body

	return smtp.SendMail(m.addr, nil, m.from, []string{m.to}, []byte(msg))
}
