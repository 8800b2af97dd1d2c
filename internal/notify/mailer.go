package notify

import (
	"fmt"
	"net/smtp"
	"strings"
)

type Mailer interface {
	Send(to string, subject string, body string) error
}

// SMTPMailer sends plain-text mail over unauthenticated SMTP, enough for a
// local relay or Mailpit in development.
type SMTPMailer struct {
	addr string
	from string
}

func NewSMTPMailer(host, port, from string) *SMTPMailer {
	if from == "" {
		from = "no-reply@salonbook.local"
	}
	return &SMTPMailer{
		addr: fmt.Sprintf("%s:%s", strings.TrimSpace(host), strings.TrimSpace(port)),
		from: from,
	}
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s\r\n",
		m.from, to, subject, body,
	)
	return smtp.SendMail(m.addr, nil, m.from, []string{to}, []byte(msg))
}
