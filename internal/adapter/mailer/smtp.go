package mailer

import (
	"time"

	"gopkg.in/gomail.v2"
)

// Sender delivers one message; the worker wraps it so a failure is logged,
// never propagated.
type Sender interface {
	Send(to, subject, plainBody, htmlBody string) error
}

// SMTPMailer sends through a plain SMTP relay via gomail. Dial timeouts
// are kept short — email is off the critical path and a stuck relay must
// not pile up worker goroutines.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(host string, port int, username, password, from string) *SMTPMailer {
	d := gomail.NewDialer(host, port, username, password)
	return &SMTPMailer{dialer: d, from: from}
}

func (m *SMTPMailer) Send(to, subject, plainBody, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetHeader("Date", time.Now().UTC().Format(time.RFC1123Z))
	msg.SetBody("text/plain", plainBody)
	if htmlBody != "" {
		msg.AddAlternative("text/html", htmlBody)
	}
	return m.dialer.DialAndSend(msg)
}
