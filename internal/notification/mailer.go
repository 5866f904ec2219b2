package notification

import (
	"errors"

	"github.com/ParthVaghani-7/crickbase/config"
	gomail "gopkg.in/gomail.v2"
)

// Mailer delivers a single rendered message. Implementations must be safe for
// concurrent use; the service calls Send from goroutines.
type Mailer interface {
	Send(to, subject, htmlBody, textBody string) error
}

// SMTPMailer delivers via a configured SMTP transport.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password),
		from:   cfg.SMTP.From,
	}
}

func (m *SMTPMailer) Send(to, subject, htmlBody, textBody string) error {
	if m.dialer.Host == "" {
		return errors.New("smtp host is not configured")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	if textBody != "" {
		msg.SetBody("text/plain", textBody)
		msg.AddAlternative("text/html", htmlBody)
	} else {
		msg.SetBody("text/html", htmlBody)
	}

	return m.dialer.DialAndSend(msg)
}
