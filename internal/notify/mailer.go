package notify

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

// MailerConfig carries SMTP settings. An empty Host disables delivery.
type MailerConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Mailer sends operator email over SMTP. It satisfies the notifier contract
// used by the scan cycle and the report service.
type Mailer struct {
	cfg    MailerConfig
	dialer *gomail.Dialer
}

func NewMailer(cfg MailerConfig) *Mailer {
	m := &Mailer{cfg: cfg}
	if cfg.Host != "" {
		m.dialer = gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	}
	return m
}

// Send delivers one message, attaching attachmentPath when non-empty. Honors
// context cancellation before dialing; gomail itself has no context support.
func (m *Mailer) Send(ctx context.Context, to, attachmentPath, subject, body string) error {
	if m.dialer == nil {
		return fmt.Errorf("smtp is not configured")
	}
	if to == "" {
		return fmt.Errorf("recipient is required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	if attachmentPath != "" {
		msg.Attach(attachmentPath)
	}

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}
