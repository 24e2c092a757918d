package infrastructure

import (
	"agrobot/internal/config"

	"gopkg.in/gomail.v2"
)

// SMTPEmailClient sends plain-text mail through a single SMTP account.
type SMTPEmailClient struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPEmailClient(cfg config.SMTPConfig) *SMTPEmailClient {
	return &SMTPEmailClient{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.User,
	}
}

func (c *SMTPEmailClient) SendEmail(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", c.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)
	return c.dialer.DialAndSend(m)
}
