// Package mail delivers confirmation codes to users. Delivery is
// fire-and-forget: a failed send is logged by the caller, never retried.
package mail

import (
	"context"
	"fmt"
	"net/smtp"
)

// Sender delivers a confirmation code out of band.
type Sender interface {
	SendConfirmationCode(ctx context.Context, email, username, code string) error
}

const (
	subject      = "Your critiq confirmation code"
	bodyTemplate = `Your confirmation code: %s
Your username: %s
`
)

// SMTPConfig holds the SMTP relay settings.
type SMTPConfig struct {
	Host string
	Port string
	User string
	Pass string
	From string
}

// SMTPSender sends plain-text mail through an SMTP relay.
type SMTPSender struct {
	cfg SMTPConfig
}

func NewSMTPSender(cfg SMTPConfig) (*SMTPSender, error) {
	if cfg.Host == "" || cfg.From == "" {
		return nil, fmt.Errorf("mail: smtp host and from address are required")
	}
	if cfg.Port == "" {
		cfg.Port = "587"
	}
	return &SMTPSender{cfg: cfg}, nil
}

func (s *SMTPSender) SendConfirmationCode(ctx context.Context, email, username, code string) error {
	msg := []byte("From: " + s.cfg.From + "\r\n" +
		"To: " + email + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/plain; charset=\"utf-8\"\r\n\r\n" +
		fmt.Sprintf(bodyTemplate, code, username) + "\r\n")

	var auth smtp.Auth
	if s.cfg.User != "" {
		auth = smtp.PlainAuth("", s.cfg.User, s.cfg.Pass, s.cfg.Host)
	}

	addr := s.cfg.Host + ":" + s.cfg.Port
	return smtp.SendMail(addr, auth, s.cfg.From, []string{email}, msg)
}
