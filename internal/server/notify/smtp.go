package notify

import (
	"context"
	"fmt"
	"net/smtp"
)

// SMTPSender delivers mail through a plain SMTP relay. Intended for local
// development and self-hosted deployments.
type SMTPSender struct {
	host     string
	port     string
	username string
	password string
	from     string
}

func newSMTPSender(cfg Config) (*SMTPSender, error) {
	if cfg.SMTPHost == "" || cfg.SMTPPort == "" || cfg.From == "" {
		return nil, errInvalidConfig
	}
	return &SMTPSender{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.Username,
		password: cfg.Password,
		from:     cfg.From,
	}, nil
}

// sendMail is a seam for testing smtp.SendMail.
var sendMail = smtp.SendMail

func (s *SMTPSender) SendVerificationEmail(_ context.Context, to, subject, htmlBody string) error {
	var auth smtp.Auth
	if s.username != "" {
		auth = smtp.PlainAuth("", s.username, s.password, s.host)
	}

	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n%s",
		s.from, to, subject, htmlBody,
	))

	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	if err := sendMail(addr, auth, s.from, []string{to}, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}

	return nil
}
