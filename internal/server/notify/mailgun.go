package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/mailgun/mailgun-go/v4"
)

// MailgunSender delivers mail through the Mailgun API.
type MailgunSender struct {
	mg   *mailgun.MailgunImpl
	from string
}

func newMailgunSender(cfg Config) (*MailgunSender, error) {
	if cfg.MailgunDomain == "" || cfg.MailgunAPIKey == "" || cfg.From == "" {
		return nil, errInvalidConfig
	}
	return &MailgunSender{
		mg:   mailgun.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey),
		from: cfg.From,
	}, nil
}

func (s *MailgunSender) SendVerificationEmail(ctx context.Context, to, subject, htmlBody string) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	message := s.mg.NewMessage(s.from, subject, "", to)
	message.SetHtml(htmlBody)

	_, _, err := s.mg.Send(ctx, message)
	if err != nil {
		return fmt.Errorf("mailgun send: %w", err)
	}

	return nil
}
