// Package notify delivers account e-mails. The core treats delivery as
// fire-and-forget: a failure surfaces as an error to be logged and mapped,
// never retried here.
package notify

import (
	"context"
	"errors"
	"fmt"
)

// Sender delivers a single HTML e-mail.
type Sender interface {
	SendVerificationEmail(ctx context.Context, to, subject, htmlBody string) error
}

// Config selects and configures a provider. Exactly one provider is active,
// chosen by Provider ("smtp" or "mailgun").
type Config struct {
	Provider string

	// smtp
	SMTPHost string
	SMTPPort string
	Username string
	Password string

	// mailgun
	MailgunDomain string
	MailgunAPIKey string

	From string
}

// NewSender returns the Sender for the configured provider.
func NewSender(cfg Config) (Sender, error) {
	switch cfg.Provider {
	case "smtp":
		return newSMTPSender(cfg)
	case "mailgun":
		return newMailgunSender(cfg)
	default:
		return nil, fmt.Errorf("unknown email provider: %q", cfg.Provider)
	}
}

// VerificationEmail renders the verification message for a new or
// re-requested token. The link embeds the raw token; the page behind it
// calls the verify-email operation.
func VerificationEmail(name, baseURL, token string) (subject, htmlBody string) {
	link := baseURL + "/api/auth/verify-email?token=" + token

	subject = "Verify your email"
	htmlBody = "<div style='font-family:sans-serif'>" +
		"<h2>Verify your email</h2>" +
		"<p>Hi " + name + ", please confirm your email to activate your account.</p>" +
		"<p><a href='" + link + "' style='display:inline-block;padding:10px 16px;background:#6366f1;color:#fff;border-radius:6px;text-decoration:none'>Verify Email</a></p>" +
		"<p>Or copy this link: " + link + "</p>" +
		"<p>This link expires in 24 hours.</p>" +
		"</div>"

	return subject, htmlBody
}

var errInvalidConfig = errors.New("invalid email configuration")
