package config

import (
	"flag"
	"os"
	"time"

	"github.com/resumecore/api/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags:
//
//	-a string            HTTP bind address (e.g., ":8080")
//	-d string            PostgreSQL DSN
//	-s string            JWT HMAC secret key
//	-t int               bearer token validity, minutes
//	-u string            public base URL for verification links
//	-email-provider      "smtp" or "mailgun"
//	-smtp-host/-smtp-port/-smtp-user/-smtp-pass/-email-from
//	-mg-domain/-mg-key   Mailgun settings
//	-rzp-key/-rzp-secret Razorpay credentials
//	-amount int          premium price in minor units
//	-currency string     ISO currency code
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components. The duration
// flag is accepted as an integer in minutes.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{
		"-a", "-d", "-s", "-t", "-u",
		"-email-provider", "-smtp-host", "-smtp-port", "-smtp-user", "-smtp-pass", "-email-from",
		"-mg-domain", "-mg-key",
		"-rzp-key", "-rzp-secret", "-amount", "-currency",
	})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	tokenValidityDuration := fs.Int("t", int(config.TokenValidityDuration.Minutes()), "token_validity_duration (in minutes)")

	fs.StringVar(&config.AppBaseURL, "u", config.AppBaseURL, "public base URL")
	fs.StringVar(&config.EmailProvider, "email-provider", config.EmailProvider, "email provider (smtp or mailgun)")
	fs.StringVar(&config.SMTPHost, "smtp-host", config.SMTPHost, "SMTP host")
	fs.StringVar(&config.SMTPPort, "smtp-port", config.SMTPPort, "SMTP port")
	fs.StringVar(&config.SMTPUsername, "smtp-user", config.SMTPUsername, "SMTP username")
	fs.StringVar(&config.SMTPPassword, "smtp-pass", config.SMTPPassword, "SMTP password")
	fs.StringVar(&config.EmailFrom, "email-from", config.EmailFrom, "sender address for outgoing mail")
	fs.StringVar(&config.MailgunDomain, "mg-domain", config.MailgunDomain, "Mailgun domain")
	fs.StringVar(&config.MailgunAPIKey, "mg-key", config.MailgunAPIKey, "Mailgun API key")
	fs.StringVar(&config.RazorpayKeyID, "rzp-key", config.RazorpayKeyID, "Razorpay key id")
	fs.StringVar(&config.RazorpayKeySecret, "rzp-secret", config.RazorpayKeySecret, "Razorpay key secret")
	fs.Int64Var(&config.PremiumAmount, "amount", config.PremiumAmount, "premium plan price in minor units")
	fs.StringVar(&config.Currency, "currency", config.Currency, "ISO currency code")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.TokenValidityDuration = time.Duration(*tokenValidityDuration) * time.Minute
}
