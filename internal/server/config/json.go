package config

import (
	"encoding/json"
	"os"

	"github.com/resumecore/api/internal/flagx"
	"github.com/resumecore/api/internal/timex"
)

// JsonConfig defines a configuration structure tailored for JSON
// unmarshalling. It uses timex.Duration for interval fields, which allows
// parsing both string values such as "24h" and integer nanoseconds.
//
// This struct is an intermediate DTO used only for reading JSON
// configuration files. After unmarshalling, its fields are copied into the
// runtime Config struct which uses time.Duration.
type JsonConfig struct {
	EndpointAddr          string         `json:"endpoint_addr"`
	DatabaseDSN           string         `json:"database_dsn"`
	SecretKey             string         `json:"secret_key"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration"`
	AppBaseURL            string         `json:"app_base_url"`
	EmailProvider         string         `json:"email_provider"`
	SMTPHost              string         `json:"smtp_host"`
	SMTPPort              string         `json:"smtp_port"`
	SMTPUsername          string         `json:"smtp_username"`
	SMTPPassword          string         `json:"smtp_password"`
	EmailFrom             string         `json:"email_from"`
	MailgunDomain         string         `json:"mailgun_domain"`
	MailgunAPIKey         string         `json:"mailgun_api_key"`
	RazorpayKeyID         string         `json:"razorpay_key_id"`
	RazorpayKeySecret     string         `json:"razorpay_key_secret"`
	PremiumAmount         int64          `json:"premium_amount"`
	Currency              string         `json:"currency"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance.
//
// The file path is taken from the -c or -config command-line flags; if
// neither is set, no JSON file is loaded. If the file cannot be read or
// contains invalid JSON, the function panics. The caller is expected to
// merge these values with defaults and command-line flags as part of the
// full configuration process.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	config.EndpointAddr = c.EndpointAddr
	config.DatabaseDSN = c.DatabaseDSN
	config.SecretKey = c.SecretKey
	config.TokenValidityDuration = c.TokenValidityDuration.Duration
	config.AppBaseURL = c.AppBaseURL
	config.EmailProvider = c.EmailProvider
	config.SMTPHost = c.SMTPHost
	config.SMTPPort = c.SMTPPort
	config.SMTPUsername = c.SMTPUsername
	config.SMTPPassword = c.SMTPPassword
	config.EmailFrom = c.EmailFrom
	config.MailgunDomain = c.MailgunDomain
	config.MailgunAPIKey = c.MailgunAPIKey
	config.RazorpayKeyID = c.RazorpayKeyID
	config.RazorpayKeySecret = c.RazorpayKeySecret
	config.PremiumAmount = c.PremiumAmount
	config.Currency = c.Currency
}
