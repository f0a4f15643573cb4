// Package common defines shared constants and sentinel errors used across
// the service layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Account lifecycle errors.
	ErrDuplicateAccount   = errors.New("account already exists")
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailNotVerified   = errors.New("email not verified")
	ErrAlreadyVerified    = errors.New("email already verified")
	ErrNotificationFailed = errors.New("failed to send verification email")

	// Token errors (verification tokens and bearer tokens).
	ErrInvalidToken   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token expired")
	ErrMalformedToken = errors.New("malformed token")
	ErrNotAuthorized  = errors.New("not authorized")

	// Billing errors.
	ErrUnsupportedPlan = errors.New("unsupported plan type")
	ErrOrderNotFound   = errors.New("order not found")
	ErrGateway         = errors.New("payment gateway error")
)
