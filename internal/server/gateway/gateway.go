// Package gateway wraps the external payment provider. The core treats it as
// a black box with two duties: create a remote order, and verify that a
// payment confirmation genuinely originated from the provider.
package gateway

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Client is the payment gateway contract consumed by the subscription
// engine. Amounts are integers in minor units; currency is a fixed ISO code
// for the deployment.
type Client interface {
	// CreateOrder registers a remote order and returns the gateway-assigned
	// order id.
	CreateOrder(ctx context.Context, amountMinorUnits int64, currency, receipt string) (string, error)

	// VerifySignature reports whether signature is a valid confirmation for
	// the given order and payment ids.
	VerifySignature(orderID, paymentID, signature string) bool
}

// VerifyPaymentSignature checks the confirmation signature the gateway
// attaches to a completed payment: hex(HMAC-SHA256(orderID + "|" +
// paymentID)) keyed by the shared secret. The comparison is constant-time.
func VerifyPaymentSignature(orderID, paymentID, signature, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
