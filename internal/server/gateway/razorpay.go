package gateway

import (
	"context"
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"

	"github.com/resumecore/api/internal/common"
)

// RazorpayClient implements Client against the Razorpay Orders API.
type RazorpayClient struct {
	client    *razorpay.Client
	keySecret string
}

func NewRazorpayClient(keyID, keySecret string) *RazorpayClient {
	return &RazorpayClient{
		client:    razorpay.NewClient(keyID, keySecret),
		keySecret: keySecret,
	}
}

// CreateOrder registers a remote order with Razorpay. Provider failures wrap
// common.ErrGateway; they are not retried here, and each call creates a
// distinct remote order.
func (c *RazorpayClient) CreateOrder(_ context.Context, amountMinorUnits int64, currency, receipt string) (string, error) {
	data := map[string]interface{}{
		"amount":   amountMinorUnits,
		"currency": currency,
		"receipt":  receipt,
	}

	body, err := c.client.Order.Create(data, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrGateway, err)
	}

	orderID, ok := body["id"].(string)
	if !ok || orderID == "" {
		return "", fmt.Errorf("%w: order id missing in response", common.ErrGateway)
	}

	return orderID, nil
}

func (c *RazorpayClient) VerifySignature(orderID, paymentID, signature string) bool {
	return VerifyPaymentSignature(orderID, paymentID, signature, c.keySecret)
}
