package models

import "time"

// PaymentStatus is the order state. The only allowed transition is
// StatusCreated -> StatusPaid, and it is never reversed.
type PaymentStatus string

const (
	StatusCreated PaymentStatus = "created"
	StatusPaid    PaymentStatus = "paid"
)

// Payment is one attempted subscription purchase. GatewayOrderID is assigned
// by the payment gateway at creation and is immutable afterwards. A paid
// payment always has GatewayPaymentID and GatewaySignature set.
type Payment struct {
	ID               string           `json:"id"`
	UserID           string           `json:"userId"`
	GatewayOrderID   string           `json:"orderId"`
	Amount           int64            `json:"amount"`
	Currency         string           `json:"currency"`
	Receipt          string           `json:"receipt"`
	PlanType         SubscriptionPlan `json:"planType"`
	Status           PaymentStatus    `json:"status"`
	GatewayPaymentID *string          `json:"paymentId,omitempty"`
	GatewaySignature *string          `json:"-"`
	CreatedAt        time.Time        `json:"createdAt"`
}
