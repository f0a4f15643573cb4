package payments

import (
	"context"

	"github.com/resumecore/api/internal/server/models"
)

// Repository is the order store for subscription purchases.
//
// MarkPaid is the only path that moves an order out of the created status:
// a single conditional UPDATE keyed by the gateway order id. Replaying it
// with identical inputs rewrites the same values, so concurrent or repeated
// verifications collapse to one row state.
type Repository interface {
	Create(ctx context.Context, payment *models.Payment) (*models.Payment, error)
	GetByGatewayOrderID(ctx context.Context, gatewayOrderID string) (*models.Payment, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Payment, error)
	MarkPaid(ctx context.Context, gatewayOrderID, gatewayPaymentID, gatewaySignature string) error
}
