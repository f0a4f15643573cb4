package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/resumecore/api/internal/common"
	"github.com/resumecore/api/internal/logging"
	"github.com/resumecore/api/internal/server/auth"
	"github.com/resumecore/api/internal/server/config"
	"github.com/resumecore/api/internal/server/gateway"
	"github.com/resumecore/api/internal/server/models"
	"github.com/resumecore/api/internal/server/repositories/repomanager"
)

// PaymentService owns the payment order lifecycle and the plan upgrade that
// a confirmed payment unlocks.
type PaymentService struct {
	db            *sql.DB
	repomanager   repomanager.RepositoryManager
	gateway       gateway.Client
	logger        logging.Logger
	premiumAmount int64
	currency      string
}

// NewPaymentService constructs a PaymentService using repositories, the
// payment gateway client, and server config.
func NewPaymentService(db *sql.DB, m repomanager.RepositoryManager, gw gateway.Client, logger logging.Logger, cfg *config.Config) *PaymentService {
	return &PaymentService{
		db:            db,
		repomanager:   m,
		gateway:       gw,
		logger:        logger.With("module", "payment_service"),
		premiumAmount: cfg.PremiumAmount,
		currency:      cfg.Currency,
	}
}

// CreateOrder registers a remote order for the configured premium price and
// persists the local record with status created. Only the premium tier is
// purchasable; anything else fails with common.ErrUnsupportedPlan before the
// gateway is contacted. Gateway failures propagate wrapping
// common.ErrGateway and are not retried: each retry would create a distinct
// remote order.
func (s *PaymentService) CreateOrder(ctx context.Context, principal auth.Principal, planType string) (*models.Payment, error) {
	if !strings.EqualFold(planType, string(models.PlanPremium)) {
		return nil, common.ErrUnsupportedPlan
	}

	usersRepo := s.repomanager.Users(s.db)
	user, err := usersRepo.GetByID(ctx, principal.UserID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrNotAuthorized
		}
		return nil, fmt.Errorf("error searching user: %w", err)
	}

	receipt := newReceipt(models.PlanPremium)

	orderID, err := s.gateway.CreateOrder(ctx, s.premiumAmount, s.currency, receipt)
	if err != nil {
		return nil, err
	}

	payment := &models.Payment{
		UserID:         user.ID,
		GatewayOrderID: orderID,
		Amount:         s.premiumAmount,
		Currency:       s.currency,
		Receipt:        receipt,
		PlanType:       models.PlanPremium,
		Status:         models.StatusCreated,
	}

	payment, err = s.repomanager.Payments(s.db).Create(ctx, payment)
	if err != nil {
		return nil, fmt.Errorf("error creating payment: %w", err)
	}

	return payment, nil
}

// VerifyPayment checks the gateway signature for a completed payment. An
// invalid signature returns false with no mutation. A valid one marks the
// local order paid and upgrades the owning user's plan to the order's plan
// type. Replaying a verification with identical inputs re-executes the same
// writes and returns true again.
func (s *PaymentService) VerifyPayment(ctx context.Context, gatewayOrderID, gatewayPaymentID, gatewaySignature string) (bool, error) {
	if !s.gateway.VerifySignature(gatewayOrderID, gatewayPaymentID, gatewaySignature) {
		s.logger.Warn(ctx, "payment signature rejected", "order_id", gatewayOrderID)
		return false, nil
	}

	paymentsRepo := s.repomanager.Payments(s.db)

	payment, err := paymentsRepo.GetByGatewayOrderID(ctx, gatewayOrderID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return false, common.ErrOrderNotFound
		}
		return false, fmt.Errorf("error searching payment: %w", err)
	}

	if err := paymentsRepo.MarkPaid(ctx, gatewayOrderID, gatewayPaymentID, gatewaySignature); err != nil {
		return false, fmt.Errorf("error updating payment: %w", err)
	}

	usersRepo := s.repomanager.Users(s.db)
	if err := usersRepo.UpdateSubscriptionPlan(ctx, payment.UserID, payment.PlanType); err != nil {
		return false, fmt.Errorf("error upgrading subscription: %w", err)
	}

	s.logger.Info(ctx, "subscription upgraded", "user_id", payment.UserID, "plan", payment.PlanType)

	return true, nil
}

// GetUserPayments returns the caller's orders, newest first.
func (s *PaymentService) GetUserPayments(ctx context.Context, principal auth.Principal) ([]*models.Payment, error) {
	result, err := s.repomanager.Payments(s.db).ListByUser(ctx, principal.UserID)
	if err != nil {
		return nil, fmt.Errorf("error listing payments: %w", err)
	}
	return result, nil
}

// GetPaymentDetails returns one of the caller's orders by gateway order id.
// Orders that do not exist and orders owned by someone else both yield
// common.ErrOrderNotFound, so existence is not leaked across accounts.
func (s *PaymentService) GetPaymentDetails(ctx context.Context, principal auth.Principal, gatewayOrderID string) (*models.Payment, error) {
	payment, err := s.repomanager.Payments(s.db).GetByGatewayOrderID(ctx, gatewayOrderID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrOrderNotFound
		}
		return nil, fmt.Errorf("error searching payment: %w", err)
	}

	if payment.UserID != principal.UserID {
		return nil, common.ErrOrderNotFound
	}

	return payment, nil
}

// newReceipt builds a plan-prefixed receipt identifier. Uniqueness is
// best-effort; the receipt is never used as a lookup key.
func newReceipt(plan models.SubscriptionPlan) string {
	return fmt.Sprintf("%s_%s", plan, uuid.New().String()[:8])
}
