package users

import (
	"context"

	"github.com/resumecore/api/internal/server/models"
)

// Repository is the credential store: persisted user records looked up by
// id, email, or verification token. Not-found lookups return
// common.ErrorNotFound.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByVerificationToken(ctx context.Context, token string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, user *models.User) error
	UpdateSubscriptionPlan(ctx context.Context, userID string, plan models.SubscriptionPlan) error
}
