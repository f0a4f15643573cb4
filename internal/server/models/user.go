// Package models holds the persisted server-side entities.
package models

import "time"

// SubscriptionPlan is the tier controlling feature access.
type SubscriptionPlan string

const (
	PlanBasic   SubscriptionPlan = "Basic"
	PlanPremium SubscriptionPlan = "Premium"
)

// User is one registered account. PasswordHash holds the bcrypt verifier and
// must never leave the service layer. While EmailVerified is false the
// account carries a live verification token and expiry; both are cleared
// when the token is consumed.
type User struct {
	ID                 string
	Name               string
	Email              string
	PasswordHash       string
	EmailVerified      bool
	VerificationToken  *string
	VerificationExpiry *time.Time
	SubscriptionPlan   SubscriptionPlan
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// UserView is the public projection of User returned to callers. It never
// contains the password hash or the raw verification token.
type UserView struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Email            string           `json:"email"`
	EmailVerified    bool             `json:"emailVerified"`
	SubscriptionPlan SubscriptionPlan `json:"subscriptionPlan"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}

// View returns the public projection of u.
func (u *User) View() *UserView {
	return &UserView{
		ID:               u.ID,
		Name:             u.Name,
		Email:            u.Email,
		EmailVerified:    u.EmailVerified,
		SubscriptionPlan: u.SubscriptionPlan,
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.UpdatedAt,
	}
}
