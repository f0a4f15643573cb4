// Package services contains server-side business logic. This file implements
// UserService, which handles registration, email verification, login, and
// caller-profile resolution.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/resumecore/api/internal/common"
	"github.com/resumecore/api/internal/logging"
	"github.com/resumecore/api/internal/server/auth"
	"github.com/resumecore/api/internal/server/config"
	"github.com/resumecore/api/internal/server/models"
	"github.com/resumecore/api/internal/server/notify"
	"github.com/resumecore/api/internal/server/repositories/repomanager"
)

// verificationTokenValidity is how long an emailed verification link stays
// usable.
const verificationTokenValidity = 24 * time.Hour

// UserService provides the identity operations:
//   - Register: create an account and send the verification e-mail
//   - VerifyEmail: consume a verification token
//   - Login: verify credentials and mint a bearer token
//   - ResendVerification: rotate the verification token and re-send
//   - GetProfile: resolve the authenticated caller to a public view
type UserService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	sender                notify.Sender
	logger                logging.Logger
	jwtSecret             []byte
	tokenValidityDuration time.Duration
	appBaseURL            string
}

// NewUserService constructs a UserService using repositories, the
// notification sender, and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, sender notify.Sender, logger logging.Logger, cfg *config.Config) *UserService {
	return &UserService{
		db:                    db,
		repomanager:           m,
		sender:                sender,
		logger:                logger.With("module", "user_service"),
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
		appBaseURL:            cfg.AppBaseURL,
	}
}

// Register creates a new unverified account and sends the verification
// e-mail. The returned view never contains the password hash or the raw
// verification token. If the account was created but the e-mail could not be
// sent, the account stays committed and the error wraps
// common.ErrNotificationFailed; the caller recovers via ResendVerification.
func (s *UserService) Register(ctx context.Context, name, email, rawPassword string) (*models.UserView, error) {
	email = normalizeEmail(email)
	repo := s.repomanager.Users(s.db)

	exists, err := repo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("error checking email: %w", err)
	}
	if exists {
		return nil, common.ErrDuplicateAccount
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(rawPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	token := uuid.New().String()
	expiry := time.Now().Add(verificationTokenValidity)

	user := &models.User{
		Name:               name,
		Email:              email,
		PasswordHash:       string(hash),
		EmailVerified:      false,
		VerificationToken:  &token,
		VerificationExpiry: &expiry,
		SubscriptionPlan:   models.PlanBasic,
	}

	user, err = repo.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	if err := s.sendVerificationEmail(ctx, user, token); err != nil {
		// the account is already committed; only the notification failed
		s.logger.Error(ctx, "verification email failed", "email", user.Email, "error", err.Error())
		return nil, fmt.Errorf("%w: %v", common.ErrNotificationFailed, err)
	}

	return user.View(), nil
}

// VerifyEmail consumes a verification token. A token that was already
// consumed no longer resolves to a user, so a repeat call fails with
// common.ErrInvalidToken.
func (s *UserService) VerifyEmail(ctx context.Context, token string) error {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByVerificationToken(ctx, token)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrInvalidToken
		}
		return fmt.Errorf("error searching verification token: %w", err)
	}

	if user.VerificationExpiry != nil && user.VerificationExpiry.Before(time.Now()) {
		return common.ErrTokenExpired
	}

	user.EmailVerified = true
	user.VerificationToken = nil
	user.VerificationExpiry = nil

	if err := repo.Update(ctx, user); err != nil {
		return fmt.Errorf("error updating user: %w", err)
	}

	return nil
}

// Login verifies the credentials and, on success, returns the public view
// plus a freshly minted bearer token. Unknown e-mails and wrong passwords
// yield the same common.ErrInvalidCredentials so account existence is not
// revealed.
func (s *UserService) Login(ctx context.Context, email, rawPassword string) (*models.UserView, string, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, "", common.ErrInvalidCredentials
		}
		return nil, "", common.ErrorInternal
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(rawPassword)) != nil {
		return nil, "", common.ErrInvalidCredentials
	}

	if !user.EmailVerified {
		return nil, "", common.ErrEmailNotVerified
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	return user.View(), token, nil
}

// ResendVerification rotates the verification token (at most one live token
// per user) and re-sends the e-mail.
func (s *UserService) ResendVerification(ctx context.Context, email string) error {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrAccountNotFound
		}
		return fmt.Errorf("error searching user: %w", err)
	}

	if user.EmailVerified {
		return common.ErrAlreadyVerified
	}

	token := uuid.New().String()
	expiry := time.Now().Add(verificationTokenValidity)
	user.VerificationToken = &token
	user.VerificationExpiry = &expiry

	if err := repo.Update(ctx, user); err != nil {
		return fmt.Errorf("error updating user: %w", err)
	}

	if err := s.sendVerificationEmail(ctx, user, token); err != nil {
		s.logger.Error(ctx, "verification email failed", "email", user.Email, "error", err.Error())
		return fmt.Errorf("%w: %v", common.ErrNotificationFailed, err)
	}

	return nil
}

// GetProfile resolves an authenticated principal to its public view. Every
// operation that needs to know "who is calling" goes through here.
func (s *UserService) GetProfile(ctx context.Context, principal auth.Principal) (*models.UserView, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByID(ctx, principal.UserID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrNotAuthorized
		}
		return nil, fmt.Errorf("error searching user: %w", err)
	}

	return user.View(), nil
}

func (s *UserService) sendVerificationEmail(ctx context.Context, user *models.User, token string) error {
	subject, body := notify.VerificationEmail(user.Name, s.appBaseURL, token)
	return s.sender.SendVerificationEmail(ctx, user.Email, subject, body)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
