package services

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"time"

	"github.com/resumecore/api/internal/common"
	"github.com/resumecore/api/internal/dbx"
	"github.com/resumecore/api/internal/logging"
	"github.com/resumecore/api/internal/server/gateway"
	"github.com/resumecore/api/internal/server/models"
	paymentsrepo "github.com/resumecore/api/internal/server/repositories/payments"
	usersrepo "github.com/resumecore/api/internal/server/repositories/users"
)

// --- in-memory fakes ---

type memUsersRepo struct {
	users map[string]*models.User // keyed by id
	seq   int

	createErr error
	updateErr error
}

func newMemUsersRepo() *memUsersRepo {
	return &memUsersRepo{users: map[string]*models.User{}}
}

func (r *memUsersRepo) Create(_ context.Context, u *models.User) (*models.User, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.seq++
	u.ID = fmt.Sprintf("u-%d", r.seq)
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	r.users[u.ID] = &cp
	return u, nil
}

func (r *memUsersRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, common.ErrorNotFound
}

func (r *memUsersRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *memUsersRepo) GetByVerificationToken(_ context.Context, token string) (*models.User, error) {
	for _, u := range r.users {
		if u.VerificationToken != nil && *u.VerificationToken == token {
			cp := *u
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *memUsersRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *memUsersRepo) Update(_ context.Context, u *models.User) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.users[u.ID]; !ok {
		return common.ErrorNotFound
	}
	cp := *u
	cp.UpdatedAt = time.Now()
	cp.SubscriptionPlan = r.users[u.ID].SubscriptionPlan
	r.users[u.ID] = &cp
	return nil
}

func (r *memUsersRepo) UpdateSubscriptionPlan(_ context.Context, userID string, plan models.SubscriptionPlan) error {
	u, ok := r.users[userID]
	if !ok {
		return common.ErrorNotFound
	}
	u.SubscriptionPlan = plan
	u.UpdatedAt = time.Now()
	return nil
}

type memPaymentsRepo struct {
	payments map[string]*models.Payment // keyed by gateway order id
	seq      int

	createErr error
}

func newMemPaymentsRepo() *memPaymentsRepo {
	return &memPaymentsRepo{payments: map[string]*models.Payment{}}
}

func (r *memPaymentsRepo) Create(_ context.Context, p *models.Payment) (*models.Payment, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.seq++
	p.ID = fmt.Sprintf("p-%d", r.seq)
	p.CreatedAt = time.Now().Add(time.Duration(r.seq) * time.Millisecond)
	cp := *p
	r.payments[p.GatewayOrderID] = &cp
	return p, nil
}

func (r *memPaymentsRepo) GetByGatewayOrderID(_ context.Context, gatewayOrderID string) (*models.Payment, error) {
	if p, ok := r.payments[gatewayOrderID]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, common.ErrorNotFound
}

func (r *memPaymentsRepo) ListByUser(_ context.Context, userID string) ([]*models.Payment, error) {
	var result []*models.Payment
	for _, p := range r.payments {
		if p.UserID == userID {
			cp := *p
			result = append(result, &cp)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *memPaymentsRepo) MarkPaid(_ context.Context, gatewayOrderID, gatewayPaymentID, gatewaySignature string) error {
	p, ok := r.payments[gatewayOrderID]
	if !ok {
		return common.ErrorNotFound
	}
	p.GatewayPaymentID = &gatewayPaymentID
	p.GatewaySignature = &gatewaySignature
	p.Status = models.StatusPaid
	return nil
}

type fakeRepoManager struct {
	u *memUsersRepo
	p *memPaymentsRepo
}

func (m *fakeRepoManager) Users(dbx.DBTX) usersrepo.Repository       { return m.u }
func (m *fakeRepoManager) Payments(dbx.DBTX) paymentsrepo.Repository { return m.p }
func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error {
	return nil
}

// --- collaborator fakes ---

type sentMail struct {
	To      string
	Subject string
	Body    string
}

type fakeSender struct {
	sent    []sentMail
	sendErr error
}

func (f *fakeSender) SendVerificationEmail(_ context.Context, to, subject, htmlBody string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, sentMail{To: to, Subject: subject, Body: htmlBody})
	return nil
}

type fakeGateway struct {
	secret      string
	nextOrderID string
	createErr   error
	createCalls int
}

func (f *fakeGateway) CreateOrder(_ context.Context, amountMinorUnits int64, currency, receipt string) (string, error) {
	f.createCalls++
	if f.createErr != nil {
		return "", f.createErr
	}
	return f.nextOrderID, nil
}

func (f *fakeGateway) VerifySignature(orderID, paymentID, signature string) bool {
	return gateway.VerifyPaymentSignature(orderID, paymentID, signature, f.secret)
}

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}
