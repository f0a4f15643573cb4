package payments

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/resumecore/api/internal/common"
	"github.com/resumecore/api/internal/dbx"
	"github.com/resumecore/api/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const paymentColumns = `id, user_id, gateway_order_id, amount, currency, receipt,
		plan_type, status, gateway_payment_id, gateway_signature, created_at`

func (r *PostgresRepository) Create(ctx context.Context, payment *models.Payment) (*models.Payment, error) {

	query :=
		`INSERT INTO payments (user_id, gateway_order_id, amount, currency, receipt, plan_type, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		payment.UserID, payment.GatewayOrderID, payment.Amount, payment.Currency,
		payment.Receipt, payment.PlanType, payment.Status,
	).Scan(&payment.ID, &payment.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return payment, nil
}

func (r *PostgresRepository) GetByGatewayOrderID(ctx context.Context, gatewayOrderID string) (*models.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE gateway_order_id = $1`

	payment := &models.Payment{}
	err := r.db.QueryRowContext(ctx, query, gatewayOrderID).Scan(
		&payment.ID, &payment.UserID, &payment.GatewayOrderID, &payment.Amount,
		&payment.Currency, &payment.Receipt, &payment.PlanType, &payment.Status,
		&payment.GatewayPaymentID, &payment.GatewaySignature, &payment.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return payment, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*models.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Payment
	for rows.Next() {
		payment := &models.Payment{}
		err := rows.Scan(
			&payment.ID, &payment.UserID, &payment.GatewayOrderID, &payment.Amount,
			&payment.Currency, &payment.Receipt, &payment.PlanType, &payment.Status,
			&payment.GatewayPaymentID, &payment.GatewaySignature, &payment.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, payment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

// MarkPaid records a confirmed payment. Status only ever moves forward to
// paid through this statement; no code path writes any other status after
// creation.
func (r *PostgresRepository) MarkPaid(ctx context.Context, gatewayOrderID, gatewayPaymentID, gatewaySignature string) error {
	query :=
		`UPDATE payments
		 SET gateway_payment_id = $2, gateway_signature = $3, status = 'paid'
		 WHERE gateway_order_id = $1
		 `

	res, err := r.db.ExecContext(ctx, query, gatewayOrderID, gatewayPaymentID, gatewaySignature)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}
