package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/booking-service/internal/domain"
)

// PaymentRepository defines persistence access for payment records.
type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
	GetByID(ctx context.Context, id string) (*domain.Payment, error)
	GetByOrderID(ctx context.Context, orderID string) (*domain.Payment, error)
	// UpdateStatus atomically replaces the status and returns the updated row,
	// pgx.ErrNoRows when no such payment exists.
	UpdateStatus(ctx context.Context, id string, status domain.PaymentStatus) (*domain.Payment, error)
	CountByStatus(ctx context.Context) (map[domain.PaymentStatus]int64, error)
}

type paymentRepository struct {
	pool *pgxpool.Pool
}

// NewPaymentRepository returns a Postgres-backed implementation.
func NewPaymentRepository(pool *pgxpool.Pool) PaymentRepository {
	return &paymentRepository{pool: pool}
}

const paymentColumns = `id, order_id, method, amount_cents, proof_url, status, created_at, updated_at`

func scanPayment(row pgx.Row) (*domain.Payment, error) {
	var payment domain.Payment
	if err := row.Scan(
		&payment.ID,
		&payment.OrderID,
		&payment.Method,
		&payment.AmountCents,
		&payment.ProofURL,
		&payment.Status,
		&payment.CreatedAt,
		&payment.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	const query = `
        INSERT INTO payments (order_id, method, amount_cents, proof_url, status)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		payment.OrderID,
		payment.Method,
		payment.AmountCents,
		payment.ProofURL,
		payment.Status,
	).Scan(&payment.ID, &payment.CreatedAt, &payment.UpdatedAt)
}

func (r *paymentRepository) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	const query = `SELECT ` + paymentColumns + ` FROM payments WHERE id=$1`
	return scanPayment(r.pool.QueryRow(ctx, query, id))
}

func (r *paymentRepository) GetByOrderID(ctx context.Context, orderID string) (*domain.Payment, error) {
	const query = `SELECT ` + paymentColumns + ` FROM payments WHERE order_id=$1`
	return scanPayment(r.pool.QueryRow(ctx, query, orderID))
}

func (r *paymentRepository) UpdateStatus(ctx context.Context, id string, status domain.PaymentStatus) (*domain.Payment, error) {
	const query = `
        UPDATE payments SET status=$1, updated_at=NOW()
        WHERE id=$2
        RETURNING ` + paymentColumns
	return scanPayment(r.pool.QueryRow(ctx, query, status, id))
}

func (r *paymentRepository) CountByStatus(ctx context.Context) (map[domain.PaymentStatus]int64, error) {
	const query = `SELECT status, COUNT(*) FROM payments GROUP BY status`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[domain.PaymentStatus]int64)
	for rows.Next() {
		var status domain.PaymentStatus
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}
