package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Creditos-api/internal/domain/entity"
	"github.com/jhoicas/Creditos-api/internal/domain/repository"
)

var _ repository.ReminderRepository = (*ReminderRepo)(nil)

// ReminderRepo bitácora de recordatorios; solo INSERT y SELECT.
type ReminderRepo struct {
	q Querier
}

// NewReminderRepository construye el adaptador.
func NewReminderRepository(q Querier) *ReminderRepo {
	return &ReminderRepo{q: q}
}

// Append inserta una fila de bitácora.
func (r *ReminderRepo) Append(ctx context.Context, rem *entity.Reminder) error {
	query := `
		INSERT INTO reminders (id, merchant_id, credit_sale_id, message, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query, rem.ID, rem.MerchantID, rem.CreditSaleID, rem.Message, rem.Status, rem.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert reminder: %w", err)
	}
	return nil
}

// ListBySale historial de recordatorios de una venta, el más reciente primero.
func (r *ReminderRepo) ListBySale(ctx context.Context, merchantID, creditSaleID string) ([]entity.Reminder, error) {
	query := `
		SELECT id, merchant_id, credit_sale_id, message, status, created_at
		FROM reminders WHERE merchant_id = $1 AND credit_sale_id = $2
		ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, merchantID, creditSaleID)
	if err != nil {
		return nil, fmt.Errorf("list reminders: %w", err)
	}
	defer rows.Close()
	var list []entity.Reminder
	for rows.Next() {
		var rem entity.Reminder
		if err := rows.Scan(&rem.ID, &rem.MerchantID, &rem.CreditSaleID, &rem.Message, &rem.Status, &rem.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan reminder: %w", err)
		}
		list = append(list, rem)
	}
	return list, rows.Err()
}

// CountSentSince cantidad de recordatorios enviados desde since.
func (r *ReminderRepo) CountSentSince(ctx context.Context, merchantID string, since time.Time) (int, error) {
	var n int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM reminders WHERE merchant_id = $1 AND status = $2 AND created_at >= $3`,
		merchantID, entity.ReminderSent, since,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count reminders: %w", err)
	}
	return n, nil
}
