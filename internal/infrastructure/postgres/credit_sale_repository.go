package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Creditos-api/internal/domain/entity"
	"github.com/jhoicas/Creditos-api/internal/domain/repository"
)

var _ repository.CreditSaleRepository = (*CreditSaleRepo)(nil)

// CreditSaleRepo implementación de CreditSaleRepository. Las lecturas traen nombre y
// teléfono del cliente (LEFT JOIN customers).
type CreditSaleRepo struct {
	*Table[entity.CreditSale, entity.CreditSalePatch]
	q Querier
}

const (
	creditSaleColumns = `cs.id, cs.merchant_id, cs.customer_id, cs.total_amount, cs.paid_amount, cs.due_date,
	cs.status, COALESCE(c.name, ''), COALESCE(c.phone, ''), cs.created_at, cs.updated_at`
	creditSaleFrom = `credit_sales cs LEFT JOIN customers c ON c.id = cs.customer_id AND c.merchant_id = cs.merchant_id`
)

func scanCreditSale(row pgx.Row, s *entity.CreditSale) error {
	return row.Scan(&s.ID, &s.MerchantID, &s.CustomerID, &s.TotalAmount, &s.PaidAmount, &s.DueDate,
		&s.Status, &s.CustomerName, &s.CustomerPhone, &s.CreatedAt, &s.UpdatedAt)
}

var creditSaleSpec = TableSpec[entity.CreditSale, entity.CreditSalePatch]{
	Table:   "credit_sales",
	Entity:  "credit sale",
	From:    creditSaleFrom,
	Alias:   "cs",
	Columns: creditSaleColumns,
	OrderBy: "cs.created_at DESC",
	Scan:    scanCreditSale,
	Values: func(s *entity.CreditSale) []Assignment {
		status := s.Status
		if status == "" {
			status = entity.CreditSalePending
		}
		return []Assignment{
			{"customer_id", s.CustomerID},
			{"total_amount", s.TotalAmount},
			{"paid_amount", s.PaidAmount},
			{"due_date", s.DueDate},
			{"status", status},
		}
	},
	Patch: func(p entity.CreditSalePatch) []Assignment {
		var out []Assignment
		out = appendIf(out, "customer_id", p.CustomerID)
		out = appendIf(out, "total_amount", p.TotalAmount)
		out = appendIf(out, "paid_amount", p.PaidAmount)
		out = appendIf(out, "due_date", p.DueDate)
		out = appendIf(out, "status", p.Status)
		return out
	},
}

// NewCreditSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCreditSaleRepository(q Querier) *CreditSaleRepo {
	return &CreditSaleRepo{Table: NewTable(q, creditSaleSpec), q: q}
}

// GetByID obtiene una venta del comercio. Devuelve (nil, nil) si no existe.
func (r *CreditSaleRepo) GetByID(ctx context.Context, merchantID, id string) (*entity.CreditSale, error) {
	return r.Get(ctx, merchantID, id)
}

// ListOverdueSince ventas en estado overdue con due_date > since.
func (r *CreditSaleRepo) ListOverdueSince(ctx context.Context, merchantID string, since time.Time) ([]entity.CreditSale, error) {
	query := `
		SELECT ` + creditSaleColumns + `
		FROM ` + creditSaleFrom + `
		WHERE cs.merchant_id = $1 AND cs.status = $2 AND cs.due_date > $3
		ORDER BY cs.due_date`
	rows, err := r.q.Query(ctx, query, merchantID, entity.CreditSaleOverdue, since)
	if err != nil {
		return nil, fmt.Errorf("list overdue credit sales: %w", err)
	}
	defer rows.Close()
	var list []entity.CreditSale
	for rows.Next() {
		var s entity.CreditSale
		if err := scanCreditSale(rows, &s); err != nil {
			return nil, fmt.Errorf("scan credit sale: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// ListMerchantsWithOverdue comercios con al menos una venta overdue y due_date > since.
func (r *CreditSaleRepo) ListMerchantsWithOverdue(ctx context.Context, since time.Time) ([]string, error) {
	query := `
		SELECT DISTINCT merchant_id FROM credit_sales
		WHERE status = $1 AND due_date > $2
		ORDER BY merchant_id`
	rows, err := r.q.Query(ctx, query, entity.CreditSaleOverdue, since)
	if err != nil {
		return nil, fmt.Errorf("list merchants with overdue: %w", err)
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan merchant id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Totals saldo pendiente (ventas no pagadas), saldo vencido y cantidad de ventas vencidas.
func (r *CreditSaleRepo) Totals(ctx context.Context, merchantID string) (repository.CreditTotals, error) {
	query := `
		SELECT
			COALESCE(SUM(total_amount - paid_amount) FILTER (WHERE status <> $2), 0),
			COALESCE(SUM(total_amount - paid_amount) FILTER (WHERE status = $3), 0),
			COUNT(*) FILTER (WHERE status = $3)
		FROM credit_sales
		WHERE merchant_id = $1`
	var t repository.CreditTotals
	err := r.q.QueryRow(ctx, query, merchantID, entity.CreditSalePaid, entity.CreditSaleOverdue).
		Scan(&t.Outstanding, &t.Overdue, &t.OverdueCount)
	if err != nil {
		return repository.CreditTotals{}, fmt.Errorf("credit totals: %w", err)
	}
	return t, nil
}
