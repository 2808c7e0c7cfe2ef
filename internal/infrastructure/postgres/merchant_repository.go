package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Creditos-api/internal/domain"
	"github.com/jhoicas/Creditos-api/internal/domain/entity"
	"github.com/jhoicas/Creditos-api/internal/domain/repository"
)

var _ repository.MerchantRepository = (*MerchantRepo)(nil)

// MerchantRepo implementación del puerto MerchantRepository sobre PostgreSQL.
type MerchantRepo struct {
	q Querier
}

// NewMerchantRepository construye el adaptador de persistencia para comercios. Pasar pool o tx.
func NewMerchantRepository(q Querier) *MerchantRepo {
	return &MerchantRepo{q: q}
}

const merchantColumns = `id, email, password_hash, first_name, store_name, status, created_at, updated_at`

// Create persiste un nuevo comercio.
func (r *MerchantRepo) Create(m *entity.Merchant) error {
	query := `
		INSERT INTO merchants (` + merchantColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.Email, m.PasswordHash, m.FirstName, m.StoreName, m.Status, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert merchant: %w", err)
	}
	return nil
}

// GetByID obtiene un comercio por ID.
func (r *MerchantRepo) GetByID(id string) (*entity.Merchant, error) {
	return r.findOne(context.Background(), "id", id)
}

// FindByEmail obtiene un comercio por email.
func (r *MerchantRepo) FindByEmail(email string) (*entity.Merchant, error) {
	return r.findOne(context.Background(), "email", email)
}

func (r *MerchantRepo) findOne(ctx context.Context, column, value string) (*entity.Merchant, error) {
	query := `SELECT ` + merchantColumns + ` FROM merchants WHERE ` + column + ` = $1`
	var m entity.Merchant
	err := r.q.QueryRow(ctx, query, value).Scan(
		&m.ID, &m.Email, &m.PasswordHash, &m.FirstName, &m.StoreName, &m.Status, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get merchant by %s: %w", column, err)
	}
	return &m, nil
}
