package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Creditos-api/internal/domain"
	"github.com/jhoicas/Creditos-api/internal/domain/entity"
)

const (
	merchantA = "8c1f4c1e-5a43-4c1a-9d3e-111111111111"
	saleID    = "0b6c2e53-2f0e-4a55-8a7e-222222222222"
)

// recordingQuerier guarda la última sentencia y responde con un tag o filas fijas.
type recordingQuerier struct {
	sql   string
	args  []any
	calls int
	tag   pgconn.CommandTag
	rows  [][]any
	err   error
}

func (r *recordingQuerier) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	r.sql, r.args = sql, args
	r.calls++
	return r.tag, r.err
}

func (r *recordingQuerier) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	r.sql, r.args = sql, args
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	return &staticRows{vals: r.rows, i: -1}, nil
}

func (r *recordingQuerier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	r.sql, r.args = sql, args
	r.calls++
	return errRow{err: r.err}
}

type errRow struct{ err error }

func (e errRow) Scan(...any) error {
	if e.err != nil {
		return e.err
	}
	return pgx.ErrNoRows
}

// staticRows filas en memoria; Scan solo copia a *string.
type staticRows struct {
	vals [][]any
	i    int
}

func (s *staticRows) Close() {}
func (s *staticRows) Err() error { return nil }
func (s *staticRows) CommandTag() pgconn.CommandTag { return pgconn.NewCommandTag("SELECT") }
func (s *staticRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (s *staticRows) RawValues() [][]byte { return nil }
func (s *staticRows) Conn() *pgx.Conn { return nil }

func (s *staticRows) Next() bool {
	s.i++
	return s.i < len(s.vals)
}

func (s *staticRows) Values() ([]any, error) { return s.vals[s.i], nil }

func (s *staticRows) Scan(dest ...any) error {
	for j, d := range dest {
		if p, ok := d.(*string); ok {
			*p, _ = s.vals[s.i][j].(string)
		}
	}
	return nil
}

func TestTableUpdate_SoloCamposDelParcheYFiltroPorComercio(t *testing.T) {
	q := &recordingQuerier{tag: pgconn.NewCommandTag("UPDATE 1")}
	repo := NewCustomerRepository(q)
	fixed := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return fixed }

	phone := "+15551234567"
	n, err := repo.Update(context.Background(), merchantA, saleID, entity.CustomerPatch{Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.Equal(t, "UPDATE customers SET phone = $1, updated_at = $2 WHERE id = $3 AND merchant_id = $4", q.sql)
	assert.Equal(t, []any{phone, fixed, saleID, merchantA}, q.args)
}

func TestTableDelete_CeroFilasNoEsError(t *testing.T) {
	q := &recordingQuerier{tag: pgconn.NewCommandTag("DELETE 0")}
	repo := NewCustomerRepository(q)

	n, err := repo.Delete(context.Background(), merchantA, saleID)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, "DELETE FROM customers WHERE id = $1 AND merchant_id = $2", q.sql)
}

func TestTable_IdNoUUIDNoLlegaALaBase(t *testing.T) {
	q := &recordingQuerier{err: &pgconn.PgError{Code: codeInvalidText}}
	ctx := context.Background()
	name := "Ana"

	sale, err := NewCreditSaleRepository(q).GetByID(ctx, merchantA, "no-es-uuid")
	require.NoError(t, err)
	assert.Nil(t, sale)

	customers := NewCustomerRepository(q)
	n, err := customers.Update(ctx, merchantA, "no-es-uuid", entity.CustomerPatch{Name: &name})
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = customers.Delete(ctx, merchantA, "42")
	require.NoError(t, err)
	assert.Zero(t, n)

	assert.Zero(t, q.calls)
}

func TestTableWriteErr_ViolacionesDeConstraint(t *testing.T) {
	q := &recordingQuerier{err: &pgconn.PgError{Code: codeUniqueViolation}}
	repo := NewCustomerRepository(q)
	ctx := context.Background()

	_, err := repo.Delete(ctx, merchantA, saleID)
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	q.err = &pgconn.PgError{Code: codeForeignKeyViolation}
	_, err = repo.Delete(ctx, merchantA, saleID)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "registros asociados")
}

func TestCreditSaleCreate_ClienteDeOtroComercioEsEntradaInvalida(t *testing.T) {
	q := &recordingQuerier{err: &pgconn.PgError{Code: codeForeignKeyViolation}}
	repo := NewCreditSaleRepository(q)

	_, err := repo.Create(context.Background(), merchantA, &entity.CreditSale{CustomerID: saleID})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "referencia inexistente")
}

func TestCreditSaleUpdate_CheckDeMontosEsEntradaInvalida(t *testing.T) {
	q := &recordingQuerier{err: &pgconn.PgError{Code: codeCheckViolation}}
	repo := NewCreditSaleRepository(q)

	_, err := repo.Update(context.Background(), merchantA, saleID, entity.CreditSalePatch{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	q.err = &pgconn.PgError{Code: codeInvalidText}
	_, err = repo.Update(context.Background(), merchantA, saleID, entity.CreditSalePatch{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListOverdueSince_FiltraEstadoYVentana(t *testing.T) {
	q := &recordingQuerier{}
	since := time.Date(2026, 10, 11, 0, 0, 0, 0, time.UTC)

	list, err := NewCreditSaleRepository(q).ListOverdueSince(context.Background(), merchantA, since)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.Contains(t, q.sql, "WHERE cs.merchant_id = $1 AND cs.status = $2 AND cs.due_date > $3")
	assert.Contains(t, q.sql, "c.merchant_id = cs.merchant_id")
	assert.Equal(t, []any{merchantA, "overdue", since}, q.args)
}

func TestListMerchantsWithOverdue_FiltraEstadoYVentana(t *testing.T) {
	q := &recordingQuerier{rows: [][]any{{merchantA}, {"m2"}}}
	since := time.Date(2026, 10, 11, 0, 0, 0, 0, time.UTC)

	ids, err := NewCreditSaleRepository(q).ListMerchantsWithOverdue(context.Background(), since)
	require.NoError(t, err)
	assert.Equal(t, []string{merchantA, "m2"}, ids)
	assert.Contains(t, q.sql, "WHERE status = $1 AND due_date > $2")
	assert.Equal(t, []any{"overdue", since}, q.args)
}
