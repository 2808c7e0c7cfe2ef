package http_test

import (
	"bytes"
	"context"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Creditos-api/internal/application/reminder"
	"github.com/jhoicas/Creditos-api/internal/infrastructure/postgres"
	apphttp "github.com/jhoicas/Creditos-api/internal/interfaces/http"
)

// failingQuerier responde a toda sentencia con el mismo error de Postgres.
type failingQuerier struct {
	err   error
	calls int
}

func (q *failingQuerier) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	q.calls++
	return pgconn.CommandTag{}, q.err
}

func (q *failingQuerier) Query(context.Context, string, ...any) (pgx.Rows, error) {
	q.calls++
	return nil, q.err
}

func (q *failingQuerier) QueryRow(context.Context, string, ...any) pgx.Row {
	q.calls++
	return failingRow{err: q.err}
}

type failingRow struct{ err error }

func (r failingRow) Scan(...any) error { return r.err }

func postgresApp(q postgres.Querier, log zerolog.Logger) *fiber.App {
	f := newFixture()
	app := fiber.New()
	dispatcher := reminder.NewDispatcher(postgres.NewCreditSaleRepository(q), f.settings, nopLog{}, f.sender, "+15550000000")
	apphttp.Router(app, apphttp.RouterDeps{
		Customers:  postgres.NewCustomerRepository(q),
		Settings:   f.settings,
		Dispatcher: dispatcher,
		Log:        log,
		JWTSecret:  testJWTSecret,
	})
	return app
}

func TestSendSingle_IdConFormatoInvalido_Retorna404(t *testing.T) {
	q := &failingQuerier{err: &pgconn.PgError{Code: "22P02", Message: "invalid input syntax for type uuid"}}
	app := postgresApp(q, zerolog.Nop())

	resp, body := doJSON(t, app, http.MethodPost, "/api/reminders/send-single", map[string]string{"creditSaleId": "no-es-uuid"})

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", body["code"])
	assert.Zero(t, q.calls)
}

func TestCustomers_ActualizarIdConFormatoInvalido_Retorna404(t *testing.T) {
	q := &failingQuerier{err: &pgconn.PgError{Code: "22P02", Message: "invalid input syntax for type uuid"}}
	app := postgresApp(q, zerolog.Nop())

	resp, body := doJSON(t, app, http.MethodPut, "/api/customers/no-es-uuid", map[string]string{"name": "Ana"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, []string{"Error Updating Customer"}, notificationTitles(body))

	resp, _ = doJSON(t, app, http.MethodDelete, "/api/customers/no-es-uuid", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Zero(t, q.calls)
}

func TestErrorInterno_NoExponeElDetalleYQuedaEnElLog(t *testing.T) {
	var logs bytes.Buffer
	q := &failingQuerier{err: &pgconn.PgError{Code: "XX000", Message: "relation customers_x does not exist"}}
	app := postgresApp(q, zerolog.New(&logs))

	resp, body := doJSON(t, app, http.MethodGet, "/api/customers", nil)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	apiErr, _ := body["error"].(map[string]any)
	require.NotNil(t, apiErr)
	assert.Equal(t, "INTERNAL", apiErr["code"])
	assert.Equal(t, "error interno del servidor", apiErr["message"])
	assert.NotContains(t, apiErr["message"], "customers_x")
	assert.Contains(t, logs.String(), "customers_x")
	assert.Contains(t, logs.String(), "/api/customers")
}
