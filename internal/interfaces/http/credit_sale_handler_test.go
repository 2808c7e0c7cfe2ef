package http_test

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Creditos-api/internal/domain/entity"
	"github.com/jhoicas/Creditos-api/internal/domain/repository"
	apphttp "github.com/jhoicas/Creditos-api/internal/interfaces/http"
)

type memSales struct {
	repository.CreditSaleRepository
	mu      sync.Mutex
	rows    []entity.CreditSale
	creates int
	updates int
}

func (m *memSales) List(_ context.Context, merchantID string, _ repository.ListQuery) ([]entity.CreditSale, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []entity.CreditSale
	for _, s := range m.rows {
		if s.MerchantID == merchantID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *memSales) Create(_ context.Context, merchantID string, s *entity.CreditSale) (*entity.CreditSale, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.creates++
	row := *s
	row.ID = "sale-new"
	row.MerchantID = merchantID
	m.rows = append(m.rows, row)
	return &row, nil
}

func (m *memSales) Update(_ context.Context, merchantID, id string, p entity.CreditSalePatch) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.updates++
	for i := range m.rows {
		if m.rows[i].ID == id && m.rows[i].MerchantID == merchantID {
			if p.TotalAmount != nil {
				m.rows[i].TotalAmount = *p.TotalAmount
			}
			if p.PaidAmount != nil {
				m.rows[i].PaidAmount = *p.PaidAmount
			}
			return 1, nil
		}
	}
	return 0, nil
}

func salesApp(sales *memSales) *fiber.App {
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CreditSales: sales,
		Log:         zerolog.Nop(),
		JWTSecret:   testJWTSecret,
	})
	return app
}

func existingSale() *memSales {
	return &memSales{rows: []entity.CreditSale{{
		ID: "s1", MerchantID: testMerchantID, CustomerID: "c1",
		TotalAmount: decimal.NewFromInt(100), PaidAmount: decimal.NewFromInt(40),
		DueDate: time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC), Status: entity.CreditSalePartial,
	}}}
}

func TestCreditSales_CrearConSaldoCalculado(t *testing.T) {
	sales := &memSales{}
	resp, body := doJSON(t, salesApp(sales), http.MethodPost, "/api/credit-sales", map[string]string{
		"customer_id": "c1", "total_amount": "100", "paid_amount": "25", "due_date": "2026-11-01",
	})

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	data, _ := body["data"].(map[string]any)
	assert.Equal(t, "75", data["amount_due"])
	assert.Equal(t, 1, sales.creates)
}

func TestCreditSales_CrearConMontosInvalidos_Retorna400(t *testing.T) {
	cases := map[string]map[string]string{
		"pagado mayor al total": {"customer_id": "c1", "total_amount": "100", "paid_amount": "150", "due_date": "2026-11-01"},
		"total en cero":         {"customer_id": "c1", "total_amount": "0", "paid_amount": "0", "due_date": "2026-11-01"},
		"pagado negativo":       {"customer_id": "c1", "total_amount": "100", "paid_amount": "-1", "due_date": "2026-11-01"},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			sales := &memSales{}
			resp, body := doJSON(t, salesApp(sales), http.MethodPost, "/api/credit-sales", in)

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, "VALIDATION", body["code"])
			assert.Zero(t, sales.creates)
		})
	}
}

func TestCreditSales_ActualizarPagadoMayorAlTotal_Retorna400(t *testing.T) {
	sales := existingSale()
	resp, body := doJSON(t, salesApp(sales), http.MethodPut, "/api/credit-sales/s1", map[string]string{
		"total_amount": "100", "paid_amount": "500",
	})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", body["code"])
	assert.Zero(t, sales.updates)
	assert.True(t, decimal.NewFromInt(40).Equal(sales.rows[0].PaidAmount))
}

func TestCreditSales_ActualizarPagoRecalculaSaldo(t *testing.T) {
	sales := existingSale()
	resp, body := doJSON(t, salesApp(sales), http.MethodPut, "/api/credit-sales/s1", map[string]string{"paid_amount": "60"})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	data, _ := body["data"].([]any)
	require.Len(t, data, 1)
	assert.Equal(t, "40", data[0].(map[string]any)["amount_due"])
}
