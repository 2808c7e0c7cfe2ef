package xlsx_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Creditos-api/internal/application/dto"
	"github.com/jhoicas/Creditos-api/internal/infrastructure/xlsx"
)

func TestExportCreditSales_CabeceraYFilas(t *testing.T) {
	data, err := xlsx.NewExporter().ExportCreditSales(context.Background(), []dto.CreditSaleExportRow{{
		CustomerName: "Ana",
		TotalAmount:  decimal.NewFromInt(100),
		PaidAmount:   decimal.NewFromInt(40),
		AmountDue:    decimal.NewFromInt(60),
		DueDate:      time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		Status:       "overdue",
	}})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Ventas")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Cliente", rows[0][0])
	assert.Equal(t, "Ana", rows[1][0])
	assert.Equal(t, "60", rows[1][4])
	assert.Equal(t, "2024-02-01", rows[1][5])
}
