package postgres

import (
	"context"
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationsFS_ContieneTablas(t *testing.T) {
	files, err := fs.Glob(migrationsFS, "migrations/*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	body, err := fs.ReadFile(migrationsFS, files[0])
	require.NoError(t, err)
	sql := string(body)
	for _, table := range []string{"merchants", "store_settings", "customers", "inventory", "credit_sales", "reminders"} {
		assert.Contains(t, sql, "CREATE TABLE "+table+" ", table)
	}
	assert.True(t, strings.Contains(sql, "-- +goose Up") && strings.Contains(sql, "-- +goose Down"))
}

func TestMigrate_ComandoDesconocido(t *testing.T) {
	err := Migrate(context.Background(), "postgres://localhost:1/none", "sideways")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "desconocido")
}

func TestMigrations_ReferenciasAtadasAlComercio(t *testing.T) {
	body, err := fs.ReadFile(migrationsFS, "migrations/00002_tenant_constraints.sql")
	require.NoError(t, err)
	sql := string(body)

	up, _, found := strings.Cut(sql, "-- +goose Down")
	require.True(t, found)
	assert.Contains(t, up, "UNIQUE (id, merchant_id)")
	assert.Contains(t, up, "FOREIGN KEY (customer_id, merchant_id)\n        REFERENCES customers (id, merchant_id)")
	assert.Contains(t, up, "FOREIGN KEY (credit_sale_id, merchant_id)\n        REFERENCES credit_sales (id, merchant_id)")
	assert.Contains(t, up, "paid_amount <= total_amount")
}
