package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Creditos-api/internal/domain"
	"github.com/jhoicas/Creditos-api/internal/domain/repository"
)

// Assignment par columna/valor de un INSERT o de un SET.
type Assignment struct {
	Column string
	Value  any
}

// TableSpec describe una tabla con dueño (merchant_id) para el adaptador genérico.
type TableSpec[T any, P any] struct {
	// Table nombre de la tabla física (INSERT/UPDATE/DELETE).
	Table string
	// From cláusula FROM de las lecturas; puede incluir joins. Vacío = Table.
	From string
	// Alias prefijo de las columnas id/merchant_id en lecturas con join (p.ej. "cs").
	Alias string
	// Columns lista de columnas del SELECT, en el orden que espera Scan.
	Columns string
	// OrderBy orden natural del listado.
	OrderBy string
	// Scan lee una fila del SELECT en T.
	Scan func(row pgx.Row, item *T) error
	// Values columnas a insertar para item (sin id, merchant_id ni timestamps).
	Values func(item *T) []Assignment
	// Patch columnas a modificar; solo los campos no nil del parche.
	Patch func(patch P) []Assignment
	// Entity nombre para mensajes de error.
	Entity string
}

// Table adaptador genérico de repository.TableRepository sobre PostgreSQL.
// Todas las sentencias filtran por merchant_id; UPDATE/DELETE además por id.
type Table[T any, P any] struct {
	q   Querier
	def TableSpec[T, P]
	now func() time.Time
}

// NewTable construye el adaptador. Pasar pool o tx (Querier).
func NewTable[T any, P any](q Querier, def TableSpec[T, P]) *Table[T, P] {
	if def.From == "" {
		def.From = def.Table
	}
	return &Table[T, P]{q: q, def: def, now: time.Now}
}

func (t *Table[T, P]) col(name string) string {
	if t.def.Alias == "" {
		return name
	}
	return t.def.Alias + "." + name
}

// List lista las filas del comercio en su orden natural. Limit 0 = todas.
func (t *Table[T, P]) List(ctx context.Context, merchantID string, q repository.ListQuery) ([]T, error) {
	query := "SELECT " + t.def.Columns + " FROM " + t.def.From +
		" WHERE " + t.col("merchant_id") + " = $1"
	if t.def.OrderBy != "" {
		query += " ORDER BY " + t.def.OrderBy
	}
	args := []any{merchantID}
	if q.Limit > 0 {
		query += " LIMIT $2"
		args = append(args, q.Limit)
	}
	rows, err := t.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", t.def.Entity, err)
	}
	defer rows.Close()
	list := []T{}
	for rows.Next() {
		var item T
		if err := t.def.Scan(rows, &item); err != nil {
			return nil, fmt.Errorf("scan %s: %w", t.def.Entity, err)
		}
		list = append(list, item)
	}
	return list, rows.Err()
}

// Get obtiene una fila del comercio por id. Devuelve (nil, nil) si no existe.
func (t *Table[T, P]) Get(ctx context.Context, merchantID, id string) (*T, error) {
	if !validID(id) {
		return nil, nil
	}
	query := "SELECT " + t.def.Columns + " FROM " + t.def.From +
		" WHERE " + t.col("id") + " = $1 AND " + t.col("merchant_id") + " = $2"
	var item T
	if err := t.def.Scan(t.q.QueryRow(ctx, query, id, merchantID), &item); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s: %w", t.def.Entity, err)
	}
	return &item, nil
}

// Create inserta la fila con un id nuevo y la devuelve leída de nuevo (incluye joins).
func (t *Table[T, P]) Create(ctx context.Context, merchantID string, item *T) (*T, error) {
	if item == nil {
		return nil, domain.ErrInvalidInput
	}
	id := uuid.New().String()
	now := t.now()
	values := append([]Assignment{
		{Column: "id", Value: id},
		{Column: "merchant_id", Value: merchantID},
	}, t.def.Values(item)...)
	values = append(values,
		Assignment{Column: "created_at", Value: now},
		Assignment{Column: "updated_at", Value: now},
	)

	cols := make([]string, len(values))
	marks := make([]string, len(values))
	args := make([]any, len(values))
	for i, v := range values {
		cols[i] = v.Column
		marks[i] = "$" + strconv.Itoa(i+1)
		args[i] = v.Value
	}
	query := "INSERT INTO " + t.def.Table + " (" + strings.Join(cols, ", ") + ") VALUES (" + strings.Join(marks, ", ") + ")"
	if _, err := t.q.Exec(ctx, query, args...); err != nil {
		return nil, t.writeErr("insert", err)
	}

	created, err := t.Get(ctx, merchantID, id)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, fmt.Errorf("insert %s: fila %s no encontrada tras insertar", t.def.Entity, id)
	}
	return created, nil
}

// Update aplica el parche a la fila id del comercio. Devuelve filas afectadas
// (0 si el id no existe o pertenece a otro comercio).
func (t *Table[T, P]) Update(ctx context.Context, merchantID, id string, patch P) (int64, error) {
	if !validID(id) {
		return 0, nil
	}
	sets := append(t.def.Patch(patch), Assignment{Column: "updated_at", Value: t.now()})
	parts := make([]string, len(sets))
	args := make([]any, 0, len(sets)+2)
	for i, s := range sets {
		parts[i] = s.Column + " = $" + strconv.Itoa(i+1)
		args = append(args, s.Value)
	}
	n := len(sets)
	query := "UPDATE " + t.def.Table + " SET " + strings.Join(parts, ", ") +
		" WHERE id = $" + strconv.Itoa(n+1) + " AND merchant_id = $" + strconv.Itoa(n+2)
	args = append(args, id, merchantID)

	tag, err := t.q.Exec(ctx, query, args...)
	if err != nil {
		return 0, t.writeErr("update", err)
	}
	return tag.RowsAffected(), nil
}

// Delete elimina la fila id del comercio. Devuelve filas afectadas.
func (t *Table[T, P]) Delete(ctx context.Context, merchantID, id string) (int64, error) {
	if !validID(id) {
		return 0, nil
	}
	tag, err := t.q.Exec(ctx, "DELETE FROM "+t.def.Table+" WHERE id = $1 AND merchant_id = $2", id, merchantID)
	if err != nil {
		return 0, t.writeErr("delete", err)
	}
	return tag.RowsAffected(), nil
}

// validID los id son UUID; cualquier otro valor no puede existir en la tabla.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func (t *Table[T, P]) writeErr(op string, err error) error {
	switch {
	case isUniqueViolation(err):
		return domain.ErrDuplicate
	case isForeignKeyViolation(err) && op == "delete":
		return fmt.Errorf("%w: %s con registros asociados", domain.ErrInvalidInput, t.def.Entity)
	case isForeignKeyViolation(err):
		return fmt.Errorf("%w: referencia inexistente en %s", domain.ErrInvalidInput, t.def.Table)
	}
	switch pgCode(err) {
	case codeCheckViolation:
		return fmt.Errorf("%w: valores fuera de rango en %s", domain.ErrInvalidInput, t.def.Table)
	case codeInvalidText:
		return fmt.Errorf("%w: identificador con formato inválido", domain.ErrInvalidInput)
	}
	return fmt.Errorf("%s %s: %w", op, t.def.Entity, err)
}
