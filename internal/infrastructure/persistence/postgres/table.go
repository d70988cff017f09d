package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Mario-Dorado/gestion-sistemas-backend/internal/domain/catalog"
	"github.com/Mario-Dorado/gestion-sistemas-backend/internal/domain/user"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// table maps a flat record type onto one SQL table. T's db tags must name
// exactly "id" plus columns.
type table[T any] struct {
	name string
	// entity is the user-facing name used in not-found messages.
	entity     string
	columns    []string
	insert     []string
	update     []string
	insertArgs func(*T) []any
	updateArgs func(*T) []any
}

func (t table[T]) selectList() string {
	return "id, " + strings.Join(t.columns, ", ")
}

func (t table[T]) selectSQL(where string) string {
	return fmt.Sprintf("SELECT %s FROM %s %s ORDER BY id", t.selectList(), t.name, where)
}

func (t table[T]) insertSQL() string {
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		t.name, strings.Join(t.insert, ", "), placeholders(1, len(t.insert)), t.selectList())
}

func (t table[T]) updateSQL() string {
	sets := make([]string, len(t.update))
	for i, col := range t.update {
		sets[i] = fmt.Sprintf("%s = $%d", col, i+1)
	}
	return fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		t.name, strings.Join(sets, ", "), len(t.update)+1, t.selectList())
}

func (t table[T]) list(ctx context.Context, q querier) ([]T, error) {
	rows, err := q.Query(ctx, t.selectSQL(""))
	if err != nil {
		return nil, classify("list "+t.name, err)
	}
	out, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, classify("scan "+t.name, err)
	}
	return out, nil
}

// findByID returns (nil, nil) when no row matches.
func (t table[T]) findByID(ctx context.Context, q querier, id int64) (*T, error) {
	rows, err := q.Query(ctx, t.selectSQL("WHERE id = $1"), id)
	if err != nil {
		return nil, classify("find "+t.name, err)
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[T])
	if isNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, classify("scan "+t.name, err)
	}
	return &row, nil
}

func placeholders(from, n int) string {
	ph := make([]string, n)
	for i := range ph {
		ph[i] = fmt.Sprintf("$%d", from+i)
	}
	return strings.Join(ph, ", ")
}

var productTable = table[catalog.Product]{
	name:    "products",
	entity:  "Producto",
	columns: []string{"code", "name", "unit_price", "unit_weight_kg"},
	insert:  []string{"code", "name", "unit_price", "unit_weight_kg"},
	update:  []string{"name", "unit_price", "unit_weight_kg"},
	insertArgs: func(p *catalog.Product) []any {
		return []any{p.Code, p.Name, p.UnitPrice, p.UnitWeightKg}
	},
	updateArgs: func(p *catalog.Product) []any {
		return []any{p.Name, p.UnitPrice, p.UnitWeightKg}
	},
}

var clientTable = table[catalog.Client]{
	name:       "clients",
	entity:     "Cliente",
	columns:    []string{"ci", "name", "type"},
	insert:     []string{"ci", "name", "type"},
	update:     []string{"name", "type"},
	insertArgs: func(c *catalog.Client) []any { return []any{c.CI, c.Name, c.Type} },
	updateArgs: func(c *catalog.Client) []any { return []any{c.Name, c.Type} },
}

var supplierTable = table[catalog.Supplier]{
	name:       "suppliers",
	entity:     "Proveedor",
	columns:    []string{"name", "country", "contact"},
	insert:     []string{"name", "country", "contact"},
	update:     []string{"name", "country", "contact"},
	insertArgs: func(s *catalog.Supplier) []any { return []any{s.Name, s.Country, s.Contact} },
	updateArgs: func(s *catalog.Supplier) []any { return []any{s.Name, s.Country, s.Contact} },
}

var carrierTable = table[catalog.Carrier]{
	name:       "carriers",
	entity:     "Transportadora",
	columns:    []string{"name", "contact", "base_cost"},
	insert:     []string{"name", "contact", "base_cost"},
	update:     []string{"name", "contact", "base_cost"},
	insertArgs: func(c *catalog.Carrier) []any { return []any{c.Name, c.Contact, c.BaseCost} },
	updateArgs: func(c *catalog.Carrier) []any { return []any{c.Name, c.Contact, c.BaseCost} },
}

var insuranceTable = table[catalog.Insurance]{
	name:       "insurances",
	entity:     "Seguro",
	columns:    []string{"name", "coverage_type", "cost"},
	insert:     []string{"name", "coverage_type", "cost"},
	update:     []string{"name", "coverage_type", "cost"},
	insertArgs: func(i *catalog.Insurance) []any { return []any{i.Name, i.CoverageType, i.Cost} },
	updateArgs: func(i *catalog.Insurance) []any { return []any{i.Name, i.CoverageType, i.Cost} },
}

var taxRateTable = table[catalog.TaxRate]{
	name:       "tax_rates",
	entity:     "Tasa impositiva",
	columns:    []string{"name", "percentage"},
	insert:     []string{"name", "percentage"},
	update:     []string{"name", "percentage"},
	insertArgs: func(t *catalog.TaxRate) []any { return []any{t.Name, t.Percentage} },
	updateArgs: func(t *catalog.TaxRate) []any { return []any{t.Name, t.Percentage} },
}

var borderCostTable = table[catalog.BorderCost]{
	name:       "border_costs",
	entity:     "Costo fronterizo",
	columns:    []string{"cost_type", "cost"},
	insert:     []string{"cost_type", "cost"},
	update:     []string{"cost_type", "cost"},
	insertArgs: func(b *catalog.BorderCost) []any { return []any{b.CostType, b.Cost} },
	updateArgs: func(b *catalog.BorderCost) []any { return []any{b.CostType, b.Cost} },
}

var userTable = table[user.User]{
	name:       "users",
	entity:     "Usuario",
	columns:    []string{"name", "email", "password_hash", "created_at"},
	insert:     []string{"name", "email", "password_hash"},
	insertArgs: func(u *user.User) []any { return []any{u.Name, u.Email, u.PasswordHash} },
}
