package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Mario-Dorado/gestion-sistemas-backend/internal/domain/catalog"
	"github.com/Mario-Dorado/gestion-sistemas-backend/internal/domain/errs"
)

type CatalogRepository[T any] struct {
	pool  *pgxpool.Pool
	table table[T]
}

func NewProductRepository(pool *pgxpool.Pool) *CatalogRepository[catalog.Product] {
	return &CatalogRepository[catalog.Product]{pool: pool, table: productTable}
}

func NewClientRepository(pool *pgxpool.Pool) *CatalogRepository[catalog.Client] {
	return &CatalogRepository[catalog.Client]{pool: pool, table: clientTable}
}

func NewSupplierRepository(pool *pgxpool.Pool) *CatalogRepository[catalog.Supplier] {
	return &CatalogRepository[catalog.Supplier]{pool: pool, table: supplierTable}
}

func NewCarrierRepository(pool *pgxpool.Pool) *CatalogRepository[catalog.Carrier] {
	return &CatalogRepository[catalog.Carrier]{pool: pool, table: carrierTable}
}

func NewInsuranceRepository(pool *pgxpool.Pool) *CatalogRepository[catalog.Insurance] {
	return &CatalogRepository[catalog.Insurance]{pool: pool, table: insuranceTable}
}

func NewTaxRateRepository(pool *pgxpool.Pool) *CatalogRepository[catalog.TaxRate] {
	return &CatalogRepository[catalog.TaxRate]{pool: pool, table: taxRateTable}
}

func NewBorderCostRepository(pool *pgxpool.Pool) *CatalogRepository[catalog.BorderCost] {
	return &CatalogRepository[catalog.BorderCost]{pool: pool, table: borderCostTable}
}

func (r *CatalogRepository[T]) List(ctx context.Context) ([]T, error) {
	return r.table.list(ctx, r.pool)
}

func (r *CatalogRepository[T]) FindByID(ctx context.Context, id int64) (*T, error) {
	return r.table.findByID(ctx, r.pool, id)
}

func (r *CatalogRepository[T]) Create(ctx context.Context, entity *T) error {
	rows, err := r.pool.Query(ctx, r.table.insertSQL(), r.table.insertArgs(entity)...)
	if err != nil {
		return classify("insert "+r.table.name, err)
	}
	created, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[T])
	if err != nil {
		return classify("insert "+r.table.name, err)
	}
	*entity = created
	return nil
}

func (r *CatalogRepository[T]) Update(ctx context.Context, id int64, entity *T) error {
	args := append(r.table.updateArgs(entity), id)
	rows, err := r.pool.Query(ctx, r.table.updateSQL(), args...)
	if err != nil {
		return classify("update "+r.table.name, err)
	}
	updated, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[T])
	if isNoRows(err) {
		return errs.NotFound(r.table.entity, id)
	}
	if err != nil {
		return classify("update "+r.table.name, err)
	}
	*entity = updated
	return nil
}

func (r *CatalogRepository[T]) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM "+r.table.name+" WHERE id = $1", id)
	if err != nil {
		return classify("delete "+r.table.name, err)
	}
	if tag.RowsAffected() == 0 {
		return errs.NotFound(r.table.entity, id)
	}
	return nil
}
