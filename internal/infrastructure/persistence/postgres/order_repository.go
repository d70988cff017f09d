package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/Mario-Dorado/gestion-sistemas-backend/internal/domain/catalog"
	"github.com/Mario-Dorado/gestion-sistemas-backend/internal/domain/errs"
	domain "github.com/Mario-Dorado/gestion-sistemas-backend/internal/domain/order"
	"github.com/Mario-Dorado/gestion-sistemas-backend/internal/domain/repository"
)

type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

// WithinTx runs fn in a read-committed transaction. Any error returned by fn
// rolls the transaction back.
func (r *OrderRepository) WithinTx(ctx context.Context, fn func(tx repository.OrderTx) error) error {
	return pgx.BeginTxFunc(ctx, r.pool, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, func(tx pgx.Tx) error {
		return fn(&orderTx{tx: tx})
	})
}

func (r *OrderRepository) List(ctx context.Context) ([]domain.Order, error) {
	return loadOrders(ctx, r.pool, "", nil)
}

func (r *OrderRepository) FindByID(ctx context.Context, id int64) (*domain.Order, error) {
	return findOrder(ctx, r.pool, id)
}

type orderTx struct {
	tx pgx.Tx
}

var _ repository.OrderTx = (*orderTx)(nil)

// ProductsByID share-locks the products so their price and weight cannot
// change before the order commits.
func (t *orderTx) ProductsByID(ctx context.Context, ids []int64) (map[int64]catalog.Product, error) {
	sql := fmt.Sprintf("SELECT %s FROM products WHERE id = ANY($1) FOR SHARE", productTable.selectList())
	rows, err := t.tx.Query(ctx, sql, ids)
	if err != nil {
		return nil, classify("find products", err)
	}
	products, err := pgx.CollectRows(rows, pgx.RowToStructByName[catalog.Product])
	if err != nil {
		return nil, classify("scan products", err)
	}

	out := make(map[int64]catalog.Product, len(products))
	for _, p := range products {
		out[p.ID] = p
	}
	return out, nil
}

func (t *orderTx) FindClient(ctx context.Context, id int64) (*catalog.Client, error) {
	return clientTable.findByID(ctx, t.tx, id)
}

func (t *orderTx) FindInsurance(ctx context.Context, id int64) (*catalog.Insurance, error) {
	return insuranceTable.findByID(ctx, t.tx, id)
}

func (t *orderTx) FindCarrier(ctx context.Context, id int64) (*catalog.Carrier, error) {
	return carrierTable.findByID(ctx, t.tx, id)
}

func (t *orderTx) FindTaxRate(ctx context.Context, id int64) (*catalog.TaxRate, error) {
	return taxRateTable.findByID(ctx, t.tx, id)
}

func (t *orderTx) ListBorderCosts(ctx context.Context) ([]catalog.BorderCost, error) {
	return borderCostTable.list(ctx, t.tx)
}

func (t *orderTx) LockOrder(ctx context.Context, id int64) (bool, error) {
	var locked int64
	err := t.tx.QueryRow(ctx, "SELECT id FROM orders WHERE id = $1 FOR UPDATE", id).Scan(&locked)
	if isNoRows(err) {
		return false, nil
	}
	if err != nil {
		return false, classify("lock order", err)
	}
	return true, nil
}

func (t *orderTx) InsertOrder(ctx context.Context, o *domain.Order) (int64, error) {
	const query = `
		INSERT INTO orders (code, total_cost, client_id, insurance_id, carrier_id, tax_rate_id, border_cost_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id;
	`
	var id int64
	err := t.tx.QueryRow(ctx, query,
		o.Code,
		o.TotalCost,
		o.ClientID,
		o.InsuranceID,
		o.CarrierID,
		o.TaxRateID,
		o.BorderCostID,
	).Scan(&id)
	if err != nil {
		return 0, classify("insert order", err)
	}
	return id, nil
}

func (t *orderTx) UpdateOrder(ctx context.Context, o *domain.Order) error {
	const query = `
		UPDATE orders
		SET code = $1,
			total_cost = $2,
			client_id = $3,
			insurance_id = $4,
			carrier_id = $5,
			tax_rate_id = $6,
			border_cost_id = $7,
			updated_at = now()
		WHERE id = $8;
	`
	tag, err := t.tx.Exec(ctx, query,
		o.Code,
		o.TotalCost,
		o.ClientID,
		o.InsuranceID,
		o.CarrierID,
		o.TaxRateID,
		o.BorderCostID,
		o.ID,
	)
	if err != nil {
		return classify("update order", err)
	}
	if tag.RowsAffected() == 0 {
		return errs.NotFound("Pedido", o.ID)
	}
	return nil
}

func (t *orderTx) DeleteLineItems(ctx context.Context, orderID int64) (int64, error) {
	tag, err := t.tx.Exec(ctx, "DELETE FROM order_items WHERE order_id = $1", orderID)
	if err != nil {
		return 0, classify("delete order items", err)
	}
	return tag.RowsAffected(), nil
}

// InsertLineItems copies items in slice order so their ids follow it.
func (t *orderTx) InsertLineItems(ctx context.Context, orderID int64, items []domain.LineItem) error {
	_, err := t.tx.CopyFrom(ctx,
		pgx.Identifier{"order_items"},
		[]string{"order_id", "product_id", "quantity", "unit_weight_kg"},
		pgx.CopyFromSlice(len(items), func(i int) ([]any, error) {
			it := items[i]
			return []any{orderID, it.ProductID, int32(it.Quantity), it.UnitWeightKg}, nil
		}),
	)
	if err != nil {
		return classify("insert order items", err)
	}
	return nil
}

func (t *orderTx) DeleteOrder(ctx context.Context, id int64) (bool, error) {
	tag, err := t.tx.Exec(ctx, "DELETE FROM orders WHERE id = $1", id)
	if err != nil {
		return false, classify("delete order", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (t *orderTx) FindOrder(ctx context.Context, id int64) (*domain.Order, error) {
	return findOrder(ctx, t.tx, id)
}

func findOrder(ctx context.Context, q querier, id int64) (*domain.Order, error) {
	orders, err := loadOrders(ctx, q, "WHERE o.id = $1", []any{id})
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, nil
	}
	return &orders[0], nil
}

const orderSelect = `
	SELECT o.id, o.code, o.total_cost, o.client_id, o.insurance_id, o.carrier_id,
		o.tax_rate_id, o.border_cost_id, o.created_at, o.updated_at,
		c.id, c.ci, c.name, c.type,
		i.id, i.name, i.coverage_type, i.cost,
		ca.id, ca.name, ca.contact, ca.base_cost,
		t.id, t.name, t.percentage,
		b.id, b.cost_type, b.cost
	FROM orders o
	JOIN clients c ON c.id = o.client_id
	JOIN insurances i ON i.id = o.insurance_id
	JOIN carriers ca ON ca.id = o.carrier_id
	JOIN tax_rates t ON t.id = o.tax_rate_id
	LEFT JOIN border_costs b ON b.id = o.border_cost_id
`

const itemSelect = `
	SELECT oi.id, oi.order_id, oi.product_id, oi.quantity, oi.unit_weight_kg,
		p.id, p.code, p.name, p.unit_price, p.unit_weight_kg
	FROM order_items oi
	JOIN products p ON p.id = oi.product_id
	WHERE oi.order_id = ANY($1)
	ORDER BY oi.id
`

// loadOrders reads orders with every relation expanded: one query for the
// orders and their references, one for all of their items.
func loadOrders(ctx context.Context, q querier, where string, args []any) ([]domain.Order, error) {
	rows, err := q.Query(ctx, orderSelect+where+" ORDER BY o.id", args...)
	if err != nil {
		return nil, classify("list orders", err)
	}

	orders, err := pgx.CollectRows(rows, scanOrder)
	if err != nil {
		return nil, classify("scan orders", err)
	}
	if len(orders) == 0 {
		return orders, nil
	}

	ids := make([]int64, len(orders))
	index := make(map[int64]int, len(orders))
	for i := range orders {
		ids[i] = orders[i].ID
		index[orders[i].ID] = i
		orders[i].Items = []domain.LineItem{}
	}

	itemRows, err := q.Query(ctx, itemSelect, ids)
	if err != nil {
		return nil, classify("list order items", err)
	}
	items, err := pgx.CollectRows(itemRows, scanLineItem)
	if err != nil {
		return nil, classify("scan order items", err)
	}
	for _, it := range items {
		o := &orders[index[it.OrderID]]
		o.Items = append(o.Items, it)
	}

	return orders, nil
}

func scanOrder(row pgx.CollectableRow) (domain.Order, error) {
	var (
		o          domain.Order
		client     catalog.Client
		insurance  catalog.Insurance
		carrier    catalog.Carrier
		taxRate    catalog.TaxRate
		borderID   *int64
		borderType *string
		borderCost decimal.NullDecimal
	)

	err := row.Scan(
		&o.ID, &o.Code, &o.TotalCost, &o.ClientID, &o.InsuranceID, &o.CarrierID,
		&o.TaxRateID, &o.BorderCostID, &o.CreatedAt, &o.UpdatedAt,
		&client.ID, &client.CI, &client.Name, &client.Type,
		&insurance.ID, &insurance.Name, &insurance.CoverageType, &insurance.Cost,
		&carrier.ID, &carrier.Name, &carrier.Contact, &carrier.BaseCost,
		&taxRate.ID, &taxRate.Name, &taxRate.Percentage,
		&borderID, &borderType, &borderCost,
	)
	if err != nil {
		return o, err
	}

	o.Client = &client
	o.Insurance = &insurance
	o.Carrier = &carrier
	o.TaxRate = &taxRate
	if borderID != nil {
		o.BorderCost = &catalog.BorderCost{ID: *borderID, CostType: *borderType, Cost: borderCost.Decimal}
	}
	return o, nil
}

func scanLineItem(row pgx.CollectableRow) (domain.LineItem, error) {
	var (
		it      domain.LineItem
		product catalog.Product
	)
	err := row.Scan(
		&it.ID, &it.OrderID, &it.ProductID, &it.Quantity, &it.UnitWeightKg,
		&product.ID, &product.Code, &product.Name, &product.UnitPrice, &product.UnitWeightKg,
	)
	if err != nil {
		return it, err
	}
	it.Product = &product
	return it, nil
}
