package repository

import (
	"context"

	"github.com/Mario-Dorado/gestion-sistemas-backend/internal/domain/catalog"
	"github.com/Mario-Dorado/gestion-sistemas-backend/internal/domain/order"
)

// OrderCatalog is the read side of the catalog an order write resolves
// against. Finders return (nil, nil) when the record does not exist.
type OrderCatalog interface {
	ProductsByID(ctx context.Context, ids []int64) (map[int64]catalog.Product, error)
	FindClient(ctx context.Context, id int64) (*catalog.Client, error)
	FindInsurance(ctx context.Context, id int64) (*catalog.Insurance, error)
	FindCarrier(ctx context.Context, id int64) (*catalog.Carrier, error)
	FindTaxRate(ctx context.Context, id int64) (*catalog.TaxRate, error)
	// ListBorderCosts returns every border cost in insertion order.
	ListBorderCosts(ctx context.Context) ([]catalog.BorderCost, error)
}

// OrderTx is the set of operations available inside one order transaction.
type OrderTx interface {
	OrderCatalog

	// LockOrder reports whether the order exists and holds it until commit.
	LockOrder(ctx context.Context, id int64) (bool, error)
	InsertOrder(ctx context.Context, o *order.Order) (int64, error)
	UpdateOrder(ctx context.Context, o *order.Order) error
	DeleteLineItems(ctx context.Context, orderID int64) (int64, error)
	InsertLineItems(ctx context.Context, orderID int64, items []order.LineItem) error
	DeleteOrder(ctx context.Context, id int64) (bool, error)
	FindOrder(ctx context.Context, id int64) (*order.Order, error)
}

type OrderRepository interface {
	// WithinTx runs fn in a single transaction, committing only when fn
	// returns nil.
	WithinTx(ctx context.Context, fn func(tx OrderTx) error) error
	List(ctx context.Context) ([]order.Order, error)
	FindByID(ctx context.Context, id int64) (*order.Order, error)
}
