package repository

import "context"

// CatalogRepository is the CRUD surface shared by all master-data tables.
// Update and Delete return errs.NotFoundError for unknown ids.
type CatalogRepository[T any] interface {
	List(ctx context.Context) ([]T, error)
	FindByID(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, entity *T) error
	Update(ctx context.Context, id int64, entity *T) error
	Delete(ctx context.Context, id int64) error
}
