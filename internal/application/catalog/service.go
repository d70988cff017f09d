package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/Mario-Dorado/gestion-sistemas-backend/internal/domain/catalog"
	"github.com/Mario-Dorado/gestion-sistemas-backend/internal/domain/errs"
	"github.com/Mario-Dorado/gestion-sistemas-backend/internal/domain/repository"
	"github.com/Mario-Dorado/gestion-sistemas-backend/pkg/logger"
)

// Service is the CRUD use case for one master-data table.
type Service[T catalog.Entity] struct {
	name   string
	entity string
	repo   repository.CatalogRepository[T]
	log    logger.Logger
}

// NewService builds a Service. name is used in log lines, entity in
// not-found messages.
func NewService[T catalog.Entity](name, entity string, repo repository.CatalogRepository[T], log logger.Logger) *Service[T] {
	if log == nil {
		log = logger.Nop()
	}
	return &Service[T]{name: name, entity: entity, repo: repo, log: log}
}

func (s *Service[T]) List(ctx context.Context) ([]T, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, s.fail(ctx, "list", err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (s *Service[T]) Get(ctx context.Context, id int64) (*T, error) {
	if id <= 0 {
		return nil, errs.Validation("ID inválido")
	}
	entity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.fail(ctx, "get", err)
	}
	if entity == nil {
		return nil, errs.NotFound(s.entity, id)
	}
	return entity, nil
}

func (s *Service[T]) Create(ctx context.Context, entity T) (*T, error) {
	if err := entity.Validate(catalog.OpCreate); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, &entity); err != nil {
		return nil, s.fail(ctx, "create", err)
	}
	s.log.WithContext(ctx).Info(s.name+" created", logger.Any("record", entity))
	return &entity, nil
}

// Update overwrites the mutable fields of record id.
func (s *Service[T]) Update(ctx context.Context, id int64, entity T) (*T, error) {
	if id <= 0 {
		return nil, errs.Validation("ID inválido")
	}
	if err := entity.Validate(catalog.OpUpdate); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, id, &entity); err != nil {
		return nil, s.fail(ctx, "update", err)
	}
	s.log.WithContext(ctx).Info(s.name+" updated", logger.Int64("id", id))
	return &entity, nil
}

func (s *Service[T]) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return errs.Validation("ID inválido")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.fail(ctx, "delete", err)
	}
	s.log.WithContext(ctx).Info(s.name+" deleted", logger.Int64("id", id))
	return nil
}

func (s *Service[T]) fail(ctx context.Context, op string, err error) error {
	var (
		nErr *errs.NotFoundError
		cErr *errs.ConflictError
		sErr *errs.StoreError
	)
	switch {
	case errors.As(err, &nErr), errors.As(err, &cErr):
		return err
	case errors.As(err, &sErr):
	default:
		err = errs.Store(op+" "+s.name, err)
	}
	s.log.WithContext(ctx).Error(op+" "+s.name+" failed", logger.Error(err))
	return fmt.Errorf("%s %s: %w", op, s.name, err)
}
