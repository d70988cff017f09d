package order

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/Mario-Dorado/gestion-sistemas-backend/internal/domain/catalog"
	"github.com/Mario-Dorado/gestion-sistemas-backend/internal/domain/errs"
	domain "github.com/Mario-Dorado/gestion-sistemas-backend/internal/domain/order"
	"github.com/Mario-Dorado/gestion-sistemas-backend/internal/domain/repository"
	"github.com/Mario-Dorado/gestion-sistemas-backend/pkg/logger"
)

// Publisher receives an event for every committed order write.
type Publisher interface {
	PublishOrderEvent(ctx context.Context, event domain.Event) error
}

type Service struct {
	repo      repository.OrderRepository
	publisher Publisher
	validate  *validator.Validate
	log       logger.Logger
	now       func() time.Time
}

// LineItemCommand is one requested (product, quantity) pair. Quantity is
// stored as a postgres INTEGER, hence the upper bound.
type LineItemCommand struct {
	ProductID int64 `json:"productoId" validate:"required,gt=0"`
	Quantity  int   `json:"cantidad" validate:"required,gt=0,lte=2147483647"`
}

// OrderCommand is the payload of both create and update.
type OrderCommand struct {
	Code             string            `json:"codigoPedido" validate:"required"`
	ClientID         int64             `json:"clienteId" validate:"required,gt=0"`
	InsuranceID      int64             `json:"seguroId" validate:"required,gt=0"`
	CarrierID        int64             `json:"transportadoraId" validate:"required,gt=0"`
	TaxRateID        int64             `json:"tasaImpositivaId" validate:"required,gt=0"`
	Items            []LineItemCommand `json:"productos" validate:"required,min=1,dive"`
	ApplyBorderCosts bool              `json:"aplicarCostosFronterizos"`
}

// NewService wires the composer and reader. publisher may be nil.
func NewService(repo repository.OrderRepository, publisher Publisher, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo:      repo,
		publisher: publisher,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		log:       log,
		now:       time.Now,
	}
}

// CreateOrder resolves every reference, prices the order and writes it with
// its line items in one transaction.
func (s *Service) CreateOrder(ctx context.Context, cmd OrderCommand) (*domain.View, error) {
	cmd.Code = strings.TrimSpace(cmd.Code)
	if err := s.check(cmd); err != nil {
		return nil, err
	}

	var view *domain.View
	err := s.repo.WithinTx(ctx, func(tx repository.OrderTx) error {
		plan, err := compose(ctx, tx, cmd)
		if err != nil {
			return err
		}

		id, err := tx.InsertOrder(ctx, plan.order)
		if err != nil {
			return err
		}
		if err := tx.InsertLineItems(ctx, id, plan.items); err != nil {
			return err
		}

		view, err = reload(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, s.fail(ctx, "create order", err)
	}

	s.log.WithContext(ctx).Info("order created",
		logger.Int64("order_id", view.ID),
		logger.String("code", view.Code),
		logger.Any("total_cost", view.TotalCost),
		logger.Int64("trucks", view.TruckCount),
	)
	s.publish(ctx, domain.EventCreated, view, cmd.ApplyBorderCosts)
	return view, nil
}

// UpdateOrder replaces every field and the whole line-item set of order id.
// Nothing is changed unless all references resolve.
func (s *Service) UpdateOrder(ctx context.Context, id int64, cmd OrderCommand) (*domain.View, error) {
	if id <= 0 {
		return nil, errs.Validation("ID inválido")
	}
	cmd.Code = strings.TrimSpace(cmd.Code)
	if err := s.check(cmd); err != nil {
		return nil, err
	}

	var view *domain.View
	err := s.repo.WithinTx(ctx, func(tx repository.OrderTx) error {
		exists, err := tx.LockOrder(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return errs.NotFound("Pedido", id)
		}

		plan, err := compose(ctx, tx, cmd)
		if err != nil {
			return err
		}
		plan.order.ID = id

		if _, err := tx.DeleteLineItems(ctx, id); err != nil {
			return err
		}
		if err := tx.UpdateOrder(ctx, plan.order); err != nil {
			return err
		}
		if err := tx.InsertLineItems(ctx, id, plan.items); err != nil {
			return err
		}

		view, err = reload(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, s.fail(ctx, "update order", err)
	}

	s.log.WithContext(ctx).Info("order updated",
		logger.Int64("order_id", id),
		logger.Any("total_cost", view.TotalCost),
		logger.Int("items", len(view.Items)),
	)
	s.publish(ctx, domain.EventUpdated, view, cmd.ApplyBorderCosts)
	return view, nil
}

// DeleteOrder removes the order and its line items. Unknown ids are a
// NotFoundError.
func (s *Service) DeleteOrder(ctx context.Context, id int64) error {
	if id <= 0 {
		return errs.Validation("ID inválido")
	}

	var removed domain.Order
	err := s.repo.WithinTx(ctx, func(tx repository.OrderTx) error {
		exists, err := tx.LockOrder(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return errs.NotFound("Pedido", id)
		}

		existing, err := tx.FindOrder(ctx, id)
		if err != nil {
			return err
		}
		if existing != nil {
			removed = *existing
		}

		if _, err := tx.DeleteLineItems(ctx, id); err != nil {
			return err
		}
		deleted, err := tx.DeleteOrder(ctx, id)
		if err != nil {
			return err
		}
		if !deleted {
			return errs.NotFound("Pedido", id)
		}
		return nil
	})
	if err != nil {
		return s.fail(ctx, "delete order", err)
	}

	s.log.WithContext(ctx).Info("order deleted", logger.Int64("order_id", id))
	removed.ID = id
	s.publish(ctx, domain.EventDeleted, domain.NewView(&removed), removed.BorderCostID != nil)
	return nil
}

// ListOrders returns every order with relations and shipping summary.
func (s *Service) ListOrders(ctx context.Context) ([]*domain.View, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, s.fail(ctx, "list orders", err)
	}

	views := make([]*domain.View, len(orders))
	for i := range orders {
		views[i] = domain.NewView(&orders[i])
	}
	return views, nil
}

func (s *Service) GetOrder(ctx context.Context, id int64) (*domain.View, error) {
	if id <= 0 {
		return nil, errs.Validation("ID inválido")
	}
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.fail(ctx, "get order", err)
	}
	if o == nil {
		return nil, errs.NotFound("Pedido", id)
	}
	return domain.NewView(o), nil
}

type writePlan struct {
	order *domain.Order
	items []domain.LineItem
}

// compose resolves references and prices the command. It performs no writes.
func compose(ctx context.Context, tx repository.OrderCatalog, cmd OrderCommand) (*writePlan, error) {
	if err := resolveReferences(ctx, tx, cmd); err != nil {
		return nil, err
	}

	ids := make([]int64, len(cmd.Items))
	for i, it := range cmd.Items {
		ids[i] = it.ProductID
	}
	products, err := tx.ProductsByID(ctx, ids)
	if err != nil {
		return nil, err
	}

	lines := make([]domain.CostLine, len(cmd.Items))
	items := make([]domain.LineItem, len(cmd.Items))
	for i, it := range cmd.Items {
		p, ok := products[it.ProductID]
		if !ok {
			return nil, errs.NotFound("Producto", it.ProductID)
		}
		lines[i] = domain.CostLine{UnitPrice: p.UnitPrice, UnitWeightKg: p.UnitWeightKg, Quantity: it.Quantity}
		items[i] = domain.LineItem{ProductID: p.ID, Quantity: it.Quantity, UnitWeightKg: p.UnitWeightKg}
	}

	var borderCosts []catalog.BorderCost
	if cmd.ApplyBorderCosts {
		borderCosts, err = tx.ListBorderCosts(ctx)
		if err != nil {
			return nil, err
		}
	}

	costing := domain.ComputeCosting(lines, cmd.ApplyBorderCosts, borderCosts)

	return &writePlan{
		order: &domain.Order{
			Code:         cmd.Code,
			TotalCost:    costing.TotalCost,
			ClientID:     cmd.ClientID,
			InsuranceID:  cmd.InsuranceID,
			CarrierID:    cmd.CarrierID,
			TaxRateID:    cmd.TaxRateID,
			BorderCostID: costing.RepresentativeBorderCostID,
		},
		items: items,
	}, nil
}

func resolveReferences(ctx context.Context, tx repository.OrderCatalog, cmd OrderCommand) error {
	client, err := tx.FindClient(ctx, cmd.ClientID)
	if err != nil {
		return err
	}
	if client == nil {
		return errs.NotFound("Cliente", cmd.ClientID)
	}

	insurance, err := tx.FindInsurance(ctx, cmd.InsuranceID)
	if err != nil {
		return err
	}
	if insurance == nil {
		return errs.NotFound("Seguro", cmd.InsuranceID)
	}

	carrier, err := tx.FindCarrier(ctx, cmd.CarrierID)
	if err != nil {
		return err
	}
	if carrier == nil {
		return errs.NotFound("Transportadora", cmd.CarrierID)
	}

	taxRate, err := tx.FindTaxRate(ctx, cmd.TaxRateID)
	if err != nil {
		return err
	}
	if taxRate == nil {
		return errs.NotFound("Tasa impositiva", cmd.TaxRateID)
	}
	return nil
}

func reload(ctx context.Context, tx repository.OrderTx, id int64) (*domain.View, error) {
	o, err := tx.FindOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, errs.NotFound("Pedido", id)
	}
	return domain.NewView(o), nil
}

func (s *Service) check(cmd OrderCommand) error {
	if err := s.validate.Struct(cmd); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				if fe.StructNamespace() != "OrderCommand."+fe.StructField() {
					return errs.Validation("Cada producto debe tener productoId y cantidad válidos.")
				}
			}
		}
		return errs.Validation("Faltan campos obligatorios o productos para el pedido.")
	}
	return nil
}

// fail keeps classified errors as they are and wraps anything else as a
// StoreError.
func (s *Service) fail(ctx context.Context, op string, err error) error {
	var (
		vErr *errs.ValidationError
		nErr *errs.NotFoundError
		cErr *errs.ConflictError
		sErr *errs.StoreError
	)
	switch {
	case errors.As(err, &vErr), errors.As(err, &nErr), errors.As(err, &cErr):
		return err
	case errors.As(err, &sErr):
	default:
		err = errs.Store(op, err)
	}

	s.log.WithContext(ctx).Error(op+" failed", logger.Error(err))
	return fmt.Errorf("%s: %w", op, err)
}

func (s *Service) publish(ctx context.Context, typ domain.EventType, view *domain.View, applied bool) {
	if s.publisher == nil {
		return
	}

	event := domain.Event{
		ID:                 uuid.NewString(),
		Type:               typ,
		OrderID:            view.ID,
		OrderCode:          view.Code,
		TotalCost:          view.TotalCost,
		TotalWeightKg:      view.TotalWeightKg,
		TruckCount:         view.TruckCount,
		BorderCostsApplied: applied,
		OccurredAt:         s.now().UTC(),
	}

	if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
		s.log.WithContext(ctx).Warn("publish order event failed",
			logger.String("event_type", string(typ)),
			logger.Int64("order_id", view.ID),
			logger.Error(err),
		)
	}
}
