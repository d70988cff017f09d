// Package audit turns consumed order events into structured audit log lines.
package audit

import (
	"context"
	"fmt"
	"sync"

	domain "github.com/Mario-Dorado/gestion-sistemas-backend/internal/domain/order"
	"github.com/Mario-Dorado/gestion-sistemas-backend/pkg/logger"
)

type Service struct {
	log logger.Logger

	mu     sync.Mutex
	counts map[domain.EventType]int
}

func NewService(log logger.Logger) *Service {
	return &Service{log: log, counts: map[domain.EventType]int{}}
}

func (s *Service) HandleOrderEvent(ctx context.Context, event domain.Event) error {
	switch event.Type {
	case domain.EventCreated, domain.EventUpdated, domain.EventDeleted:
	default:
		return fmt.Errorf("unknown event type %q", event.Type)
	}

	s.mu.Lock()
	s.counts[event.Type]++
	s.mu.Unlock()

	s.log.WithContext(ctx).Info("order audit",
		logger.String("event_id", event.ID),
		logger.String("event_type", string(event.Type)),
		logger.Int64("order_id", event.OrderID),
		logger.String("order_code", event.OrderCode),
		logger.Any("total_cost", event.TotalCost),
		logger.Any("total_weight_kg", event.TotalWeightKg),
		logger.Int64("trucks", event.TruckCount),
		logger.Bool("border_costs_applied", event.BorderCostsApplied),
		logger.Any("occurred_at", event.OccurredAt),
	)
	return nil
}

// Counts returns how many events of each type were audited so far.
func (s *Service) Counts() map[domain.EventType]int {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[domain.EventType]int, len(s.counts))
	for k, v := range s.counts {
		out[k] = v
	}
	return out
}
