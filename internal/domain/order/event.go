package order

import (
	"time"

	"github.com/shopspring/decimal"
)

type EventType string

const (
	EventCreated EventType = "order.created"
	EventUpdated EventType = "order.updated"
	EventDeleted EventType = "order.deleted"
)

// Event is published after an order write commits.
type Event struct {
	ID                 string
	Type               EventType
	OrderID            int64
	OrderCode          string
	TotalCost          decimal.Decimal
	TotalWeightKg      decimal.Decimal
	TruckCount         int64
	BorderCostsApplied bool
	OccurredAt         time.Time
}
