package avro

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	domain "github.com/Mario-Dorado/gestion-sistemas-backend/internal/domain/order"
)

// OrderEventCodec maps domain.Event to and from OrderEventSchema.
type OrderEventCodec struct {
	codec *Codec
}

func NewOrderEventCodec() (*OrderEventCodec, error) {
	c, err := NewCodec(OrderEventSchema)
	if err != nil {
		return nil, err
	}
	return &OrderEventCodec{codec: c}, nil
}

func (c *OrderEventCodec) Encode(e domain.Event) ([]byte, error) {
	return c.codec.EncodeNative(map[string]interface{}{
		"event_id":             e.ID,
		"event_type":           string(e.Type),
		"order_id":             e.OrderID,
		"order_code":           e.OrderCode,
		"total_cost":           e.TotalCost.String(),
		"total_weight_kg":      e.TotalWeightKg.String(),
		"truck_count":          e.TruckCount,
		"border_costs_applied": e.BorderCostsApplied,
		"occurred_at":          e.OccurredAt.UTC(),
	})
}

func (c *OrderEventCodec) Decode(binary []byte) (domain.Event, error) {
	native, err := c.codec.DecodeNative(binary)
	if err != nil {
		return domain.Event{}, err
	}

	r := nativeReader{m: native}
	e := domain.Event{
		ID:                 r.str("event_id"),
		Type:               domain.EventType(r.str("event_type")),
		OrderID:            r.long("order_id"),
		OrderCode:          r.str("order_code"),
		TotalCost:          r.dec("total_cost"),
		TotalWeightKg:      r.dec("total_weight_kg"),
		TruckCount:         r.long("truck_count"),
		BorderCostsApplied: r.boolean("border_costs_applied"),
		OccurredAt:         r.time("occurred_at"),
	}
	if r.err != nil {
		return domain.Event{}, r.err
	}
	return e, nil
}

// nativeReader pulls typed fields out of a goavro record, keeping the first
// error.
type nativeReader struct {
	m   map[string]interface{}
	err error
}

func (r *nativeReader) fail(field string, v interface{}) {
	if r.err == nil {
		r.err = fmt.Errorf("avro field %s: unexpected %T", field, v)
	}
}

func (r *nativeReader) str(field string) string {
	s, ok := r.m[field].(string)
	if !ok {
		r.fail(field, r.m[field])
	}
	return s
}

func (r *nativeReader) long(field string) int64 {
	n, ok := r.m[field].(int64)
	if !ok {
		r.fail(field, r.m[field])
	}
	return n
}

func (r *nativeReader) boolean(field string) bool {
	b, ok := r.m[field].(bool)
	if !ok {
		r.fail(field, r.m[field])
	}
	return b
}

func (r *nativeReader) time(field string) time.Time {
	t, ok := r.m[field].(time.Time)
	if !ok {
		r.fail(field, r.m[field])
	}
	return t.UTC()
}

func (r *nativeReader) dec(field string) decimal.Decimal {
	s := r.str(field)
	if r.err != nil {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil && r.err == nil {
		r.err = fmt.Errorf("avro field %s: %w", field, err)
	}
	return d
}
