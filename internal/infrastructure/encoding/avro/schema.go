package avro

// OrderEventSchema describes an order write notification. Money and weight
// travel as decimal strings so no precision is lost.
const OrderEventSchema = `{
	"type": "record",
	"name": "OrderEvent",
	"namespace": "com.distribuidora.pedidos",
	"fields": [
		{"name": "event_id", "type": "string"},
		{"name": "event_type", "type": "string"},
		{"name": "order_id", "type": "long"},
		{"name": "order_code", "type": "string"},
		{"name": "total_cost", "type": "string"},
		{"name": "total_weight_kg", "type": "string"},
		{"name": "truck_count", "type": "long"},
		{"name": "border_costs_applied", "type": "boolean", "default": false},
		{"name": "occurred_at", "type": {"type": "long", "logicalType": "timestamp-millis"}}
	]
}`
