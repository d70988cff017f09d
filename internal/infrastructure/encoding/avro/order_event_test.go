package avro

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/Mario-Dorado/gestion-sistemas-backend/internal/domain/order"
)

func TestOrderEventCodec_RoundTrip(t *testing.T) {
	codec, err := NewOrderEventCodec()
	require.NoError(t, err)

	in := domain.Event{
		ID:                 "3f9a0c4e-8a53-4c8f-b0a1-1b9d2f6e7c10",
		Type:               domain.EventUpdated,
		OrderID:            42,
		OrderCode:          "PED-0042",
		TotalCost:          decimal.RequireFromString("1234.5678"),
		TotalWeightKg:      decimal.RequireFromString("18000.0001"),
		TruckCount:         2,
		BorderCostsApplied: true,
		OccurredAt:         time.Date(2026, 3, 14, 9, 26, 53, 589000000, time.UTC),
	}

	binary, err := codec.Encode(in)
	require.NoError(t, err)

	out, err := codec.Decode(binary)
	require.NoError(t, err)

	assert.Equal(t, in.ID, out.ID)
	assert.Equal(t, in.Type, out.Type)
	assert.Equal(t, in.OrderID, out.OrderID)
	assert.Equal(t, in.OrderCode, out.OrderCode)
	assert.True(t, in.TotalCost.Equal(out.TotalCost))
	assert.True(t, in.TotalWeightKg.Equal(out.TotalWeightKg))
	assert.Equal(t, in.TruckCount, out.TruckCount)
	assert.True(t, out.BorderCostsApplied)
	assert.True(t, in.OccurredAt.Equal(out.OccurredAt))
}

func TestOrderEventCodec_RejectsGarbage(t *testing.T) {
	codec, err := NewOrderEventCodec()
	require.NoError(t, err)

	_, err = codec.Decode([]byte{0xff, 0x01})
	assert.Error(t, err)
}

func TestNewCodec_InvalidSchema(t *testing.T) {
	_, err := NewCodec(`{"type": "record"}`)
	assert.Error(t, err)
}
