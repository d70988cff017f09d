package logger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_WithContextAddsRequestID(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := NewFromZap(zap.New(core))

	ctx := ContextWithRequestID(context.Background(), "req-1")
	log.WithContext(ctx).Info("order created", Int64("order_id", 7))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "order created", entry.Message)
	assert.Equal(t, "req-1", entry.ContextMap()["request_id"])
	assert.Equal(t, int64(7), entry.ContextMap()["order_id"])
}

func TestZapLogger_WithContextWithoutRequestID(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := NewFromZap(zap.New(core))

	log.WithContext(context.Background()).Warn("no id")

	require.Equal(t, 1, logs.Len())
	_, ok := logs.All()[0].ContextMap()["request_id"]
	assert.False(t, ok)
}

func TestConvertFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := NewFromZap(zap.New(core))

	log.Error("failed",
		String("s", "x"),
		Bool("b", true),
		Duration("d", time.Second),
		Any("total", decimal.RequireFromString("12.50")),
		Error(errors.New("boom")),
	)

	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "x", fields["s"])
	assert.Equal(t, true, fields["b"])
	assert.Equal(t, time.Second, fields["d"])
	assert.Equal(t, "12.5", fields["total"])
	assert.Equal(t, "boom", fields["error"])
}

func TestNewZapLogger_InvalidLevel(t *testing.T) {
	_, err := NewZapLogger("development", "loud")
	assert.Error(t, err)
}

func TestNop_IsZapBacked(t *testing.T) {
	log := Nop()

	assert.IsType(t, &ZapLogger{}, log)
	assert.NotPanics(t, func() {
		ctx := ContextWithRequestID(context.Background(), "req-2")
		log.WithContext(ctx).WithFields(String("k", "v")).Error("discarded", Error(errors.New("x")))
	})
	assert.NoError(t, log.Sync())
}
