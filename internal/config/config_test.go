package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServerConfig_Address(t *testing.T) {
	tests := []struct {
		name   string
		server ServerConfig
		want   string
	}{
		{
			name:   "localhost default port",
			server: ServerConfig{Host: "localhost", Port: 3001},
			want:   "localhost:3001",
		},
		{
			name:   "bind all interfaces",
			server: ServerConfig{Host: "0.0.0.0", Port: 8080},
			want:   "0.0.0.0:8080",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.server.Address())
		})
	}
}

func TestPostgresConfig_URLs(t *testing.T) {
	p := PostgresConfig{Host: "db", Port: 5432, User: "app", Password: "secret", DBName: "distribuidora", SSLMode: "disable"}

	assert.Equal(t, "postgres://app:secret@db:5432/distribuidora?sslmode=disable", p.DSN())
	assert.Equal(t, "pgx5://app:secret@db:5432/distribuidora?sslmode=disable", p.MigrateURL())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("HTTP_SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("POSTGRES_HOST", "db.internal")
	t.Setenv("POSTGRES_DB_NAME", "distribuidora")
	t.Setenv("KAFKA_ENABLED", "true")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, "distribuidora", cfg.DB.DBName)
	assert.Equal(t, 10, cfg.DB.MaxConns)
	assert.True(t, cfg.Kafka.Enabled)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "order-events", cfg.Kafka.EventsTopic)
}

func TestLoad_RejectsInvalidPort(t *testing.T) {
	t.Setenv("HTTP_PORT", "0")

	_, err := Load()
	assert.EqualError(t, err, "HTTP_PORT is invalid")
}

func TestLoad_KafkaTopicRequiredWhenEnabled(t *testing.T) {
	t.Setenv("KAFKA_ENABLED", "true")
	t.Setenv("KAFKA_EVENTS_TOPIC", "")

	_, err := Load()
	assert.Error(t, err)
}
