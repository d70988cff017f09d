package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App    AppConfig      `envconfig:"APP"`
	Server ServerConfig   `envconfig:"HTTP"`
	DB     PostgresConfig `envconfig:"POSTGRES"`
	Kafka  KafkaConfig    `envconfig:"KAFKA"`
}

type AppConfig struct {
	Name     string `split_words:"true" default:"gestion-sistemas-backend"`
	Env      string `split_words:"true" default:"local"`
	LogLevel string `split_words:"true" default:"info"`
}

type ServerConfig struct {
	Host            string        `split_words:"true" default:"0.0.0.0"`
	Port            int           `split_words:"true" default:"3001"`
	ShutdownTimeout time.Duration `split_words:"true" default:"10s"`
	AllowedOrigins  []string      `split_words:"true" default:"*"`
}

type PostgresConfig struct {
	Host     string `split_words:"true" default:"localhost"`
	Port     int    `split_words:"true" default:"5432"`
	User     string `split_words:"true" default:"postgres"`
	Password string `split_words:"true"`
	DBName   string `split_words:"true" default:"postgres"`
	SSLMode  string `split_words:"true" default:"disable"`
	MaxConns int    `split_words:"true" default:"10"`
	// AutoMigrate applies pending migrations when the server starts.
	AutoMigrate bool `split_words:"true" default:"true"`
}

type KafkaConfig struct {
	Enabled       bool     `split_words:"true" default:"false"`
	Brokers       []string `split_words:"true" default:"localhost:9092"`
	EventsTopic   string   `split_words:"true" default:"order-events"`
	ConsumerGroup string   `split_words:"true" default:"order-audit"`
}

// Load reads .env when present, then the process environment. Variables are
// prefixed by section: APP_ENV, HTTP_PORT, POSTGRES_DB_NAME, KAFKA_BROKERS.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}

	return cfg, cfg.validate()
}

func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		p.User,
		p.Password,
		p.Host,
		p.Port,
		p.DBName,
		p.SSLMode,
	)
}

// MigrateURL is the DSN in the scheme the golang-migrate pgx/v5 driver registers.
func (p PostgresConfig) MigrateURL() string {
	return fmt.Sprintf(
		"pgx5://%s:%s@%s:%d/%s?sslmode=%s",
		p.User,
		p.Password,
		p.Host,
		p.Port,
		p.DBName,
		p.SSLMode,
	)
}

func (c *Config) validate() error {
	if c.Server.Port <= 0 {
		return fmt.Errorf("HTTP_PORT is invalid")
	}
	if c.DB.Host == "" || c.DB.User == "" || c.DB.DBName == "" {
		return fmt.Errorf("database config is incomplete")
	}
	if c.DB.MaxConns <= 0 {
		return fmt.Errorf("POSTGRES_MAX_CONNS must be positive")
	}
	if c.Kafka.Enabled {
		if len(c.Kafka.Brokers) == 0 {
			return fmt.Errorf("kafka brokers is empty")
		}
		if c.Kafka.EventsTopic == "" {
			return fmt.Errorf("KAFKA_EVENTS_TOPIC is empty")
		}
	}
	return nil
}
