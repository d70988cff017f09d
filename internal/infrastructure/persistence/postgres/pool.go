package postgres

import (
	"context"
	"time"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Mario-Dorado/gestion-sistemas-backend/internal/config"
	"github.com/Mario-Dorado/gestion-sistemas-backend/pkg/logger"
)

// NewPool opens and pings a pool whose connections encode NUMERIC as
// decimal.Decimal.
func NewPool(cfg config.PostgresConfig, log logger.Logger) (*pgxpool.Pool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, err
	}

	poolCfg.MaxConns = int32(cfg.MaxConns)
	poolCfg.AfterConnect = func(_ context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	log.Info("postgres pool ready",
		logger.String("host", cfg.Host),
		logger.String("db", cfg.DBName),
		logger.Int("max_conns", cfg.MaxConns),
	)
	return pool, nil
}
