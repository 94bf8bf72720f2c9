package db

import (
	"context"
	"fmt"
	"time"

	"vicqa-tradehub/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	maxConns        = 25
	maxConnLifetime = time.Hour
	connectTimeout  = 10 * time.Second
)

// Connect opens a pgx pool and verifies the database is reachable.
// The caller owns the pool and must Close it on shutdown.
func Connect(cfg config.DBConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.BuildDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	poolCfg.MaxConns = maxConns
	poolCfg.MaxConnLifetime = maxConnLifetime

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return pool, nil
}
