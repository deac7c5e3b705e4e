// api/db/db.go
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/akshayraj/perks-portal/api/config"
	logger "github.com/akshayraj/perks-portal/api/logging"
)

var PgPool *pgxpool.Pool

func InitPostgres() error {
	uri := config.GetString("postgres.uri")
	logger.Info("Connecting to Postgres", zap.String("uri", uri))

	poolConfig, err := pgxpool.ParseConfig(uri)
	if err != nil {
		return fmt.Errorf("failed to parse Postgres URI: %w", err)
	}
	poolConfig.MaxConns = 10
	poolConfig.MaxConnLifetime = 30 * time.Minute

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	PgPool, err = pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return fmt.Errorf("failed to create Postgres pool: %w", err)
	}

	// Test the connection
	if err := PgPool.Ping(ctx); err != nil {
		return fmt.Errorf("failed to connect to Postgres: %w", err)
	}

	logger.Info("Successfully connected to Postgres")
	return nil
}

func ClosePostgres() {
	if PgPool != nil {
		PgPool.Close()
		logger.Info("Postgres pool closed")
	}
}
