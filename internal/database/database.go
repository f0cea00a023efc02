package database

import (
	"context"
	"fmt"
	"time"

	"speak-byte/internal/logger"

	_ "github.com/godror/godror" // Oracle driver (OCI), registered as "godror"
	"github.com/jmoiron/sqlx"
	_ "github.com/sijms/go-ora/v2" // Oracle driver (pure Go), registered as "oracle"
	"go.uber.org/zap"
)

const connectTimeout = 10 * time.Second

// NewSQLXOracleDB opens an Oracle connection pool with the named driver
// ("oracle" for go-ora, "godror" for godror) and verifies it with a ping.
func NewSQLXOracleDB(driver, dsn string) (*sqlx.DB, error) {
	if driver == "" {
		driver = "oracle"
	}

	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open Oracle database with %s driver: %w", driver, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping Oracle database: %w", err)
	}

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	logger.Get().Info("Successfully connected to Oracle database", zap.String("driver", driver))
	return db, nil
}
