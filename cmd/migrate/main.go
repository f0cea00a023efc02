package main

import (
	"context"
	"fmt"
	"os"

	"speak-byte/database"
	"speak-byte/internal/config"
	internaldb "speak-byte/internal/database"
	"speak-byte/internal/logger"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	l := logger.Get()

	db, err := internaldb.NewSQLXOracleDB(cfg.DB.Driver, cfg.GetDSN())
	if err != nil {
		l.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	applied, err := internaldb.RunMigrations(context.Background(), db, database.Migrations)
	if err != nil {
		l.Fatal("Failed to run migrations", zap.Int("applied_before_failure", applied), zap.Error(err))
	}
}
