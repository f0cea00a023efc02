package database

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"speak-byte/internal/logger"

	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

const migrationsDir = "migrations"

// RunMigrations applies every pending *.up.sql file of fsys/migrations in
// version order and records it in schema_migrations. Files are split into
// statements on lines ending with ';' because Oracle drivers execute one
// statement per call. It returns the number of migrations applied.
func RunMigrations(ctx context.Context, db *sqlx.DB, fsys fs.FS) (int, error) {
	l := logger.Get()

	src, err := iofs.New(fsys, migrationsDir)
	if err != nil {
		return 0, fmt.Errorf("could not open migration source: %w", err)
	}
	defer src.Close()

	if err := ensureVersionTable(ctx, db); err != nil {
		return 0, err
	}

	applied := 0
	version, err := src.First()
	for err == nil {
		done, runErr := applyVersion(ctx, db, src, version)
		if runErr != nil {
			return applied, runErr
		}
		if done {
			applied++
		}
		version, err = src.Next(version)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return applied, fmt.Errorf("could not read migration source: %w", err)
	}

	l.Info("Migrations completed successfully", zap.Int("applied", applied))
	return applied, nil
}

func ensureVersionTable(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(*) FROM user_tables WHERE table_name = 'SCHEMA_MIGRATIONS'`); err != nil {
		return fmt.Errorf("could not check schema_migrations table: %w", err)
	}
	if count > 0 {
		return nil
	}
	_, err := db.ExecContext(ctx, `CREATE TABLE schema_migrations (version NUMBER(19) PRIMARY KEY, applied_at TIMESTAMP DEFAULT SYSTIMESTAMP NOT NULL)`)
	if err != nil {
		return fmt.Errorf("could not create schema_migrations table: %w", err)
	}
	return nil
}

func applyVersion(ctx context.Context, db *sqlx.DB, src source.Driver, version uint) (bool, error) {
	r, identifier, err := src.ReadUp(version)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("could not read migration %d: %w", version, err)
	}
	defer r.Close()

	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(*) FROM schema_migrations WHERE version = :1`, int64(version)); err != nil {
		return false, fmt.Errorf("could not check migration %d: %w", version, err)
	}
	if count > 0 {
		return false, nil
	}

	content, err := io.ReadAll(r)
	if err != nil {
		return false, fmt.Errorf("could not read migration %d: %w", version, err)
	}

	for _, stmt := range SplitStatements(string(content)) {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return false, fmt.Errorf("could not execute migration %d_%s: %w", version, identifier, err)
		}
	}
	if _, err := db.ExecContext(ctx, `INSERT INTO schema_migrations (version) VALUES (:1)`, int64(version)); err != nil {
		return false, fmt.Errorf("could not record migration %d: %w", version, err)
	}

	logger.Get().Info("Executed migration", zap.Uint("version", version), zap.String("name", identifier))
	return true, nil
}

// SplitStatements breaks a migration script into single statements without
// their terminating semicolons.
func SplitStatements(script string) []string {
	var (
		stmts   []string
		current strings.Builder
	)
	flush := func() {
		if stmt := strings.TrimSpace(current.String()); stmt != "" {
			stmts = append(stmts, stmt)
		}
		current.Reset()
	}

	for _, line := range strings.Split(script, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "--") {
			continue
		}
		if strings.HasSuffix(trimmed, ";") {
			current.WriteString(strings.TrimSuffix(trimmed, ";"))
			flush()
			continue
		}
		current.WriteString(trimmed)
		current.WriteString("\n")
	}
	flush()
	return stmts
}
