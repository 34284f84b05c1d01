package database

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"trivia-api/internal/logger"

	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// Migrator applies the embedded migrations. golang-migrate ships no Oracle database
// driver, so only its source driver is used; versions are tracked in schema_migrations.
type Migrator struct {
	db     *sqlx.DB
	source source.Driver
}

// NewMigrator opens the embedded migration source.
func NewMigrator(db *sqlx.DB) (*Migrator, error) {
	src, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return nil, fmt.Errorf("could not open migration source: %w", err)
	}
	return &Migrator{db: db, source: src}, nil
}

// Close releases the migration source.
func (m *Migrator) Close() error {
	return m.source.Close()
}

// Version returns the latest applied version, 0 when none.
func (m *Migrator) Version(ctx context.Context) (uint, error) {
	if err := m.ensureVersionTable(ctx); err != nil {
		return 0, err
	}
	var version uint
	if err := m.db.GetContext(ctx, &version, `SELECT NVL(MAX(version), 0) FROM schema_migrations`); err != nil {
		return 0, fmt.Errorf("could not read schema version: %w", err)
	}
	return version, nil
}

// Up applies every migration newer than the current version and returns how many ran.
func (m *Migrator) Up(ctx context.Context) (int, error) {
	current, err := m.Version(ctx)
	if err != nil {
		return 0, err
	}

	applied := 0
	version, err := m.source.First()
	for err == nil {
		if version > current {
			if err := m.apply(ctx, version, true); err != nil {
				return applied, err
			}
			applied++
		}
		version, err = m.source.Next(version)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return applied, fmt.Errorf("could not iterate migrations: %w", err)
	}

	logger.Get().Info("Migrations completed successfully", zap.Int("applied", applied))
	return applied, nil
}

// Down reverts the latest applied migration. It is a no-op at version 0.
func (m *Migrator) Down(ctx context.Context) error {
	current, err := m.Version(ctx)
	if err != nil {
		return err
	}
	if current == 0 {
		logger.Get().Info("No migrations to revert")
		return nil
	}
	return m.apply(ctx, current, false)
}

func (m *Migrator) apply(ctx context.Context, version uint, up bool) error {
	var (
		r          io.ReadCloser
		identifier string
		err        error
	)
	if up {
		r, identifier, err = m.source.ReadUp(version)
	} else {
		r, identifier, err = m.source.ReadDown(version)
	}
	if err != nil {
		return fmt.Errorf("could not read migration %d: %w", version, err)
	}
	defer r.Close()

	content, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("could not read migration %d: %w", version, err)
	}

	// Oracle DDL commits implicitly, so statements run one by one outside a transaction.
	for _, stmt := range splitStatements(string(content)) {
		if _, err := m.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("could not execute migration %d_%s: %w", version, identifier, err)
		}
	}

	if up {
		_, err = m.db.ExecContext(ctx, `INSERT INTO schema_migrations (version) VALUES (:1)`, version)
	} else {
		_, err = m.db.ExecContext(ctx, `DELETE FROM schema_migrations WHERE version = :1`, version)
	}
	if err != nil {
		return fmt.Errorf("could not record migration %d: %w", version, err)
	}

	logger.Get().Info("Executed migration",
		zap.Uint("version", version),
		zap.String("name", identifier),
		zap.Bool("up", up),
	)
	return nil
}

func (m *Migrator) ensureVersionTable(ctx context.Context) error {
	var count int
	query := `SELECT COUNT(*) FROM user_tables WHERE table_name = 'SCHEMA_MIGRATIONS'`
	if err := m.db.GetContext(ctx, &count, query); err != nil {
		return fmt.Errorf("could not inspect schema_migrations: %w", err)
	}
	if count > 0 {
		return nil
	}
	if _, err := m.db.ExecContext(ctx, `CREATE TABLE schema_migrations (version NUMBER(19) PRIMARY KEY)`); err != nil {
		return fmt.Errorf("could not create schema_migrations: %w", err)
	}
	return nil
}

// splitStatements breaks a migration file into single statements, dropping
// "--" comment lines and the trailing semicolons Oracle drivers reject.
func splitStatements(content string) []string {
	var lines []string
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		lines = append(lines, line)
	}

	var statements []string
	for _, stmt := range strings.Split(strings.Join(lines, "\n"), ";") {
		if stmt = strings.TrimSpace(stmt); stmt != "" {
			statements = append(statements, stmt)
		}
	}
	return statements
}
