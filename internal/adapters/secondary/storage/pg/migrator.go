package pg

import (
	"cmp"
	"context"
	"embed"
	"fmt"
	"log/slog"
	"path"
	"slices"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// migrationLockID ключ pg_advisory_lock, чтобы несколько реплик не накатывали миграции одновременно
const migrationLockID = 72410915

const (
	createMigrationsTableQuery = `CREATE TABLE IF NOT EXISTS schema_migrations (
		version BIGINT NOT NULL PRIMARY KEY,
		name TEXT NOT NULL DEFAULT '',
		applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`
	currentVersionQuery = `SELECT COALESCE(MAX(version), 0) FROM schema_migrations`
	recordMigrationQuery = `INSERT INTO schema_migrations (version, name, applied_at) VALUES ($1, $2, NOW())`
)

type migration struct {
	Version int64
	Name    string
	Content string
}

// Migrator накатывает встроенные SQL-миграции
type Migrator struct {
	db  *sqlx.DB
	log *slog.Logger
}

func NewMigrator(db *sqlx.DB, log *slog.Logger) *Migrator {
	return &Migrator{db: db, log: log}
}

// Run применяет все миграции с версией больше текущей, каждую в своей транзакции
func (m *Migrator) Run(ctx context.Context) error {
	migrations, err := loadMigrations()
	if err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}

	conn, err := m.db.Connx(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer conn.Close()

	if _, err := conn.ExecContext(ctx, "SELECT pg_advisory_lock($1)", migrationLockID); err != nil {
		return fmt.Errorf("failed to take migration lock: %w", err)
	}
	defer func() {
		if _, err := conn.ExecContext(context.WithoutCancel(ctx), "SELECT pg_advisory_unlock($1)", migrationLockID); err != nil {
			m.log.Warn("failed to release migration lock", "error", err)
		}
	}()

	if _, err := conn.ExecContext(ctx, createMigrationsTableQuery); err != nil {
		return fmt.Errorf("failed to create schema_migrations table: %w", err)
	}

	var current int64
	if err := conn.GetContext(ctx, &current, currentVersionQuery); err != nil {
		return fmt.Errorf("failed to get current version: %w", err)
	}

	applied := 0
	for _, mg := range migrations {
		if mg.Version <= current {
			m.log.Debug("migration already applied", "version", mg.Version, "name", mg.Name)
			continue
		}

		m.log.Info("applying migration", "version", mg.Version, "name", mg.Name)
		if err := applyMigration(ctx, conn, mg); err != nil {
			return fmt.Errorf("failed to apply migration %d (%s): %w", mg.Version, mg.Name, err)
		}
		applied++
	}

	m.log.Info("database migrations completed", "current_version", max(current, lastVersion(migrations)), "applied", applied)
	return nil
}

func applyMigration(ctx context.Context, conn *sqlx.Conn, mg migration) error {
	tx, err := conn.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, mg.Content); err != nil {
		return fmt.Errorf("failed to execute migration: %w", err)
	}
	if _, err := tx.ExecContext(ctx, recordMigrationQuery, mg.Version, mg.Name); err != nil {
		return fmt.Errorf("failed to record migration: %w", err)
	}
	return tx.Commit()
}

// loadMigrations читает встроенные *.sql и сортирует по версии
func loadMigrations() ([]migration, error) {
	entries, err := migrationsFS.ReadDir("migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations directory: %w", err)
	}

	migrations := make([]migration, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}

		version, name, err := parseMigrationName(entry.Name())
		if err != nil {
			return nil, fmt.Errorf("invalid migration name %s: %w", entry.Name(), err)
		}

		content, err := migrationsFS.ReadFile(path.Join("migrations", entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read migration %s: %w", entry.Name(), err)
		}

		migrations = append(migrations, migration{Version: version, Name: name, Content: string(content)})
	}

	slices.SortFunc(migrations, func(a, b migration) int {
		return cmp.Compare(a.Version, b.Version)
	})
	for i := 1; i < len(migrations); i++ {
		if migrations[i].Version == migrations[i-1].Version {
			return nil, fmt.Errorf("duplicate migration version %d", migrations[i].Version)
		}
	}

	return migrations, nil
}

// parseMigrationName разбирает имя файла вида 0001_name.sql
func parseMigrationName(filename string) (int64, string, error) {
	parts := strings.SplitN(strings.TrimSuffix(filename, ".sql"), "_", 2)
	if len(parts) != 2 || parts[1] == "" {
		return 0, "", fmt.Errorf("expected NNNN_name.sql")
	}

	version, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, "", fmt.Errorf("invalid version number: %w", err)
	}
	if version <= 0 {
		return 0, "", fmt.Errorf("version must be positive, got %d", version)
	}

	return version, parts[1], nil
}

func lastVersion(migrations []migration) int64 {
	if len(migrations) == 0 {
		return 0
	}
	return migrations[len(migrations)-1].Version
}
