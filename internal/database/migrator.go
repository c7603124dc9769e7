package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"tracklytic/internal/config"

	"github.com/avast/retry-go"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

const (
	defaultMigrationsPath = "db/migrations"
	defaultSeedsPath      = "db/seeds"
)

var (
	maxRetries    uint = 30
	retryInterval      = 2 * time.Second
)

// MigrationRunner applies SQL migrations and optional seed files.
type MigrationRunner struct {
	db             *sql.DB
	migrationsPath string
	seedsPath      string
	seed           bool
}

// NewMigrationRunner creates a runner reading migrations from migrationsPath.
// An empty path selects db/migrations.
func NewMigrationRunner(db *sql.DB, migrationsPath string) *MigrationRunner {
	if migrationsPath == "" {
		migrationsPath = defaultMigrationsPath
	}
	return &MigrationRunner{
		db:             db,
		migrationsPath: migrationsPath,
		seedsPath:      defaultSeedsPath,
	}
}

// WithSeeds enables loading *.sql files from seedsPath after migrating.
func (mr *MigrationRunner) WithSeeds(seedsPath string) *MigrationRunner {
	mr.seed = true
	if seedsPath != "" {
		mr.seedsPath = seedsPath
	}
	return mr
}

// WaitForDatabase pings until the database answers or the attempts run out.
func (mr *MigrationRunner) WaitForDatabase(ctx context.Context) error {
	slog.Info("Waiting for database to be ready")

	err := retry.Do(
		func() error { return mr.db.PingContext(ctx) },
		retry.Context(ctx),
		retry.Attempts(maxRetries),
		retry.Delay(retryInterval),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			slog.Warn("Database not ready", "attempt", n+1, "max_attempts", maxRetries, "error", err)
		}),
	)
	if err != nil {
		return fmt.Errorf("database not ready after %d attempts: %w", maxRetries, err)
	}

	slog.Info("Database is ready")
	return nil
}

func (mr *MigrationRunner) newMigrate() (*migrate.Migrate, error) {
	absPath, err := filepath.Abs(mr.migrationsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path for migrations: %w", err)
	}

	driver, err := postgres.WithInstance(mr.db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+absPath, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migration instance: %w", err)
	}
	return m, nil
}

// RunMigrations applies every pending up migration.
func (mr *MigrationRunner) RunMigrations() error {
	if _, err := os.Stat(mr.migrationsPath); os.IsNotExist(err) {
		slog.Warn("Migrations directory not found, skipping", "path", mr.migrationsPath)
		return nil
	}

	m, err := mr.newMigrate()
	if err != nil {
		return err
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	if dirty {
		slog.Warn("Database is dirty, forcing version", "version", version)
		if err := m.Force(int(version)); err != nil {
			return fmt.Errorf("failed to force version: %w", err)
		}
	}

	err = m.Up()
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		slog.Info("No new migrations to apply", "version", version)
	case err != nil:
		return fmt.Errorf("migration failed: %w", err)
	default:
		newVersion, _, err := m.Version()
		if err != nil {
			return fmt.Errorf("failed to get new migration version: %w", err)
		}
		slog.Info("Applied migrations", "from", version, "to", newVersion)
	}

	return nil
}

// RollbackMigrations reverts the given number of migrations.
func (mr *MigrationRunner) RollbackMigrations(steps int) error {
	if steps <= 0 {
		return fmt.Errorf("steps must be positive, got %d", steps)
	}
	if _, err := os.Stat(mr.migrationsPath); os.IsNotExist(err) {
		return fmt.Errorf("migrations directory not found")
	}

	m, err := mr.newMigrate()
	if err != nil {
		return err
	}
	if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("rollback failed: %w", err)
	}
	return nil
}

// LoadSeeds executes seed files in name order. Failing files are logged and skipped.
func (mr *MigrationRunner) LoadSeeds() error {
	if !mr.seed {
		return nil
	}

	if _, err := os.Stat(mr.seedsPath); os.IsNotExist(err) {
		slog.Info("Seeds directory not found, skipping", "path", mr.seedsPath)
		return nil
	}

	files, err := filepath.Glob(filepath.Join(mr.seedsPath, "*.sql"))
	if err != nil {
		return fmt.Errorf("failed to find seed files: %w", err)
	}

	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read seed file %s: %w", file, err)
		}

		if _, err := mr.db.Exec(string(content)); err != nil {
			slog.Warn("Failed to execute seed file", "file", filepath.Base(file), "error", err)
			continue
		}
		slog.Info("Executed seed file", "file", filepath.Base(file))
	}

	return nil
}

// GetMigrationStatus returns the current migration version.
func (mr *MigrationRunner) GetMigrationStatus() (version uint, dirty bool, err error) {
	if _, err := os.Stat(mr.migrationsPath); os.IsNotExist(err) {
		return 0, false, fmt.Errorf("migrations directory not found")
	}

	m, err := mr.newMigrate()
	if err != nil {
		return 0, false, err
	}
	return m.Version()
}

// RunMigrationsIfEnabled migrates when AUTO_MIGRATE is on. It returns an error
// when disabled so Initialize falls back to gorm AutoMigrate.
func RunMigrationsIfEnabled(db *sql.DB, cfg config.DatabaseConfig) error {
	if !cfg.AutoMigrate {
		return ErrAutoMigrateDisabled
	}

	runner := NewMigrationRunner(db, cfg.MigrationsPath)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(maxRetries)*retryInterval+time.Minute)
	defer cancel()

	if err := runner.WaitForDatabase(ctx); err != nil {
		return fmt.Errorf("database readiness check failed: %w", err)
	}

	if err := runner.RunMigrations(); err != nil {
		return fmt.Errorf("migration execution failed: %w", err)
	}

	return nil
}

var ErrAutoMigrateDisabled = errors.New("auto-migration disabled")
