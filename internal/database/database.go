package database

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"tracklytic/internal/config"
	"tracklytic/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

func New(cfg *config.DatabaseConfig, logLevel logger.LogLevel) (*DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

// AllModels lists every persisted model in dependency order.
func AllModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.RefreshToken{},
		&models.BlacklistedToken{},
		&models.AuditLog{},
		&models.Category{},
		&models.GeneralSpendingLimit{},
		&models.CategorySpendingLimit{},
		&models.SavingPlan{},
		&models.RecurringTransaction{},
		&models.Transaction{},
	}
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(AllModels()...)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) HealthCheck() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// CreateIndexes adds the indexes gorm tags cannot express.
func (db *DB) CreateIndexes() error {
	queries := []string{
		"CREATE INDEX IF NOT EXISTS idx_users_email_lower ON users(LOWER(email))",
		"CREATE INDEX IF NOT EXISTS idx_refresh_tokens_active ON refresh_tokens(user_id) WHERE revoked_at IS NULL",
		"CREATE INDEX IF NOT EXISTS idx_transactions_user_created ON transactions(user_id, created_at DESC, id DESC)",
		"CREATE INDEX IF NOT EXISTS idx_transactions_user_type_date ON transactions(user_id, type, transaction_date)",
		"CREATE INDEX IF NOT EXISTS idx_saving_plans_open ON saving_plans(user_id) WHERE status <> 'Completed'",
	}

	for _, query := range queries {
		if err := db.DB.Exec(query).Error; err != nil {
			slog.Warn("Failed to create index", "query", query, "error", err)
		}
	}

	return nil
}

// CleanupExpiredTokens deletes refresh and blacklisted tokens past their expiry.
func (db *DB) CleanupExpiredTokens() (int64, error) {
	now := time.Now().UTC()

	refresh := db.DB.Where("expires_at < ?", now).Delete(&models.RefreshToken{})
	if refresh.Error != nil {
		return 0, fmt.Errorf("failed to cleanup expired refresh tokens: %w", refresh.Error)
	}

	blacklisted := db.DB.Where("expires_at < ?", now).Delete(&models.BlacklistedToken{})
	if blacklisted.Error != nil {
		return refresh.RowsAffected, fmt.Errorf("failed to cleanup expired blacklisted tokens: %w", blacklisted.Error)
	}

	return refresh.RowsAffected + blacklisted.RowsAffected, nil
}

// Initialize connects and brings the schema up to date, preferring SQL
// migrations and falling back to gorm AutoMigrate.
func Initialize(cfg *config.Config) (*DB, error) {
	level := logger.Warn
	if cfg.IsDevelopment() && config.ParseLogLevel(cfg.Log.Level) == slog.LevelDebug {
		level = logger.Info
	}

	db, err := New(&cfg.Database, level)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if err := RunMigrationsIfEnabled(sqlDB, cfg.Database); err != nil {
		if errors.Is(err, ErrAutoMigrateDisabled) {
			slog.Info("SQL migrations disabled, using AutoMigrate")
		} else {
			slog.Warn("Migration runner failed, falling back to AutoMigrate", "error", err)
		}
		if err := db.AutoMigrate(); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	if err := db.CreateIndexes(); err != nil {
		slog.Warn("Failed to create some indexes", "error", err)
	}

	slog.Info("Database initialized")
	return db, nil
}
