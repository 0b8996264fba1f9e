package database

import (
	"fmt"
	"log/slog"
	"time"

	"finance-dashboard/internal/config"
	"finance-dashboard/internal/models"

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

// AutoMigrate creates the read-model tables; production schemas come from db/migrations
func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.Customer{},
		&models.Transaction{},
	)
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

// CreateIndexes adds the composite and partial indexes the chart queries lean on
func (db *DB) CreateIndexes() error {
	queries := []string{
		"CREATE INDEX IF NOT EXISTS idx_transactions_occurred_at_type ON transactions(occurred_at, transaction_type)",
		"CREATE INDEX IF NOT EXISTS idx_transactions_category_occurred_at ON transactions(category_id, occurred_at)",
		"CREATE INDEX IF NOT EXISTS idx_transactions_customer_occurred_at ON transactions(customer_id, occurred_at) WHERE customer_id IS NOT NULL",
		"CREATE INDEX IF NOT EXISTS idx_transactions_open_due_date ON transactions(due_date, payment_status) WHERE paid_at IS NULL",
		"CREATE INDEX IF NOT EXISTS idx_categories_active_name ON categories(name, id) WHERE is_active",
		"CREATE INDEX IF NOT EXISTS idx_products_active_name ON products(name, id) WHERE is_active",
		"CREATE INDEX IF NOT EXISTS idx_customers_active_name ON customers(name, id) WHERE is_active",
		"CREATE INDEX IF NOT EXISTS idx_customers_region ON customers(region)",
	}

	failed := 0
	for _, query := range queries {
		if err := db.DB.Exec(query).Error; err != nil {
			slog.Warn("failed to create index", "query", query, "error", err)
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("failed to create %d of %d indexes", failed, len(queries))
	}
	return nil
}

// Initialize creates and configures the database connection
func Initialize(cfg *config.Config) (*gorm.DB, error) {
	logLevel := logger.Warn
	if cfg.IsDevelopment() {
		logLevel = logger.Info
	}

	db, err := New(&cfg.Database, logLevel)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if err := RunMigrationsIfEnabled(sqlDB); err != nil {
		slog.Warn("migration runner failed, falling back to GORM AutoMigrate", "error", err)

		if err := db.AutoMigrate(); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	if err := db.CreateIndexes(); err != nil {
		slog.Warn("failed to create some indexes", "error", err)
	}

	slog.Info("database initialized", "host", cfg.Database.Host, "name", cfg.Database.Name)

	return db.DB, nil
}
