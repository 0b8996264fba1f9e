package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"finance-dashboard/internal/config"
	"finance-dashboard/internal/database"
	"finance-dashboard/internal/models"
	"finance-dashboard/internal/services"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

const batchSize = 500

type options struct {
	Seed         uint64
	Products     int
	Customers    int
	Transactions int
	Months       int
	Reset        bool
}

func main() {
	var opts options
	flag.Uint64Var(&opts.Seed, "seed", 42, "Random seed; equal seeds produce equal datasets")
	flag.IntVar(&opts.Products, "products", 25, "Number of products to generate")
	flag.IntVar(&opts.Customers, "customers", 60, "Number of customers to generate")
	flag.IntVar(&opts.Transactions, "transactions", 5000, "Number of transactions to generate")
	flag.IntVar(&opts.Months, "months", 12, "Months of history ending today")
	flag.BoolVar(&opts.Reset, "reset", false, "Delete existing dashboard data before seeding")
	flag.Parse()

	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg := config.Load()
	db, err := database.Initialize(cfg)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	now := time.Now().UTC()
	counts, err := seed(ctx, db, services.NewDataGenerator(opts.Seed), opts, now)
	if err != nil {
		logger.Error("Seeding failed", "error", err)
		os.Exit(1)
	}

	logger.Info("Seeding completed",
		"categories", counts.categories,
		"products", counts.products,
		"customers", counts.customers,
		"transactions", counts.transactions,
	)
}

type seedCounts struct {
	categories, products, customers, transactions int
}

// seed generates a dataset ending at now and writes it in one transaction
func seed(ctx context.Context, db *gorm.DB, gen services.DataGeneratorInterface, opts options, now time.Time) (seedCounts, error) {
	if opts.Months <= 0 {
		return seedCounts{}, fmt.Errorf("months must be positive, got %d", opts.Months)
	}

	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
	start := end.AddDate(0, -opts.Months, 0)

	lookups := gen.GenerateLookups(opts.Products, opts.Customers)
	transactions := gen.GenerateTransactions(lookups, start, end, now, opts.Transactions)

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if opts.Reset {
			if err := reset(tx); err != nil {
				return err
			}
		}
		if err := createInBatches(tx, lookups.Categories); err != nil {
			return fmt.Errorf("failed to insert categories: %w", err)
		}
		if err := createInBatches(tx, lookups.Products); err != nil {
			return fmt.Errorf("failed to insert products: %w", err)
		}
		if err := createInBatches(tx, lookups.Customers); err != nil {
			return fmt.Errorf("failed to insert customers: %w", err)
		}
		if err := createInBatches(tx, transactions); err != nil {
			return fmt.Errorf("failed to insert transactions: %w", err)
		}
		return nil
	})
	if err != nil {
		return seedCounts{}, err
	}

	return seedCounts{
		categories:   len(lookups.Categories),
		products:     len(lookups.Products),
		customers:    len(lookups.Customers),
		transactions: len(transactions),
	}, nil
}

func createInBatches[T any](tx *gorm.DB, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	return tx.CreateInBatches(rows, batchSize).Error
}

// reset removes rows in foreign key order
func reset(tx *gorm.DB) error {
	for _, model := range []interface{}{&models.Transaction{}, &models.Customer{}, &models.Product{}, &models.Category{}} {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			return fmt.Errorf("failed to reset %T: %w", model, err)
		}
	}
	return nil
}
