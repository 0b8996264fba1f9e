package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"finance-dashboard/internal/config"
	"finance-dashboard/internal/database"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

var (
	command       = flag.String("command", "up", "Migration command: up, down, status or seed")
	steps         = flag.Int("steps", 1, "Number of migrations to roll back with -command=down")
	migrationsDir = flag.String("migrations", "db/migrations", "Path to migrations directory")
	seedsDir      = flag.String("seeds", "db/seeds", "Path to SQL seeds directory")
)

func main() {
	flag.Parse()
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg := config.Load()

	db, err := sql.Open("postgres", cfg.Database.URL())
	if err != nil {
		logger.Error("Failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	runner := database.NewMigrationRunner(db).WithPaths(*migrationsDir, *seedsDir)

	if err := runner.WaitForDatabase(); err != nil {
		logger.Error("Database not reachable", "error", err)
		os.Exit(1)
	}

	if err := run(runner, *command, *steps); err != nil {
		logger.Error("Migration command failed", "command", *command, "error", err)
		os.Exit(1)
	}
}

func run(runner *database.MigrationRunner, command string, steps int) error {
	switch command {
	case "up":
		return runner.RunMigrations()
	case "down":
		return runner.RollbackMigrations(steps)
	case "seed":
		return runner.LoadSeeds()
	case "status":
		version, dirty, err := runner.GetMigrationStatus()
		if err != nil {
			return err
		}
		fmt.Printf("version: %d\ndirty:   %t\n", version, dirty)
		return nil
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}
