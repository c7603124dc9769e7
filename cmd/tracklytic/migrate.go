package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"tracklytic/internal/config"
	"tracklytic/internal/database"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

const migrateWaitTimeout = 30 * time.Second

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			RunE: func(cmd *cobra.Command, args []string) error {
				return withMigrationRunner(cmd.Context(), "", func(cfg *config.Config, mr *database.MigrationRunner) error {
					if err := mr.RunMigrations(); err != nil {
						return err
					}
					return printStatus(cmd, mr)
				})
			},
		},
		newMigrateDownCmd(),
		&cobra.Command{
			Use:   "status",
			Short: "Show the current migration version",
			RunE: func(cmd *cobra.Command, args []string) error {
				return withMigrationRunner(cmd.Context(), "", func(cfg *config.Config, mr *database.MigrationRunner) error {
					return printStatus(cmd, mr)
				})
			},
		},
		newMigrateSeedCmd(),
	)
	return cmd
}

func newMigrateDownCmd() *cobra.Command {
	var steps int

	cmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back applied migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrationRunner(cmd.Context(), "", func(cfg *config.Config, mr *database.MigrationRunner) error {
				if err := mr.RollbackMigrations(steps); err != nil {
					return err
				}
				return printStatus(cmd, mr)
			})
		},
	}
	cmd.Flags().IntVar(&steps, "steps", 1, "Number of migrations to roll back")
	return cmd
}

func newMigrateSeedCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Execute the SQL seed files in name order",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrationRunner(cmd.Context(), path, func(cfg *config.Config, mr *database.MigrationRunner) error {
				return mr.LoadSeeds()
			})
		},
	}
	cmd.Flags().StringVar(&path, "path", "db/seeds", "Directory holding *.sql seed files")
	return cmd
}

// withMigrationRunner opens a plain lib/pq connection, waits for the server
// and hands a runner to fn. A non-empty seedsPath enables seeding.
func withMigrationRunner(ctx context.Context, seedsPath string, fn func(*config.Config, *database.MigrationRunner) error) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := sql.Open("postgres", cfg.Database.MigrationURL())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	mr := database.NewMigrationRunner(db, cfg.Database.MigrationsPath)
	if seedsPath != "" {
		mr = mr.WithSeeds(seedsPath)
	}

	waitCtx, cancel := context.WithTimeout(ctx, migrateWaitTimeout)
	defer cancel()
	if err := mr.WaitForDatabase(waitCtx); err != nil {
		return err
	}

	if err := fn(cfg, mr); err != nil {
		logger.Error("Migration command failed", "error", err)
		return err
	}
	return nil
}

func printStatus(cmd *cobra.Command, mr *database.MigrationRunner) error {
	version, dirty, err := mr.GetMigrationStatus()
	if err != nil {
		return err
	}
	cmd.Printf("version: %d dirty: %t\n", version, dirty)
	return nil
}
