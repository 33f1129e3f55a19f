package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kozaktomas/mrzname/internal/database/postgres"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending PostgreSQL migrations",
	Long: `Apply the embedded SQL migrations to the database named by DATABASE_URL.
Migrations are also applied automatically whenever parse --store or serve
connects to the database.`,
	RunE: runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)

	migrateCmd.Flags().Bool("status", false, "List applied and pending migrations without applying")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.Database.URL == "" {
		return errors.New("DATABASE_URL environment variable is required")
	}

	pool, err := postgres.NewPool(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	defer pool.Close()

	ctx := context.Background()
	if !mustGetBool(cmd, "status") {
		applied, err := pool.Migrate(ctx)
		if err != nil {
			return err
		}
		for _, file := range applied {
			fmt.Printf("Applied migration: %s\n", file)
		}
		if len(applied) == 0 {
			fmt.Println("Database is up to date")
		}
		return nil
	}

	return printMigrationStatus(ctx, pool)
}

func printMigrationStatus(ctx context.Context, pool *postgres.Pool) error {
	applied, pending, err := pool.MigrationStatus(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Applied migrations (%d):\n", len(applied))
	for _, m := range applied {
		fmt.Printf("  %-28s %s\n", m.Version, m.AppliedAt.Format(time.DateTime))
	}
	if len(pending) > 0 {
		fmt.Printf("Pending migrations (%d):\n", len(pending))
		for _, v := range pending {
			fmt.Printf("  %s\n", v)
		}
	}
	return nil
}
