package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matthieukhl/giftlab/internal/config"
	"github.com/matthieukhl/giftlab/internal/database"
)

var (
	dropFirst  bool
	schemaOnly bool
)

var initDBCmd = &cobra.Command{
	Use:   "init-db",
	Short: "Set up the shop database schema and demo catalog",
	Long: `Creates the shop tables (users, catalog tree, orders, reviews,
contact messages) and seeds a small demo catalog.

Seeding is skipped when categories already exist, so init-db is safe to
run repeatedly.`,
	RunE: initDB,
}

func init() {
	rootCmd.AddCommand(initDBCmd)

	initDBCmd.Flags().BoolVar(&dropFirst, "drop-first", false, "Drop existing tables before creating")
	initDBCmd.Flags().BoolVar(&schemaOnly, "schema-only", false, "Create schema only, skip the demo catalog")
}

func initDB(cmd *cobra.Command, args []string) error {
	fmt.Println("🔧 Setting up shop database...")

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.NewConnection(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if dropFirst {
		fmt.Println("🗑️  Dropping existing tables...")
		if err := db.DropSchema(); err != nil {
			return fmt.Errorf("failed to drop schema: %w", err)
		}
	}

	fmt.Println("📋 Creating schema...")
	if err := db.EnsureSchema(); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	if !schemaOnly {
		fmt.Println("📊 Seeding demo catalog...")
		if err := db.Seed(); err != nil {
			return fmt.Errorf("failed to seed catalog: %w", err)
		}
	}

	fmt.Println("✅ Shop database ready!")
	return nil
}
