package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/matthieukhl/giftlab/internal/config"
	"github.com/matthieukhl/giftlab/internal/database"
	"github.com/matthieukhl/giftlab/internal/models"
	"github.com/matthieukhl/giftlab/internal/store"
)

var (
	adminEmail    string
	adminPassword string
	adminName     string
)

var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create or promote a back-office administrator account",
	Long: `Creates an administrator account for the back office. When an
account with the given email already exists it is promoted instead.`,
	RunE: createAdmin,
}

func init() {
	rootCmd.AddCommand(createAdminCmd)

	createAdminCmd.Flags().StringVar(&adminEmail, "email", "", "Administrator email")
	createAdminCmd.Flags().StringVar(&adminPassword, "password", "", "Administrator password")
	createAdminCmd.Flags().StringVar(&adminName, "name", "", "Display name")
	_ = createAdminCmd.MarkFlagRequired("email")
	_ = createAdminCmd.MarkFlagRequired("password")
	_ = createAdminCmd.MarkFlagRequired("name")
}

func createAdmin(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.NewConnection(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := db.EnsureSchema(); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}

	users := store.NewUserStore(db)

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:    adminEmail,
		Password: string(hash),
		Name:     adminName,
		IsAdmin:  true,
	}
	err = users.CreateUser(user)
	if errors.Is(err, store.ErrConflict) {
		existing, err := users.GetUserByEmail(adminEmail)
		if err != nil {
			return fmt.Errorf("failed to look up existing account: %w", err)
		}
		if err := users.SetAdmin(existing.ID, true); err != nil {
			return fmt.Errorf("failed to promote account: %w", err)
		}
		fmt.Printf("✅ Promoted existing account %s to administrator\n", adminEmail)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to create administrator: %w", err)
	}

	fmt.Printf("✅ Created administrator account %s\n", adminEmail)
	return nil
}
