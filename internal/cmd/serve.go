package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/matthieukhl/giftlab/internal/auth"
	"github.com/matthieukhl/giftlab/internal/config"
	"github.com/matthieukhl/giftlab/internal/database"
	"github.com/matthieukhl/giftlab/internal/mail"
	"github.com/matthieukhl/giftlab/internal/server"
	"github.com/matthieukhl/giftlab/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Giftlab API server",
	Long: `Start the Giftlab API server which provides:
- the public catalog, order, review and contact endpoints
- bearer-token authentication for accounts
- the admin back office for catalog and order management`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServer(cmd *cobra.Command, args []string) error {
	fmt.Println("🎁 Giftlab starting...")

	fmt.Println("📝 Loading configuration...")
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwt_secret must be set (GIFTLAB_AUTH_JWT_SECRET)")
	}

	fmt.Println("🔌 Opening database...")
	db, err := database.NewConnection(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := db.EnsureSchema(); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}

	fmt.Println("⚙️  Setting up server...")
	authSvc := auth.NewService(
		store.NewUserStore(db),
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenTTLDays)*24*time.Hour,
	)
	mailer := mail.NewSMTPMailer(cfg.SMTP)
	srv := server.NewServer(cfg, db, mailer, authSvc)

	fmt.Printf("🌐 Starting server on %s...\n", cfg.Server.Addr)
	if err := srv.Start(cfg.Server.Addr); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
