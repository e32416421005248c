package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "giftlab",
	Short: "Giftlab - storefront API for the workshop gift shop",
	Long: `Giftlab serves the shop's REST API: the catalog tree, accounts,
orders, reviews, the contact form and image uploads.

Run the server with "giftlab serve", prepare a fresh database with
"giftlab init-db", and create a back-office account with
"giftlab create-admin".`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
