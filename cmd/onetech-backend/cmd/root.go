// Package cmd implements the CLI commands for the onetech backend server.
package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "onetech-backend",
	Short: "Run the Onetech storefront backend",
	Long:  "An API-first backend for the Onetech PC components storefront. It serves the catalog with per-category faceted filtering, user carts and orders, and an admin surface for product and order management, backed by PostgreSQL with a Redis catalog cache.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
	rootCmd.AddCommand(versionCommand())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
