// Package cmd implements the onetech CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	apiclient "github.com/onetech-shop/onetech-backend/internal/api/client"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "onetech",
		Short: "CLI client for the Onetech storefront API",
		Long: "onetech is a command-line client for the Onetech storefront API.\n" +
			"It lets you browse and filter the catalog, manage products,\n" +
			"work with your cart, and place and track orders from the terminal.",
	}
)

// Root returns the root cobra command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", "config file (default $HOME/.onetech.yaml)")
	rootCmd.PersistentFlags().
		String("server", "http://localhost:8080", "API server URL")
	rootCmd.PersistentFlags().
		String("output", "table", "output format (table, json)")
	rootCmd.PersistentFlags().
		String("token", "", "bearer token for authenticated commands")

	cobra.CheckErr(viper.BindPFlag("server", rootCmd.PersistentFlags().Lookup("server")))
	cobra.CheckErr(viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output")))
	cobra.CheckErr(viper.BindPFlag("token", rootCmd.PersistentFlags().Lookup("token")))

	rootCmd.AddCommand(catalogCmd())
	rootCmd.AddCommand(productsCmd())
	rootCmd.AddCommand(cartCmd())
	rootCmd.AddCommand(ordersCmd())
	rootCmd.AddCommand(authCmd())
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".onetech")
	}

	viper.SetEnvPrefix("ONETECH")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func newClient() *apiclient.Client {
	var opts []apiclient.Option
	if token := viper.GetString("token"); token != "" {
		opts = append(opts, apiclient.WithToken(token))
	}
	return apiclient.New(viper.GetString("server"), opts...)
}

func jsonOutput() bool {
	return viper.GetString("output") == "json"
}
