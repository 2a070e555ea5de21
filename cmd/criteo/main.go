package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joepikowski/criteo-api-go-client/cmd/criteo/commands"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "criteo",
	Short: "Criteo Retail Media API CLI",
	Long: `A command-line interface for the Criteo Retail Media API.

Manage accounts, campaigns, line items, balances, audiences, catalogs,
creatives, and analytics reports from the terminal.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.criteo/config.yml)")
	rootCmd.PersistentFlags().StringP("endpoint", "e", "", "API endpoint URL")
	rootCmd.PersistentFlags().String("api-version", "", "API version path prefix (default \"preview\")")
	rootCmd.PersistentFlags().String("client-id", "", "OAuth2 client ID")
	rootCmd.PersistentFlags().String("client-secret", "", "OAuth2 client secret")
	rootCmd.PersistentFlags().StringP("token", "t", "", "pre-issued access token")
	rootCmd.PersistentFlags().String("output", "table", "output format (table, json, yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")

	// Bind flags to viper
	_ = viper.BindPFlag("endpoint", rootCmd.PersistentFlags().Lookup("endpoint"))
	_ = viper.BindPFlag("api_version", rootCmd.PersistentFlags().Lookup("api-version"))
	_ = viper.BindPFlag("client_id", rootCmd.PersistentFlags().Lookup("client-id"))
	_ = viper.BindPFlag("client_secret", rootCmd.PersistentFlags().Lookup("client-secret"))
	_ = viper.BindPFlag("token", rootCmd.PersistentFlags().Lookup("token"))
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	// Add commands
	rootCmd.AddCommand(commands.NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(commands.NewConfigureCommand())
	rootCmd.AddCommand(commands.NewTokenCommand())
	rootCmd.AddCommand(commands.NewAccountsCommand())
	rootCmd.AddCommand(commands.NewCampaignsCommand())
	rootCmd.AddCommand(commands.NewReportsCommand())
	rootCmd.AddCommand(commands.NewAPICommand())
}

func initConfig() {
	cfgFile := viper.GetString("config")

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		// Search config in ~/.criteo/config.yml
		viper.AddConfigPath(filepath.Join(home, ".criteo"))
		viper.SetConfigType("yml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match
	viper.SetEnvPrefix("CRITEO")
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
