// Package main implements the dealswapify command: the marketplace API
// server plus operational subcommands.
package main

import (
	"fmt"
	"os"

	"dealswapify/internal/config"
	"dealswapify/internal/logging"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dealswapify",
	Short: "DealSwapify marketplace API",
	Long: `dealswapify runs the marketplace API and its maintenance tasks.

Configuration is read from the environment, with a .env file in the working
directory loaded first when present.`,
	Version:      version,
	SilenceUsage:  true,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(checkCategoryCmd)
}

// bootstrap loads configuration and builds the logger every subcommand uses
func bootstrap() (*config.Config, *logging.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return cfg, logger, nil
}
