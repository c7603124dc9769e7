package main

import (
	"fmt"
	"log/slog"

	"tracklytic/internal/config"

	"github.com/spf13/cobra"
)

var flagEnvFile string

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "tracklytic",
		Short:         "Personal finance tracker",
		Long:          "Tracklytic records transactions, enforces spending limits, funds saving plans and reads bank receipts.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.PersistentFlags().StringVar(&flagEnvFile, "env-file", "", "Load this env file before reading configuration")

	root.AddCommand(
		newServeCmd(),
		newMigrateCmd(),
		newWorkerCmd(),
		newOCRCmd(),
	)
	return root
}

// loadConfig reads configuration and installs the default logger
func loadConfig() (*config.Config, *slog.Logger, error) {
	if flagEnvFile != "" {
		if err := loadEnvFile(flagEnvFile); err != nil {
			return nil, nil, err
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := config.SetupLogger(cfg.Log, nil)
	return cfg, logger, nil
}
