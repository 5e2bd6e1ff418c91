package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Surajsachintha/itams-haci-project/pkg/config"
	"github.com/Surajsachintha/itams-haci-project/pkg/logger"
)

var envPath string

var rootCmd = &cobra.Command{
	Use:          "itams",
	Short:        "IT asset management backend",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envPath, "env", ".env", "path to the .env file")

	rootCmd.AddCommand(serveCmd, migrateCmd, createAdminCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads the config and installs the JSON logger as the slog default.
func setup() (config.Config, *slog.Logger, error) {
	cfg, err := config.New(envPath)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("load config: %w", err)
	}

	l := logger.New(logger.ParseLevel(cfg.LogLevel))
	slog.SetDefault(l)

	return cfg, l, nil
}
