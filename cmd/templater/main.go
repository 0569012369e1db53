// Package main implements the templater CLI: a server mode plus local
// commands for updating, validating, and annotating SMAX DLT workbooks.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sureshguna14/template-automation/internal/config"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "templater",
	Short: "Populate and validate SMAX DLT workbook templates",
	Long: `templater fills data-load templates from exported source data,
validates populated templates against per-template rule sets, and
cross-references account, location, and install-product mappings.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", ".", "directory containing config.yaml")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(mapCmd)
	rootCmd.AddCommand(picklistCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load configuration: %w", err)
	}
	return cfg, nil
}

func buildLogger(development bool) (*zap.Logger, error) {
	if development {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
