// Package cmd implements the steward CLI commands.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BGirlGlowHub/steward/internal/cli"
	"github.com/BGirlGlowHub/steward/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Calendar horizon: %s\n", cli.FormatMonths(cfg.General.HorizonMonths))
	fmt.Printf("    Currency:         %s\n", cfg.General.CurrencyCode)
	fmt.Printf("    Database:         %s\n", config.DBPath(cfg))
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  Run `steward setup` to configure income and tithing.")
	return nil
}
