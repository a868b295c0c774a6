package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/BGirlGlowHub/steward/internal/cli"
	"github.com/BGirlGlowHub/steward/internal/config"
	"github.com/BGirlGlowHub/steward/internal/logging"
	"github.com/BGirlGlowHub/steward/internal/model"
	"github.com/BGirlGlowHub/steward/internal/store"
)

var (
	flagDataDir string
	flagAsOf    string
	flagQuiet   bool
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "steward",
	Short: "Personal budget and stewardship CLI",
	Long:  "Plan paycheck allocations, track bills and debts, and project savings goals.",
	RunE:  runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Override the budget data directory")
	rootCmd.PersistentFlags().StringVar(&flagAsOf, "as-of", "", "Evaluate as of this date (YYYY-MM-DD, default today)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	cobra.OnInitialize(func() {
		logging.Setup(flagVerbose)
	})
}

// loadConfig reads the config file and applies the --data-dir override.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}
	if flagDataDir != "" {
		cfg.General.DataDir = flagDataDir
	}
	cli.SetCurrency(cfg.General.CurrencyCode)
	return cfg, nil
}

// openStore is the shared data path used by all commands. Callers own
// the returned store and must Close it.
func openStore() (*store.Store, config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, cfg, err
	}
	st, err := store.Open(config.DBPath(cfg))
	if err != nil {
		return nil, cfg, fmt.Errorf("opening budget database: %w", err)
	}
	return st, cfg, nil
}

// loadDataset opens the store, pulls the full snapshot, and closes it.
// Commands that only read use this.
func loadDataset() (model.Dataset, config.Config, error) {
	st, cfg, err := openStore()
	if err != nil {
		return model.Dataset{}, cfg, err
	}
	defer st.Close()

	ds, err := st.LoadSnapshot()
	if err != nil {
		return model.Dataset{}, cfg, err
	}
	return ds, cfg, nil
}

// asOfDate resolves the --as-of flag, defaulting to today.
func asOfDate() (time.Time, error) {
	if flagAsOf == "" {
		return time.Now(), nil
	}
	d, err := time.Parse("2006-01-02", flagAsOf)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --as-of date %q, want YYYY-MM-DD", flagAsOf)
	}
	return d, nil
}
