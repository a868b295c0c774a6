package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/BGirlGlowHub/steward/internal/snapshot"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export the full budget snapshot as JSON",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExport,
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the budget database from a JSON snapshot",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	rootCmd.AddCommand(exportCmd, importCmd)
}

func runExport(_ *cobra.Command, args []string) error {
	ds, _, err := loadDataset()
	if err != nil {
		return err
	}

	out := os.Stdout
	if len(args) == 1 {
		f, err := os.Create(args[0])
		if err != nil {
			return fmt.Errorf("creating export file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if err := snapshot.Export(ds, out); err != nil {
		return err
	}
	if len(args) == 1 && !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Exported snapshot to %s\n", args[0])
	}
	return nil
}

func runImport(_ *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening snapshot file: %w", err)
	}
	defer f.Close()

	ds, err := snapshot.Import(f)
	if err != nil {
		return err
	}

	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.ReplaceAll(ds); err != nil {
		return err
	}

	fmt.Printf("  Imported %d accounts, %d bills, %d debts, %d goals\n",
		len(ds.Accounts), len(ds.Bills), len(ds.Debts), len(ds.Goals))
	return nil
}
