package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BGirlGlowHub/steward/internal/calc"
	"github.com/BGirlGlowHub/steward/internal/cli"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Monthly budget summary with recommendations",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	ds, _, err := loadDataset()
	if err != nil {
		return err
	}
	asOf, err := asOfDate()
	if err != nil {
		return err
	}

	if ds.Settings.PaycheckAmount == 0 {
		fmt.Println("\n  No income configured yet.")
		fmt.Println("  Run `steward setup` to get started.")
		return nil
	}

	summary, err := calc.Summarize(ds.Accounts, ds.Bills, ds.Settings, asOf)
	if err != nil {
		return err
	}
	check := calc.ValidateBalance(ds.Accounts)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("BUDGET SUMMARY  %s", asOf.Format("January 2006"))))
	fmt.Println()

	rows := [][]string{
		{"Monthly Income", cli.FormatCurrency(summary.MonthlyIncome)},
		{"Allocated", cli.FormatCurrency(summary.TotalAllocated)},
		{"Remaining", cli.FormatCurrency(summary.Remaining)},
		{"---"},
		{"Bills", cli.FormatCurrency(summary.TotalBills)},
		{"Tithing", cli.FormatCurrency(summary.TithingAmount)},
		{"Savings", cli.FormatCurrency(summary.SavingsAmount)},
		{"---"},
		{"Allocation", cli.FormatPercent(summary.AllocationPercent)},
	}

	table := cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}
	fmt.Print(cli.RenderTable(table))

	if !check.Valid {
		fmt.Printf("\n  %s\n", check.Message)
	}

	recs, err := calc.Recommend(ds.Accounts, ds.Bills, ds.Settings, asOf)
	if err != nil {
		return err
	}
	if len(recs) > 0 {
		fmt.Println()
		fmt.Print(cli.RenderRecommendations(recs))
	}

	return nil
}
