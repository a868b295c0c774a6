package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/BGirlGlowHub/steward/internal/calc"
	"github.com/BGirlGlowHub/steward/internal/cli"
	"github.com/BGirlGlowHub/steward/internal/model"
)

var (
	flagBillName      string
	flagBillAmount    float64
	flagBillFrequency string
	flagBillDue       string
	flagBillAccount   string
	flagBillCategory  string
)

var billsCmd = &cobra.Command{
	Use:   "bills",
	Short: "Manage recurring bills",
	RunE:  runBillsList,
}

var billsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a recurring bill",
	RunE:  runBillsAdd,
}

var billsRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a bill",
	Args:  cobra.ExactArgs(1),
	RunE:  runBillsRemove,
}

func init() {
	billsAddCmd.Flags().StringVar(&flagBillName, "name", "", "Bill name")
	billsAddCmd.Flags().Float64Var(&flagBillAmount, "amount", 0, "Amount per occurrence")
	billsAddCmd.Flags().StringVar(&flagBillFrequency, "frequency", "monthly", "Frequency: weekly, bi-weekly, monthly, quarterly, annual")
	billsAddCmd.Flags().StringVar(&flagBillDue, "due", "", "Next due date (YYYY-MM-DD)")
	billsAddCmd.Flags().StringVar(&flagBillAccount, "account", "", "Funding account ID")
	billsAddCmd.Flags().StringVar(&flagBillCategory, "category", "", "Free-text grouping label")
	_ = billsAddCmd.MarkFlagRequired("name")
	_ = billsAddCmd.MarkFlagRequired("amount")
	_ = billsAddCmd.MarkFlagRequired("due")

	billsCmd.AddCommand(billsAddCmd, billsRemoveCmd)
	rootCmd.AddCommand(billsCmd)
}

func runBillsList(_ *cobra.Command, _ []string) error {
	ds, _, err := loadDataset()
	if err != nil {
		return err
	}

	if len(ds.Bills) == 0 {
		fmt.Println("\n  No bills yet. Add one with: steward bills add --name Rent --amount 1200 --due 2026-09-01")
		return nil
	}

	paycheck := ds.Settings.PaycheckAmount

	fmt.Println()
	fmt.Println(cli.RenderTitle("BILLS"))
	fmt.Println()

	var rows [][]string
	var totalMonthly float64
	for _, b := range ds.Bills {
		monthly, err := calc.NormalizeToMonthly(b.Amount, b.Frequency)
		if err != nil {
			return err
		}
		if b.Active {
			totalMonthly += monthly
		}
		state := string(b.Status)
		if !b.Active {
			state = "inactive"
		}
		rows = append(rows, []string{
			b.Name,
			cli.FormatCurrency(b.Amount),
			string(b.Frequency),
			cli.FormatCurrency(monthly),
			cli.FormatPercent(calc.BillPercentage(monthly, paycheck)),
			cli.FormatDate(b.DueDate),
			state,
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{
		"Total", "", "",
		cli.FormatCurrency(totalMonthly),
		cli.FormatPercent(calc.BillPercentage(totalMonthly, paycheck)),
		"", "",
	})

	table := cli.Table{
		Headers: []string{"Bill", "Amount", "Frequency", "Monthly", "Of Paycheck", "Due", ""},
		Rows:    rows,
	}
	fmt.Print(cli.RenderTable(table))

	return nil
}

func runBillsAdd(_ *cobra.Command, _ []string) error {
	freq, err := model.ParseBillFrequency(flagBillFrequency)
	if err != nil {
		return err
	}
	due, err := time.Parse("2006-01-02", flagBillDue)
	if err != nil {
		return fmt.Errorf("invalid --due date %q, want YYYY-MM-DD", flagBillDue)
	}
	if flagBillAmount <= 0 {
		return fmt.Errorf("amount must be positive")
	}

	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	saved, err := st.SaveBill(model.Bill{
		Name:      flagBillName,
		Amount:    flagBillAmount,
		Frequency: freq,
		DueDate:   due,
		AccountID: flagBillAccount,
		Category:  flagBillCategory,
		Active:    true,
		Status:    model.BillCurrent,
	})
	if err != nil {
		return err
	}

	fmt.Printf("  Added bill %q (%s)\n", saved.Name, saved.ID)
	return nil
}

func runBillsRemove(_ *cobra.Command, args []string) error {
	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.DeleteBill(args[0]); err != nil {
		return err
	}
	fmt.Printf("  Removed bill %s\n", args[0])
	return nil
}
