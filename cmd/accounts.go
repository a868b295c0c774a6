package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BGirlGlowHub/steward/internal/calc"
	"github.com/BGirlGlowHub/steward/internal/cli"
	"github.com/BGirlGlowHub/steward/internal/model"
)

var (
	flagAccountName       string
	flagAccountCategory   string
	flagAccountPercentage float64
	flagAccountBalance    float64
)

var accountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "Manage budget accounts",
	RunE:  runAccountsList,
}

var accountsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a budget account",
	RunE:  runAccountsAdd,
}

var accountsRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a budget account",
	Args:  cobra.ExactArgs(1),
	RunE:  runAccountsRemove,
}

func init() {
	accountsAddCmd.Flags().StringVar(&flagAccountName, "name", "", "Account name")
	accountsAddCmd.Flags().StringVar(&flagAccountCategory, "category", "expenses", "Category: tithing, savings, bills, expenses, debt")
	accountsAddCmd.Flags().Float64Var(&flagAccountPercentage, "percentage", 0, "Share of each paycheck (0-100)")
	accountsAddCmd.Flags().Float64Var(&flagAccountBalance, "balance", 0, "Starting balance")
	_ = accountsAddCmd.MarkFlagRequired("name")

	accountsCmd.AddCommand(accountsAddCmd, accountsRemoveCmd)
	rootCmd.AddCommand(accountsCmd)
}

func runAccountsList(_ *cobra.Command, _ []string) error {
	ds, _, err := loadDataset()
	if err != nil {
		return err
	}
	asOf, err := asOfDate()
	if err != nil {
		return err
	}

	if len(ds.Accounts) == 0 {
		fmt.Println("\n  No accounts yet. Add one with: steward accounts add --name Bills --category bills --percentage 40")
		return nil
	}

	balances, err := calc.ProjectBalances(ds.Accounts, ds.Bills, ds.Settings, asOf)
	if err != nil {
		return err
	}
	projected := make(map[string]model.AccountBalanceInfo, len(balances))
	for _, b := range balances {
		projected[b.AccountID] = b
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("ACCOUNTS"))
	fmt.Println()

	var rows [][]string
	for _, a := range ds.Accounts {
		state := ""
		if !a.Active {
			state = "inactive"
		}
		util := "-"
		if b, ok := projected[a.ID]; ok {
			util = cli.FormatPercent(b.Utilization)
		}
		rows = append(rows, []string{
			a.Name,
			string(a.Category),
			cli.FormatPercent(a.Percentage),
			cli.FormatCurrency(a.Balance),
			util,
			state,
		})
	}

	table := cli.Table{
		Headers: []string{"Account", "Category", "Share", "Balance", "Utilization", ""},
		Rows:    rows,
	}
	fmt.Print(cli.RenderTable(table))

	check := calc.ValidateBalance(ds.Accounts)
	fmt.Printf("\n  Total allocation: %s\n", cli.FormatPercent(check.TotalPercentage))
	if !check.Valid {
		fmt.Printf("  %s\n", check.Message)
	}

	return nil
}

func runAccountsAdd(_ *cobra.Command, _ []string) error {
	category, err := model.ParseAccountCategory(flagAccountCategory)
	if err != nil {
		return err
	}
	if flagAccountPercentage < 0 || flagAccountPercentage > 100 {
		return fmt.Errorf("percentage must be between 0 and 100")
	}

	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	saved, err := st.SaveAccount(model.Account{
		Name:       flagAccountName,
		Category:   category,
		Percentage: flagAccountPercentage,
		Balance:    flagAccountBalance,
		Active:     true,
	})
	if err != nil {
		return err
	}

	fmt.Printf("  Added account %q (%s)\n", saved.Name, saved.ID)
	return nil
}

func runAccountsRemove(_ *cobra.Command, args []string) error {
	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.DeleteAccount(args[0]); err != nil {
		return err
	}
	fmt.Printf("  Removed account %s\n", args[0])
	return nil
}
