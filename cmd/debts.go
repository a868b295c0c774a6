package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/BGirlGlowHub/steward/internal/calc"
	"github.com/BGirlGlowHub/steward/internal/cli"
	"github.com/BGirlGlowHub/steward/internal/model"
)

var (
	flagDebtName     string
	flagDebtBalance  float64
	flagDebtMinimum  float64
	flagDebtRate     float64
	flagDebtDue      string
	flagDebtStrategy string
	flagDebtExtra    float64
)

var debtsCmd = &cobra.Command{
	Use:   "debts",
	Short: "Manage debts and payoff plans",
	RunE:  runDebtsList,
}

var debtsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a debt",
	RunE:  runDebtsAdd,
}

var debtsRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a debt",
	Args:  cobra.ExactArgs(1),
	RunE:  runDebtsRemove,
}

var debtsPlanCmd = &cobra.Command{
	Use:   "plan",
	Short: "Simulate a debt payoff strategy",
	RunE:  runDebtsPlan,
}

var debtsImpactCmd = &cobra.Command{
	Use:   "impact <id>",
	Short: "Show the effect of an extra payment on one debt",
	Args:  cobra.ExactArgs(1),
	RunE:  runDebtsImpact,
}

func init() {
	debtsAddCmd.Flags().StringVar(&flagDebtName, "name", "", "Debt name")
	debtsAddCmd.Flags().Float64Var(&flagDebtBalance, "balance", 0, "Current balance")
	debtsAddCmd.Flags().Float64Var(&flagDebtMinimum, "minimum", 0, "Monthly minimum payment")
	debtsAddCmd.Flags().Float64Var(&flagDebtRate, "rate", 0, "Annual interest rate, percent")
	debtsAddCmd.Flags().StringVar(&flagDebtDue, "due", "", "Monthly due date (YYYY-MM-DD)")
	_ = debtsAddCmd.MarkFlagRequired("name")
	_ = debtsAddCmd.MarkFlagRequired("balance")
	_ = debtsAddCmd.MarkFlagRequired("minimum")

	debtsPlanCmd.Flags().StringVar(&flagDebtStrategy, "strategy", "compare", "Strategy: snowball, avalanche, or compare")
	debtsPlanCmd.Flags().Float64Var(&flagDebtExtra, "extra", 0, "Extra monthly payment beyond minimums")

	debtsImpactCmd.Flags().Float64Var(&flagDebtExtra, "extra", 50, "Extra monthly payment on this debt")

	debtsCmd.AddCommand(debtsAddCmd, debtsRemoveCmd, debtsPlanCmd, debtsImpactCmd)
	rootCmd.AddCommand(debtsCmd)
}

func runDebtsList(_ *cobra.Command, _ []string) error {
	ds, _, err := loadDataset()
	if err != nil {
		return err
	}

	if len(ds.Debts) == 0 {
		fmt.Println("\n  No debts tracked. That is the goal!")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("DEBTS"))
	fmt.Println()

	var rows [][]string
	var totalBalance, totalMinimum float64
	for _, d := range ds.Debts {
		state := ""
		if !d.Active {
			state = "inactive"
		} else if d.Balance <= 0 {
			state = "paid off"
		} else {
			totalBalance += d.Balance
			totalMinimum += d.MinimumPayment
		}
		rows = append(rows, []string{
			d.Name,
			cli.FormatCurrency(d.Balance),
			cli.FormatCurrency(d.MinimumPayment),
			cli.FormatPercent(d.InterestRate),
			state,
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{
		"Total",
		cli.FormatCurrency(totalBalance),
		cli.FormatCurrency(totalMinimum),
		"", "",
	})

	table := cli.Table{
		Headers: []string{"Debt", "Balance", "Minimum", "Rate", ""},
		Rows:    rows,
	}
	fmt.Print(cli.RenderTable(table))

	return nil
}

func runDebtsPlan(_ *cobra.Command, _ []string) error {
	ds, _, err := loadDataset()
	if err != nil {
		return err
	}

	if flagDebtStrategy != "compare" {
		strategy, err := model.ParseDebtStrategy(flagDebtStrategy)
		if err != nil {
			return err
		}
		plan, err := calc.Simulate(ds.Debts, flagDebtExtra, strategy)
		if err != nil {
			return err
		}
		printPlan(plan, flagDebtExtra)
		return nil
	}

	snowball, err := calc.Simulate(ds.Debts, flagDebtExtra, model.StrategySnowball)
	if err != nil {
		return err
	}
	avalanche, err := calc.Simulate(ds.Debts, flagDebtExtra, model.StrategyAvalanche)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("PAYOFF COMPARISON  +%s/mo extra", cli.FormatCurrency(flagDebtExtra))))
	fmt.Println()

	table := cli.Table{
		Headers: []string{"Strategy", "Payoff Time", "Total Interest"},
		Rows: [][]string{
			{"Snowball", cli.FormatMonths(snowball.PayoffMonths), cli.FormatCurrency(snowball.TotalInterest)},
			{"Avalanche", cli.FormatMonths(avalanche.PayoffMonths), cli.FormatCurrency(avalanche.TotalInterest)},
		},
	}
	fmt.Print(cli.RenderTable(table))

	saved := snowball.TotalInterest - avalanche.TotalInterest
	if saved > 0.01 {
		fmt.Printf("\n  Avalanche saves %s in interest.\n", cli.FormatCurrency(saved))
	} else {
		fmt.Println("\n  Both strategies cost the same here. Snowball pays off small debts sooner.")
	}

	return nil
}

func printPlan(plan model.PayoffPlan, extra float64) {
	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("%s PLAN  +%s/mo extra", strings.ToUpper(string(plan.Strategy)), cli.FormatCurrency(extra))))
	fmt.Println()

	rows := [][]string{
		{"Debt-free in", cli.FormatMonths(plan.PayoffMonths)},
		{"Total interest", cli.FormatCurrency(plan.TotalInterest)},
		{"---"},
	}
	for _, p := range plan.MonthlyPayments {
		rows = append(rows, []string{p.Name, cli.FormatCurrency(p.Payment) + "/mo"})
	}

	table := cli.Table{
		Headers: []string{"", "First Month"},
		Rows:    rows,
	}
	fmt.Print(cli.RenderTable(table))
}

func runDebtsImpact(_ *cobra.Command, args []string) error {
	ds, _, err := loadDataset()
	if err != nil {
		return err
	}

	var debt *model.Debt
	for i := range ds.Debts {
		if ds.Debts[i].ID == args[0] || ds.Debts[i].Name == args[0] {
			debt = &ds.Debts[i]
			break
		}
	}
	if debt == nil {
		return fmt.Errorf("no debt matching %q", args[0])
	}

	impact, err := calc.ExtraPaymentImpact(*debt, flagDebtExtra)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("  Paying an extra %s/mo on %q:\n", cli.FormatCurrency(flagDebtExtra), debt.Name)
	fmt.Printf("    Paid off in %s instead, %s sooner\n",
		cli.FormatMonths(impact.NewPayoffMonths), cli.FormatMonths(impact.MonthsSaved))
	fmt.Printf("    Saves %s in interest\n", cli.FormatCurrency(impact.InterestSaved))
	return nil
}

func runDebtsAdd(_ *cobra.Command, _ []string) error {
	if flagDebtBalance <= 0 {
		return fmt.Errorf("balance must be positive")
	}
	if flagDebtMinimum <= 0 {
		return fmt.Errorf("minimum payment must be positive")
	}

	due := time.Now()
	if flagDebtDue != "" {
		var err error
		if due, err = time.Parse("2006-01-02", flagDebtDue); err != nil {
			return fmt.Errorf("invalid --due date %q, want YYYY-MM-DD", flagDebtDue)
		}
	}

	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	saved, err := st.SaveDebt(model.Debt{
		Name:           flagDebtName,
		Balance:        flagDebtBalance,
		MinimumPayment: flagDebtMinimum,
		InterestRate:   flagDebtRate,
		DueDate:        due,
		Active:         true,
	})
	if err != nil {
		return err
	}

	fmt.Printf("  Added debt %q (%s)\n", saved.Name, saved.ID)
	return nil
}

func runDebtsRemove(_ *cobra.Command, args []string) error {
	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.DeleteDebt(args[0]); err != nil {
		return err
	}
	fmt.Printf("  Removed debt %s\n", args[0])
	return nil
}
