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
	flagGoalName     string
	flagGoalTarget   float64
	flagGoalCurrent  float64
	flagGoalDate     string
	flagGoalMonthly  float64
	flagGoalPriority int
)

var goalsCmd = &cobra.Command{
	Use:   "goals",
	Short: "Manage savings goals",
	RunE:  runGoalsList,
}

var goalsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a savings goal",
	RunE:  runGoalsAdd,
}

var goalsRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a savings goal",
	Args:  cobra.ExactArgs(1),
	RunE:  runGoalsRemove,
}

func init() {
	goalsAddCmd.Flags().StringVar(&flagGoalName, "name", "", "Goal name")
	goalsAddCmd.Flags().Float64Var(&flagGoalTarget, "target", 0, "Target amount")
	goalsAddCmd.Flags().Float64Var(&flagGoalCurrent, "current", 0, "Amount saved so far")
	goalsAddCmd.Flags().StringVar(&flagGoalDate, "by", "", "Target date (YYYY-MM-DD)")
	goalsAddCmd.Flags().Float64Var(&flagGoalMonthly, "monthly", 0, "Planned monthly contribution")
	goalsAddCmd.Flags().IntVar(&flagGoalPriority, "priority", 3, "Priority, 1 (highest) to 5")
	_ = goalsAddCmd.MarkFlagRequired("name")
	_ = goalsAddCmd.MarkFlagRequired("target")
	_ = goalsAddCmd.MarkFlagRequired("by")

	goalsCmd.AddCommand(goalsAddCmd, goalsRemoveCmd)
	rootCmd.AddCommand(goalsCmd)
}

func runGoalsList(_ *cobra.Command, _ []string) error {
	ds, _, err := loadDataset()
	if err != nil {
		return err
	}
	asOf, err := asOfDate()
	if err != nil {
		return err
	}

	if len(ds.Goals) == 0 {
		fmt.Println("\n  No savings goals yet. Add one with: steward goals add --name \"Emergency Fund\" --target 5000 --by 2027-06-01")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("SAVINGS GOALS"))
	fmt.Println()

	var rows [][]string
	for _, g := range ds.Goals {
		p := calc.Progress(g, asOf)
		track := "on track"
		if !p.OnTrack {
			track = "behind"
		}
		if !g.Active {
			track = "inactive"
		}
		rows = append(rows, []string{
			g.Name,
			cli.FormatCurrency(g.CurrentAmount),
			cli.FormatCurrency(g.TargetAmount),
			cli.FormatPercent(p.Percentage),
			cli.FormatMonths(p.MonthsRemaining),
			track,
		})
	}

	table := cli.Table{
		Headers: []string{"Goal", "Saved", "Target", "Progress", "Time Left", ""},
		Rows:    rows,
	}
	fmt.Print(cli.RenderTable(table))

	return nil
}

func runGoalsAdd(_ *cobra.Command, _ []string) error {
	if flagGoalTarget <= 0 {
		return fmt.Errorf("target must be positive")
	}
	targetDate, err := time.Parse("2006-01-02", flagGoalDate)
	if err != nil {
		return fmt.Errorf("invalid --by date %q, want YYYY-MM-DD", flagGoalDate)
	}
	if flagGoalPriority < 1 || flagGoalPriority > 5 {
		return fmt.Errorf("priority must be between 1 and 5")
	}

	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	saved, err := st.SaveGoal(model.SavingsGoal{
		Name:                flagGoalName,
		TargetAmount:        flagGoalTarget,
		CurrentAmount:       flagGoalCurrent,
		TargetDate:          targetDate,
		MonthlyContribution: flagGoalMonthly,
		Priority:            flagGoalPriority,
		Active:              true,
	})
	if err != nil {
		return err
	}

	fmt.Printf("  Added goal %q (%s)\n", saved.Name, saved.ID)
	return nil
}

func runGoalsRemove(_ *cobra.Command, args []string) error {
	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.DeleteGoal(args[0]); err != nil {
		return err
	}
	fmt.Printf("  Removed goal %s\n", args[0])
	return nil
}
