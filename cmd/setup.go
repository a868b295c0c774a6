package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/BGirlGlowHub/steward/internal/cli"
	"github.com/BGirlGlowHub/steward/internal/model"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	settings, err := st.GetSettings()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("  Welcome to steward!")
	fmt.Println()

	// 1. Paycheck amount
	fmt.Println("  1. Take-home pay per paycheck (not per month)")
	if settings.PaycheckAmount > 0 {
		fmt.Printf("     Current: %s\n", cli.FormatCurrency(settings.PaycheckAmount))
	}
	fmt.Print("     > ")
	line, _ := reader.ReadString('\n')
	line = strings.TrimSpace(strings.TrimPrefix(line, "$"))
	if line != "" {
		amount, err := strconv.ParseFloat(line, 64)
		if err != nil || amount <= 0 {
			return fmt.Errorf("paycheck amount must be a positive number")
		}
		settings.PaycheckAmount = amount
	}
	fmt.Println()

	// 2. Pay frequency
	fmt.Println("  2. Pay frequency")
	fmt.Println("     (1) Weekly")
	fmt.Println("     (2) Bi-weekly [default]")
	fmt.Println("     (3) Semi-monthly")
	fmt.Println("     (4) Monthly")
	fmt.Print("     > ")
	choice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(choice) {
	case "1":
		settings.PayFrequency = model.FreqWeekly
	case "3":
		settings.PayFrequency = model.FreqSemiMonthly
	case "4":
		settings.PayFrequency = model.FreqMonthly
	default:
		settings.PayFrequency = model.FreqBiWeekly
	}
	fmt.Println()

	// 3. Tithing
	fmt.Println("  3. Set aside a tithe from each paycheck? [y/N]")
	fmt.Print("     > ")
	answer, _ := reader.ReadString('\n')
	settings.TithingEnabled = strings.EqualFold(strings.TrimSpace(answer), "y")
	if settings.TithingEnabled && settings.TithingPercent == 0 {
		settings.TithingPercent = 10
	}
	fmt.Println()

	// 4. Known pay dates for this month
	fmt.Println("  4. Pay dates this month, comma separated (YYYY-MM-DD)")
	fmt.Println("     Leave blank to average from the pay frequency.")
	fmt.Print("     > ")
	dates, _ := reader.ReadString('\n')
	dates = strings.TrimSpace(dates)
	if dates != "" {
		settings.PayDates = settings.PayDates[:0]
		for _, part := range strings.Split(dates, ",") {
			d, err := time.Parse("2006-01-02", strings.TrimSpace(part))
			if err != nil {
				return fmt.Errorf("invalid pay date %q, want YYYY-MM-DD", strings.TrimSpace(part))
			}
			settings.PayDates = append(settings.PayDates, d)
		}
	}
	fmt.Println()

	if err := st.SaveSettings(settings); err != nil {
		return err
	}

	fmt.Println("  Saved. Run `steward` for your budget summary or `steward tui` for the dashboard.")
	return nil
}
