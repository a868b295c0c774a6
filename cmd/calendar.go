package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BGirlGlowHub/steward/internal/calc"
	"github.com/BGirlGlowHub/steward/internal/cli"
)

var flagCalendarMonths int

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Upcoming paychecks, bills, goals, and debt payments",
	RunE:  runCalendar,
}

func init() {
	calendarCmd.Flags().IntVarP(&flagCalendarMonths, "months", "n", 0, "Horizon in months (default from config)")
	rootCmd.AddCommand(calendarCmd)
}

func runCalendar(_ *cobra.Command, _ []string) error {
	ds, cfg, err := loadDataset()
	if err != nil {
		return err
	}
	asOf, err := asOfDate()
	if err != nil {
		return err
	}

	horizon := flagCalendarMonths
	if horizon <= 0 {
		horizon = cfg.General.HorizonMonths
	}

	events, err := calc.Synthesize(ds.Bills, ds.Settings.PayDates, ds.Goals, ds.Debts, asOf, horizon)
	if err != nil {
		return err
	}

	if len(events) == 0 {
		fmt.Println("\n  Nothing on the calendar for this window.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("CALENDAR  Next %s", cli.FormatMonths(horizon))))
	fmt.Println()

	var rows [][]string
	lastMonth := ""
	for _, ev := range events {
		month := ev.Date.Format("January 2006")
		if month != lastMonth {
			if lastMonth != "" {
				rows = append(rows, []string{"---"})
			}
			lastMonth = month
		}
		amount := ""
		if ev.Amount != nil {
			amount = cli.FormatCurrency(*ev.Amount)
		}
		rows = append(rows, []string{
			ev.Date.Format("Mon Jan 2"),
			cli.StatusMarker(ev.Status) + " " + ev.Title,
			string(ev.Type),
			amount,
		})
	}

	table := cli.Table{
		Headers: []string{"Date", "Event", "Type", "Amount"},
		Rows:    rows,
	}
	fmt.Print(cli.RenderTable(table))

	return nil
}
