package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/BGirlGlowHub/steward/internal/cli"
	"github.com/BGirlGlowHub/steward/internal/config"
	"github.com/BGirlGlowHub/steward/internal/tui/components"
	"github.com/BGirlGlowHub/steward/internal/tui/theme"
)

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active
	muted := lipgloss.NewStyle().Foreground(t.TextMuted)
	value := lipgloss.NewStyle().Foreground(t.TextPrimary)
	s := a.ds.Settings

	line := func(label, val string) string {
		return fmt.Sprintf("%s %s\n", muted.Render(fmt.Sprintf("%-18s", label)), value.Render(val))
	}

	var income strings.Builder
	income.WriteString(line("Paycheck", cli.FormatCurrency(s.PaycheckAmount)))
	income.WriteString(line("Frequency", string(s.PayFrequency)))
	tithing := "off"
	if s.TithingEnabled {
		tithing = cli.FormatPercent(s.TithingPercent)
	}
	income.WriteString(line("Tithing", tithing))
	income.WriteString(line("Emergency fund", cli.FormatPercent(s.EmergencyPercent)))

	var dates strings.Builder
	if len(s.PayDates) == 0 {
		dates.WriteString(muted.Render("No explicit pay dates set. Income is averaged from the pay frequency."))
		dates.WriteString("\n")
	} else {
		for _, d := range s.PayDates {
			dates.WriteString(value.Render("  " + cli.FormatDate(d)))
			dates.WriteString("\n")
		}
	}

	var app strings.Builder
	app.WriteString(line("Theme", a.cfg.Appearance.Theme))
	app.WriteString(line("Currency", a.cfg.General.CurrencyCode))
	app.WriteString(line("Calendar horizon", cli.FormatMonths(a.cfg.General.HorizonMonths)))
	app.WriteString(line("Database", config.DBPath(a.cfg)))
	app.WriteString(muted.Render("Edit " + config.ConfigPath() + " to change these."))
	app.WriteString("\n")

	return components.ContentCard("Income", income.String(), cw) + "\n" +
		components.ContentCard("Pay Dates", dates.String(), cw) + "\n" +
		components.ContentCard("Application", app.String(), cw) + "\n"
}
