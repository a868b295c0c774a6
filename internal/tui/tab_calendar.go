package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/BGirlGlowHub/steward/internal/cli"
	"github.com/BGirlGlowHub/steward/internal/tui/components"
	"github.com/BGirlGlowHub/steward/internal/tui/theme"
)

func (a App) renderCalendarTab(cw int) string {
	t := theme.Active
	var b strings.Builder

	// Month grids for the current and next month, side by side.
	halves := components.LayoutRow(cw, 2)
	thisMonth := components.ContentCard("",
		components.MonthGrid(a.asOf.Year(), a.asOf.Month(), a.events, a.asOf), halves[0])
	next := a.asOf.AddDate(0, 1, 0)
	nextMonth := components.ContentCard("",
		components.MonthGrid(next.Year(), next.Month(), a.events, a.asOf), halves[1])
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, thisMonth, nextMonth))
	b.WriteString("\n")

	// Upcoming events list.
	muted := lipgloss.NewStyle().Foreground(t.TextMuted)
	value := lipgloss.NewStyle().Foreground(t.TextPrimary)

	var list strings.Builder
	shown := 0
	for _, e := range a.events {
		if e.Date.Before(a.asOf) {
			continue
		}
		amount := ""
		if e.Amount != nil {
			amount = "  " + cli.FormatCurrency(*e.Amount)
		}
		list.WriteString(fmt.Sprintf("%s  %s%s  %s\n",
			muted.Render(e.Date.Format("Jan 02")),
			value.Render(e.Title),
			amount,
			cli.StatusMarker(e.Status),
		))
		shown++
		if shown >= 12 {
			break
		}
	}
	if shown == 0 {
		list.WriteString(muted.Render("No upcoming events in the horizon window."))
	}
	b.WriteString(components.ContentCard(
		fmt.Sprintf("Upcoming (%dmo horizon)", a.cfg.General.HorizonMonths),
		strings.TrimRight(list.String(), "\n"), cw))
	b.WriteString("\n")

	return b.String()
}
