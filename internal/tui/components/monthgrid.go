package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/BGirlGlowHub/steward/internal/model"
	"github.com/BGirlGlowHub/steward/internal/tui/theme"
)

// MonthGrid renders one calendar month as a week grid, marking days
// that carry financial events.
func MonthGrid(year int, month time.Month, events []model.CalendarEvent, today time.Time) string {
	t := theme.Active

	headStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	dayStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	todayStyle := lipgloss.NewStyle().Foreground(t.Yellow).Bold(true)
	eventStyle := lipgloss.NewStyle().Foreground(t.Orange).Bold(true)

	// Which days of this month carry events, by event day number.
	eventDays := make(map[int]bool)
	for _, e := range events {
		if e.Date.Year() == year && e.Date.Month() == month {
			eventDays[e.Date.Day()] = true
		}
	}

	var b strings.Builder
	b.WriteString(headStyle.Render(fmt.Sprintf("%s %d", month, year)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(" Su  Mo  Tu  We  Th  Fr  Sa"))
	b.WriteString("\n")

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	col := int(first.Weekday())
	b.WriteString(strings.Repeat("    ", col))

	for day := 1; day <= daysInMonth; day++ {
		cell := fmt.Sprintf("%3d", day)
		switch {
		case today.Year() == year && today.Month() == month && today.Day() == day:
			cell = todayStyle.Render(cell)
		case eventDays[day]:
			cell = eventStyle.Render(cell)
		default:
			cell = dayStyle.Render(cell)
		}
		b.WriteString(cell + " ")

		col++
		if col == 7 {
			b.WriteString("\n")
			col = 0
		}
	}
	if col != 0 {
		b.WriteString("\n")
	}

	return b.String()
}
