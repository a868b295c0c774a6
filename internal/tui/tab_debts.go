package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/BGirlGlowHub/steward/internal/cli"
	"github.com/BGirlGlowHub/steward/internal/tui/components"
	"github.com/BGirlGlowHub/steward/internal/tui/theme"
)

func (a App) renderDebtsTab(cw int) string {
	t := theme.Active
	muted := lipgloss.NewStyle().Foreground(t.TextMuted)
	value := lipgloss.NewStyle().Foreground(t.TextPrimary)

	var totalBalance float64
	activeDebts := 0
	for _, d := range a.ds.Debts {
		if d.Active {
			totalBalance += d.Balance
			activeDebts++
		}
	}

	var b strings.Builder
	cards := []struct{ Label, Value, Note string }{
		{"Total Debt", cli.FormatCurrency(totalBalance), fmt.Sprintf("%d debts", activeDebts)},
		{"Extra Payment", cli.FormatCurrency(a.extraPayment), "+/- to adjust"},
		{"Snowball", cli.FormatMonths(a.snowball.PayoffMonths), cli.FormatCurrency(a.snowball.TotalInterest) + " interest"},
		{"Avalanche", cli.FormatMonths(a.avalanche.PayoffMonths), cli.FormatCurrency(a.avalanche.TotalInterest) + " interest"},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	if activeDebts == 0 {
		b.WriteString(components.ContentCard("Debts", muted.Render("No active debts. Well done!"), cw))
		b.WriteString("\n")
		return b.String()
	}

	var list strings.Builder
	for _, d := range a.ds.Debts {
		if !d.Active {
			continue
		}
		list.WriteString(fmt.Sprintf("%s  %s at %s  min %s\n",
			value.Render(fmt.Sprintf("%-20s", d.Name)),
			cli.FormatCurrency(d.Balance),
			cli.FormatPercent(d.InterestRate),
			cli.FormatCurrency(d.MinimumPayment),
		))
	}
	b.WriteString(components.ContentCard("Debts", strings.TrimRight(list.String(), "\n"), cw))
	b.WriteString("\n")

	// Strategy comparison: which plan wins on interest.
	saved := a.snowball.TotalInterest - a.avalanche.TotalInterest
	comparison := fmt.Sprintf("Avalanche saves %s in interest over snowball with %s extra/month.",
		cli.FormatCurrency(saved), cli.FormatCurrency(a.extraPayment))
	if saved < 0.01 {
		comparison = "Both strategies cost the same here; pick snowball for quicker wins."
	}
	b.WriteString(components.ContentCard("Strategy", muted.Render(comparison), cw))
	b.WriteString("\n")

	// First-month payment split under the avalanche plan.
	if len(a.avalanche.MonthlyPayments) > 0 {
		var pays strings.Builder
		for _, p := range a.avalanche.MonthlyPayments {
			pays.WriteString(fmt.Sprintf("%s  %s\n",
				value.Render(fmt.Sprintf("%-20s", p.Name)),
				cli.FormatCurrency(p.Payment)))
		}
		b.WriteString(components.ContentCard("This Month (avalanche)",
			strings.TrimRight(pays.String(), "\n"), cw))
		b.WriteString("\n")
	}

	return b.String()
}
