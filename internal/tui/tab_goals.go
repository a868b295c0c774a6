package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/BGirlGlowHub/steward/internal/calc"
	"github.com/BGirlGlowHub/steward/internal/cli"
	"github.com/BGirlGlowHub/steward/internal/tui/components"
	"github.com/BGirlGlowHub/steward/internal/tui/theme"
)

func (a App) renderGoalsTab(cw int) string {
	t := theme.Active
	muted := lipgloss.NewStyle().Foreground(t.TextMuted)
	value := lipgloss.NewStyle().Foreground(t.TextPrimary)
	good := lipgloss.NewStyle().Foreground(t.Green)
	bad := lipgloss.NewStyle().Foreground(t.Red)

	var b strings.Builder
	shown := 0
	barW := components.CardInnerWidth(cw) - 8
	if barW < 10 {
		barW = 10
	}

	for _, g := range a.ds.Goals {
		if !g.Active {
			continue
		}
		shown++

		p := calc.Progress(g, a.asOf)
		track := good.Render("on track")
		if !p.OnTrack {
			track = bad.Render("off track")
		}

		var card strings.Builder
		card.WriteString(components.ProgressBar(p.Percentage/100, barW))
		card.WriteString("\n")
		card.WriteString(fmt.Sprintf("%s of %s · %s left · %s\n",
			value.Render(cli.FormatCurrency(g.CurrentAmount)),
			value.Render(cli.FormatCurrency(g.TargetAmount)),
			muted.Render(cli.FormatMonths(p.MonthsRemaining)),
			track,
		))
		card.WriteString(muted.Render(fmt.Sprintf("contributing %s/month · due %s",
			cli.FormatCurrency(g.MonthlyContribution), cli.FormatDate(g.TargetDate))))

		b.WriteString(components.ContentCard(g.Name, card.String(), cw))
		b.WriteString("\n")
	}

	if shown == 0 {
		b.WriteString(components.ContentCard("Goals",
			muted.Render("No active savings goals. Add one with: steward goals add"), cw))
		b.WriteString("\n")
	}

	return b.String()
}
