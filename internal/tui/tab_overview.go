package tui

import (
	"fmt"
	"strings"

	"github.com/BGirlGlowHub/steward/internal/cli"
	"github.com/BGirlGlowHub/steward/internal/tui/components"
)

func (a App) renderOverviewTab(cw int) string {
	var b strings.Builder

	cards := []struct{ Label, Value, Note string }{
		{"Income", cli.FormatCurrency(a.summary.MonthlyIncome), "this month"},
		{"Allocated", cli.FormatCurrency(a.summary.TotalAllocated), cli.FormatPercent(a.summary.AllocationPercent)},
		{"Bills", cli.FormatCurrency(a.summary.TotalBills), fmt.Sprintf("%d active", countActiveBills(a))},
		{"Remaining", cli.FormatCurrency(a.summary.Remaining), "unallocated"},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Per-account utilization bars.
	if len(a.balances) > 0 {
		labelW := 0
		for _, bal := range a.balances {
			if len(bal.Name) > labelW {
				labelW = len(bal.Name)
			}
		}
		barW := components.CardInnerWidth(cw) - labelW - 10
		if barW < 10 {
			barW = 10
		}

		var bars strings.Builder
		for _, bal := range a.balances {
			bars.WriteString(components.LabeledBar(bal.Name, bal.Utilization, labelW, barW))
			bars.WriteString("\n")
		}
		b.WriteString(components.ContentCard("Account Utilization", strings.TrimRight(bars.String(), "\n"), cw))
		b.WriteString("\n")
	}

	// Recommendations.
	b.WriteString(components.ContentCard("Recommendations",
		strings.TrimRight(cli.RenderRecommendations(a.recs), "\n"), cw))
	b.WriteString("\n")

	return b.String()
}

func countActiveBills(a App) int {
	n := 0
	for _, bill := range a.ds.Bills {
		if bill.Active {
			n++
		}
	}
	return n
}
