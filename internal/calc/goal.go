package calc

import (
	"math"
	"time"

	"github.com/BGirlGlowHub/steward/internal/model"
)

// Progress projects a savings goal as of the given date. Months
// remaining is a day-count approximation (days/30, ceiling), not exact
// calendar arithmetic, matching how contributions are planned. A goal
// whose deadline has passed with the target unmet is not on track; a
// fully funded goal is on track regardless of contribution rate.
func Progress(goal model.SavingsGoal, asOf time.Time) model.GoalProgress {
	var p model.GoalProgress

	if goal.TargetAmount > 0 {
		p.Percentage = goal.CurrentAmount / goal.TargetAmount * 100
	} else {
		// Nothing left to save toward.
		p.Percentage = 100
	}
	if p.Percentage > 100 {
		p.Percentage = 100
	}

	days := goal.TargetDate.Sub(asOf).Hours() / 24
	months := math.Ceil(days / 30)
	if months < 0 {
		months = 0
	}
	p.MonthsRemaining = int(months)

	if p.Percentage >= 100 {
		p.OnTrack = true
		return p
	}
	if p.MonthsRemaining == 0 {
		return p
	}

	required := (goal.TargetAmount - goal.CurrentAmount) / float64(p.MonthsRemaining)
	p.OnTrack = goal.MonthlyContribution >= required
	return p
}
