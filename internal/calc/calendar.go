package calc

import (
	"fmt"
	"sort"
	"time"

	"github.com/BGirlGlowHub/steward/internal/model"
)

// DefaultHorizonMonths is the forward window for calendar synthesis.
const DefaultHorizonMonths = 3

// Synthesize expands recurring bills, pay dates, goal deadlines, and
// debt minimums into discrete dated events over the horizon, sorted
// ascending by date. Events sharing a date keep generation order:
// paychecks, then bills, then goals, then debts.
//
// Debt events are the scheduled minimum payments and run through the
// whole horizon even when a payoff simulation would extinguish the debt
// sooner; the calendar models the schedule, not simulated balances.
func Synthesize(bills []model.Bill, payDates []time.Time, goals []model.SavingsGoal, debts []model.Debt, asOf time.Time, horizonMonths int) ([]model.CalendarEvent, error) {
	if horizonMonths <= 0 {
		horizonMonths = DefaultHorizonMonths
	}
	horizon := asOf.AddDate(0, horizonMonths, 0)

	var events []model.CalendarEvent

	for _, d := range payDates {
		if d.Before(asOf) || d.After(horizon) {
			continue
		}
		events = append(events, model.CalendarEvent{
			Key:    model.EventKey{Kind: model.EventPaycheck, EntityID: "paycheck", Date: d},
			Title:  "Paycheck",
			Date:   d,
			Type:   model.EventPaycheck,
			Status: dateStatus(d, asOf),
		})
	}

	for _, b := range bills {
		if !b.Active {
			continue
		}
		for occ := b.DueDate; !occ.After(horizon); {
			amount := b.Amount
			events = append(events, model.CalendarEvent{
				Key:    model.EventKey{Kind: model.EventBill, EntityID: b.ID, Date: occ},
				Title:  b.Name,
				Date:   occ,
				Type:   model.EventBill,
				Amount: &amount,
				Status: dateStatus(occ, asOf),
			})

			next, err := nextOccurrence(occ, b.Frequency)
			if err != nil {
				return nil, fmt.Errorf("bill %q: %w", b.Name, err)
			}
			occ = next
		}
	}

	for _, g := range goals {
		if !g.Active || g.TargetDate.After(horizon) {
			continue
		}

		status := model.StatusUpcoming
		switch {
		case g.TargetAmount > 0 && g.CurrentAmount/g.TargetAmount >= 1:
			status = model.StatusCompleted
		case g.TargetDate.Before(asOf):
			status = model.StatusOverdue
		}
		events = append(events, model.CalendarEvent{
			Key:    model.EventKey{Kind: model.EventGoalMilestone, EntityID: g.ID, Date: g.TargetDate},
			Title:  g.Name + " target",
			Date:   g.TargetDate,
			Type:   model.EventGoalMilestone,
			Status: status,
		})
	}

	for _, d := range debts {
		if !d.Active {
			continue
		}
		for occ := d.DueDate; !occ.After(horizon); occ = occ.AddDate(0, 1, 0) {
			amount := d.MinimumPayment
			events = append(events, model.CalendarEvent{
				Key:    model.EventKey{Kind: model.EventDebtPayment, EntityID: d.ID, Date: occ},
				Title:  d.Name + " payment",
				Date:   occ,
				Type:   model.EventDebtPayment,
				Amount: &amount,
				Status: dateStatus(occ, asOf),
			})
		}
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date.Before(events[j].Date)
	})
	return events, nil
}

func dateStatus(d, asOf time.Time) model.EventStatus {
	if d.Before(asOf) {
		return model.StatusPaid
	}
	return model.StatusUpcoming
}

// nextOccurrence steps a bill due date forward one recurrence interval.
// Weekly intervals step by days, the rest by calendar units.
func nextOccurrence(d time.Time, freq model.Frequency) (time.Time, error) {
	switch freq {
	case model.FreqWeekly:
		return d.AddDate(0, 0, 7), nil
	case model.FreqBiWeekly:
		return d.AddDate(0, 0, 14), nil
	case model.FreqMonthly:
		return d.AddDate(0, 1, 0), nil
	case model.FreqQuarterly:
		return d.AddDate(0, 3, 0), nil
	case model.FreqAnnual:
		return d.AddDate(1, 0, 0), nil
	}
	return time.Time{}, &InvalidFrequencyError{Frequency: string(freq)}
}
