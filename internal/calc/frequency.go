// Package calc implements the budgeting calculation engine: frequency
// normalization, budget allocation, per-account cash-flow projection,
// debt payoff simulation, goal progress, and calendar synthesis. Every
// function is pure over immutable snapshots; storage and presentation
// live elsewhere.
package calc

import (
	"fmt"
	"time"

	"github.com/BGirlGlowHub/steward/internal/model"
)

// InvalidFrequencyError reports an amount tagged with a frequency outside
// the closed set. Unknown tags fail loudly instead of defaulting so bad
// data can't silently skew monthly totals.
type InvalidFrequencyError struct {
	Frequency string
}

func (e *InvalidFrequencyError) Error() string {
	return fmt.Sprintf("invalid frequency %q", e.Frequency)
}

// NormalizeToMonthly converts an amount with the given recurrence
// frequency into its monthly-equivalent value.
func NormalizeToMonthly(amount float64, freq model.Frequency) (float64, error) {
	switch freq {
	case model.FreqWeekly:
		return amount * 52 / 12, nil
	case model.FreqBiWeekly:
		return amount * 26 / 12, nil
	case model.FreqSemiMonthly:
		return amount * 2, nil
	case model.FreqMonthly:
		return amount, nil
	case model.FreqQuarterly:
		return amount / 3, nil
	case model.FreqAnnual:
		return amount / 12, nil
	}
	return 0, &InvalidFrequencyError{Frequency: string(freq)}
}

// CurrentMonthIncome computes income for the calendar month containing
// asOf. When explicit pay dates are known it counts the ones landing in
// that month exactly (bi-weekly pay yields 2 or 3 paychecks in a month
// unevenly); otherwise it falls back to the smooth frequency average.
func CurrentMonthIncome(paycheck float64, freq model.Frequency, payDates []time.Time, asOf time.Time) (float64, error) {
	if len(payDates) == 0 {
		return NormalizeToMonthly(paycheck, freq)
	}

	count := 0
	for _, d := range payDates {
		if d.Year() == asOf.Year() && d.Month() == asOf.Month() {
			count++
		}
	}
	return paycheck * float64(count), nil
}

// BillPercentage reports a monthly bill total as a percentage of a
// single paycheck. The denominator is the raw per-paycheck amount, not
// normalized monthly income: the ratio answers "how much of one check
// does this bill consume". Returns 0 when the paycheck is zero or
// negative rather than propagating an infinity.
func BillPercentage(monthlyBill, paycheck float64) float64 {
	if paycheck <= 0 {
		return 0
	}
	return monthlyBill / paycheck * 100
}
