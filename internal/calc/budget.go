package calc

import (
	"fmt"
	"time"

	"github.com/BGirlGlowHub/steward/internal/model"
)

// Summarize computes the FinancialSummary for the month containing asOf.
// Bill amounts are summed raw: in this accounting bills are already
// monthly-denominated, unlike the per-account outflow projection which
// normalizes each bill's own frequency.
func Summarize(accounts []model.Account, bills []model.Bill, s model.Settings, asOf time.Time) (model.FinancialSummary, error) {
	income, err := CurrentMonthIncome(s.PaycheckAmount, s.PayFrequency, s.PayDates, asOf)
	if err != nil {
		return model.FinancialSummary{}, fmt.Errorf("computing monthly income: %w", err)
	}

	var sum model.FinancialSummary
	sum.MonthlyIncome = income

	for _, b := range bills {
		if b.Active {
			sum.TotalBills += b.Amount
		}
	}

	var savingsPct float64
	for _, a := range accounts {
		if !a.Active {
			continue
		}
		sum.AllocationPercent += a.Percentage
		if a.Category == model.CategorySavings {
			savingsPct += a.Percentage
		}
	}

	sum.TotalAllocated = income * sum.AllocationPercent / 100
	if s.TithingEnabled {
		sum.TithingAmount = income * s.TithingPercent / 100
	}
	sum.SavingsAmount = income * savingsPct / 100
	sum.Remaining = income - sum.TotalAllocated

	return sum, nil
}

// Recommend produces qualitative findings about the allocation. The
// global allocation checks come first, then one warning per account whose
// bill utilization exceeds 90%. Checks are independent; several can fire
// at once.
func Recommend(accounts []model.Account, bills []model.Bill, s model.Settings, asOf time.Time) ([]model.Recommendation, error) {
	var total float64
	for _, a := range accounts {
		if a.Active {
			total += a.Percentage
		}
	}

	var recs []model.Recommendation
	switch {
	case total > 100:
		recs = append(recs, model.Recommendation{
			Severity: model.SeverityError,
			Message:  fmt.Sprintf("Accounts are over-allocated by %.2f%% of each paycheck", total-100),
			Action:   "Reduce account percentages until the total is at or below 100%",
		})
	case total > 95:
		recs = append(recs, model.Recommendation{
			Severity: model.SeverityWarning,
			Message:  fmt.Sprintf("Allocation of %.2f%% leaves little margin", total),
			Action:   "Consider leaving a 5-10% buffer for irregular expenses",
		})
	case total < 80:
		recs = append(recs, model.Recommendation{
			Severity: model.SeveritySuggestion,
			Message:  fmt.Sprintf("Only %.2f%% of each paycheck is allocated", total),
			Action:   fmt.Sprintf("Direct the unallocated %.2f%% toward savings or debt payoff", 100-total),
		})
	}

	balances, err := ProjectBalances(accounts, bills, s, asOf)
	if err != nil {
		return nil, err
	}
	for _, b := range balances {
		if b.Utilization > 90 {
			recs = append(recs, model.Recommendation{
				Severity: model.SeverityWarning,
				Message:  fmt.Sprintf("%s spends %.2f%% of its inflow on bills", b.Name, b.Utilization),
				Action:   "Move some bills to another account or raise this account's percentage",
			})
		}
	}

	return recs, nil
}

// ValidateBalance is the single boolean gate over allocation percentages:
// invalid only above 100%. 95-100% passes but carries a caution message.
func ValidateBalance(accounts []model.Account) model.BalanceCheck {
	var total float64
	for _, a := range accounts {
		if a.Active {
			total += a.Percentage
		}
	}

	check := model.BalanceCheck{Valid: total <= 100, TotalPercentage: total}
	switch {
	case total > 100:
		check.Message = fmt.Sprintf("Allocations total %.2f%%, which exceeds your paycheck", total)
	case total > 95:
		check.Message = fmt.Sprintf("Allocations total %.2f%%; a small buffer is recommended", total)
	default:
		check.Message = fmt.Sprintf("Allocations total %.2f%%", total)
	}
	return check
}
