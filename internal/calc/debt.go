package calc

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/BGirlGlowHub/steward/internal/model"
)

// ErrUnpayableDebt marks a debt whose payment does not outpace its
// monthly interest accrual: the balance never shrinks, the annuity
// formula is undefined, and a naive simulation would never terminate.
var ErrUnpayableDebt = errors.New("payment does not cover monthly interest")

// maxSimulationMonths bounds the payoff loop (100 years). Hitting it
// means some debt's payment cannot outrun its interest.
const maxSimulationMonths = 1200

// Simulate runs a month-by-month amortization of the active debts under
// the given strategy, with the extra payment pooled onto the first
// unpaid debt in strategy order. The order is locked in up front from
// the original balances and rates; ties keep input order. When a debt is
// extinguished its minimum payment joins the pool for subsequent months.
func Simulate(debts []model.Debt, extraPayment float64, strategy model.DebtStrategy) (model.PayoffPlan, error) {
	plan := model.PayoffPlan{Strategy: strategy}

	var order []model.Debt
	for _, d := range debts {
		if !d.Active || d.Balance <= 0 {
			continue
		}
		if d.MinimumPayment <= 0 {
			return plan, fmt.Errorf("debt %q has no minimum payment: %w", d.Name, ErrUnpayableDebt)
		}
		order = append(order, d)
	}
	if len(order) == 0 {
		return plan, nil
	}

	switch strategy {
	case model.StrategySnowball:
		sort.SliceStable(order, func(i, j int) bool { return order[i].Balance < order[j].Balance })
	case model.StrategyAvalanche:
		sort.SliceStable(order, func(i, j int) bool { return order[i].InterestRate > order[j].InterestRate })
	default:
		return plan, fmt.Errorf("unknown debt strategy %q", strategy)
	}

	balances := make([]float64, len(order))
	for i, d := range order {
		balances[i] = d.Balance
	}

	freed := 0.0
	month := 0
	for {
		remaining := false
		for _, b := range balances {
			if b > 0 {
				remaining = true
				break
			}
		}
		if !remaining {
			break
		}

		month++
		if month > maxSimulationMonths {
			return plan, fmt.Errorf("payoff exceeds %d months: %w", maxSimulationMonths, ErrUnpayableDebt)
		}

		target := -1
		for i, b := range balances {
			if b > 0 {
				target = i
				break
			}
		}

		freedThisMonth := 0.0
		for i, d := range order {
			if balances[i] <= 0 {
				// Keep the balance history complete for paid-off debts.
				plan.Timeline = append(plan.Timeline, model.TimelineEntry{Month: month, DebtID: d.ID, Balance: 0})
				continue
			}

			interest := balances[i] * (d.InterestRate / 100) / 12
			plan.TotalInterest += interest

			payment := d.MinimumPayment
			if i == target {
				payment += extraPayment + freed
			}
			if payment > balances[i]+interest {
				payment = balances[i] + interest
			}

			newBalance := balances[i] + interest - payment
			if newBalance < 0 {
				newBalance = 0
			}
			balances[i] = newBalance
			if newBalance == 0 {
				freedThisMonth += d.MinimumPayment
			}

			if month == 1 {
				plan.MonthlyPayments = append(plan.MonthlyPayments, model.DebtPayment{
					DebtID:  d.ID,
					Name:    d.Name,
					Payment: payment,
				})
			}
			plan.Timeline = append(plan.Timeline, model.TimelineEntry{Month: month, DebtID: d.ID, Balance: newBalance})
		}
		freed += freedThisMonth
	}

	plan.PayoffMonths = month
	return plan, nil
}

// PayoffMonths is the closed-form single-debt payoff estimate using the
// annuity formula. It reports ErrUnpayableDebt when the payment cannot
// beat the monthly interest, instead of letting the log blow up.
func PayoffMonths(balance, payment, annualRate float64) (int, error) {
	if balance <= 0 {
		return 0, nil
	}
	if payment <= 0 {
		return 0, fmt.Errorf("payment %.2f: %w", payment, ErrUnpayableDebt)
	}

	if annualRate == 0 {
		return int(math.Ceil(balance / payment)), nil
	}

	r := annualRate / 100 / 12
	if payment <= balance*r {
		return 0, fmt.Errorf("payment %.2f vs monthly interest %.2f: %w", payment, balance*r, ErrUnpayableDebt)
	}

	months := -math.Log(1-balance*r/payment) / math.Log(1+r)
	return int(math.Ceil(months)), nil
}

// TotalInterest estimates the interest paid over the closed-form payoff:
// total payments less principal. A non-simulated estimate; the final
// partial payment is counted in full.
func TotalInterest(balance, payment, annualRate float64) (float64, error) {
	months, err := PayoffMonths(balance, payment, annualRate)
	if err != nil {
		return 0, err
	}

	interest := payment*float64(months) - balance
	if interest < 0 {
		interest = 0
	}
	return interest, nil
}

// ExtraPaymentImpact previews the effect of adding extra to one debt's
// minimum payment, comparing the closed-form payoff with and without it.
func ExtraPaymentImpact(debt model.Debt, extra float64) (model.PaymentImpact, error) {
	baseMonths, err := PayoffMonths(debt.Balance, debt.MinimumPayment, debt.InterestRate)
	if err != nil {
		return model.PaymentImpact{}, fmt.Errorf("debt %q: %w", debt.Name, err)
	}
	baseInterest, err := TotalInterest(debt.Balance, debt.MinimumPayment, debt.InterestRate)
	if err != nil {
		return model.PaymentImpact{}, fmt.Errorf("debt %q: %w", debt.Name, err)
	}

	newMonths, err := PayoffMonths(debt.Balance, debt.MinimumPayment+extra, debt.InterestRate)
	if err != nil {
		return model.PaymentImpact{}, fmt.Errorf("debt %q: %w", debt.Name, err)
	}
	newInterest, err := TotalInterest(debt.Balance, debt.MinimumPayment+extra, debt.InterestRate)
	if err != nil {
		return model.PaymentImpact{}, fmt.Errorf("debt %q: %w", debt.Name, err)
	}

	return model.PaymentImpact{
		InterestSaved:   baseInterest - newInterest,
		MonthsSaved:     baseMonths - newMonths,
		NewPayoffMonths: newMonths,
	}, nil
}
