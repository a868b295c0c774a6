package calc

import (
	"fmt"
	"time"

	"github.com/BGirlGlowHub/steward/internal/model"
)

// ProjectBalances computes one month of cash flow per active account:
// payroll inflow at the account's percentage, outflow from its linked
// active bills normalized to monthly terms, the resulting ending balance,
// and utilization. Entries are independent; an account funding another
// account's bill is expressed only through the bill's linkage.
func ProjectBalances(accounts []model.Account, bills []model.Bill, s model.Settings, asOf time.Time) ([]model.AccountBalanceInfo, error) {
	income, err := CurrentMonthIncome(s.PaycheckAmount, s.PayFrequency, s.PayDates, asOf)
	if err != nil {
		return nil, fmt.Errorf("computing monthly income: %w", err)
	}

	var infos []model.AccountBalanceInfo
	for _, a := range accounts {
		if !a.Active {
			continue
		}

		inflow := income * a.Percentage / 100

		var outflow float64
		for _, b := range bills {
			if !b.Active || b.AccountID != a.ID {
				continue
			}
			monthly, err := NormalizeToMonthly(b.Amount, b.Frequency)
			if err != nil {
				return nil, fmt.Errorf("bill %q: %w", b.Name, err)
			}
			outflow += monthly
		}

		utilization := 0.0
		if inflow > 0 {
			utilization = outflow / inflow * 100
		}

		infos = append(infos, model.AccountBalanceInfo{
			AccountID:      a.ID,
			Name:           a.Name,
			Category:       a.Category,
			MonthlyInflow:  inflow,
			MonthlyOutflow: outflow,
			EndingBalance:  a.Balance + inflow - outflow,
			Utilization:    utilization,
		})
	}

	return infos, nil
}
