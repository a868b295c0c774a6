package model

import "time"

// Account is a purpose-driven bucket that receives a percentage of each
// paycheck. Percentages are validated against 100 across active accounts
// but never auto-normalized.
type Account struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Category   AccountCategory `json:"category"`
	Percentage float64         `json:"percentage"` // share of each paycheck, 0-100
	Balance    float64         `json:"balance"`
	Active     bool            `json:"active"`
}

// Bill is a recurring obligation. Amount carries the meaning implied by
// Frequency; the calculation engine normalizes it to monthly terms where
// it aggregates across bills.
type Bill struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Amount    float64    `json:"amount"`
	Frequency Frequency  `json:"frequency"`
	DueDate   time.Time  `json:"due_date"`
	AccountID string     `json:"account_id,omitempty"` // optional funding account
	Active    bool       `json:"active"`
	Status    BillStatus `json:"status"`
	Category  string     `json:"category,omitempty"` // free-text grouping label
}

// Debt is a liability amortized by monthly minimum payments.
type Debt struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Balance        float64   `json:"balance"`
	MinimumPayment float64   `json:"minimum_payment"`
	InterestRate   float64   `json:"interest_rate"` // annual, percent
	AccountID      string    `json:"account_id,omitempty"`
	DueDate        time.Time `json:"due_date"`
	Active         bool      `json:"active"`
}

// SavingsGoal is a target amount with a deadline and a planned monthly
// contribution. Priority runs 1 (highest) to 5 (lowest).
type SavingsGoal struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	TargetAmount        float64   `json:"target_amount"`
	CurrentAmount       float64   `json:"current_amount"`
	TargetDate          time.Time `json:"target_date"`
	MonthlyContribution float64   `json:"monthly_contribution"`
	Priority            int       `json:"priority"`
	AccountID           string    `json:"account_id,omitempty"`
	Active              bool      `json:"active"`
}

// Settings holds the stewardship configuration: paycheck size and
// schedule, tithing, and the emergency-fund share. PayDates, when
// present, is the ground truth for how many paychecks land in a given
// month and overrides frequency-based averaging.
type Settings struct {
	PaycheckAmount   float64     `json:"paycheck_amount"` // per paycheck, not monthly
	PayFrequency     Frequency   `json:"pay_frequency"`
	TithingEnabled   bool        `json:"tithing_enabled"`
	TithingPercent   float64     `json:"tithing_percent"`
	EmergencyPercent float64     `json:"emergency_percent"`
	PayDates         []time.Time `json:"pay_dates,omitempty"`
}

// Dataset is the wholesale snapshot the storage layer hands to the
// calculation engine. The engine never mutates it.
type Dataset struct {
	Accounts []Account     `json:"accounts"`
	Bills    []Bill        `json:"bills"`
	Debts    []Debt        `json:"debts"`
	Goals    []SavingsGoal `json:"goals"`
	Settings Settings      `json:"settings"`
}

// ActiveAccounts returns the active subset, preserving order.
func (d Dataset) ActiveAccounts() []Account {
	var out []Account
	for _, a := range d.Accounts {
		if a.Active {
			out = append(out, a)
		}
	}
	return out
}
