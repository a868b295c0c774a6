package model

import "fmt"

// Frequency tags a recurring amount with how often it repeats.
// Bills use every value except semi-monthly; semi-monthly only
// appears as a pay frequency.
type Frequency string

const (
	FreqWeekly      Frequency = "weekly"
	FreqBiWeekly    Frequency = "bi-weekly"
	FreqSemiMonthly Frequency = "semi-monthly"
	FreqMonthly     Frequency = "monthly"
	FreqQuarterly   Frequency = "quarterly"
	FreqAnnual      Frequency = "annual"
)

// ParseFrequency converts a stored tag into a Frequency, rejecting
// anything outside the closed set so data-entry bugs surface early.
func ParseFrequency(s string) (Frequency, error) {
	switch Frequency(s) {
	case FreqWeekly, FreqBiWeekly, FreqSemiMonthly, FreqMonthly, FreqQuarterly, FreqAnnual:
		return Frequency(s), nil
	}
	return "", fmt.Errorf("unknown frequency %q", s)
}

// Valid reports whether f is one of the recognized frequencies.
func (f Frequency) Valid() bool {
	_, err := ParseFrequency(string(f))
	return err == nil
}

// ValidForBill reports whether f can recur on a bill. Semi-monthly is a
// pay schedule only; a bill has no defined semi-monthly stepping rule.
func (f Frequency) ValidForBill() bool {
	return f.Valid() && f != FreqSemiMonthly
}

// ParseBillFrequency converts a stored tag into a bill frequency,
// additionally rejecting semi-monthly.
func ParseBillFrequency(s string) (Frequency, error) {
	f, err := ParseFrequency(s)
	if err != nil {
		return "", err
	}
	if !f.ValidForBill() {
		return "", fmt.Errorf("frequency %q is not valid for bills", s)
	}
	return f, nil
}

// AccountCategory classifies the purpose of a budget account.
type AccountCategory string

const (
	CategoryTithing  AccountCategory = "tithing"
	CategorySavings  AccountCategory = "savings"
	CategoryBills    AccountCategory = "bills"
	CategoryExpenses AccountCategory = "expenses"
	CategoryDebt     AccountCategory = "debt"
)

// ParseAccountCategory converts a stored label into an AccountCategory.
func ParseAccountCategory(s string) (AccountCategory, error) {
	switch AccountCategory(s) {
	case CategoryTithing, CategorySavings, CategoryBills, CategoryExpenses, CategoryDebt:
		return AccountCategory(s), nil
	}
	return "", fmt.Errorf("unknown account category %q", s)
}

// BillStatus tracks whether a bill's payments are up to date.
type BillStatus string

const (
	BillCurrent BillStatus = "current"
	BillBehind  BillStatus = "behind"
	BillAhead   BillStatus = "ahead"
)

// ParseBillStatus converts a stored label into a BillStatus.
func ParseBillStatus(s string) (BillStatus, error) {
	switch BillStatus(s) {
	case BillCurrent, BillBehind, BillAhead:
		return BillStatus(s), nil
	}
	return "", fmt.Errorf("unknown bill status %q", s)
}

// DebtStrategy names a payoff ordering policy.
type DebtStrategy string

const (
	// StrategySnowball targets the smallest balance first.
	StrategySnowball DebtStrategy = "snowball"
	// StrategyAvalanche targets the highest interest rate first.
	StrategyAvalanche DebtStrategy = "avalanche"
)

// ParseDebtStrategy converts a user-supplied name into a DebtStrategy.
func ParseDebtStrategy(s string) (DebtStrategy, error) {
	switch DebtStrategy(s) {
	case StrategySnowball, StrategyAvalanche:
		return DebtStrategy(s), nil
	}
	return "", fmt.Errorf("unknown debt strategy %q", s)
}

// EventType classifies a calendar event.
type EventType string

const (
	EventPaycheck      EventType = "paycheck"
	EventBill          EventType = "bill"
	EventGoalMilestone EventType = "goal_milestone"
	EventDebtPayment   EventType = "debt_payment"
)

// EventStatus tracks where a calendar event sits relative to today.
type EventStatus string

const (
	StatusUpcoming  EventStatus = "upcoming"
	StatusPaid      EventStatus = "paid"
	StatusOverdue   EventStatus = "overdue"
	StatusCompleted EventStatus = "completed"
)

// Severity ranks a budget recommendation.
type Severity string

const (
	SeverityError      Severity = "error"
	SeverityWarning    Severity = "warning"
	SeveritySuggestion Severity = "suggestion"
)
