package model

import (
	"fmt"
	"time"
)

// FinancialSummary is the month-at-a-glance budget view.
type FinancialSummary struct {
	MonthlyIncome     float64
	TotalBills        float64 // sum of active bills' raw amounts
	TotalAllocated    float64
	TithingAmount     float64
	SavingsAmount     float64
	Remaining         float64 // income minus allocated
	AllocationPercent float64 // sum of active account percentages
}

// AccountBalanceInfo is the projected month of cash flow for one account.
type AccountBalanceInfo struct {
	AccountID      string
	Name           string
	Category       AccountCategory
	MonthlyInflow  float64
	MonthlyOutflow float64
	EndingBalance  float64
	Utilization    float64 // outflow/inflow as a percentage, 0 when inflow is 0
}

// Recommendation is a qualitative budget finding.
type Recommendation struct {
	Severity Severity
	Message  string
	Action   string
}

// BalanceCheck is the narrow boolean gate over allocation percentages.
type BalanceCheck struct {
	Valid           bool
	TotalPercentage float64
	Message         string
}

// DebtPayment is one debt's payment amount in the first simulated month.
type DebtPayment struct {
	DebtID  string
	Name    string
	Payment float64
}

// TimelineEntry records one debt's remaining balance after one simulated
// month. Every active debt gets an entry every month.
type TimelineEntry struct {
	Month   int
	DebtID  string
	Balance float64
}

// PayoffPlan is the result of simulating one payoff strategy.
type PayoffPlan struct {
	Strategy        DebtStrategy
	TotalInterest   float64
	PayoffMonths    int
	MonthlyPayments []DebtPayment
	Timeline        []TimelineEntry
}

// PaymentImpact is the what-if effect of adding an extra payment to a
// single debt's minimum.
type PaymentImpact struct {
	InterestSaved   float64
	MonthsSaved     int
	NewPayoffMonths int
}

// GoalProgress is the projected state of one savings goal.
type GoalProgress struct {
	Percentage      float64 // capped at 100
	MonthsRemaining int
	OnTrack         bool
}

// EventKey uniquely identifies one occurrence of a recurring financial
// event: the entity kind, the entity it derives from, and the date it
// lands on.
type EventKey struct {
	Kind     EventType
	EntityID string
	Date     time.Time
}

// String renders the key as a stable identifier.
func (k EventKey) String() string {
	return fmt.Sprintf("%s:%s:%s", k.Kind, k.EntityID, k.Date.Format("2006-01-02"))
}

// CalendarEvent is one dated occurrence on the financial calendar.
// Amount is nil for events with no money attached (goal milestones).
type CalendarEvent struct {
	Key    EventKey
	Title  string
	Date   time.Time
	Type   EventType
	Amount *float64
	Status EventStatus
}
