package calc

import (
	"errors"
	"testing"

	"github.com/BGirlGlowHub/steward/internal/model"
)

func twoDebts() []model.Debt {
	return []model.Debt{
		{ID: "d1", Name: "Card A", Balance: 500, MinimumPayment: 50, InterestRate: 5, Active: true},
		{ID: "d2", Name: "Card B", Balance: 5000, MinimumPayment: 150, InterestRate: 20, Active: true},
	}
}

func TestSimulate_SnowballTargetsSmallestBalance(t *testing.T) {
	plan, err := Simulate(twoDebts(), 100, model.StrategySnowball)
	if err != nil {
		t.Fatal(err)
	}
	if plan.Strategy != model.StrategySnowball {
		t.Errorf("strategy = %s", plan.Strategy)
	}
	if len(plan.MonthlyPayments) != 2 {
		t.Fatalf("got %d first-month payments, want 2", len(plan.MonthlyPayments))
	}
	// Smallest balance is first in order and receives the pooled extra.
	if plan.MonthlyPayments[0].DebtID != "d1" {
		t.Errorf("snowball target = %s, want d1 (smallest balance)", plan.MonthlyPayments[0].DebtID)
	}
	// The target takes its minimum plus the whole pooled extra; the
	// other debt pays its minimum only.
	if !almostEqual(plan.MonthlyPayments[0].Payment, 50+100) {
		t.Errorf("target payment = %v, want minimum+extra = 150", plan.MonthlyPayments[0].Payment)
	}
	if !almostEqual(plan.MonthlyPayments[1].Payment, 150) {
		t.Errorf("non-target payment = %v, want its minimum 150", plan.MonthlyPayments[1].Payment)
	}
}

func TestSimulate_AvalancheTargetsHighestRate(t *testing.T) {
	plan, err := Simulate(twoDebts(), 100, model.StrategyAvalanche)
	if err != nil {
		t.Fatal(err)
	}
	if plan.MonthlyPayments[0].DebtID != "d2" {
		t.Errorf("avalanche target = %s, want d2 (highest rate)", plan.MonthlyPayments[0].DebtID)
	}
}

func TestSimulate_ZeroExtraStrategiesAgree(t *testing.T) {
	// With no extra payment the ordering never changes which dollar goes
	// where, so both strategies land on the same totals.
	snow, err := Simulate(twoDebts(), 0, model.StrategySnowball)
	if err != nil {
		t.Fatal(err)
	}
	aval, err := Simulate(twoDebts(), 0, model.StrategyAvalanche)
	if err != nil {
		t.Fatal(err)
	}
	if snow.PayoffMonths != aval.PayoffMonths {
		t.Errorf("payoff months differ: snowball %d, avalanche %d", snow.PayoffMonths, aval.PayoffMonths)
	}
	if !almostEqual(snow.TotalInterest, aval.TotalInterest) {
		t.Errorf("total interest differs: snowball %v, avalanche %v", snow.TotalInterest, aval.TotalInterest)
	}
}

func TestSimulate_AvalancheInterestNeverWorse(t *testing.T) {
	snow, err := Simulate(twoDebts(), 200, model.StrategySnowball)
	if err != nil {
		t.Fatal(err)
	}
	aval, err := Simulate(twoDebts(), 200, model.StrategyAvalanche)
	if err != nil {
		t.Fatal(err)
	}
	if aval.TotalInterest > snow.TotalInterest+1e-6 {
		t.Errorf("avalanche interest %v exceeds snowball %v", aval.TotalInterest, snow.TotalInterest)
	}
}

func TestSimulate_FreedMinimumRollsOver(t *testing.T) {
	debts := []model.Debt{
		{ID: "small", Name: "Small", Balance: 100, MinimumPayment: 60, InterestRate: 0, Active: true},
		{ID: "big", Name: "Big", Balance: 2000, MinimumPayment: 40, InterestRate: 0, Active: true},
	}
	plan, err := Simulate(debts, 0, model.StrategySnowball)
	if err != nil {
		t.Fatal(err)
	}
	// Small clears in month 2; from month 3 the big debt amortizes at
	// 40+60=100/month. 2000 - 2*40 = 1920, then 1920/100 = 20 more months.
	if plan.PayoffMonths != 22 {
		t.Errorf("payoff = %d months, want 22", plan.PayoffMonths)
	}
	if plan.TotalInterest != 0 {
		t.Errorf("zero-rate debts accrued interest: %v", plan.TotalInterest)
	}
}

func TestSimulate_TimelineCoversEveryDebtEveryMonth(t *testing.T) {
	plan, err := Simulate(twoDebts(), 100, model.StrategySnowball)
	if err != nil {
		t.Fatal(err)
	}
	if want := plan.PayoffMonths * 2; len(plan.Timeline) != want {
		t.Fatalf("timeline has %d entries, want %d", len(plan.Timeline), want)
	}
	last := plan.Timeline[len(plan.Timeline)-1]
	if last.Month != plan.PayoffMonths || last.Balance != 0 {
		t.Errorf("final timeline entry = %+v", last)
	}
}

func TestSimulate_InactiveAndPaidDebtsSkipped(t *testing.T) {
	debts := []model.Debt{
		{ID: "d1", Name: "Gone", Balance: 0, MinimumPayment: 25, Active: true},
		{ID: "d2", Name: "Frozen", Balance: 800, MinimumPayment: 25, Active: false},
	}
	plan, err := Simulate(debts, 50, model.StrategySnowball)
	if err != nil {
		t.Fatal(err)
	}
	if plan.PayoffMonths != 0 || len(plan.Timeline) != 0 {
		t.Errorf("nothing to simulate but got %+v", plan)
	}
}

func TestSimulate_UnpayableDebt(t *testing.T) {
	debts := []model.Debt{
		// $50/month against ~$55.4 of monthly interest: balance grows forever.
		{ID: "d1", Name: "Trap", Balance: 3500, MinimumPayment: 50, InterestRate: 18.99, Active: true},
	}
	_, err := Simulate(debts, 0, model.StrategySnowball)
	if !errors.Is(err, ErrUnpayableDebt) {
		t.Fatalf("expected ErrUnpayableDebt, got %v", err)
	}
}

func TestSimulate_NoMinimumPayment(t *testing.T) {
	debts := []model.Debt{
		{ID: "d1", Name: "NoMin", Balance: 100, MinimumPayment: 0, Active: true},
	}
	_, err := Simulate(debts, 0, model.StrategySnowball)
	if !errors.Is(err, ErrUnpayableDebt) {
		t.Fatalf("expected ErrUnpayableDebt for zero minimum, got %v", err)
	}
}

func TestPayoffMonths_ClosedForm(t *testing.T) {
	months, err := PayoffMonths(3500, 105, 18.99)
	if err != nil {
		t.Fatal(err)
	}
	if months <= 0 {
		t.Fatalf("payoff months = %d, want positive", months)
	}

	interest, err := TotalInterest(3500, 105, 18.99)
	if err != nil {
		t.Fatal(err)
	}
	if interest <= 0 {
		t.Errorf("total interest = %v, want positive", interest)
	}
}

func TestPayoffMonths_Unpayable(t *testing.T) {
	_, err := PayoffMonths(3500, 50, 18.99)
	if !errors.Is(err, ErrUnpayableDebt) {
		t.Fatalf("expected ErrUnpayableDebt, got %v", err)
	}
	_, err = TotalInterest(3500, 50, 18.99)
	if !errors.Is(err, ErrUnpayableDebt) {
		t.Fatalf("TotalInterest: expected ErrUnpayableDebt, got %v", err)
	}
}

func TestPayoffMonths_ZeroRate(t *testing.T) {
	months, err := PayoffMonths(1000, 150, 0)
	if err != nil {
		t.Fatal(err)
	}
	if months != 7 {
		t.Errorf("zero-rate payoff = %d months, want 7 (ceil 1000/150)", months)
	}

	interest, err := TotalInterest(1000, 150, 0)
	if err != nil {
		t.Fatal(err)
	}
	// Estimate counts the final partial payment in full: 7*150-1000.
	if !almostEqual(interest, 50) {
		t.Errorf("zero-rate interest estimate = %v, want 50", interest)
	}
}

func TestPayoffMonths_PaidOff(t *testing.T) {
	months, err := PayoffMonths(0, 100, 10)
	if err != nil {
		t.Fatal(err)
	}
	if months != 0 {
		t.Errorf("paid-off debt months = %d, want 0", months)
	}
}

func TestExtraPaymentImpact(t *testing.T) {
	debt := model.Debt{Name: "Card", Balance: 3500, MinimumPayment: 105, InterestRate: 18.99, Active: true}
	impact, err := ExtraPaymentImpact(debt, 100)
	if err != nil {
		t.Fatal(err)
	}
	if impact.MonthsSaved <= 0 {
		t.Errorf("months saved = %d, want positive", impact.MonthsSaved)
	}
	if impact.InterestSaved <= 0 {
		t.Errorf("interest saved = %v, want positive", impact.InterestSaved)
	}
	base, _ := PayoffMonths(debt.Balance, debt.MinimumPayment, debt.InterestRate)
	if impact.NewPayoffMonths != base-impact.MonthsSaved {
		t.Errorf("NewPayoffMonths %d inconsistent with base %d and saved %d",
			impact.NewPayoffMonths, base, impact.MonthsSaved)
	}
}

func TestExtraPaymentImpact_UnpayableBase(t *testing.T) {
	debt := model.Debt{Name: "Trap", Balance: 3500, MinimumPayment: 50, InterestRate: 18.99, Active: true}
	_, err := ExtraPaymentImpact(debt, 500)
	if !errors.Is(err, ErrUnpayableDebt) {
		t.Fatalf("expected ErrUnpayableDebt for unpayable baseline, got %v", err)
	}
}
