package calc

import (
	"testing"

	"github.com/BGirlGlowHub/steward/internal/model"
)

func TestProjectBalances(t *testing.T) {
	asOf := mustDate(t, "2024-08-10")
	settings := testSettings(
		mustDate(t, "2024-08-02"),
		mustDate(t, "2024-08-16"),
		mustDate(t, "2024-08-30"),
	) // 3 paychecks x $2000

	accounts := []model.Account{
		{ID: "a1", Name: "Bills", Category: model.CategoryBills, Percentage: 50, Balance: 250, Active: true},
		{ID: "a2", Name: "Savings", Category: model.CategorySavings, Percentage: 20, Balance: 1000, Active: true},
	}
	bills := []model.Bill{
		{ID: "b1", Name: "Rent", Amount: 1400, Frequency: model.FreqMonthly, AccountID: "a1", Active: true},
		{ID: "b2", Name: "Water", Amount: 90, Frequency: model.FreqQuarterly, AccountID: "a1", Active: true},
		{ID: "b3", Name: "Cancelled", Amount: 500, Frequency: model.FreqMonthly, AccountID: "a1", Active: false},
		{ID: "b4", Name: "Unlinked", Amount: 75, Frequency: model.FreqMonthly, Active: true},
	}

	infos, err := ProjectBalances(accounts, bills, settings, asOf)
	if err != nil {
		t.Fatal(err)
	}
	if len(infos) != 2 {
		t.Fatalf("got %d entries, want 2", len(infos))
	}

	billsAcct := infos[0]
	if !almostEqual(billsAcct.MonthlyInflow, 3000) {
		t.Errorf("inflow = %v, want 3000", billsAcct.MonthlyInflow)
	}
	// 1400 monthly + 90 quarterly/3 = 1430; inactive and unlinked excluded.
	if !almostEqual(billsAcct.MonthlyOutflow, 1430) {
		t.Errorf("outflow = %v, want 1430", billsAcct.MonthlyOutflow)
	}
	if !almostEqual(billsAcct.EndingBalance, 250+3000-1430) {
		t.Errorf("ending balance = %v, want %v", billsAcct.EndingBalance, 250+3000-1430)
	}
	if !almostEqual(billsAcct.Utilization, 1430.0/3000*100) {
		t.Errorf("utilization = %v, want %v", billsAcct.Utilization, 1430.0/3000*100)
	}

	savings := infos[1]
	if savings.MonthlyOutflow != 0 || savings.Utilization != 0 {
		t.Errorf("savings account should have no outflow, got %+v", savings)
	}
}

func TestProjectBalances_ZeroInflowUtilization(t *testing.T) {
	accounts := []model.Account{
		{ID: "a1", Name: "Parked", Percentage: 0, Balance: 100, Active: true},
	}
	bills := []model.Bill{
		{ID: "b1", Name: "Sub", Amount: 15, Frequency: model.FreqMonthly, AccountID: "a1", Active: true},
	}

	infos, err := ProjectBalances(accounts, bills, testSettings(), mustDate(t, "2024-08-10"))
	if err != nil {
		t.Fatal(err)
	}
	if infos[0].Utilization != 0 {
		t.Errorf("utilization with zero inflow = %v, want 0", infos[0].Utilization)
	}
	if !almostEqual(infos[0].EndingBalance, 85) {
		t.Errorf("ending balance = %v, want 85", infos[0].EndingBalance)
	}
}

func TestProjectBalances_InvalidBillFrequency(t *testing.T) {
	accounts := []model.Account{{ID: "a1", Percentage: 10, Active: true}}
	bills := []model.Bill{
		{ID: "b1", Name: "Bad", Amount: 10, Frequency: model.Frequency("sometimes"), AccountID: "a1", Active: true},
	}
	if _, err := ProjectBalances(accounts, bills, testSettings(), mustDate(t, "2024-08-10")); err == nil {
		t.Fatal("expected error for invalid bill frequency")
	}
}
