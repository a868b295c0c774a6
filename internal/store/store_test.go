package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/BGirlGlowHub/steward/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "steward.db"))
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func TestAccountRoundTrip(t *testing.T) {
	s := openTestStore(t)

	saved, err := s.SaveAccount(model.Account{
		Name:       "Savings",
		Category:   model.CategorySavings,
		Percentage: 20,
		Balance:    1250.50,
		Active:     true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if saved.ID == "" {
		t.Fatal("SaveAccount did not mint an ID")
	}

	accounts, err := s.ListAccounts()
	if err != nil {
		t.Fatal(err)
	}
	if len(accounts) != 1 {
		t.Fatalf("got %d accounts, want 1", len(accounts))
	}
	got := accounts[0]
	if got.ID != saved.ID || got.Name != "Savings" || got.Category != model.CategorySavings ||
		got.Percentage != 20 || got.Balance != 1250.50 || !got.Active {
		t.Errorf("round trip mismatch: %+v", got)
	}
}

func TestBillRoundTripAndDelete(t *testing.T) {
	s := openTestStore(t)

	saved, err := s.SaveBill(model.Bill{
		Name:      "Rent",
		Amount:    1400,
		Frequency: model.FreqMonthly,
		DueDate:   date(t, "2024-08-01"),
		Active:    true,
		Category:  "housing",
	})
	if err != nil {
		t.Fatal(err)
	}

	bills, err := s.ListBills()
	if err != nil {
		t.Fatal(err)
	}
	if len(bills) != 1 {
		t.Fatalf("got %d bills, want 1", len(bills))
	}
	if bills[0].Status != model.BillCurrent {
		t.Errorf("default status = %s, want current", bills[0].Status)
	}
	if !bills[0].DueDate.Equal(date(t, "2024-08-01")) {
		t.Errorf("due date = %v", bills[0].DueDate)
	}

	if err := s.DeleteBill(saved.ID); err != nil {
		t.Fatal(err)
	}
	if err := s.DeleteBill(saved.ID); err == nil {
		t.Error("deleting a missing bill should fail")
	}
}

func TestDebtAndGoalRoundTrip(t *testing.T) {
	s := openTestStore(t)

	if _, err := s.SaveDebt(model.Debt{
		Name:           "Card",
		Balance:        3500,
		MinimumPayment: 105,
		InterestRate:   18.99,
		DueDate:        date(t, "2024-08-15"),
		Active:         true,
	}); err != nil {
		t.Fatal(err)
	}
	debts, err := s.ListDebts()
	if err != nil {
		t.Fatal(err)
	}
	if len(debts) != 1 || debts[0].InterestRate != 18.99 {
		t.Fatalf("debt round trip mismatch: %+v", debts)
	}

	g, err := s.SaveGoal(model.SavingsGoal{
		Name:                "Vacation",
		TargetAmount:        3000,
		CurrentAmount:       500,
		TargetDate:          date(t, "2025-06-01"),
		MonthlyContribution: 250,
		Active:              true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if g.Priority != 3 {
		t.Errorf("default priority = %d, want 3", g.Priority)
	}
	goals, err := s.ListGoals()
	if err != nil {
		t.Fatal(err)
	}
	if len(goals) != 1 || goals[0].TargetAmount != 3000 {
		t.Fatalf("goal round trip mismatch: %+v", goals)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	s := openTestStore(t)

	// Unsaved settings come back as defaults.
	cfg, err := s.GetSettings()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.PayFrequency != model.FreqBiWeekly {
		t.Errorf("default pay frequency = %s", cfg.PayFrequency)
	}

	want := model.Settings{
		PaycheckAmount: 1500,
		PayFrequency:   model.FreqBiWeekly,
		TithingEnabled: true,
		TithingPercent: 10,
		PayDates: []time.Time{
			date(t, "2024-08-01"),
			date(t, "2024-08-15"),
			date(t, "2024-08-29"),
		},
	}
	if err := s.SaveSettings(want); err != nil {
		t.Fatal(err)
	}

	got, err := s.GetSettings()
	if err != nil {
		t.Fatal(err)
	}
	if got.PaycheckAmount != 1500 || !got.TithingEnabled || len(got.PayDates) != 3 {
		t.Fatalf("settings round trip mismatch: %+v", got)
	}
	if !got.PayDates[2].Equal(date(t, "2024-08-29")) {
		t.Errorf("pay dates out of order or wrong: %v", got.PayDates)
	}
}

func TestLoadSnapshotAndReplaceAll(t *testing.T) {
	s := openTestStore(t)

	if _, err := s.SaveAccount(model.Account{Name: "Bills", Category: model.CategoryBills, Percentage: 50, Active: true}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.SaveBill(model.Bill{Name: "Rent", Amount: 1400, Frequency: model.FreqMonthly, DueDate: date(t, "2024-08-01"), Active: true}); err != nil {
		t.Fatal(err)
	}

	ds, err := s.LoadSnapshot()
	if err != nil {
		t.Fatal(err)
	}
	if len(ds.Accounts) != 1 || len(ds.Bills) != 1 {
		t.Fatalf("snapshot mismatch: %+v", ds)
	}

	replacement := model.Dataset{
		Debts: []model.Debt{
			{ID: "d1", Name: "Card", Balance: 900, MinimumPayment: 35, DueDate: date(t, "2024-08-20"), Active: true},
		},
		Settings: model.Settings{PaycheckAmount: 2000, PayFrequency: model.FreqMonthly},
	}
	if err := s.ReplaceAll(replacement); err != nil {
		t.Fatal(err)
	}

	ds, err = s.LoadSnapshot()
	if err != nil {
		t.Fatal(err)
	}
	if len(ds.Accounts) != 0 || len(ds.Bills) != 0 || len(ds.Debts) != 1 {
		t.Fatalf("replace did not swap the dataset: %+v", ds)
	}
	if ds.Settings.PaycheckAmount != 2000 {
		t.Errorf("settings not replaced: %+v", ds.Settings)
	}
}

func TestReplaceAll_FailureKeepsExistingData(t *testing.T) {
	s := openTestStore(t)

	if _, err := s.SaveAccount(model.Account{Name: "Bills", Category: model.CategoryBills, Percentage: 50, Active: true}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.SaveBill(model.Bill{Name: "Rent", Amount: 1400, Frequency: model.FreqMonthly, DueDate: date(t, "2024-08-01"), Active: true}); err != nil {
		t.Fatal(err)
	}

	// Priority 99 violates the goals check constraint partway through
	// the bulk write; the whole import must roll back.
	bad := model.Dataset{
		Accounts: []model.Account{
			{ID: "x", Name: "Replacement", Category: model.CategorySavings, Active: true},
		},
		Goals: []model.SavingsGoal{
			{ID: "g1", Name: "Broken", TargetAmount: 100, TargetDate: date(t, "2025-01-01"), Priority: 99, Active: true},
		},
		Settings: model.Settings{PaycheckAmount: 9999, PayFrequency: model.FreqMonthly},
	}
	if err := s.ReplaceAll(bad); err == nil {
		t.Fatal("expected constraint error from out-of-range goal priority")
	}

	ds, err := s.LoadSnapshot()
	if err != nil {
		t.Fatal(err)
	}
	if len(ds.Accounts) != 1 || ds.Accounts[0].Name != "Bills" {
		t.Errorf("accounts lost after failed import: %+v", ds.Accounts)
	}
	if len(ds.Bills) != 1 {
		t.Errorf("bills lost after failed import: %+v", ds.Bills)
	}
	if len(ds.Goals) != 0 {
		t.Errorf("partial goal write leaked: %+v", ds.Goals)
	}
	if ds.Settings.PaycheckAmount == 9999 {
		t.Error("settings replaced despite failed import")
	}
}
