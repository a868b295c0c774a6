package calc

import (
	"testing"
	"time"

	"github.com/BGirlGlowHub/steward/internal/model"
)

func testSettings(payDates ...time.Time) model.Settings {
	return model.Settings{
		PaycheckAmount: 2000,
		PayFrequency:   model.FreqBiWeekly,
		TithingEnabled: true,
		TithingPercent: 10,
		PayDates:       payDates,
	}
}

func TestSummarize(t *testing.T) {
	asOf := mustDate(t, "2024-08-10")
	settings := testSettings(mustDate(t, "2024-08-02"), mustDate(t, "2024-08-16"))

	accounts := []model.Account{
		{ID: "a1", Name: "Tithe", Category: model.CategoryTithing, Percentage: 10, Active: true},
		{ID: "a2", Name: "Savings", Category: model.CategorySavings, Percentage: 20, Active: true},
		{ID: "a3", Name: "Bills", Category: model.CategoryBills, Percentage: 50, Active: true},
		{ID: "a4", Name: "Old", Category: model.CategoryExpenses, Percentage: 40, Active: false},
	}
	bills := []model.Bill{
		{ID: "b1", Name: "Rent", Amount: 1400, Frequency: model.FreqMonthly, Active: true},
		{ID: "b2", Name: "Gym", Amount: 45, Frequency: model.FreqMonthly, Active: true},
		{ID: "b3", Name: "Cancelled", Amount: 99, Frequency: model.FreqMonthly, Active: false},
	}

	sum, err := Summarize(accounts, bills, settings, asOf)
	if err != nil {
		t.Fatal(err)
	}

	if !almostEqual(sum.MonthlyIncome, 4000) {
		t.Errorf("MonthlyIncome = %v, want 4000 (two explicit pay dates)", sum.MonthlyIncome)
	}
	if !almostEqual(sum.TotalBills, 1445) {
		t.Errorf("TotalBills = %v, want 1445 (raw amounts, active only)", sum.TotalBills)
	}
	if !almostEqual(sum.AllocationPercent, 80) {
		t.Errorf("AllocationPercent = %v, want 80 (inactive excluded)", sum.AllocationPercent)
	}
	if !almostEqual(sum.TotalAllocated, 3200) {
		t.Errorf("TotalAllocated = %v, want 3200", sum.TotalAllocated)
	}
	if !almostEqual(sum.TithingAmount, 400) {
		t.Errorf("TithingAmount = %v, want 400", sum.TithingAmount)
	}
	if !almostEqual(sum.SavingsAmount, 800) {
		t.Errorf("SavingsAmount = %v, want 800", sum.SavingsAmount)
	}
	if !almostEqual(sum.Remaining, 800) {
		t.Errorf("Remaining = %v, want 800", sum.Remaining)
	}
}

func TestSummarize_EmptyInputs(t *testing.T) {
	sum, err := Summarize(nil, nil, model.Settings{PayFrequency: model.FreqMonthly}, mustDate(t, "2024-08-10"))
	if err != nil {
		t.Fatal(err)
	}
	if sum.MonthlyIncome != 0 || sum.TotalBills != 0 || sum.AllocationPercent != 0 {
		t.Errorf("empty inputs should produce a zero summary, got %+v", sum)
	}
}

func TestRecommend_OverAllocated(t *testing.T) {
	accounts := []model.Account{
		{ID: "a1", Percentage: 70, Active: true},
		{ID: "a2", Percentage: 45, Active: true},
	}
	recs, err := Recommend(accounts, nil, testSettings(), mustDate(t, "2024-08-10"))
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) == 0 {
		t.Fatal("expected at least one recommendation")
	}
	if recs[0].Severity != model.SeverityError {
		t.Errorf("first recommendation severity = %s, want error", recs[0].Severity)
	}
}

func TestRecommend_Bands(t *testing.T) {
	tests := []struct {
		name  string
		total float64
		want  model.Severity
	}{
		{"warning band", 97, model.SeverityWarning},
		{"suggestion band", 60, model.SeveritySuggestion},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accounts := []model.Account{{ID: "a1", Percentage: tt.total, Active: true}}
			recs, err := Recommend(accounts, nil, testSettings(), mustDate(t, "2024-08-10"))
			if err != nil {
				t.Fatal(err)
			}
			if len(recs) != 1 {
				t.Fatalf("got %d recommendations, want 1", len(recs))
			}
			if recs[0].Severity != tt.want {
				t.Errorf("severity = %s, want %s", recs[0].Severity, tt.want)
			}
		})
	}
}

func TestRecommend_NoFindingsInComfortZone(t *testing.T) {
	accounts := []model.Account{{ID: "a1", Percentage: 85, Active: true}}
	recs, err := Recommend(accounts, nil, testSettings(), mustDate(t, "2024-08-10"))
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 0 {
		t.Errorf("85%% allocation should produce no findings, got %+v", recs)
	}
}

func TestRecommend_UtilizationWarningAfterGlobal(t *testing.T) {
	// Over-allocated globally AND one account consumed by bills: both
	// checks fire, global first.
	accounts := []model.Account{
		{ID: "a1", Name: "Bills", Category: model.CategoryBills, Percentage: 60, Active: true},
		{ID: "a2", Name: "Fun", Category: model.CategoryExpenses, Percentage: 45, Active: true},
	}
	bills := []model.Bill{
		{ID: "b1", Name: "Rent", Amount: 2300, Frequency: model.FreqMonthly, AccountID: "a1", Active: true},
	}
	settings := testSettings(mustDate(t, "2024-08-02"), mustDate(t, "2024-08-16"))

	recs, err := Recommend(accounts, bills, settings, mustDate(t, "2024-08-10"))
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 2 {
		t.Fatalf("got %d recommendations, want 2: %+v", len(recs), recs)
	}
	if recs[0].Severity != model.SeverityError {
		t.Errorf("first finding severity = %s, want error (global check first)", recs[0].Severity)
	}
	if recs[1].Severity != model.SeverityWarning {
		t.Errorf("second finding severity = %s, want warning (utilization)", recs[1].Severity)
	}
}

func TestValidateBalance(t *testing.T) {
	tests := []struct {
		total float64
		valid bool
	}{
		{105, false},
		{100, true},
		{97, true},
		{50, true},
	}
	for _, tt := range tests {
		accounts := []model.Account{{ID: "a1", Percentage: tt.total, Active: true}}
		check := ValidateBalance(accounts)
		if check.Valid != tt.valid {
			t.Errorf("total %v: Valid = %v, want %v", tt.total, check.Valid, tt.valid)
		}
		if !almostEqual(check.TotalPercentage, tt.total) {
			t.Errorf("total %v: TotalPercentage = %v", tt.total, check.TotalPercentage)
		}
		if check.Message == "" {
			t.Errorf("total %v: message should not be empty", tt.total)
		}
	}
}
