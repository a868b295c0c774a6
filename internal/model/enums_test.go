package model

import "testing"

func TestParseBillFrequency(t *testing.T) {
	cases := []struct {
		in     string
		wantOK bool
	}{
		{"weekly", true},
		{"bi-weekly", true},
		{"monthly", true},
		{"quarterly", true},
		{"annual", true},
		{"semi-monthly", false}, // pay schedule only
		{"fortnightly", false},
	}
	for _, tc := range cases {
		got, err := ParseBillFrequency(tc.in)
		if tc.wantOK && (err != nil || string(got) != tc.in) {
			t.Errorf("ParseBillFrequency(%q) = %q, %v; want ok", tc.in, got, err)
		}
		if !tc.wantOK && err == nil {
			t.Errorf("ParseBillFrequency(%q) should fail", tc.in)
		}
	}
}

func TestFrequencyValidForBill(t *testing.T) {
	if FreqSemiMonthly.ValidForBill() {
		t.Error("semi-monthly must not be valid for bills")
	}
	if !FreqSemiMonthly.Valid() {
		t.Error("semi-monthly is still a valid pay frequency")
	}
	if !FreqQuarterly.ValidForBill() {
		t.Error("quarterly should be valid for bills")
	}
}
