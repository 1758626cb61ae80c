package gateway

import (
	"testing"

	"github.com/sujalreset-source/streaming-backend/domain"
)

func TestCycleFromLabel(t *testing.T) {
	cases := []struct {
		label    string
		interval string
		count    int
	}{
		{"1m", "month", 1},
		{"3m", "month", 3},
		{"6m", "month", 6},
		{"12m", "year", 1},
	}
	for _, tc := range cases {
		cycle, err := CycleFromLabel(tc.label)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.label, err)
		}
		if cycle.Interval != tc.interval || cycle.IntervalCount != tc.count {
			t.Errorf("%s: got %s/%d, want %s/%d", tc.label, cycle.Interval, cycle.IntervalCount, tc.interval, tc.count)
		}
		if cycle.Label != tc.label {
			t.Errorf("%s: label not preserved, got %q", tc.label, cycle.Label)
		}
	}
}

func TestCycleFromLabelRejectsUnknown(t *testing.T) {
	for _, label := range []string{"", "2m", "monthly", "1y"} {
		if _, err := CycleFromLabel(label); !domain.IsValidation(err) {
			t.Errorf("%q: expected validation error, got %v", label, err)
		}
	}
}

func TestMinorUnits(t *testing.T) {
	if got := minorUnits("USD", 2.5); got != 250 {
		t.Errorf("USD 2.5: got %d, want 250", got)
	}
	if got := minorUnits("JPY", 759); got != 759 {
		t.Errorf("JPY 759: got %d, want 759", got)
	}
	if got := minorUnits("INR", 440.8); got != 44080 {
		t.Errorf("INR 440.8: got %d, want 44080", got)
	}
}
