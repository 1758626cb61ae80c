package pricing

import (
	"errors"
	"math"
	"testing"

	"github.com/sujalreset-source/streaming-backend/domain"
)

func TestConvertCoversEveryOtherSupportedCurrency(t *testing.T) {
	table := DefaultRateTable()
	conv := NewStaticConverter(table)

	for _, base := range table.Supported {
		out, err := conv.Convert(base, 10)
		if err != nil {
			t.Fatalf("Convert(%s, 10) unexpected error: %v", base, err)
		}
		if len(out) != len(table.Supported)-1 {
			t.Fatalf("Convert(%s) returned %d entries, want %d", base, len(out), len(table.Supported)-1)
		}
		for _, cp := range out {
			if cp.Currency == base {
				t.Fatalf("Convert(%s) included the base currency itself", base)
			}
			if cp.Amount != nil && (*cp.Amount < 0 || math.IsNaN(*cp.Amount) || math.IsInf(*cp.Amount, 0)) {
				t.Fatalf("Convert(%s) produced bad amount for %s: %v", base, cp.Currency, *cp.Amount)
			}
		}
	}
}

func TestConvertRounding(t *testing.T) {
	conv := NewStaticConverter(DefaultRateTable())

	out, err := conv.Convert("USD", 9.99)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, cp := range out {
		if cp.Amount == nil {
			continue
		}
		switch cp.Currency {
		case "JPY":
			if *cp.Amount != math.Trunc(*cp.Amount) {
				t.Errorf("JPY amount %v is not a whole number", *cp.Amount)
			}
		default:
			scaled := *cp.Amount * 100
			if math.Abs(scaled-math.Round(scaled)) > 1e-9 {
				t.Errorf("%s amount %v has more than two decimal places", cp.Currency, *cp.Amount)
			}
		}
	}
}

func TestConvertKnownValues(t *testing.T) {
	conv := NewStaticConverter(DefaultRateTable())

	out, err := conv.Convert("USD", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[string]float64{
		"EUR": 4.3,
		"GBP": 3.75,
		"JPY": 759,
		"INR": 440.8,
	}
	for _, cp := range out {
		expected, ok := want[cp.Currency]
		if !ok {
			t.Fatalf("unexpected currency %s", cp.Currency)
		}
		if cp.Amount == nil {
			t.Fatalf("missing amount for %s", cp.Currency)
		}
		if math.Abs(*cp.Amount-expected) > 1e-9 {
			t.Errorf("USD->%s: got %v, want %v", cp.Currency, *cp.Amount, expected)
		}
	}
}

func TestConvertUnsupportedBase(t *testing.T) {
	conv := NewStaticConverter(DefaultRateTable())

	_, err := conv.Convert("XXX", 10)
	if !errors.Is(err, domain.ErrUnsupportedCurrency) {
		t.Fatalf("expected ErrUnsupportedCurrency, got %v", err)
	}
}

func TestConvertMissingRateYieldsNilAmount(t *testing.T) {
	table := RateTable{
		Supported:   []string{"USD", "EUR", "GBP"},
		ZeroDecimal: map[string]bool{},
		Rates: map[string]map[string]float64{
			"USD": {"EUR": 0.9}, // no GBP rate recorded
		},
	}
	conv := NewStaticConverter(table)

	out, err := conv.Convert("USD", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("got %d entries, want 2", len(out))
	}
	for _, cp := range out {
		switch cp.Currency {
		case "EUR":
			if cp.Amount == nil || *cp.Amount != 9 {
				t.Errorf("EUR: got %v, want 9", cp.Amount)
			}
		case "GBP":
			if cp.Amount != nil {
				t.Errorf("GBP: expected nil amount for missing rate, got %v", *cp.Amount)
			}
		}
	}
}
