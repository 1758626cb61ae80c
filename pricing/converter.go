package pricing

import (
	"fmt"
	"math"

	"github.com/sujalreset-source/streaming-backend/domain"
)

// Converter produces the converted-price list for every supported currency
// other than the base.
type Converter interface {
	Convert(baseCurrency string, amount float64) ([]domain.ConvertedPrice, error)
}

// RateTable is injected so the static defaults can be swapped for a live
// rate source without touching callers.
type RateTable struct {
	Supported   []string
	ZeroDecimal map[string]bool
	Rates       map[string]map[string]float64
}

// DefaultRateTable returns the built-in rates, keyed by base currency.
func DefaultRateTable() RateTable {
	return RateTable{
		Supported: []string{"USD", "EUR", "GBP", "JPY", "INR"},
		ZeroDecimal: map[string]bool{
			"JPY": true,
			"KRW": true,
			"HUF": true,
			"VND": true,
		},
		Rates: map[string]map[string]float64{
			"USD": {"EUR": 0.86, "GBP": 0.75, "JPY": 151.8, "INR": 88.16},
			"EUR": {"USD": 1.16, "GBP": 0.87, "JPY": 176.19, "INR": 102.57},
			"GBP": {"USD": 1.34, "EUR": 1.15, "JPY": 202.20, "INR": 117.70},
			"JPY": {"USD": 0.0066, "EUR": 0.0057, "GBP": 0.0049, "INR": 0.58},
			"INR": {"USD": 0.011, "EUR": 0.0097, "GBP": 0.0085, "JPY": 1.72},
		},
	}
}

type staticConverter struct {
	table RateTable
}

func NewStaticConverter(table RateTable) Converter {
	return &staticConverter{table: table}
}

func (c *staticConverter) Convert(baseCurrency string, amount float64) ([]domain.ConvertedPrice, error) {
	rates, ok := c.table.Rates[baseCurrency]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedCurrency, baseCurrency)
	}

	out := make([]domain.ConvertedPrice, 0, len(c.table.Supported)-1)
	for _, currency := range c.table.Supported {
		if currency == baseCurrency {
			continue
		}
		rate, ok := rates[currency]
		if !ok || rate == 0 {
			// Partial-result policy: a missing pair does not fail the
			// whole conversion.
			out = append(out, domain.ConvertedPrice{Currency: currency, Amount: nil})
			continue
		}
		v := c.formatAmount(amount*rate, currency)
		out = append(out, domain.ConvertedPrice{Currency: currency, Amount: &v})
	}
	return out, nil
}

// formatAmount rounds to whole units for zero-decimal currencies and to two
// decimal places for everything else.
func (c *staticConverter) formatAmount(amount float64, currency string) float64 {
	if c.table.ZeroDecimal[currency] {
		return math.Round(amount)
	}
	return math.Round(amount*100) / 100
}
