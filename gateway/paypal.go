package gateway

import (
	"context"
	"fmt"

	"github.com/plutov/paypal/v4"

	"github.com/sujalreset-source/streaming-backend/domain"
)

type paypalClient struct {
	client *paypal.Client
}

func newPayPalClient(clientID, secret string, sandbox bool) (*paypalClient, error) {
	base := paypal.APIBaseLive
	if sandbox {
		base = paypal.APIBaseSandBox
	}
	c, err := paypal.NewClient(clientID, secret, base)
	if err != nil {
		return nil, fmt.Errorf("paypal client init failed: %w", err)
	}
	return &paypalClient{client: c}, nil
}

func paypalMoney(currency string, amount float64) paypal.Money {
	value := fmt.Sprintf("%.2f", amount)
	if zeroDecimalCurrencies[currency] {
		value = fmt.Sprintf("%.0f", amount)
	}
	return paypal.Money{Currency: currency, Value: value}
}

func paypalInterval(cycle Cycle) paypal.IntervalUnit {
	if cycle.Interval == "year" {
		return paypal.IntervalUnitYear
	}
	return paypal.IntervalUnitMonth
}

// createPlans provisions one PayPal plan per currency: the base currency
// plus every converted currency that has a usable rate.
func (p *paypalClient) createPlans(ctx context.Context, artistName string, base domain.Price, cycle Cycle, converted []domain.ConvertedPrice) (map[string]string, error) {
	if _, err := p.client.GetAccessToken(ctx); err != nil {
		return nil, fmt.Errorf("paypal auth failed: %w", err)
	}

	product, err := p.client.CreateProduct(ctx, paypal.Product{
		Name: fmt.Sprintf("%s subscription", artistName),
		Type: paypal.ProductTypeService,
	})
	if err != nil {
		return nil, fmt.Errorf("paypal product creation failed: %w", err)
	}

	prices := []domain.Price{base}
	for _, cp := range converted {
		if cp.Amount == nil {
			continue
		}
		prices = append(prices, domain.Price{Currency: cp.Currency, Amount: *cp.Amount})
	}

	plans := make(map[string]string, len(prices))
	for _, price := range prices {
		plan, err := p.client.CreateSubscriptionPlan(ctx, paypal.SubscriptionPlan{
			ProductId: product.ID,
			Name:      fmt.Sprintf("%s subscription (%s, %s)", artistName, cycle.Label, price.Currency),
			Status:    paypal.SubscriptionPlanStatusActive,
			BillingCycles: []paypal.BillingCycle{
				{
					PricingScheme: paypal.PricingScheme{FixedPrice: paypalMoney(price.Currency, price.Amount)},
					Frequency: paypal.Frequency{
						IntervalUnit:  paypalInterval(cycle),
						IntervalCount: cycle.IntervalCount,
					},
					TenureType:  paypal.TenureTypeRegular,
					Sequence:    1,
					TotalCycles: 0,
				},
			},
			PaymentPreferences: &paypal.PaymentPreferences{
				AutoBillOutstanding:     true,
				SetupFeeFailureAction:   paypal.SetupFeeFailureActionContinue,
				PaymentFailureThreshold: 3,
			},
		})
		if err != nil {
			return nil, fmt.Errorf("paypal plan creation failed for %s: %w", price.Currency, err)
		}
		plans[price.Currency] = plan.ID
	}

	return plans, nil
}
