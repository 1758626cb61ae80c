package gateway

import (
	"fmt"
	"strings"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"

	"github.com/sujalreset-source/streaming-backend/domain"
)

type stripeClient struct {
	api *client.API
}

func newStripeClient(secretKey string) *stripeClient {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &stripeClient{api: api}
}

// createPlan creates a product plus a recurring price in the base currency
// and returns the price id.
func (s *stripeClient) createPlan(artistName string, base domain.Price, cycle Cycle) (string, error) {
	product, err := s.api.Products.New(&stripe.ProductParams{
		Name: stripe.String(fmt.Sprintf("%s subscription", artistName)),
	})
	if err != nil {
		return "", fmt.Errorf("stripe product creation failed: %w", err)
	}

	price, err := s.api.Prices.New(&stripe.PriceParams{
		Product:    stripe.String(product.ID),
		UnitAmount: stripe.Int64(minorUnits(base.Currency, base.Amount)),
		Currency:   stripe.String(strings.ToLower(base.Currency)),
		Recurring: &stripe.PriceRecurringParams{
			Interval:      stripe.String(cycle.Interval),
			IntervalCount: stripe.Int64(int64(cycle.IntervalCount)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("stripe price creation failed: %w", err)
	}

	return price.ID, nil
}
